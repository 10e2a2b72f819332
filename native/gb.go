package native

import "encoding/binary"

// Text field sizes shared by the Game Boy structs, terminator included.
const (
	GBNameSize = 11
)

// Gen1 is a Red/Blue/Yellow party record followed by its trainer name and
// nickname.
type Gen1 struct {
	Species    uint8
	CurrentHP  uint16
	BoxLevel   uint8
	Condition  uint8
	CatchRate  uint8
	Moves      [4]uint8
	OTID       uint16
	Experience [3]uint8
	EVs        [5]uint16
	IVData     uint16
	// PP holds the PP Ups in the top two bits.
	PP       [4]uint8
	Level    uint8
	Stats    [5]uint16
	OTName   [GBNameSize]byte
	Nickname [GBNameSize]byte
}

// Gen2 is a Gold/Silver/Crystal party record followed by its trainer name
// and nickname.
type Gen2 struct {
	Species    uint8
	HeldItem   uint8
	Moves      [4]uint8
	OTID       uint16
	Experience [3]uint8
	EVs        [5]uint16
	IVData     uint16
	PP         [4]uint8
	Friendship uint8
	// Pokerus holds the strain in the high nibble and the days left in the low one.
	Pokerus uint8
	// CaughtData packs location (bits 0-6), trainer gender (bit 7), level
	// (bits 8-13) and time of day (bits 14-15).
	CaughtData uint16
	Level      uint8
	Condition  uint8
	_          uint8
	CurrentHP  uint16
	Stats      [6]uint16
	IsEgg      uint8
	OTName     [GBNameSize]byte
	Nickname   [GBNameSize]byte
}

var (
	Gen1Size = binary.Size(Gen1{})
	Gen2Size = binary.Size(Gen2{})
)

func DecodeGen1(data []byte) (*Gen1, error) {
	return decode[Gen1](data, binary.BigEndian)
}

func (p *Gen1) Encode() []byte {
	return encode(p, binary.BigEndian)
}

func DecodeGen2(data []byte) (*Gen2, error) {
	return decode[Gen2](data, binary.BigEndian)
}

func (p *Gen2) Encode() []byte {
	return encode(p, binary.BigEndian)
}
