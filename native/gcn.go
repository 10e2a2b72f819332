package native

import "encoding/binary"

// Name fields hold UTF-16BE code units, terminator included.
const GCNNameSize = 22

// GCN is a Colosseum/XD record.
type GCN struct {
	Species        uint16
	_              uint16
	Personality    uint32
	OriginGame     uint8
	CurrentRegion  uint8
	OriginalRegion uint8
	Language       uint8
	MetLocation    uint16
	LevelMet       uint8
	Ball           uint8
	OTGender       uint8
	_              [3]uint8
	SecretID       uint16
	PublicID       uint16
	OTName         [GCNNameSize]byte
	Nickname       [GCNNameSize]byte
	Experience     uint32
	Level          uint8
	Markings       uint8
	Condition      uint16
	HeldItem       uint16
	CurrentHP      uint16
	Stats          [6]uint16
	EVs            [6]uint16
	IVs            [6]uint8
	Friendship     uint16
	Contest        [6]uint8
	// ContestRanks holds the Cool, Beauty, Cute, Smart and Tough ribbon
	// ranks, 0 to 4.
	ContestRanks [5]uint8
	Pokerus      uint8
	// Ribbons holds the special ribbons from bit 0 in Champion..World
	// order.
	Ribbons     uint16
	AbilitySlot uint8
	// Flags: bit 0 egg, bit 1 obedient.
	Flags        uint8
	Moves        [4]uint16
	PP           [4]uint8
	PPUps        [4]uint8
	ShadowID     uint16
	Purification int32
}

const (
	GCNFlagEgg      = 1 << 0
	GCNFlagObedient = 1 << 1
)

var GCNSize = binary.Size(GCN{})

func DecodeGCN(data []byte) (*GCN, error) {
	return decode[GCN](data, binary.BigEndian)
}

func (p *GCN) Encode() []byte {
	return encode(p, binary.BigEndian)
}
