package native

import (
	"encoding/binary"
	"fmt"
)

// Name fields hold UTF-16LE code units, terminator included.
const (
	NDSNicknameSize = 26
	NDSOTNameSize   = 16
)

// Bit layout of NDS.IVEggFlags.
const (
	NDSIVBits    = 5
	NDSIsEgg     = 1 << 30
	NDSNicknamed = 1 << 31
)

// Bit layout of NDS.Flags.
const (
	NDSFatefulEncounter = 1 << 0
	NDSFormShift        = 3
	NDSFormMask         = 0xF8
)

// NDSParty holds the values recomputed whenever a record enters the party.
type NDSParty struct {
	Condition uint32
	Level     uint8
	_         uint8
	CurrentHP uint16
	Stats     [6]uint16
}

// NDS is a generation 4 and later record. Later games keep the same field
// set and use the spare bytes for the nature and Kalos ribbons.
type NDS struct {
	Personality uint32
	_           uint16
	Checksum    uint16

	Species     uint16
	HeldItem    uint16
	OTID        uint32
	Experience  uint32
	Friendship  uint8
	AbilitySlot uint8
	Markings    uint8
	Language    uint8
	EVs         [6]uint8
	Contest     [6]uint8
	// HoennRibbons uses the generation 3 layout without the obedience bit.
	HoennRibbons uint32

	Moves         [4]uint16
	PP            [4]uint8
	PPUps         [4]uint8
	IVEggFlags    uint32
	SinnohRibbons uint32
	Flags         uint8
	Nature        uint8
	KalosRibbons  uint16

	Nickname   [NDSNicknameSize]byte
	OriginGame uint8
	_          uint8

	OTName [NDSOTNameSize]byte
	// Dates hold the year since 2000, the month and the day.
	EggDate     [3]uint8
	MetDate     [3]uint8
	EggLocation uint16
	MetLocation uint16
	Pokerus     uint8
	Ball        uint8
	// LevelMet holds the level in bits 0-6 and the trainer gender in bit 7.
	LevelMet uint8
	_        uint8
	// SuperTraining holds one bit per regimen medal, in medal order.
	SuperTraining uint32

	Party NDSParty
}

var NDSSize = binary.Size(NDS{})

const (
	ndsChecksumOffset = 6
	ndsDataStart      = 8
)

func ndsDataEnd() int {
	return NDSSize - binary.Size(NDSParty{})
}

func DecodeNDS(data []byte) (*NDS, error) {
	p, err := decode[NDS](data, binary.LittleEndian)
	if err != nil {
		return nil, err
	}
	if sum := checksum16(data[ndsDataStart:ndsDataEnd()]); sum != p.Checksum {
		return nil, fmt.Errorf("%w: stored 0x%04X, computed 0x%04X", ErrBadChecksum, p.Checksum, sum)
	}
	return p, nil
}

// Encode refreshes the checksum before serializing.
func (p *NDS) Encode() []byte {
	out := encode(p, binary.LittleEndian)
	p.Checksum = checksum16(out[ndsDataStart:ndsDataEnd()])
	binary.LittleEndian.PutUint16(out[ndsChecksumOffset:], p.Checksum)
	return out
}

func (p *NDS) IV(i int) int {
	return int(p.IVEggFlags >> (NDSIVBits * i) & 0x1F)
}

func (p *NDS) SetIV(i, value int) {
	shift := NDSIVBits * i
	p.IVEggFlags = p.IVEggFlags&^(0x1F<<shift) | uint32(value&0x1F)<<shift
}
