package native

import (
	"encoding/binary"
	"fmt"
)

const (
	GBANicknameSize = 10
	GBAOTNameSize   = 7
)

// Bit layout of GBA.Origins.
const (
	GBAOriginLevelMask = 0x007F
	GBAOriginGameShift = 7
	GBAOriginGameMask  = 0x0780
	GBAOriginBallShift = 11
	GBAOriginBallMask  = 0x7800
	GBAOriginOTFemale  = 0x8000
)

// Bit layout of GBA.IVEggAbility. Each IV takes five bits, HP first.
const (
	GBAIVBits       = 5
	GBAIsEgg        = 1 << 30
	GBAAbilitySlot  = 1 << 31
	GBAObedienceBit = 1 << 31
)

// GBAParty holds the values recomputed whenever a record enters the party.
type GBAParty struct {
	Condition uint32
	Level     uint8
	// days left on an active infection
	PokerusTime uint8
	CurrentHP   uint16
	Stats       [6]uint16
}

// GBA is a Ruby/Sapphire/Emerald/FireRed/LeafGreen record with its
// substructures in growth, attacks, effort, misc order.
type GBA struct {
	Personality uint32
	OTID        uint32
	Nickname    [GBANicknameSize]byte
	Language    uint8
	EggFlags    uint8
	OTName      [GBAOTNameSize]byte
	Markings    uint8
	Checksum    uint16
	_           uint16

	Species    uint16
	HeldItem   uint16
	Experience uint32
	PPUps      uint8
	Friendship uint8
	_          uint16

	Moves [4]uint16
	PP    [4]uint8

	EVs     [6]uint8
	Contest [6]uint8

	Pokerus      uint8
	MetLocation  uint8
	Origins      uint16
	IVEggAbility uint32
	// Ribbons packs five 3-bit contest ranks, the special ribbons from bit
	// 15 and the obedience flag in bit 31.
	Ribbons uint32

	Party GBAParty
}

var GBASize = binary.Size(GBA{})

const (
	gbaChecksumOffset = 28
	gbaDataStart      = 32
)

func gbaDataEnd() int {
	return GBASize - binary.Size(GBAParty{})
}

func DecodeGBA(data []byte) (*GBA, error) {
	p, err := decode[GBA](data, binary.LittleEndian)
	if err != nil {
		return nil, err
	}
	if sum := checksum16(data[gbaDataStart:gbaDataEnd()]); sum != p.Checksum {
		return nil, fmt.Errorf("%w: stored 0x%04X, computed 0x%04X", ErrBadChecksum, p.Checksum, sum)
	}
	return p, nil
}

// Encode refreshes the checksum before serializing.
func (p *GBA) Encode() []byte {
	out := encode(p, binary.LittleEndian)
	p.Checksum = checksum16(out[gbaDataStart:gbaDataEnd()])
	binary.LittleEndian.PutUint16(out[gbaChecksumOffset:], p.Checksum)
	return out
}

// IV returns the IV at index i in HP, Attack, Defense, Speed, Special
// Attack, Special Defense order.
func (p *GBA) IV(i int) int {
	return int(p.IVEggAbility >> (GBAIVBits * i) & 0x1F)
}

func (p *GBA) SetIV(i, value int) {
	shift := GBAIVBits * i
	p.IVEggAbility = p.IVEggAbility&^(0x1F<<shift) | uint32(value&0x1F)<<shift
}
