package calculations

import (
	"fmt"

	"porygon/database"
)

// GBIVs are the four stored Game Boy IVs. The HP IV is derived from them.
type GBIVs struct {
	Attack  int
	Defense int
	Speed   int
	Special int
}

// HP packs the low bit of each stored IV.
func (iv GBIVs) HP() int {
	return (iv.Attack&1)<<3 | (iv.Defense&1)<<2 | (iv.Speed&1)<<1 | iv.Special&1
}

func (iv GBIVs) Validate() error {
	for _, v := range []int{iv.Attack, iv.Defense, iv.Speed, iv.Special} {
		if v < 0 || v > 15 {
			return fmt.Errorf("%w: IV %d not in [0, 15]", ErrOutOfRange, v)
		}
	}
	return nil
}

// Map returns the IVs keyed by stat, HP included.
func (iv GBIVs) Map() map[database.Stat]int {
	return map[database.Stat]int{
		database.StatHP:      iv.HP(),
		database.StatAttack:  iv.Attack,
		database.StatDefense: iv.Defense,
		database.StatSpeed:   iv.Speed,
		database.StatSpecial: iv.Special,
	}
}

// WithHP returns a copy whose low bits encode the given HP IV.
func (iv GBIVs) WithHP(hp int) GBIVs {
	iv.Attack = iv.Attack&^1 | (hp>>3)&1
	iv.Defense = iv.Defense&^1 | (hp>>2)&1
	iv.Speed = iv.Speed&^1 | (hp>>1)&1
	iv.Special = iv.Special&^1 | hp&1
	return iv
}

// Pack encodes the IVs the way the Game Boy games store them.
func (iv GBIVs) Pack() uint16 {
	return uint16(iv.Attack)<<12 | uint16(iv.Defense)<<8 | uint16(iv.Speed)<<4 | uint16(iv.Special)
}

func UnpackGBIVs(data uint16) GBIVs {
	return GBIVs{
		Attack:  int(data>>12) & 0xF,
		Defense: int(data>>8) & 0xF,
		Speed:   int(data>>4) & 0xF,
		Special: int(data) & 0xF,
	}
}
