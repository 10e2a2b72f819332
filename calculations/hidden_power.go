package calculations

import (
	"fmt"

	"porygon/database"
)

var hiddenPowerTypes = []string{
	"Fighting", "Flying", "Poison", "Ground", "Rock", "Bug", "Ghost", "Steel",
	"Fire", "Water", "Grass", "Electric", "Psychic", "Ice", "Dragon", "Dark",
}

type HiddenPower struct {
	Type  string `json:"type"`
	Power int    `json:"power"`
}

// GBHiddenPower is the generation 2 calculation.
func GBHiddenPower(iv GBIVs) HiddenPower {
	msb := func(v int) int { return v >> 3 & 1 }
	x := msb(iv.Special) | msb(iv.Speed)<<1 | msb(iv.Defense)<<2 | msb(iv.Attack)<<3
	return HiddenPower{
		Type:  hiddenPowerTypes[4*(iv.Attack%4)+iv.Defense%4],
		Power: (5*x+iv.Special%4)/2 + 31,
	}
}

// ModernHiddenPower is the generation 3+ calculation. Generation 6 fixed the
// power at 60.
func ModernHiddenPower(ivs map[database.Stat]int, generation int) (HiddenPower, error) {
	order := []database.Stat{
		database.StatHP, database.StatAttack, database.StatDefense,
		database.StatSpeed, database.StatSpecialAttack, database.StatSpecialDefense,
	}
	typeBits, powerBits := 0, 0
	for i, stat := range order {
		iv, ok := ivs[stat]
		if !ok {
			return HiddenPower{}, fmt.Errorf("%w: missing %s IV", ErrInvalidArgument, stat)
		}
		if err := checkRange("IV", iv, 0, 31); err != nil {
			return HiddenPower{}, err
		}
		typeBits |= (iv & 1) << i
		powerBits |= (iv >> 1 & 1) << i
	}
	hp := HiddenPower{Type: hiddenPowerTypes[typeBits*15/63]}
	if generation >= 6 {
		hp.Power = 60
	} else {
		hp.Power = powerBits*40/63 + 30
	}
	return hp, nil
}
