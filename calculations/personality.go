package calculations

import (
	"math/bits"

	"porygon/database"
)

// PersonalityConstraints lists the derived values a personality value must
// produce. Zero values mean "unconstrained".
type PersonalityConstraints struct {
	GenderRate int
	Gender     database.Gender
	Shiny      *bool
	TrainerID  uint32
	Unown      string
	// Nature only applies to generations 3 and 4, where it is derived.
	Nature string
}

func (c PersonalityConstraints) satisfied(pid uint32, natureIndex int) bool {
	if c.Gender != "" && ModernGender(c.GenderRate, pid) != c.Gender {
		return false
	}
	if c.Shiny != nil && ModernShiny(pid, c.TrainerID) != *c.Shiny {
		return false
	}
	if c.Unown != "" && ModernUnownForm(pid) != c.Unown {
		return false
	}
	if natureIndex >= 0 && int(pid%25) != natureIndex {
		return false
	}
	return true
}

// bits of the high half feeding the Unown letter
const unownHighMask = 0x0303

// SolvePersonality returns the personality value closest to current (fewest
// differing bits) that satisfies every constraint. current is returned
// unchanged when it already does.
func SolvePersonality(current uint32, c PersonalityConstraints) (uint32, error) {
	natureIndex := -1
	if c.Nature != "" {
		i, err := NatureIndex(c.Nature)
		if err != nil {
			return current, err
		}
		natureIndex = i
	}
	if c.Gender != "" {
		if fixed, ok := fixedGender(c.GenderRate); ok && fixed != c.Gender {
			return current, ErrNoSolution
		}
	}
	if c.satisfied(current, natureIndex) {
		return current, nil
	}

	curHi := uint16(current >> 16)
	trainerXor := uint16(c.TrainerID>>16) ^ uint16(c.TrainerID)
	wantShiny := c.Shiny != nil && *c.Shiny

	// high-half bases: the current half, or every assignment of the Unown bits
	var bases []uint16
	if c.Unown != "" {
		for u := uint16(0); u < 16; u++ {
			letterBits := u&0x3 | (u>>2&0x3)<<8
			bases = append(bases, curHi&^unownHighMask|letterBits)
		}
	} else {
		bases = []uint16{curHi}
	}
	// single bit flips that move the shiny value off the shiny band
	var flips []uint16
	for k := 3; k < 16; k++ {
		if unownHighMask&(1<<k) == 0 {
			flips = append(flips, 1<<k)
		}
	}

	best, bestDist := current, 33
	try := func(pid uint32) {
		if !c.satisfied(pid, natureIndex) {
			return
		}
		if d := bits.OnesCount32(pid ^ current); d < bestDist {
			best, bestDist = pid, d
		}
	}

	for lo := 0; lo <= 0xFFFF; lo++ {
		if c.Gender != "" && ModernGender(c.GenderRate, uint32(lo)) != c.Gender {
			continue
		}
		if wantShiny {
			for y := uint16(0); y < 8; y++ {
				hi := uint16(lo) ^ trainerXor ^ y
				try(uint32(hi)<<16 | uint32(lo))
			}
			continue
		}
		for _, base := range bases {
			pid := uint32(base)<<16 | uint32(lo)
			try(pid)
			if c.Shiny != nil && ModernShiny(pid, c.TrainerID) {
				for _, f := range flips {
					try(uint32(base^f)<<16 | uint32(lo))
				}
			}
		}
	}

	if bestDist > 32 {
		return current, ErrNoSolution
	}
	return best, nil
}

// GBConstraints lists the derived values a set of generation 2 IVs must
// produce.
type GBConstraints struct {
	GenderRate int
	Gender     database.Gender
	Shiny      *bool
	Unown      string
}

func (c GBConstraints) satisfied(iv GBIVs) bool {
	if c.Gender != "" {
		g, err := GBGender(c.GenderRate, iv.Attack)
		if err != nil || g != c.Gender {
			return false
		}
	}
	if c.Shiny != nil && GBShiny(iv) != *c.Shiny {
		return false
	}
	if c.Unown != "" && GBUnownForm(iv) != c.Unown {
		return false
	}
	return true
}

func ivDistance(a, b GBIVs) int {
	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}
	changed := 0
	total := 0
	for _, d := range []int{a.Attack - b.Attack, a.Defense - b.Defense, a.Speed - b.Speed, a.Special - b.Special} {
		if d != 0 {
			changed++
		}
		total += abs(d)
	}
	return changed*100 + total
}

// SolveGBIVs returns the IVs closest to current (fewest changed IVs, then
// smallest total change) that satisfy every constraint.
func SolveGBIVs(current GBIVs, c GBConstraints) (GBIVs, error) {
	if err := current.Validate(); err != nil {
		return current, err
	}
	if c.Gender != "" {
		if fixed, ok := fixedGender(c.GenderRate); ok && fixed != c.Gender {
			return current, ErrNoSolution
		}
	}
	if c.satisfied(current) {
		return current, nil
	}

	best, bestDist := current, -1
	for atk := 0; atk < 16; atk++ {
		for def := 0; def < 16; def++ {
			for spd := 0; spd < 16; spd++ {
				for spc := 0; spc < 16; spc++ {
					iv := GBIVs{Attack: atk, Defense: def, Speed: spd, Special: spc}
					if !c.satisfied(iv) {
						continue
					}
					if d := ivDistance(iv, current); bestDist < 0 || d < bestDist {
						best, bestDist = iv, d
					}
				}
			}
		}
	}
	if bestDist < 0 {
		return current, ErrNoSolution
	}
	return best, nil
}
