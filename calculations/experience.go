package calculations

import (
	"fmt"
	"sort"
)

const MaxLevel = 100

func experienceFormula(growth string, n int) (int, error) {
	cube := n * n * n
	switch growth {
	case "erratic":
		switch {
		case n < 50:
			return cube * (100 - n) / 50, nil
		case n < 68:
			return cube * (150 - n) / 100, nil
		case n < 98:
			return cube * ((1911 - 10*n) / 3) / 500, nil
		default:
			return cube * (160 - n) / 100, nil
		}
	case "fast":
		return 4 * cube / 5, nil
	case "medium-fast":
		return cube, nil
	case "medium-slow":
		return 6*cube/5 - 15*n*n + 100*n - 140, nil
	case "slow":
		return 5 * cube / 4, nil
	case "fluctuating":
		switch {
		case n < 15:
			return cube * ((n+1)/3 + 24) / 50, nil
		case n < 36:
			return cube * (n + 14) / 50, nil
		default:
			return cube * (n/2 + 32) / 50, nil
		}
	}
	return 0, fmt.Errorf("%w: growth rate %q", ErrInvalidArgument, growth)
}

// ExperienceAtLevel returns the minimum experience for a level. Level 1 is
// always 0.
func ExperienceAtLevel(growth string, level int) (int, error) {
	if err := checkRange("level", level, 1, MaxLevel); err != nil {
		return 0, err
	}
	if level == 1 {
		if _, err := experienceFormula(growth, 1); err != nil {
			return 0, err
		}
		return 0, nil
	}
	return experienceFormula(growth, level)
}

// LevelAtExperience returns the highest level whose minimum experience does
// not exceed exp.
func LevelAtExperience(growth string, exp int) (int, error) {
	if exp < 0 {
		return 0, fmt.Errorf("%w: experience %d is negative", ErrOutOfRange, exp)
	}
	if _, err := experienceFormula(growth, 1); err != nil {
		return 0, err
	}
	// first level whose requirement is above exp, minus one
	level := sort.Search(MaxLevel, func(i int) bool {
		need, _ := ExperienceAtLevel(growth, i+1)
		return need > exp
	})
	if level < 1 {
		level = 1
	}
	return level, nil
}
