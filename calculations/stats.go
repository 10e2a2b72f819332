package calculations

import (
	"fmt"
	"math"

	"porygon/database"
)

func checkRange(name string, value, lo, hi int) error {
	if value < lo || value > hi {
		return fmt.Errorf("%w: %s %d not in [%d, %d]", ErrOutOfRange, name, value, lo, hi)
	}
	return nil
}

// GBStat computes a generation 1/2 stat. EVs are the 16-bit stat experience.
func GBStat(stat database.Stat, level, base, ev, iv int) (int, error) {
	if err := checkRange("level", level, 1, 100); err != nil {
		return 0, err
	}
	if err := checkRange("EV", ev, 0, 65535); err != nil {
		return 0, err
	}
	if err := checkRange("IV", iv, 0, 15); err != nil {
		return 0, err
	}

	evBonus := int(math.Ceil(math.Sqrt(float64(ev))))
	if evBonus > 255 {
		evBonus = 255
	}
	value := ((base+iv)*2 + evBonus/4) * level / 100
	if stat == database.StatHP {
		return value + level + 10, nil
	}
	return value + 5, nil
}

// ModernStat computes a generation 3+ stat. The nature modifier is ignored
// for HP.
func ModernStat(stat database.Stat, level int, natureModifier float64, base, ev, iv int) (int, error) {
	if err := checkRange("level", level, 1, 100); err != nil {
		return 0, err
	}
	if err := checkRange("EV", ev, 0, 255); err != nil {
		return 0, err
	}
	if err := checkRange("IV", iv, 0, 31); err != nil {
		return 0, err
	}

	value := (2*base + iv + ev/4) * level / 100
	if stat == database.StatHP {
		return value + level + 10, nil
	}
	value += 5
	switch {
	case natureModifier > 1.0:
		value = value * 110 / 100
	case natureModifier < 1.0:
		value = value * 90 / 100
	}
	return value, nil
}
