package calculations

import (
	"fmt"
	"slices"

	"porygon/database"
)

// Natures in index order. Index/5 is the raised stat and index%5 the
// lowered one, over natureStats.
var Natures = []string{
	"Hardy", "Lonely", "Brave", "Adamant", "Naughty",
	"Bold", "Docile", "Relaxed", "Impish", "Lax",
	"Timid", "Hasty", "Serious", "Jolly", "Naive",
	"Modest", "Mild", "Quiet", "Bashful", "Rash",
	"Calm", "Gentle", "Sassy", "Careful", "Quirky",
}

var natureStats = []database.Stat{
	database.StatAttack,
	database.StatDefense,
	database.StatSpeed,
	database.StatSpecialAttack,
	database.StatSpecialDefense,
}

func NatureIndex(nature string) (int, error) {
	i := slices.Index(Natures, nature)
	if i < 0 {
		return 0, fmt.Errorf("%w: nature %q", ErrInvalidArgument, nature)
	}
	return i, nil
}

// NatureFromPersonality is the generation 3/4 derivation.
func NatureFromPersonality(personality uint32) string {
	return Natures[personality%25]
}

// NatureModifier returns 1.1, 0.9 or 1.0 for the stat under the nature.
func NatureModifier(nature string, stat database.Stat) (float64, error) {
	i, err := NatureIndex(nature)
	if err != nil {
		return 0, err
	}
	raised, lowered := natureStats[i/5], natureStats[i%5]
	switch {
	case raised == lowered:
		return 1.0, nil
	case stat == raised:
		return 1.1, nil
	case stat == lowered:
		return 0.9, nil
	}
	return 1.0, nil
}
