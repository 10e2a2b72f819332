package calculations

import (
	"fmt"

	"porygon/database"
)

// Attack IV below which a Game Boy era pokemon is female, by gender rate.
var gbFemaleThresholds = map[int]int{
	1: 2,
	2: 4,
	4: 7,
	6: 12,
}

// Lowest personality byte below which a pokemon is female, by gender rate.
var modernFemaleThresholds = map[int]uint32{
	1: 31,
	2: 64,
	4: 127,
	6: 191,
}

func fixedGender(genderRate int) (database.Gender, bool) {
	switch {
	case genderRate < 0:
		return database.GenderGenderless, true
	case genderRate == database.GenderRateAllMale:
		return database.GenderMale, true
	case genderRate >= database.GenderRateAllFemale:
		return database.GenderFemale, true
	}
	return "", false
}

// GBGender derives a generation 2 gender from the Attack IV.
func GBGender(genderRate, ivAttack int) (database.Gender, error) {
	if ivAttack < 0 || ivAttack > 15 {
		return "", fmt.Errorf("%w: IV attack %d not in [0, 15]", ErrOutOfRange, ivAttack)
	}
	if g, ok := fixedGender(genderRate); ok {
		return g, nil
	}
	threshold, ok := gbFemaleThresholds[genderRate]
	if !ok {
		threshold = genderRate * 2
	}
	if ivAttack < threshold {
		return database.GenderFemale, nil
	}
	return database.GenderMale, nil
}

// ModernGender derives a generation 3+ gender from the personality value.
func ModernGender(genderRate int, personality uint32) database.Gender {
	if g, ok := fixedGender(genderRate); ok {
		return g
	}
	threshold, ok := modernFemaleThresholds[genderRate]
	if !ok {
		threshold = uint32(genderRate) * 32
	}
	if personality&0xFF < threshold {
		return database.GenderFemale
	}
	return database.GenderMale
}
