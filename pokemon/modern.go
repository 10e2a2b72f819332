package pokemon

import (
	"slices"

	"porygon/calculations"
	"porygon/database"
)

// Layout of the generation 3 ribbon word, shared by the Hoenn ribbon word of
// later generations.
const (
	hoennRankBits      = 3
	hoennSpecialsShift = 15
)

// personalityConstraints captures every value currently derived from pid, so
// a re-solve can override one of them and keep the rest.
func (b *base) personalityConstraints(pid, trainerID uint32, derivedNature bool) calculations.PersonalityConstraints {
	shiny := calculations.ModernShiny(pid, trainerID)
	c := calculations.PersonalityConstraints{
		GenderRate: b.entry.GenderRate,
		Shiny:      &shiny,
		TrainerID:  trainerID,
	}
	if _, fixed := b.entry.FixedGender(); !fixed {
		c.Gender = calculations.ModernGender(b.entry.GenderRate, pid)
	}
	if b.isUnown() {
		c.Unown = calculations.ModernUnownForm(pid)
	}
	if derivedNature {
		c.Nature = calculations.NatureFromPersonality(pid)
	}
	return c
}

func solvePersonality(current uint32, c calculations.PersonalityConstraints) (uint32, error) {
	pid, err := calculations.SolvePersonality(current, c)
	return pid, translate(err)
}

func (b *base) syncModernUnown(pid uint32) {
	if b.isUnown() {
		b.syncForm(calculations.ModernUnownForm(pid))
	}
}

func ivMap(iv func(i int) int) map[database.Stat]int {
	out := make(map[database.Stat]int, len(modernStatOrder))
	for i, stat := range modernStatOrder {
		out[stat] = iv(i)
	}
	return out
}

// hoennRibbonMap decodes the generation 3 ribbon word.
func hoennRibbonMap(out map[string]bool, bits uint32) {
	var ranks [5]int
	for i := range ranks {
		ranks[i] = int(bits >> (hoennRankBits * i) & 0x7)
	}
	contestRibbonsFromRanks(out, ranks)
	flagRibbons(out, hoennRibbons, bits>>hoennSpecialsShift)
}

// setHoennRibbon updates a generation 3 ribbon word. ok is false when name is
// not a generation 3 ribbon.
func setHoennRibbon(bits uint32, name string, value bool) (uint32, bool) {
	if category, rank, ok := contestRibbon(name); ok {
		shift := hoennRankBits * category
		current := int(bits >> shift & 0x7)
		next := applyContestRibbon(current, rank, value)
		return bits&^(0x7<<shift) | uint32(next)<<shift, true
	}
	specials := bits >> hoennSpecialsShift & 0xFFF
	specials, ok := setFlagRibbon(hoennRibbons, specials, name, value)
	if !ok {
		return bits, false
	}
	return bits&^(0xFFF<<hoennSpecialsShift) | specials<<hoennSpecialsShift, true
}

func contestStatMap(values [6]uint8) map[string]int {
	out := make(map[string]int, len(ContestStats))
	for i, name := range ContestStats {
		out[name] = int(values[i])
	}
	return out
}

func contestStatIndex(name string, value int) (int, error) {
	i := slices.Index(ContestStats, name)
	if i < 0 {
		return 0, invalidArgument("contest stat %q", name)
	}
	return i, checkRange("contest stat", value, 0, 255)
}

func (b *base) checkIV(stat database.Stat, value int) (int, error) {
	i, err := statIndex(modernStatOrder, stat)
	if err != nil {
		return 0, err
	}
	return i, checkRange("IV", value, 0, 31)
}

func (b *base) checkEV(stat database.Stat, value int) (int, error) {
	i, err := statIndex(modernStatOrder, stat)
	if err != nil {
		return 0, err
	}
	return i, checkRange("EV", value, 0, 255)
}

// checkOTGender accepts the two trainer genders.
func checkOTGender(gender database.Gender) (female bool, err error) {
	switch gender {
	case database.GenderMale:
		return false, nil
	case database.GenderFemale:
		return true, nil
	}
	return false, invalidArgument("trainer gender %q", gender)
}

func otGender(female bool) database.Gender {
	if female {
		return database.GenderFemale
	}
	return database.GenderMale
}
