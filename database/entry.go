package database

import "slices"

// PokemonEntry is the per-game view of a species and form.
type PokemonEntry struct {
	Species        string       `json:"species"`
	SpeciesID      int          `json:"species_id"`
	Game           string       `json:"game"`
	Generation     int          `json:"generation"`
	Form           string       `json:"form"`
	Forms          []string     `json:"forms"`
	Types          [2]string    `json:"types"`
	BaseStats      map[Stat]int `json:"base_stats"`
	Abilities      [2]string    `json:"abilities"`
	HiddenAbility  string       `json:"hidden_ability"`
	EggGroups      []string     `json:"egg_groups"`
	GenderRate     int          `json:"gender_rate"`
	BaseFriendship int          `json:"base_friendship"`
	GrowthRate     string       `json:"growth_rate"`
	CatchRate      int          `json:"catch_rate"`
}

// FixedGender returns the gender every member of the species has, if any.
func (e PokemonEntry) FixedGender() (Gender, bool) {
	switch {
	case e.GenderRate < 0:
		return GenderGenderless, true
	case e.GenderRate == GenderRateAllMale:
		return GenderMale, true
	case e.GenderRate >= GenderRateAllFemale:
		return GenderFemale, true
	}
	return "", false
}

func (e PokemonEntry) HasForm(form string) bool {
	return slices.Contains(e.Forms, form)
}

// HasAbility reports whether the species can have the ability in this game,
// hidden ability included.
func (e PokemonEntry) HasAbility(ability string) bool {
	if ability == None || ability == "" {
		return false
	}
	return e.Abilities[0] == ability || e.Abilities[1] == ability || e.HiddenAbility == ability
}

type MoveEntry struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
	Game string `json:"game"`
	Type string `json:"type"`
	// PP is indexed by the number of PP Ups applied.
	PP [4]int `json:"pp"`
}

type ItemEntry struct {
	Name     string `json:"name"`
	ID       int    `json:"id"`
	Game     string `json:"game"`
	Holdable bool   `json:"holdable"`
	Pocket   string `json:"pocket"`
}

type LocationEntry struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
	Game string `json:"game"`
}
