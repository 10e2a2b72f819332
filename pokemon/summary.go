package pokemon

import (
	"slices"
	"time"

	"gopkg.in/guregu/null.v4"

	"porygon/database"
)

type TrainerSummary struct {
	Name     string      `json:"name"`
	PublicID int         `json:"public_id"`
	SecretID null.Int    `json:"secret_id"`
	Gender   null.String `json:"gender"`
}

// Summary is a JSON-friendly snapshot of a record. Fields the game does not
// store are null.
type Summary struct {
	Game            string                `json:"game"`
	Generation      int                   `json:"generation"`
	Species         string                `json:"species"`
	Form            string                `json:"form"`
	Nickname        string                `json:"nickname"`
	Level           int                   `json:"level"`
	Experience      int                   `json:"experience"`
	CurrentHP       int                   `json:"current_hp"`
	Condition       string                `json:"condition"`
	IsEgg           null.Bool             `json:"is_egg"`
	Gender          null.String           `json:"gender"`
	Shiny           null.Bool             `json:"shiny"`
	Nature          null.String           `json:"nature"`
	Personality     null.Int              `json:"personality"`
	HeldItem        null.String           `json:"held_item"`
	Ability         null.String           `json:"ability"`
	Ball            null.String           `json:"ball"`
	PokerusDuration null.Int              `json:"pokerus_duration"`
	Friendship      null.Int              `json:"friendship"`
	LevelMet        null.Int              `json:"level_met"`
	LocationMet     null.String           `json:"location_met"`
	EggLocationMet  null.String           `json:"egg_location_met"`
	DateMet         null.Time             `json:"date_met"`
	EggDateMet      null.Time             `json:"egg_date_met"`
	OriginalGame    null.String           `json:"original_game"`
	Language        null.String           `json:"language"`
	Trainer         TrainerSummary        `json:"trainer"`
	Moves           [4]MoveSlot           `json:"moves"`
	EVs             map[database.Stat]int `json:"evs"`
	IVs             map[database.Stat]int `json:"ivs"`
	Stats           map[database.Stat]int `json:"stats"`
	Markings        []string              `json:"markings,omitempty"`
	Ribbons         []string              `json:"ribbons,omitempty"`
	TrainingMedals  []string              `json:"super_training_medals,omitempty"`
	ContestStats    map[string]int        `json:"contest_stats,omitempty"`
	Attributes      map[string]any        `json:"attributes,omitempty"`
}

func nullString[T ~string](v T, err error) null.String {
	if err != nil {
		return null.String{}
	}
	return null.StringFrom(string(v))
}

func nullInt[T ~int | ~uint16 | ~uint32](v T, err error) null.Int {
	if err != nil {
		return null.Int{}
	}
	return null.IntFrom(int64(v))
}

func nullBool(v bool, err error) null.Bool {
	if err != nil {
		return null.Bool{}
	}
	return null.BoolFrom(v)
}

// nullTime treats an unset date like a missing field.
func nullTime(v time.Time, err error) null.Time {
	return null.NewTime(v, err == nil && !v.IsZero())
}

// setNames returns the keys whose value is true, sorted.
func setNames(m map[string]bool, err error) []string {
	if err != nil {
		return nil
	}
	var out []string
	for name, set := range m {
		if set {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

func Summarize(p Pokemon) Summary {
	s := Summary{
		Game:            p.Game(),
		Generation:      p.Generation(),
		Species:         p.Species(),
		Form:            p.Form(),
		Nickname:        p.Nickname(),
		Level:           p.Level(),
		Experience:      p.Experience(),
		CurrentHP:       p.CurrentHP(),
		Condition:       p.Condition(),
		IsEgg:           nullBool(p.IsEgg()),
		Gender:          nullString(p.Gender()),
		Shiny:           nullBool(p.IsShiny()),
		Nature:          nullString(p.Nature()),
		Personality:     nullInt(p.Personality()),
		HeldItem:        nullString(p.HeldItem()),
		Ability:         nullString(p.Ability()),
		Ball:            nullString(p.Ball()),
		PokerusDuration: nullInt(p.PokerusDuration()),
		Friendship:      nullInt(p.CurrentTrainerFriendship()),
		LevelMet:        nullInt(p.LevelMet()),
		LocationMet:     nullString(p.LocationMet(false)),
		EggLocationMet:  nullString(p.LocationMet(true)),
		DateMet:         nullTime(p.DateMet(false)),
		EggDateMet:      nullTime(p.DateMet(true)),
		OriginalGame:    nullString(p.OriginalGame()),
		Language:        nullString(p.Language()),
		Trainer: TrainerSummary{
			Name:     p.OriginalTrainerName(),
			PublicID: int(p.OriginalTrainerPublicID()),
			SecretID: nullInt(p.OriginalTrainerSecretID()),
			Gender:   nullString(p.OriginalTrainerGender()),
		},
		Moves:    p.Moves(),
		EVs:      p.EVs(),
		IVs:      p.IVs(),
		Stats:    p.Stats(),
		Markings: setNames(p.Markings()),
		Ribbons:  setNames(p.Ribbons()),

		TrainingMedals: setNames(p.SuperTrainingMedals()),
	}
	if contest, err := p.ContestStats(); err == nil {
		s.ContestStats = contest
	}

	attrs := map[string]any{}
	for _, name := range p.IntAttributeNames() {
		if v, err := p.IntAttribute(name); err == nil {
			attrs[name] = v
		}
	}
	for _, name := range p.StringAttributeNames() {
		if v, err := p.StringAttribute(name); err == nil {
			attrs[name] = v
		}
	}
	for _, name := range p.BoolAttributeNames() {
		if v, err := p.BoolAttribute(name); err == nil {
			attrs[name] = v
		}
	}
	if len(attrs) > 0 {
		s.Attributes = attrs
	}
	return s
}
