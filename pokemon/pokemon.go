package pokemon

import (
	"time"

	"porygon/database"
)

// Attributes reaches generation-specific fields by name.
type Attributes interface {
	IntAttribute(name string) (int, error)
	SetIntAttribute(name string, value int) error
	IntAttributeNames() []string
	StringAttribute(name string) (string, error)
	SetStringAttribute(name string, value string) error
	StringAttributeNames() []string
	BoolAttribute(name string) (bool, error)
	SetBoolAttribute(name string, value bool) error
	BoolAttributeNames() []string
}

// Pokemon is the generation-independent view of a single record. Every call
// is atomic with respect to the instance. Setters validate before writing,
// so a failed call leaves the record unchanged. A field the instance's
// generation cannot store fails with ErrFeatureNotInGame, for getters and
// setters alike.
type Pokemon interface {
	Game() string
	Generation() int
	DatabaseEntry() database.PokemonEntry

	Species() string
	// SetSpecies keeps every stored field and switches to the new species'
	// default form.
	SetSpecies(species string) error
	Form() string
	SetForm(form string) error
	IsEgg() (bool, error)
	SetIsEgg(isEgg bool) error
	Condition() string
	SetCondition(condition string) error
	Nickname() string
	SetNickname(nickname string) error

	Gender() (database.Gender, error)
	SetGender(gender database.Gender) error
	IsShiny() (bool, error)
	SetShininess(shiny bool) error
	HeldItem() (string, error)
	SetHeldItem(item string) error
	Nature() (string, error)
	SetNature(nature string) error
	Personality() (uint32, error)
	SetPersonality(personality uint32) error
	PokerusDuration() (int, error)
	SetPokerusDuration(days int) error

	OriginalTrainerName() string
	SetOriginalTrainerName(name string) error
	OriginalTrainerPublicID() uint16
	SetOriginalTrainerPublicID(id uint16) error
	OriginalTrainerSecretID() (uint16, error)
	SetOriginalTrainerSecretID(id uint16) error
	// OriginalTrainerID is the public id in the low half and, from
	// generation 3, the secret id in the high half.
	OriginalTrainerID() uint32
	SetOriginalTrainerID(id uint32) error
	OriginalTrainerGender() (database.Gender, error)
	SetOriginalTrainerGender(gender database.Gender) error
	CurrentTrainerFriendship() (int, error)
	SetCurrentTrainerFriendship(friendship int) error

	Ability() (string, error)
	SetAbility(ability string) error
	Ball() (string, error)
	SetBall(ball string) error
	LevelMet() (int, error)
	SetLevelMet(level int) error
	LocationMet(asEgg bool) (string, error)
	SetLocationMet(location string, asEgg bool) error
	// DateMet is the zero time when no date is stored. Setting the zero
	// time clears it.
	DateMet(asEgg bool) (time.Time, error)
	SetDateMet(date time.Time, asEgg bool) error
	OriginalGame() (string, error)
	SetOriginalGame(game string) error
	Language() (string, error)
	SetLanguage(language string) error

	// Experience is the source of truth for the level.
	Experience() int
	SetExperience(experience int) error
	Level() int
	// SetLevel moves the experience to the minimum for the level.
	SetLevel(level int) error
	CurrentHP() int
	SetCurrentHP(hp int) error

	Moves() [4]MoveSlot
	// SetMove refills the slot's PP to the move's maximum.
	SetMove(move string, index int) error
	SetMovePP(index, pp int) error

	EVs() map[database.Stat]int
	SetEV(stat database.Stat, value int) error
	IVs() map[database.Stat]int
	SetIV(stat database.Stat, value int) error
	Stats() map[database.Stat]int

	Markings() (map[string]bool, error)
	SetMarking(marking string, value bool) error
	Ribbons() (map[string]bool, error)
	// Ribbon fails with ErrInvalidArgument for a ribbon the generation does
	// not define.
	Ribbon(ribbon string) (bool, error)
	SetRibbon(ribbon string, value bool) error
	SuperTrainingMedals() (map[string]bool, error)
	SetSuperTrainingMedal(medal string, value bool) error
	ContestStats() (map[string]int, error)
	SetContestStat(stat string, value int) error

	Attributes

	// Clone returns an independent copy with its own backing storage.
	Clone() Pokemon
	// NativeData returns the encoded backing record.
	NativeData() []byte
	ToGame(game string) (Pokemon, error)
}

// SameRecord reports whether two entities hold byte-identical records for
// the same game.
func SameRecord(a, b Pokemon) bool {
	if a == nil || b == nil || a.Game() != b.Game() {
		return false
	}
	return string(a.NativeData()) == string(b.NativeData())
}
