package database

// Records are the raw rows behind every lookup. Both the masterfile and the
// SQLite source produce them, Store turns them into per-game entries.

type BaseStats struct {
	HP             int `json:"hp" db:"hp"`
	Attack         int `json:"attack" db:"attack"`
	Defense        int `json:"defense" db:"defense"`
	Speed          int `json:"speed" db:"speed"`
	SpecialAttack  int `json:"special_attack" db:"special_attack"`
	SpecialDefense int `json:"special_defense" db:"special_defense"`
	// Special is the generation 1 value when it differs from SpecialAttack.
	Special int `json:"special,omitempty" db:"special"`
}

type AbilityRecord struct {
	Name       string `json:"name"`
	Generation int    `json:"generation,omitempty"`
}

type FormRecord struct {
	Name       string   `json:"name"`
	Generation int      `json:"generation,omitempty"`
	Games      []string `json:"games,omitempty"`
}

type SpeciesRecord struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Generation     int             `json:"generation"`
	Types          []string        `json:"types"`
	Gen1Types      []string        `json:"gen1_types,omitempty"`
	BaseStats      BaseStats       `json:"base_stats"`
	Abilities      []AbilityRecord `json:"abilities"`
	HiddenAbility  string          `json:"hidden_ability,omitempty"`
	EggGroups      []string        `json:"egg_groups"`
	GenderRate     int             `json:"gender_rate"`
	BaseFriendship int             `json:"base_friendship"`
	GrowthRate     string          `json:"growth_rate"`
	CatchRate      int             `json:"catch_rate"`
	Forms          []FormRecord    `json:"forms,omitempty"`
}

type MoveRecord struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Generation int      `json:"generation"`
	Type       string   `json:"type"`
	PP         int      `json:"pp"`
	Games      []string `json:"games,omitempty"`
}

type ItemRecord struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Generation     int      `json:"generation"`
	LastGeneration int      `json:"last_generation,omitempty"`
	Holdable       bool     `json:"holdable"`
	Pocket         string   `json:"pocket"`
	Games          []string `json:"games,omitempty"`
}

type LocationRecord struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Groups []string `json:"groups"`
}

// Source serves raw records by name or id. Lookups that miss return an
// error wrapping ErrNotFound.
type Source interface {
	SpeciesByName(name string) (*SpeciesRecord, error)
	SpeciesByID(id int) (*SpeciesRecord, error)
	MoveByName(name string) (*MoveRecord, error)
	MoveByID(id int) (*MoveRecord, error)
	ItemByName(name string) (*ItemRecord, error)
	ItemByID(id int) (*ItemRecord, error)
	LocationByName(name string) (*LocationRecord, error)
	LocationByID(id int) (*LocationRecord, error)
}
