package database

// Stat names a battle stat. Generations 1-2 use Special in place of the
// Special Attack/Special Defense pair for EVs and IVs.
type Stat string

const (
	StatHP             Stat = "HP"
	StatAttack         Stat = "Attack"
	StatDefense        Stat = "Defense"
	StatSpeed          Stat = "Speed"
	StatSpecial        Stat = "Special"
	StatSpecialAttack  Stat = "Special Attack"
	StatSpecialDefense Stat = "Special Defense"
)

// GBStats are the stats tracked by the Game Boy generations.
var GBStats = []Stat{StatHP, StatAttack, StatDefense, StatSpeed, StatSpecial}

// ModernStats are the stats tracked from generation 3 onwards.
var ModernStats = []Stat{StatHP, StatAttack, StatDefense, StatSpeed, StatSpecialAttack, StatSpecialDefense}

type Gender string

const (
	GenderMale       Gender = "Male"
	GenderFemale     Gender = "Female"
	GenderGenderless Gender = "Genderless"
)

// Gender rates are expressed in eighths female, matching the usual
// pokedex convention. Anything negative is genderless.
const (
	GenderRateGenderless = -1
	GenderRateAllMale    = 0
	GenderRateAllFemale  = 8
)

const (
	GrowthErratic     = "erratic"
	GrowthFast        = "fast"
	GrowthMediumFast  = "medium-fast"
	GrowthMediumSlow  = "medium-slow"
	GrowthSlow        = "slow"
	GrowthFluctuating = "fluctuating"
)

// None is the sentinel name for an empty item, move or ability slot.
const None = "None"
