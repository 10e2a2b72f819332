package pokemon

import (
	"slices"
	"time"

	"porygon/database"
)

// MoveSlot is one of the four move slots. An empty slot holds None with no PP.
type MoveSlot struct {
	Move  string `json:"move"`
	PP    int    `json:"pp"`
	MaxPP int    `json:"max_pp"`
}

var emptyMoveSlot = MoveSlot{Move: database.None}

const (
	ConditionNone      = "None"
	ConditionAsleep    = "Asleep"
	ConditionPoison    = "Poison"
	ConditionBurn      = "Burn"
	ConditionFrozen    = "Frozen"
	ConditionParalysis = "Paralysis"
	ConditionBadPoison = "Bad Poison"
)

// Status bits shared by every native layout. Sleep is a turn counter in the
// low three bits.
var conditionBits = map[string]uint32{
	ConditionAsleep:    0x04,
	ConditionPoison:    0x08,
	ConditionBurn:      0x10,
	ConditionFrozen:    0x20,
	ConditionParalysis: 0x40,
	ConditionBadPoison: 0x80,
}

var gbConditions = []string{
	ConditionNone, ConditionAsleep, ConditionPoison, ConditionBurn, ConditionFrozen, ConditionParalysis,
}

// Conditions lists the status conditions a generation can store.
func Conditions(generation int) []string {
	if generation >= 3 {
		return append(slices.Clone(gbConditions), ConditionBadPoison)
	}
	return slices.Clone(gbConditions)
}

func conditionFromBits(v uint32) string {
	if v&0x07 != 0 {
		return ConditionAsleep
	}
	for _, c := range []string{ConditionPoison, ConditionBurn, ConditionFrozen, ConditionParalysis, ConditionBadPoison} {
		if v&conditionBits[c] != 0 {
			return c
		}
	}
	return ConditionNone
}

func conditionToBits(generation int, condition string) (uint32, error) {
	if !slices.Contains(Conditions(generation), condition) {
		return 0, invalidArgument("condition %q", condition)
	}
	return conditionBits[condition], nil
}

var gen3Balls = []string{
	database.None, "Master Ball", "Ultra Ball", "Great Ball", "Poké Ball", "Safari Ball", "Net Ball",
	"Dive Ball", "Nest Ball", "Repeat Ball", "Timer Ball", "Luxury Ball", "Premier Ball",
}

var gen4Balls = []string{
	"Dusk Ball", "Heal Ball", "Quick Ball", "Cherish Ball", "Fast Ball", "Level Ball", "Lure Ball",
	"Heavy Ball", "Love Ball", "Friend Ball", "Moon Ball", "Sport Ball", "Park Ball",
}

// Balls lists the balls a generation can store, in storage order.
func Balls(generation int) []string {
	switch {
	case generation < 3:
		return nil
	case generation == 3:
		return slices.Clone(gen3Balls)
	case generation == 4:
		return slices.Concat(gen3Balls, gen4Balls)
	}
	return slices.Concat(gen3Balls, gen4Balls, []string{"Dream Ball"})
}

const DefaultBall = "Poké Ball"

var languageCodes = map[string]uint8{
	"Japanese": 1,
	"English":  2,
	"French":   3,
	"Italian":  4,
	"German":   5,
	"Spanish":  7,
	"Korean":   8,
}

// Languages lists the languages a generation can store.
func Languages(generation int) []string {
	if generation < 3 {
		return nil
	}
	langs := []string{"Japanese", "English", "French", "Italian", "German", "Spanish"}
	if generation >= 4 {
		langs = append(langs, "Korean")
	}
	return langs
}

func languageCode(generation int, language string) (uint8, error) {
	if !slices.Contains(Languages(generation), language) {
		return 0, invalidArgument("language %q", language)
	}
	return languageCodes[language], nil
}

func languageName(code uint8) string {
	for name, c := range languageCodes {
		if c == code {
			return name
		}
	}
	return database.None
}

// Markings lists the box markings a generation can store, in bit order.
func Markings(generation int) []string {
	switch {
	case generation < 3:
		return nil
	case generation == 3:
		return []string{"Circle", "Triangle", "Square", "Heart"}
	}
	return []string{"Circle", "Triangle", "Square", "Heart", "Star", "Diamond"}
}

func markingsFromBits(generation int, bits uint8) map[string]bool {
	out := map[string]bool{}
	for i, name := range Markings(generation) {
		out[name] = bits&(1<<i) != 0
	}
	return out
}

func setMarkingBit(generation int, bits uint8, name string, value bool) (uint8, error) {
	i := slices.Index(Markings(generation), name)
	if i < 0 {
		return bits, invalidArgument("marking %q", name)
	}
	if value {
		return bits | 1<<i, nil
	}
	return bits &^ (1 << i), nil
}

// ContestStats are the same six stats in every generation from 3 on.
var ContestStats = []string{"Cool", "Beauty", "Cute", "Smart", "Tough", "Sheen"}

var contestCategories = []string{"Cool", "Beauty", "Cute", "Smart", "Tough"}

var contestRanks = []string{"", "Super", "Hyper", "Master"}

// Special ribbons from generation 3, in bit order.
var hoennRibbons = []string{
	"Champion", "Winning", "Victory", "Artist", "Effort", "Marine",
	"Land", "Sky", "Country", "National", "Earth", "World",
}

var sinnohRibbons = []string{
	"Sinnoh Champion", "Ability", "Great Ability", "Double Ability", "Multi Ability",
	"Pair Ability", "World Ability", "Alert", "Shock", "Downcast", "Careless", "Relax",
	"Snooze", "Smile", "Gorgeous", "Royal", "Gorgeous Royal", "Footprint", "Record",
	"History", "Legend", "Red", "Green", "Blue", "Festival", "Carnival", "Classic", "Premier",
}

var kalosRibbons = []string{
	"Kalos Champion", "Training", "Skillful Battler", "Expert Battler", "Best Friends",
	"Hoenn Champion", "Contest Star", "Coolness Master", "Beauty Master", "Cuteness Master",
	"Cleverness Master", "Toughness Master",
}

func contestRibbonNames() []string {
	var names []string
	for _, category := range contestCategories {
		for _, rank := range contestRanks {
			if rank == "" {
				names = append(names, category)
			} else {
				names = append(names, category+" "+rank)
			}
		}
	}
	return names
}

// CommonRibbons are the ribbons every generation from 3 on can store.
func CommonRibbons() []string {
	return append(contestRibbonNames(), hoennRibbons...)
}

// Ribbons lists every ribbon name a generation defines.
func Ribbons(generation int) []string {
	switch {
	case generation < 3:
		return nil
	case generation == 3:
		return CommonRibbons()
	case generation < 6:
		return slices.Concat(CommonRibbons(), sinnohRibbons)
	}
	return slices.Concat(CommonRibbons(), sinnohRibbons, kalosRibbons)
}

// ribbonValue reads one ribbon, rejecting names the generation does not
// define.
func ribbonValue(p Pokemon, name string) (bool, error) {
	if !slices.Contains(Ribbons(p.Generation()), name) {
		return false, invalidArgument("ribbon %q in %s", name, p.Game())
	}
	ribbons, err := p.Ribbons()
	if err != nil {
		return false, err
	}
	return ribbons[name], nil
}

// SuperTrainingMedals are the generation 6 regimen medals, in bit order.
var SuperTrainingMedals = []string{
	"Sp. Atk Level 1", "HP Level 1", "Attack Level 1", "Sp. Def Level 1", "Speed Level 1", "Defense Level 1",
	"Sp. Atk Level 2", "HP Level 2", "Attack Level 2", "Sp. Def Level 2", "Speed Level 2", "Defense Level 2",
	"Sp. Atk Level 3", "HP Level 3", "Attack Level 3", "Sp. Def Level 3", "Speed Level 3", "Defense Level 3",
	"The Troubles Keep on Coming?!", "The Leaf Stone Cup Begins!", "The Fire Stone Cup Begins!",
	"The Water Stone Cup Begins!", "Follow Those Fleeing Goals!", "Watch Out! That's One Tricky Second Half!",
	"An Opening of Lightning-Quick Attacks!", "Those Long Shots Are No Long Shot!", "Scatterbug Lugs Back!",
	"A Barrage of Bitbots!", "Drag Down Hydreigon!", "The Battle for the Best!",
}

const dateYearBase = 2000

// dateFromBytes reads a stored year, month and day. An unset date is the
// zero time.
func dateFromBytes(d [3]uint8) time.Time {
	if d == [3]uint8{} {
		return time.Time{}
	}
	return time.Date(dateYearBase+int(d[0]), time.Month(d[1]), int(d[2]), 0, 0, 0, 0, time.UTC)
}

// dateToBytes stores a date, the zero time clearing it.
func dateToBytes(t time.Time) ([3]uint8, error) {
	if t.IsZero() {
		return [3]uint8{}, nil
	}
	if err := checkRange("year", t.Year(), dateYearBase, dateYearBase+255); err != nil {
		return [3]uint8{}, err
	}
	return [3]uint8{uint8(t.Year() - dateYearBase), uint8(t.Month()), uint8(t.Day())}, nil
}

// contestRibbon splits a contest ribbon name into its category index and
// rank (1 for the base ribbon up to 4 for Master).
func contestRibbon(name string) (category, rank int, ok bool) {
	for ci, c := range contestCategories {
		for ri, r := range contestRanks {
			full := c
			if r != "" {
				full += " " + r
			}
			if full == name {
				return ci, ri + 1, true
			}
		}
	}
	return 0, 0, false
}

// contestRibbonsFromRanks expands per-category ranks into ribbon flags.
func contestRibbonsFromRanks(out map[string]bool, ranks [5]int) {
	for ci, c := range contestCategories {
		for ri, r := range contestRanks {
			name := c
			if r != "" {
				name += " " + r
			}
			out[name] = ranks[ci] >= ri+1
		}
	}
}

// applyContestRibbon returns the new rank for a category after setting one of
// its ribbons. Ranks are cumulative, so clearing a ribbon also clears the
// ones above it.
func applyContestRibbon(current, rank int, value bool) int {
	if value {
		return max(current, rank)
	}
	return min(current, rank-1)
}

// flagRibbons reads named flags from a bitfield.
func flagRibbons(out map[string]bool, names []string, bits uint32) {
	for i, name := range names {
		out[name] = bits&(1<<i) != 0
	}
}

func setFlagRibbon(names []string, bits uint32, name string, value bool) (uint32, bool) {
	i := slices.Index(names, name)
	if i < 0 {
		return bits, false
	}
	if value {
		return bits | 1<<i, true
	}
	return bits &^ (1 << i), true
}

// Default met location for a fresh record, by location group.
var defaultLocations = map[string]string{
	database.GroupGen2: "Special",
	database.GroupGBA:  "Fateful encounter",
	database.GroupGCN:  "Distant land",
	database.GroupGen4: "Faraway place",
	database.GroupGen5: "Faraway place",
	database.GroupGen6: "Faraway place",
}

// TimesOfDay are the generation 2 catch times.
var TimesOfDay = []string{database.None, "Morning", "Day", "Night"}

var gbStatOrder = []database.Stat{
	database.StatHP, database.StatAttack, database.StatDefense, database.StatSpeed, database.StatSpecial,
}

var modernStatOrder = []database.Stat{
	database.StatHP, database.StatAttack, database.StatDefense,
	database.StatSpeed, database.StatSpecialAttack, database.StatSpecialDefense,
}

func statIndex(order []database.Stat, stat database.Stat) (int, error) {
	i := slices.Index(order, stat)
	if i < 0 {
		return 0, invalidArgument("stat %q", stat)
	}
	return i, nil
}
