package pokemon

import (
	"fmt"
	"sync"
	"time"

	"porygon/calculations"
	"porygon/database"
	"porygon/util"
)

const (
	unownSpecies     = "Unown"
	trainerNameLimit = 7

	// Game Boy PP bytes keep the PP Ups in the top two bits, so the count
	// tops out where the games cap it.
	gbMaxPP  = 61
	gbPPMask = 0x3F
)

// base carries what every variant shares: the instance lock, the metadata
// view of the current species and form, and the attribute bridge. Methods
// without a lock assume the caller holds it.
type base struct {
	mu      sync.Mutex
	factory *Factory
	game    database.Game
	entry   database.PokemonEntry
	Attributes
}

func (b *base) init(f *Factory, g database.Game, entry database.PokemonEntry) {
	b.factory = f
	b.game = g
	b.entry = entry
}

func (b *base) Game() string {
	return b.game.Name
}

func (b *base) Generation() int {
	return b.game.Generation
}

func (b *base) DatabaseEntry() database.PokemonEntry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.entry
}

func (b *base) Species() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.entry.Species
}

func (b *base) Form() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.entry.Form
}

func (b *base) lookup() database.Lookup {
	return b.factory.Lookup
}

func (b *base) notInGame(feature string) error {
	return notInGame(feature, b.game.Name)
}

func (b *base) isUnown() bool {
	return b.entry.Species == unownSpecies
}

func (b *base) speciesEntry(species, form string) (database.PokemonEntry, error) {
	entry, err := b.lookup().Pokemon(species, b.game.Name, form)
	return entry, translate(err)
}

// syncForm points the entry at a form derived from stored data.
func (b *base) syncForm(form string) {
	if form == b.entry.Form {
		return
	}
	entry, err := b.speciesEntry(b.entry.Species, form)
	if err != nil {
		return
	}
	b.entry = entry
}

func nicknameLimit(generation int) int {
	if generation >= 6 {
		return 12
	}
	return 10
}

func checkName(field, name string, limit int) error {
	if n := util.RuneLen(name); n < 1 || n > limit {
		return invalidArgument("%s %q must be 1 to %d characters", field, name, limit)
	}
	return nil
}

// speciesNickname reports whether nickname is the species' default name.
func speciesNickname(species, nickname string) bool {
	return nickname == species || nickname == util.UpperName(species)
}

func invalidName(id int) string {
	return fmt.Sprintf("Invalid (0x%X)", id)
}

// checkGender validates a requested gender for the species. fixed reports a
// single-gender species, for which the request is a no-op.
func (b *base) checkGender(g database.Gender) (fixed bool, err error) {
	switch g {
	case database.GenderMale, database.GenderFemale, database.GenderGenderless:
	default:
		return false, invalidArgument("gender %q", g)
	}
	if species, ok := b.entry.FixedGender(); ok {
		if species == database.GenderGenderless || species != g {
			return true, invalidArgument("%s cannot be %s", b.entry.Species, g)
		}
		return true, nil
	}
	if g == database.GenderGenderless {
		return false, invalidArgument("%s cannot be genderless", b.entry.Species)
	}
	return false, nil
}

func (b *base) minLevel() int {
	if b.game.Generation <= 2 {
		return 2
	}
	return 1
}

func (b *base) experienceAt(level int) int {
	exp, _ := calculations.ExperienceAtLevel(b.entry.GrowthRate, level)
	return exp
}

func (b *base) levelAt(exp int) int {
	level, err := calculations.LevelAtExperience(b.entry.GrowthRate, exp)
	if err != nil {
		return 1
	}
	return level
}

// checkExperience keeps the level at or above the generation's minimum.
func (b *base) checkExperience(exp int) error {
	return checkRange("experience", exp, b.experienceAt(b.minLevel()), b.experienceAt(calculations.MaxLevel))
}

func (b *base) checkLevel(level int) error {
	return checkRange("level", level, b.minLevel(), calculations.MaxLevel)
}

func (b *base) moveSlot(id, pp, ups int) MoveSlot {
	if id == 0 {
		return emptyMoveSlot
	}
	move, err := b.lookup().MoveByID(id, b.game.Name)
	if err != nil {
		return MoveSlot{Move: invalidName(id), PP: pp}
	}
	maxPP := move.PP[ups&3]
	if b.game.Generation <= 2 {
		maxPP = min(maxPP, gbMaxPP)
	}
	return MoveSlot{Move: move.Name, PP: pp, MaxPP: maxPP}
}

// resolveMove accepts None for an empty slot.
func (b *base) resolveMove(name string, index int) (database.MoveEntry, error) {
	if err := checkRange("move index", index, 0, 3); err != nil {
		return database.MoveEntry{}, err
	}
	if name == database.None {
		return database.MoveEntry{Name: database.None}, nil
	}
	move, err := b.lookup().Move(name, b.game.Name)
	if err != nil {
		return database.MoveEntry{}, translate(err)
	}
	return move, nil
}

func (b *base) checkMovePP(slot MoveSlot, index, pp int) error {
	if err := checkRange("move index", index, 0, 3); err != nil {
		return err
	}
	if slot.Move == database.None {
		return invalidArgument("move slot %d is empty", index)
	}
	return checkRange("PP", pp, 0, slot.MaxPP)
}

func (b *base) resolveHeldItem(name string) (int, error) {
	if name == database.None {
		return 0, nil
	}
	item, err := b.lookup().Item(name, b.game.Name)
	if err != nil {
		return 0, translate(err)
	}
	if !item.Holdable {
		return 0, invalidArgument("%s cannot be held", name)
	}
	return item.ID, nil
}

func (b *base) itemName(id int) string {
	if id == 0 {
		return database.None
	}
	item, err := b.lookup().ItemByID(id, b.game.Name)
	if err != nil {
		return invalidName(id)
	}
	return item.Name
}

func (b *base) resolveLocation(name string) (int, error) {
	if name == database.None {
		return 0, nil
	}
	loc, err := b.lookup().Location(name, b.game.Name)
	if err != nil {
		return 0, translate(err)
	}
	return loc.ID, nil
}

func (b *base) locationName(id int) string {
	if id == 0 {
		return database.None
	}
	loc, err := b.lookup().LocationByID(id, b.game.Name)
	if err != nil {
		return invalidName(id)
	}
	return loc.Name
}

// abilityName maps a stored slot to a name. Slot 1 falls back to the first
// ability for species with only one.
func (b *base) abilityName(slot int) string {
	switch {
	case slot >= 2:
		return b.entry.HiddenAbility
	case slot == 1 && b.entry.Abilities[1] != database.None:
		return b.entry.Abilities[1]
	}
	return b.entry.Abilities[0]
}

func (b *base) resolveAbility(name string) (int, error) {
	switch {
	case name == database.None || name == "":
	case name == b.entry.Abilities[0]:
		return 0, nil
	case name == b.entry.Abilities[1]:
		return 1, nil
	case name == b.entry.HiddenAbility:
		return 2, nil
	}
	return 0, invalidArgument("%s cannot have %q in %s", b.entry.Species, name, b.game.Name)
}

func (b *base) resolveBall(name string) (int, error) {
	for i, ball := range Balls(b.game.Generation) {
		if ball == name {
			return i, nil
		}
	}
	return 0, invalidArgument("ball %q in %s", name, b.game.Name)
}

func (b *base) ballName(index int) string {
	balls := Balls(b.game.Generation)
	if index < 0 || index >= len(balls) {
		return invalidName(index)
	}
	return balls[index]
}

// resolveOriginalGame accepts any game from generation 3 up to this one.
func (b *base) resolveOriginalGame(name string) (database.Game, error) {
	g, err := database.GameByName(name)
	if err != nil {
		return database.Game{}, translate(err)
	}
	if g.Generation < 3 || g.Generation > b.game.Generation {
		return database.Game{}, invalidArgument("%s cannot be the original game in %s", name, b.game.Name)
	}
	return g, nil
}

func (b *base) gameName(id int) string {
	g, err := database.GameByID(id)
	if err != nil {
		return invalidName(id)
	}
	return g.Name
}

// gbStats computes generation 1/2 stats. Generation 2 splits Special into
// two stats that share the Special EV and IV.
func (b *base) gbStats(level int, evs, ivs map[database.Stat]int) map[database.Stat]int {
	out := map[database.Stat]int{}
	for stat, baseStat := range b.entry.BaseStats {
		src := stat
		if stat == database.StatSpecialAttack || stat == database.StatSpecialDefense {
			src = database.StatSpecial
		}
		value, err := calculations.GBStat(stat, level, baseStat, evs[src], ivs[src])
		if err != nil {
			value = 0
		}
		out[stat] = value
	}
	return out
}

func (b *base) modernStats(level int, nature string, evs, ivs map[database.Stat]int) map[database.Stat]int {
	out := map[database.Stat]int{}
	for stat, baseStat := range b.entry.BaseStats {
		modifier, err := calculations.NatureModifier(nature, stat)
		if err != nil {
			modifier = 1.0
		}
		value, err := calculations.ModernStat(stat, level, modifier, baseStat, min(evs[stat], 255), ivs[stat])
		if err != nil {
			value = 0
		}
		out[stat] = value
	}
	return out
}

func (b *base) hiddenPowerModern(ivs map[database.Stat]int) (string, error) {
	hp, err := calculations.ModernHiddenPower(ivs, b.game.Generation)
	if err != nil {
		return "", translate(err)
	}
	return hp.Type, nil
}

// Fields a generation may lack. Variants override what they store.

func (b *base) IsEgg() (bool, error)                            { return false, b.notInGame("egg flag") }
func (b *base) SetIsEgg(bool) error                             { return b.notInGame("egg flag") }
func (b *base) IsShiny() (bool, error)                          { return false, b.notInGame("shininess") }
func (b *base) SetShininess(bool) error                         { return b.notInGame("shininess") }
func (b *base) HeldItem() (string, error)                       { return "", b.notInGame("held item") }
func (b *base) SetHeldItem(string) error                        { return b.notInGame("held item") }
func (b *base) Nature() (string, error)                         { return "", b.notInGame("nature") }
func (b *base) SetNature(string) error                          { return b.notInGame("nature") }
func (b *base) Personality() (uint32, error)                    { return 0, b.notInGame("personality") }
func (b *base) SetPersonality(uint32) error                     { return b.notInGame("personality") }
func (b *base) PokerusDuration() (int, error)                   { return 0, b.notInGame("pokerus") }
func (b *base) SetPokerusDuration(int) error                    { return b.notInGame("pokerus") }
func (b *base) OriginalTrainerSecretID() (uint16, error)        { return 0, b.notInGame("trainer secret id") }
func (b *base) SetOriginalTrainerSecretID(uint16) error         { return b.notInGame("trainer secret id") }
func (b *base) OriginalTrainerGender() (database.Gender, error) { return "", b.notInGame("trainer gender") }
func (b *base) SetOriginalTrainerGender(database.Gender) error  { return b.notInGame("trainer gender") }
func (b *base) CurrentTrainerFriendship() (int, error)          { return 0, b.notInGame("friendship") }
func (b *base) SetCurrentTrainerFriendship(int) error           { return b.notInGame("friendship") }
func (b *base) Ability() (string, error)                        { return "", b.notInGame("ability") }
func (b *base) SetAbility(string) error                         { return b.notInGame("ability") }
func (b *base) Ball() (string, error)                           { return "", b.notInGame("ball") }
func (b *base) SetBall(string) error                            { return b.notInGame("ball") }
func (b *base) LevelMet() (int, error)                          { return 0, b.notInGame("level met") }
func (b *base) SetLevelMet(int) error                           { return b.notInGame("level met") }
func (b *base) LocationMet(bool) (string, error)                { return "", b.notInGame("location met") }
func (b *base) SetLocationMet(string, bool) error               { return b.notInGame("location met") }
func (b *base) OriginalGame() (string, error)                   { return "", b.notInGame("original game") }
func (b *base) SetOriginalGame(string) error                    { return b.notInGame("original game") }
func (b *base) Language() (string, error)                       { return "", b.notInGame("language") }
func (b *base) SetLanguage(string) error                        { return b.notInGame("language") }
func (b *base) Markings() (map[string]bool, error)              { return nil, b.notInGame("markings") }
func (b *base) SetMarking(string, bool) error                   { return b.notInGame("markings") }
func (b *base) Ribbons() (map[string]bool, error)               { return nil, b.notInGame("ribbons") }
func (b *base) SetRibbon(string, bool) error                    { return b.notInGame("ribbons") }
func (b *base) Ribbon(string) (bool, error)                     { return false, b.notInGame("ribbons") }
func (b *base) ContestStats() (map[string]int, error)           { return nil, b.notInGame("contest stats") }
func (b *base) SetContestStat(string, int) error                { return b.notInGame("contest stats") }
func (b *base) DateMet(bool) (time.Time, error)                 { return time.Time{}, b.notInGame("date met") }
func (b *base) SetDateMet(time.Time, bool) error                { return b.notInGame("date met") }
func (b *base) SuperTrainingMedals() (map[string]bool, error)   { return nil, b.notInGame("super training medals") }
func (b *base) SetSuperTrainingMedal(string, bool) error        { return b.notInGame("super training medals") }
