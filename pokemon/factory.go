package pokemon

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"sync"

	log "github.com/sirupsen/logrus"

	"porygon/calculations"
	"porygon/database"
	"porygon/native"
	"porygon/stats_collector"
	"porygon/util"
)

// Defaults are the trainer values stamped on every record built by Make.
type Defaults struct {
	TrainerName   string
	TrainerID     uint32
	TrainerGender database.Gender
	Language      string
}

func StandardDefaults() Defaults {
	return Defaults{
		TrainerName:   "PORYGON",
		TrainerID:     0x04D2_162E,
		TrainerGender: database.GenderMale,
		Language:      "English",
	}
}

// Factory builds entities against one metadata source. It is safe for
// concurrent use; the entities it returns are not shared between calls.
type Factory struct {
	Lookup   database.Lookup
	Defaults Defaults
	Stats    stats_collector.StatsCollector

	randMu sync.Mutex
	rand   *rand.Rand
}

func NewFactory(lookup database.Lookup, defaults Defaults, stats stats_collector.StatsCollector) *Factory {
	if stats == nil {
		stats = stats_collector.NewNoopStatsCollector()
	}
	return &Factory{
		Lookup:   lookup,
		Defaults: defaults,
		Stats:    stats,
		rand:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Seed makes the random IVs and personality values reproducible.
func (f *Factory) Seed(seed uint64) {
	f.randMu.Lock()
	defer f.randMu.Unlock()
	f.rand = rand.New(rand.NewPCG(seed, seed))
}

func (f *Factory) uint32() uint32 {
	f.randMu.Lock()
	defer f.randMu.Unlock()
	return f.rand.Uint32()
}

func (f *Factory) intN(n int) int {
	f.randMu.Lock()
	defer f.randMu.Unlock()
	return f.rand.IntN(n)
}

func (f *Factory) newVariant(g database.Game, entry database.PokemonEntry) Pokemon {
	switch {
	case g.Generation == 1:
		return newGen1(f, g, entry)
	case g.Generation == 2:
		return newGen2(f, g, entry)
	case g.Gamecube:
		return newGCN(f, g, entry)
	case g.Generation == 3:
		return newGBA(f, g, entry)
	}
	return newNDS(f, g, entry)
}

// Make builds a record of species at level with the Factory's trainer
// defaults. An empty form selects the species' default form.
func (f *Factory) Make(species, game, form string, level int) (Pokemon, error) {
	g, err := database.GameByName(game)
	if err != nil {
		return nil, translate(err)
	}
	entry, err := f.Lookup.Pokemon(species, game, form)
	if err != nil {
		return nil, translate(err)
	}
	minLevel := 1
	if g.Generation <= 2 {
		minLevel = 2
	}
	if err := checkRange("level", level, minLevel, calculations.MaxLevel); err != nil {
		return nil, err
	}

	p := f.newVariant(g, entry)
	if err := f.initialize(p, g, entry, form, level); err != nil {
		return nil, err
	}
	f.Stats.IncPokemonCreated(game, "make")
	log.Debugf("[POKEMON] Made %s (%s) level %d in %s", entry.Species, p.Form(), level, game)
	return p, nil
}

func (f *Factory) initialize(p Pokemon, g database.Game, entry database.PokemonEntry, form string, level int) error {
	generation := g.Generation
	d := f.Defaults

	nickname := entry.Species
	if generation < 5 {
		nickname = util.UpperName(nickname)
	}
	nickname, _ = util.TruncateUTF8(nickname, nicknameLimit(generation))

	steps := []func() error{
		func() error { return p.SetLevel(level) },
		func() error { return p.SetOriginalTrainerName(d.TrainerName) },
		func() error { return p.SetOriginalTrainerPublicID(uint16(d.TrainerID)) },
		func() error { return p.SetCondition(ConditionNone) },
		func() error { return p.SetNickname(nickname) },
	}
	if generation >= 2 {
		levelMet := level
		if generation == 2 {
			levelMet = min(level, gen2MaxLevelMet)
		}
		steps = append(steps,
			func() error { return p.SetHeldItem(database.None) },
			func() error { return p.SetOriginalTrainerGender(d.TrainerGender) },
			func() error { return p.SetCurrentTrainerFriendship(entry.BaseFriendship) },
			func() error { return p.SetPokerusDuration(0) },
			func() error { return p.SetLevelMet(levelMet) },
			func() error { return p.SetLocationMet(defaultLocations[g.Group], false) },
		)
	}
	if generation >= 3 {
		pid := f.uint32()
		steps = append(steps,
			func() error { return p.SetOriginalTrainerSecretID(uint16(d.TrainerID >> 16)) },
			func() error { return p.SetPersonality(pid) },
			func() error { return p.SetBall(DefaultBall) },
			func() error { return p.SetOriginalGame(g.Name) },
			func() error { return p.SetLanguage(d.Language) },
			func() error { return p.SetAbility(defaultAbility(entry, pid)) },
		)
	}
	if generation >= 4 {
		steps = append(steps, func() error { return p.SetLocationMet(database.None, true) })
	}
	if generation >= 5 {
		nature := calculations.Natures[f.intN(len(calculations.Natures))]
		steps = append(steps, func() error { return p.SetNature(nature) })
	}

	stats, maxIV := database.ModernStats, 31
	if generation <= 2 {
		stats, maxIV = []database.Stat{database.StatAttack, database.StatDefense, database.StatSpeed, database.StatSpecial}, 15
	}
	for _, stat := range stats {
		iv := f.intN(maxIV + 1)
		steps = append(steps, func() error { return p.SetIV(stat, iv) })
	}
	if form != "" && entry.Species == unownSpecies {
		steps = append(steps, func() error { return p.SetForm(form) })
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return p.SetCurrentHP(p.Stats()[database.StatHP])
}

// defaultAbility picks between two regular abilities with the low bit of the
// personality value.
func defaultAbility(entry database.PokemonEntry, pid uint32) string {
	if entry.Abilities[1] != database.None && pid%2 == 1 {
		return entry.Abilities[1]
	}
	return entry.Abilities[0]
}

// FromNative decodes a stored record for game. Every failure is reported
// as ErrRuntime.
func (f *Factory) FromNative(data []byte, game string) (Pokemon, error) {
	g, err := database.GameByName(game)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRuntime, err)
	}
	var p Pokemon
	switch {
	case g.Generation == 1:
		p, err = gen1FromNative(f, g, data)
	case g.Generation == 2:
		p, err = gen2FromNative(f, g, data)
	case g.Gamecube:
		p, err = gcnFromNative(f, g, data)
	case g.Generation == 3:
		p, err = gbaFromNative(f, g, data)
	default:
		p, err = ndsFromNative(f, g, data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s record: %w", ErrRuntime, game, err)
	}
	f.Stats.IncPokemonCreated(game, "native")
	log.Debugf("[POKEMON] Decoded %s from %d bytes of %s data", p.Species(), len(data), game)
	return p, nil
}

// NativeSize is the record length FromNative expects for game.
func NativeSize(game string) (int, error) {
	g, err := database.GameByName(game)
	if err != nil {
		return 0, translate(err)
	}
	switch {
	case g.Generation == 1:
		return native.Gen1Size, nil
	case g.Generation == 2:
		return native.Gen2Size, nil
	case g.Gamecube:
		return native.GCNSize, nil
	case g.Generation == 3:
		return native.GBASize, nil
	}
	return native.NDSSize, nil
}

func generationLabel(generation int) string {
	return strconv.Itoa(generation)
}
