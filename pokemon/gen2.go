package pokemon

import (
	"slices"

	"porygon/calculations"
	"porygon/database"
	"porygon/native"
)

// Bit layout of native.Gen2.CaughtData.
const (
	gen2LocationMask   = 0x007F
	gen2OTFemale       = 0x0080
	gen2LevelShift     = 8
	gen2LevelMask      = 0x3F00
	gen2TimeShift      = 14
	gen2TimeMask       = 0xC000
	gen2MaxLevelMet    = 63
	gen2MaxLocationID  = 0x7F
	gen2PokerusDaysBit = 0x0F
)

// gen2 is a Gold/Silver/Crystal record. Gender, shininess and the Unown
// letter are all derived from the IVs.
type gen2 struct {
	base
	data native.Gen2
}

var gen2Attributes = newAttributeSet[*gen2]()

func init() {
	gen2Attributes.strings.Register("Caught time of day", accessor[*gen2, string]{
		Get: func(p *gen2) (string, error) {
			p.mu.Lock()
			defer p.mu.Unlock()
			return TimesOfDay[p.data.CaughtData>>gen2TimeShift], nil
		},
		Set: func(p *gen2, value string) error {
			i := slices.Index(TimesOfDay, value)
			if i < 0 {
				return invalidArgument("time of day %q", value)
			}
			p.mu.Lock()
			defer p.mu.Unlock()
			p.data.CaughtData = p.data.CaughtData&^gen2TimeMask | uint16(i)<<gen2TimeShift
			return nil
		},
	})
	gen2Attributes.strings.Register("Hidden Power type", accessor[*gen2, string]{
		Get: func(p *gen2) (string, error) {
			p.mu.Lock()
			defer p.mu.Unlock()
			return calculations.GBHiddenPower(p.ivs()).Type, nil
		},
	})
}

func newGen2(f *Factory, g database.Game, entry database.PokemonEntry) *gen2 {
	p := &gen2{}
	p.init(f, g, entry)
	p.data.Species = uint8(entry.SpeciesID)
	p.Attributes = gen2Attributes.bind(p)
	return p
}

func gen2FromNative(f *Factory, g database.Game, data []byte) (*gen2, error) {
	d, err := native.DecodeGen2(data)
	if err != nil {
		return nil, err
	}
	for _, field := range [][]byte{d.Nickname[:], d.OTName[:]} {
		if _, err := native.DecodeGBText(field); err != nil {
			return nil, err
		}
	}
	entry, err := f.Lookup.PokemonByID(int(d.Species), g.Name, "")
	if err != nil {
		return nil, err
	}
	p := &gen2{data: *d}
	p.init(f, g, entry)
	p.Attributes = gen2Attributes.bind(p)
	p.syncUnown()
	return p, nil
}

func (p *gen2) Clone() Pokemon {
	p.mu.Lock()
	defer p.mu.Unlock()
	c := &gen2{data: p.data}
	c.init(p.factory, p.game, p.entry)
	c.Attributes = gen2Attributes.bind(c)
	return c
}

func (p *gen2) NativeData() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data.Encode()
}

func (p *gen2) ToGame(game string) (Pokemon, error) {
	return p.factory.ToGame(p, game)
}

func (p *gen2) ivs() calculations.GBIVs {
	return calculations.UnpackGBIVs(p.data.IVData)
}

func (p *gen2) syncUnown() {
	if p.isUnown() {
		p.syncForm(calculations.GBUnownForm(p.ivs()))
	}
}

func (p *gen2) setIVs(iv calculations.GBIVs) {
	p.data.IVData = iv.Pack()
	p.syncUnown()
	p.recalculate()
}

// constraints captures every value currently derived from the IVs.
func (p *gen2) constraints() calculations.GBConstraints {
	iv := p.ivs()
	shiny := calculations.GBShiny(iv)
	c := calculations.GBConstraints{GenderRate: p.entry.GenderRate, Shiny: &shiny}
	if _, fixed := p.entry.FixedGender(); !fixed {
		c.Gender, _ = calculations.GBGender(p.entry.GenderRate, iv.Attack)
	}
	if p.isUnown() {
		c.Unown = calculations.GBUnownForm(iv)
	}
	return c
}

func (p *gen2) solve(c calculations.GBConstraints) error {
	iv, err := calculations.SolveGBIVs(p.ivs(), c)
	if err != nil {
		return translate(err)
	}
	p.setIVs(iv)
	return nil
}

func (p *gen2) SetSpecies(species string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	entry, err := p.speciesEntry(species, "")
	if err != nil {
		return err
	}
	if entry.SpeciesID > 0xFF {
		return invalidArgument("%s cannot be stored in %s", species, p.game.Name)
	}
	p.entry = entry
	p.data.Species = uint8(entry.SpeciesID)
	p.syncUnown()
	p.recalculate()
	return nil
}

// SetForm rewrites the IVs for an Unown letter.
func (p *gen2) SetForm(form string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	entry, err := p.speciesEntry(p.entry.Species, form)
	if err != nil {
		return err
	}
	if p.isUnown() {
		c := p.constraints()
		c.Unown = form
		if err := p.solve(c); err != nil {
			return err
		}
	}
	p.entry = entry
	return nil
}

func (p *gen2) IsEgg() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data.IsEgg != 0, nil
}

func (p *gen2) SetIsEgg(isEgg bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.IsEgg = 0
	if isEgg {
		p.data.IsEgg = 1
	}
	return nil
}

func (p *gen2) Condition() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return conditionFromBits(uint32(p.data.Condition))
}

func (p *gen2) SetCondition(condition string) error {
	bits, err := conditionToBits(2, condition)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.Condition = uint8(bits)
	return nil
}

func (p *gen2) Nickname() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, _ := native.DecodeGBText(p.data.Nickname[:])
	return s
}

func (p *gen2) SetNickname(nickname string) error {
	if err := checkName("nickname", nickname, nicknameLimit(2)); err != nil {
		return err
	}
	encoded, err := native.EncodeGBText(nickname, native.GBNameSize)
	if err != nil {
		return translate(err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	copy(p.data.Nickname[:], encoded)
	return nil
}

func (p *gen2) Gender() (database.Gender, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	g, err := calculations.GBGender(p.entry.GenderRate, p.ivs().Attack)
	return g, translate(err)
}

// SetGender rewrites the Attack IV, keeping shininess and the Unown letter.
func (p *gen2) SetGender(gender database.Gender) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	fixed, err := p.checkGender(gender)
	if err != nil || fixed {
		return err
	}
	c := p.constraints()
	c.Gender = gender
	return p.solve(c)
}

func (p *gen2) IsShiny() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return calculations.GBShiny(p.ivs()), nil
}

func (p *gen2) SetShininess(shiny bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	c := p.constraints()
	c.Shiny = &shiny
	return p.solve(c)
}

func (p *gen2) HeldItem() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.itemName(int(p.data.HeldItem)), nil
}

func (p *gen2) SetHeldItem(item string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	id, err := p.resolveHeldItem(item)
	if err != nil {
		return err
	}
	if id > 0xFF {
		return invalidArgument("%s cannot be stored in %s", item, p.game.Name)
	}
	p.data.HeldItem = uint8(id)
	return nil
}

func (p *gen2) PokerusDuration() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(p.data.Pokerus & gen2PokerusDaysBit), nil
}

func (p *gen2) SetPokerusDuration(days int) error {
	if err := checkRange("pokerus duration", days, 0, 15); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.Pokerus = p.data.Pokerus&^gen2PokerusDaysBit | uint8(days)
	return nil
}

func (p *gen2) OriginalTrainerName() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, _ := native.DecodeGBText(p.data.OTName[:])
	return s
}

func (p *gen2) SetOriginalTrainerName(name string) error {
	if err := checkName("trainer name", name, trainerNameLimit); err != nil {
		return err
	}
	encoded, err := native.EncodeGBText(name, native.GBNameSize)
	if err != nil {
		return translate(err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	copy(p.data.OTName[:], encoded)
	return nil
}

func (p *gen2) OriginalTrainerPublicID() uint16 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data.OTID
}

func (p *gen2) SetOriginalTrainerPublicID(id uint16) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.OTID = id
	return nil
}

func (p *gen2) OriginalTrainerID() uint32 {
	return uint32(p.OriginalTrainerPublicID())
}

func (p *gen2) SetOriginalTrainerID(id uint32) error {
	if err := checkRange("trainer id", int(id), 0, 0xFFFF); err != nil {
		return err
	}
	return p.SetOriginalTrainerPublicID(uint16(id))
}

func (p *gen2) OriginalTrainerGender() (database.Gender, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.data.CaughtData&gen2OTFemale != 0 {
		return database.GenderFemale, nil
	}
	return database.GenderMale, nil
}

func (p *gen2) SetOriginalTrainerGender(gender database.Gender) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch gender {
	case database.GenderMale:
		p.data.CaughtData &^= gen2OTFemale
	case database.GenderFemale:
		p.data.CaughtData |= gen2OTFemale
	default:
		return invalidArgument("trainer gender %q", gender)
	}
	return nil
}

func (p *gen2) CurrentTrainerFriendship() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(p.data.Friendship), nil
}

func (p *gen2) SetCurrentTrainerFriendship(friendship int) error {
	if err := checkRange("friendship", friendship, 0, 255); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.Friendship = uint8(friendship)
	return nil
}

func (p *gen2) LevelMet() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(p.data.CaughtData&gen2LevelMask) >> gen2LevelShift, nil
}

func (p *gen2) SetLevelMet(level int) error {
	if err := checkRange("level met", level, 2, gen2MaxLevelMet); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.CaughtData = p.data.CaughtData&^gen2LevelMask | uint16(level)<<gen2LevelShift
	return nil
}

func (p *gen2) LocationMet(asEgg bool) (string, error) {
	if asEgg {
		return "", p.notInGame("egg location met")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.locationName(int(p.data.CaughtData & gen2LocationMask)), nil
}

func (p *gen2) SetLocationMet(location string, asEgg bool) error {
	if asEgg {
		return p.notInGame("egg location met")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	id, err := p.resolveLocation(location)
	if err != nil {
		return err
	}
	if id > gen2MaxLocationID {
		return invalidArgument("%s cannot be stored in %s", location, p.game.Name)
	}
	p.data.CaughtData = p.data.CaughtData&^gen2LocationMask | uint16(id)
	return nil
}

func (p *gen2) Experience() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(native.Uint24(p.data.Experience))
}

func (p *gen2) SetExperience(experience int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.checkExperience(experience); err != nil {
		return err
	}
	p.setExperience(experience)
	return nil
}

func (p *gen2) setExperience(experience int) {
	p.data.Experience = native.PutUint24(uint32(experience))
	p.data.Level = uint8(p.levelAt(experience))
	p.recalculate()
}

func (p *gen2) Level() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(p.data.Level)
}

func (p *gen2) SetLevel(level int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.checkLevel(level); err != nil {
		return err
	}
	p.setExperience(p.experienceAt(level))
	return nil
}

func (p *gen2) CurrentHP() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(p.data.CurrentHP)
}

func (p *gen2) SetCurrentHP(hp int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := checkRange("current HP", hp, 0, int(p.data.Stats[0])); err != nil {
		return err
	}
	p.data.CurrentHP = uint16(hp)
	return nil
}

func (p *gen2) moves() [4]MoveSlot {
	var out [4]MoveSlot
	for i := range out {
		pp := p.data.PP[i]
		out[i] = p.moveSlot(int(p.data.Moves[i]), int(pp&gbPPMask), int(pp>>6))
	}
	return out
}

func (p *gen2) Moves() [4]MoveSlot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.moves()
}

func (p *gen2) SetMove(move string, index int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	entry, err := p.resolveMove(move, index)
	if err != nil {
		return err
	}
	if entry.ID > 0xFF {
		return invalidArgument("%s cannot be stored in %s", move, p.game.Name)
	}
	p.data.Moves[index] = uint8(entry.ID)
	p.data.PP[index] = uint8(entry.PP[0])
	return nil
}

func (p *gen2) SetMovePP(index, pp int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var slot MoveSlot
	if index >= 0 && index < 4 {
		slot = p.moves()[index]
	}
	if err := p.checkMovePP(slot, index, pp); err != nil {
		return err
	}
	p.data.PP[index] = p.data.PP[index]&^gbPPMask | uint8(pp)&gbPPMask
	return nil
}

func (p *gen2) evs() map[database.Stat]int {
	out := map[database.Stat]int{}
	for i, stat := range gbStatOrder {
		out[stat] = int(p.data.EVs[i])
	}
	return out
}

func (p *gen2) EVs() map[database.Stat]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.evs()
}

func (p *gen2) SetEV(stat database.Stat, value int) error {
	i, err := statIndex(gbStatOrder, stat)
	if err != nil {
		return err
	}
	if err := checkRange("EV", value, 0, 0xFFFF); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.EVs[i] = uint16(value)
	p.recalculate()
	return nil
}

func (p *gen2) IVs() map[database.Stat]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ivs().Map()
}

func (p *gen2) SetIV(stat database.Stat, value int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	iv, err := setGBIV(p.ivs(), stat, value)
	if err != nil {
		return err
	}
	p.setIVs(iv)
	return nil
}

func (p *gen2) Stats() map[database.Stat]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := map[database.Stat]int{}
	for i, stat := range modernStatOrder {
		out[stat] = int(p.data.Stats[i])
	}
	return out
}

func (p *gen2) recalculate() {
	stats := p.gbStats(int(p.data.Level), p.evs(), p.ivs().Map())
	for i, stat := range modernStatOrder {
		p.data.Stats[i] = uint16(stats[stat])
	}
	p.data.CurrentHP = min(p.data.CurrentHP, p.data.Stats[0])
}
