package pokemon

import (
	"slices"
	"time"

	"porygon/calculations"
	"porygon/database"
	"porygon/native"
)

const (
	ndsLevelMetMask = 0x7F
	ndsOTFemale     = 0x80
	ndsHiddenSlot   = 2
)

// nds is a generation 4 to 6 record. Generation 4 derives the nature from
// the personality value, later generations store it.
type nds struct {
	base
	data native.NDS
}

var ndsAttributes = newAttributeSet[*nds]()

func init() {
	ndsAttributes.bools.Register("Is fateful encounter", accessor[*nds, bool]{
		Get: func(p *nds) (bool, error) {
			p.mu.Lock()
			defer p.mu.Unlock()
			return p.data.Flags&native.NDSFatefulEncounter != 0, nil
		},
		Set: func(p *nds, value bool) error {
			p.mu.Lock()
			defer p.mu.Unlock()
			p.data.Flags &^= native.NDSFatefulEncounter
			if value {
				p.data.Flags |= native.NDSFatefulEncounter
			}
			return nil
		},
	})
	ndsAttributes.strings.Register("Hidden Power type", accessor[*nds, string]{
		Get: func(p *nds) (string, error) {
			p.mu.Lock()
			defer p.mu.Unlock()
			return p.hiddenPowerModern(p.ivs())
		},
	})
}

func newNDS(f *Factory, g database.Game, entry database.PokemonEntry) *nds {
	p := &nds{}
	p.init(f, g, entry)
	p.data.Species = uint16(entry.SpeciesID)
	p.Attributes = ndsAttributes.bind(p)
	p.storeForm()
	return p
}

func ndsFromNative(f *Factory, g database.Game, data []byte) (*nds, error) {
	d, err := native.DecodeNDS(data)
	if err != nil {
		return nil, err
	}
	for _, field := range [][]byte{d.Nickname[:], d.OTName[:]} {
		if _, err := native.DecodeUTF16LE(field); err != nil {
			return nil, err
		}
	}
	entry, err := f.Lookup.PokemonByID(int(d.Species), g.Name, "")
	if err != nil {
		return nil, err
	}
	p := &nds{data: *d}
	p.init(f, g, entry)
	p.Attributes = ndsAttributes.bind(p)
	if p.isUnown() {
		p.syncModernUnown(d.Personality)
	} else if i := int(d.Flags&native.NDSFormMask) >> native.NDSFormShift; i < len(entry.Forms) {
		p.syncForm(entry.Forms[i])
	}
	return p, nil
}

func (p *nds) Clone() Pokemon {
	p.mu.Lock()
	defer p.mu.Unlock()
	c := &nds{data: p.data}
	c.init(p.factory, p.game, p.entry)
	c.Attributes = ndsAttributes.bind(c)
	return c
}

func (p *nds) NativeData() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data.Encode()
}

func (p *nds) ToGame(game string) (Pokemon, error) {
	return p.factory.ToGame(p, game)
}

func (p *nds) derivedNature() bool {
	return p.game.Generation == 4
}

func (p *nds) nature() string {
	if p.derivedNature() {
		return calculations.NatureFromPersonality(p.data.Personality)
	}
	if int(p.data.Nature) < len(calculations.Natures) {
		return calculations.Natures[p.data.Nature]
	}
	return calculations.Natures[0]
}

func (p *nds) ivs() map[database.Stat]int {
	return ivMap(p.data.IV)
}

// storeForm records the form index in the flags byte.
func (p *nds) storeForm() {
	i := max(slices.Index(p.entry.Forms, p.entry.Form), 0)
	p.data.Flags = p.data.Flags&^native.NDSFormMask | uint8(i)<<native.NDSFormShift
}

func (p *nds) constraints() calculations.PersonalityConstraints {
	return p.personalityConstraints(p.data.Personality, p.data.OTID, p.derivedNature())
}

func (p *nds) setPersonality(pid uint32) {
	p.data.Personality = pid
	if p.isUnown() {
		p.syncModernUnown(pid)
		p.storeForm()
	}
	p.recalculate()
}

func (p *nds) solve(c calculations.PersonalityConstraints) error {
	pid, err := solvePersonality(p.data.Personality, c)
	if err != nil {
		return err
	}
	p.setPersonality(pid)
	return nil
}

func (p *nds) SetSpecies(species string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	entry, err := p.speciesEntry(species, "")
	if err != nil {
		return err
	}
	p.entry = entry
	p.data.Species = uint16(entry.SpeciesID)
	p.syncModernUnown(p.data.Personality)
	p.storeForm()
	p.recalculate()
	return nil
}

func (p *nds) SetForm(form string) error {
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
	p.storeForm()
	p.recalculate()
	return nil
}

func (p *nds) IsEgg() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data.IVEggFlags&native.NDSIsEgg != 0, nil
}

func (p *nds) SetIsEgg(isEgg bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.IVEggFlags &^= native.NDSIsEgg
	if isEgg {
		p.data.IVEggFlags |= native.NDSIsEgg
	}
	return nil
}

func (p *nds) Condition() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return conditionFromBits(p.data.Party.Condition)
}

func (p *nds) SetCondition(condition string) error {
	bits, err := conditionToBits(p.game.Generation, condition)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.Party.Condition = bits
	return nil
}

func (p *nds) Nickname() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, _ := native.DecodeUTF16LE(p.data.Nickname[:])
	return s
}

// SetNickname marks the record as nicknamed unless the name is the species
// name.
func (p *nds) SetNickname(nickname string) error {
	if err := checkName("nickname", nickname, nicknameLimit(p.game.Generation)); err != nil {
		return err
	}
	encoded, err := native.EncodeUTF16LE(nickname, native.NDSNicknameSize)
	if err != nil {
		return translate(err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	copy(p.data.Nickname[:], encoded)
	p.data.IVEggFlags &^= native.NDSNicknamed
	if !speciesNickname(p.entry.Species, nickname) {
		p.data.IVEggFlags |= native.NDSNicknamed
	}
	return nil
}

func (p *nds) Gender() (database.Gender, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return calculations.ModernGender(p.entry.GenderRate, p.data.Personality), nil
}

func (p *nds) SetGender(gender database.Gender) error {
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

func (p *nds) IsShiny() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return calculations.ModernShiny(p.data.Personality, p.data.OTID), nil
}

func (p *nds) SetShininess(shiny bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	c := p.constraints()
	c.Shiny = &shiny
	return p.solve(c)
}

func (p *nds) Nature() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.nature(), nil
}

func (p *nds) SetNature(nature string) error {
	i, err := calculations.NatureIndex(nature)
	if err != nil {
		return translate(err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.derivedNature() {
		p.data.Nature = uint8(i)
		p.recalculate()
		return nil
	}
	c := p.constraints()
	c.Nature = nature
	return p.solve(c)
}

func (p *nds) Personality() (uint32, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data.Personality, nil
}

func (p *nds) SetPersonality(pid uint32) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setPersonality(pid)
	return nil
}

func (p *nds) HeldItem() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.itemName(int(p.data.HeldItem)), nil
}

func (p *nds) SetHeldItem(item string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	id, err := p.resolveHeldItem(item)
	if err != nil {
		return err
	}
	p.data.HeldItem = uint16(id)
	return nil
}

func (p *nds) PokerusDuration() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(p.data.Pokerus & 0x0F), nil
}

func (p *nds) SetPokerusDuration(days int) error {
	if err := checkRange("pokerus duration", days, 0, 15); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.Pokerus = p.data.Pokerus&0xF0 | uint8(days)
	return nil
}

func (p *nds) OriginalTrainerName() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, _ := native.DecodeUTF16LE(p.data.OTName[:])
	return s
}

func (p *nds) SetOriginalTrainerName(name string) error {
	if err := checkName("trainer name", name, trainerNameLimit); err != nil {
		return err
	}
	encoded, err := native.EncodeUTF16LE(name, native.NDSOTNameSize)
	if err != nil {
		return translate(err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	copy(p.data.OTName[:], encoded)
	return nil
}

func (p *nds) OriginalTrainerPublicID() uint16 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return uint16(p.data.OTID)
}

func (p *nds) SetOriginalTrainerPublicID(id uint16) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.OTID = p.data.OTID&0xFFFF0000 | uint32(id)
	return nil
}

func (p *nds) OriginalTrainerSecretID() (uint16, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return uint16(p.data.OTID >> 16), nil
}

func (p *nds) SetOriginalTrainerSecretID(id uint16) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.OTID = p.data.OTID&0xFFFF | uint32(id)<<16
	return nil
}

func (p *nds) OriginalTrainerID() uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data.OTID
}

func (p *nds) SetOriginalTrainerID(id uint32) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.OTID = id
	return nil
}

func (p *nds) OriginalTrainerGender() (database.Gender, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return otGender(p.data.LevelMet&ndsOTFemale != 0), nil
}

func (p *nds) SetOriginalTrainerGender(gender database.Gender) error {
	female, err := checkOTGender(gender)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.LevelMet &^= ndsOTFemale
	if female {
		p.data.LevelMet |= ndsOTFemale
	}
	return nil
}

func (p *nds) CurrentTrainerFriendship() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(p.data.Friendship), nil
}

func (p *nds) SetCurrentTrainerFriendship(friendship int) error {
	if err := checkRange("friendship", friendship, 0, 255); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.Friendship = uint8(friendship)
	return nil
}

func (p *nds) Ability() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.abilityName(int(p.data.AbilitySlot)), nil
}

func (p *nds) SetAbility(ability string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	slot, err := p.resolveAbility(ability)
	if err != nil {
		return err
	}
	if slot == ndsHiddenSlot && p.game.Generation < 5 {
		return invalidArgument("%s cannot have %q in %s", p.entry.Species, ability, p.game.Name)
	}
	p.data.AbilitySlot = uint8(slot)
	return nil
}

func (p *nds) Ball() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ballName(int(p.data.Ball)), nil
}

func (p *nds) SetBall(ball string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	i, err := p.resolveBall(ball)
	if err != nil {
		return err
	}
	p.data.Ball = uint8(i)
	return nil
}

func (p *nds) LevelMet() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(p.data.LevelMet & ndsLevelMetMask), nil
}

func (p *nds) SetLevelMet(level int) error {
	if err := checkRange("level met", level, 0, calculations.MaxLevel); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.LevelMet = p.data.LevelMet&^ndsLevelMetMask | uint8(level)
	return nil
}

func (p *nds) LocationMet(asEgg bool) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if asEgg {
		return p.locationName(int(p.data.EggLocation)), nil
	}
	return p.locationName(int(p.data.MetLocation)), nil
}

func (p *nds) SetLocationMet(location string, asEgg bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	id, err := p.resolveLocation(location)
	if err != nil {
		return err
	}
	if asEgg {
		p.data.EggLocation = uint16(id)
	} else {
		p.data.MetLocation = uint16(id)
	}
	return nil
}

func (p *nds) OriginalGame() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gameName(int(p.data.OriginGame)), nil
}

func (p *nds) SetOriginalGame(game string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	g, err := p.resolveOriginalGame(game)
	if err != nil {
		return err
	}
	p.data.OriginGame = uint8(g.ID)
	return nil
}

func (p *nds) Language() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return languageName(p.data.Language), nil
}

func (p *nds) SetLanguage(language string) error {
	code, err := languageCode(p.game.Generation, language)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.Language = code
	return nil
}

func (p *nds) Experience() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(p.data.Experience)
}

func (p *nds) SetExperience(experience int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.checkExperience(experience); err != nil {
		return err
	}
	p.setExperience(experience)
	return nil
}

func (p *nds) setExperience(experience int) {
	p.data.Experience = uint32(experience)
	p.data.Party.Level = uint8(p.levelAt(experience))
	p.recalculate()
}

func (p *nds) Level() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(p.data.Party.Level)
}

func (p *nds) SetLevel(level int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.checkLevel(level); err != nil {
		return err
	}
	p.setExperience(p.experienceAt(level))
	return nil
}

func (p *nds) CurrentHP() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(p.data.Party.CurrentHP)
}

func (p *nds) SetCurrentHP(hp int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := checkRange("current HP", hp, 0, int(p.data.Party.Stats[0])); err != nil {
		return err
	}
	p.data.Party.CurrentHP = uint16(hp)
	return nil
}

func (p *nds) moves() [4]MoveSlot {
	var out [4]MoveSlot
	for i := range out {
		out[i] = p.moveSlot(int(p.data.Moves[i]), int(p.data.PP[i]), int(p.data.PPUps[i]))
	}
	return out
}

func (p *nds) Moves() [4]MoveSlot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.moves()
}

func (p *nds) SetMove(move string, index int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	entry, err := p.resolveMove(move, index)
	if err != nil {
		return err
	}
	p.data.Moves[index] = uint16(entry.ID)
	p.data.PP[index] = uint8(entry.PP[0])
	p.data.PPUps[index] = 0
	return nil
}

func (p *nds) SetMovePP(index, pp int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var slot MoveSlot
	if index >= 0 && index < 4 {
		slot = p.moves()[index]
	}
	if err := p.checkMovePP(slot, index, pp); err != nil {
		return err
	}
	p.data.PP[index] = uint8(pp)
	return nil
}

func (p *nds) evs() map[database.Stat]int {
	out := map[database.Stat]int{}
	for i, stat := range modernStatOrder {
		out[stat] = int(p.data.EVs[i])
	}
	return out
}

func (p *nds) EVs() map[database.Stat]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.evs()
}

func (p *nds) SetEV(stat database.Stat, value int) error {
	i, err := p.checkEV(stat, value)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.EVs[i] = uint8(value)
	p.recalculate()
	return nil
}

func (p *nds) IVs() map[database.Stat]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ivs()
}

func (p *nds) SetIV(stat database.Stat, value int) error {
	i, err := p.checkIV(stat, value)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.SetIV(i, value)
	p.recalculate()
	return nil
}

func (p *nds) Stats() map[database.Stat]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := map[database.Stat]int{}
	for i, stat := range modernStatOrder {
		out[stat] = int(p.data.Party.Stats[i])
	}
	return out
}

func (p *nds) recalculate() {
	stats := p.modernStats(int(p.data.Party.Level), p.nature(), p.evs(), p.ivs())
	for i, stat := range modernStatOrder {
		p.data.Party.Stats[i] = uint16(stats[stat])
	}
	p.data.Party.CurrentHP = min(p.data.Party.CurrentHP, p.data.Party.Stats[0])
}

func (p *nds) Markings() (map[string]bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return markingsFromBits(p.game.Generation, p.data.Markings), nil
}

func (p *nds) SetMarking(marking string, value bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	bits, err := setMarkingBit(p.game.Generation, p.data.Markings, marking, value)
	if err != nil {
		return err
	}
	p.data.Markings = bits
	return nil
}

func (p *nds) Ribbons() (map[string]bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := map[string]bool{}
	hoennRibbonMap(out, p.data.HoennRibbons)
	flagRibbons(out, sinnohRibbons, p.data.SinnohRibbons)
	if p.game.Generation >= 6 {
		flagRibbons(out, kalosRibbons, uint32(p.data.KalosRibbons))
	}
	return out, nil
}

func (p *nds) SetRibbon(ribbon string, value bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if bits, ok := setHoennRibbon(p.data.HoennRibbons, ribbon, value); ok {
		p.data.HoennRibbons = bits
		return nil
	}
	if bits, ok := setFlagRibbon(sinnohRibbons, p.data.SinnohRibbons, ribbon, value); ok {
		p.data.SinnohRibbons = bits
		return nil
	}
	if p.game.Generation >= 6 {
		if bits, ok := setFlagRibbon(kalosRibbons, uint32(p.data.KalosRibbons), ribbon, value); ok {
			p.data.KalosRibbons = uint16(bits)
			return nil
		}
	}
	return invalidArgument("ribbon %q in %s", ribbon, p.game.Name)
}

func (p *nds) Ribbon(ribbon string) (bool, error) {
	return ribbonValue(p, ribbon)
}

func (p *nds) ContestStats() (map[string]int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return contestStatMap(p.data.Contest), nil
}

func (p *nds) SetContestStat(stat string, value int) error {
	i, err := contestStatIndex(stat, value)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.Contest[i] = uint8(value)
	return nil
}

func (p *nds) DateMet(asEgg bool) (time.Time, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if asEgg {
		return dateFromBytes(p.data.EggDate), nil
	}
	return dateFromBytes(p.data.MetDate), nil
}

func (p *nds) SetDateMet(date time.Time, asEgg bool) error {
	d, err := dateToBytes(date)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if asEgg {
		p.data.EggDate = d
	} else {
		p.data.MetDate = d
	}
	return nil
}

func (p *nds) SuperTrainingMedals() (map[string]bool, error) {
	if p.game.Generation != 6 {
		return nil, p.notInGame("super training medals")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	out := map[string]bool{}
	flagRibbons(out, SuperTrainingMedals, p.data.SuperTraining)
	return out, nil
}

func (p *nds) SetSuperTrainingMedal(medal string, value bool) error {
	if p.game.Generation != 6 {
		return p.notInGame("super training medals")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	bits, ok := setFlagRibbon(SuperTrainingMedals, p.data.SuperTraining, medal, value)
	if !ok {
		return invalidArgument("super training medal %q", medal)
	}
	p.data.SuperTraining = bits
	return nil
}
