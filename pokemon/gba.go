package pokemon

import (
	"porygon/calculations"
	"porygon/database"
	"porygon/native"
)

const (
	gbaEggNameFlag  = 1 << 2
	gbaMaxLevelMet  = 100
	gbaPokerusDays  = 0x0F
	gbaMaxLocation  = 0xFF
	gbaAbilityShift = 31
)

// gba is a Ruby/Sapphire/Emerald/FireRed/LeafGreen record. Gender, nature,
// shininess and the Unown letter are derived from the personality value.
type gba struct {
	base
	data native.GBA
}

var gbaAttributes = newAttributeSet[*gba]()

func init() {
	gbaAttributes.bools.Register("Is obedient", accessor[*gba, bool]{
		Get: func(p *gba) (bool, error) {
			p.mu.Lock()
			defer p.mu.Unlock()
			return p.data.Ribbons&native.GBAObedienceBit != 0, nil
		},
		Set: func(p *gba, value bool) error {
			p.mu.Lock()
			defer p.mu.Unlock()
			if value {
				p.data.Ribbons |= native.GBAObedienceBit
			} else {
				p.data.Ribbons &^= native.GBAObedienceBit
			}
			return nil
		},
	})
	gbaAttributes.strings.Register("Hidden Power type", accessor[*gba, string]{
		Get: func(p *gba) (string, error) {
			p.mu.Lock()
			defer p.mu.Unlock()
			return p.hiddenPowerModern(p.ivs())
		},
	})
}

func newGBA(f *Factory, g database.Game, entry database.PokemonEntry) *gba {
	p := &gba{}
	p.init(f, g, entry)
	p.data.Species = uint16(entry.SpeciesID)
	p.Attributes = gbaAttributes.bind(p)
	return p
}

func gbaFromNative(f *Factory, g database.Game, data []byte) (*gba, error) {
	d, err := native.DecodeGBA(data)
	if err != nil {
		return nil, err
	}
	for _, field := range [][]byte{d.Nickname[:], d.OTName[:]} {
		if _, err := native.DecodeGBAText(field); err != nil {
			return nil, err
		}
	}
	entry, err := f.Lookup.PokemonByID(int(d.Species), g.Name, "")
	if err != nil {
		return nil, err
	}
	p := &gba{data: *d}
	p.init(f, g, entry)
	p.Attributes = gbaAttributes.bind(p)
	p.syncModernUnown(d.Personality)
	return p, nil
}

func (p *gba) Clone() Pokemon {
	p.mu.Lock()
	defer p.mu.Unlock()
	c := &gba{data: p.data}
	c.init(p.factory, p.game, p.entry)
	c.Attributes = gbaAttributes.bind(c)
	return c
}

func (p *gba) NativeData() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data.Encode()
}

func (p *gba) ToGame(game string) (Pokemon, error) {
	return p.factory.ToGame(p, game)
}

func (p *gba) ivs() map[database.Stat]int {
	return ivMap(p.data.IV)
}

func (p *gba) constraints() calculations.PersonalityConstraints {
	return p.personalityConstraints(p.data.Personality, p.data.OTID, true)
}

func (p *gba) setPersonality(pid uint32) {
	p.data.Personality = pid
	p.syncModernUnown(pid)
	p.recalculate()
}

func (p *gba) solve(c calculations.PersonalityConstraints) error {
	pid, err := solvePersonality(p.data.Personality, c)
	if err != nil {
		return err
	}
	p.setPersonality(pid)
	return nil
}

func (p *gba) SetSpecies(species string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	entry, err := p.speciesEntry(species, "")
	if err != nil {
		return err
	}
	p.entry = entry
	p.data.Species = uint16(entry.SpeciesID)
	p.syncModernUnown(p.data.Personality)
	p.recalculate()
	return nil
}

// SetForm rewrites the personality value for an Unown letter.
func (p *gba) SetForm(form string) error {
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
	p.recalculate()
	return nil
}

func (p *gba) IsEgg() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data.IVEggAbility&native.GBAIsEgg != 0, nil
}

func (p *gba) SetIsEgg(isEgg bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if isEgg {
		p.data.IVEggAbility |= native.GBAIsEgg
		p.data.EggFlags |= gbaEggNameFlag
	} else {
		p.data.IVEggAbility &^= native.GBAIsEgg
		p.data.EggFlags &^= gbaEggNameFlag
	}
	return nil
}

func (p *gba) Condition() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return conditionFromBits(p.data.Party.Condition)
}

func (p *gba) SetCondition(condition string) error {
	bits, err := conditionToBits(3, condition)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.Party.Condition = bits
	return nil
}

func (p *gba) Nickname() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, _ := native.DecodeGBAText(p.data.Nickname[:])
	return s
}

func (p *gba) SetNickname(nickname string) error {
	if err := checkName("nickname", nickname, nicknameLimit(3)); err != nil {
		return err
	}
	encoded, err := native.EncodeGBAText(nickname, native.GBANicknameSize)
	if err != nil {
		return translate(err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	copy(p.data.Nickname[:], encoded)
	return nil
}

func (p *gba) Gender() (database.Gender, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return calculations.ModernGender(p.entry.GenderRate, p.data.Personality), nil
}

func (p *gba) SetGender(gender database.Gender) error {
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

func (p *gba) IsShiny() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return calculations.ModernShiny(p.data.Personality, p.data.OTID), nil
}

func (p *gba) SetShininess(shiny bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	c := p.constraints()
	c.Shiny = &shiny
	return p.solve(c)
}

func (p *gba) Nature() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return calculations.NatureFromPersonality(p.data.Personality), nil
}

func (p *gba) SetNature(nature string) error {
	if _, err := calculations.NatureIndex(nature); err != nil {
		return translate(err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	c := p.constraints()
	c.Nature = nature
	return p.solve(c)
}

func (p *gba) Personality() (uint32, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data.Personality, nil
}

// SetPersonality stores pid as is. Gender, nature, shininess and the Unown
// letter follow it.
func (p *gba) SetPersonality(pid uint32) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setPersonality(pid)
	return nil
}

func (p *gba) HeldItem() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.itemName(int(p.data.HeldItem)), nil
}

func (p *gba) SetHeldItem(item string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	id, err := p.resolveHeldItem(item)
	if err != nil {
		return err
	}
	p.data.HeldItem = uint16(id)
	return nil
}

func (p *gba) PokerusDuration() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(p.data.Pokerus & gbaPokerusDays), nil
}

func (p *gba) SetPokerusDuration(days int) error {
	if err := checkRange("pokerus duration", days, 0, 15); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.Pokerus = p.data.Pokerus&^gbaPokerusDays | uint8(days)
	p.data.Party.PokerusTime = uint8(days)
	return nil
}

func (p *gba) OriginalTrainerName() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, _ := native.DecodeGBAText(p.data.OTName[:])
	return s
}

func (p *gba) SetOriginalTrainerName(name string) error {
	if err := checkName("trainer name", name, trainerNameLimit); err != nil {
		return err
	}
	encoded, err := native.EncodeGBAText(name, native.GBAOTNameSize)
	if err != nil {
		return translate(err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	copy(p.data.OTName[:], encoded)
	return nil
}

func (p *gba) OriginalTrainerPublicID() uint16 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return uint16(p.data.OTID)
}

func (p *gba) SetOriginalTrainerPublicID(id uint16) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.OTID = p.data.OTID&0xFFFF0000 | uint32(id)
	return nil
}

func (p *gba) OriginalTrainerSecretID() (uint16, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return uint16(p.data.OTID >> 16), nil
}

func (p *gba) SetOriginalTrainerSecretID(id uint16) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.OTID = p.data.OTID&0xFFFF | uint32(id)<<16
	return nil
}

func (p *gba) OriginalTrainerID() uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data.OTID
}

func (p *gba) SetOriginalTrainerID(id uint32) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.OTID = id
	return nil
}

func (p *gba) OriginalTrainerGender() (database.Gender, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return otGender(p.data.Origins&native.GBAOriginOTFemale != 0), nil
}

func (p *gba) SetOriginalTrainerGender(gender database.Gender) error {
	female, err := checkOTGender(gender)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.Origins &^= native.GBAOriginOTFemale
	if female {
		p.data.Origins |= native.GBAOriginOTFemale
	}
	return nil
}

func (p *gba) CurrentTrainerFriendship() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(p.data.Friendship), nil
}

func (p *gba) SetCurrentTrainerFriendship(friendship int) error {
	if err := checkRange("friendship", friendship, 0, 255); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.Friendship = uint8(friendship)
	return nil
}

func (p *gba) Ability() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.abilityName(int(p.data.IVEggAbility >> gbaAbilityShift)), nil
}

func (p *gba) SetAbility(ability string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	slot, err := p.resolveAbility(ability)
	if err != nil {
		return err
	}
	if slot > 1 {
		return invalidArgument("%s cannot have %q in %s", p.entry.Species, ability, p.game.Name)
	}
	p.data.IVEggAbility = p.data.IVEggAbility&^native.GBAAbilitySlot | uint32(slot)<<gbaAbilityShift
	return nil
}

func (p *gba) Ball() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ballName(int(p.data.Origins&native.GBAOriginBallMask) >> native.GBAOriginBallShift), nil
}

func (p *gba) SetBall(ball string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	i, err := p.resolveBall(ball)
	if err != nil {
		return err
	}
	p.data.Origins = p.data.Origins&^native.GBAOriginBallMask | uint16(i)<<native.GBAOriginBallShift
	return nil
}

func (p *gba) LevelMet() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(p.data.Origins & native.GBAOriginLevelMask), nil
}

func (p *gba) SetLevelMet(level int) error {
	if err := checkRange("level met", level, 0, gbaMaxLevelMet); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.Origins = p.data.Origins&^native.GBAOriginLevelMask | uint16(level)
	return nil
}

func (p *gba) LocationMet(asEgg bool) (string, error) {
	if asEgg {
		return "", p.notInGame("egg location met")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.locationName(int(p.data.MetLocation)), nil
}

func (p *gba) SetLocationMet(location string, asEgg bool) error {
	if asEgg {
		return p.notInGame("egg location met")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	id, err := p.resolveLocation(location)
	if err != nil {
		return err
	}
	if id > gbaMaxLocation {
		return invalidArgument("%s cannot be stored in %s", location, p.game.Name)
	}
	p.data.MetLocation = uint8(id)
	return nil
}

func (p *gba) OriginalGame() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gameName(int(p.data.Origins&native.GBAOriginGameMask) >> native.GBAOriginGameShift), nil
}

func (p *gba) SetOriginalGame(game string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	g, err := p.resolveOriginalGame(game)
	if err != nil {
		return err
	}
	p.data.Origins = p.data.Origins&^native.GBAOriginGameMask | uint16(g.ID)<<native.GBAOriginGameShift
	return nil
}

func (p *gba) Language() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return languageName(p.data.Language), nil
}

func (p *gba) SetLanguage(language string) error {
	code, err := languageCode(3, language)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.Language = code
	return nil
}

func (p *gba) Experience() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(p.data.Experience)
}

func (p *gba) SetExperience(experience int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.checkExperience(experience); err != nil {
		return err
	}
	p.setExperience(experience)
	return nil
}

func (p *gba) setExperience(experience int) {
	p.data.Experience = uint32(experience)
	p.data.Party.Level = uint8(p.levelAt(experience))
	p.recalculate()
}

func (p *gba) Level() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(p.data.Party.Level)
}

func (p *gba) SetLevel(level int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.checkLevel(level); err != nil {
		return err
	}
	p.setExperience(p.experienceAt(level))
	return nil
}

func (p *gba) CurrentHP() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(p.data.Party.CurrentHP)
}

func (p *gba) SetCurrentHP(hp int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := checkRange("current HP", hp, 0, int(p.data.Party.Stats[0])); err != nil {
		return err
	}
	p.data.Party.CurrentHP = uint16(hp)
	return nil
}

func (p *gba) ppUps(index int) int {
	return int(p.data.PPUps >> (2 * index) & 0x3)
}

func (p *gba) moves() [4]MoveSlot {
	var out [4]MoveSlot
	for i := range out {
		out[i] = p.moveSlot(int(p.data.Moves[i]), int(p.data.PP[i]), p.ppUps(i))
	}
	return out
}

func (p *gba) Moves() [4]MoveSlot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.moves()
}

// SetMove resets the slot's PP Ups and fills its PP.
func (p *gba) SetMove(move string, index int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	entry, err := p.resolveMove(move, index)
	if err != nil {
		return err
	}
	p.data.Moves[index] = uint16(entry.ID)
	p.data.PP[index] = uint8(entry.PP[0])
	p.data.PPUps &^= 0x3 << (2 * index)
	return nil
}

func (p *gba) SetMovePP(index, pp int) error {
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

func (p *gba) evs() map[database.Stat]int {
	out := map[database.Stat]int{}
	for i, stat := range modernStatOrder {
		out[stat] = int(p.data.EVs[i])
	}
	return out
}

func (p *gba) EVs() map[database.Stat]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.evs()
}

func (p *gba) SetEV(stat database.Stat, value int) error {
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

func (p *gba) IVs() map[database.Stat]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ivs()
}

func (p *gba) SetIV(stat database.Stat, value int) error {
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

func (p *gba) Stats() map[database.Stat]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := map[database.Stat]int{}
	for i, stat := range modernStatOrder {
		out[stat] = int(p.data.Party.Stats[i])
	}
	return out
}

func (p *gba) recalculate() {
	nature := calculations.NatureFromPersonality(p.data.Personality)
	stats := p.modernStats(int(p.data.Party.Level), nature, p.evs(), p.ivs())
	for i, stat := range modernStatOrder {
		p.data.Party.Stats[i] = uint16(stats[stat])
	}
	p.data.Party.CurrentHP = min(p.data.Party.CurrentHP, p.data.Party.Stats[0])
}

func (p *gba) Markings() (map[string]bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return markingsFromBits(3, p.data.Markings), nil
}

func (p *gba) SetMarking(marking string, value bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	bits, err := setMarkingBit(3, p.data.Markings, marking, value)
	if err != nil {
		return err
	}
	p.data.Markings = bits
	return nil
}

func (p *gba) Ribbons() (map[string]bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := map[string]bool{}
	hoennRibbonMap(out, p.data.Ribbons)
	return out, nil
}

func (p *gba) SetRibbon(ribbon string, value bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	obedience := p.data.Ribbons & native.GBAObedienceBit
	bits, ok := setHoennRibbon(p.data.Ribbons&^native.GBAObedienceBit, ribbon, value)
	if !ok {
		return invalidArgument("ribbon %q in %s", ribbon, p.game.Name)
	}
	p.data.Ribbons = bits | obedience
	return nil
}

func (p *gba) Ribbon(ribbon string) (bool, error) {
	return ribbonValue(p, ribbon)
}

func (p *gba) ContestStats() (map[string]int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return contestStatMap(p.data.Contest), nil
}

func (p *gba) SetContestStat(stat string, value int) error {
	i, err := contestStatIndex(stat, value)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.Contest[i] = uint8(value)
	return nil
}
