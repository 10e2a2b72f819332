package pokemon

import (
	"math"

	"porygon/calculations"
	"porygon/database"
	"porygon/native"
)

// gcn is a Colosseum/XD record. It shares the generation 3 derivations with
// gba but stores most fields unpacked, big-endian and with UTF-16 names.
type gcn struct {
	base
	data native.GCN
}

var gcnAttributes = newAttributeSet[*gcn]()

func init() {
	gcnAttributes.bools.Register("Is shadow", accessor[*gcn, bool]{
		Get: func(p *gcn) (bool, error) {
			p.mu.Lock()
			defer p.mu.Unlock()
			return p.data.ShadowID != 0, nil
		},
	})
	gcnAttributes.ints.Register("Shadow ID", accessor[*gcn, int]{
		Get: func(p *gcn) (int, error) {
			p.mu.Lock()
			defer p.mu.Unlock()
			return int(p.data.ShadowID), nil
		},
		Set: func(p *gcn, value int) error {
			if err := checkRange("shadow id", value, 0, math.MaxUint16); err != nil {
				return err
			}
			p.mu.Lock()
			defer p.mu.Unlock()
			p.data.ShadowID = uint16(value)
			return nil
		},
	})
	gcnAttributes.ints.Register("Purification", accessor[*gcn, int]{
		Get: func(p *gcn) (int, error) {
			p.mu.Lock()
			defer p.mu.Unlock()
			return int(p.data.Purification), nil
		},
		Set: func(p *gcn, value int) error {
			if err := checkRange("purification", value, math.MinInt16, math.MaxInt16); err != nil {
				return err
			}
			p.mu.Lock()
			defer p.mu.Unlock()
			p.data.Purification = int32(value)
			return nil
		},
	})
	gcnAttributes.strings.Register("Hidden Power type", accessor[*gcn, string]{
		Get: func(p *gcn) (string, error) {
			p.mu.Lock()
			defer p.mu.Unlock()
			return p.hiddenPowerModern(p.ivs())
		},
	})
}

func newGCN(f *Factory, g database.Game, entry database.PokemonEntry) *gcn {
	p := &gcn{}
	p.init(f, g, entry)
	p.data.Species = uint16(entry.SpeciesID)
	p.Attributes = gcnAttributes.bind(p)
	return p
}

func gcnFromNative(f *Factory, g database.Game, data []byte) (*gcn, error) {
	d, err := native.DecodeGCN(data)
	if err != nil {
		return nil, err
	}
	for _, field := range [][]byte{d.Nickname[:], d.OTName[:]} {
		if _, err := native.DecodeUTF16BE(field); err != nil {
			return nil, err
		}
	}
	entry, err := f.Lookup.PokemonByID(int(d.Species), g.Name, "")
	if err != nil {
		return nil, err
	}
	p := &gcn{data: *d}
	p.init(f, g, entry)
	p.Attributes = gcnAttributes.bind(p)
	p.syncModernUnown(d.Personality)
	return p, nil
}

func (p *gcn) Clone() Pokemon {
	p.mu.Lock()
	defer p.mu.Unlock()
	c := &gcn{data: p.data}
	c.init(p.factory, p.game, p.entry)
	c.Attributes = gcnAttributes.bind(c)
	return c
}

func (p *gcn) NativeData() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data.Encode()
}

func (p *gcn) ToGame(game string) (Pokemon, error) {
	return p.factory.ToGame(p, game)
}

func (p *gcn) trainerID() uint32 {
	return uint32(p.data.SecretID)<<16 | uint32(p.data.PublicID)
}

func (p *gcn) ivs() map[database.Stat]int {
	return ivMap(func(i int) int { return int(p.data.IVs[i]) })
}

func (p *gcn) constraints() calculations.PersonalityConstraints {
	return p.personalityConstraints(p.data.Personality, p.trainerID(), true)
}

func (p *gcn) setPersonality(pid uint32) {
	p.data.Personality = pid
	p.syncModernUnown(pid)
	p.recalculate()
}

func (p *gcn) solve(c calculations.PersonalityConstraints) error {
	pid, err := solvePersonality(p.data.Personality, c)
	if err != nil {
		return err
	}
	p.setPersonality(pid)
	return nil
}

func (p *gcn) SetSpecies(species string) error {
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

func (p *gcn) SetForm(form string) error {
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

func (p *gcn) IsEgg() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data.Flags&native.GCNFlagEgg != 0, nil
}

func (p *gcn) SetIsEgg(isEgg bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.Flags &^= native.GCNFlagEgg
	if isEgg {
		p.data.Flags |= native.GCNFlagEgg
	}
	return nil
}

func (p *gcn) Condition() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return conditionFromBits(uint32(p.data.Condition))
}

func (p *gcn) SetCondition(condition string) error {
	bits, err := conditionToBits(3, condition)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.Condition = uint16(bits)
	return nil
}

func (p *gcn) Nickname() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, _ := native.DecodeUTF16BE(p.data.Nickname[:])
	return s
}

func (p *gcn) SetNickname(nickname string) error {
	if err := checkName("nickname", nickname, nicknameLimit(3)); err != nil {
		return err
	}
	encoded, err := native.EncodeUTF16BE(nickname, native.GCNNameSize)
	if err != nil {
		return translate(err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	copy(p.data.Nickname[:], encoded)
	return nil
}

func (p *gcn) Gender() (database.Gender, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return calculations.ModernGender(p.entry.GenderRate, p.data.Personality), nil
}

func (p *gcn) SetGender(gender database.Gender) error {
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

func (p *gcn) IsShiny() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return calculations.ModernShiny(p.data.Personality, p.trainerID()), nil
}

func (p *gcn) SetShininess(shiny bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	c := p.constraints()
	c.Shiny = &shiny
	return p.solve(c)
}

func (p *gcn) Nature() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return calculations.NatureFromPersonality(p.data.Personality), nil
}

func (p *gcn) SetNature(nature string) error {
	if _, err := calculations.NatureIndex(nature); err != nil {
		return translate(err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	c := p.constraints()
	c.Nature = nature
	return p.solve(c)
}

func (p *gcn) Personality() (uint32, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data.Personality, nil
}

func (p *gcn) SetPersonality(pid uint32) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setPersonality(pid)
	return nil
}

func (p *gcn) HeldItem() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.itemName(int(p.data.HeldItem)), nil
}

func (p *gcn) SetHeldItem(item string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	id, err := p.resolveHeldItem(item)
	if err != nil {
		return err
	}
	p.data.HeldItem = uint16(id)
	return nil
}

func (p *gcn) PokerusDuration() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(p.data.Pokerus & 0x0F), nil
}

func (p *gcn) SetPokerusDuration(days int) error {
	if err := checkRange("pokerus duration", days, 0, 15); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.Pokerus = p.data.Pokerus&0xF0 | uint8(days)
	return nil
}

func (p *gcn) OriginalTrainerName() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, _ := native.DecodeUTF16BE(p.data.OTName[:])
	return s
}

func (p *gcn) SetOriginalTrainerName(name string) error {
	if err := checkName("trainer name", name, trainerNameLimit); err != nil {
		return err
	}
	encoded, err := native.EncodeUTF16BE(name, native.GCNNameSize)
	if err != nil {
		return translate(err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	copy(p.data.OTName[:], encoded)
	return nil
}

func (p *gcn) OriginalTrainerPublicID() uint16 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data.PublicID
}

func (p *gcn) SetOriginalTrainerPublicID(id uint16) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.PublicID = id
	return nil
}

func (p *gcn) OriginalTrainerSecretID() (uint16, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data.SecretID, nil
}

func (p *gcn) SetOriginalTrainerSecretID(id uint16) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.SecretID = id
	return nil
}

func (p *gcn) OriginalTrainerID() uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.trainerID()
}

func (p *gcn) SetOriginalTrainerID(id uint32) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.SecretID = uint16(id >> 16)
	p.data.PublicID = uint16(id)
	return nil
}

func (p *gcn) OriginalTrainerGender() (database.Gender, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return otGender(p.data.OTGender != 0), nil
}

func (p *gcn) SetOriginalTrainerGender(gender database.Gender) error {
	female, err := checkOTGender(gender)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.OTGender = 0
	if female {
		p.data.OTGender = 1
	}
	return nil
}

func (p *gcn) CurrentTrainerFriendship() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(p.data.Friendship), nil
}

func (p *gcn) SetCurrentTrainerFriendship(friendship int) error {
	if err := checkRange("friendship", friendship, 0, 255); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.Friendship = uint16(friendship)
	return nil
}

func (p *gcn) Ability() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.abilityName(int(p.data.AbilitySlot)), nil
}

func (p *gcn) SetAbility(ability string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	slot, err := p.resolveAbility(ability)
	if err != nil {
		return err
	}
	if slot > 1 {
		return invalidArgument("%s cannot have %q in %s", p.entry.Species, ability, p.game.Name)
	}
	p.data.AbilitySlot = uint8(slot)
	return nil
}

func (p *gcn) Ball() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ballName(int(p.data.Ball)), nil
}

func (p *gcn) SetBall(ball string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	i, err := p.resolveBall(ball)
	if err != nil {
		return err
	}
	p.data.Ball = uint8(i)
	return nil
}

func (p *gcn) LevelMet() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(p.data.LevelMet), nil
}

func (p *gcn) SetLevelMet(level int) error {
	if err := checkRange("level met", level, 0, calculations.MaxLevel); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.LevelMet = uint8(level)
	return nil
}

func (p *gcn) LocationMet(asEgg bool) (string, error) {
	if asEgg {
		return "", p.notInGame("egg location met")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.locationName(int(p.data.MetLocation)), nil
}

func (p *gcn) SetLocationMet(location string, asEgg bool) error {
	if asEgg {
		return p.notInGame("egg location met")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	id, err := p.resolveLocation(location)
	if err != nil {
		return err
	}
	p.data.MetLocation = uint16(id)
	return nil
}

func (p *gcn) OriginalGame() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gameName(int(p.data.OriginGame)), nil
}

func (p *gcn) SetOriginalGame(game string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	g, err := p.resolveOriginalGame(game)
	if err != nil {
		return err
	}
	p.data.OriginGame = uint8(g.ID)
	return nil
}

func (p *gcn) Language() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return languageName(p.data.Language), nil
}

func (p *gcn) SetLanguage(language string) error {
	code, err := languageCode(3, language)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.Language = code
	return nil
}

func (p *gcn) Experience() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(p.data.Experience)
}

func (p *gcn) SetExperience(experience int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.checkExperience(experience); err != nil {
		return err
	}
	p.setExperience(experience)
	return nil
}

func (p *gcn) setExperience(experience int) {
	p.data.Experience = uint32(experience)
	p.data.Level = uint8(p.levelAt(experience))
	p.recalculate()
}

func (p *gcn) Level() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(p.data.Level)
}

func (p *gcn) SetLevel(level int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.checkLevel(level); err != nil {
		return err
	}
	p.setExperience(p.experienceAt(level))
	return nil
}

func (p *gcn) CurrentHP() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(p.data.CurrentHP)
}

func (p *gcn) SetCurrentHP(hp int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := checkRange("current HP", hp, 0, int(p.data.Stats[0])); err != nil {
		return err
	}
	p.data.CurrentHP = uint16(hp)
	return nil
}

func (p *gcn) moves() [4]MoveSlot {
	var out [4]MoveSlot
	for i := range out {
		out[i] = p.moveSlot(int(p.data.Moves[i]), int(p.data.PP[i]), int(p.data.PPUps[i]))
	}
	return out
}

func (p *gcn) Moves() [4]MoveSlot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.moves()
}

func (p *gcn) SetMove(move string, index int) error {
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

func (p *gcn) SetMovePP(index, pp int) error {
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

func (p *gcn) evs() map[database.Stat]int {
	out := map[database.Stat]int{}
	for i, stat := range modernStatOrder {
		out[stat] = int(p.data.EVs[i])
	}
	return out
}

func (p *gcn) EVs() map[database.Stat]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.evs()
}

func (p *gcn) SetEV(stat database.Stat, value int) error {
	i, err := p.checkEV(stat, value)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.EVs[i] = uint16(value)
	p.recalculate()
	return nil
}

func (p *gcn) IVs() map[database.Stat]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ivs()
}

func (p *gcn) SetIV(stat database.Stat, value int) error {
	i, err := p.checkIV(stat, value)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.IVs[i] = uint8(value)
	p.recalculate()
	return nil
}

func (p *gcn) Stats() map[database.Stat]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := map[database.Stat]int{}
	for i, stat := range modernStatOrder {
		out[stat] = int(p.data.Stats[i])
	}
	return out
}

func (p *gcn) recalculate() {
	nature := calculations.NatureFromPersonality(p.data.Personality)
	stats := p.modernStats(int(p.data.Level), nature, p.evs(), p.ivs())
	for i, stat := range modernStatOrder {
		p.data.Stats[i] = uint16(stats[stat])
	}
	p.data.CurrentHP = min(p.data.CurrentHP, p.data.Stats[0])
}

func (p *gcn) Markings() (map[string]bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return markingsFromBits(3, p.data.Markings), nil
}

func (p *gcn) SetMarking(marking string, value bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	bits, err := setMarkingBit(3, p.data.Markings, marking, value)
	if err != nil {
		return err
	}
	p.data.Markings = bits
	return nil
}

func (p *gcn) Ribbons() (map[string]bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := map[string]bool{}
	var ranks [5]int
	for i, r := range p.data.ContestRanks {
		ranks[i] = int(r)
	}
	contestRibbonsFromRanks(out, ranks)
	flagRibbons(out, hoennRibbons, uint32(p.data.Ribbons))
	return out, nil
}

func (p *gcn) SetRibbon(ribbon string, value bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if category, rank, ok := contestRibbon(ribbon); ok {
		current := int(p.data.ContestRanks[category])
		p.data.ContestRanks[category] = uint8(applyContestRibbon(current, rank, value))
		return nil
	}
	bits, ok := setFlagRibbon(hoennRibbons, uint32(p.data.Ribbons), ribbon, value)
	if !ok {
		return invalidArgument("ribbon %q in %s", ribbon, p.game.Name)
	}
	p.data.Ribbons = uint16(bits)
	return nil
}

func (p *gcn) Ribbon(ribbon string) (bool, error) {
	return ribbonValue(p, ribbon)
}

func (p *gcn) ContestStats() (map[string]int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return contestStatMap(p.data.Contest), nil
}

func (p *gcn) SetContestStat(stat string, value int) error {
	i, err := contestStatIndex(stat, value)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.Contest[i] = uint8(value)
	return nil
}
