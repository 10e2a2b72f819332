package pokemon

import (
	"porygon/calculations"
	"porygon/database"
	"porygon/native"
)

// gen1 is a Red/Blue/Yellow record.
type gen1 struct {
	base
	data native.Gen1
}

var gen1Attributes = newAttributeSet[*gen1]()

func init() {
	gen1Attributes.ints.Register("Catch rate", accessor[*gen1, int]{
		Get: func(p *gen1) (int, error) {
			p.mu.Lock()
			defer p.mu.Unlock()
			return int(p.data.CatchRate), nil
		},
		Set: func(p *gen1, value int) error {
			if err := checkRange("catch rate", value, 0, 255); err != nil {
				return err
			}
			p.mu.Lock()
			defer p.mu.Unlock()
			p.data.CatchRate = uint8(value)
			return nil
		},
	})
}

func newGen1(f *Factory, g database.Game, entry database.PokemonEntry) *gen1 {
	p := &gen1{}
	p.init(f, g, entry)
	p.data.Species = uint8(entry.SpeciesID)
	p.data.CatchRate = uint8(entry.CatchRate)
	p.Attributes = gen1Attributes.bind(p)
	return p
}

func gen1FromNative(f *Factory, g database.Game, data []byte) (*gen1, error) {
	d, err := native.DecodeGen1(data)
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
	p := &gen1{data: *d}
	p.init(f, g, entry)
	p.Attributes = gen1Attributes.bind(p)
	return p, nil
}

func (p *gen1) Clone() Pokemon {
	p.mu.Lock()
	defer p.mu.Unlock()
	c := &gen1{data: p.data}
	c.init(p.factory, p.game, p.entry)
	c.Attributes = gen1Attributes.bind(c)
	return c
}

func (p *gen1) NativeData() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data.Encode()
}

func (p *gen1) ToGame(game string) (Pokemon, error) {
	return p.factory.ToGame(p, game)
}

func (p *gen1) SetSpecies(species string) error {
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
	p.recalculate()
	return nil
}

func (p *gen1) SetForm(form string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	entry, err := p.speciesEntry(p.entry.Species, form)
	if err != nil {
		return err
	}
	p.entry = entry
	return nil
}

func (p *gen1) Condition() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return conditionFromBits(uint32(p.data.Condition))
}

func (p *gen1) SetCondition(condition string) error {
	bits, err := conditionToBits(1, condition)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.Condition = uint8(bits)
	return nil
}

func (p *gen1) Nickname() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, _ := native.DecodeGBText(p.data.Nickname[:])
	return s
}

func (p *gen1) SetNickname(nickname string) error {
	if err := checkName("nickname", nickname, nicknameLimit(1)); err != nil {
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

// Gender is only known for species with a fixed gender.
func (p *gen1) Gender() (database.Gender, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if g, ok := p.entry.FixedGender(); ok {
		return g, nil
	}
	return "", p.notInGame("gender")
}

func (p *gen1) SetGender(gender database.Gender) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.entry.FixedGender(); !ok {
		return p.notInGame("gender")
	}
	_, err := p.checkGender(gender)
	return err
}

func (p *gen1) OriginalTrainerName() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, _ := native.DecodeGBText(p.data.OTName[:])
	return s
}

func (p *gen1) SetOriginalTrainerName(name string) error {
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

func (p *gen1) OriginalTrainerPublicID() uint16 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data.OTID
}

func (p *gen1) SetOriginalTrainerPublicID(id uint16) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.OTID = id
	return nil
}

func (p *gen1) OriginalTrainerID() uint32 {
	return uint32(p.OriginalTrainerPublicID())
}

func (p *gen1) SetOriginalTrainerID(id uint32) error {
	if err := checkRange("trainer id", int(id), 0, 0xFFFF); err != nil {
		return err
	}
	return p.SetOriginalTrainerPublicID(uint16(id))
}

func (p *gen1) Experience() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(native.Uint24(p.data.Experience))
}

func (p *gen1) SetExperience(experience int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.checkExperience(experience); err != nil {
		return err
	}
	p.setExperience(experience)
	return nil
}

func (p *gen1) setExperience(experience int) {
	level := p.levelAt(experience)
	p.data.Experience = native.PutUint24(uint32(experience))
	p.data.Level = uint8(level)
	p.data.BoxLevel = uint8(level)
	p.recalculate()
}

func (p *gen1) Level() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(p.data.Level)
}

func (p *gen1) SetLevel(level int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.checkLevel(level); err != nil {
		return err
	}
	p.setExperience(p.experienceAt(level))
	return nil
}

func (p *gen1) CurrentHP() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(p.data.CurrentHP)
}

func (p *gen1) SetCurrentHP(hp int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := checkRange("current HP", hp, 0, int(p.data.Stats[0])); err != nil {
		return err
	}
	p.data.CurrentHP = uint16(hp)
	return nil
}

func (p *gen1) moves() [4]MoveSlot {
	var out [4]MoveSlot
	for i := range out {
		pp := p.data.PP[i]
		out[i] = p.moveSlot(int(p.data.Moves[i]), int(pp&gbPPMask), int(pp>>6))
	}
	return out
}

func (p *gen1) Moves() [4]MoveSlot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.moves()
}

func (p *gen1) SetMove(move string, index int) error {
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

func (p *gen1) SetMovePP(index, pp int) error {
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

func (p *gen1) evs() map[database.Stat]int {
	out := map[database.Stat]int{}
	for i, stat := range gbStatOrder {
		out[stat] = int(p.data.EVs[i])
	}
	return out
}

func (p *gen1) EVs() map[database.Stat]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.evs()
}

func (p *gen1) SetEV(stat database.Stat, value int) error {
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

func (p *gen1) IVs() map[database.Stat]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return calculations.UnpackGBIVs(p.data.IVData).Map()
}

func (p *gen1) SetIV(stat database.Stat, value int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	iv, err := setGBIV(calculations.UnpackGBIVs(p.data.IVData), stat, value)
	if err != nil {
		return err
	}
	p.data.IVData = iv.Pack()
	p.recalculate()
	return nil
}

func (p *gen1) Stats() map[database.Stat]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := map[database.Stat]int{}
	for i, stat := range gbStatOrder {
		out[stat] = int(p.data.Stats[i])
	}
	return out
}

func (p *gen1) recalculate() {
	ivs := calculations.UnpackGBIVs(p.data.IVData).Map()
	stats := p.gbStats(int(p.data.Level), p.evs(), ivs)
	for i, stat := range gbStatOrder {
		p.data.Stats[i] = uint16(stats[stat])
	}
	p.data.CurrentHP = min(p.data.CurrentHP, p.data.Stats[0])
}

// setGBIV writes one Game Boy IV. The HP IV lives in the low bits of the
// other four.
func setGBIV(iv calculations.GBIVs, stat database.Stat, value int) (calculations.GBIVs, error) {
	if _, err := statIndex(gbStatOrder, stat); err != nil {
		return iv, err
	}
	if err := checkRange("IV", value, 0, 15); err != nil {
		return iv, err
	}
	switch stat {
	case database.StatHP:
		iv = iv.WithHP(value)
	case database.StatAttack:
		iv.Attack = value
	case database.StatDefense:
		iv.Defense = value
	case database.StatSpeed:
		iv.Speed = value
	case database.StatSpecial:
		iv.Special = value
	}
	return iv, nil
}
