package database

import (
	"fmt"
	"slices"
)

const defaultFormName = "Standard"

// Store answers per-game lookups from any record Source.
type Store struct {
	src Source
}

var _ Lookup = (*Store)(nil)

func NewStore(src Source) *Store {
	return &Store{src: src}
}

func (s *Store) Pokemon(species, game, form string) (PokemonEntry, error) {
	g, err := GameByName(game)
	if err != nil {
		return PokemonEntry{}, err
	}
	rec, err := s.src.SpeciesByName(species)
	if err != nil {
		return PokemonEntry{}, err
	}
	return buildPokemonEntry(rec, g, form)
}

func (s *Store) PokemonByID(id int, game, form string) (PokemonEntry, error) {
	g, err := GameByName(game)
	if err != nil {
		return PokemonEntry{}, err
	}
	rec, err := s.src.SpeciesByID(id)
	if err != nil {
		return PokemonEntry{}, err
	}
	return buildPokemonEntry(rec, g, form)
}

func (s *Store) Move(name, game string) (MoveEntry, error) {
	g, err := GameByName(game)
	if err != nil {
		return MoveEntry{}, err
	}
	rec, err := s.src.MoveByName(name)
	if err != nil {
		return MoveEntry{}, err
	}
	return buildMoveEntry(rec, g)
}

func (s *Store) MoveByID(id int, game string) (MoveEntry, error) {
	g, err := GameByName(game)
	if err != nil {
		return MoveEntry{}, err
	}
	rec, err := s.src.MoveByID(id)
	if err != nil {
		return MoveEntry{}, err
	}
	return buildMoveEntry(rec, g)
}

func (s *Store) Item(name, game string) (ItemEntry, error) {
	g, err := GameByName(game)
	if err != nil {
		return ItemEntry{}, err
	}
	rec, err := s.src.ItemByName(name)
	if err != nil {
		return ItemEntry{}, err
	}
	return buildItemEntry(rec, g)
}

func (s *Store) ItemByID(id int, game string) (ItemEntry, error) {
	g, err := GameByName(game)
	if err != nil {
		return ItemEntry{}, err
	}
	rec, err := s.src.ItemByID(id)
	if err != nil {
		return ItemEntry{}, err
	}
	return buildItemEntry(rec, g)
}

func (s *Store) Location(name, game string) (LocationEntry, error) {
	g, err := GameByName(game)
	if err != nil {
		return LocationEntry{}, err
	}
	rec, err := s.src.LocationByName(name)
	if err != nil {
		return LocationEntry{}, err
	}
	return buildLocationEntry(rec, g)
}

func (s *Store) LocationByID(id int, game string) (LocationEntry, error) {
	g, err := GameByName(game)
	if err != nil {
		return LocationEntry{}, err
	}
	rec, err := s.src.LocationByID(id)
	if err != nil {
		return LocationEntry{}, err
	}
	return buildLocationEntry(rec, g)
}

func availableForms(rec *SpeciesRecord, g Game) []string {
	var forms []string
	for _, f := range rec.Forms {
		from := f.Generation
		if from == 0 {
			from = rec.Generation
		}
		if g.availableIn(from, 0, f.Games) {
			forms = append(forms, f.Name)
		}
	}
	if len(forms) == 0 {
		forms = []string{defaultFormName}
	}
	return forms
}

func buildPokemonEntry(rec *SpeciesRecord, g Game, form string) (PokemonEntry, error) {
	if !g.availableIn(rec.Generation, 0, nil) {
		return PokemonEntry{}, fmt.Errorf("%w: %s is not in %s", ErrNotFound, rec.Name, g.Name)
	}

	forms := availableForms(rec, g)
	if form == "" {
		form = forms[0]
	}
	if !slices.Contains(forms, form) {
		return PokemonEntry{}, fmt.Errorf("%w: %q for %s in %s", ErrInvalidForm, form, rec.Name, g.Name)
	}

	entry := PokemonEntry{
		Species:        rec.Name,
		SpeciesID:      rec.ID,
		Game:           g.Name,
		Generation:     g.Generation,
		Form:           form,
		Forms:          forms,
		Types:          [2]string{None, None},
		Abilities:      [2]string{None, None},
		HiddenAbility:  None,
		EggGroups:      append([]string(nil), rec.EggGroups...),
		GenderRate:     rec.GenderRate,
		BaseFriendship: rec.BaseFriendship,
		GrowthRate:     rec.GrowthRate,
		CatchRate:      rec.CatchRate,
	}

	types := rec.Types
	if g.Generation == 1 && len(rec.Gen1Types) > 0 {
		types = rec.Gen1Types
	}
	for i := 0; i < len(types) && i < 2; i++ {
		entry.Types[i] = types[i]
	}

	b := rec.BaseStats
	if g.Generation == 1 {
		special := b.Special
		if special == 0 {
			special = b.SpecialAttack
		}
		entry.BaseStats = map[Stat]int{
			StatHP:      b.HP,
			StatAttack:  b.Attack,
			StatDefense: b.Defense,
			StatSpeed:   b.Speed,
			StatSpecial: special,
		}
	} else {
		entry.BaseStats = map[Stat]int{
			StatHP:             b.HP,
			StatAttack:         b.Attack,
			StatDefense:        b.Defense,
			StatSpeed:          b.Speed,
			StatSpecialAttack:  b.SpecialAttack,
			StatSpecialDefense: b.SpecialDefense,
		}
	}

	if g.Generation >= 3 {
		slot := 0
		for _, a := range rec.Abilities {
			from := a.Generation
			if from == 0 {
				from = 3
			}
			if from <= g.Generation && slot < 2 {
				entry.Abilities[slot] = a.Name
				slot++
			}
		}
		if g.Generation >= 5 && rec.HiddenAbility != "" {
			entry.HiddenAbility = rec.HiddenAbility
		}
	}
	return entry, nil
}

func buildMoveEntry(rec *MoveRecord, g Game) (MoveEntry, error) {
	if !g.availableIn(rec.Generation, 0, rec.Games) {
		return MoveEntry{}, fmt.Errorf("%w: move %s is not in %s", ErrNotFound, rec.Name, g.Name)
	}
	entry := MoveEntry{
		Name: rec.Name,
		ID:   rec.ID,
		Game: g.Name,
		Type: rec.Type,
	}
	for ups := range entry.PP {
		entry.PP[ups] = rec.PP * (5 + ups) / 5
	}
	return entry, nil
}

func buildItemEntry(rec *ItemRecord, g Game) (ItemEntry, error) {
	if !g.availableIn(rec.Generation, rec.LastGeneration, rec.Games) {
		return ItemEntry{}, fmt.Errorf("%w: item %s is not in %s", ErrNotFound, rec.Name, g.Name)
	}
	return ItemEntry{
		Name:     rec.Name,
		ID:       rec.ID,
		Game:     g.Name,
		Holdable: rec.Holdable && g.Generation >= 2,
		Pocket:   rec.Pocket,
	}, nil
}

func buildLocationEntry(rec *LocationRecord, g Game) (LocationEntry, error) {
	if g.Group == "" || !slices.Contains(rec.Groups, g.Group) {
		return LocationEntry{}, fmt.Errorf("%w: location %s is not in %s", ErrNotFound, rec.Name, g.Name)
	}
	return LocationEntry{Name: rec.Name, ID: rec.ID, Game: g.Name}, nil
}
