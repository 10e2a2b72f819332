package database

import (
	"errors"
	"testing"
)

func embeddedStore(t *testing.T) *Store {
	t.Helper()
	mf, err := EmbeddedMasterfile()
	if err != nil {
		t.Fatalf("embedded masterfile: %v", err)
	}
	return NewStore(mf)
}

func TestGameGeneration(t *testing.T) {
	cases := map[string]int{
		"Red": 1, "Blue": 1, "Yellow": 1,
		"Gold": 2, "Silver": 2, "Crystal": 2,
		"Ruby": 3, "Sapphire": 3, "Emerald": 3, "FireRed": 3, "LeafGreen": 3,
		"Colosseum": 3, "XD": 3,
		"Diamond": 4, "HeartGold": 4, "Black 2": 5, "Alpha Sapphire": 6,
	}
	for game, want := range cases {
		got, err := GameGeneration(game)
		if err != nil {
			t.Fatalf("%s: %v", game, err)
		}
		if got != want {
			t.Errorf("%s: expected generation %d, got %d", game, want, got)
		}
	}
	if _, err := GameGeneration("Stadium"); !errors.Is(err, ErrInvalidGame) {
		t.Errorf("expected ErrInvalidGame, got %v", err)
	}
}

func TestPokemonEntryPerGeneration(t *testing.T) {
	s := embeddedStore(t)

	red, err := s.Pokemon("Magnemite", "Red", "")
	if err != nil {
		t.Fatal(err)
	}
	if red.Types != [2]string{"Electric", None} {
		t.Errorf("expected gen 1 typing, got %v", red.Types)
	}
	if red.BaseStats[StatSpecial] != 95 || len(red.BaseStats) != 5 {
		t.Errorf("expected five gen 1 stats with Special 95, got %v", red.BaseStats)
	}
	if red.Abilities != [2]string{None, None} {
		t.Errorf("expected no abilities before gen 3, got %v", red.Abilities)
	}

	gold, err := s.Pokemon("Magnemite", "Gold", "")
	if err != nil {
		t.Fatal(err)
	}
	if gold.Types != [2]string{"Electric", "Steel"} {
		t.Errorf("expected Electric/Steel, got %v", gold.Types)
	}
	if len(gold.BaseStats) != 6 {
		t.Errorf("expected six stats, got %v", gold.BaseStats)
	}

	emerald, err := s.Pokemon("Pidgey", "Emerald", "")
	if err != nil {
		t.Fatal(err)
	}
	if emerald.Abilities != [2]string{"Keen Eye", None} || emerald.HiddenAbility != None {
		t.Errorf("unexpected gen 3 abilities %v / %s", emerald.Abilities, emerald.HiddenAbility)
	}
	black, err := s.Pokemon("Pidgey", "Black", "")
	if err != nil {
		t.Fatal(err)
	}
	if black.Abilities != [2]string{"Keen Eye", "Tangled Feet"} || black.HiddenAbility != "Big Pecks" {
		t.Errorf("unexpected gen 5 abilities %v / %s", black.Abilities, black.HiddenAbility)
	}
	if !black.HasAbility("Big Pecks") || black.HasAbility(None) {
		t.Errorf("HasAbility disagrees with entry")
	}
}

func TestSpeciesAvailability(t *testing.T) {
	s := embeddedStore(t)
	if _, err := s.Pokemon("Mightyena", "Crystal", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for Mightyena in Crystal, got %v", err)
	}
	if _, err := s.Pokemon("Turtwig", "XD", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for Turtwig in XD, got %v", err)
	}
	if _, err := s.Pokemon("Missingno", "Red", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.Pokemon("Mightyena", "Colosseum", ""); err != nil {
		t.Errorf("expected Mightyena in Colosseum, got %v", err)
	}
}

func TestForms(t *testing.T) {
	s := embeddedStore(t)

	gold, err := s.Pokemon("Unown", "Gold", "")
	if err != nil {
		t.Fatal(err)
	}
	if gold.Form != "A" || len(gold.Forms) != 26 {
		t.Errorf("expected 26 forms defaulting to A, got %s %v", gold.Form, gold.Forms)
	}
	if _, err := s.Pokemon("Unown", "Gold", "?"); !errors.Is(err, ErrInvalidForm) {
		t.Errorf("expected ErrInvalidForm for ? in Gold, got %v", err)
	}
	ruby, err := s.Pokemon("Unown", "Ruby", "?")
	if err != nil {
		t.Fatal(err)
	}
	if len(ruby.Forms) != 28 {
		t.Errorf("expected 28 forms, got %d", len(ruby.Forms))
	}

	if _, err := s.Pokemon("Pichu", "Platinum", "Spiky-eared"); !errors.Is(err, ErrInvalidForm) {
		t.Errorf("expected ErrInvalidForm outside HGSS, got %v", err)
	}
	if _, err := s.Pokemon("Pichu", "HeartGold", "Spiky-eared"); err != nil {
		t.Errorf("expected Spiky-eared Pichu in HeartGold, got %v", err)
	}

	bulbasaur, err := s.Pokemon("Bulbasaur", "X", "")
	if err != nil {
		t.Fatal(err)
	}
	if bulbasaur.Form != "Standard" {
		t.Errorf("expected Standard form, got %s", bulbasaur.Form)
	}
}

func TestMovesItemsLocations(t *testing.T) {
	s := embeddedStore(t)

	tackle, err := s.Move("Tackle", "Red")
	if err != nil {
		t.Fatal(err)
	}
	if tackle.PP != [4]int{35, 42, 49, 56} {
		t.Errorf("expected Tackle PP table 35/42/49/56, got %v", tackle.PP)
	}
	if _, err := s.Move("Crunch", "Yellow"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected Crunch missing in Yellow, got %v", err)
	}
	if _, err := s.Move("Shadow Rush", "Emerald"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected Shadow Rush missing in Emerald, got %v", err)
	}
	byID, err := s.MoveByID(1001, "XD")
	if err != nil || byID.Name != "Shadow Rush" {
		t.Errorf("expected Shadow Rush by id, got %v %v", byID, err)
	}

	potion, err := s.Item("Potion", "Red")
	if err != nil {
		t.Fatal(err)
	}
	if potion.Holdable {
		t.Errorf("nothing is holdable in gen 1")
	}
	if potion, _ = s.Item("Potion", "Gold"); !potion.Holdable {
		t.Errorf("expected Potion holdable in Gold")
	}
	if _, err := s.Item("Berry", "Ruby"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected gen 2 Berry retired by Ruby, got %v", err)
	}
	if _, err := s.Item("GS Ball", "Gold"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected GS Ball only in Crystal, got %v", err)
	}

	if _, err := s.Location("Distant land", "XD"); err != nil {
		t.Errorf("expected Distant land in XD, got %v", err)
	}
	if _, err := s.Location("Distant land", "Emerald"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected Distant land missing in Emerald, got %v", err)
	}
	if _, err := s.Location("Route 1", "Red"); !errors.Is(err, ErrNotFound) {
		t.Errorf("gen 1 records no locations, got %v", err)
	}
}

func TestFixedGender(t *testing.T) {
	s := embeddedStore(t)
	cases := []struct {
		species string
		gender  Gender
		fixed   bool
	}{
		{"Nidorina", GenderFemale, true},
		{"Nidorino", GenderMale, true},
		{"Magnemite", GenderGenderless, true},
		{"Charmander", "", false},
	}
	for _, c := range cases {
		t.Run(c.species, func(t *testing.T) {
			e, err := s.Pokemon(c.species, "Emerald", "")
			if err != nil {
				t.Fatal(err)
			}
			g, fixed := e.FixedGender()
			if g != c.gender || fixed != c.fixed {
				t.Errorf("expected %q/%v, got %q/%v", c.gender, c.fixed, g, fixed)
			}
		})
	}
}

func TestMergeReplacesRecords(t *testing.T) {
	mf, err := EmbeddedMasterfile()
	if err != nil {
		t.Fatal(err)
	}
	err = mf.MergeBytes([]byte(`{"moves": {"33": {"name": "Tackle", "generation": 1, "type": "Normal", "pp": 40}}}`))
	if err != nil {
		t.Fatal(err)
	}
	tackle, err := NewStore(mf).Move("Tackle", "X")
	if err != nil {
		t.Fatal(err)
	}
	if tackle.PP[0] != 40 {
		t.Errorf("expected merged PP 40, got %d", tackle.PP[0])
	}
	if err := mf.MergeBytes([]byte(`{"moves": [`)); err == nil {
		t.Errorf("expected malformed masterfile to fail")
	}
}
