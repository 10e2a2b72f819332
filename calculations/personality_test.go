package calculations

import (
	"errors"
	"math/bits"
	"testing"

	"porygon/database"
)

func boolPtr(b bool) *bool { return &b }

func TestSolvePersonality(t *testing.T) {
	const trainer = 0x1234ABCD

	cases := []struct {
		name    string
		current uint32
		c       PersonalityConstraints
	}{
		{"shiny female", 0xDEADBEEF, PersonalityConstraints{GenderRate: 4, Gender: database.GenderFemale, Shiny: boolPtr(true), TrainerID: trainer}},
		{"male", 0x00000010, PersonalityConstraints{GenderRate: 1, Gender: database.GenderMale}},
		{"unown question mark", 0x01020304, PersonalityConstraints{GenderRate: database.GenderRateGenderless, Unown: "?"}},
		{"shiny unown", 0x01020304, PersonalityConstraints{GenderRate: database.GenderRateGenderless, Unown: "!", Shiny: boolPtr(true), TrainerID: trainer}},
		{"adamant female", 0xCAFEF00D, PersonalityConstraints{GenderRate: 4, Gender: database.GenderFemale, Nature: "Adamant"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pid, err := SolvePersonality(c.current, c.c)
			if err != nil {
				t.Fatal(err)
			}
			if c.c.Gender != "" && ModernGender(c.c.GenderRate, pid) != c.c.Gender {
				t.Errorf("expected gender %s for %#x", c.c.Gender, pid)
			}
			if c.c.Shiny != nil && ModernShiny(pid, c.c.TrainerID) != *c.c.Shiny {
				t.Errorf("expected shiny %v for %#x", *c.c.Shiny, pid)
			}
			if c.c.Unown != "" && ModernUnownForm(pid) != c.c.Unown {
				t.Errorf("expected unown %s, got %s", c.c.Unown, ModernUnownForm(pid))
			}
			if c.c.Nature != "" && NatureFromPersonality(pid) != c.c.Nature {
				t.Errorf("expected nature %s, got %s", c.c.Nature, NatureFromPersonality(pid))
			}
		})
	}
}

func TestSolvePersonalityKeepsSatisfiedValue(t *testing.T) {
	pid, err := SolvePersonality(0x000000FF, PersonalityConstraints{GenderRate: 4, Gender: database.GenderMale})
	if err != nil {
		t.Fatal(err)
	}
	if pid != 0x000000FF {
		t.Errorf("expected unchanged personality, got %#x", pid)
	}
}

func TestSolvePersonalityUnshiny(t *testing.T) {
	const trainer = 0x00010001
	current := uint32(0x00050004)
	if !ModernShiny(current, trainer) {
		t.Fatalf("fixture should start shiny")
	}
	pid, err := SolvePersonality(current, PersonalityConstraints{GenderRate: 4, Shiny: boolPtr(false), TrainerID: trainer})
	if err != nil {
		t.Fatal(err)
	}
	if ModernShiny(pid, trainer) {
		t.Errorf("expected a non-shiny personality, got %#x", pid)
	}
	if d := bits.OnesCount32(pid ^ current); d != 1 {
		t.Errorf("expected a single bit change, got %d", d)
	}
}

func TestSolvePersonalityNoSolution(t *testing.T) {
	_, err := SolvePersonality(0, PersonalityConstraints{GenderRate: database.GenderRateGenderless, Gender: database.GenderFemale})
	if !errors.Is(err, ErrNoSolution) {
		t.Errorf("expected ErrNoSolution, got %v", err)
	}
}

func TestSolveGBIVs(t *testing.T) {
	current := GBIVs{Attack: 12, Defense: 3, Speed: 8, Special: 5}

	iv, err := SolveGBIVs(current, GBConstraints{GenderRate: 4, Gender: database.GenderFemale, Shiny: boolPtr(true)})
	if err != nil {
		t.Fatal(err)
	}
	if !GBShiny(iv) {
		t.Errorf("expected shiny IVs, got %+v", iv)
	}
	if g, _ := GBGender(4, iv.Attack); g != database.GenderFemale {
		t.Errorf("expected female IVs, got %+v", iv)
	}

	iv, err = SolveGBIVs(current, GBConstraints{GenderRate: database.GenderRateGenderless, Unown: "G"})
	if err != nil {
		t.Fatal(err)
	}
	if GBUnownForm(iv) != "G" {
		t.Errorf("expected G, got %s", GBUnownForm(iv))
	}

	if iv, _ = SolveGBIVs(current, GBConstraints{GenderRate: 4, Gender: database.GenderMale}); iv != current {
		t.Errorf("expected unchanged IVs, got %+v", iv)
	}
}

func TestSolveGBIVsNoSolution(t *testing.T) {
	current := GBIVs{Attack: 12, Defense: 3, Speed: 8, Special: 5}
	cases := []struct {
		name string
		c    GBConstraints
	}{
		{"shiny female one in eight", GBConstraints{GenderRate: 1, Gender: database.GenderFemale, Shiny: boolPtr(true)}},
		{"shiny unown G", GBConstraints{GenderRate: database.GenderRateGenderless, Unown: "G", Shiny: boolPtr(true)}},
		{"male only species female", GBConstraints{GenderRate: database.GenderRateAllMale, Gender: database.GenderFemale}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := SolveGBIVs(current, c.c); !errors.Is(err, ErrNoSolution) {
				t.Errorf("expected ErrNoSolution, got %v", err)
			}
		})
	}
}
