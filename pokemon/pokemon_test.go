package pokemon

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"porygon/database"
	"porygon/native"
)

var allFamilies = []string{"Red", "Crystal", "Emerald", "Colosseum", "Diamond", "Black", "X"}

func TestCommonSetters(t *testing.T) {
	f := testFactory(t)
	for _, game := range allFamilies {
		t.Run(game, func(t *testing.T) {
			p := mustMake(t, f, "Pikachu", game, "", 20)

			if err := p.SetNickname("SPARKY"); err != nil {
				t.Fatal(err)
			}
			if p.Nickname() != "SPARKY" {
				t.Errorf("expected SPARKY, got %q", p.Nickname())
			}
			if err := p.SetOriginalTrainerName("ASH"); err != nil {
				t.Fatal(err)
			}
			if p.OriginalTrainerName() != "ASH" {
				t.Errorf("expected ASH, got %q", p.OriginalTrainerName())
			}
			if err := p.SetOriginalTrainerPublicID(31337); err != nil {
				t.Fatal(err)
			}
			if p.OriginalTrainerPublicID() != 31337 {
				t.Errorf("expected public id 31337, got %d", p.OriginalTrainerPublicID())
			}
			if err := p.SetLevel(50); err != nil {
				t.Fatal(err)
			}
			if p.Level() != 50 {
				t.Errorf("expected level 50, got %d", p.Level())
			}
			if err := p.SetExperience(p.Experience() + 1); err != nil {
				t.Fatal(err)
			}
			if p.Level() != 50 {
				t.Errorf("expected one more point to stay at level 50, got %d", p.Level())
			}
			if err := p.SetCondition(ConditionParalysis); err != nil {
				t.Fatal(err)
			}
			if p.Condition() != ConditionParalysis {
				t.Errorf("expected Paralysis, got %s", p.Condition())
			}

			if err := p.SetEV(database.StatAttack, 100); err != nil {
				t.Fatal(err)
			}
			if v := p.EVs()[database.StatAttack]; v != 100 {
				t.Errorf("expected Attack EV 100, got %d", v)
			}
			if err := p.SetIV(database.StatDefense, 9); err != nil {
				t.Fatal(err)
			}
			if v := p.IVs()[database.StatDefense]; v != 9 {
				t.Errorf("expected Defense IV 9, got %d", v)
			}
			if err := p.SetCurrentHP(1); err != nil {
				t.Fatal(err)
			}
			if p.CurrentHP() != 1 {
				t.Errorf("expected 1 HP, got %d", p.CurrentHP())
			}
			if err := p.SetCurrentHP(p.Stats()[database.StatHP] + 1); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("expected ErrOutOfRange above max HP, got %v", err)
			}

			if err := p.SetMove("Thunderbolt", 0); err != nil {
				t.Fatal(err)
			}
			if err := p.SetMovePP(0, 5); err != nil {
				t.Fatal(err)
			}
			slot := p.Moves()[0]
			if slot.Move != "Thunderbolt" || slot.PP != 5 || slot.MaxPP != 15 {
				t.Errorf("expected Thunderbolt 5/15, got %+v", slot)
			}
			if err := p.SetMovePP(0, 16); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("expected ErrOutOfRange for PP 16, got %v", err)
			}
			if err := p.SetMovePP(1, 1); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument for an empty slot, got %v", err)
			}
			if err := p.SetMove("Thunderbolt", 4); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("expected ErrOutOfRange for slot 4, got %v", err)
			}
			if err := p.SetMove("Splash Dance", 1); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument for an unknown move, got %v", err)
			}
		})
	}
}

func TestGen2Setters(t *testing.T) {
	f := testFactory(t)
	for _, game := range allFamilies[1:] {
		t.Run(game, func(t *testing.T) {
			p := mustMake(t, f, "Pikachu", game, "", 20)

			if err := p.SetHeldItem("Leftovers"); err != nil {
				t.Fatal(err)
			}
			if item, _ := p.HeldItem(); item != "Leftovers" {
				t.Errorf("expected Leftovers, got %s", item)
			}
			if err := p.SetHeldItem("Bicycle"); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument for a key item, got %v", err)
			}
			if err := p.SetCurrentTrainerFriendship(200); err != nil {
				t.Fatal(err)
			}
			if v, _ := p.CurrentTrainerFriendship(); v != 200 {
				t.Errorf("expected friendship 200, got %d", v)
			}
			if err := p.SetCurrentTrainerFriendship(256); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("expected ErrOutOfRange for friendship 256, got %v", err)
			}
			if err := p.SetPokerusDuration(3); err != nil {
				t.Fatal(err)
			}
			if v, _ := p.PokerusDuration(); v != 3 {
				t.Errorf("expected pokerus 3, got %d", v)
			}
			if err := p.SetLevelMet(30); err != nil {
				t.Fatal(err)
			}
			if v, _ := p.LevelMet(); v != 30 {
				t.Errorf("expected level met 30, got %d", v)
			}
			if err := p.SetOriginalTrainerGender(database.GenderFemale); err != nil {
				t.Fatal(err)
			}
			if g, _ := p.OriginalTrainerGender(); g != database.GenderFemale {
				t.Errorf("expected female trainer, got %s", g)
			}
			if err := p.SetIsEgg(true); err != nil {
				t.Fatal(err)
			}
			if egg, _ := p.IsEgg(); !egg {
				t.Errorf("expected an egg")
			}

			if err := p.SetGender(database.GenderFemale); err != nil {
				t.Fatal(err)
			}
			if err := p.SetShininess(true); err != nil {
				t.Fatal(err)
			}
			if g, _ := p.Gender(); g != database.GenderFemale {
				t.Errorf("expected shininess to keep Female, got %s", g)
			}
			if shiny, _ := p.IsShiny(); !shiny {
				t.Errorf("expected shiny")
			}
			if err := p.SetGender(database.GenderMale); err != nil {
				t.Fatal(err)
			}
			if shiny, _ := p.IsShiny(); !shiny {
				t.Errorf("expected gender change to keep shininess")
			}
			if err := p.SetShininess(false); err != nil {
				t.Fatal(err)
			}
			if shiny, _ := p.IsShiny(); shiny {
				t.Errorf("expected not shiny")
			}
			if g, _ := p.Gender(); g != database.GenderMale {
				t.Errorf("expected Male, got %s", g)
			}
		})
	}
}

func TestGen3Setters(t *testing.T) {
	f := testFactory(t)
	for _, game := range allFamilies[2:] {
		t.Run(game, func(t *testing.T) {
			p := mustMake(t, f, "Pikachu", game, "", 20)

			if err := p.SetGender(database.GenderFemale); err != nil {
				t.Fatal(err)
			}
			if err := p.SetNature("Modest"); err != nil {
				t.Fatal(err)
			}
			if err := p.SetShininess(true); err != nil {
				t.Fatal(err)
			}
			if nature, _ := p.Nature(); nature != "Modest" {
				t.Errorf("expected Modest, got %s", nature)
			}
			if g, _ := p.Gender(); g != database.GenderFemale {
				t.Errorf("expected Female, got %s", g)
			}
			if shiny, _ := p.IsShiny(); !shiny {
				t.Errorf("expected shiny")
			}
			if err := p.SetNature("Grumpy"); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument for an unknown nature, got %v", err)
			}

			if err := p.SetOriginalTrainerSecretID(777); err != nil {
				t.Fatal(err)
			}
			if id, _ := p.OriginalTrainerSecretID(); id != 777 {
				t.Errorf("expected secret id 777, got %d", id)
			}
			if id := p.OriginalTrainerID(); id != 777<<16|uint32(p.OriginalTrainerPublicID()) {
				t.Errorf("expected full id to combine both halves, got 0x%X", id)
			}
			if err := p.SetBall("Great Ball"); err != nil {
				t.Fatal(err)
			}
			if ball, _ := p.Ball(); ball != "Great Ball" {
				t.Errorf("expected Great Ball, got %s", ball)
			}
			if err := p.SetBall("Beast Ball"); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument for an unknown ball, got %v", err)
			}
			if err := p.SetLanguage("French"); err != nil {
				t.Fatal(err)
			}
			if lang, _ := p.Language(); lang != "French" {
				t.Errorf("expected French, got %s", lang)
			}
			if err := p.SetMarking("Heart", true); err != nil {
				t.Fatal(err)
			}
			if m, _ := p.Markings(); !m["Heart"] || m["Circle"] {
				t.Errorf("expected only Heart, got %v", m)
			}
			if err := p.SetContestStat("Sheen", 200); err != nil {
				t.Fatal(err)
			}
			if c, _ := p.ContestStats(); c["Sheen"] != 200 {
				t.Errorf("expected Sheen 200, got %v", c)
			}
			if err := p.SetContestStat("Cool", 256); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("expected ErrOutOfRange for contest stat 256, got %v", err)
			}
			if err := p.SetAbility("Static"); err != nil {
				t.Fatal(err)
			}
			if err := p.SetAbility("Levitate"); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument for a foreign ability, got %v", err)
			}
			if err := p.SetOriginalGame("Red"); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument for a Game Boy origin, got %v", err)
			}
			if err := p.SetIV(database.StatSpeed, 32); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("expected ErrOutOfRange for IV 32, got %v", err)
			}
			if err := p.SetEV(database.StatSpeed, 256); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("expected ErrOutOfRange for EV 256, got %v", err)
			}
		})
	}
}

func TestContestRibbonRanks(t *testing.T) {
	f := testFactory(t)
	for _, game := range allFamilies[2:] {
		t.Run(game, func(t *testing.T) {
			p := mustMake(t, f, "Pikachu", game, "", 20)
			if err := p.SetRibbon("Cool Hyper", true); err != nil {
				t.Fatal(err)
			}
			if err := p.SetRibbon("Champion", true); err != nil {
				t.Fatal(err)
			}
			r, _ := p.Ribbons()
			for name, want := range map[string]bool{
				"Cool": true, "Cool Super": true, "Cool Hyper": true, "Cool Master": false,
				"Beauty": false, "Champion": true, "World": false,
			} {
				if r[name] != want {
					t.Errorf("expected %s=%v, got %v", name, want, r[name])
				}
			}

			if err := p.SetRibbon("Cool Super", false); err != nil {
				t.Fatal(err)
			}
			r, _ = p.Ribbons()
			if !r["Cool"] || r["Cool Super"] || r["Cool Hyper"] {
				t.Errorf("expected clearing Super to keep only Cool, got %v %v %v", r["Cool"], r["Cool Super"], r["Cool Hyper"])
			}
			if err := p.SetRibbon("Best Ribbon", true); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument for an unknown ribbon, got %v", err)
			}
		})
	}
}

func TestNDSSetters(t *testing.T) {
	f := testFactory(t)

	diamond := mustMake(t, f, "Pikachu", "Diamond", "", 20)
	if err := diamond.SetLocationMet("Day-Care Couple", true); err != nil {
		t.Fatal(err)
	}
	if loc, _ := diamond.LocationMet(true); loc != "Day-Care Couple" {
		t.Errorf("expected egg location Day-Care Couple, got %s", loc)
	}
	if loc, _ := diamond.LocationMet(false); loc != "Faraway place" {
		t.Errorf("expected met location to stay Faraway place, got %s", loc)
	}
	if err := diamond.SetLanguage("Korean"); err != nil {
		t.Errorf("expected Korean in generation 4, got %v", err)
	}
	if err := diamond.SetRibbon("Sinnoh Champion", true); err != nil {
		t.Fatal(err)
	}
	if err := diamond.SetRibbon("Kalos Champion", true); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for a Kalos ribbon in Diamond, got %v", err)
	}
	if err := diamond.SetMarking("Star", true); err != nil {
		t.Errorf("expected six markings in generation 4, got %v", err)
	}
	if err := diamond.SetAbility("Lightning Rod"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected no hidden ability in Diamond, got %v", err)
	}

	black := mustMake(t, f, "Pikachu", "Black", "", 20)
	pid, _ := black.Personality()
	if err := black.SetNature("Timid"); err != nil {
		t.Fatal(err)
	}
	if after, _ := black.Personality(); after != pid {
		t.Errorf("expected a stored nature to leave the personality alone")
	}
	if err := black.SetAbility("Lightning Rod"); err != nil {
		t.Fatal(err)
	}
	if ability, _ := black.Ability(); ability != "Lightning Rod" {
		t.Errorf("expected Lightning Rod, got %s", ability)
	}

	x := mustMake(t, f, "Pikachu", "X", "", 20)
	if err := x.SetNickname("ABCDEFGHIJKL"); err != nil {
		t.Errorf("expected 12 character nicknames in generation 6, got %v", err)
	}
	if err := x.SetRibbon("Kalos Champion", true); err != nil {
		t.Fatal(err)
	}
	if r, _ := x.Ribbons(); !r["Kalos Champion"] {
		t.Errorf("expected Kalos Champion")
	}
}

func TestGen1Nicknames(t *testing.T) {
	p := mustMake(t, testFactory(t), "Pikachu", "Red", "", 5)
	if err := p.SetNickname("ABCDEFGHIJK"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for 11 characters, got %v", err)
	}
	if err := p.SetNickname(""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for an empty name, got %v", err)
	}
	if err := p.SetNickname("ピカ"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for characters outside the table, got %v", err)
	}
	if err := p.SetEV(database.StatSpecial, 65535); err != nil {
		t.Errorf("expected 16-bit EVs, got %v", err)
	}
	if err := p.SetEV(database.StatSpecialAttack, 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for Special Attack, got %v", err)
	}
	if err := p.SetIV(database.StatAttack, 16); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange for IV 16, got %v", err)
	}
	if err := p.SetCondition(ConditionBadPoison); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for Bad Poison, got %v", err)
	}
}

func TestMightyenaStats(t *testing.T) {
	p := mustMake(t, testFactory(t), "Mightyena", "Emerald", "", 50)
	if err := p.SetNature("Hardy"); err != nil {
		t.Fatal(err)
	}
	evs := map[database.Stat]int{
		database.StatHP: 30, database.StatAttack: 110, database.StatDefense: 32,
		database.StatSpeed: 48, database.StatSpecialAttack: 17, database.StatSpecialDefense: 83,
	}
	ivs := map[database.Stat]int{
		database.StatHP: 26, database.StatAttack: 28, database.StatDefense: 4,
		database.StatSpeed: 13, database.StatSpecialAttack: 25, database.StatSpecialDefense: 26,
	}
	for stat, v := range evs {
		if err := p.SetEV(stat, v); err != nil {
			t.Fatal(err)
		}
		if err := p.SetIV(stat, ivs[stat]); err != nil {
			t.Fatal(err)
		}
	}
	expected := map[database.Stat]int{
		database.StatHP: 146, database.StatAttack: 122, database.StatDefense: 81,
		database.StatSpeed: 87, database.StatSpecialAttack: 79, database.StatSpecialDefense: 88,
	}
	stats := p.Stats()
	for stat, want := range expected {
		if stats[stat] != want {
			t.Errorf("%s: expected %d, got %d", stat, want, stats[stat])
		}
	}

	if err := p.SetNature("Adamant"); err != nil {
		t.Fatal(err)
	}
	if a := p.Stats()[database.StatAttack]; a != 134 {
		t.Errorf("expected Adamant Attack 134, got %d", a)
	}
}

func TestFailedSetterLeavesRecordUnchanged(t *testing.T) {
	f := testFactory(t)
	for _, game := range allFamilies {
		p := mustMake(t, f, "Pikachu", game, "", 20)
		before := p.NativeData()
		_ = p.SetLevel(101)
		_ = p.SetNickname("")
		_ = p.SetMove("Splash Dance", 0)
		_ = p.SetEV(database.StatHP, -1)
		_ = p.SetHeldItem("Bicycle")
		_ = p.SetBall("Beast Ball")
		_ = p.SetGender(database.GenderGenderless)
		_ = p.SetRibbon("Best Ribbon", true)
		if !bytes.Equal(before, p.NativeData()) {
			t.Errorf("%s: expected failed setters to leave the record unchanged", game)
		}
	}
}

func TestCloneAndSameRecord(t *testing.T) {
	f := testFactory(t)
	for _, game := range allFamilies {
		p := mustMake(t, f, "Pikachu", game, "", 20)
		c := p.Clone()
		if !SameRecord(p, c) {
			t.Fatalf("%s: expected clone to match", game)
		}
		if err := c.SetNickname("CLONE"); err != nil {
			t.Fatal(err)
		}
		if SameRecord(p, c) {
			t.Errorf("%s: expected records to diverge", game)
		}
		if p.Nickname() == "CLONE" {
			t.Errorf("%s: expected original to keep its nickname", game)
		}
	}
	if SameRecord(mustMake(t, f, "Pikachu", "Red", "", 5), mustMake(t, f, "Pikachu", "Blue", "", 5)) {
		t.Errorf("expected records from different games to differ")
	}
}

func TestSetSpecies(t *testing.T) {
	p := mustMake(t, testFactory(t), "Pichu", "Diamond", "", 20)
	hp := p.Stats()[database.StatHP]
	if err := p.SetSpecies("Pikachu"); err != nil {
		t.Fatal(err)
	}
	if p.Species() != "Pikachu" {
		t.Errorf("expected Pikachu, got %s", p.Species())
	}
	if p.Stats()[database.StatHP] <= hp {
		t.Errorf("expected evolved stats to grow past %d", hp)
	}
	if err := p.SetSpecies("Agumon"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for an unknown species, got %v", err)
	}
}

// withGBPP rewrites the first PP byte of an encoded Game Boy record.
func withGBPP(t *testing.T, data []byte, generation int, pp uint8) []byte {
	t.Helper()
	if generation == 1 {
		d, err := native.DecodeGen1(data)
		if err != nil {
			t.Fatal(err)
		}
		d.PP[0] = pp
		return d.Encode()
	}
	d, err := native.DecodeGen2(data)
	if err != nil {
		t.Fatal(err)
	}
	d.PP[0] = pp
	return d.Encode()
}

func gbPP(t *testing.T, data []byte, generation int) uint8 {
	t.Helper()
	if generation == 1 {
		d, err := native.DecodeGen1(data)
		if err != nil {
			t.Fatal(err)
		}
		return d.PP[0]
	}
	d, err := native.DecodeGen2(data)
	if err != nil {
		t.Fatal(err)
	}
	return d.PP[0]
}

func TestGBPPWithThreePPUps(t *testing.T) {
	f := testFactory(t)
	for _, game := range []string{"Red", "Gold"} {
		t.Run(game, func(t *testing.T) {
			p := mustMake(t, f, "Pikachu", game, "", 20)
			if err := p.SetMove("Growl", 0); err != nil {
				t.Fatal(err)
			}
			data := withGBPP(t, p.NativeData(), p.Generation(), 0xC0|61)
			p, err := f.FromNative(data, game)
			if err != nil {
				t.Fatal(err)
			}

			slot := p.Moves()[0]
			if slot.Move != "Growl" || slot.PP != 61 || slot.MaxPP != 61 {
				t.Fatalf("expected Growl 61/61, got %+v", slot)
			}
			if err := p.SetMovePP(0, 64); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("expected ErrOutOfRange for PP 64, got %v", err)
			}
			if err := p.SetMovePP(0, 61); err != nil {
				t.Fatal(err)
			}
			if got := p.Moves()[0].PP; got != 61 {
				t.Errorf("expected PP 61, got %d", got)
			}
			if err := p.SetMovePP(0, 30); err != nil {
				t.Fatal(err)
			}
			if got := gbPP(t, p.NativeData(), p.Generation()); got != 0xC0|30 {
				t.Errorf("expected PP byte 0x%02X, got 0x%02X", 0xC0|30, got)
			}
		})
	}
}

func TestRibbon(t *testing.T) {
	f := testFactory(t)
	x := mustMake(t, f, "Pikachu", "X", "", 20)
	if err := x.SetRibbon("Kalos Champion", true); err != nil {
		t.Fatal(err)
	}
	colosseum := mustMake(t, f, "Pikachu", "Colosseum", "", 20)
	if err := colosseum.SetRibbon("Cool Super", true); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name   string
		p      Pokemon
		ribbon string
		want   bool
		err    error
	}{
		{"kalos ribbon in X", x, "Kalos Champion", true, nil},
		{"unset ribbon in X", x, "Sinnoh Champion", false, nil},
		{"ranked ribbon", colosseum, "Cool Super", true, nil},
		{"lower rank", colosseum, "Cool", true, nil},
		{"higher rank", colosseum, "Cool Hyper", false, nil},
		{"kalos ribbon in Emerald", mustMake(t, f, "Pikachu", "Emerald", "", 20), "Kalos Champion", false, ErrInvalidArgument},
		{"sinnoh ribbon in XD", mustMake(t, f, "Pikachu", "XD", "", 20), "Sinnoh Champion", false, ErrInvalidArgument},
		{"kalos ribbon in Diamond", mustMake(t, f, "Pikachu", "Diamond", "", 20), "Kalos Champion", false, ErrInvalidArgument},
		{"unknown ribbon", x, "Not A Ribbon", false, ErrInvalidArgument},
		{"gen1", mustMake(t, f, "Pikachu", "Red", "", 20), "Champion", false, ErrFeatureNotInGame},
		{"gen2", mustMake(t, f, "Pikachu", "Gold", "", 20), "Champion", false, ErrFeatureNotInGame},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.p.Ribbon(tc.ribbon)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected %v, got %v", tc.err, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("expected %t, got %t", tc.want, got)
			}
		})
	}
}

func TestDateMet(t *testing.T) {
	f := testFactory(t)
	met := time.Date(2016, time.May, 4, 0, 0, 0, 0, time.UTC)
	hatched := time.Date(2013, time.October, 12, 0, 0, 0, 0, time.UTC)

	for _, game := range []string{"Red", "Gold", "Emerald", "XD"} {
		p := mustMake(t, f, "Pikachu", game, "", 20)
		if _, err := p.DateMet(false); !errors.Is(err, ErrFeatureNotInGame) {
			t.Errorf("%s: expected ErrFeatureNotInGame, got %v", game, err)
		}
		if err := p.SetDateMet(met, false); !errors.Is(err, ErrFeatureNotInGame) {
			t.Errorf("%s: expected ErrFeatureNotInGame, got %v", game, err)
		}
	}

	for _, game := range []string{"Diamond", "Black", "X"} {
		t.Run(game, func(t *testing.T) {
			p := mustMake(t, f, "Pikachu", game, "", 20)
			if err := p.SetDateMet(met, false); err != nil {
				t.Fatal(err)
			}
			if err := p.SetDateMet(hatched, true); err != nil {
				t.Fatal(err)
			}
			if got := must(p.DateMet(false)); !got.Equal(met) {
				t.Errorf("expected %v, got %v", met, got)
			}
			if got := must(p.DateMet(true)); !got.Equal(hatched) {
				t.Errorf("expected egg date %v, got %v", hatched, got)
			}

			loaded, err := f.FromNative(p.NativeData(), game)
			if err != nil {
				t.Fatal(err)
			}
			if got := must(loaded.DateMet(false)); !got.Equal(met) {
				t.Errorf("expected %v after reload, got %v", met, got)
			}
			if s := Summarize(loaded); !s.DateMet.Valid || !s.DateMet.Time.Equal(met) {
				t.Errorf("expected summary date %v, got %+v", met, s.DateMet)
			}

			before := p.NativeData()
			early := time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC)
			if err := p.SetDateMet(early, false); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("expected ErrOutOfRange, got %v", err)
			}
			if !bytes.Equal(before, p.NativeData()) {
				t.Error("expected a rejected date to leave the record unchanged")
			}

			if err := p.SetDateMet(time.Time{}, true); err != nil {
				t.Fatal(err)
			}
			if got := must(p.DateMet(true)); !got.IsZero() {
				t.Errorf("expected a cleared egg date, got %v", got)
			}
			if s := Summarize(p); s.EggDateMet.Valid {
				t.Errorf("expected a null egg date, got %v", s.EggDateMet)
			}
		})
	}

	diamond := mustMake(t, f, "Pikachu", "Diamond", "", 20)
	if err := diamond.SetDateMet(met, false); err != nil {
		t.Fatal(err)
	}
	x, err := diamond.ToGame("X")
	if err != nil {
		t.Fatal(err)
	}
	if got := must(x.DateMet(false)); !got.Equal(met) {
		t.Errorf("expected conversion to keep %v, got %v", met, got)
	}
}

func TestSuperTrainingMedals(t *testing.T) {
	f := testFactory(t)
	for _, game := range []string{"Red", "Emerald", "Colosseum", "Diamond", "Black"} {
		p := mustMake(t, f, "Pikachu", game, "", 20)
		if _, err := p.SuperTrainingMedals(); !errors.Is(err, ErrFeatureNotInGame) {
			t.Errorf("%s: expected ErrFeatureNotInGame, got %v", game, err)
		}
		if err := p.SetSuperTrainingMedal("HP Level 1", true); !errors.Is(err, ErrFeatureNotInGame) {
			t.Errorf("%s: expected ErrFeatureNotInGame, got %v", game, err)
		}
	}

	p := mustMake(t, f, "Pikachu", "X", "", 20)
	medals := must(p.SuperTrainingMedals())
	if len(medals) != 30 {
		t.Fatalf("expected 30 medals, got %d", len(medals))
	}
	for name, set := range medals {
		if set {
			t.Errorf("expected %s unset on a new record", name)
		}
	}

	if err := p.SetSuperTrainingMedal("The Battle for the Best!", true); err != nil {
		t.Fatal(err)
	}
	if err := p.SetSuperTrainingMedal("Sp. Atk Level 1", true); err != nil {
		t.Fatal(err)
	}
	if err := p.SetSuperTrainingMedal("Sp. Atk Level 1", false); err != nil {
		t.Fatal(err)
	}
	if err := p.SetSuperTrainingMedal("Gold Medal", true); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}

	medals = must(p.SuperTrainingMedals())
	if !medals["The Battle for the Best!"] || medals["Sp. Atk Level 1"] {
		t.Errorf("unexpected medals %v", medals)
	}
	d, err := native.DecodeNDS(p.NativeData())
	if err != nil {
		t.Fatal(err)
	}
	if d.SuperTraining != 1<<29 {
		t.Errorf("expected medal bits 0x%08X, got 0x%08X", uint32(1<<29), d.SuperTraining)
	}
	if s := Summarize(p); len(s.TrainingMedals) != 1 {
		t.Errorf("expected one medal in the summary, got %v", s.TrainingMedals)
	}
}
