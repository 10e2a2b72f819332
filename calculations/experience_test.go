package calculations

import "testing"

var growthRates = []string{"erratic", "fast", "medium-fast", "medium-slow", "slow", "fluctuating"}

func TestExperienceLevelInvertible(t *testing.T) {
	for _, growth := range growthRates {
		t.Run(growth, func(t *testing.T) {
			prev := -1
			for level := 1; level <= MaxLevel; level++ {
				exp, err := ExperienceAtLevel(growth, level)
				if err != nil {
					t.Fatal(err)
				}
				if exp <= prev {
					t.Fatalf("level %d: experience %d not above %d", level, exp, prev)
				}
				prev = exp

				if level < 2 {
					continue
				}
				got, err := LevelAtExperience(growth, exp)
				if err != nil {
					t.Fatal(err)
				}
				if got != level {
					t.Errorf("expected level %d at %d experience, got %d", level, exp, got)
				}
				if below, _ := LevelAtExperience(growth, exp-1); below != level-1 {
					t.Errorf("expected level %d just below, got %d", level-1, below)
				}
			}
		})
	}
}

func TestExperienceAtLevel100(t *testing.T) {
	expected := map[string]int{
		"erratic":     600000,
		"fast":        800000,
		"medium-fast": 1000000,
		"medium-slow": 1059860,
		"slow":        1250000,
		"fluctuating": 1640000,
	}
	for growth, want := range expected {
		got, err := ExperienceAtLevel(growth, 100)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("%s: expected %d, got %d", growth, want, got)
		}
		if level, _ := LevelAtExperience(growth, want*2); level != 100 {
			t.Errorf("%s: expected level cap 100, got %d", growth, level)
		}
	}
	if _, err := ExperienceAtLevel("glacial", 10); err == nil {
		t.Errorf("expected an error for an unknown growth rate")
	}
	if _, err := LevelAtExperience("fast", -1); err == nil {
		t.Errorf("expected an error for negative experience")
	}
}
