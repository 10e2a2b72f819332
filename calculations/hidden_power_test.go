package calculations

import (
	"testing"

	"porygon/database"
)

func TestGBHiddenPower(t *testing.T) {
	hp := GBHiddenPower(GBIVs{Attack: 15, Defense: 15, Speed: 15, Special: 15})
	if hp.Type != "Dark" || hp.Power != 70 {
		t.Errorf("expected Dark 70, got %s %d", hp.Type, hp.Power)
	}
	hp = GBHiddenPower(GBIVs{})
	if hp.Type != "Fighting" || hp.Power != 31 {
		t.Errorf("expected Fighting 31, got %s %d", hp.Type, hp.Power)
	}
}

func TestModernHiddenPower(t *testing.T) {
	ivs := map[database.Stat]int{}
	for _, stat := range database.ModernStats {
		ivs[stat] = 31
	}
	hp, err := ModernHiddenPower(ivs, 4)
	if err != nil {
		t.Fatal(err)
	}
	if hp.Type != "Dark" || hp.Power != 70 {
		t.Errorf("expected Dark 70, got %s %d", hp.Type, hp.Power)
	}
	hp, _ = ModernHiddenPower(ivs, 6)
	if hp.Power != 60 {
		t.Errorf("expected generation 6 power 60, got %d", hp.Power)
	}

	delete(ivs, database.StatSpeed)
	if _, err := ModernHiddenPower(ivs, 4); err == nil {
		t.Errorf("expected an error for a missing IV")
	}
}
