package calculations

import "testing"

func TestGBUnownForm(t *testing.T) {
	iv := GBIVs{Attack: 10, Defense: 9, Speed: 1, Special: 14}
	if got := GBUnownForm(iv); got != "G" {
		t.Errorf("expected G, got %s", got)
	}
	if got := GBUnownForm(GBIVs{}); got != "A" {
		t.Errorf("expected A, got %s", got)
	}
	if got := GBUnownForm(GBIVs{Attack: 15, Defense: 15, Speed: 15, Special: 15}); got != "Z" {
		t.Errorf("expected Z, got %s", got)
	}
}

func TestGBShinyUnownLetters(t *testing.T) {
	seen := map[string]bool{}
	for atk := 0; atk < 16; atk++ {
		iv := GBIVs{Attack: atk, Defense: 10, Speed: 10, Special: 10}
		if GBShiny(iv) {
			seen[GBUnownForm(iv)] = true
		}
	}
	if len(seen) != 2 || !seen["I"] || !seen["V"] {
		t.Errorf("expected shiny unown to be I or V, got %v", seen)
	}
}

func TestModernUnownForm(t *testing.T) {
	cases := []struct {
		pid      uint32
		expected string
	}{
		{0, "A"},
		{0x00000001, "B"},
		{0x00000101, "F"},
		{0x00010202, "?"},
		{0x00010203, "!"},
		{0x00010300, "A"},
	}
	for _, c := range cases {
		if got := ModernUnownForm(c.pid); got != c.expected {
			t.Errorf("pid %#08x: expected %s, got %s", c.pid, c.expected, got)
		}
	}
}
