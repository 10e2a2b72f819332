package util

import "testing"

func TestTruncateUTF8(t *testing.T) {
	cases := []struct {
		in       string
		max      int
		expected string
		changed  bool
	}{
		{"Crabominable", 10, "Crabominab", true},
		{"Pikachu", 10, "Pikachu", false},
		{"ポリゴンツー", 4, "ポリゴン", true},
		{"Mew", 0, "", true},
	}
	for _, c := range cases {
		got, changed := TruncateUTF8(c.in, c.max)
		if got != c.expected || changed != c.changed {
			t.Errorf("TruncateUTF8(%q, %d): expected %q/%v, got %q/%v", c.in, c.max, c.expected, c.changed, got, changed)
		}
	}
}

func TestUpperName(t *testing.T) {
	if got := UpperName("Flabébé"); got != "FLABÉBÉ" {
		t.Errorf("expected FLABÉBÉ, got %s", got)
	}
	if got := UpperName("Mr. Mime"); got != "MR. MIME" {
		t.Errorf("expected MR. MIME, got %s", got)
	}
}
