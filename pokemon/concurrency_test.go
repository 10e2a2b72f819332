package pokemon

import (
	"sync"
	"testing"

	"porygon/database"
)

// consistentForm checks that the letter a record reports is the one its
// stored data derives.
func consistentForm(t *testing.T, f *Factory, p Pokemon) {
	t.Helper()
	decoded, err := f.FromNative(p.NativeData(), p.Game())
	if err != nil {
		t.Errorf("decode %s: %v", p.Game(), err)
		return
	}
	if decoded.Form() != p.Form() {
		t.Errorf("expected stored data to derive %s, got %s", p.Form(), decoded.Form())
	}
}

func TestConcurrentCallsOnOneRecord(t *testing.T) {
	f := testFactory(t)
	letters := []string{"B", "I", "Q", "A"}

	for _, game := range []string{"Gold", "Emerald", "XD", "Platinum", "X"} {
		t.Run(game, func(t *testing.T) {
			p := mustMake(t, f, "Unown", game, "A", 30)
			target := "Platinum"
			if game == target {
				target = "X"
			}

			var wg sync.WaitGroup
			for worker := range 8 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := range 28 {
						// Rejected calls are expected, a shiny gen 2 Unown
						// cannot take every letter.
						switch (worker + i) % 7 {
						case 0:
							_ = p.SetForm(letters[i%len(letters)])
						case 1:
							_ = p.SetShininess(i%2 == 0)
						case 2:
							_ = p.SetIV(database.StatAttack, i%16)
						case 3:
							_ = p.SetLevel(20 + i)
						case 4:
							if s := Summarize(p); s.Species != "Unown" {
								t.Errorf("expected Unown, got %s", s.Species)
							}
						case 5:
							consistentForm(t, f, p.Clone())
						case 6:
							if _, err := p.ToGame(target); err != nil {
								t.Errorf("convert to %s: %v", target, err)
							}
						}
					}
				}()
			}
			wg.Wait()

			consistentForm(t, f, p)
			if level := p.Level(); level < 20 || level > 47 {
				t.Errorf("expected a level set by one of the calls, got %d", level)
			}
			if clone := p.Clone(); !SameRecord(p, clone) {
				t.Error("expected a clone of the settled record to match it")
			}
		})
	}
}
