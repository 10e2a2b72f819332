package intstripedmutex

import (
	"sync"
	"testing"
)

func TestSameKeySameLock(t *testing.T) {
	m := New[int](7)
	if m.GetLock(3) != m.GetLock(3) {
		t.Fatalf("expected equal keys to share a lock")
	}
	if m.GetLock(3) != m.GetLock(10) {
		t.Fatalf("expected keys 3 and 10 to collide on 7 stripes")
	}
	if m.GetLock(3) == m.GetLock(4) {
		t.Fatalf("expected keys 3 and 4 to use different stripes")
	}
}

func TestZeroStripes(t *testing.T) {
	m := New[uint16](0)
	m.Lock(12)
	m.Unlock(12)
}

func TestCounterUnderContention(t *testing.T) {
	m := New[int](4)
	counts := make(map[int]int)
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// a single key so the map is always guarded by one stripe
			m.Lock(1)
			counts[1]++
			m.Unlock(1)
		}(i)
	}
	wg.Wait()
	if counts[1] != 64 {
		t.Fatalf("expected 64, got %d", counts[1])
	}
}
