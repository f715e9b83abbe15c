package ordered

import (
	"math/rand"
	"slices"
	"testing"
)

// How to run:
//   - go test ./backend/ordered -run TestMapRandomizedOrder -count=1
//   - go test ./backend/ordered -run '^$' -fuzz FuzzMapRandomizedOrder -fuzztime=10s

func runRandomizedOrder(t *testing.T, r *rand.Rand, steps int) {
	t.Helper()
	m, p := makeMap(t)
	present := make(map[int]bool)
	for step := 0; step < steps; step++ {
		k := r.Intn(400)
		if present[k] {
			kh, vh, ok := m.Remove(k)
			if !ok {
				t.Fatalf("step %d: key %d missing", step, k)
			}
			p.reunite(t, kh, vh)
			delete(present, k)
		} else {
			p.insert(m, k, label(k))
			present[k] = true
		}
		if err := m.tree.Check(); err != nil {
			t.Fatalf("step %d: invariants broken: %v", step, err)
		}
	}
	want := make([]int, 0, len(present))
	for k := range present {
		want = append(want, k)
	}
	slices.Sort(want)
	var have []int
	for kh := range m.All() {
		have = append(have, *kh.Get())
	}
	if !slices.Equal(want, have) {
		t.Fatalf("map order %v, model %v", have, want)
	}
	it := m.IntoIter()
	for i := len(want) - 1; i >= 0; i-- {
		kh, _, ok := it.NextBack()
		if !ok || *kh.Get() != want[i] {
			t.Fatalf("backward drain: expected %d, have %v", want[i], kh)
		}
	}
}

func TestMapRandomizedOrder(t *testing.T) {
	for seed := int64(1); seed <= 6; seed++ {
		runRandomizedOrder(t, rand.New(rand.NewSource(seed)), 1200)
	}
}

func FuzzMapRandomizedOrder(f *testing.F) {
	f.Add(int64(1), uint16(300))
	f.Add(int64(99), uint16(1500))
	f.Fuzz(func(t *testing.T, seed int64, steps uint16) {
		runRandomizedOrder(t, rand.New(rand.NewSource(seed)), int(steps%2000))
	})
}
