package ordered

import (
	"testing"

	"github.com/npillmayer/bimap/mem"
)

// pairs keeps the sibling halves of entries inserted into a map, as the
// reverse map of a bidirectional map would.
type pairs[K comparable, V any] struct {
	keys   map[K]mem.KeyRef[K]
	values map[K]mem.ValueRef[V]
}

func newPairs[K comparable, V any]() *pairs[K, V] {
	return &pairs[K, V]{
		keys:   make(map[K]mem.KeyRef[K]),
		values: make(map[K]mem.ValueRef[V]),
	}
}

func (p *pairs[K, V]) insert(m *Map[K, V], k K, v V) {
	k1, k2 := mem.Share(k)
	v1, v2 := mem.Share(v)
	p.keys[k] = k2
	p.values[k] = v2
	m.Insert(k1, v1)
}

// reunite consumes the halves returned from m together with their siblings.
func (p *pairs[K, V]) reunite(t *testing.T, kh mem.KeyRef[K], vh mem.ValueRef[V]) (K, V) {
	t.Helper()
	k := *kh.Get()
	ksib, ok := p.keys[k]
	if !ok {
		t.Fatalf("no sibling key half for %v", k)
	}
	vsib := p.values[k]
	delete(p.keys, k)
	delete(p.values, k)
	return mem.Reunite(kh, ksib), mem.Reunite(vh, vsib)
}

func makeMap(t *testing.T, keys ...int) (*Map[int, string], *pairs[int, string]) {
	t.Helper()
	m := New[int, string]()
	p := newPairs[int, string]()
	for _, k := range keys {
		p.insert(m, k, label(k))
	}
	if m.Len() != len(keys) {
		t.Fatalf("expected %d entries, have %d", len(keys), m.Len())
	}
	return m, p
}

func label(k int) string {
	return string(rune('a' + k%26))
}

func checkTree[K, V any](t *testing.T, m *Map[K, V]) {
	t.Helper()
	if err := m.tree.Check(); err != nil {
		t.Fatalf("tree invariants violated: %v", err)
	}
}
