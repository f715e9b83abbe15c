package ordered

import (
	"github.com/npillmayer/bimap/btree"
	"github.com/npillmayer/bimap/mem"
)

// Probe is a view on a map which accepts probes of type Q instead of keys.
// Stored keys are presented as Q through a projection, which has to be
// consistent with the order of the map: for keys a and b, comparing the
// projections of a and b must yield the same result as comparing a and b.
// Otherwise lookups through the probe may return wrong results.
//
// A Probe follows updates of its map.
type Probe[K, V, Q any] struct {
	m   *Map[K, V]
	dim probeDimension[K, Q]
}

// ProbeBy creates a probe view on m. proj presents a stored key as Q, compare
// orders values of Q.
func ProbeBy[K, V, Q any](m *Map[K, V], proj func(*K) *Q, compare func(a, b Q) int) *Probe[K, V, Q] {
	return &Probe[K, V, Q]{
		m: m,
		dim: probeDimension[K, Q]{
			proj:    proj,
			compare: mem.CompareWrapped(compare),
		},
	}
}

// locate finds the position of the first entry not less than probe, and
// whether that entry matches probe.
func (p *Probe[K, V, Q]) locate(probe *Q) (int, bool) {
	tree := p.m.tree
	if tree.IsEmpty() {
		return 0, false
	}
	cursor, err := btree.NewCursor[entry[K, V], keySummary[K], bound[Q]](tree, p.dim)
	assert(err == nil, "ordered: cannot create key cursor")
	target := bound[Q]{key: mem.Wrap(probe)}
	idx, reached, err := cursor.Seek(target)
	assert(err == nil, "ordered: key seek failed")
	if idx >= tree.Len() {
		return idx, false
	}
	return idx, p.dim.Compare(reached, target) == 0
}

// Contains reports whether an entry matching probe is present.
func (p *Probe[K, V, Q]) Contains(probe Q) bool {
	_, found := p.locate(&probe)
	return found
}

// Get returns the value half stored for probe. The half remains owned by the
// map.
func (p *Probe[K, V, Q]) Get(probe Q) (mem.ValueRef[V], bool) {
	idx, found := p.locate(&probe)
	if !found {
		return mem.ValueRef[V]{}, false
	}
	e, err := p.m.tree.At(idx)
	assert(err == nil, "ordered: located entry is out of bounds")
	return e.value, true
}

// Remove removes the entry matching probe and returns its halves. If no entry
// matches, the map is unchanged.
func (p *Probe[K, V, Q]) Remove(probe Q) (mem.KeyRef[K], mem.ValueRef[V], bool) {
	idx, found := p.locate(&probe)
	if !found {
		return mem.KeyRef[K]{}, mem.ValueRef[V]{}, false
	}
	tree, removed, err := p.m.tree.DeleteAt(idx)
	assert(err == nil, "ordered: located entry is out of bounds")
	p.m.tree = tree
	return removed.key, removed.value, true
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
