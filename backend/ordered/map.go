package ordered

import (
	"cmp"
	"io"
	"iter"

	"github.com/npillmayer/bimap/backend"
	"github.com/npillmayer/bimap/btree"
	"github.com/npillmayer/bimap/mem"
)

// Map is an ordered backend map from key halves to value halves.
//
// The zero Map is not usable; create maps with New, NewFunc or BTreeKind.
type Map[K, V any] struct {
	tree    *btree.Tree[entry[K, V], keySummary[K]]
	compare func(a, b K) int
	keys    *Probe[K, V, K]
}

var _ backend.Map[int, string] = (*Map[int, string])(nil)
var _ backend.Container[string] = (*Probe[int, int, string])(nil)
var _ backend.Getter[int, string] = (*Probe[int, int, string])(nil)
var _ backend.Remover[int, int, string] = (*Probe[int, int, string])(nil)

// New creates an empty map ordered by the natural order of K.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc creates an empty map ordered by compare, which has to define a
// strict weak order on K.
func NewFunc[K, V any](compare func(a, b K) int) *Map[K, V] {
	m := &Map[K, V]{
		tree:    newTree[K, V](),
		compare: compare,
	}
	m.keys = ProbeBy[K, V, K](m, mem.Identity[K], compare)
	return m
}

func newTree[K, V any]() *btree.Tree[entry[K, V], keySummary[K]] {
	tree, err := btree.New[entry[K, V]](btree.Config[keySummary[K]]{
		Monoid: keyMonoid[K]{},
	})
	assert(err == nil, "ordered: cannot create tree")
	return tree
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.keys.Contains(key)
}

// Get returns the value half stored for key. The half remains owned by the
// map and must not be reunited.
func (m *Map[K, V]) Get(key K) (mem.ValueRef[V], bool) {
	return m.keys.Get(key)
}

// Remove removes the entry for key and returns its halves.
func (m *Map[K, V]) Remove(key K) (mem.KeyRef[K], mem.ValueRef[V], bool) {
	return m.keys.Remove(key)
}

// Insert stores an entry, taking ownership of both halves.
//
// If an equal key is already present, the stored key half is kept and its value
// half is overwritten. The displaced value half is lost for reunification; use
// Replace when halves must be accounted for.
func (m *Map[K, V]) Insert(key mem.KeyRef[K], value mem.ValueRef[V]) {
	idx, found := m.keys.locate(key.Get())
	if !found {
		m.insertAt(idx, entry[K, V]{key: key, value: value})
		return
	}
	stored, err := m.tree.At(idx)
	assert(err == nil, "ordered: located entry is out of bounds")
	tracer().Infof("ordered: insert over existing key %v drops a value half", key)
	m.replaceAt(idx, entry[K, V]{key: stored.key, value: value})
}

// Replace stores an entry, taking ownership of both halves. If an equal key is
// already present, its entry is displaced and its halves are returned.
func (m *Map[K, V]) Replace(key mem.KeyRef[K], value mem.ValueRef[V]) (mem.KeyRef[K], mem.ValueRef[V], bool) {
	idx, found := m.keys.locate(key.Get())
	if !found {
		m.insertAt(idx, entry[K, V]{key: key, value: value})
		return mem.KeyRef[K]{}, mem.ValueRef[V]{}, false
	}
	displaced := m.replaceAt(idx, entry[K, V]{key: key, value: value})
	return displaced.key, displaced.value, true
}

func (m *Map[K, V]) insertAt(idx int, e entry[K, V]) {
	tree, err := m.tree.InsertAt(idx, e)
	assert(err == nil, "ordered: insert position out of bounds")
	m.tree = tree
}

func (m *Map[K, V]) replaceAt(idx int, e entry[K, V]) entry[K, V] {
	tree, displaced, err := m.tree.ReplaceAt(idx, e)
	assert(err == nil, "ordered: replace position out of bounds")
	m.tree = tree
	return displaced
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

// Min returns the entry with the least key.
func (m *Map[K, V]) Min() (mem.KeyRef[K], mem.ValueRef[V], bool) {
	return m.at(0)
}

// Max returns the entry with the greatest key.
func (m *Map[K, V]) Max() (mem.KeyRef[K], mem.ValueRef[V], bool) {
	return m.at(m.Len() - 1)
}

func (m *Map[K, V]) at(idx int) (mem.KeyRef[K], mem.ValueRef[V], bool) {
	e, err := m.tree.At(idx)
	if err != nil {
		return mem.KeyRef[K]{}, mem.ValueRef[V]{}, false
	}
	return e.key, e.value, true
}

// All iterates over the entries in key order without removing them. The halves
// remain owned by the map.
func (m *Map[K, V]) All() iter.Seq2[mem.KeyRef[K], mem.ValueRef[V]] {
	tree := m.tree
	return func(yield func(mem.KeyRef[K], mem.ValueRef[V]) bool) {
		tree.ForEachItem(func(e entry[K, V]) bool {
			return yield(e.key, e.value)
		})
	}
}

// IntoIter drains all entries of m into an owned iterator. m is empty
// afterwards and may be reused.
func (m *Map[K, V]) IntoIter() *IterOwned[K, V] {
	it := newIterOwned(m.tree)
	m.tree = newTree[K, V]()
	return it
}

// WriteDot writes the tree structure of m in Graphviz DOT format.
func (m *Map[K, V]) WriteDot(w io.Writer) error {
	return m.tree.WriteDot(w, func(e entry[K, V]) string {
		return e.key.String()
	})
}

// BTreeKind selects the ordered backend for key types with a natural order.
type BTreeKind[K cmp.Ordered, V any] struct{}

var _ backend.Kind[int, string, *Map[int, string]] = BTreeKind[int, string]{}

// NewMap creates an empty ordered map.
func (BTreeKind[K, V]) NewMap() *Map[K, V] {
	return New[K, V]()
}
