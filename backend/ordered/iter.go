package ordered

import (
	"iter"

	"github.com/npillmayer/bimap/btree"
	"github.com/npillmayer/bimap/mem"
)

// IterOwned yields the drained entries of a map. It may be consumed from both
// ends; Next yields entries in ascending key order, NextBack in descending key
// order. Every entry is yielded exactly once. Once exhausted, both ends keep
// reporting exhaustion.
type IterOwned[K, V any] struct {
	leaves    [][]entry[K, V]
	fl, fi    int // front: leaf and item position of the next entry
	bl, bi    int // back: leaf and item position of the next entry
	remaining int
}

func newIterOwned[K, V any](tree *btree.Tree[entry[K, V], keySummary[K]]) *IterOwned[K, V] {
	it := &IterOwned[K, V]{remaining: tree.Len()}
	tree.ForEachLeaf(func(items []entry[K, V]) bool {
		it.leaves = append(it.leaves, items)
		return true
	})
	if len(it.leaves) > 0 {
		it.bl = len(it.leaves) - 1
		it.bi = len(it.leaves[it.bl]) - 1
	}
	return it
}

// Len returns the number of entries not yet yielded.
func (it *IterOwned[K, V]) Len() int {
	return it.remaining
}

// Next yields the entry with the least remaining key.
func (it *IterOwned[K, V]) Next() (mem.KeyRef[K], mem.ValueRef[V], bool) {
	if it.remaining == 0 {
		return mem.KeyRef[K]{}, mem.ValueRef[V]{}, false
	}
	if it.fi == len(it.leaves[it.fl]) {
		it.fl++
		it.fi = 0
	}
	e := it.leaves[it.fl][it.fi]
	it.fi++
	it.remaining--
	return e.key, e.value, true
}

// NextBack yields the entry with the greatest remaining key.
func (it *IterOwned[K, V]) NextBack() (mem.KeyRef[K], mem.ValueRef[V], bool) {
	if it.remaining == 0 {
		return mem.KeyRef[K]{}, mem.ValueRef[V]{}, false
	}
	if it.bi < 0 {
		it.bl--
		it.bi = len(it.leaves[it.bl]) - 1
	}
	e := it.leaves[it.bl][it.bi]
	it.bi--
	it.remaining--
	return e.key, e.value, true
}

// All drains the remaining entries in ascending key order.
func (it *IterOwned[K, V]) All() iter.Seq2[mem.KeyRef[K], mem.ValueRef[V]] {
	return func(yield func(mem.KeyRef[K], mem.ValueRef[V]) bool) {
		for {
			k, v, ok := it.Next()
			if !ok || !yield(k, v) {
				return
			}
		}
	}
}

// Backward drains the remaining entries in descending key order.
func (it *IterOwned[K, V]) Backward() iter.Seq2[mem.KeyRef[K], mem.ValueRef[V]] {
	return func(yield func(mem.KeyRef[K], mem.ValueRef[V]) bool) {
		for {
			k, v, ok := it.NextBack()
			if !ok || !yield(k, v) {
				return
			}
		}
	}
}
