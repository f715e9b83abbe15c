package ordered

import (
	"github.com/npillmayer/bimap/mem"
)

// entry is the leaf item of the tree: a key half and a value half.
type entry[K, V any] struct {
	key   mem.KeyRef[K]
	value mem.ValueRef[V]
}

// keySummary remembers the last (i.e., greatest) key half of a subtree.
type keySummary[K any] struct {
	last mem.KeyRef[K]
	set  bool
}

func (e entry[K, V]) Summary() keySummary[K] {
	return keySummary[K]{last: e.key, set: true}
}

// keyMonoid aggregates key summaries: the right-most key wins.
type keyMonoid[K any] struct{}

func (keyMonoid[K]) Zero() keySummary[K] {
	return keySummary[K]{}
}

func (keyMonoid[K]) Add(left, right keySummary[K]) keySummary[K] {
	if right.set {
		return right
	}
	return left
}

// bound is the seek position of a probe: the greatest key seen so far,
// presented as the probe type. A nil key means no key has been seen.
type bound[Q any] struct {
	key *mem.Wrapped[Q]
}

// probeDimension seeks the first entry whose key is not less than a probe.
// Stored keys are projected to the probe type and both sides are compared in
// their wrapped form.
type probeDimension[K, Q any] struct {
	proj    func(*K) *Q
	compare func(a, b *mem.Wrapped[Q]) int
}

func (d probeDimension[K, Q]) Zero() bound[Q] {
	return bound[Q]{}
}

func (d probeDimension[K, Q]) Add(acc bound[Q], s keySummary[K]) bound[Q] {
	if !s.set {
		return acc
	}
	return bound[Q]{key: mem.Borrow(s.last, d.proj)}
}

func (d probeDimension[K, Q]) Compare(acc, target bound[Q]) int {
	if acc.key == nil {
		return -1
	}
	return d.compare(acc.key, target.key)
}
