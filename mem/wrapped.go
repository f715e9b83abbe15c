package mem

import (
	"cmp"
	"hash/maphash"
	"unsafe"
)

// Wrapped is a transparent wrapper around a value of type T. It has exactly the
// memory layout of T and exists only as a distinct type for generic dispatch.
// Comparing, ordering and hashing a Wrapped value is the same as doing so for
// the inner value.
type Wrapped[T any] struct {
	v T
}

// Wrap reinterprets p as a pointer to Wrapped[T]. It neither allocates nor
// copies.
func Wrap[T any](p *T) *Wrapped[T] {
	return (*Wrapped[T])(unsafe.Pointer(p))
}

// Unwrap returns a pointer to the inner value.
func (w *Wrapped[T]) Unwrap() *T {
	return &w.v
}

// Value returns a copy of the inner value.
func (w *Wrapped[T]) Value() T {
	return w.v
}

// CompareWrapped lifts a comparison function for T to wrapped values.
func CompareWrapped[T any](compare func(a, b T) int) func(a, b *Wrapped[T]) int {
	return func(a, b *Wrapped[T]) int {
		return compare(a.v, b.v)
	}
}

// Compare orders two wrapped values of an ordered type by their natural order.
func Compare[T cmp.Ordered](a, b *Wrapped[T]) int {
	return cmp.Compare(a.v, b.v)
}

// Equal reports whether two wrapped values hold equal inner values.
func Equal[T comparable](a, b *Wrapped[T]) bool {
	return a.v == b.v
}

// Hash hashes a wrapped value. The result is identical to hashing the inner
// value with the same seed.
func Hash[T comparable](seed maphash.Seed, w *Wrapped[T]) uint64 {
	return maphash.Comparable(seed, w.v)
}
