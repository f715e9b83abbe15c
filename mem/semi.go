package mem

import (
	"fmt"
)

// cell is the single heap slot shared by both halves of a pair.
type cell[T any] struct {
	value    T
	consumed bool
}

// Semi is one half of a shared value. Halves are created in pairs by Share and
// are read through Get. Both halves of a pair refer to the same cell; identity
// of a pair is the identity of its cell, not equality of the values.
//
// A Semi is a small handle and may be copied, but every copy refers to the same
// cell. Callers must make sure that exactly one copy of each half is eventually
// handed to Reunite.
type Semi[T any] struct {
	c *cell[T]
}

// KeyRef is a half wrapping a map key.
type KeyRef[K any] = Semi[K]

// ValueRef is a half wrapping a map value.
type ValueRef[V any] = Semi[V]

// Share moves value into a single shared cell and returns two halves
// referencing it. The value is stored exactly once.
func Share[T any](value T) (Semi[T], Semi[T]) {
	c := &cell[T]{value: value}
	shared.Inc()
	return Semi[T]{c: c}, Semi[T]{c: c}
}

// Reunite recombines the two halves of a pair and returns the shared value.
// This is the only operation which releases the shared cell.
//
// If a and b do not stem from the same call to Share, Reunite panics with a
// *PairingError wrapping ErrMismatchedHalves, even if both halves hold equal
// values. Reuniting a pair twice panics with ErrConsumed.
func Reunite[T any](a, b Semi[T]) T {
	if a.c == nil || b.c == nil {
		pairingViolation("reunite", ErrDetached)
	}
	if a.c != b.c {
		pairingViolation("reunite", ErrMismatchedHalves)
	}
	if a.c.consumed {
		pairingViolation("reunite", ErrConsumed)
	}
	value := a.c.value
	var zero T
	a.c.value = zero
	a.c.consumed = true
	reunited.Inc()
	return value
}

// SameAllocation reports whether a and b are halves of the same pair.
func SameAllocation[T any](a, b Semi[T]) bool {
	return a.c != nil && a.c == b.c
}

// IsZero reports whether s is the zero half, i.e. was not created by Share.
func (s Semi[T]) IsZero() bool {
	return s.c == nil
}

// Get returns a pointer to the shared value. The value must be treated as
// immutable for as long as the pair is split.
//
// Get panics with a *PairingError if the pair has already been reunited or if s
// is a zero half.
func (s Semi[T]) Get() *T {
	if s.c == nil {
		pairingViolation("get", ErrDetached)
	}
	if s.c.consumed {
		pairingViolation("get", ErrConsumed)
	}
	return &s.c.value
}

// String formats the shared value.
func (s Semi[T]) String() string {
	if s.c == nil {
		return "<detached>"
	}
	if s.c.consumed {
		return "<reunited>"
	}
	return fmt.Sprint(s.c.value)
}

// Borrow presents a key half as probe type Q, using the key's own projection,
// and wraps the result. No new half is created. The projection has to be
// consistent with the ordering of K, otherwise lookups with Q return wrong
// results; Borrow cannot detect this.
func Borrow[K, Q any](s Semi[K], proj func(*K) *Q) *Wrapped[Q] {
	return Wrap(proj(s.Get()))
}

// Identity is the trivial projection of a type onto itself.
func Identity[T any](p *T) *T {
	return p
}
