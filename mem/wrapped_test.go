package mem

import (
	"hash/maphash"
	"strings"
	"testing"
)

func TestWrapDoesNotCopy(t *testing.T) {
	x := 17
	w := Wrap(&x)
	if w.Unwrap() != &x {
		t.Fatalf("expected Wrap to reinterpret the same memory")
	}
	x = 18
	if w.Value() != 18 {
		t.Fatalf("expected wrapped value to follow the original, got %d", w.Value())
	}
}

func TestWrappedComparisonDelegates(t *testing.T) {
	words := []string{"", "a", "ab", "b", "ba"}
	cmpFold := CompareWrapped(func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	for _, a := range words {
		for _, b := range words {
			want := strings.Compare(a, b)
			if got := Compare(Wrap(&a), Wrap(&b)); got != want {
				t.Fatalf("Compare(%q, %q) = %d, want %d", a, b, got, want)
			}
			if got := cmpFold(Wrap(&a), Wrap(&b)); got != want {
				t.Fatalf("CompareWrapped(%q, %q) = %d, want %d", a, b, got, want)
			}
			if Equal(Wrap(&a), Wrap(&b)) != (a == b) {
				t.Fatalf("Equal(%q, %q) disagrees with ==", a, b)
			}
		}
	}
}

func TestWrappedHashDelegates(t *testing.T) {
	seed := maphash.MakeSeed()
	for _, s := range []string{"", "x", "hello world"} {
		if Hash(seed, Wrap(&s)) != maphash.Comparable(seed, s) {
			t.Fatalf("hash of wrapped %q differs from hash of value", s)
		}
	}
}
