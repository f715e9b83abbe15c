package btree

import "testing"

// num is a test item summarized by its sum and its maximum.
type num int

type numSummary struct {
	Sum int
	Max int
	Set bool
}

func (n num) Summary() numSummary {
	return numSummary{Sum: int(n), Max: int(n), Set: true}
}

type numMonoid struct{}

func (numMonoid) Zero() numSummary { return numSummary{} }

func (numMonoid) Add(left, right numSummary) numSummary {
	if !left.Set {
		return right
	}
	if !right.Set {
		return left
	}
	out := numSummary{Sum: left.Sum + right.Sum, Max: left.Max, Set: true}
	if right.Max > out.Max {
		out.Max = right.Max
	}
	return out
}

// sumDimension seeks by running sum.
type sumDimension struct{}

func (sumDimension) Zero() int { return 0 }

func (sumDimension) Add(acc int, s numSummary) int { return acc + s.Sum }

func (sumDimension) Compare(acc, target int) int {
	switch {
	case acc < target:
		return -1
	case acc > target:
		return 1
	default:
		return 0
	}
}

func makeNumTree(t *testing.T) *Tree[num, numSummary] {
	t.Helper()
	tree, err := New[num](Config[numSummary]{Monoid: numMonoid{}})
	if err != nil {
		t.Fatalf("failed to create tree: %v", err)
	}
	return tree
}

func nums(values ...int) []num {
	out := make([]num, 0, len(values))
	for _, v := range values {
		out = append(out, num(v))
	}
	return out
}

func collect(tree *Tree[num, numSummary]) []int {
	var out []int
	for item := range tree.All() {
		out = append(out, int(item))
	}
	return out
}

func assertItems(t *testing.T, tree *Tree[num, numSummary], want []int) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invariants broken: %v", err)
	}
	got := collect(tree)
	if len(got) != len(want) {
		t.Fatalf("item count mismatch: got %d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item mismatch at %d: got %d want %d", i, got[i], want[i])
		}
	}
	if tree.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", tree.Len(), len(want))
	}
}
