package btree

import "testing"

func TestCloneLeafCreatesIndependentSlice(t *testing.T) {
	tree := makeNumTree(t)
	leaf := tree.makeLeaf(nums(1, 2, 3))
	cloned := tree.cloneLeaf(leaf)
	if cloned == leaf {
		t.Fatalf("cloneLeaf returned same pointer")
	}
	cloned.items[1] = num(20)
	tree.recomputeLeafSummary(cloned)
	if leaf.items[1] != 2 {
		t.Fatalf("original leaf changed after clone mutation")
	}
	if leaf.summary.Sum != 6 || cloned.summary.Sum != 24 {
		t.Fatalf("unexpected summaries: original=%+v clone=%+v", leaf.summary, cloned.summary)
	}
}

func TestRecomputeInnerSummaryAndCount(t *testing.T) {
	tree := makeNumTree(t)
	l1 := tree.makeLeaf(nums(1, 2))
	l2 := tree.makeLeaf(nums(3))
	inner := tree.makeInternal(l1, l2)
	if inner.summary.Sum != 6 || inner.summary.Max != 3 || inner.count != 3 {
		t.Fatalf("unexpected initial inner state: %+v count=%d", inner.summary, inner.count)
	}
	l2.items = append(l2.items, num(10))
	tree.recomputeLeafSummary(l2)
	tree.recomputeInnerSummary(inner)
	if inner.summary.Sum != 16 || inner.summary.Max != 10 || inner.count != 4 {
		t.Fatalf("unexpected recomputed inner state: %+v count=%d", inner.summary, inner.count)
	}
}

func TestInsertRemoveSliceHelpers(t *testing.T) {
	base := []int{1, 2, 3, 4}
	ins := insertAt(base, 2, 8, 9)
	wantIns := []int{1, 2, 8, 9, 3, 4}
	for i := range wantIns {
		if ins[i] != wantIns[i] {
			t.Fatalf("insertAt mismatch at %d: got %v want %v", i, ins, wantIns)
		}
	}
	rem := removeRange(ins, 1, 4)
	wantRem := []int{1, 3, 4}
	for i := range wantRem {
		if rem[i] != wantRem[i] {
			t.Fatalf("removeRange mismatch at %d: got %v want %v", i, rem, wantRem)
		}
	}
	if base[2] != 3 {
		t.Fatalf("slice helpers must not modify their input")
	}
}

func TestInsertRemoveChildHelpers(t *testing.T) {
	tree := makeNumTree(t)
	inner := tree.makeInternal(tree.makeLeaf(nums(1)), tree.makeLeaf(nums(2)))
	tree.insertChildAt(inner, 1, tree.makeLeaf(nums(5, 5)))
	if len(inner.children) != 3 || inner.count != 4 || inner.summary.Sum != 13 {
		t.Fatalf("unexpected state after insertChildAt: children=%d count=%d sum=%d",
			len(inner.children), inner.count, inner.summary.Sum)
	}
	tree.removeChildAt(inner, 0)
	if len(inner.children) != 2 || inner.count != 3 || inner.summary.Sum != 12 {
		t.Fatalf("unexpected state after removeChildAt: children=%d count=%d sum=%d",
			len(inner.children), inner.count, inner.summary.Sum)
	}
}

func TestSplitLeafBalancesHalves(t *testing.T) {
	tree := makeNumTree(t)
	items := make([]int, MaxLeafItems+1)
	for i := range items {
		items[i] = i
	}
	leaf := &leafNode[num, numSummary]{items: nums(items...)}
	left, right, err := tree.splitLeaf(leaf)
	if err != nil {
		t.Fatalf("splitLeaf failed: %v", err)
	}
	if right == nil {
		t.Fatalf("expected a promoted right sibling")
	}
	if len(left.items)+len(right.items) != MaxLeafItems+1 {
		t.Fatalf("split lost items: %d + %d", len(left.items), len(right.items))
	}
	if left.items[len(left.items)-1] >= right.items[0] {
		t.Fatalf("split does not preserve order")
	}
}
