package btree

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New[num](Config[numSummary]{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestCheckEmptyTree(t *testing.T) {
	tree := makeNumTree(t)
	if err := tree.Check(); err != nil {
		t.Fatalf("expected empty tree to be valid, got %v", err)
	}
	if tree.Len() != 0 || tree.Height() != 0 || !tree.IsEmpty() {
		t.Fatalf("unexpected empty tree state len=%d height=%d", tree.Len(), tree.Height())
	}
	if s := tree.Summary(); s.Set {
		t.Fatalf("expected zero summary for empty tree, got %+v", s)
	}
}

func TestCheckDetectsCountDrift(t *testing.T) {
	tree := makeNumTree(t)
	l1 := tree.makeLeaf(nums(1, 2, 3, 4, 5, 6))
	l2 := tree.makeLeaf(nums(7, 8, 9, 10, 11, 12))
	inner := tree.makeInternal(l1, l2)
	tree.root = inner
	tree.height = 2
	if err := tree.Check(); err != nil {
		t.Fatalf("expected tree to validate, got %v", err)
	}
	inner.count = 3 // corrupt cached count on purpose
	err := tree.Check()
	if err == nil || !strings.Contains(err.Error(), "cached item count") {
		t.Fatalf("expected cached count error, got %v", err)
	}
}

func TestInsertAtGrowsTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bimap")
	defer teardown()
	//
	tree := makeNumTree(t)
	var want []int
	var err error
	for i := 0; i < 200; i++ {
		tree, err = tree.InsertAt(tree.Len(), num(i))
		if err != nil {
			t.Fatalf("insert %d failed: %v", i, err)
		}
		want = append(want, i)
	}
	assertItems(t, tree, want)
	if tree.Height() < 3 {
		t.Fatalf("expected 200 items to need at least 3 levels, height=%d", tree.Height())
	}
	if s := tree.Summary(); s.Sum != 199*200/2 || s.Max != 199 {
		t.Fatalf("unexpected root summary %+v", s)
	}
}

func TestInsertAtIsPersistent(t *testing.T) {
	tree := makeNumTree(t)
	base, err := tree.InsertAt(0, nums(1, 2, 3)...)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	next, err := base.InsertAt(1, num(9))
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	assertItems(t, base, []int{1, 2, 3})
	assertItems(t, next, []int{1, 9, 2, 3})
	assertItems(t, tree, nil)
}

func TestInsertAtRejectsBadIndex(t *testing.T) {
	tree := makeNumTree(t)
	if _, err := tree.InsertAt(1, num(1)); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, _, err := tree.DeleteAt(0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, _, err := tree.ReplaceAt(0, num(1)); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, err := tree.At(0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestDeleteAtShrinksToEmpty(t *testing.T) {
	tree := makeNumTree(t)
	var err error
	var want []int
	for i := 0; i < 150; i++ {
		tree, err = tree.InsertAt(i, num(i))
		if err != nil {
			t.Fatalf("insert failed: %v", err)
		}
		want = append(want, i)
	}
	// delete from the middle to exercise borrow and merge on both sides
	for len(want) > 0 {
		idx := len(want) / 2
		var removed num
		tree, removed, err = tree.DeleteAt(idx)
		if err != nil {
			t.Fatalf("delete at %d failed: %v", idx, err)
		}
		if int(removed) != want[idx] {
			t.Fatalf("removed %d, expected %d", removed, want[idx])
		}
		want = removeRange(want, idx, idx+1)
		assertItems(t, tree, want)
	}
	if !tree.IsEmpty() || tree.Height() != 0 {
		t.Fatalf("expected empty tree, height=%d", tree.Height())
	}
}

func TestReplaceAt(t *testing.T) {
	tree := makeNumTree(t)
	tree, err := tree.InsertAt(0, nums(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14)...)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	next, displaced, err := tree.ReplaceAt(13, num(100))
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if displaced != 14 {
		t.Fatalf("expected displaced item 14, got %d", displaced)
	}
	if next.Summary().Max != 100 || tree.Summary().Max != 14 {
		t.Fatalf("unexpected summaries after replace: new=%+v old=%+v", next.Summary(), tree.Summary())
	}
	assertItems(t, next, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 100})
}

func TestAtAndForEachLeaf(t *testing.T) {
	tree := makeNumTree(t)
	var err error
	for i := 0; i < 100; i++ {
		tree, err = tree.InsertAt(i, num(i*10))
		if err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}
	for i := 0; i < 100; i++ {
		item, err := tree.At(i)
		if err != nil || int(item) != i*10 {
			t.Fatalf("At(%d) = %d, %v", i, item, err)
		}
	}
	leaves, total := 0, 0
	tree.ForEachLeaf(func(items []num) bool {
		if len(items) == 0 {
			t.Fatalf("ForEachLeaf yielded an empty leaf")
		}
		leaves++
		total += len(items)
		return true
	})
	if total != 100 || leaves < 100/MaxLeafItems {
		t.Fatalf("unexpected leaf walk: leaves=%d items=%d", leaves, total)
	}
	stopped := 0
	tree.ForEachItem(func(item num) bool {
		stopped++
		return stopped < 5
	})
	if stopped != 5 {
		t.Fatalf("expected ForEachItem to stop after 5 items, saw %d", stopped)
	}
}

func TestWriteDot(t *testing.T) {
	tree := makeNumTree(t)
	var err error
	for i := 0; i < 30; i++ {
		tree, err = tree.InsertAt(i, num(i))
		if err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}
	var sb strings.Builder
	if err := tree.WriteDot(&sb, func(n num) string { return string(rune('a' + int(n)%26)) }); err != nil {
		t.Fatalf("WriteDot failed: %v", err)
	}
	out := sb.String()
	if !strings.HasPrefix(out, "strict digraph {") || !strings.Contains(out, "->") {
		t.Fatalf("unexpected DOT output:\n%s", out)
	}
}
