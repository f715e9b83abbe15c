package btree

import (
	"fmt"
)

// Tree is a persistent B+ sum-tree.
//
// I is the leaf item type, S is the summary type aggregated through the tree.
// The item type is tied to summary type via SummarizedItem[S].
type Tree[I SummarizedItem[S], S any] struct {
	cfg    Config[S]
	root   treeNode[I, S]
	height int // 0 means empty tree
}

// New creates an empty tree with validated configuration.
func New[I SummarizedItem[S], S any](cfg Config[S]) (*Tree[I, S], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[I, S]{cfg: cfg}, nil
}

// Config returns a copy of the tree configuration.
func (t *Tree[I, S]) Config() Config[S] {
	return t.cfg
}

// Clone returns a shallow clone of the tree root container.
//
// Node contents are shared; mutating operations use path-copy semantics, so
// neither tree observes updates of the other.
func (t *Tree[I, S]) Clone() *Tree[I, S] {
	if t == nil {
		return nil
	}
	cloned := *t
	return &cloned
}

// IsEmpty reports whether the tree has no items.
func (t *Tree[I, S]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of items in the tree.
func (t *Tree[I, S]) Len() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.root.itemCount()
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (t *Tree[I, S]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Summary returns the root summary, or Zero() for an empty tree.
func (t *Tree[I, S]) Summary() S {
	if t.root == nil {
		return t.cfg.Monoid.Zero()
	}
	return t.root.Summary()
}

// InsertAt inserts items at an item index and returns a new tree.
func (t *Tree[I, S]) InsertAt(index int, items ...I) (*Tree[I, S], error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if index < 0 || index > t.Len() {
		return nil, ErrIndexOutOfBounds
	}
	if len(items) == 0 {
		return t, nil
	}
	cloned := t.Clone()
	for i, item := range items {
		cloned.insertOneAt(index+i, item)
	}
	return cloned, nil
}

// DeleteAt removes one item at index and returns a new tree together with the
// removed item.
//
// Delete uses recursive path-copy with sibling borrow/merge rebalancing.
func (t *Tree[I, S]) DeleteAt(index int) (*Tree[I, S], I, error) {
	var zero I
	if t == nil {
		return nil, zero, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if index < 0 || index >= t.Len() {
		return nil, zero, ErrIndexOutOfBounds
	}
	cloned := t.Clone()
	removed := cloned.deleteOneAt(index)
	return cloned, removed, nil
}

// ReplaceAt replaces the item at index and returns a new tree together with the
// displaced item.
func (t *Tree[I, S]) ReplaceAt(index int, item I) (*Tree[I, S], I, error) {
	var zero I
	if t == nil {
		return nil, zero, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if index < 0 || index >= t.Len() {
		return nil, zero, ErrIndexOutOfBounds
	}
	cloned := t.Clone()
	root, displaced := cloned.replaceRecursive(cloned.root, cloned.height, index, item)
	cloned.root = root
	return cloned, displaced, nil
}

// replaceRecursive path-copies the spine to the item at index and swaps it.
func (t *Tree[I, S]) replaceRecursive(n treeNode[I, S], height, index int, item I) (treeNode[I, S], I) {
	assert(n != nil, "replaceRecursive called with nil node")
	if height == 1 {
		leaf, ok := n.(*leafNode[I, S])
		assert(ok, "replaceRecursive expected leaf at height 1")
		cloned := t.cloneLeaf(leaf)
		displaced := cloned.items[index]
		cloned.items[index] = item
		t.recomputeLeafSummary(cloned)
		return cloned, displaced
	}
	inner, ok := n.(*innerNode[I, S])
	assert(ok, "replaceRecursive expected internal node")
	cloned := t.cloneInner(inner)
	slot, local := t.locateChildForDelete(cloned, index)
	child, displaced := t.replaceRecursive(cloned.children[slot], height-1, local, item)
	cloned.children[slot] = child
	t.recomputeInnerSummary(cloned)
	return cloned, displaced
}

// subtreeHeight computes height by following the left spine.
//
// The tree enforces uniform child heights, so any root-to-leaf path yields the
// same height.
func (t *Tree[I, S]) subtreeHeight(n treeNode[I, S]) int {
	h := 0
	cur := normalizeNode[I, S](n)
	for cur != nil {
		h++
		if cur.isLeaf() {
			return h
		}
		inner := cur.(*innerNode[I, S])
		if len(inner.children) == 0 {
			return h
		}
		cur = normalizeNode[I, S](inner.children[0])
	}
	return 0
}

// normalizeRoot canonicalizes root representation after structural edits.
//
// It applies the standard B-tree root rules:
//   - nil root => empty tree (height 0)
//   - leaf root => height 1
//   - internal root with single child => collapse repeatedly.
func (t *Tree[I, S]) normalizeRoot() {
	t.root = normalizeNode[I, S](t.root)
	if t.root == nil {
		t.height = 0
		return
	}
	for {
		inner, ok := t.root.(*innerNode[I, S])
		if !ok {
			t.height = 1
			return
		}
		if len(inner.children) != 1 {
			t.height = t.subtreeHeight(t.root)
			return
		}
		t.root = normalizeNode[I, S](inner.children[0])
		if t.root == nil {
			t.height = 0
			return
		}
	}
}

// deleteOneAt performs a single-item delete on this tree in place.
//
// The receiver is expected to be a private clone when called from public APIs.
func (t *Tree[I, S]) deleteOneAt(index int) I {
	assert(t.root != nil, "deleteOneAt called on empty tree")
	updated, removed, _ := t.deleteRecursive(t.root, t.height, index, true)
	t.root = normalizeNode[I, S](updated)
	t.normalizeRoot()
	t.assertDeleteRootNormalized()
	return removed
}

// assertDeleteRootNormalized verifies post-delete root invariants.
//
// Violations indicate a tree algorithm bug, not an input error.
func (t *Tree[I, S]) assertDeleteRootNormalized() {
	if t.root == nil {
		assert(t.height == 0, "delete root normalization: nil root must have height 0")
		return
	}
	if t.root.isLeaf() {
		leaf := t.root.(*leafNode[I, S])
		assert(len(leaf.items) > 0, "delete root normalization: root leaf must be non-empty")
		assert(t.height == 1, "delete root normalization: root leaf must have height 1")
		return
	}
	inner := t.root.(*innerNode[I, S])
	assert(len(inner.children) > 1, "delete root normalization: root inner must have at least 2 children")
	assert(t.height >= 2, "delete root normalization: root inner must have height >= 2")
}

// deleteRecursive removes one item at index from subtree n.
//
// Returns:
//   - updated subtree root (possibly nil if subtree became empty)
//   - the removed item
//   - needsRebalance: whether caller must repair occupancy at parent level.
//
// The algorithm is path-copy and mirrors insertion unwind structure.
func (t *Tree[I, S]) deleteRecursive(
	n treeNode[I, S], height, index int, isRoot bool,
) (updated treeNode[I, S], removed I, needsRebalance bool) {
	assert(n != nil, "deleteRecursive called with nil node")
	assert(height > 0, "deleteRecursive called with invalid height")
	if height == 1 {
		leaf, ok := n.(*leafNode[I, S])
		assert(ok, "deleteRecursive expected leaf at height 1")
		assert(index >= 0 && index < len(leaf.items), "deleteRecursive leaf index out of range")
		cloned := t.cloneLeaf(leaf)
		removed = cloned.items[index]
		t.removeLeafItemsRange(cloned, index, index+1)
		if len(cloned.items) == 0 {
			if isRoot {
				return nil, removed, false
			}
			return cloned, removed, true
		}
		return cloned, removed, t.leafUnderflow(cloned, isRoot)
	}

	inner, ok := n.(*innerNode[I, S])
	assert(ok, "deleteRecursive expected internal node")
	cloned := t.cloneInner(inner)
	slot, localIndex := t.locateChildForDelete(cloned, index)
	updatedChild, removed, childNeedsRebalance := t.deleteRecursive(cloned.children[slot], height-1, localIndex, false)
	updatedChild = normalizeNode[I, S](updatedChild)
	if updatedChild == nil {
		t.removeChildAt(cloned, slot)
	} else {
		cloned.children[slot] = updatedChild
		t.recomputeInnerSummary(cloned)
	}
	if childNeedsRebalance && updatedChild != nil {
		if !(isRoot && len(cloned.children) == 1) {
			resolved := t.rebalanceChildAfterDelete(cloned, slot, height-1)
			assert(resolved, "deleteRecursive could not rebalance child")
		}
	}
	if len(cloned.children) == 0 {
		return nil, removed, !isRoot
	}
	return cloned, removed, t.innerUnderflow(cloned, isRoot)
}

// insertOneAt inserts one item into this tree in place.
//
// Like deleteOneAt, callers should use a private clone to preserve persistence.
func (t *Tree[I, S]) insertOneAt(index int, item I) {
	if t.root == nil {
		t.root = t.makeLeaf([]I{item})
		t.height = 1
		return
	}
	updated, promoted := t.insertRecursive(t.root, t.height, index, item)
	promoted = normalizeNode[I, S](promoted)
	if promoted != nil {
		t.root = t.makeInternal(updated, promoted)
		t.height++
		tracer().Debugf("btree: root split, height is now %d", t.height)
		return
	}
	t.root = updated
}

// insertRecursive inserts one item into subtree n and propagates split results.
//
// The returned promoted sibling is non-nil only when the updated subtree split.
func (t *Tree[I, S]) insertRecursive(n treeNode[I, S], height, index int, item I) (treeNode[I, S], treeNode[I, S]) {
	assert(n != nil, "insertRecursive called with nil node")
	assert(height > 0, "insertRecursive called with invalid height")
	if height == 1 {
		leaf, ok := n.(*leafNode[I, S])
		assert(ok, "insertRecursive expected leaf at height 1")
		left, right, err := t.insertIntoLeafLocal(leaf, index, item)
		if err != nil {
			assert(false, err.Error())
		}
		if right == nil {
			return left, nil
		}
		return left, right
	}

	inner, ok := n.(*innerNode[I, S])
	assert(ok, "insertRecursive expected internal node")
	cloned := t.cloneInner(inner)
	slot, localIndex := t.locateChildForInsert(cloned, index)
	updatedChild, promotedChild := t.insertRecursive(cloned.children[slot], height-1, localIndex, item)
	promotedChild = normalizeNode[I, S](promotedChild)
	cloned.children[slot] = updatedChild
	if promotedChild != nil {
		t.insertChildAt(cloned, slot+1, promotedChild)
	} else {
		t.recomputeInnerSummary(cloned)
	}
	if !t.innerOverflow(cloned) {
		return cloned, nil
	}
	left, right := t.splitInner(cloned)
	return left, right
}

// locateChildForInsert maps a subtree item index to child slot + local index.
//
// It uses `remaining <= childItems` so boundary indices land in the left child,
// matching insertion semantics at child seams.
func (t *Tree[I, S]) locateChildForInsert(inner *innerNode[I, S], index int) (childSlot int, localIndex int) {
	assert(inner != nil, "locateChildForInsert called with nil inner node")
	assert(len(inner.children) > 0, "locateChildForInsert called with empty children")
	assert(index >= 0, "locateChildForInsert called with negative index")
	remaining := index
	for i, child := range inner.children {
		childItems := child.itemCount()
		if remaining <= childItems {
			return i, remaining
		}
		remaining -= childItems
	}
	assert(false, "locateChildForInsert index exceeded subtree item count")
	return 0, 0
}

// locateChildForDelete maps a subtree item index to child slot + local index.
//
// It uses `remaining < childItems` so each absolute index is owned by exactly
// one child.
func (t *Tree[I, S]) locateChildForDelete(inner *innerNode[I, S], index int) (childSlot int, localIndex int) {
	assert(inner != nil, "locateChildForDelete called with nil inner node")
	assert(len(inner.children) > 0, "locateChildForDelete called with empty children")
	assert(index >= 0, "locateChildForDelete called with negative index")
	remaining := index
	for i, child := range inner.children {
		childItems := child.itemCount()
		if remaining < childItems {
			return i, remaining
		}
		remaining -= childItems
	}
	assert(false, "locateChildForDelete index exceeded subtree item count")
	return 0, 0
}

// normalizeNode removes typed-nil interface wrappers.
//
// It prevents accidental non-nil interface values that wrap nil pointers.
func normalizeNode[I SummarizedItem[S], S any](n treeNode[I, S]) treeNode[I, S] {
	switch v := n.(type) {
	case nil:
		return nil
	case *leafNode[I, S]:
		if v == nil {
			return nil
		}
	case *innerNode[I, S]:
		if v == nil {
			return nil
		}
	}
	return n
}
