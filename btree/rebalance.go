package btree

// rebalanceChildAfterDelete repairs occupancy for child at slot.
//
// `childHeight` selects leaf vs internal sibling operations.
func (t *Tree[I, S]) rebalanceChildAfterDelete(parent *innerNode[I, S], slot int, childHeight int) bool {
	assert(parent != nil, "rebalanceChildAfterDelete called with nil parent")
	assert(slot >= 0 && slot < len(parent.children), "rebalanceChildAfterDelete slot out of range")
	assert(childHeight > 0, "rebalanceChildAfterDelete childHeight must be positive")
	if childHeight == 1 {
		return t.rebalanceLeafChild(parent, slot)
	}
	return t.rebalanceInnerChild(parent, slot)
}

// applyRebalancePolicy centralizes sibling operation order after delete:
// borrow-left, borrow-right, merge-left, merge-right.
func (t *Tree[I, S]) applyRebalancePolicy(
	parent *innerNode[I, S], slot int,
	borrowLeft func() bool,
	borrowRight func() bool,
	mergeLeft func() bool,
	mergeRight func() bool,
) bool {
	hasLeft := slot > 0
	hasRight := slot+1 < len(parent.children)
	if hasLeft && borrowLeft() {
		return true
	}
	if hasRight && borrowRight() {
		return true
	}
	if hasLeft && mergeLeft() {
		return true
	}
	if hasRight && mergeRight() {
		return true
	}
	return false
}

func (t *Tree[I, S]) rebalanceLeafChild(parent *innerNode[I, S], slot int) bool {
	child, ok := parent.children[slot].(*leafNode[I, S])
	assert(ok, "rebalanceLeafChild expected leaf child")
	if !t.leafUnderflow(child, false) {
		return true
	}
	return t.applyRebalancePolicy(
		parent, slot,
		func() bool {
			left := parent.children[slot-1].(*leafNode[I, S])
			if len(left.items) <= Base {
				return false
			}
			leftClone := t.cloneLeaf(left)
			parent.children[slot-1] = leftClone
			borrowed := leftClone.items[len(leftClone.items)-1]
			t.removeLeafItemsRange(leftClone, len(leftClone.items)-1, len(leftClone.items))
			t.insertLeafItemsAt(child, 0, borrowed)
			t.recomputeInnerSummary(parent)
			return true
		},
		func() bool {
			right := parent.children[slot+1].(*leafNode[I, S])
			if len(right.items) <= Base {
				return false
			}
			rightClone := t.cloneLeaf(right)
			parent.children[slot+1] = rightClone
			borrowed := rightClone.items[0]
			t.removeLeafItemsRange(rightClone, 0, 1)
			t.insertLeafItemsAt(child, len(child.items), borrowed)
			t.recomputeInnerSummary(parent)
			return true
		},
		func() bool {
			left := parent.children[slot-1].(*leafNode[I, S])
			merged := make([]I, 0, len(left.items)+len(child.items))
			merged = append(merged, left.items...)
			merged = append(merged, child.items...)
			parent.children[slot-1] = t.makeLeaf(merged)
			t.removeChildAt(parent, slot)
			return true
		},
		func() bool {
			right := parent.children[slot+1].(*leafNode[I, S])
			merged := make([]I, 0, len(child.items)+len(right.items))
			merged = append(merged, child.items...)
			merged = append(merged, right.items...)
			parent.children[slot] = t.makeLeaf(merged)
			t.removeChildAt(parent, slot+1)
			return true
		},
	)
}

// rebalanceInnerChild applies borrow/merge to an underfull internal child.
//
// Child pointers are moved between siblings; summaries and counts are
// recomputed by the lower-level mutation helpers.
func (t *Tree[I, S]) rebalanceInnerChild(parent *innerNode[I, S], slot int) bool {
	child, ok := parent.children[slot].(*innerNode[I, S])
	assert(ok, "rebalanceInnerChild expected internal child")
	if !t.innerUnderflow(child, false) {
		return true
	}
	return t.applyRebalancePolicy(
		parent, slot,
		func() bool {
			left := parent.children[slot-1].(*innerNode[I, S])
			if len(left.children) <= Base {
				return false
			}
			leftClone := t.cloneInner(left)
			parent.children[slot-1] = leftClone
			borrowed := leftClone.children[len(leftClone.children)-1]
			t.removeChildAt(leftClone, len(leftClone.children)-1)
			t.insertChildAt(child, 0, borrowed)
			t.recomputeInnerSummary(parent)
			return true
		},
		func() bool {
			right := parent.children[slot+1].(*innerNode[I, S])
			if len(right.children) <= Base {
				return false
			}
			rightClone := t.cloneInner(right)
			parent.children[slot+1] = rightClone
			borrowed := rightClone.children[0]
			t.removeChildAt(rightClone, 0)
			t.insertChildAt(child, len(child.children), borrowed)
			t.recomputeInnerSummary(parent)
			return true
		},
		func() bool {
			left := parent.children[slot-1].(*innerNode[I, S])
			merged := make([]treeNode[I, S], 0, len(left.children)+len(child.children))
			merged = append(merged, left.children...)
			merged = append(merged, child.children...)
			parent.children[slot-1] = t.makeInternal(merged...)
			t.removeChildAt(parent, slot)
			return true
		},
		func() bool {
			right := parent.children[slot+1].(*innerNode[I, S])
			merged := make([]treeNode[I, S], 0, len(child.children)+len(right.children))
			merged = append(merged, child.children...)
			merged = append(merged, right.children...)
			parent.children[slot] = t.makeInternal(merged...)
			t.removeChildAt(parent, slot+1)
			return true
		},
	)
}
