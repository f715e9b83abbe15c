package btree

import "iter"

// ForEachItem walks leaf items in-order.
//
// Iteration stops early if callback returns false.
func (t *Tree[I, S]) ForEachItem(fn func(item I) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.ForEachLeaf(func(items []I) bool {
		for _, item := range items {
			if !fn(item) {
				return false
			}
		}
		return true
	})
}

// ForEachLeaf walks the item slices of all leaves in-order. Leaves are never
// empty.
//
// The slices are shared with the tree and must not be modified. They stay
// valid after further updates of the tree, as updates copy the nodes they
// touch.
func (t *Tree[I, S]) ForEachLeaf(fn func(items []I) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.forEachLeafNode(t.root, fn)
}

func (t *Tree[I, S]) forEachLeafNode(n treeNode[I, S], fn func(items []I) bool) bool {
	assert(n != nil, "forEachLeafNode called with nil node")
	if n.isLeaf() {
		return fn(n.(*leafNode[I, S]).items)
	}
	for _, child := range n.(*innerNode[I, S]).children {
		if !t.forEachLeafNode(child, fn) {
			return false
		}
	}
	return true
}

// All returns an iterator over all items in-order.
func (t *Tree[I, S]) All() iter.Seq[I] {
	return func(yield func(I) bool) {
		t.ForEachItem(yield)
	}
}
