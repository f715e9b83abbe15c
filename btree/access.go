package btree

// At returns the leaf item at item index.
func (t *Tree[I, S]) At(index int) (I, error) {
	var zero I
	if t == nil || t.root == nil {
		return zero, ErrIndexOutOfBounds
	}
	if index < 0 || index >= t.Len() {
		return zero, ErrIndexOutOfBounds
	}
	return t.atNode(t.root, t.height, index), nil
}

func (t *Tree[I, S]) atNode(n treeNode[I, S], height int, index int) I {
	assert(n != nil, "atNode called with nil node")
	assert(height > 0, "atNode called with non-positive height")
	if height == 1 {
		leaf := n.(*leafNode[I, S])
		assert(index >= 0 && index < len(leaf.items), "atNode leaf index out of range")
		return leaf.items[index]
	}
	slot, local := t.locateChildForDelete(n.(*innerNode[I, S]), index)
	return t.atNode(n.(*innerNode[I, S]).children[slot], height-1, local)
}
