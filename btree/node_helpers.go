package btree

// makeLeaf materializes a new leaf holding a copy of items and computes its
// summary.
func (t *Tree[I, S]) makeLeaf(items []I) *leafNode[I, S] {
	assert(len(items) <= MaxLeafItems+1, "makeLeaf exceeds leaf capacity")
	leaf := &leafNode[I, S]{
		items: append([]I(nil), items...),
	}
	t.recomputeLeafSummary(leaf)
	return leaf
}

// makeInternal materializes a new internal node and computes its summary and
// item count from its children.
func (t *Tree[I, S]) makeInternal(children ...treeNode[I, S]) *innerNode[I, S] {
	assert(len(children) <= MaxChildren+1, "makeInternal exceeds node capacity")
	inner := &innerNode[I, S]{
		children: append([]treeNode[I, S](nil), children...),
	}
	t.recomputeInnerSummary(inner)
	return inner
}
