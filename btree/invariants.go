package btree

import "fmt"

// Check validates structural tree invariants: occupancy bounds, uniform
// height and cached item counts.
//
// This checker is intentionally strict and is meant for tests.
func (t *Tree[I, S]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		if t.height != 0 {
			return fmt.Errorf("%w: empty tree must have height=0", ErrInvalidConfig)
		}
		return nil
	}
	if t.height <= 0 {
		return fmt.Errorf("%w: non-empty tree must have height > 0", ErrInvalidConfig)
	}
	if inner, ok := t.root.(*innerNode[I, S]); ok && len(inner.children) < 2 {
		return fmt.Errorf("%w: internal root must have at least 2 children", ErrInvalidConfig)
	}
	_, height, err := t.checkNode(t.root, true)
	if err != nil {
		return err
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvalidConfig, height, t.height)
	}
	return nil
}

func (t *Tree[I, S]) checkNode(n treeNode[I, S], isRoot bool) (items int, height int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrInvalidConfig)
	}
	if n.isLeaf() {
		leaf := n.(*leafNode[I, S])
		if leaf == nil {
			return 0, 0, fmt.Errorf("%w: nil leaf node", ErrInvalidConfig)
		}
		if len(leaf.items) == 0 {
			return 0, 0, fmt.Errorf("%w: empty leaf", ErrInvalidConfig)
		}
		if len(leaf.items) > MaxLeafItems {
			return 0, 0, fmt.Errorf("%w: leaf item count %d exceeds %d",
				ErrInvalidConfig, len(leaf.items), MaxLeafItems)
		}
		if !isRoot && len(leaf.items) < Base {
			return 0, 0, fmt.Errorf("%w: leaf item count %d below %d",
				ErrInvalidConfig, len(leaf.items), Base)
		}
		return len(leaf.items), 1, nil
	}
	inner := n.(*innerNode[I, S])
	if len(inner.children) == 0 {
		return 0, 0, fmt.Errorf("%w: internal node has no children", ErrInvalidConfig)
	}
	if len(inner.children) > MaxChildren {
		return 0, 0, fmt.Errorf("%w: child count %d exceeds degree %d",
			ErrInvalidConfig, len(inner.children), MaxChildren)
	}
	if !isRoot && len(inner.children) < Base {
		return 0, 0, fmt.Errorf("%w: child count %d below %d",
			ErrInvalidConfig, len(inner.children), Base)
	}
	var totalItems int
	var childHeight int
	for i, child := range inner.children {
		if child == nil {
			return 0, 0, fmt.Errorf("%w: nil child at index %d", ErrInvalidConfig, i)
		}
		cItems, cHeight, cErr := t.checkNode(child, false)
		if cErr != nil {
			return 0, 0, cErr
		}
		totalItems += cItems
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: non-uniform subtree heights", ErrInvalidConfig)
		}
	}
	if totalItems != inner.count {
		return 0, 0, fmt.Errorf("%w: cached item count %d, counted %d",
			ErrInvalidConfig, inner.count, totalItems)
	}
	return totalItems, childHeight + 1, nil
}
