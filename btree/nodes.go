package btree

type treeNode[I SummarizedItem[S], S any] interface {
	isLeaf() bool
	Summary() S
	itemCount() int
}

type leafNode[I SummarizedItem[S], S any] struct {
	summary S
	items   []I
}

func (l *leafNode[I, S]) isLeaf() bool   { return true }
func (l *leafNode[I, S]) Summary() S     { return l.summary }
func (l *leafNode[I, S]) itemCount() int { return len(l.items) }

type innerNode[I SummarizedItem[S], S any] struct {
	summary S
	// count caches the number of leaf items below this node.
	count    int
	children []treeNode[I, S]
}

func (n *innerNode[I, S]) isLeaf() bool   { return false }
func (n *innerNode[I, S]) Summary() S     { return n.summary }
func (n *innerNode[I, S]) itemCount() int { return n.count }
