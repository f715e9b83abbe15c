package btree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[I SummarizedItem[S], S any] struct {
	idTable map[treeNode[I, S]]int
	max     int
}

func newtable[I SummarizedItem[S], S any]() *nodeids[I, S] {
	return &nodeids[I, S]{
		idTable: make(map[treeNode[I, S]]int),
		max:     1,
	}
}

func (ids *nodeids[I, S]) alloc(node treeNode[I, S]) int {
	if id := ids.idTable[node]; id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// WriteDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). label renders a single leaf item.
func (t *Tree[I, S]) WriteDot(w io.Writer, label func(I) string) error {
	var nodelist, edgelist strings.Builder
	ids := newtable[I, S]()
	var walk func(n treeNode[I, S])
	walk = func(n treeNode[I, S]) {
		id := ids.alloc(n)
		if n.isLeaf() {
			leaf := n.(*leafNode[I, S])
			labels := make([]string, len(leaf.items))
			for i, item := range leaf.items {
				labels[i] = dotEscape(label(item))
			}
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", id,
				strings.Join(labels, " | "), nodeDotStyles(true))
			return
		}
		inner := n.(*innerNode[I, S])
		fmt.Fprintf(&nodelist, "\"%d\" [label=%d %s];\n", id, inner.count, nodeDotStyles(false))
		for _, child := range inner.children {
			walk(child)
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", id, ids.alloc(child))
		}
	}
	if t.root != nil {
		walk(t.root)
	}
	_, err := fmt.Fprintf(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n%s%s}\n",
		nodelist.String(), edgelist.String())
	return err
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=record,fillcolor=\"#a3d7e4\""
	} else {
		s += ",color=black,fillcolor=white,shape=circle"
	}
	return s
}

func dotEscape(s string) string {
	r := strings.NewReplacer(`"`, `\"`, `|`, `\|`, `{`, `\{`, `}`, `\}`, `<`, `\<`, `>`, `\>`)
	return r.Replace(s)
}
