/*
Package btree provides a generic, persistent B+ sum-tree.

Leaf items are kept in sequence order. Every node caches the number of items
below it and a summary aggregated from its items by a client supplied monoid.
Summaries are what makes the tree useful for ordered containers: a summary
which remembers the last key of a subtree lets a Cursor find the position of a
key in logarithmic time, and positional edits then keep the sequence sorted.

Updates use path-copy semantics: InsertAt, DeleteAt and ReplaceAt return a new
tree and leave the receiver untouched. Nodes off the updated path are shared
between the old and the new tree.

Current status:
  - summary and dimension interfaces,
  - item-to-summary linkage at the type level (`item.Summary()`),
  - distinct `leafNode` and `innerNode` representations with cached item counts,
  - summary-guided (`Cursor`) seek,
  - recursive path-copy insert with split propagation,
  - recursive path-copy delete with sibling borrow/merge rebalancing,
  - path-copy replacement of single items,
  - leaf-wise and item-wise iteration,
  - Graphviz output for debugging.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bimap'
func tracer() tracing.Trace {
	return tracing.Select("bimap")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
