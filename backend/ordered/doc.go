/*
Package ordered implements a backend map over a balanced B+ tree.

Entries are ordered by their keys, either by the natural order of an ordered
key type or by a comparison function supplied at construction time. Point
operations are logarithmic in the number of entries.

Lookups and removals may probe the map with a borrowed probe type: ProbeBy
creates a view which projects stored keys to the probe type, wraps both sides
and compares the wrapped forms. No key half is constructed to search.

IntoIter drains a map into an owned, double-ended iterator which yields the
entries' halves in key order from the front and in reverse key order from the
back.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package ordered

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bimap'
func tracer() tracing.Trace {
	return tracing.Select("bimap")
}
