/*
Package mem provides the memory primitives underneath a dual-indexed map.

A bidirectional map stores every logical (key, value) pair twice: once in a
forward map and once in a reverse map. Package mem lets both maps refer to a
single copy of each key and value. Share moves a value into one shared cell and
hands out two halves; each half is stored in a different map. Halves are
read-only views on the cell. The cell is released only by Reunite, which
recombines both halves into the original value.

	k1, k2 := mem.Share("key")
	...
	s := mem.Reunite(k1, k2) // s == "key"

Reuniting halves which stem from different Share calls is a fatal pairing
violation and panics with a *PairingError. Dropping a half without reuniting it
with its sibling leaves the cell dangling in the pair accounting (see LivePairs).

Wrapped is a type-identity wrapper used for probing maps with a borrowed probe
type: Borrow projects a stored key half to a probe type and wraps it, so that
it compares equal to a wrapped probe value.

None of the types in this package are safe for concurrent mutation. A single
logical owner is expected to coordinate both maps sharing the halves.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package mem

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bimap'
func tracer() tracing.Trace {
	return tracing.Select("bimap")
}
