/*
Package backend defines the contract between a dual-indexed map and the
storage backends it is assembled from.

A dual-indexed map owns two backend maps, one per direction. Entries of a
backend map are halves (see package mem): the forward map stores key halves
mapped to value halves, the reverse map stores the sibling halves the other
way round. The interfaces in this package are all a dual-indexed map needs to
know about a backend, so backends may be swapped without touching the
coordination logic.

Operations reading or removing entries are split into capability interfaces
generic over a probe type Q. Backends satisfy them with Q equal to the key type
and may offer additional probe views for borrowed probe types.

Absence of a key is an ordinary outcome, reported by a false flag. Backends
never report absence with an error or a panic.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package backend
