package backend

import "github.com/npillmayer/bimap/mem"

// Kind selects a concrete backend map type M for keys K and values V.
// Kinds are zero-size marker types; they let coordination logic be generic over
// the choice of backend.
type Kind[K, V any, M any] interface {
	NewMap() M
}

// Container reports whether an entry matching a probe is present.
type Container[Q any] interface {
	Contains(probe Q) bool
}

// Getter looks up the value half stored for a probe. The returned half is a
// view on the stored entry and stays owned by the map; it must not be handed to
// mem.Reunite.
type Getter[V, Q any] interface {
	Get(probe Q) (mem.ValueRef[V], bool)
}

// Inserter stores a key half and a value half, taking ownership of both.
//
// Inserting a key which compares equal to a stored key keeps the stored key
// half and overwrites its value half. The displaced value half is dropped and
// can no longer be reunited with its sibling. Callers coordinating two maps
// must remove an existing entry first, or use Replacer.
type Inserter[K, V any] interface {
	Insert(key mem.KeyRef[K], value mem.ValueRef[V])
}

// Replacer stores a key half and a value half and hands back the halves of an
// entry it displaces, so that they can be reunited with their siblings.
type Replacer[K, V any] interface {
	Replace(key mem.KeyRef[K], value mem.ValueRef[V]) (mem.KeyRef[K], mem.ValueRef[V], bool)
}

// Remover removes the entry matching a probe and returns its owned halves.
// If no entry matches, the map is left unchanged and the flag is false.
type Remover[K, V, Q any] interface {
	Remove(probe Q) (mem.KeyRef[K], mem.ValueRef[V], bool)
}

// Length reports the number of entries. Both operations are constant-time.
type Length interface {
	Len() int
	IsEmpty() bool
}

// Map is the full contract of a backend map probed with its own key type.
type Map[K, V any] interface {
	Container[K]
	Getter[V, K]
	Inserter[K, V]
	Replacer[K, V]
	Remover[K, V, K]
	Length
}

// New creates an empty backend map of the kind selected by Kd.
func New[K, V any, M Map[K, V], Kd Kind[K, V, M]]() M {
	var kind Kd
	return kind.NewMap()
}
