package ir

import (
	"fmt"
	"slices"
)

// EntityID identifies an entity within a single store.
// Identifiers are opaque and totally ordered. They are assigned by whoever
// assembles the work before the store is built; no recycling is modeled.
type EntityID uint32

// String returns the decimal form of the identifier.
func (id EntityID) String() string {
	return fmt.Sprintf("%d", uint32(id))
}

// AttributeKind names a class of musical attribute ("pitch", "dynamics", ...).
// The store only groups and filters by kind; it never interprets it.
type AttributeKind string

// Known attribute kinds. Each one has exactly one Attribute implementation.
const (
	KindPitch        AttributeKind = "pitch"
	KindDynamics     AttributeKind = "dynamics"
	KindArticulation AttributeKind = "articulation"
	KindLyric        AttributeKind = "lyric"
	KindRest         AttributeKind = "rest"
)

// knownKinds is kept sorted.
var knownKinds = []AttributeKind{
	KindArticulation,
	KindDynamics,
	KindLyric,
	KindPitch,
	KindRest,
}

// KnownKinds returns every attribute kind in lexical order.
func KnownKinds() []AttributeKind {
	return slices.Clone(knownKinds)
}

// Valid reports whether k is one of the known kinds.
func (k AttributeKind) Valid() bool {
	_, found := slices.BinarySearch(knownKinds, k)
	return found
}

// SortKinds sorts kinds in place and returns them.
func SortKinds(kinds []AttributeKind) []AttributeKind {
	slices.Sort(kinds)
	return kinds
}
