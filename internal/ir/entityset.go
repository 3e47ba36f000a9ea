package ir

import (
	"iter"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// EntitySet is a set of EntityIDs backed by a Roaring Bitmap.
// Iteration is always in ascending order. A nil *EntitySet reads as empty.
type EntitySet struct {
	rb *roaring.Bitmap
}

// NewEntitySet creates a set holding ids.
func NewEntitySet(ids ...EntityID) *EntitySet {
	s := &EntitySet{rb: roaring.New()}
	for _, id := range ids {
		s.rb.Add(uint32(id))
	}
	return s
}

// Add adds id to the set.
func (s *EntitySet) Add(id EntityID) {
	s.rb.Add(uint32(id))
}

// Contains reports whether id is in the set.
func (s *EntitySet) Contains(id EntityID) bool {
	if s == nil {
		return false
	}
	return s.rb.Contains(uint32(id))
}

// Len returns the number of ids in the set.
func (s *EntitySet) Len() int {
	if s == nil {
		return 0
	}
	return int(s.rb.GetCardinality())
}

// IsEmpty returns true if the set holds no ids.
func (s *EntitySet) IsEmpty() bool {
	return s == nil || s.rb.IsEmpty()
}

// IDs returns the ids in ascending order.
func (s *EntitySet) IDs() []EntityID {
	if s == nil {
		return nil
	}
	raw := s.rb.ToArray()
	ids := make([]EntityID, len(raw))
	for i, v := range raw {
		ids[i] = EntityID(v)
	}
	return ids
}

// All returns an iterator over the set in ascending order.
func (s *EntitySet) All() iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		if s == nil {
			return
		}
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(EntityID(it.Next())) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the set.
func (s *EntitySet) Clone() *EntitySet {
	if s == nil {
		return NewEntitySet()
	}
	return &EntitySet{rb: s.rb.Clone()}
}

// Equal reports whether both sets hold the same ids.
func (s *EntitySet) Equal(other *EntitySet) bool {
	if s.IsEmpty() || other.IsEmpty() {
		return s.IsEmpty() && other.IsEmpty()
	}
	return s.rb.Equals(other.rb)
}

// String renders the set as "{1, 2, 3}".
func (s *EntitySet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for id := range s.All() {
		if !first {
			b.WriteString(", ")
		}
		b.WriteString(id.String())
		first = false
	}
	b.WriteByte('}')
	return b.String()
}

// Union returns a new set holding every id in any of sets.
// The inputs are not modified.
func Union(sets ...*EntitySet) *EntitySet {
	out := NewEntitySet()
	for _, s := range sets {
		if s.IsEmpty() {
			continue
		}
		out.rb.Or(s.rb)
	}
	return out
}
