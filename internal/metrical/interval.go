package metrical

import (
	"errors"
	"fmt"
)

// ErrInvertedInterval is returned when an interval ends before it starts.
var ErrInvertedInterval = errors.New("interval end precedes start")

// Interval is a closed range [Start, End] of musical time.
// Start == End is a point interval.
type Interval struct {
	Start Duration
	End   Duration
}

// NewInterval returns [start, end].
func NewInterval(start, end Duration) (Interval, error) {
	if end.Less(start) {
		return Interval{}, fmt.Errorf("%w: [%s, %s]", ErrInvertedInterval, start, end)
	}
	return Interval{Start: start, End: end}, nil
}

// MustInterval is NewInterval that panics on error. For tests and constants.
func MustInterval(start, end Duration) Interval {
	iv, err := NewInterval(start, end)
	if err != nil {
		panic(err)
	}
	return iv
}

// Span is shorthand for the interval [start, end] in whole notes.
func Span(start, end int64) Interval {
	return MustInterval(Whole(start), Whole(end))
}

// Length returns End - Start.
func (iv Interval) Length() (Duration, error) {
	return iv.End.Sub(iv.Start)
}

// String renders "[start, end]".
func (iv Interval) String() string {
	return fmt.Sprintf("[%s, %s]", iv.Start, iv.End)
}

// Relation is one of Allen's thirteen interval relations. It is read as
// "a <relation> b" for a.Relation(b).
type Relation int

const (
	Equals Relation = iota
	Precedes
	PrecededBy
	Meets
	MetBy
	Overlaps
	OverlappedBy
	Starts
	StartedBy
	During
	Contains
	Finishes
	FinishedBy
)

var relationNames = [...]string{
	Equals:       "equals",
	Precedes:     "precedes",
	PrecededBy:   "precededBy",
	Meets:        "meets",
	MetBy:        "metBy",
	Overlaps:     "overlaps",
	OverlappedBy: "overlappedBy",
	Starts:       "starts",
	StartedBy:    "startedBy",
	During:       "during",
	Contains:     "contains",
	Finishes:     "finishes",
	FinishedBy:   "finishedBy",
}

func (r Relation) String() string {
	if r < 0 || int(r) >= len(relationNames) {
		return fmt.Sprintf("Relation(%d)", int(r))
	}
	return relationNames[r]
}

// Relation returns how iv relates to other.
//
// Shared endpoints are checked before meets/metBy, so a point interval at
// the start of a longer one "starts" it rather than "meets" it.
func (iv Interval) Relation(other Interval) Relation {
	a, b := iv, other
	switch {
	case a.Start == b.Start && a.End == b.End:
		return Equals
	case a.End.Less(b.Start):
		return Precedes
	case b.End.Less(a.Start):
		return PrecededBy
	case a.Start == b.Start:
		if a.End.Less(b.End) {
			return Starts
		}
		return StartedBy
	case a.End == b.End:
		if a.Start.Less(b.Start) {
			return FinishedBy
		}
		return Finishes
	case a.End == b.Start:
		return Meets
	case a.Start == b.End:
		return MetBy
	case a.Start.Less(b.Start) && b.End.Less(a.End):
		return Contains
	case b.Start.Less(a.Start) && a.End.Less(b.End):
		return During
	case a.Start.Less(b.Start):
		return Overlaps
	default:
		return OverlappedBy
	}
}

// Covers reports whether other lies wholly within iv: the relation of iv to
// other is equals, contains, startedBy or finishedBy. Partial overlap does
// not count.
func (iv Interval) Covers(other Interval) bool {
	switch iv.Relation(other) {
	case Equals, Contains, StartedBy, FinishedBy:
		return true
	default:
		return false
	}
}
