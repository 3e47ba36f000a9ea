package model

import (
	"fmt"

	"github.com/roach88/scoredb/internal/metrical"
	"github.com/roach88/scoredb/internal/performance"
)

// Context places an entity in time and names who performs it.
// Contexts are comparable with ==.
type Context struct {
	Interval    metrical.Interval
	Performance performance.Context
}

// IsContained reports whether c lies wholly within in and its performance
// context matches scope.
//
// The interval test holds when in equals, contains, is started by or is
// finished by c.Interval. Partial overlap is not containment.
func (c Context) IsContained(in metrical.Interval, scope performance.Scope) bool {
	if !scope.Contains(c.Performance) {
		return false
	}
	return in.Covers(c.Interval)
}

func (c Context) String() string {
	return fmt.Sprintf("%s %s", c.Interval, c.Performance)
}
