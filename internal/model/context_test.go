package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/scoredb/internal/metrical"
	"github.com/roach88/scoredb/internal/performance"
)

func TestContextIsContained_Interval(t *testing.T) {
	c := Context{
		Interval:    metrical.Span(2, 4),
		Performance: performance.Context{Performer: "A"},
	}

	assert.True(t, c.IsContained(metrical.Span(1, 5), performance.Any()), "query contains context")
	assert.False(t, c.IsContained(metrical.Span(3, 4), performance.Any()), "context not wholly within query")
	assert.True(t, c.IsContained(metrical.Span(2, 4), performance.Any()), "equal intervals")
	assert.True(t, c.IsContained(metrical.Span(2, 6), performance.Any()), "shared start")
	assert.True(t, c.IsContained(metrical.Span(0, 4), performance.Any()), "shared end")
	assert.False(t, c.IsContained(metrical.Span(3, 6), performance.Any()), "partial overlap")
	assert.False(t, c.IsContained(metrical.Span(4, 6), performance.Any()), "touching")
}

func TestContextIsContained_LargeQueryBounds(t *testing.T) {
	c := Context{Interval: metrical.MustInterval(metrical.Whole(0), metrical.MustDuration(1, 3))}

	assert.True(t, c.IsContained(metrical.Span(0, 1<<62), performance.Any()))
	assert.True(t, c.IsContained(metrical.Span(-(1 << 62), 1<<62), performance.Any()))
	assert.False(t, c.IsContained(metrical.MustInterval(metrical.MustDuration(1, 1<<62), metrical.Whole(1<<62)), performance.Any()))
}

func TestContextIsContained_Scope(t *testing.T) {
	c := Context{
		Interval:    metrical.Span(0, 1),
		Performance: performance.Context{Performer: "A", Instrument: "flute", Voice: 1},
	}
	in := metrical.Span(0, 1)

	assert.True(t, c.IsContained(in, performance.Any()))
	assert.True(t, c.IsContained(in, performance.ByPerformer("A")))
	assert.False(t, c.IsContained(in, performance.ByPerformer("B")), "scope mismatch excludes even when interval matches")
	assert.False(t, c.IsContained(metrical.Span(3, 4), performance.ByPerformer("A")))
}

func TestContextEquality(t *testing.T) {
	a := Context{
		Interval:    metrical.MustInterval(metrical.MustDuration(2, 4), metrical.Whole(1)),
		Performance: performance.Context{Performer: "A"},
	}
	b := Context{
		Interval:    metrical.MustInterval(metrical.MustDuration(1, 2), metrical.MustDuration(4, 4)),
		Performance: performance.Context{Performer: "A"},
	}
	c := b
	c.Performance.Voice = 2

	assert.True(t, a == b)
	assert.False(t, a == c)
}

func TestContextString(t *testing.T) {
	c := Context{
		Interval:    metrical.MustInterval(metrical.Whole(0), metrical.MustDuration(1, 4)),
		Performance: performance.Context{Performer: "anna", Instrument: "violin", Voice: 1},
	}

	assert.Equal(t, "[0, 1/4] anna/violin/v1", c.String())
}
