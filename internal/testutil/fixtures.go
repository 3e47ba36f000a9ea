package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/scoredb/internal/ir"
	"github.com/roach88/scoredb/internal/metrical"
	"github.com/roach88/scoredb/internal/model"
	"github.com/roach88/scoredb/internal/performance"
)

// ChordEvent is the event id Quartet uses for its opening chord.
const ChordEvent ir.EntityID = 100

// Ctx builds a context spanning [start, end] whole notes for performer.
func Ctx(start, end int64, performer string) model.Context {
	return model.Context{
		Interval:    metrical.Span(start, end),
		Performance: performance.Context{Performer: performer},
	}
}

// CtxAt builds a context from fractional bounds and a full performance context.
func CtxAt(start, end metrical.Duration, perf performance.Context) model.Context {
	return model.Context{
		Interval:    metrical.MustInterval(start, end),
		Performance: perf,
	}
}

// Duet is the smallest interesting work: entity 1 is a pitch performed by
// "A" over [0, 1], entity 2 a dynamic performed by "B" over [1, 2].
func Duet(t testing.TB) *model.Model {
	t.Helper()

	m, err := model.NewBuilder().
		Add(1, ir.Pitch{Step: 'C', Octave: 4}, Ctx(0, 1, "A")).
		Add(2, ir.Dynamics{Marking: "mf"}, Ctx(1, 2, "B")).
		Build()
	require.NoError(t, err)
	return m
}

// Quartet is a two-bar 4/4 fragment for three performers:
//
//	anna  violin  v1: C4 [0,1/4], p [0,0], D4 [1/4,1/2]
//	anna  violin  v2: E4 [0,1/4]
//	ben   viola   v1: G3 [0,1/4], staccato [1/4,1/2], rest [1,2]
//	cara  voice   v1: "la" [1/2,1]
//
// Event ChordEvent groups the opening chord (1, 2, 3).
func Quartet(t testing.TB) *model.Model {
	t.Helper()

	var (
		zero    = metrical.Whole(0)
		quarter = metrical.MustDuration(1, 4)
		half    = metrical.MustDuration(1, 2)
		one     = metrical.Whole(1)
		two     = metrical.Whole(2)

		violin1 = performance.Context{Performer: "anna", Instrument: "violin", Voice: 1}
		violin2 = performance.Context{Performer: "anna", Instrument: "violin", Voice: 2}
		viola   = performance.Context{Performer: "ben", Instrument: "viola", Voice: 1}
		voice   = performance.Context{Performer: "cara", Instrument: "voice", Voice: 1}
	)

	m, err := model.NewBuilder().
		Add(1, ir.Pitch{Step: 'C', Octave: 4}, CtxAt(zero, quarter, violin1)).
		Add(2, ir.Pitch{Step: 'E', Octave: 4}, CtxAt(zero, quarter, violin2)).
		Add(3, ir.Pitch{Step: 'G', Octave: 3}, CtxAt(zero, quarter, viola)).
		Add(4, ir.Dynamics{Marking: "p"}, CtxAt(zero, zero, violin1)).
		Add(5, ir.Articulation{Marking: "staccato"}, CtxAt(quarter, half, viola)).
		Add(6, ir.Pitch{Step: 'D', Octave: 4}, CtxAt(quarter, half, violin1)).
		Add(7, ir.Lyric{Text: "la"}, CtxAt(half, one, voice)).
		Add(8, ir.Rest{}, CtxAt(one, two, viola)).
		AddEvent(ChordEvent, 1, 2, 3).
		SetMeter(metrical.NewStructure(
			metrical.Meter{Beats: 4, Subdivision: 4},
			metrical.Meter{Beats: 4, Subdivision: 4},
		)).
		Build()
	require.NoError(t, err)
	return m
}
