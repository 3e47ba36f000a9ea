package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/roach88/scoredb/internal/ir"
	"github.com/roach88/scoredb/internal/metrical"
	"github.com/roach88/scoredb/internal/model"
	"github.com/roach88/scoredb/internal/performance"
	"github.com/roach88/scoredb/internal/work"
)

// Harness executes the steps of one scenario against a loaded Model.
type Harness struct {
	model  *model.Model
	logger *slog.Logger
}

// Run loads the scenario's work and executes every step.
//
// Execution flow:
// 1. Load the work (logs suppressed)
// 2. Execute queries, lookups and event checks, tracing each
// 3. Evaluate assertions
//
// An error is returned only when the work cannot be loaded or a step is
// malformed; mismatches are reported in the Result.
func Run(ctx context.Context, scenario *Scenario) (*Result, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil)) // Suppress logs in tests

	w, err := work.Load(ctx, scenario.Work, work.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to load work: %w", err)
	}

	h := &Harness{model: w.Model, logger: logger}
	result := NewResult()

	if err := h.executeQueries(scenario.Queries, result); err != nil {
		return nil, fmt.Errorf("failed to execute queries: %w", err)
	}
	h.executeLookups(scenario.Lookups, result)
	h.executeEvents(scenario.Events, result)

	for _, msg := range EvaluateAssertions(w.Model, scenario.Assertions) {
		result.AddError(msg)
	}

	return result, nil
}

func (h *Harness) executeQueries(steps []QueryStep, result *Result) error {
	for i, step := range steps {
		in, err := stepInterval(step)
		if err != nil {
			return fmt.Errorf("query %d: %w", i, err)
		}
		scope := performance.Scope{
			Performer:  step.Performer,
			Instrument: step.Instrument,
			Voice:      step.Voice,
		}

		var kinds []ir.AttributeKind
		if step.Kinds != nil {
			kinds = make([]ir.AttributeKind, len(step.Kinds))
			for j, k := range step.Kinds {
				kinds[j] = ir.AttributeKind(k)
			}
		}

		got := toUint32(h.model.Entities(in, scope, kinds).IDs())
		input := fmt.Sprintf("%s %s kinds=%s", in, scope, kindsLabel(step.Kinds))
		result.AddTrace("query", input, got)

		want := slices.Sorted(slices.Values(step.Expect))
		if !slices.Equal(got, want) {
			result.AddError(fmt.Sprintf("query %d (%s): got %v, want %v", i, input, got, want))
		}
	}
	return nil
}

func (h *Harness) executeLookups(steps []LookupStep, result *Result) {
	for i, step := range steps {
		id := ir.EntityID(step.ID)
		attr, ctx, found := h.model.Lookup(id)

		output := "not found"
		if found {
			output = fmt.Sprintf("%s %s %s", attr.Kind(), attr, ctx)
		}
		result.AddTrace("lookup", id.String(), output)

		wantFound := step.Found == nil || *step.Found
		if found != wantFound {
			result.AddError(fmt.Sprintf("lookup %d (entity %d): found=%t, want %t", i, step.ID, found, wantFound))
			continue
		}
		if !found {
			continue
		}
		if step.Kind != "" && string(attr.Kind()) != step.Kind {
			result.AddError(fmt.Sprintf("lookup %d (entity %d): kind %s, want %s", i, step.ID, attr.Kind(), step.Kind))
		}
		if step.Value != "" && attr.String() != step.Value {
			result.AddError(fmt.Sprintf("lookup %d (entity %d): value %s, want %s", i, step.ID, attr, step.Value))
		}
		if step.Context != "" && ctx.String() != step.Context {
			result.AddError(fmt.Sprintf("lookup %d (entity %d): context %s, want %s", i, step.ID, ctx, step.Context))
		}
	}
}

func (h *Harness) executeEvents(steps []EventStep, result *Result) {
	for i, step := range steps {
		members, ok := h.model.Event(ir.EntityID(step.ID))
		got := toUint32(members)
		result.AddTrace("event", ir.EntityID(step.ID).String(), got)

		if !ok {
			result.AddError(fmt.Sprintf("event %d (id %d): not found", i, step.ID))
			continue
		}
		if !slices.Equal(got, step.Members) {
			result.AddError(fmt.Sprintf("event %d (id %d): members %v, want %v", i, step.ID, got, step.Members))
		}
	}
}

func stepInterval(step QueryStep) (metrical.Interval, error) {
	start, err := metrical.ParseDuration(string(step.From))
	if err != nil {
		return metrical.Interval{}, err
	}
	end, err := metrical.ParseDuration(string(step.To))
	if err != nil {
		return metrical.Interval{}, err
	}
	return metrical.NewInterval(start, end)
}

func kindsLabel(kinds []string) string {
	switch {
	case kinds == nil:
		return "*"
	case len(kinds) == 0:
		return "none"
	default:
		return strings.Join(kinds, ",")
	}
}

func toUint32(ids []ir.EntityID) []uint32 {
	out := make([]uint32, len(ids))
	for i, id := range ids {
		out[i] = uint32(id)
	}
	return out
}
