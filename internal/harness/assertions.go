package harness

import (
	"fmt"
	"slices"

	"github.com/roach88/scoredb/internal/ir"
	"github.com/roach88/scoredb/internal/model"
)

// EvaluateAssertions checks every assertion against m and returns one
// message per failure.
func EvaluateAssertions(m *model.Model, assertions []Assertion) []string {
	var errs []string
	for i, a := range assertions {
		if msg := evaluateAssertion(m, a); msg != "" {
			errs = append(errs, fmt.Sprintf("assertions[%d] (%s): %s", i, a.Type, msg))
		}
	}
	return errs
}

func evaluateAssertion(m *model.Model, a Assertion) string {
	switch a.Type {
	case AssertEntityCount:
		if got := m.Len(); got != a.Count {
			return fmt.Sprintf("got %d entities, want %d", got, a.Count)
		}
	case AssertKinds:
		got := kindNames(m.Kinds())
		want := a.Kinds
		if want == nil {
			want = []string{}
		}
		if !slices.Equal(got, want) {
			return fmt.Sprintf("got kinds %v, want %v", got, want)
		}
	case AssertMeter:
		got := "none"
		if s, ok := m.Meter(); ok {
			got = s.String()
		}
		if got != a.Meter {
			return fmt.Sprintf("got meter %q, want %q", got, a.Meter)
		}
	default:
		return fmt.Sprintf("unknown assertion type %q", a.Type)
	}
	return ""
}

func kindNames(kinds []ir.AttributeKind) []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}
