package harness

// TraceEvent records one executed step: what was asked and what the Model
// answered.
type TraceEvent struct {
	Step   string `json:"step"` // "query", "lookup" or "event"
	Input  string `json:"input"`
	Output any    `json:"output"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true if every step and assertion matched.
	Pass bool `json:"pass"`

	// Trace contains one event per executed step, in scenario order:
	// queries, then lookups, then events.
	Trace []TraceEvent `json:"trace"`

	// Errors contains mismatch messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends a step to the trace.
func (r *Result) AddTrace(step, input string, output any) {
	r.Trace = append(r.Trace, TraceEvent{Step: step, Input: input, Output: output})
}
