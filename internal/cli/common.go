package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/scoredb/internal/ir"
	"github.com/roach88/scoredb/internal/model"
	"github.com/roach88/scoredb/internal/work"
)

func newFormatter(cmd *cobra.Command, opts *RootOptions) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}

// loadWork loads path and reports a failure through formatter.
func loadWork(cmd *cobra.Command, formatter *OutputFormatter, path string) (*work.Work, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	w, err := work.Load(ctx, path, work.WithLogger(slog.Default()))
	if err != nil {
		return nil, reportLoadError(formatter, path, err)
	}
	formatter.VerboseLog("Loaded %s: %q (%d entities)", path, w.Title, w.Model.Len())
	return w, nil
}

func reportLoadError(formatter *OutputFormatter, path string, err error) error {
	code := work.ErrorCode(err)
	if code == "" {
		code = ErrCodeGeneric
	}
	_ = formatter.Error(code, err.Error(), map[string]string{"path": path})
	return WrapExitError(ExitCommandError, "failed to load "+path, err)
}

// invalidArgument reports a rejected argument and returns a command error.
func invalidArgument(formatter *OutputFormatter, message string) error {
	_ = formatter.Error(ErrCodeInvalidArgument, message, nil)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", ErrCodeInvalidArgument, message))
}

// EntityEntry is the JSON form of one entity.
type EntityEntry struct {
	ID      uint32       `json:"id"`
	Found   bool         `json:"found"`
	Kind    string       `json:"kind,omitempty"`
	Value   string       `json:"value,omitempty"`
	MIDI    *int         `json:"midi,omitempty"`
	Context *ContextInfo `json:"context,omitempty"`

	ctx *model.Context
}

// ContextInfo is the JSON form of a model.Context.
type ContextInfo struct {
	Start      string `json:"start"`
	End        string `json:"end"`
	Performer  string `json:"performer,omitempty"`
	Instrument string `json:"instrument,omitempty"`
	Voice      int    `json:"voice,omitempty"`
}

func entryFor(m *model.Model, id ir.EntityID) EntityEntry {
	e := EntityEntry{ID: uint32(id)}

	attr, hasAttr := m.Attribute(id)
	if hasAttr {
		e.Found = true
		e.Kind = string(attr.Kind())
		e.Value = attr.String()
		if p, ok := attr.(ir.Pitch); ok {
			midi := p.MIDI()
			e.MIDI = &midi
		}
	}
	if ctx, ok := m.Context(id); ok {
		e.Found = true
		e.ctx = &ctx
		e.Context = &ContextInfo{
			Start:      ctx.Interval.Start.String(),
			End:        ctx.Interval.End.String(),
			Performer:  ctx.Performance.Performer,
			Instrument: ctx.Performance.Instrument,
			Voice:      ctx.Performance.Voice,
		}
	}
	return e
}

// line renders an entry as one text row: id, kind, value, context.
func (e EntityEntry) line() string {
	if !e.Found {
		return fmt.Sprintf("%d\tnot found", e.ID)
	}
	kind, value := e.Kind, e.Value
	if kind == "" {
		kind, value = "-", "-"
	}
	ctx := "-"
	if e.ctx != nil {
		ctx = e.ctx.String()
	}
	return fmt.Sprintf("%d\t%s\t%s\t%s", e.ID, kind, value, ctx)
}
