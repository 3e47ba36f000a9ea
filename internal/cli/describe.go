package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/scoredb/internal/work"
)

// DescribeResult is the JSON payload of the describe command.
type DescribeResult struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Meter       string   `json:"meter,omitempty"`
	Bars        int      `json:"bars,omitempty"`
	Length      string   `json:"length,omitempty"`
	BarOffsets  []string `json:"bar_offsets,omitempty"`
	Entities    int      `json:"entities"`
	Events      int      `json:"events"`
	Kinds       []string `json:"kinds"`
	Description string   `json:"description"`
}

// NewDescribeCommand creates the describe command.
func NewDescribeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <work>",
		Short: "Print a work's meter and attributes",
		Long: `Load a work and print its description: the meter structure followed by
every attribute grouped by kind.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(rootOpts, args[0], cmd)
		},
	}
}

func runDescribe(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(cmd, opts)

	w, err := loadWork(cmd, formatter, path)
	if err != nil {
		return err
	}

	result, err := describeResult(w)
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), map[string]string{"path": path})
		return WrapExitError(ExitCommandError, "failed to describe "+path, err)
	}

	return formatter.Emit(result, func(out io.Writer) {
		fmt.Fprintf(out, "title: %s\nid: %s\n", w.Title, w.ID)
		fmt.Fprint(out, w.Model.String())
	})
}

func describeResult(w *work.Work) (DescribeResult, error) {
	m := w.Model
	r := DescribeResult{
		ID:          w.ID.String(),
		Title:       w.Title,
		Entities:    m.Len(),
		Events:      len(m.EventIDs()),
		Kinds:       make([]string, 0, len(m.Kinds())),
		Description: m.String(),
	}
	for _, k := range m.Kinds() {
		r.Kinds = append(r.Kinds, string(k))
	}

	meter, ok := m.Meter()
	if !ok {
		return r, nil
	}
	r.Meter = meter.String()
	r.Bars = meter.Bars()

	length, err := meter.Length()
	if err != nil {
		return DescribeResult{}, fmt.Errorf("meter length: %w", err)
	}
	r.Length = length.String()

	offsets, err := meter.Offsets()
	if err != nil {
		return DescribeResult{}, fmt.Errorf("bar offsets: %w", err)
	}
	r.BarOffsets = make([]string, len(offsets))
	for i, at := range offsets {
		r.BarOffsets[i] = at.String()
	}
	return r, nil
}
