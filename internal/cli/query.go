package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/scoredb/internal/ir"
	"github.com/roach88/scoredb/internal/metrical"
	"github.com/roach88/scoredb/internal/performance"
)

// QueryOptions holds flags for the query command.
type QueryOptions struct {
	*RootOptions
	From       string
	To         string
	Performer  string
	Instrument string
	Voice      int
	Kinds      []string
}

// QueryResult is the JSON payload of the query command.
type QueryResult struct {
	Interval string        `json:"interval"`
	Scope    string        `json:"scope"`
	Kinds    []string      `json:"kinds,omitempty"`
	Count    int           `json:"count"`
	Entities []EntityEntry `json:"entities"`
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QueryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "query <work>",
		Short: "Select entities by interval, performer scope and kind",
		Long: `Select the entities whose context lies within [--from, --to] and whose
performance matches the given performer, instrument and voice. Omitted scope
flags match anything. Without --kind every kind is searched.

Times are whole-note fractions such as 3 or 1/4.`,
		Example: `  scoredb query quartet.yaml --from 0 --to 1/2 --performer anna
  scoredb query quartet.yaml --from 0 --to 2 --kind pitch --kind rest`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "interval start (required)")
	cmd.Flags().StringVar(&opts.To, "to", "", "interval end (required)")
	cmd.Flags().StringVar(&opts.Performer, "performer", "", "restrict to a performer")
	cmd.Flags().StringVar(&opts.Instrument, "instrument", "", "restrict to an instrument")
	cmd.Flags().IntVar(&opts.Voice, "voice", 0, "restrict to a voice (0 = any)")
	cmd.Flags().StringSliceVar(&opts.Kinds, "kind", nil, "attribute kind to include (repeatable)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runQuery(opts *QueryOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(cmd, opts.RootOptions)

	in, err := queryInterval(opts.From, opts.To)
	if err != nil {
		return invalidArgument(formatter, err.Error())
	}
	if opts.Voice < 0 {
		return invalidArgument(formatter, fmt.Sprintf("voice must not be negative, got %d", opts.Voice))
	}
	scope := performance.Scope{
		Performer:  opts.Performer,
		Instrument: opts.Instrument,
		Voice:      opts.Voice,
	}

	// nil searches every kind; the flag is only non-nil when given.
	var kinds []ir.AttributeKind
	if cmd.Flags().Changed("kind") {
		kinds = make([]ir.AttributeKind, 0, len(opts.Kinds))
		for _, k := range opts.Kinds {
			kind := ir.AttributeKind(k)
			if !kind.Valid() {
				formatter.VerboseLog("Unknown kind %q matches nothing (known: %s)", k, knownKinds())
			}
			kinds = append(kinds, kind)
		}
	}

	w, err := loadWork(cmd, formatter, path)
	if err != nil {
		return err
	}

	found := w.Model.Entities(in, scope, kinds)
	formatter.VerboseLog("Query %s %s matched %d entities", in, scope, found.Len())

	result := QueryResult{
		Interval: in.String(),
		Scope:    scope.String(),
		Kinds:    opts.Kinds,
		Count:    found.Len(),
		Entities: make([]EntityEntry, 0, found.Len()),
	}
	for id := range found.All() {
		result.Entities = append(result.Entities, entryFor(w.Model, id))
	}

	return formatter.Emit(result, func(out io.Writer) {
		for _, e := range result.Entities {
			fmt.Fprintln(out, e.line())
		}
		fmt.Fprintf(out, "%d entities\n", result.Count)
	})
}

func queryInterval(from, to string) (metrical.Interval, error) {
	start, err := metrical.ParseDuration(from)
	if err != nil {
		return metrical.Interval{}, fmt.Errorf("--from: %w", err)
	}
	end, err := metrical.ParseDuration(to)
	if err != nil {
		return metrical.Interval{}, fmt.Errorf("--to: %w", err)
	}
	return metrical.NewInterval(start, end)
}

func knownKinds() string {
	names := make([]string, 0, len(ir.KnownKinds()))
	for _, k := range ir.KnownKinds() {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}
