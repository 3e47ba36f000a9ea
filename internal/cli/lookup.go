package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/scoredb/internal/ir"
)

// LookupResult is the JSON payload of the lookup command.
type LookupResult struct {
	Entities []EntityEntry `json:"entities"`
}

// NewLookupCommand creates the lookup command.
func NewLookupCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <work> <id>...",
		Short: "Show the attribute and context of entities",
		Long: `Print the attribute and performance context of each entity id.
Ids the work does not know are reported as not found; that is not an error.`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(rootOpts, args[0], args[1:], cmd)
		},
	}
}

func runLookup(opts *RootOptions, path string, rawIDs []string, cmd *cobra.Command) error {
	formatter := newFormatter(cmd, opts)

	ids, err := parseEntityIDs(rawIDs)
	if err != nil {
		return invalidArgument(formatter, err.Error())
	}

	w, err := loadWork(cmd, formatter, path)
	if err != nil {
		return err
	}

	result := LookupResult{Entities: make([]EntityEntry, 0, len(ids))}
	for _, id := range ids {
		result.Entities = append(result.Entities, entryFor(w.Model, id))
	}

	return formatter.Emit(result, func(out io.Writer) {
		for _, e := range result.Entities {
			fmt.Fprintln(out, e.line())
		}
	})
}

func parseEntityIDs(raw []string) ([]ir.EntityID, error) {
	ids := make([]ir.EntityID, 0, len(raw))
	for _, s := range raw {
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid entity id %q", s)
		}
		ids = append(ids, ir.EntityID(n))
	}
	return ids, nil
}
