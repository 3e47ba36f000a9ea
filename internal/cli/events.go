package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// EventEntry is the JSON form of one event.
type EventEntry struct {
	ID      uint32   `json:"id"`
	Members []uint32 `json:"members"`
}

// EventsResult is the JSON payload of the events command.
type EventsResult struct {
	Events []EventEntry `json:"events"`
}

// NewEventsCommand creates the events command.
func NewEventsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "events <work>",
		Short:         "List a work's events and their members",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvents(rootOpts, args[0], cmd)
		},
	}
}

func runEvents(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(cmd, opts)

	w, err := loadWork(cmd, formatter, path)
	if err != nil {
		return err
	}

	result := EventsResult{Events: []EventEntry{}}
	for _, id := range w.Model.EventIDs() {
		members, _ := w.Model.Event(id)
		entry := EventEntry{ID: uint32(id), Members: make([]uint32, len(members))}
		for i, m := range members {
			entry.Members[i] = uint32(m)
		}
		result.Events = append(result.Events, entry)
	}

	return formatter.Emit(result, func(out io.Writer) {
		if len(result.Events) == 0 {
			fmt.Fprintln(out, "no events")
			return
		}
		for _, e := range result.Events {
			members := make([]string, len(e.Members))
			for i, m := range e.Members {
				members[i] = fmt.Sprint(m)
			}
			fmt.Fprintf(out, "%d: %s\n", e.ID, strings.Join(members, ", "))
		}
	})
}
