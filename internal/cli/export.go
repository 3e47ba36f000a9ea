package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/scoredb/internal/work"
)

// ExportResult is the JSON payload of the export command.
type ExportResult struct {
	Source   string `json:"source"`
	Catalog  string `json:"catalog"`
	ID       string `json:"id"`
	Entities int    `json:"entities"`
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export <work> <catalog.db>",
		Short: "Write a work into a SQLite catalog",
		Long: `Load a work, check that it builds, and write it to a SQLite catalog.
An existing catalog at the destination is replaced.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(rootOpts, args[0], args[1], cmd)
		},
	}
}

func runExport(opts *RootOptions, src, dst string, cmd *cobra.Command) error {
	formatter := newFormatter(cmd, opts)

	switch strings.ToLower(filepath.Ext(dst)) {
	case ".db", ".sqlite", ".sqlite3":
	default:
		return invalidArgument(formatter, fmt.Sprintf("catalog path %q must end in .db, .sqlite or .sqlite3", dst))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	doc, err := work.ReadDocument(ctx, src)
	if err != nil {
		return reportLoadError(formatter, src, err)
	}
	w, err := doc.Build(work.WithLogger(slog.Default()))
	if err != nil {
		return reportLoadError(formatter, src, err)
	}

	if err := work.ExportSQLite(ctx, dst, doc); err != nil {
		_ = formatter.Error(work.ErrorCode(err), err.Error(), map[string]string{"path": dst})
		return WrapExitError(ExitCommandError, "failed to export "+dst, err)
	}
	formatter.VerboseLog("Exported %s to %s", src, dst)

	result := ExportResult{Source: src, Catalog: dst, ID: w.ID.String(), Entities: w.Model.Len()}
	return formatter.Emit(result, func(out io.Writer) {
		fmt.Fprintf(out, "✓ %s → %s (%d entities)\n", src, dst, result.Entities)
	})
}
