package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/scoredb/internal/work"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid bool         `json:"valid"`
	Files []FileResult `json:"files"`
}

// FileResult is the outcome for one validated file.
type FileResult struct {
	Path     string    `json:"path"`
	Valid    bool      `json:"valid"`
	ID       string    `json:"id,omitempty"`
	Title    string    `json:"title,omitempty"`
	Entities int       `json:"entities,omitempty"`
	Error    *CLIError `json:"error,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <work>...",
		Short: "Check that works load",
		Long: `Load each work, checking the document schema, attribute values, times
and construction rules, and report every file's status. Files are checked
concurrently; every file is reported even when some fail.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args, cmd)
		},
	}
}

func runValidate(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	formatter := newFormatter(cmd, opts)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	results := work.CheckAll(ctx, paths, work.WithLogger(slog.Default()))

	summary := ValidationResult{Valid: true, Files: make([]FileResult, 0, len(results))}
	failed := 0
	for _, r := range results {
		fr := FileResult{Path: r.Path, Valid: r.Err == nil}
		if r.Err != nil {
			failed++
			summary.Valid = false
			code := work.ErrorCode(r.Err)
			if code == "" {
				code = ErrCodeGeneric
			}
			fr.Error = &CLIError{Code: code, Message: r.Err.Error()}
		} else {
			fr.ID = r.Work.ID.String()
			fr.Title = r.Work.Title
			fr.Entities = r.Work.Model.Len()
		}
		formatter.VerboseLog("Checked %s: valid=%t", r.Path, fr.Valid)
		summary.Files = append(summary.Files, fr)
	}

	if formatter.Format == "json" {
		resp := CLIResponse{Status: "ok", Data: summary}
		if failed > 0 {
			first := firstError(summary.Files)
			resp.Status = "error"
			resp.Error = &CLIError{Code: first.Code, Message: first.Message}
		}
		if err := formatter.encode(resp); err != nil {
			return err
		}
	} else {
		for _, fr := range summary.Files {
			if fr.Valid {
				fmt.Fprintf(formatter.Writer, "✓ %s (%s, %d entities)\n", fr.Path, fr.Title, fr.Entities)
				continue
			}
			fmt.Fprintf(formatter.Writer, "✗ %s\n  %s\n", fr.Path, fr.Error.Message)
		}
		if failed == 0 {
			fmt.Fprintln(formatter.Writer, "✓ All works valid")
		}
	}

	if failed > 0 {
		// Validation failures = exit code 1
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed for %d of %d file(s)", failed, len(paths)))
	}
	return nil
}

func firstError(files []FileResult) *CLIError {
	for _, f := range files {
		if f.Error != nil {
			return f.Error
		}
	}
	return &CLIError{Code: ErrCodeGeneric, Message: "validation failed"}
}
