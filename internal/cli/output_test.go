package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/scoredb/internal/work"
)

func TestOutputFormatter_JSONEnvelope(t *testing.T) {
	tests := []struct {
		name       string
		write      func(f *OutputFormatter) error
		wantStatus string
		wantCode   string
	}{
		{
			name:       "success",
			write:      func(f *OutputFormatter) error { return f.Success(map[string]int{"entities": 8}) },
			wantStatus: "ok",
		},
		{
			name: "error with details",
			write: func(f *OutputFormatter) error {
				return f.Error("E201", "document does not match schema", map[string]string{"path": "quartet.yaml"})
			},
			wantStatus: "error",
			wantCode:   "E201",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			require.NoError(t, tt.write(&OutputFormatter{Format: "json", Writer: buf}))

			var resp CLIResponse
			require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			if tt.wantCode == "" {
				assert.Nil(t, resp.Error)
				assert.Equal(t, map[string]any{"entities": float64(8)}, resp.Data)
				return
			}
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, map[string]any{"path": "quartet.yaml"}, resp.Error.Details)
		})
	}
}

func TestOutputFormatter_TextError(t *testing.T) {
	details := map[string]string{"path": "quartet.yaml"}

	quiet := &bytes.Buffer{}
	require.NoError(t, (&OutputFormatter{Format: "text", Writer: quiet}).Error("E205", "cannot read document", details))
	assert.Equal(t, "Error [E205]: cannot read document\n", quiet.String())

	loud := &bytes.Buffer{}
	require.NoError(t, (&OutputFormatter{Format: "text", Writer: loud, Verbose: true}).Error("E205", "cannot read document", details))
	assert.Contains(t, loud.String(), "Details: map[path:quartet.yaml]")
}

func TestOutputFormatter_VerboseLogGoesToErrWriter(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: out, ErrWriter: errOut, Verbose: true}

	f.VerboseLog("Loaded %s", "quartet.yaml")
	assert.Empty(t, out.String(), "JSON output stays parseable")
	assert.Equal(t, "Loaded quartet.yaml\n", errOut.String())

	silent := &bytes.Buffer{}
	(&OutputFormatter{Format: "text", Writer: silent}).VerboseLog("Loaded %s", "quartet.yaml")
	assert.Empty(t, silent.String())
}

func TestOutputFormatter_Emit(t *testing.T) {
	data := map[string]int{"count": 42}
	text := func(w io.Writer) { fmt.Fprintln(w, "42 entities") }

	buf := &bytes.Buffer{}
	require.NoError(t, (&OutputFormatter{Format: "text", Writer: buf}).Emit(data, text))
	assert.Equal(t, "42 entities\n", buf.String())

	buf.Reset()
	require.NoError(t, (&OutputFormatter{Format: "json", Writer: buf}).Emit(data, text))
	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, map[string]any{"count": float64(42)}, resp.Data)
}

func TestReportLoadError_KeepsLoaderCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"schema", &work.LoadError{Code: work.ErrCodeSchema, Message: "title: missing"}, "E201"},
		{"parse", &work.LoadError{Code: work.ErrCodeParse, Message: "bad yaml"}, "E202"},
		{"invalid value", &work.LoadError{Code: work.ErrCodeInvalidValue, Field: "entities.0.value", Message: "bad pitch"}, "E203"},
		{"construction", &work.LoadError{Code: work.ErrCodeConstruction, Message: "repeated id"}, "E204"},
		{"not found", &work.LoadError{Code: work.ErrCodeNotFound, Err: os.ErrNotExist}, "E205"},
		{"wrapped catalog", fmt.Errorf("import: %w", &work.LoadError{Code: work.ErrCodeCatalog, Message: "not a catalog"}), "E207"},
		{"canceled", context.Canceled, ErrCodeGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			err := reportLoadError(&OutputFormatter{Format: "json", Writer: buf}, "quartet.yaml", tt.err)

			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.ErrorIs(t, err, tt.err, "the loader error stays in the chain")

			var resp CLIResponse
			require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.err.Error(), resp.Error.Message)
			assert.Equal(t, map[string]any{"path": "quartet.yaml"}, resp.Error.Details)
		})
	}
}

func TestInvalidArgument(t *testing.T) {
	buf := &bytes.Buffer{}
	err := invalidArgument(&OutputFormatter{Format: "text", Writer: buf}, "--from: invalid duration")

	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Equal(t, "E002: --from: invalid duration", err.Error())
	assert.Equal(t, "Error [E002]: --from: invalid duration\n", buf.String())
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad")))

	wrapped := fmt.Errorf("outer: %w", WrapExitError(ExitFailure, "invalid", errors.New("cause")))
	assert.Equal(t, ExitFailure, GetExitCode(wrapped))
	assert.Equal(t, "outer: invalid: cause", wrapped.Error())
}
