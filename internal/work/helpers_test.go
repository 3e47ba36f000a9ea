package work_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/scoredb/internal/work"
)

// writeCatalog stores doc in a fresh SQLite catalog under t.TempDir().
func writeCatalog(t *testing.T, doc *work.Document) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "work.db")
	require.NoError(t, work.ExportSQLite(context.Background(), path, doc))
	return path
}

// writeFile writes data to name under t.TempDir() and returns the path.
func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}
