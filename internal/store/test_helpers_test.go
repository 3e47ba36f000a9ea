package store

import (
	"path/filepath"
	"testing"
)

// createTestStore creates a new catalog under t.TempDir() and returns it
// with its path.
func createTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, path
}

// sampleCatalog returns a small catalog with fractional times and an event.
func sampleCatalog() *Catalog {
	return &Catalog{
		ID:     "3f0a9d1e-6c55-4b8e-a7f2-0d9b1c2e4a60",
		Title:  "Sample",
		Meters: []string{"3/4", "3/4", "2/4"},
		Entities: []EntityRow{
			{ID: 1, Kind: "pitch", Value: "C4", Start: "0", End: "1/4", Performer: "anna", Instrument: "violin", Voice: 1},
			{ID: 2, Kind: "rest", Start: "1/4", End: "1/2"},
			{ID: 3, Kind: "lyric", Value: "la", Start: "1/2", End: "3/4", Performer: "cara"},
		},
		Events: []EventRow{{ID: 10, Members: []uint32{3, 1}}},
	}
}
