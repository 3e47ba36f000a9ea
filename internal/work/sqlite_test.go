package work_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/scoredb/internal/ir"
	"github.com/roach88/scoredb/internal/store"
	"github.com/roach88/scoredb/internal/testutil"
	"github.com/roach88/scoredb/internal/work"
)

func TestImportSQLite_RoundTrip(t *testing.T) {
	want := decodeFile(t, "testdata/quartet.yaml")
	path := writeCatalog(t, want)

	got, err := work.ImportSQLite(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	w, err := got.Build()
	require.NoError(t, err)
	assert.Equal(t, testutil.Quartet(t).String(), w.Model.String())
}

func TestImportSQLite_KeepsMemberOrder(t *testing.T) {
	doc := &work.Document{
		Title: "order",
		Events: []work.EventDocument{
			{ID: 1, Members: []uint32{30, 10, 20}},
			{ID: 2, Members: []uint32{5}},
		},
	}

	got, err := work.ImportSQLite(context.Background(), writeCatalog(t, doc))
	require.NoError(t, err)
	assert.Equal(t, doc.Events, got.Events)
	assert.Empty(t, got.Entities)
}

func TestImportSQLite_KeepsEventsWithoutMembers(t *testing.T) {
	ctx := context.Background()
	src := writeFile(t, "empty-event.yaml", `title: Silence
entities:
  - {id: 1, kind: rest, start: 0, end: 1}
events:
  - {id: 9, members: []}
  - {id: 10, members: [1]}
`)

	doc, err := work.ReadDocument(ctx, src)
	require.NoError(t, err)
	fromYAML, err := doc.Build()
	require.NoError(t, err)
	_, ok := fromYAML.Model.Event(9)
	require.True(t, ok)

	w, err := work.Load(ctx, writeCatalog(t, doc))
	require.NoError(t, err)

	members, ok := w.Model.Event(9)
	assert.True(t, ok, "an event with no members survives the catalog")
	assert.Empty(t, members)

	members, ok = w.Model.Event(10)
	assert.True(t, ok)
	assert.Equal(t, []ir.EntityID{1}, members)
	assert.Equal(t, fromYAML.Model.String(), w.Model.String())
}

func TestImportSQLite_MissingFile(t *testing.T) {
	_, err := work.ImportSQLite(context.Background(), filepath.Join(t.TempDir(), "nope.db"))
	require.Error(t, err)
	assert.Equal(t, work.ErrCodeNotFound, work.ErrorCode(err))
}

func TestImportSQLite_NotACatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE unrelated (x INTEGER)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = work.ImportSQLite(context.Background(), path)
	require.Error(t, err)
	assert.Equal(t, work.ErrCodeCatalog, work.ErrorCode(err))
}

func TestImportSQLite_NoWorkRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.db")
	st, err := store.Open(path)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	_, err = work.ImportSQLite(context.Background(), path)
	require.Error(t, err)
	assert.Equal(t, work.ErrCodeCatalog, work.ErrorCode(err))
}

func TestExportSQLite_Overwrites(t *testing.T) {
	ctx := context.Background()
	path := writeCatalog(t, decodeFile(t, "testdata/quartet.yaml"))

	duet := decodeFile(t, "testdata/duet.json")
	require.NoError(t, work.ExportSQLite(ctx, path, duet))

	got, err := work.ImportSQLite(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "Duet", got.Title)
	assert.Equal(t, duet.ID, got.ID)
	assert.Len(t, got.Entities, 2)
	assert.Empty(t, got.Events)
}
