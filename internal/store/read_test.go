package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCatalog_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, path := createTestStore(t)

	want := sampleCatalog()
	require.NoError(t, s.WriteCatalog(ctx, want))
	require.NoError(t, s.Close())

	ro, err := OpenReadOnly(path)
	require.NoError(t, err)
	defer ro.Close()

	got, err := ro.ReadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadCatalog_NoWorkRow(t *testing.T) {
	s, _ := createTestStore(t)

	_, err := s.ReadCatalog(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no work row")
}

func TestReadCatalog_EmptyTables(t *testing.T) {
	ctx := context.Background()
	s, _ := createTestStore(t)
	require.NoError(t, s.WriteCatalog(ctx, &Catalog{Title: "blank"}))

	got, err := s.ReadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Catalog{Title: "blank"}, got)
}

func TestReadCatalog_EntitiesOrderedByID(t *testing.T) {
	ctx := context.Background()
	s, _ := createTestStore(t)

	c := &Catalog{Title: "order", Entities: []EntityRow{
		{ID: 9, Kind: "rest", Start: "0", End: "1"},
		{ID: 2, Kind: "rest", Start: "0", End: "1"},
	}}
	require.NoError(t, s.WriteCatalog(ctx, c))

	got, err := s.ReadCatalog(ctx)
	require.NoError(t, err)
	require.Len(t, got.Entities, 2)
	assert.Equal(t, uint32(2), got.Entities[0].ID)
	assert.Equal(t, uint32(9), got.Entities[1].ID)
}

func TestReadCatalog_EventWithoutMembers(t *testing.T) {
	ctx := context.Background()
	s, _ := createTestStore(t)

	c := &Catalog{Title: "events", Events: []EventRow{
		{ID: 4, Members: []uint32{}},
		{ID: 7, Members: []uint32{2, 1}},
	}}
	require.NoError(t, s.WriteCatalog(ctx, c))

	got, err := s.ReadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, c.Events, got.Events)
}
