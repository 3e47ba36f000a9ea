package work

import (
	"context"
	"errors"
	"os"

	"github.com/roach88/scoredb/internal/store"
)

// ImportSQLite reads the catalog at path into a Document. The database is
// opened read-only.
func ImportSQLite(ctx context.Context, path string) (*Document, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Path: path, Message: "cannot open catalog", Err: err}
	}

	st, err := store.OpenReadOnly(path)
	if err != nil {
		msg := "failed to open catalog"
		if errors.Is(err, store.ErrNotCatalog) {
			msg = "not a catalog"
		}
		return nil, &LoadError{Code: ErrCodeCatalog, Path: path, Message: msg, Err: err}
	}
	defer st.Close()

	c, err := st.ReadCatalog(ctx)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeCatalog, Path: path, Message: "failed to read catalog", Err: err}
	}
	return fromCatalog(c), nil
}

// ExportSQLite writes doc to a catalog at path, replacing any work the file
// already holds.
func ExportSQLite(ctx context.Context, path string, doc *Document) error {
	st, err := store.Open(path)
	if err != nil {
		return &LoadError{Code: ErrCodeCatalog, Path: path, Message: "failed to open catalog", Err: err}
	}
	defer st.Close()

	if err := st.WriteCatalog(ctx, toCatalog(doc)); err != nil {
		return &LoadError{Code: ErrCodeCatalog, Path: path, Message: "failed to write catalog", Err: err}
	}
	return nil
}

func fromCatalog(c *store.Catalog) *Document {
	doc := &Document{ID: c.ID, Title: c.Title, Meter: c.Meters}
	for _, e := range c.Entities {
		doc.Entities = append(doc.Entities, EntityDocument{
			ID:         e.ID,
			Kind:       e.Kind,
			Value:      e.Value,
			Start:      Time(e.Start),
			End:        Time(e.End),
			Performer:  e.Performer,
			Instrument: e.Instrument,
			Voice:      e.Voice,
		})
	}
	for _, ev := range c.Events {
		doc.Events = append(doc.Events, EventDocument{ID: ev.ID, Members: ev.Members})
	}
	return doc
}

func toCatalog(doc *Document) *store.Catalog {
	c := &store.Catalog{ID: doc.ID, Title: doc.Title, Meters: doc.Meter}
	for _, e := range doc.Entities {
		c.Entities = append(c.Entities, store.EntityRow{
			ID:         e.ID,
			Kind:       e.Kind,
			Value:      e.Value,
			Start:      string(e.Start),
			End:        string(e.End),
			Performer:  e.Performer,
			Instrument: e.Instrument,
			Voice:      e.Voice,
		})
	}
	for _, ev := range doc.Events {
		c.Events = append(c.Events, store.EventRow{ID: ev.ID, Members: ev.Members})
	}
	return c
}
