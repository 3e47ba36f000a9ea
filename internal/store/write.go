package store

import (
	"context"
	"errors"
	"fmt"
)

// ErrReadOnly is returned by writes on a store opened with OpenReadOnly.
var ErrReadOnly = errors.New("store is read-only")

// WriteCatalog replaces the catalog's content with c in one transaction.
func (s *Store) WriteCatalog(ctx context.Context, c *Catalog) error {
	if s.readOnly {
		return fmt.Errorf("write catalog: %w", ErrReadOnly)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write catalog: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	for _, table := range []string{"work", "meters", "entities", "event_members", "events"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("write catalog: clear %s: %w", table, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO work (id, title) VALUES (?, ?)`, c.ID, c.Title); err != nil {
		return fmt.Errorf("write catalog: work: %w", err)
	}

	for i, sig := range c.Meters {
		if _, err := tx.ExecContext(ctx, `INSERT INTO meters (position, signature) VALUES (?, ?)`, i, sig); err != nil {
			return fmt.Errorf("write catalog: meter %d: %w", i, err)
		}
	}

	for _, e := range c.Entities {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO entities
			(id, kind, value, start_time, end_time, performer, instrument, voice)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`,
			e.ID, e.Kind, e.Value, e.Start, e.End, e.Performer, e.Instrument, e.Voice,
		)
		if err != nil {
			return fmt.Errorf("write catalog: entity %d: %w", e.ID, err)
		}
	}

	for _, ev := range c.Events {
		if _, err := tx.ExecContext(ctx, `INSERT INTO events (id) VALUES (?)`, ev.ID); err != nil {
			return fmt.Errorf("write catalog: event %d: %w", ev.ID, err)
		}
		for pos, m := range ev.Members {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO event_members (event_id, position, member_id) VALUES (?, ?, ?)`,
				ev.ID, pos, m,
			)
			if err != nil {
				return fmt.Errorf("write catalog: event %d: %w", ev.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write catalog: commit: %w", err)
	}
	return nil
}
