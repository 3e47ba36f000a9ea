package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ReadCatalog reads the whole catalog. Entities are ordered by id, events by
// id and their members by position.
func (s *Store) ReadCatalog(ctx context.Context) (*Catalog, error) {
	c := &Catalog{}

	err := s.db.QueryRowContext(ctx, `SELECT id, title FROM work LIMIT 1`).Scan(&c.ID, &c.Title)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("read work: catalog has no work row")
	}
	if err != nil {
		return nil, fmt.Errorf("read work: %w", err)
	}

	if c.Meters, err = s.readMeters(ctx); err != nil {
		return nil, fmt.Errorf("read meters: %w", err)
	}
	if c.Entities, err = s.readEntities(ctx); err != nil {
		return nil, fmt.Errorf("read entities: %w", err)
	}
	if c.Events, err = s.readEvents(ctx); err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}

	return c, nil
}

func (s *Store) readMeters(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT signature FROM meters ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meters []string
	for rows.Next() {
		var sig string
		if err := rows.Scan(&sig); err != nil {
			return nil, err
		}
		meters = append(meters, sig)
	}
	return meters, rows.Err()
}

func (s *Store) readEntities(ctx context.Context) ([]EntityRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, value, start_time, end_time, performer, instrument, voice
		FROM entities
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entities []EntityRow
	for rows.Next() {
		var e EntityRow
		if err := rows.Scan(&e.ID, &e.Kind, &e.Value, &e.Start, &e.End, &e.Performer, &e.Instrument, &e.Voice); err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	return entities, rows.Err()
}

// readEvents joins events with their members so that events without
// members are kept, with an empty non-nil Members slice.
func (s *Store) readEvents(ctx context.Context) ([]EventRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.id, m.member_id
		FROM events e
		LEFT JOIN event_members m ON m.event_id = e.id
		ORDER BY e.id ASC, m.position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []EventRow
	for rows.Next() {
		var eventID uint32
		var memberID sql.NullInt64
		if err := rows.Scan(&eventID, &memberID); err != nil {
			return nil, err
		}
		if n := len(events); n == 0 || events[n-1].ID != eventID {
			events = append(events, EventRow{ID: eventID, Members: []uint32{}})
		}
		if memberID.Valid {
			last := &events[len(events)-1]
			last.Members = append(last.Members, uint32(memberID.Int64))
		}
	}
	return events, rows.Err()
}
