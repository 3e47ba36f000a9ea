// Package store reads and writes scoredb catalogs: SQLite files that hold a
// single prepared work.
//
// A catalog has four tables (see schema.sql):
//   - work: one row with the work's id and title
//   - meters: time signatures by bar position
//   - entities: one row per entity with its attribute and context
//   - event_members: event membership, ordered by position
//
// Times are stored as text ("1/4") so that fractional bounds survive
// unchanged. The store does not interpret attribute values; the work
// package parses and validates them when it builds a Model.
//
// # Versioning
//
// PRAGMA user_version records the catalog schema version. OpenReadOnly
// refuses files whose version differs from the one this package writes,
// which also rejects SQLite files that are not catalogs at all.
//
// # Database Configuration
//
//   - Rollback journal (catalogs are written once, then only read)
//   - 5-second busy timeout for lock contention
//   - Read-only opens use mode=ro and never create files
package store
