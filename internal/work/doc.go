// Package work assembles a model.Model from a prepared work description.
//
// It is the construction boundary of scoredb: callers hand it a YAML or
// JSON document, or a SQLite catalog, and get back a Work whose Model is
// ready to query.
//
// # Document Format
//
//	id: 6f1c...          # optional UUID; derived from the title when absent
//	title: Quartet
//	meter: ["4/4", "4/4"]
//	entities:
//	  - {id: 1, kind: pitch, value: C4, start: 0, end: 1/4,
//	     performer: anna, instrument: violin, voice: 1}
//	events:
//	  - {id: 100, members: [1, 2, 3]}
//
// Times use "n" or "n/d" whole-note fractions. Every document is unified
// with the embedded CUE definition #Work (schema.cue) before it is built, so
// unknown fields, unknown kinds and malformed times are rejected with the
// offending document path.
//
// # SQLite Catalogs
//
// ImportSQLite reads a catalog written by the store package into a Document,
// opening it read-only. ExportSQLite writes a Document into a catalog.
//
// # Text Normalization
//
// Performer, instrument and lyric text is NFC-normalized so that a name
// typed with combining marks matches its precomposed form in a Scope.
package work
