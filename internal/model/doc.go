// Package model is the attribute store for a single musical work.
//
// A Model is built once from three mappings keyed by ir.EntityID:
//
//	attributes: kind -> entity -> ir.Attribute
//	events:     entity -> ordered member entities
//	contexts:   entity -> Context (interval + performance context)
//
// plus an optional meter Structure that only feeds the String description.
// After New returns, nothing inside a Model changes.
//
// # Queries
//
// Lookup, Attribute, Context and Event are point lookups that report absence
// with a false second result. Entities is the compound query: entities of
// the requested kinds whose Context lies within an interval and a
// performance scope.
//
// # Indexes
//
// New builds an entity -> kind index for O(1) Attribute, and one
// ir.EntitySet posting list per kind. Entities unions the requested posting
// lists, then keeps the candidates whose context is contained.
//
// # Validation
//
// New rejects an entity stored under more than one kind, an attribute whose
// Kind differs from its group, and nil attributes (see ConstructionError).
// Contexts or event members without an attribute are accepted; lookups on
// them simply report absence.
//
// # Thread Safety
//
// A Model is immutable after New, so any number of goroutines may query it
// without locking. Query results are freshly allocated.
package model
