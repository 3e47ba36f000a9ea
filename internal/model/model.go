package model

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/roach88/scoredb/internal/ir"
	"github.com/roach88/scoredb/internal/metrical"
	"github.com/roach88/scoredb/internal/performance"
)

// Model is the immutable attribute store of one work.
type Model struct {
	attributes map[ir.AttributeKind]map[ir.EntityID]ir.Attribute
	events     map[ir.EntityID][]ir.EntityID
	contexts   map[ir.EntityID]Context
	meter      *metrical.Structure

	// Built once in New.
	kindOf   map[ir.EntityID]ir.AttributeKind
	postings map[ir.AttributeKind]*ir.EntitySet
	kinds    []ir.AttributeKind
}

// Option configures New.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger New reports to. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New builds a Model from the three entity mappings and an optional meter
// structure. The inputs are copied; later changes to them do not affect the
// Model.
//
// New returns a *ConstructionError if an entity appears under more than one
// kind, an attribute's Kind differs from its group, or an attribute is nil.
func New(
	attributes map[ir.AttributeKind]map[ir.EntityID]ir.Attribute,
	events map[ir.EntityID][]ir.EntityID,
	contexts map[ir.EntityID]Context,
	meter *metrical.Structure,
	opts ...Option,
) (*Model, error) {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	m := &Model{
		attributes: make(map[ir.AttributeKind]map[ir.EntityID]ir.Attribute, len(attributes)),
		events:     make(map[ir.EntityID][]ir.EntityID, len(events)),
		contexts:   maps.Clone(contexts),
		kindOf:     make(map[ir.EntityID]ir.AttributeKind),
		postings:   make(map[ir.AttributeKind]*ir.EntitySet, len(attributes)),
	}
	if m.contexts == nil {
		m.contexts = make(map[ir.EntityID]Context)
	}

	// Sorted traversal keeps the reported error stable across runs.
	m.kinds = ir.SortKinds(slices.Collect(maps.Keys(attributes)))
	for _, kind := range m.kinds {
		group := attributes[kind]
		posting := ir.NewEntitySet()
		copied := make(map[ir.EntityID]ir.Attribute, len(group))

		for _, id := range slices.Sorted(maps.Keys(group)) {
			attr := group[id]
			if attr == nil {
				return nil, newNilAttributeError(id, kind)
			}
			if attr.Kind() != kind {
				return nil, newKindMismatchError(id, kind, attr)
			}
			if prev, dup := m.kindOf[id]; dup {
				return nil, newDuplicateError(id, prev, kind)
			}
			m.kindOf[id] = kind
			copied[id] = attr
			posting.Add(id)
		}

		m.attributes[kind] = copied
		m.postings[kind] = posting
	}

	for id, members := range events {
		m.events[id] = slices.Clone(members)
	}

	if meter != nil {
		s := metrical.NewStructure(meter.Meters...)
		m.meter = &s
	}

	orphans := 0
	for id := range m.contexts {
		if _, ok := m.kindOf[id]; !ok {
			orphans++
		}
	}

	o.logger.Debug("model built",
		"entities", len(m.kindOf),
		"kinds", len(m.kinds),
		"contexts", len(m.contexts),
		"events", len(m.events),
		"contexts_without_attribute", orphans,
	)

	return m, nil
}

// Lookup returns the attribute and context of id. It reports false if
// either is missing.
func (m *Model) Lookup(id ir.EntityID) (ir.Attribute, Context, bool) {
	attr, ok := m.Attribute(id)
	if !ok {
		return nil, Context{}, false
	}
	ctx, ok := m.Context(id)
	if !ok {
		return nil, Context{}, false
	}
	return attr, ctx, true
}

// Context returns the context of id.
func (m *Model) Context(id ir.EntityID) (Context, bool) {
	c, ok := m.contexts[id]
	return c, ok
}

// Attribute returns the attribute of id, whichever kind it is.
func (m *Model) Attribute(id ir.EntityID) (ir.Attribute, bool) {
	kind, ok := m.kindOf[id]
	if !ok {
		return nil, false
	}
	attr, ok := m.attributes[kind][id]
	return attr, ok
}

// Event returns a copy of the members of event id, in order.
func (m *Model) Event(id ir.EntityID) ([]ir.EntityID, bool) {
	members, ok := m.events[id]
	if !ok {
		return nil, false
	}
	return slices.Clone(members), true
}

// EventIDs returns the identifiers of every event, ascending.
func (m *Model) EventIDs() []ir.EntityID {
	return slices.Sorted(maps.Keys(m.events))
}

// Entities returns the entities of the given kinds whose context lies within
// in and is performed within by.
//
// A nil kinds slice means every kind the Model holds. A non-nil empty slice
// requests no kinds and always yields an empty set. Kinds the Model does not
// hold contribute nothing.
func (m *Model) Entities(in metrical.Interval, by performance.Scope, kinds []ir.AttributeKind) *ir.EntitySet {
	candidates := m.ofKinds(kinds)
	out := ir.NewEntitySet()
	for id := range candidates.All() {
		c, ok := m.contexts[id]
		if ok && c.IsContained(in, by) {
			out.Add(id)
		}
	}
	return out
}

// ofKinds unions the posting lists of kinds. The result is always a fresh set.
func (m *Model) ofKinds(kinds []ir.AttributeKind) *ir.EntitySet {
	if kinds == nil {
		kinds = m.kinds
	}
	lists := make([]*ir.EntitySet, 0, len(kinds))
	for _, k := range kinds {
		if p, ok := m.postings[k]; ok {
			lists = append(lists, p)
		}
	}
	if len(lists) == 1 {
		return lists[0].Clone()
	}
	return ir.Union(lists...)
}

// Kinds returns the attribute kinds the Model holds, sorted.
func (m *Model) Kinds() []ir.AttributeKind {
	return slices.Clone(m.kinds)
}

// Len returns the number of entities that have an attribute.
func (m *Model) Len() int {
	return len(m.kindOf)
}

// Meter returns a copy of the meter structure, if one was supplied.
func (m *Model) Meter() (metrical.Structure, bool) {
	if m.meter == nil {
		return metrical.Structure{}, false
	}
	return metrical.NewStructure(m.meter.Meters...), true
}
