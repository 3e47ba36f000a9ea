package model

import (
	"slices"

	"github.com/roach88/scoredb/internal/ir"
	"github.com/roach88/scoredb/internal/metrical"
)

// Builder assembles the mappings New takes one entity at a time.
// A Builder is not safe for concurrent use.
type Builder struct {
	attributes map[ir.AttributeKind]map[ir.EntityID]ir.Attribute
	events     map[ir.EntityID][]ir.EntityID
	contexts   map[ir.EntityID]Context
	meter      *metrical.Structure

	// nils holds ids added with a nil attribute, which has no kind to be
	// grouped under.
	nils []ir.EntityID
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		attributes: make(map[ir.AttributeKind]map[ir.EntityID]ir.Attribute),
		events:     make(map[ir.EntityID][]ir.EntityID),
		contexts:   make(map[ir.EntityID]Context),
	}
}

// Add records attr and ctx for id. The attribute is grouped under
// attr.Kind(). Adding the same id twice with different kinds is reported by
// Build.
func (b *Builder) Add(id ir.EntityID, attr ir.Attribute, ctx Context) *Builder {
	b.AddAttribute(id, attr)
	b.contexts[id] = ctx
	return b
}

// AddAttribute records attr for id without a context. A nil attr is
// reported by Build.
func (b *Builder) AddAttribute(id ir.EntityID, attr ir.Attribute) *Builder {
	if attr == nil {
		b.nils = append(b.nils, id)
		return b
	}
	kind := attr.Kind()
	group, ok := b.attributes[kind]
	if !ok {
		group = make(map[ir.EntityID]ir.Attribute)
		b.attributes[kind] = group
	}
	group[id] = attr
	return b
}

// AddContext records ctx for id without an attribute.
func (b *Builder) AddContext(id ir.EntityID, ctx Context) *Builder {
	b.contexts[id] = ctx
	return b
}

// AddEvent records id as an event grouping members, in order.
func (b *Builder) AddEvent(id ir.EntityID, members ...ir.EntityID) *Builder {
	b.events[id] = append([]ir.EntityID(nil), members...)
	return b
}

// SetMeter sets the meter structure.
func (b *Builder) SetMeter(s metrical.Structure) *Builder {
	b.meter = &s
	return b
}

// Build validates the accumulated mappings and returns the Model.
func (b *Builder) Build(opts ...Option) (*Model, error) {
	if len(b.nils) > 0 {
		return nil, newNilAttributeError(slices.Min(b.nils))
	}
	return New(b.attributes, b.events, b.contexts, b.meter, opts...)
}
