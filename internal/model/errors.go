package model

import (
	"fmt"
	"strings"

	"github.com/roach88/scoredb/internal/ir"
)

// ConstructionError reports input that New refuses to index.
type ConstructionError struct {
	// Code identifies the error category.
	Code ConstructionErrorCode

	// Entity is the offending entity.
	Entity ir.EntityID

	// Kinds lists the groups involved, sorted.
	Kinds []ir.AttributeKind

	// Message is a human-readable description.
	Message string
}

// ConstructionErrorCode categorizes construction errors.
type ConstructionErrorCode string

const (
	// ErrCodeDuplicateEntity indicates an entity stored under more than one kind.
	ErrCodeDuplicateEntity ConstructionErrorCode = "DUPLICATE_ENTITY"

	// ErrCodeKindMismatch indicates an attribute whose Kind differs from its group.
	ErrCodeKindMismatch ConstructionErrorCode = "KIND_MISMATCH"

	// ErrCodeNilAttribute indicates a group holding a nil attribute.
	ErrCodeNilAttribute ConstructionErrorCode = "NIL_ATTRIBUTE"
)

// Error implements the error interface.
func (e *ConstructionError) Error() string {
	if len(e.Kinds) > 0 {
		kinds := make([]string, len(e.Kinds))
		for i, k := range e.Kinds {
			kinds[i] = string(k)
		}
		return fmt.Sprintf("%s: %s (entity=%d, kinds=%s)", e.Code, e.Message, e.Entity, strings.Join(kinds, ","))
	}
	return fmt.Sprintf("%s: %s (entity=%d)", e.Code, e.Message, e.Entity)
}

func newDuplicateError(id ir.EntityID, a, b ir.AttributeKind) *ConstructionError {
	return &ConstructionError{
		Code:    ErrCodeDuplicateEntity,
		Entity:  id,
		Kinds:   ir.SortKinds([]ir.AttributeKind{a, b}),
		Message: "entity has attributes of more than one kind",
	}
}

func newKindMismatchError(id ir.EntityID, group ir.AttributeKind, attr ir.Attribute) *ConstructionError {
	return &ConstructionError{
		Code:    ErrCodeKindMismatch,
		Entity:  id,
		Kinds:   ir.SortKinds([]ir.AttributeKind{group, attr.Kind()}),
		Message: fmt.Sprintf("%s attribute stored under %q", attr.Kind(), group),
	}
}

// newNilAttributeError reports a nil attribute, with the group it was stored
// under when there is one.
func newNilAttributeError(id ir.EntityID, group ...ir.AttributeKind) *ConstructionError {
	return &ConstructionError{
		Code:    ErrCodeNilAttribute,
		Entity:  id,
		Kinds:   group,
		Message: "attribute is nil",
	}
}
