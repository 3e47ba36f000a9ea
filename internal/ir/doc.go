// Package ir provides the foundational value types for scoredb.
//
// This package contains type definitions only. All other internal packages
// import ir; ir imports nothing internal. This keeps the identifier and
// attribute vocabulary at the bottom of the dependency graph.
//
// Key design constraints:
//   - Entity identifiers are assigned by the caller, never generated here
//   - Attribute is a sealed union; AttributeKind is its discriminant
//   - NO float types in attribute values (pitch is spelled, not measured)
//   - EntitySet iteration is always ascending for deterministic output
package ir
