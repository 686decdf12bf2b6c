// Package formstate implements the editing and validation core behind
// schema-driven forms: path-addressed reads and writes over JSON document
// values, and a schema walker that reports violations keyed by path.
//
// The implementation lives in pkg/document, pkg/schema and pkg/validate;
// this package re-exports the entry points so small consumers only import
// one path. The intended control flow is the one form UIs follow: apply
// each edit with Set, then run Validate over the new document and use the
// error map to drive per-field display and submit enablement.
package formstate

import (
	"github.com/goliatone/go-formstate/pkg/document"
	"github.com/goliatone/go-formstate/pkg/path"
	"github.com/goliatone/go-formstate/pkg/schema"
	"github.com/goliatone/go-formstate/pkg/validate"
)

// Field re-exports the schema field model.
type Field = schema.Field

// Kind re-exports the field kind enumeration.
type Kind = schema.Kind

// Option re-exports the enum choice type.
type Option = schema.Option

// Errors re-exports the path-keyed validation result.
type Errors = validate.Errors

// Path re-exports the document location type.
type Path = path.Path

// Step re-exports a single path step.
type Step = path.Step

const (
	KindString  = schema.KindString
	KindNumber  = schema.KindNumber
	KindBoolean = schema.KindBoolean
	KindEnum    = schema.KindEnum
	KindArray   = schema.KindArray
	KindObject  = schema.KindObject
)

// Absent marks a missing document value, distinct from JSON null.
var Absent = validate.Absent

// Key returns a path step addressing an object property.
func Key(name string) Step {
	return path.Key(name)
}

// Index returns a path step addressing an array element.
func Index(i int) Step {
	return path.Index(i)
}

// ParsePath reverses Path.String, reconstructing a path from a lookup key.
func ParsePath(raw string) (Path, error) {
	return path.Parse(raw)
}

// Get reads the value at p, reporting false when the path addresses
// nothing.
func Get(root any, p Path) (any, bool) {
	return document.Get(root, p)
}

// Set writes value at p and returns the new document tree; root is never
// mutated.
func Set(root any, p Path, value any) any {
	return document.Set(root, p, value)
}

// Validate checks value against field, returning violations keyed by path.
func Validate(field *Field, value any) Errors {
	return validate.Validate(field, value)
}

// IsValid reports whether errs records no violations.
func IsValid(errs Errors) bool {
	return errs.Valid()
}
