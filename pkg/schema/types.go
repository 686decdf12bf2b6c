// Package schema defines the declarative field model that drives form
// editing and validation: a tree of typed fields with per-kind constraints,
// plus codecs for the JSON and YAML document forms callers keep in static
// configuration.
package schema

import (
	"errors"
	"fmt"
	"sort"
)

// Kind enumerates the closed set of field kinds. Every switch over Kind in
// this module lists all six cases so a new kind surfaces as a compile-time
// review point rather than a silent fallthrough.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindEnum    Kind = "enum"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
)

// Option is a single enum choice. Value is the canonical stored string;
// Label is the display text shown to users and defaults to Value when empty.
// Duplicate values are tolerated, only the first match matters.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Field describes one node of a form schema. It is a tagged union over Kind:
// the shared members apply to every kind, the remaining groups only to the
// kind they are named after and stay zero elsewhere. Optional constraints
// use pointer types so "not set" is distinguishable from a zero bound.
type Field struct {
	Kind     Kind   `json:"kind" yaml:"kind"`
	Label    string `json:"label,omitempty" yaml:"label,omitempty"`
	Note     string `json:"note,omitempty" yaml:"note,omitempty"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty"`

	// string
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Pattern     string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	MinLength   *int   `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength   *int   `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`

	// number
	Min  *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max  *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Step *float64 `json:"step,omitempty" yaml:"step,omitempty"`

	// enum
	Options []Option `json:"options,omitempty" yaml:"options,omitempty"`

	// object
	Properties map[string]*Field `json:"properties,omitempty" yaml:"properties,omitempty"`
	Order      []string          `json:"order,omitempty" yaml:"order,omitempty"`

	// array
	Items    *Field `json:"items,omitempty" yaml:"items,omitempty"`
	MinItems *int   `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	MaxItems *int   `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`
}

// PropertyOrder returns the traversal order for object properties: declared
// Order entries that name an existing property first (duplicates dropped),
// then every remaining property sorted by name. The result is deterministic
// for any input, which keeps validation output stable across runs.
func (f *Field) PropertyOrder() []string {
	if f == nil || len(f.Properties) == 0 {
		return nil
	}
	out := make([]string, 0, len(f.Properties))
	seen := make(map[string]struct{}, len(f.Properties))
	for _, name := range f.Order {
		if _, ok := f.Properties[name]; !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	rest := make([]string, 0, len(f.Properties))
	for name := range f.Properties {
		if _, ok := seen[name]; ok {
			continue
		}
		rest = append(rest, name)
	}
	sort.Strings(rest)
	return append(out, rest...)
}

var (
	errFieldNil    = errors.New("schema: field is nil")
	errKindMissing = errors.New("schema: field kind is required")
)

// Check verifies the structural integrity of the schema tree: every field
// carries a known kind, arrays declare their item schema, and enums declare
// at least one option. It does not inspect constraint values.
func (f *Field) Check() error {
	if f == nil {
		return errFieldNil
	}
	switch f.Kind {
	case KindString, KindNumber, KindBoolean:
		return nil
	case KindEnum:
		if len(f.Options) == 0 {
			return errors.New("schema: enum field requires options")
		}
		return nil
	case KindArray:
		if f.Items == nil {
			return errors.New("schema: array field requires items")
		}
		if err := f.Items.Check(); err != nil {
			return err
		}
		return nil
	case KindObject:
		for _, name := range f.PropertyOrder() {
			if err := f.Properties[name].Check(); err != nil {
				return fmt.Errorf("schema: property %q: %w", name, err)
			}
		}
		return nil
	case "":
		return errKindMissing
	default:
		return fmt.Errorf("schema: unknown field kind %q", f.Kind)
	}
}
