// Package openapi converts OpenAPI 3 schemas into the form field model, the
// import path for callers whose source of truth is an API document rather
// than a hand-written schema file.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formstate/pkg/schema"
)

// Convert maps an OpenAPI schema onto a form field. Title becomes the
// label, description the note, and the validation keywords carry over to
// the matching kind-specific constraints (multipleOf becomes the number
// step). A string schema with an enum becomes an enum field. Composition
// keywords (oneOf/anyOf/allOf) are not carried, and when a schema lists
// several types the first declared one wins.
func Convert(ref *openapi3.SchemaRef) (*schema.Field, error) {
	if ref == nil || ref.Value == nil {
		return nil, errors.New("openapi: schema is nil")
	}
	src := ref.Value
	field := &schema.Field{
		Label: src.Title,
		Note:  src.Description,
	}

	switch kind := firstType(src.Type); kind {
	case "object", "":
		field.Kind = schema.KindObject
		if len(src.Properties) > 0 {
			required := make(map[string]struct{}, len(src.Required))
			for _, name := range src.Required {
				required[name] = struct{}{}
			}
			field.Properties = make(map[string]*schema.Field, len(src.Properties))
			for name, property := range src.Properties {
				child, err := Convert(property)
				if err != nil {
					return nil, fmt.Errorf("openapi: property %q: %w", name, err)
				}
				if _, ok := required[name]; ok {
					child.Required = true
				}
				field.Properties[name] = child
			}
		}
	case "array":
		field.Kind = schema.KindArray
		if src.Items == nil {
			return nil, errors.New("openapi: array schema requires items")
		}
		items, err := Convert(src.Items)
		if err != nil {
			return nil, fmt.Errorf("openapi: array items: %w", err)
		}
		field.Items = items
		if src.MinItems != 0 {
			value := int(src.MinItems)
			field.MinItems = &value
		}
		if src.MaxItems != nil {
			value := int(*src.MaxItems)
			field.MaxItems = &value
		}
	case "boolean":
		field.Kind = schema.KindBoolean
	case "number", "integer":
		field.Kind = schema.KindNumber
		if src.Min != nil {
			value := *src.Min
			field.Min = &value
		}
		if src.Max != nil {
			value := *src.Max
			field.Max = &value
		}
		if src.MultipleOf != nil {
			value := *src.MultipleOf
			field.Step = &value
		}
	case "string":
		if len(src.Enum) > 0 {
			field.Kind = schema.KindEnum
			field.Options = optionsFromEnum(src.Enum)
			break
		}
		field.Kind = schema.KindString
		field.Pattern = src.Pattern
		if src.MinLength != 0 {
			value := int(src.MinLength)
			field.MinLength = &value
		}
		if src.MaxLength != nil {
			value := int(*src.MaxLength)
			field.MaxLength = &value
		}
	default:
		return nil, fmt.Errorf("openapi: unsupported schema type %q", kind)
	}
	return field, nil
}

// RequestField loads an OpenAPI document and returns the form field tree
// for the JSON request body of the named operation.
func RequestField(ctx context.Context, raw []byte, operationID string) (*schema.Field, error) {
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	if operationID == "" {
		return nil, errors.New("openapi: operation id is required")
	}
	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	operation := findOperation(spec, operationID)
	if operation == nil {
		return nil, fmt.Errorf("openapi: operation %q not found", operationID)
	}
	ref := requestSchema(operation.RequestBody)
	if ref == nil {
		return nil, fmt.Errorf("openapi: operation %q has no JSON request body", operationID)
	}
	field, err := Convert(ref)
	if err != nil {
		return nil, err
	}
	if err := field.Check(); err != nil {
		return nil, err
	}
	return field, nil
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec == nil || spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		candidates := []*openapi3.Operation{
			item.Get, item.Put, item.Post, item.Delete,
			item.Patch, item.Head, item.Options, item.Trace,
		}
		for _, operation := range candidates {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.SchemaRef {
	if body == nil || body.Value == nil {
		return nil
	}
	for contentType, media := range body.Value.Content {
		if media == nil || media.Schema == nil {
			continue
		}
		if contentType == "application/json" || strings.HasSuffix(contentType, "+json") {
			return media.Schema
		}
	}
	return nil
}

func optionsFromEnum(values []any) []schema.Option {
	options := make([]schema.Option, 0, len(values))
	for _, raw := range values {
		var value string
		switch v := raw.(type) {
		case string:
			value = v
		case float64:
			value = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			value = strconv.FormatBool(v)
		default:
			value = fmt.Sprint(v)
		}
		options = append(options, schema.Option{Value: value})
	}
	return options
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
