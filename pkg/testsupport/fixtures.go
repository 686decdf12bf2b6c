// Package testsupport provides fixture helpers shared by package tests.
package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	formpath "github.com/goliatone/go-formstate/pkg/path"
	"github.com/goliatone/go-formstate/pkg/schema"
)

// LoadSchema reads a schema fixture, decoding JSON or YAML by extension.
func LoadSchema(t *testing.T, path string) *schema.Field {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read schema fixture: %v", err)
	}
	var field *schema.Field
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		field, err = schema.DecodeYAML(data)
	default:
		field, err = schema.DecodeJSON(data)
	}
	if err != nil {
		t.Fatalf("decode schema fixture: %v", err)
	}
	return field
}

// MustParsePath parses a path key, failing the test on malformed input.
func MustParsePath(t *testing.T, raw string) formpath.Path {
	t.Helper()

	p, err := formpath.Parse(raw)
	if err != nil {
		t.Fatalf("parse path: %v", err)
	}
	return p
}

// MustDecodeValue decodes an inline JSON literal into a document value.
func MustDecodeValue(t *testing.T, raw string) any {
	t.Helper()

	var out any
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("decode value: %v", err)
	}
	return out
}
