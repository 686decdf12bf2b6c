package schema

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

var (
	metaOnce     sync.Once
	metaCompiled *jsonschema.Schema
	metaErr      error
)

func metaSchema() (*jsonschema.Schema, error) {
	metaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(metaSchemaJSON))
		if err != nil {
			metaErr = fmt.Errorf("schema: parse meta-schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("metaschema.json", doc); err != nil {
			metaErr = fmt.Errorf("schema: register meta-schema: %w", err)
			return
		}
		metaCompiled, err = compiler.Compile("metaschema.json")
		if err != nil {
			metaErr = fmt.Errorf("schema: compile meta-schema: %w", err)
		}
	})
	return metaCompiled, metaErr
}

// DecodeJSON parses a declarative schema document. The payload is checked
// against the embedded meta-schema before decoding, display strings are
// sanitized, and the resulting tree is structurally verified with Check.
func DecodeJSON(raw []byte) (*Field, error) {
	if len(raw) == 0 {
		return nil, errors.New("schema: document is empty")
	}
	return decodePayload(raw)
}

// DecodeYAML parses the YAML form of a schema document. The document is
// normalized to JSON first so both forms share one validation and decode
// path.
func DecodeYAML(raw []byte) (*Field, error) {
	if len(raw) == 0 {
		return nil, errors.New("schema: document is empty")
	}
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("schema: parse yaml document: %w", err)
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("schema: normalize yaml document: %w", err)
	}
	return decodePayload(payload)
}

// EncodeJSON renders the schema back to its canonical JSON document form.
func EncodeJSON(f *Field) ([]byte, error) {
	if f == nil {
		return nil, errFieldNil
	}
	payload, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("schema: encode document: %w", err)
	}
	return payload, nil
}

func decodePayload(payload []byte) (*Field, error) {
	compiled, err := metaSchema()
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("schema: parse document: %w", err)
	}
	if err := compiled.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema: document does not match the form schema format: %w", err)
	}
	var field Field
	if err := json.Unmarshal(payload, &field); err != nil {
		return nil, fmt.Errorf("schema: decode document: %w", err)
	}
	field.Sanitize()
	if err := field.Check(); err != nil {
		return nil, err
	}
	return &field, nil
}
