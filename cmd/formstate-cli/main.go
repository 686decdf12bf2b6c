// Command formstate-cli fills a schema-driven form interactively: it loads
// a declarative schema (JSON, YAML or an OpenAPI operation), prompts for
// each field, applies every answer through the path accessor, validates the
// resulting document and prints it — or a path-addressed error report.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/goliatone/go-formstate/pkg/openapi"
	"github.com/goliatone/go-formstate/pkg/schema"
	"github.com/goliatone/go-formstate/pkg/validate"
)

func main() {
	schemaFlag := flag.String("schema", "", "form schema document (.json, .yaml, .yml)")
	openapiFlag := flag.String("openapi", "", "OpenAPI document to derive the schema from")
	operationFlag := flag.String("operation", "", "operation ID when -openapi is used")
	valuesFlag := flag.String("values", "", "optional JSON document with initial values")
	outputFlag := flag.String("output", "", "output file for the final document (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	root, err := loadSchema(ctx, *schemaFlag, *openapiFlag, *operationFlag)
	if err != nil {
		log.Fatalf("load schema: %v", err)
	}

	initial, err := loadValues(*valuesFlag)
	if err != nil {
		log.Fatalf("load values: %v", err)
	}

	doc, err := newFiller(surveyDriver{}, initial).run(root)
	if err != nil {
		if errors.Is(err, errInterrupted) {
			os.Exit(130)
		}
		log.Fatalf("fill form: %v", err)
	}

	errs := validate.Validate(root, doc)
	if !errs.Valid() {
		reportErrors(os.Stderr, errs)
		os.Exit(1)
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Fatalf("encode document: %v", err)
	}
	if *outputFlag == "" {
		fmt.Println(string(payload))
		return
	}
	if err := os.WriteFile(*outputFlag, append(payload, '\n'), 0o644); err != nil {
		log.Fatalf("write output: %v", err)
	}
	log.Printf("wrote %s", *outputFlag)
}

func loadSchema(ctx context.Context, schemaPath, openapiPath, operationID string) (*schema.Field, error) {
	switch {
	case schemaPath != "" && openapiPath != "":
		return nil, errors.New("use either -schema or -openapi, not both")
	case schemaPath != "":
		data, err := os.ReadFile(schemaPath)
		if err != nil {
			return nil, err
		}
		switch strings.ToLower(filepath.Ext(schemaPath)) {
		case ".yaml", ".yml":
			return schema.DecodeYAML(data)
		default:
			return schema.DecodeJSON(data)
		}
	case openapiPath != "":
		if operationID == "" {
			return nil, errors.New("-operation is required with -openapi")
		}
		data, err := os.ReadFile(openapiPath)
		if err != nil {
			return nil, err
		}
		return openapi.RequestField(ctx, data, operationID)
	default:
		return nil, errors.New("-schema or -openapi is required")
	}
}

func loadValues(path string) (any, error) {
	if path == "" {
		return map[string]any{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse values document: %w", err)
	}
	return doc, nil
}

func reportErrors(w io.Writer, errs validate.Errors) {
	keys := make([]string, 0, len(errs))
	for key := range errs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		for _, message := range errs[key] {
			fmt.Fprintf(w, "%s: %s\n", key, message)
		}
	}
}
