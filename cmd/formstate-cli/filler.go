package main

import (
	"fmt"
	"strconv"

	"github.com/goliatone/go-formstate/pkg/document"
	formpath "github.com/goliatone/go-formstate/pkg/path"
	"github.com/goliatone/go-formstate/pkg/schema"
)

// filler drives one interactive session: it walks the schema, prompts for
// every leaf, and threads each answer through document.Set the same way a
// form UI applies user edits.
type filler struct {
	driver PromptDriver
	doc    any
}

func newFiller(driver PromptDriver, initial any) *filler {
	return &filler{driver: driver, doc: initial}
}

func (f *filler) run(root *schema.Field) (any, error) {
	if err := f.prompt(root, nil); err != nil {
		return nil, err
	}
	return f.doc, nil
}

func (f *filler) prompt(field *schema.Field, at formpath.Path) error {
	if field == nil {
		return nil
	}
	switch field.Kind {
	case schema.KindObject:
		for _, name := range field.PropertyOrder() {
			if err := f.prompt(field.Properties[name], at.Child(name)); err != nil {
				return err
			}
		}
		return nil
	case schema.KindArray:
		return f.promptArray(field, at)
	case schema.KindBoolean:
		current, _ := document.Get(f.doc, at)
		def, _ := current.(bool)
		answer, err := f.driver.Confirm(f.message(field, at), def)
		if err != nil {
			return err
		}
		f.doc = document.Set(f.doc, at, answer)
		return nil
	case schema.KindEnum:
		return f.promptEnum(field, at)
	case schema.KindNumber:
		return f.promptNumber(field, at)
	case schema.KindString:
		return f.promptString(field, at)
	default:
		return fmt.Errorf("formstate-cli: unsupported field kind %q", field.Kind)
	}
}

func (f *filler) promptString(field *schema.Field, at formpath.Path) error {
	current, _ := document.Get(f.doc, at)
	def, _ := current.(string)
	help := field.Note
	if help == "" {
		help = field.Placeholder
	}
	answer, err := f.driver.Input(f.message(field, at), def, help)
	if err != nil {
		return err
	}
	f.doc = document.Set(f.doc, at, answer)
	return nil
}

func (f *filler) promptNumber(field *schema.Field, at formpath.Path) error {
	current, _ := document.Get(f.doc, at)
	def := ""
	if number, ok := current.(float64); ok {
		def = strconv.FormatFloat(number, 'f', -1, 64)
	}
	answer, err := f.driver.Input(f.message(field, at), def, field.Note)
	if err != nil {
		return err
	}
	if answer == "" {
		return nil
	}
	if number, parseErr := strconv.ParseFloat(answer, 64); parseErr == nil {
		f.doc = document.Set(f.doc, at, number)
		return nil
	}
	// Keep the raw text; validation will flag it as not a number.
	f.doc = document.Set(f.doc, at, answer)
	return nil
}

func (f *filler) promptEnum(field *schema.Field, at formpath.Path) error {
	current, _ := document.Get(f.doc, at)
	options := make([]string, len(field.Options))
	defaultIndex := 0
	for i, option := range field.Options {
		label := option.Label
		if label == "" {
			label = option.Value
		}
		options[i] = label
		if text, ok := current.(string); ok && text == option.Value {
			defaultIndex = i
		}
	}
	choice, err := f.driver.Select(f.message(field, at), options, defaultIndex)
	if err != nil {
		return err
	}
	if choice < 0 || choice >= len(field.Options) {
		return fmt.Errorf("formstate-cli: choice %d out of range", choice)
	}
	f.doc = document.Set(f.doc, at, field.Options[choice].Value)
	return nil
}

func (f *filler) promptArray(field *schema.Field, at formpath.Path) error {
	current, _ := document.Get(f.doc, at)
	existing, _ := current.([]any)
	def := strconv.Itoa(len(existing))
	if len(existing) == 0 && field.MinItems != nil {
		def = strconv.Itoa(*field.MinItems)
	}
	answer, err := f.driver.Input(f.message(field, at)+" (entry count)", def, field.Note)
	if err != nil {
		return err
	}
	count := len(existing)
	if answer != "" {
		parsed, parseErr := strconv.Atoi(answer)
		if parseErr != nil || parsed < 0 {
			return fmt.Errorf("formstate-cli: entry count %q is not a non-negative integer", answer)
		}
		count = parsed
	}
	switch {
	case count == 0:
		f.doc = document.Set(f.doc, at, []any{})
	case count < len(existing):
		trimmed := make([]any, count)
		copy(trimmed, existing)
		f.doc = document.Set(f.doc, at, trimmed)
	}
	for i := 0; i < count; i++ {
		if err := f.prompt(field.Items, at.At(i)); err != nil {
			return err
		}
	}
	return nil
}

func (f *filler) message(field *schema.Field, at formpath.Path) string {
	if field.Label != "" {
		return field.Label
	}
	if len(at) == 0 {
		return "Value"
	}
	return at.String()
}
