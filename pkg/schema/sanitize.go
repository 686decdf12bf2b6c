package schema

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

func sanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(textSanitizer().Sanitize(trimmed))
}

// Sanitize strips markup from every author-supplied display string in the
// tree: labels, notes, placeholders and option labels. Option values are
// left untouched; they are stored data, not display text. Decoded schema
// documents pass through here so a hostile label cannot smuggle markup into
// whatever surface eventually renders it.
func (f *Field) Sanitize() {
	if f == nil {
		return
	}
	f.Label = sanitizeText(f.Label)
	f.Note = sanitizeText(f.Note)
	f.Placeholder = sanitizeText(f.Placeholder)
	for i := range f.Options {
		f.Options[i].Label = sanitizeText(f.Options[i].Label)
	}
	for _, child := range f.Properties {
		child.Sanitize()
	}
	if f.Items != nil {
		f.Items.Sanitize()
	}
}
