// Package validate walks a form schema in lock-step with a document value
// and reports every violation found, keyed by the path of the offending
// node. Validation never returns a Go error and never panics: malformed
// values, missing values and schema-authoring mistakes all reduce to
// messages in the returned map.
package validate

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/goliatone/go-formstate/pkg/path"
	"github.com/goliatone/go-formstate/pkg/schema"
)

// The message strings below are a compatibility contract with consumers
// that render them; change them and every caller's display breaks.
const (
	msgRequired  = "This field is required."
	msgBadNumber = "Must be a number."
	msgBadChoice = "Invalid choice."
	msgBadFormat = "Invalid format."
	msgNotArray  = "Must be an array."
)

func msgMinLength(n int) string { return fmt.Sprintf("Must be at least %d characters.", n) }
func msgMaxLength(n int) string { return fmt.Sprintf("Must be at most %d characters.", n) }
func msgMinItems(n int) string  { return fmt.Sprintf("At least %d items.", n) }
func msgMaxItems(n int) string  { return fmt.Sprintf("At most %d items.", n) }
func msgMin(n float64) string   { return "Must be at least " + formatBound(n) + "." }
func msgMax(n float64) string   { return "Must be at most " + formatBound(n) + "." }

func formatBound(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// Absent marks a value missing from the document, as opposed to an explicit
// JSON null. Object traversal hands it to children whose property is not
// present; callers validating a document that does not exist yet can pass it
// to Validate directly.
var Absent any = absentValue{}

type absentValue struct{}

func (absentValue) String() string { return "absent" }

// Errors maps path keys (the path.Path String form, "/" for the root) to
// the ordered messages recorded at that location. A missing key means the
// exact path is clean; it says nothing about descendants. Message order
// within a key is the emission order and is significant for display.
type Errors map[string][]string

// Valid reports whether no messages were recorded anywhere in the tree.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Messages returns the messages recorded at p, nil when the path is clean.
func (e Errors) Messages(p path.Path) []string {
	return e[p.String()]
}

func (e Errors) add(at path.Path, msg string) {
	key := at.String()
	e[key] = append(e[key], msg)
}

// Validate checks value against field and returns every violation found.
// It reads its arguments and nothing else: no shared state, no I/O, so
// concurrent calls over the same inputs are safe.
func Validate(field *schema.Field, value any) Errors {
	errs := make(Errors)
	walk(field, value, nil, errs)
	return errs
}

func walk(field *schema.Field, value any, at path.Path, errs Errors) {
	if field == nil {
		return
	}
	if isEmpty(value) {
		if field.Required {
			errs.add(at, msgRequired)
		}
		// Empty values carry no content to check and nothing to recurse
		// into; this is why a required violation never pairs with a
		// length or range violation on the same node.
		return
	}

	switch field.Kind {
	case schema.KindString:
		checkString(field, value, at, errs)
	case schema.KindNumber:
		checkNumber(field, value, at, errs)
	case schema.KindEnum:
		checkEnum(field, value, at, errs)
	case schema.KindBoolean:
		// Presence is the only obligation a boolean can violate.
	case schema.KindObject:
		obj, ok := value.(map[string]any)
		if !ok {
			return
		}
		for _, name := range field.PropertyOrder() {
			childValue, present := obj[name]
			if !present {
				childValue = Absent
			}
			walk(field.Properties[name], childValue, at.Child(name), errs)
		}
	case schema.KindArray:
		arr, ok := value.([]any)
		if !ok {
			errs.add(at, msgNotArray)
			return
		}
		if field.MinItems != nil && len(arr) < *field.MinItems {
			errs.add(at, msgMinItems(*field.MinItems))
		}
		if field.MaxItems != nil && len(arr) > *field.MaxItems {
			errs.add(at, msgMaxItems(*field.MaxItems))
		}
		for i, element := range arr {
			walk(field.Items, element, at.At(i), errs)
		}
	}
}

// isEmpty mirrors the form notion of an empty value: missing, null, the
// empty string, or an empty array. An empty object is not empty; its
// children still participate in validation.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case absentValue:
		return true
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	default:
		return false
	}
}

func checkString(field *schema.Field, value any, at path.Path, errs Errors) {
	text := stringify(value)
	length := utf8.RuneCountInString(text)
	if field.MinLength != nil && length < *field.MinLength {
		errs.add(at, msgMinLength(*field.MinLength))
	}
	if field.MaxLength != nil && length > *field.MaxLength {
		errs.add(at, msgMaxLength(*field.MaxLength))
	}
	if field.Pattern != "" && !matchPattern(field.Pattern, text) {
		errs.add(at, msgBadFormat)
	}
}

// matchPattern reports whether text matches the unanchored pattern. A
// pattern that does not compile matches nothing, so a schema-authoring
// mistake surfaces as "Invalid format." on the field instead of a crash.
func matchPattern(pattern, text string) bool {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}

func checkNumber(field *schema.Field, value any, at path.Path, errs Errors) {
	number, ok := toNumber(value)
	if !ok {
		errs.add(at, msgBadNumber)
		number = math.NaN()
	}
	// NaN compares false against every bound, so a non-numeric value
	// carries only the type message. The two range checks are independent
	// on purpose: inverted bounds fire both.
	if field.Min != nil && number < *field.Min {
		errs.add(at, msgMin(*field.Min))
	}
	if field.Max != nil && number > *field.Max {
		errs.add(at, msgMax(*field.Max))
	}
}

func checkEnum(field *schema.Field, value any, at path.Path, errs Errors) {
	text := stringify(value)
	for _, option := range field.Options {
		if option.Value == text {
			return
		}
	}
	errs.add(at, msgBadChoice)
}

// stringify coerces scalar document values to their canonical string form
// for length, pattern and enum membership checks.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
