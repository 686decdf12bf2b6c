// Package path models locations inside a JSON document as ordered sequences
// of object keys and array indices. The string form ("/" followed by the
// steps joined with "/") is the lookup key consumers use to index validation
// results, so it must stay stable.
package path

import (
	"fmt"
	"strconv"
	"strings"
)

// Step is a single descent in a document tree: either an object property
// name or an array index. The two are distinct kinds; a key step never
// matches an array node and an index step never matches an object node.
type Step struct {
	key     string
	index   int
	isIndex bool
}

// Key returns a step addressing an object property.
func Key(name string) Step {
	return Step{key: name}
}

// Index returns a step addressing an array element. Indices are expected to
// be non-negative; accessors treat negative indices as addressing nothing.
func Index(i int) Step {
	return Step{index: i, isIndex: true}
}

// IsIndex reports whether the step addresses an array element.
func (s Step) IsIndex() bool {
	return s.isIndex
}

// Key returns the property name for key steps, empty for index steps.
func (s Step) Key() string {
	return s.key
}

// Index returns the element index for index steps, zero for key steps.
func (s Step) Index() int {
	return s.index
}

// String renders the step as it appears inside a path key.
func (s Step) String() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}
	return s.key
}

// Path is an ordered descent from the document root to a location. The
// empty path denotes the root itself.
type Path []Step

// Child returns a copy of p extended with an object key step. The copy never
// shares a backing array with p, so sibling paths built from the same prefix
// cannot clobber each other.
func (p Path) Child(name string) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = Key(name)
	return out
}

// At returns a copy of p extended with an array index step.
func (p Path) At(i int) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = Index(i)
	return out
}

// String renders the path as "/" followed by its steps joined with "/".
// Joining zero steps yields the empty string, so the root path renders as
// the literal "/".
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	parts := make([]string, len(p))
	for i, step := range p {
		parts[i] = step.String()
	}
	return "/" + strings.Join(parts, "/")
}

// Parse reverses String. Tokens made entirely of decimal digits become index
// steps, everything else key steps. Both "" and "/" parse to the empty path.
func Parse(raw string) (Path, error) {
	if raw == "" || raw == "/" {
		return Path{}, nil
	}
	if !strings.HasPrefix(raw, "/") {
		return nil, fmt.Errorf("path: %q does not start with %q", raw, "/")
	}
	tokens := strings.Split(raw[1:], "/")
	out := make(Path, 0, len(tokens))
	for _, token := range tokens {
		if isDigits(token) {
			index, err := strconv.Atoi(token)
			if err != nil {
				return nil, fmt.Errorf("path: index %q out of range", token)
			}
			out = append(out, Index(index))
			continue
		}
		out = append(out, Key(token))
	}
	return out, nil
}

func isDigits(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
