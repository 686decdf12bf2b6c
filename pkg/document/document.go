// Package document implements path-addressed reads and writes over decoded
// JSON values.
//
// Values follow the encoding/json object model: nil, bool, float64, string,
// []any and map[string]any. Writers never mutate their input; Set returns a
// new tree that shares every untouched branch with the original, copying
// only the containers along the written path.
package document

import "github.com/goliatone/go-formstate/pkg/path"

// Get returns the value stored at p. The second result is false when the
// path addresses nothing: a nil node on the way down, a step kind that does
// not match the node kind, an index outside the array, or a missing key.
// There is no partial result and no coercion between keys and indices, so a
// malformed path never silently produces a wrong value.
func Get(root any, p path.Path) (any, bool) {
	current := root
	for _, step := range p {
		if current == nil {
			return nil, false
		}
		if step.IsIndex() {
			arr, ok := current.([]any)
			idx := step.Index()
			if !ok || idx < 0 || idx >= len(arr) {
				return nil, false
			}
			current = arr[idx]
			continue
		}
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		child, ok := obj[step.Key()]
		if !ok {
			return nil, false
		}
		current = child
	}
	return current, true
}

// Set returns a tree identical to root except that the location addressed by
// p now holds value. Containers along the path are shallow-copied, or
// created when missing; an existing node whose kind does not match the next
// step is discarded, so the write always wins. The empty path replaces the
// whole tree. Sparse array writes pad the gap with nil entries. A negative
// index drops the write and returns the container unchanged.
func Set(root any, p path.Path, value any) any {
	if len(p) == 0 {
		return value
	}
	step, rest := p[0], p[1:]

	if step.IsIndex() {
		idx := step.Index()
		if idx < 0 {
			return root
		}
		var arr []any
		if existing, ok := root.([]any); ok {
			arr = make([]any, len(existing))
			copy(arr, existing)
		}
		for len(arr) <= idx {
			arr = append(arr, nil)
		}
		arr[idx] = Set(arr[idx], rest, value)
		return arr
	}

	obj := make(map[string]any)
	if existing, ok := root.(map[string]any); ok {
		for key, child := range existing {
			obj[key] = child
		}
	}
	key := step.Key()
	obj[key] = Set(obj[key], rest, value)
	return obj
}
