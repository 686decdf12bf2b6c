package document

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formstate/pkg/path"
	"github.com/goliatone/go-formstate/pkg/testsupport"
)

func TestGetSetRoundTrip(t *testing.T) {
	root := testsupport.MustDecodeValue(t, `{"user":{"tags":["a","b"]},"count":2}`)
	cases := []struct {
		p     path.Path
		value any
	}{
		{path.Path{path.Key("user"), path.Key("name")}, "John"},
		{path.Path{path.Key("user"), path.Key("tags"), path.Index(1)}, "c"},
		{path.Path{path.Key("count")}, 7.0},
		{path.Path{path.Key("matrix"), path.Index(0), path.Index(0)}, true},
	}
	for _, tc := range cases {
		next := Set(root, tc.p, tc.value)
		got, ok := Get(next, tc.p)
		if !ok {
			t.Fatalf("get %s after set: absent", tc.p)
		}
		if diff := cmp.Diff(tc.value, got); diff != "" {
			t.Fatalf("round trip %s (-want +got):\n%s", tc.p, diff)
		}
	}
}

func TestSetDoesNotMutateInput(t *testing.T) {
	root := testsupport.MustDecodeValue(t, `{"user":{"name":"Ann"},"tags":["x"]}`)
	snapshot := testsupport.MustDecodeValue(t, `{"user":{"name":"Ann"},"tags":["x"]}`)

	_ = Set(root, path.Path{path.Key("user"), path.Key("name")}, "Bea")
	_ = Set(root, path.Path{path.Key("tags"), path.Index(3)}, "y")

	if diff := cmp.Diff(snapshot, root); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
}

func TestSetNonInterference(t *testing.T) {
	root := testsupport.MustDecodeValue(t, `{"a":{"b":1},"c":[true,false]}`)
	next := Set(root, path.Path{path.Key("a"), path.Key("b")}, 2.0)

	for _, raw := range []string{"/c", "/c/0", "/c/1"} {
		p := testsupport.MustParsePath(t, raw)
		before, okBefore := Get(root, p)
		after, okAfter := Get(next, p)
		if okBefore != okAfter {
			t.Fatalf("presence changed at %s", raw)
		}
		if diff := cmp.Diff(before, after); diff != "" {
			t.Fatalf("value changed at %s (-want +got):\n%s", raw, diff)
		}
	}
}

func TestSetSharesUntouchedBranches(t *testing.T) {
	root := testsupport.MustDecodeValue(t, `{"a":{"b":1},"c":{"d":2}}`)
	next := Set(root, path.Path{path.Key("a"), path.Key("b")}, 3.0)

	original := root.(map[string]any)
	updated := next.(map[string]any)

	// Maps compare by reference; the untouched branch must be the same map.
	got, want := updated["c"].(map[string]any), original["c"].(map[string]any)
	got["d"] = 99.0
	if want["d"] != 99.0 {
		t.Fatalf("untouched branch was copied instead of shared")
	}
}

func TestSetSparseArrayFill(t *testing.T) {
	got := Set([]any{}, path.Path{path.Index(5)}, "f")
	want := []any{nil, nil, nil, nil, nil, "f"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sparse fill (-want +got):\n%s", diff)
	}
}

func TestSetEmptyPathReplacesRoot(t *testing.T) {
	root := testsupport.MustDecodeValue(t, `{"anything":true}`)
	got := Set(root, nil, 42.0)
	if got != 42.0 {
		t.Fatalf("empty path set = %v, want 42", got)
	}
}

func TestSetDiscardsMismatchedContainers(t *testing.T) {
	root := testsupport.MustDecodeValue(t, `{"slot":"scalar"}`)

	next := Set(root, path.Path{path.Key("slot"), path.Index(0)}, "first")
	got, ok := Get(next, path.Path{path.Key("slot"), path.Index(0)})
	if !ok || got != "first" {
		t.Fatalf("write into replaced container = %v, %v", got, ok)
	}

	// The other direction: an array node overwritten by a key step.
	root = testsupport.MustDecodeValue(t, `{"slot":[1,2,3]}`)
	next = Set(root, path.Path{path.Key("slot"), path.Key("k")}, true)
	if _, ok := Get(next, path.Path{path.Key("slot"), path.Index(0)}); ok {
		t.Fatalf("old array content survived a key write")
	}
	got, ok = Get(next, path.Path{path.Key("slot"), path.Key("k")})
	if !ok || got != true {
		t.Fatalf("key write after discard = %v, %v", got, ok)
	}
}

func TestGetStrictness(t *testing.T) {
	root := testsupport.MustDecodeValue(t, `{"user":{"tags":["a"]},"n":null}`)
	absent := []string{
		"/missing",
		"/user/0",      // index step on an object
		"/user/tags/k", // key step on an array... parsed as key
		"/user/tags/5", // out of range
		"/n/child",     // descending through null
		"/user/name",
	}
	for _, raw := range absent {
		p := testsupport.MustParsePath(t, raw)
		if got, ok := Get(root, p); ok {
			t.Fatalf("get %s = %v, want absent", raw, got)
		}
	}

	got, ok := Get(root, testsupport.MustParsePath(t, "/n"))
	if !ok || got != nil {
		t.Fatalf("explicit null should be present, got %v, %v", got, ok)
	}
}

func TestSetNegativeIndexDropsWrite(t *testing.T) {
	root := testsupport.MustDecodeValue(t, `{"tags":["a"]}`)
	got := Set(root, path.Path{path.Key("tags"), path.Index(-1)}, "x")
	if diff := cmp.Diff(root, got); diff != "" {
		t.Fatalf("negative index write changed the tree (-want +got):\n%s", diff)
	}
}

func TestGetNegativeIndexIsAbsent(t *testing.T) {
	root := testsupport.MustDecodeValue(t, `["a"]`)
	if _, ok := Get(root, path.Path{path.Index(-1)}); ok {
		t.Fatalf("negative index should be absent")
	}
}
