package schema

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPropertyOrderHonorsDeclaredOrder(t *testing.T) {
	field := &Field{
		Kind:  KindObject,
		Order: []string{"b", "a", "b", "ghost"},
		Properties: map[string]*Field{
			"a": {Kind: KindString},
			"b": {Kind: KindString},
			"c": {Kind: KindString},
			"d": {Kind: KindString},
		},
	}
	want := []string{"b", "a", "c", "d"}
	if diff := cmp.Diff(want, field.PropertyOrder()); diff != "" {
		t.Fatalf("property order (-want +got):\n%s", diff)
	}
}

func TestPropertyOrderWithoutOrderIsSorted(t *testing.T) {
	field := &Field{
		Kind: KindObject,
		Properties: map[string]*Field{
			"zebra": {Kind: KindString},
			"apple": {Kind: KindString},
		},
	}
	want := []string{"apple", "zebra"}
	if diff := cmp.Diff(want, field.PropertyOrder()); diff != "" {
		t.Fatalf("sorted order (-want +got):\n%s", diff)
	}
}

func TestCheckArrayRequiresItems(t *testing.T) {
	field := &Field{Kind: KindArray}
	if err := field.Check(); err == nil {
		t.Fatalf("expected error for array without items")
	}
}

func TestCheckEnumRequiresOptions(t *testing.T) {
	field := &Field{Kind: KindEnum}
	if err := field.Check(); err == nil {
		t.Fatalf("expected error for enum without options")
	}
}

func TestCheckRejectsUnknownKind(t *testing.T) {
	field := &Field{Kind: Kind("widget")}
	err := field.Check()
	if err == nil {
		t.Fatalf("expected error for unknown kind")
	}
	if !strings.Contains(err.Error(), "widget") {
		t.Fatalf("error should name the kind, got %v", err)
	}
}

func TestCheckRecursesIntoChildren(t *testing.T) {
	field := &Field{
		Kind: KindObject,
		Properties: map[string]*Field{
			"entries": {Kind: KindArray, Items: &Field{Kind: KindEnum}},
		},
	}
	err := field.Check()
	if err == nil {
		t.Fatalf("expected nested enum error")
	}
	if !strings.Contains(err.Error(), "entries") {
		t.Fatalf("error should name the failing property, got %v", err)
	}
}

func TestCheckValidTree(t *testing.T) {
	field := &Field{
		Kind:  KindObject,
		Order: []string{"title", "status", "tags"},
		Properties: map[string]*Field{
			"title":  {Kind: KindString, Required: true},
			"status": {Kind: KindEnum, Options: []Option{{Value: "draft"}}},
			"tags":   {Kind: KindArray, Items: &Field{Kind: KindString}},
		},
	}
	if err := field.Check(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSanitizeStripsMarkup(t *testing.T) {
	field := &Field{
		Kind:  KindObject,
		Label: `<script>alert("x")</script>Profile`,
		Properties: map[string]*Field{
			"status": {
				Kind: KindEnum,
				Note: `Pick <b>one</b>`,
				Options: []Option{
					{Value: "<b>draft</b>", Label: "<i>Draft</i>"},
				},
			},
		},
		Items: nil,
	}
	field.Sanitize()

	if got := field.Label; got != "Profile" {
		t.Fatalf("label = %q, want %q", got, "Profile")
	}
	status := field.Properties["status"]
	if got := status.Note; got != "Pick one" {
		t.Fatalf("note = %q, want %q", got, "Pick one")
	}
	if got := status.Options[0].Label; got != "Draft" {
		t.Fatalf("option label = %q, want %q", got, "Draft")
	}
	// Values are data, not display text; they pass through untouched.
	if got := status.Options[0].Value; got != "<b>draft</b>" {
		t.Fatalf("option value changed: %q", got)
	}
}
