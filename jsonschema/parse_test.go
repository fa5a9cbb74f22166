package jsonschema

import (
	"testing"

	"github.com/hollowpine/schemacore/node"
)

func TestParseAssignsCompoundKind(t *testing.T) {
	n, err := Parse(map[string]any{
		"anyOf": []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "number"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind != node.KindCompound || n.Combinator != node.AnyOf || len(n.SubSchemas) != 2 {
		t.Fatalf("unexpected node: %+v", n)
	}
}

func TestParseTupleFromArrayItems(t *testing.T) {
	n, err := Parse(map[string]any{
		"type":  "array",
		"items": []any{map[string]any{"type": "string"}, map[string]any{"type": "number"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind != node.KindTuple || len(n.TupleItems) != 2 {
		t.Fatalf("expected a 2-element tuple, got %+v", n)
	}
}

func TestParseUntypedSchemaIsOpen(t *testing.T) {
	n, err := Parse(map[string]any{"minimum": 3})
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind != node.KindObject || n.HasType {
		t.Fatalf("expected an open (HasType=false) object node, got %+v", n)
	}
	if !n.HasConstraint("minimum") {
		t.Fatalf("expected minimum to survive in Constraints")
	}
}

// TestParsePropertyNamedIDIsNotScopeRefinement verifies that a
// property literally named "id" inside a properties map is just a
// property name, never inspected as the id scope-refinement keyword.
func TestParsePropertyNamedIDIsNotScopeRefinement(t *testing.T) {
	n, err := Parse(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{"type": "string"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	child, ok := n.Properties["id"]
	if !ok {
		t.Fatalf("expected a property named id, got %+v", n.Properties)
	}
	if child.ID != "" {
		t.Fatalf("expected the property's own id field empty, got %q", child.ID)
	}
	if n.ID != "" {
		t.Fatalf("expected the parent node's id untouched by a nested property named id, got %q", n.ID)
	}
}

func TestParseIDIsRecordedAtSchemaNodePosition(t *testing.T) {
	n, err := Parse(map[string]any{
		"id":   "http://example.com/schemas/inner",
		"type": "object",
	})
	if err != nil {
		t.Fatal(err)
	}
	if n.ID != "http://example.com/schemas/inner" {
		t.Fatalf("expected id captured, got %q", n.ID)
	}
}

func TestParseRefNodeIgnoresSiblingKeywords(t *testing.T) {
	n, err := Parse(map[string]any{"$ref": "#/definitions/Foo", "description": "ignored"})
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind != node.KindRef || n.Ref != "#/definitions/Foo" {
		t.Fatalf("unexpected node: %+v", n)
	}
}

func TestParseBoolSchemas(t *testing.T) {
	allow, err := Parse(true)
	if err != nil {
		t.Fatal(err)
	}
	if allow.Kind != node.KindObject || allow.HasType {
		t.Fatalf("expected `true` to parse as a trivially-open schema, got %+v", allow)
	}

	deny, err := Parse(false)
	if err != nil {
		t.Fatal(err)
	}
	if deny.Kind != node.KindCompound || deny.Combinator != node.Not {
		t.Fatalf("expected `false` to parse as not(open), got %+v", deny)
	}
}
