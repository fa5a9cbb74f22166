package schemacore_test

import (
	"context"
	"encoding/json"
	"testing"

	schemacore "github.com/hollowpine/schemacore"
	"github.com/hollowpine/schemacore/jsonschema"
	"github.com/hollowpine/schemacore/keyword"
	"github.com/hollowpine/schemacore/node"
	"github.com/hollowpine/schemacore/resolver"
)

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func mustValidate(t *testing.T, root any, instance []byte) []string {
	t.Helper()
	n, err := jsonschema.Parse(root)
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	issues, err := schemacore.ValidateJSON(context.Background(), n, instance, schemacore.ParseOpt{})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	paths := make([]string, len(issues))
	for i, iss := range issues {
		paths[i] = iss.Path
	}
	return paths
}

// TestValidateJSON_IDResolutionInRefs verifies that a nested "id"
// registers its subschema so a $ref elsewhere in the document that names
// that id resolves to the embedded node, without any network fetch. An
// instance satisfying the referenced subschema passes; one violating it
// fails with the path pointing into the referencing location.
func TestValidateJSON_IDResolutionInRefs(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"outer": map[string]any{
				"id":   "http://example.com/outer.json",
				"type": "object",
				"properties": map[string]any{
					"inner": map[string]any{"type": "integer", "minimum": 1},
				},
				"required": []any{"inner"},
			},
			"viaRef": map[string]any{"$ref": "http://example.com/outer.json"},
		},
	}

	good := mustMarshal(t, map[string]any{
		"outer":  map[string]any{"inner": 5},
		"viaRef": map[string]any{"inner": 5},
	})
	if paths := mustValidate(t, schema, good); len(paths) != 0 {
		t.Fatalf("expected a passing instance, got issues at %v", paths)
	}

	bad := mustMarshal(t, map[string]any{
		"outer":  map[string]any{"inner": 5},
		"viaRef": map[string]any{"inner": 0},
	})
	paths := mustValidate(t, schema, bad)
	if len(paths) != 1 || paths[0] != "/viaRef/inner" {
		t.Fatalf("expected a single issue at /viaRef/inner, got %v", paths)
	}
}

// TestValidateJSON_RecursiveTreeReference verifies a tree node schema
// whose "children" items $ref back to the node definition via the bare
// document-root ref "#". An arbitrarily deep balanced tree validates, and
// a wrong-typed field on a leaf fails at its exact path.
func TestValidateJSON_RecursiveTreeReference(t *testing.T) {
	treeSchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"value": map[string]any{"type": "integer"},
			"children": map[string]any{
				"type":  "array",
				"items": map[string]any{"$ref": "#"},
			},
		},
		"required": []any{"value"},
	}

	deep := mustMarshal(t, map[string]any{
		"value": 1,
		"children": []any{
			map[string]any{"value": 2, "children": []any{}},
			map[string]any{
				"value": 3,
				"children": []any{
					map[string]any{"value": 4, "children": []any{}},
				},
			},
		},
	})
	if paths := mustValidate(t, treeSchema, deep); len(paths) != 0 {
		t.Fatalf("expected a balanced tree to validate, got issues at %v", paths)
	}

	brokenLeaf := mustMarshal(t, map[string]any{
		"value": 1,
		"children": []any{
			map[string]any{
				"value": 2,
				"children": []any{
					map[string]any{"value": "not-a-number", "children": []any{}},
				},
			},
		},
	})
	paths := mustValidate(t, treeSchema, brokenLeaf)
	if len(paths) != 1 || paths[0] != "/children/0/children/0/value" {
		t.Fatalf("expected a single issue at /children/0/children/0/value, got %v", paths)
	}
}

// TestValidateJSON_RootRefInRefInRemoteRef verifies a $ref chain A -> B ->
// C -> "#"; the ultimate resolution is C itself (C's document root), not
// A's or B's. C alone declares minLength: 3, so the assertion only holds
// if resolution actually bottoms out at C.
func TestValidateJSON_RootRefInRefInRemoteRef(t *testing.T) {
	docC, err := jsonschema.Parse(map[string]any{
		"id":        "http://example.com/c.json",
		"type":      "string",
		"minLength": 3,
	})
	if err != nil {
		t.Fatalf("parse C: %v", err)
	}
	docB, err := jsonschema.Parse(map[string]any{
		"$ref": "http://example.com/c.json#",
	})
	if err != nil {
		t.Fatalf("parse B: %v", err)
	}
	docA, err := jsonschema.Parse(map[string]any{
		"$ref": "http://example.com/b.json",
	})
	if err != nil {
		t.Fatalf("parse A: %v", err)
	}

	res := resolver.New(jsonschema.ParseBytes, jsonschema.Parse)
	res.Cache.Put("http://example.com/b.json", docB)
	res.Cache.Put("http://example.com/c.json", docC)
	rt := node.Runtime{Registry: keyword.Default(), Resolve: res.AsResolveFunc()}

	_, issues := node.Process(context.Background(), docA, "ab", node.NewScope(docA), rt)
	if len(issues) != 1 || issues[0].Code != node.CodeTooShort {
		t.Fatalf("expected a single minLength violation from C, got %+v", issues)
	}

	_, issues = node.Process(context.Background(), docA, "abc", node.NewScope(docA), rt)
	if len(issues) != 0 {
		t.Fatalf("expected no issues for a string satisfying C, got %+v", issues)
	}
}
