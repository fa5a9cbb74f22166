package keyword

import (
	"context"
	"testing"

	"github.com/hollowpine/schemacore/node"
)

func rt() node.Runtime {
	return node.Runtime{Registry: Default()}
}

func TestRequiredManyProperties(t *testing.T) {
	schema := &node.Node{
		Kind:     node.KindObject,
		HasType:  true,
		Required: []string{"a", "b", "c", "d", "e"},
	}
	instance := map[string]any{"a": 1, "c": 3}

	_, issues := node.Process(context.Background(), schema, instance, node.NewScope(schema), rt())
	if len(issues) != 3 {
		t.Fatalf("expected 3 missing-property issues, got %d: %+v", len(issues), issues)
	}
	for _, iss := range issues {
		if iss.Code != node.CodeRequired {
			t.Errorf("expected code %s, got %s", node.CodeRequired, iss.Code)
		}
		if iss.Path != "/" {
			t.Errorf("expected root-keyed path, got %s", iss.Path)
		}
	}
}

func TestDependenciesNamesMissingDependency(t *testing.T) {
	schema := &node.Node{
		Kind:         node.KindObject,
		HasType:      true,
		Dependencies: map[string][]string{"a": {"b"}},
	}
	instance := map[string]any{"a": 1.0}

	_, issues := node.Process(context.Background(), schema, instance, node.NewScope(schema), rt())
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	if issues[0].Params["requires"] != "b" {
		t.Fatalf("expected missing dependency %q named in params, got %+v", "b", issues[0].Params)
	}
}

func TestPatternMismatchEscapesCleanly(t *testing.T) {
	schema := &node.Node{
		Kind:        node.KindString,
		HasType:     true,
		Constraints: map[string]any{"pattern": "^abc$"},
	}

	_, issues := node.Process(context.Background(), schema, "xyz", node.NewScope(schema), rt())
	if len(issues) != 1 {
		t.Fatalf("expected exactly 1 issue, got %d: %+v", len(issues), issues)
	}
	want := `String does not match pattern "^abc$".`
	if issues[0].Message != want {
		t.Fatalf("message = %q, want %q", issues[0].Message, want)
	}
}

func TestOpenObjectSchemaAppliesToNonObjectInstance(t *testing.T) {
	schema := &node.Node{
		Kind:        node.KindObject,
		HasType:     false,
		Constraints: map[string]any{"minimum": 3.0},
	}

	_, issues := node.Process(context.Background(), schema, 1.0, node.NewScope(schema), rt())
	if len(issues) != 1 {
		t.Fatalf("expected a minimum violation on the numeric instance, got %+v", issues)
	}

	if _, issues := node.Process(context.Background(), schema, 5.0, node.NewScope(schema), rt()); len(issues) != 0 {
		t.Fatalf("expected 5.0 to satisfy minimum:3, got %+v", issues)
	}

	if _, issues := node.Process(context.Background(), schema, "hello", node.NewScope(schema), rt()); len(issues) != 0 {
		t.Fatalf("expected a string instance to pass trivially against an unrelated numeric constraint, got %+v", issues)
	}
}

func TestAnyOfAggregatesBranchFailures(t *testing.T) {
	schema := &node.Node{
		Kind:       node.KindCompound,
		Combinator: node.AnyOf,
		SubSchemas: []*node.Node{
			{Kind: node.KindString, HasType: true},
			{Kind: node.KindNumber, HasType: true},
		},
	}
	_, issues := node.Process(context.Background(), schema, true, node.NewScope(schema), rt())
	if len(issues) != 1 || issues[0].Code != node.CodeCombinator {
		t.Fatalf("expected a single aggregated combinator issue, got %+v", issues)
	}
}
