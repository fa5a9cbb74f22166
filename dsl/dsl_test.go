package dsl

import (
	"context"
	"testing"

	"github.com/hollowpine/schemacore/jsonschema"
	"github.com/hollowpine/schemacore/keyword"
	"github.com/hollowpine/schemacore/node"
	"github.com/hollowpine/schemacore/resolver"
)

func rt() node.Runtime {
	return node.Runtime{Registry: keyword.Default()}
}

func TestObjectBuilderRequiredAndUnknownStrict(t *testing.T) {
	schema := Object().
		Field("name", String()).Required().
		Field("age", Integer()).
		Build()

	_, issues := node.Process(context.Background(), schema, map[string]any{"age": 5.0}, node.NewScope(schema), rt())
	if len(issues) != 1 || issues[0].Code != node.CodeRequired {
		t.Fatalf("expected one required-property issue, got %+v", issues)
	}

	_, issues = node.Process(context.Background(), schema, map[string]any{"name": "a", "age": 5.0, "extra": true}, node.NewScope(schema), rt())
	if len(issues) != 1 || issues[0].Code != node.CodeUnknownKey {
		t.Fatalf("expected one unknown-key issue, got %+v", issues)
	}
}

func TestObjectBuilderUnknownAllowAndAdditionalProperties(t *testing.T) {
	allowed := Object().Field("name", String()).Required().UnknownAllow().Build()
	_, issues := node.Process(context.Background(), allowed, map[string]any{"name": "a", "extra": true}, node.NewScope(allowed), rt())
	if len(issues) != 0 {
		t.Fatalf("expected no issues under UnknownAllow, got %+v", issues)
	}

	typed := Object().Field("name", String()).Required().AdditionalProperties(Integer()).Build()
	_, issues = node.Process(context.Background(), typed, map[string]any{"name": "a", "extra": "not-an-int"}, node.NewScope(typed), rt())
	if len(issues) != 1 || issues[0].Code != node.CodeInvalidType {
		t.Fatalf("expected one invalid-type issue from the additionalProperties schema, got %+v", issues)
	}
}

func TestObjectBuilderDependencyAndPatternProperty(t *testing.T) {
	schema := Object().
		Field("creditCard", String()).
		Dependency("creditCard", "billingAddress").
		PatternProperty("^x-", String()).
		UnknownAllow().
		Build()

	_, issues := node.Process(context.Background(), schema, map[string]any{"creditCard": "4111"}, node.NewScope(schema), rt())
	if len(issues) != 1 || issues[0].Code != node.CodeDependency {
		t.Fatalf("expected one dependency-missing issue, got %+v", issues)
	}

	_, issues = node.Process(context.Background(), schema, map[string]any{"x-custom": 5.0}, node.NewScope(schema), rt())
	if len(issues) != 1 || issues[0].Code != node.CodeInvalidType {
		t.Fatalf("expected one invalid-type issue from the pattern property schema, got %+v", issues)
	}
}

func TestArrayAndTupleBuilders(t *testing.T) {
	arr := UniqueItems(Array(Integer()))
	_, issues := node.Process(context.Background(), arr, []any{1.0, 2.0, 2.0}, node.NewScope(arr), rt())
	if len(issues) != 1 || issues[0].Code != node.CodeNotUnique {
		t.Fatalf("expected one not-unique issue, got %+v", issues)
	}

	tup := Tuple(String(), Integer())
	_, issues = node.Process(context.Background(), tup, []any{"ok", "not-an-int"}, node.NewScope(tup), rt())
	if len(issues) != 1 || issues[0].Code != node.CodeInvalidType {
		t.Fatalf("expected one invalid-type issue on the second tuple slot, got %+v", issues)
	}
}

func TestPrimitiveConstraintSetters(t *testing.T) {
	s := MinLength(MaxLength(String(), 5), 2)
	_, issues := node.Process(context.Background(), s, "a", node.NewScope(s), rt())
	if len(issues) != 1 || issues[0].Code != node.CodeTooShort {
		t.Fatalf("expected one too-short issue, got %+v", issues)
	}

	n := Minimum(Maximum(Number(), 10), 1)
	_, issues = node.Process(context.Background(), n, 0.5, node.NewScope(n), rt())
	if len(issues) != 1 || issues[0].Code != node.CodeTooSmall {
		t.Fatalf("expected one too-small issue, got %+v", issues)
	}

	e := Enum(String(), "a", "b")
	_, issues = node.Process(context.Background(), e, "c", node.NewScope(e), rt())
	if len(issues) != 1 || issues[0].Code != node.CodeInvalidEnum {
		t.Fatalf("expected one invalid-enum issue, got %+v", issues)
	}
}

func TestCombinators(t *testing.T) {
	anyOf := AnyOf(String(), Integer())
	if _, issues := node.Process(context.Background(), anyOf, "text", node.NewScope(anyOf), rt()); len(issues) != 0 {
		t.Fatalf("expected anyOf to accept a matching string, got %+v", issues)
	}

	allOf := AllOf(MinLength(String(), 2), MaxLength(String(), 4))
	if _, issues := node.Process(context.Background(), allOf, "abcde", node.NewScope(allOf), rt()); len(issues) == 0 {
		t.Fatalf("expected allOf to reject a string past maxLength")
	}

	not := Not(String())
	if _, issues := node.Process(context.Background(), not, "text", node.NewScope(not), rt()); len(issues) == 0 {
		t.Fatalf("expected not(String()) to reject a string instance")
	}
}

func TestRefBuilder(t *testing.T) {
	target := Object().Field("n", Integer()).Required().WithID("http://example.com/target.json").Build()
	root := Object().
		Field("viaRef", Ref("http://example.com/target.json")).
		Field("direct", target).
		Build()

	res := resolver.New(jsonschema.ParseBytes, jsonschema.Parse)
	res.RegisterDocumentIDs(root)
	runtime := node.Runtime{Registry: keyword.Default(), Resolve: res.AsResolveFunc()}

	instance := map[string]any{
		"viaRef": map[string]any{"n": 1.0},
		"direct": map[string]any{"n": 2.0},
	}
	if _, issues := node.Process(context.Background(), root, instance, node.NewScope(root), runtime); len(issues) != 0 {
		t.Fatalf("expected no issues, got %+v", issues)
	}
}
