package resolver

import (
	"context"
	"testing"

	"github.com/hollowpine/schemacore/node"
)

func trivialParse(v any) (*node.Node, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return &node.Node{Kind: node.KindObject, Raw: v}, nil
	}
	if refVal, ok := m["$ref"].(string); ok {
		return &node.Node{Kind: node.KindRef, Ref: refVal, Raw: v}, nil
	}
	return &node.Node{Kind: node.KindObject, Raw: v}, nil
}

func TestResolveHashAlone(t *testing.T) {
	root := &node.Node{Kind: node.KindObject}
	r := New(nil, trivialParse)
	scope := node.NewScope(root)

	got, _, err := r.Resolve(context.Background(), "#", scope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != root {
		t.Fatalf("expected document root back, got %+v", got)
	}
}

func TestResolveFragmentIntoRawDefinitions(t *testing.T) {
	target := map[string]any{"type": "string"}
	root := &node.Node{
		Kind: node.KindObject,
		Raw: map[string]any{
			"definitions": map[string]any{
				"Name": target,
			},
		},
	}
	r := New(nil, trivialParse)
	scope := node.NewScope(root)

	got, _, err := r.Resolve(context.Background(), "#/definitions/Name", scope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Kind != node.KindObject {
		t.Fatalf("expected a parsed node for the raw fallback, got %+v", got)
	}
}

func TestResolveMissingFragmentIsResolutionError(t *testing.T) {
	root := &node.Node{Kind: node.KindObject, Raw: map[string]any{}}
	r := New(nil, trivialParse)
	scope := node.NewScope(root)

	_, _, err := r.Resolve(context.Background(), "#/definitions/Missing", scope)
	if err == nil {
		t.Fatal("expected a resolution error for a missing fragment target")
	}
	if _, ok := err.(*node.ResolutionError); !ok {
		t.Fatalf("expected *node.ResolutionError, got %T", err)
	}
}

// TestResolveEmbeddedRefChain covers "ref to a ref": the property "child"
// itself carries a $ref, and stepping through it must chase that embedded
// ref before the caller inspects the result.
func TestResolveEmbeddedRefChain(t *testing.T) {
	leaf := &node.Node{Kind: node.KindString, HasType: true}
	middle := &node.Node{Kind: node.KindRef, Ref: "#/definitions/Leaf"}
	root := &node.Node{
		Kind: node.KindObject,
		Properties: map[string]*node.Node{
			"definitions_Leaf_placeholder": leaf,
		},
		Raw: map[string]any{
			"definitions": map[string]any{
				"Leaf": map[string]any{"type": "string"},
			},
		},
	}
	root.Properties["child"] = middle

	r := New(nil, trivialParse)
	scope := node.NewScope(root)

	got, _, err := r.Resolve(context.Background(), "#/child", scope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind == node.KindRef {
		t.Fatalf("expected the embedded ref to have been followed, got a bare ref node")
	}
}

// TestResolveRestoresDocumentRoot verifies that after a remote
// document's internal ref resolves against its own root, the scope handed
// back must be rooted at the caller's original document again.
func TestResolveRestoresDocumentRoot(t *testing.T) {
	remoteRoot := &node.Node{
		Kind: node.KindObject,
		Raw: map[string]any{
			"definitions": map[string]any{
				"X": map[string]any{"type": "number"},
			},
		},
	}

	r := New(func(data []byte) (*node.Node, error) { return remoteRoot, nil }, trivialParse)

	localRoot := &node.Node{Kind: node.KindObject}
	scope := node.NewScope(localRoot)

	// Pre-seed the cache so the fetch never actually needs a live opener.
	r.Cache.Put("test://b.json", remoteRoot)

	got, outScope, err := r.Resolve(context.Background(), "test://b.json#/definitions/X", scope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected a resolved node")
	}
	if outScope.DocumentRoot != localRoot {
		t.Fatalf("expected document root restored to the caller's root, got %+v", outScope.DocumentRoot)
	}
}

func TestExtractSchemeIsPermissive(t *testing.T) {
	cases := map[string]string{
		"http://example.com/a.json": "http",
		"HTTPS://example.com":       "https",
		"file:///tmp/a.json":        "file",
		"not-a-uri":                 "",
		"#/definitions/Foo":         "",
	}
	for in, want := range cases {
		if got := ExtractScheme(in); got != want {
			t.Errorf("ExtractScheme(%q) = %q, want %q", in, got, want)
		}
	}
}
