package resolver

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/hollowpine/schemacore/node"
)

// Resolver implements node.ResolveFunc's semantics against a document
// cache and a scheme-handler registry. It is parameterized
// over the two parse operations it needs from the schema parser: parsing a
// freshly fetched document's bytes, and lazily parsing a raw JSON subtree
// found by falling back to Node.Raw during fragment traversal. Neither
// function type couples this package to the concrete jsonschema package.
type Resolver struct {
	Registry *Registry
	Cache    *Cache

	// ParseBytes parses a whole freshly-fetched document.
	ParseBytes func(data []byte) (*node.Node, error)
	// ParseValue parses an already-decoded raw JSON value (map[string]any,
	// []any, or a scalar) into a schema node, used when fragment traversal
	// steps into a position the eager parse left as Raw only (e.g. entries
	// under "definitions"/"$defs").
	ParseValue func(v any) (*node.Node, error)
}

// New returns a Resolver with a fresh cache and the default registry.
func New(parseBytes func([]byte) (*node.Node, error), parseValue func(any) (*node.Node, error)) *Resolver {
	return &Resolver{
		Registry:   NewRegistry(),
		Cache:      NewCache(),
		ParseBytes: parseBytes,
		ParseValue: parseValue,
	}
}

// AsResolveFunc adapts r into the node.ResolveFunc the dispatcher consumes.
func (r *Resolver) AsResolveFunc() node.ResolveFunc {
	return r.Resolve
}

// Resolve implements resolve(ref_string, scope) -> (resolved_node,
// updated_scope), including post-resolution follow-through (chase $ref
// chains until the target no longer carries one).
func (r *Resolver) Resolve(ctx context.Context, ref string, scope node.Scope) (*node.Node, node.Scope, error) {
	originalVisited := scope.Visited

	n, outScope, err := r.resolveOnce(ctx, ref, scope)
	if err != nil {
		return nil, scope, err
	}

	seen := map[string]struct{}{ref: {}}
	for n.Kind == node.KindRef {
		if _, looped := seen[n.Ref]; looped {
			break // cycle: stop following, use the node as-is
		}
		seen[n.Ref] = struct{}{}
		next, nextScope, err := r.resolveOnce(ctx, n.Ref, outScope)
		if err != nil {
			return nil, scope, err
		}
		n, outScope = next, nextScope
	}

	// Visited is local to this resolution chain; it does not leak into the
	// scope handed back to the caller for validating the target's children.
	outScope.Visited = originalVisited
	return n, outScope, nil
}

func (r *Resolver) resolveOnce(ctx context.Context, ref string, scope node.Scope) (*node.Node, node.Scope, error) {
	scope = scope.WithVisited(ref)

	switch {
	case ref == "#":
		return scope.DocumentRoot, scope, nil
	case strings.HasPrefix(ref, "#/"):
		segs := TokenizeFragment(ref)
		return r.resolveFragmentSteps(ctx, scope.DocumentRoot, segs, scope)
	case hasScheme(ref):
		return r.resolveRemote(ctx, ref, scope)
	default:
		segs := TokenizeFragment("#" + ref)
		if n, s, err := r.resolveFragmentSteps(ctx, scope.DocumentRoot, segs, scope); err == nil {
			return n, s, nil
		}
		return r.resolveRelativeDocument(ctx, ref, scope)
	}
}

// resolveFragmentSteps walks root segment by segment, extending schema_path
// and refining scope.id as it descends.
func (r *Resolver) resolveFragmentSteps(ctx context.Context, root *node.Node, segs []string, scope node.Scope) (*node.Node, node.Scope, error) {
	cur := root
	if cur == nil {
		return nil, scope, &node.ResolutionError{Ref: strings.Join(segs, "/"), Message: "no document root in scope"}
	}
	for _, seg := range segs {
		if seg == "" {
			continue
		}
		next, nextScope, err := r.step(ctx, cur, seg, scope)
		if err != nil {
			return nil, scope, err
		}
		cur = next
		scope = nextScope.WithSchemaPath(nextScope.SchemaPath.Segment(seg))
		if cur.ID != "" {
			scope = scope.WithID(Normalize(cur.ID, scope))
		}
	}
	return cur, scope, nil
}

// step advances from cur into its child named seg, chasing an embedded
// $ref on cur first if present and not already visited on this chain.
func (r *Resolver) step(ctx context.Context, cur *node.Node, seg string, scope node.Scope) (*node.Node, node.Scope, error) {
	if cur.Kind == node.KindRef {
		if scope.HasVisited(cur.Ref) {
			return cur, scope, nil // cycle: stop following, use as-is
		}
		resolved, nextScope, err := r.Resolve(ctx, cur.Ref, scope)
		if err != nil {
			return nil, scope, err
		}
		cur, scope = resolved, nextScope
	}

	if cur.Properties != nil {
		if child, ok := cur.Properties[seg]; ok {
			return child, scope, nil
		}
	}
	if cur.DependencySchemas != nil {
		if child, ok := cur.DependencySchemas[seg]; ok {
			return child, scope, nil
		}
	}
	switch seg {
	case "items":
		if cur.Items != nil {
			return cur.Items, scope, nil
		}
	case "additionalItems":
		if cur.AdditionalItems != nil {
			return cur.AdditionalItems, scope, nil
		}
	case "additionalProperties":
		if cur.AdditionalProperties != nil {
			return cur.AdditionalProperties, scope, nil
		}
	}
	if idx, convErr := strconv.Atoi(seg); convErr == nil && idx >= 0 {
		if idx < len(cur.TupleItems) {
			return cur.TupleItems[idx], scope, nil
		}
		if idx < len(cur.SubSchemas) {
			return cur.SubSchemas[idx], scope, nil
		}
	}

	switch raw := cur.Raw.(type) {
	case map[string]any:
		v, ok := raw[seg]
		if !ok {
			return nil, scope, &node.ResolutionError{Ref: seg, Message: "no such property in schema document"}
		}
		n, err := r.ParseValue(v)
		if err != nil {
			return nil, scope, &node.ResolutionError{Ref: seg, Message: "malformed schema at pointer segment", Cause: err}
		}
		return n, scope, nil
	case []any:
		idx, convErr := strconv.Atoi(seg)
		if convErr != nil || idx < 0 || idx >= len(raw) {
			return nil, scope, &node.ResolutionError{Ref: seg, Message: "array index out of range"}
		}
		n, err := r.ParseValue(raw[idx])
		if err != nil {
			return nil, scope, &node.ResolutionError{Ref: seg, Message: "malformed schema at pointer segment", Cause: err}
		}
		return n, scope, nil
	default:
		return nil, scope, &node.ResolutionError{Ref: seg, Message: "cannot traverse into a leaf schema value"}
	}
}

func (r *Resolver) resolveRemote(ctx context.Context, ref string, scope node.Scope) (*node.Node, node.Scope, error) {
	docURI, fragment := splitFragment(ref)
	doc, err := r.fetchDocument(ctx, docURI)
	if err != nil {
		return nil, scope, err
	}
	if fragment == "" {
		return doc, scope, nil
	}

	subScope := scope.WithDocumentRoot(doc)
	segs := TokenizeFragment("#" + fragment)
	resolved, subScope, err := r.resolveFragmentSteps(ctx, doc, segs, subScope)
	if err != nil {
		return nil, scope, err
	}

	// Restore the caller's document root now that the sub-resolution
	// against the fetched document is complete.
	subScope.DocumentRoot = scope.DocumentRoot
	return resolved, subScope, nil
}

func (r *Resolver) resolveRelativeDocument(ctx context.Context, ref string, scope node.Scope) (*node.Node, node.Scope, error) {
	absolute := Normalize(ref, scope)
	docURI, fragment := splitFragment(absolute)
	doc, err := r.fetchDocument(ctx, docURI)
	if err != nil {
		return nil, scope, &node.ResolutionError{Ref: ref, Message: "unresolvable relative reference", Cause: err}
	}
	if fragment == "" {
		return doc, scope, nil
	}
	subScope := scope.WithDocumentRoot(doc)
	segs := TokenizeFragment("#" + fragment)
	resolved, subScope, err := r.resolveFragmentSteps(ctx, doc, segs, subScope)
	if err != nil {
		return nil, scope, err
	}
	subScope.DocumentRoot = scope.DocumentRoot
	return resolved, subScope, nil
}

func (r *Resolver) fetchDocument(ctx context.Context, uri string) (*node.Node, error) {
	return r.Cache.GetOrFetch(uri, func() (*node.Node, error) {
		body, err := r.Registry.Open(ctx, uri)
		if err != nil {
			return nil, &node.ResolutionError{Ref: uri, Message: "unreachable URL", Cause: err}
		}
		defer body.Close()
		data, err := io.ReadAll(body)
		if err != nil {
			return nil, &node.ResolutionError{Ref: uri, Message: "failed reading fetched document", Cause: err}
		}
		n, err := r.ParseBytes(data)
		if err != nil {
			return nil, &node.ResolutionError{Ref: uri, Message: "unparseable fetched document", Cause: err}
		}
		return n, nil
	})
}
