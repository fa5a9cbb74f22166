package schemacore

import (
	"context"
	"encoding/json"

	eng "github.com/hollowpine/schemacore/internal/engine"
	"github.com/hollowpine/schemacore/jsonschema"
	"github.com/hollowpine/schemacore/keyword"
	"github.com/hollowpine/schemacore/node"
	"github.com/hollowpine/schemacore/resolver"
)

// DefaultRuntime bundles a fresh resolver and the default keyword registry
// into the node.Runtime the dispatcher needs, defaulting to the built-in
// jsonschema parser. root's own id-bearing subschemas are pre-registered
// into the resolver's cache so a $ref naming one of those ids resolves
// without a network fetch.
func DefaultRuntime(root *node.Node) node.Runtime {
	res := resolver.New(jsonschema.ParseBytes, jsonschema.Parse)
	res.RegisterDocumentIDs(root)
	return node.Runtime{Registry: keyword.Default(), Resolve: res.AsResolveFunc()}
}

// decodeJSON runs instance bytes through the streaming enforcement layer
// (duplicate keys, depth, size) ahead of building the any value
// node.Process validates against. The bool return reports whether decoding
// was aborted by a policy violation (e.g. OnDuplicateKey: Error) before
// producing a value; in that case the returned issues describe why and v
// must not be passed to node.Process. Issues collected under Warn severity
// are returned alongside a valid v so callers can merge them into the
// validation result.
func decodeJSON(data []byte, opt ParseOpt) (v any, issues node.Issues, aborted bool, err error) {
	var collected node.Issues
	src := EnforceSourceWith(JSONBytes(data), opt, func(iss node.Issue) {
		collected = append(collected, iss)
	})
	engSrc := EngineTokenSource(src)
	v, err = eng.DecodeAnyFromSource(engSrc)
	if err != nil {
		if _, ok := err.(eng.IssueError); ok {
			return nil, collected, true, nil
		}
		return nil, nil, false, err
	}
	return v, collected, false, nil
}

// ValidateJSON is entry shape 1: validate raw JSON against root, returning
// raw JSON's decoded issues.
func ValidateJSON(ctx context.Context, root *node.Node, instance []byte, opt ParseOpt) (node.Issues, error) {
	v, decodeIssues, aborted, err := decodeJSON(instance, opt)
	if err != nil {
		return nil, err
	}
	if aborted {
		return decodeIssues, nil
	}
	rt := DefaultRuntime(root)
	_, issues := node.Process(ctx, root, v, node.NewScope(root), rt)
	if len(decodeIssues) > 0 {
		issues = append(append(node.Issues{}, decodeIssues...), issues...)
	}
	return issues, nil
}

// ValidateJSONInto is entry shape 2: validate raw JSON, then decode the
// same bytes into a typed T. Decoding into T only happens when validation
// found no issues.
func ValidateJSONInto[T any](ctx context.Context, root *node.Node, instance []byte, opt ParseOpt) (T, node.Issues, error) {
	var zero T
	issues, err := ValidateJSON(ctx, root, instance, opt)
	if err != nil || len(issues) > 0 {
		return zero, issues, err
	}
	var out T
	if err := json.Unmarshal(instance, &out); err != nil {
		return zero, nil, err
	}
	return out, nil, nil
}

// ValidateValue is entry shape 3: encode a typed value to JSON, then
// validate the encoded form against root.
func ValidateValue[T any](ctx context.Context, root *node.Node, value T, opt ParseOpt) (node.Issues, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return ValidateJSON(ctx, root, encoded, opt)
}

// ValidateRoundTrip is entry shape 4: encode value to JSON, validate, and
// on success decode the validated JSON back into a fresh T. Per the
// round-trip property, re-encoding the result yields JSON equal to the
// validated instance.
func ValidateRoundTrip[T any](ctx context.Context, root *node.Node, value T, opt ParseOpt) (T, node.Issues, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		var zero T
		return zero, nil, err
	}
	return ValidateJSONInto[T](ctx, root, encoded, opt)
}
