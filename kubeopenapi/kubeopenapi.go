package kubeopenapi

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hollowpine/schemacore/jsonschema"
	"github.com/hollowpine/schemacore/node"
)

// Import compiles a Kubernetes-flavored OpenAPI v3 schema (the
// openAPIV3Schema found in a CustomResourceDefinition, or a bare
// validation schema) into a *node.Node ready for node.Process. The input
// can be either a decoded map[string]any or raw JSON bytes.
//
// Import does not expand $ref itself: jsonschema.Parse turns any $ref key
// into a KindRef node as it does for any other schema, and $defs survives
// untouched on the node's Raw map. Resolution (local $defs, id-scoped, or
// remote) happens at validate time through whatever resolver the caller's
// node.Runtime carries — schemacore.DefaultRuntime registers the document's
// own ids and resolves #/$defs/... refs through the same general JSON
// Pointer traversal it uses for every other schema.
func Import(schema any, opts Options) (*node.Node, Diag, error) {
	d := &simpleDiag{}
	if opts.Profile == "" {
		opts.Profile = ProfileStructuralV1
	}
	if schema == nil {
		return nil, d, errors.New("kubeopenapi: nil schema")
	}
	var root map[string]any
	switch t := schema.(type) {
	case []byte:
		if err := json.Unmarshal(t, &root); err != nil {
			return nil, d, fmt.Errorf("kubeopenapi: invalid JSON: %w", err)
		}
	case map[string]any:
		root = t
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return nil, d, fmt.Errorf("kubeopenapi: cannot marshal input: %w", err)
		}
		if err := json.Unmarshal(b, &root); err != nil {
			return nil, d, fmt.Errorf("kubeopenapi: invalid marshaled JSON: %w", err)
		}
	}

	// Accept direct schema (openAPIV3Schema) or unwrap CRD root (spec.versions[].schema.openAPIV3Schema)
	if spec, ok := root["openAPIV3Schema"].(map[string]any); ok {
		root = spec
	} else if unwrapped := unwrapCRDSchema(root); unwrapped != nil {
		root = unwrapped
	}

	warnNonObjectRoot(root, d)
	translateKubernetesExtensions(root, opts, d)

	n, err := jsonschema.Parse(root)
	if err != nil {
		return nil, d, fmt.Errorf("kubeopenapi: %w", err)
	}
	return n, d, nil
}

// unwrapCRDSchema tries to extract openAPIV3Schema from a Kubernetes CRD document.
// It looks for spec.versions[].schema.openAPIV3Schema (preferring served=true),
// then falls back to spec.validation.openAPIV3Schema for legacy specs.
func unwrapCRDSchema(root map[string]any) map[string]any {
	if spec, ok := root["spec"].(map[string]any); ok {
		if vers, ok := spec["versions"].([]any); ok {
			var firstFound map[string]any
			for _, v := range vers {
				vm, _ := v.(map[string]any)
				if vm == nil {
					continue
				}
				served := true
				if sv, ok := vm["served"].(bool); ok {
					served = sv
				}
				if sch, ok := vm["schema"].(map[string]any); ok {
					if oas, ok := sch["openAPIV3Schema"].(map[string]any); ok {
						if served {
							return oas
						}
						if firstFound == nil {
							firstFound = oas
						}
					}
				}
			}
			if firstFound != nil {
				return firstFound
			}
		}
		if val, ok := spec["validation"].(map[string]any); ok {
			if oas, ok := val["openAPIV3Schema"].(map[string]any); ok {
				return oas
			}
		}
	}
	return nil
}

// warnNonObjectRoot warns when the root declares a non-object type.
func warnNonObjectRoot(doc map[string]any, d *simpleDiag) {
	if t, _ := doc["type"].(string); t != "object" && t != "" {
		d.warnf("non-object at root treated as object-compatible: type=%q", t)
	}
}

// translateKubernetesExtensions rewrites CRD-specific keywords into the
// plain-JSON-Schema shape jsonschema.Parse understands, recursing into
// properties/patternProperties/additionalProperties/items. A schema with
// patternProperties and no additionalProperties gets additionalProperties:
// false, so keys matching no pattern are rejected.
func translateKubernetesExtensions(doc map[string]any, opts Options, d *simpleDiag) {
	if doc == nil {
		return
	}

	if isIntOrString(doc) {
		delete(doc, "x-kubernetes-int-or-string")
		doc["anyOf"] = []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "integer"},
		}
		delete(doc, "type")
	}

	if v, ok := doc["nullable"].(bool); ok && v {
		delete(doc, "nullable")
		if t, ok := doc["type"].(string); ok {
			typed := map[string]any{"type": t}
			for _, k := range [...]string{"properties", "required", "items", "additionalProperties", "patternProperties", "propertyNames", "format", "enum", "minimum", "maximum", "minLength", "maxLength", "pattern", "minItems", "maxItems", "uniqueItems"} {
				if v, ok := doc[k]; ok {
					typed[k] = v
					delete(doc, k)
				}
			}
			for k := range doc {
				delete(doc, k)
			}
			doc["anyOf"] = []any{typed, map[string]any{"type": "null"}}
		}
	}

	if v, ok := doc["x-kubernetes-preserve-unknown-fields"].(bool); ok && v {
		doc["additionalProperties"] = true
		delete(doc, "x-kubernetes-preserve-unknown-fields")
	}

	if lt, ok := doc["x-kubernetes-list-type"].(string); ok {
		if lt == "set" || lt == "map" {
			doc["uniqueItems"] = true
		}
		delete(doc, "x-kubernetes-list-type")
		delete(doc, "x-kubernetes-list-map-keys")
		d.warnf("x-kubernetes-list-type %q approximated as uniqueItems", lt)
	}
	delete(doc, "x-kubernetes-embedded-resource")

	if _, ok := doc["patternProperties"]; ok {
		if _, set := doc["additionalProperties"]; !set {
			doc["additionalProperties"] = false
		}
	}

	if pm, ok := doc["properties"].(map[string]any); ok {
		for _, raw := range pm {
			if ps, ok := raw.(map[string]any); ok {
				translateKubernetesExtensions(ps, opts, d)
			}
		}
	}
	if ppm, ok := doc["patternProperties"].(map[string]any); ok {
		for _, raw := range ppm {
			if ps, ok := raw.(map[string]any); ok {
				translateKubernetesExtensions(ps, opts, d)
			}
		}
	}
	if ap, ok := doc["additionalProperties"].(map[string]any); ok {
		translateKubernetesExtensions(ap, opts, d)
	}
	if it, ok := doc["items"].(map[string]any); ok {
		translateKubernetesExtensions(it, opts, d)
	} else if items, ok := doc["items"].([]any); ok {
		for _, raw := range items {
			if it, ok := raw.(map[string]any); ok {
				translateKubernetesExtensions(it, opts, d)
			}
		}
	}
	for _, key := range [...]string{"anyOf", "allOf", "oneOf"} {
		if branches, ok := doc[key].([]any); ok {
			for _, raw := range branches {
				if b, ok := raw.(map[string]any); ok {
					translateKubernetesExtensions(b, opts, d)
				}
			}
		}
	}
	if not, ok := doc["not"].(map[string]any); ok {
		translateKubernetesExtensions(not, opts, d)
	}
	if defs, ok := doc["$defs"].(map[string]any); ok {
		for _, raw := range defs {
			if ds, ok := raw.(map[string]any); ok {
				translateKubernetesExtensions(ds, opts, d)
			}
		}
	}
}

func isIntOrString(doc map[string]any) bool {
	v, ok := doc["x-kubernetes-int-or-string"].(bool)
	return ok && v
}
