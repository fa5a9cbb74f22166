package jsonschema

import (
	"encoding/json"
	"fmt"

	"github.com/hollowpine/schemacore/node"
)

// Parse turns an already-decoded JSON value (from goccy/go-json,
// encoding/json, or yaml.v3) sitting at a schema-node
// position into a *node.Node. A bare bool is accepted as the draft-4
// "always true" / "always false" schema shorthand.
func Parse(v any) (*node.Node, error) {
	switch t := v.(type) {
	case bool:
		return parseBoolSchema(t, v), nil
	case map[string]any:
		return parseObject(t)
	case nil:
		return nil, fmt.Errorf("jsonschema: schema node is null")
	default:
		return nil, fmt.Errorf("jsonschema: schema node must be an object or boolean, got %T", v)
	}
}

func parseBoolSchema(b bool, raw any) *node.Node {
	alwaysTrue := &node.Node{Kind: node.KindObject, HasType: false}
	if b {
		return alwaysTrue
	}
	return &node.Node{Kind: node.KindCompound, Combinator: node.Not, SubSchemas: []*node.Node{alwaysTrue}, Raw: raw}
}

func parseObject(m map[string]any) (*node.Node, error) {
	n := &node.Node{Constraints: m, Raw: m}

	if refVal, ok := m["$ref"]; ok {
		refStr, ok := refVal.(string)
		if !ok {
			return nil, fmt.Errorf("jsonschema: $ref must be a string, got %T", refVal)
		}
		n.Kind = node.KindRef
		n.Ref = refStr
		return n, nil
	}

	if idVal, ok := m["id"].(string); ok {
		n.ID = idVal
	}

	if err := assignKind(n, m); err != nil {
		return nil, err
	}

	if err := populateObjectFields(n, m); err != nil {
		return nil, err
	}
	if err := populateArrayFields(n, m); err != nil {
		return nil, err
	}
	if err := populateCombinatorFields(n, m); err != nil {
		return nil, err
	}

	return n, nil
}

func assignKind(n *node.Node, m map[string]any) error {
	if tv, ok := m["type"]; ok {
		ts, ok := tv.(string)
		if !ok {
			return fmt.Errorf("jsonschema: type must be a string, got %T", tv)
		}
		n.HasType = true
		switch ts {
		case "object":
			n.Kind = node.KindObject
		case "array":
			if _, tuple := m["items"].([]any); tuple {
				n.Kind = node.KindTuple
			} else {
				n.Kind = node.KindArray
			}
		case "number":
			n.Kind = node.KindNumber
		case "integer":
			n.Kind = node.KindInteger
		case "string":
			n.Kind = node.KindString
		case "boolean":
			n.Kind = node.KindBoolean
		case "null":
			n.Kind = node.KindNull
		default:
			return fmt.Errorf("jsonschema: unknown type %q", ts)
		}
		return nil
	}

	if hasCombinatorKeyword(m) {
		n.Kind = node.KindCompound
		return nil
	}
	if _, tuple := m["items"].([]any); tuple {
		n.Kind = node.KindTuple
		return nil
	}
	n.Kind = node.KindObject
	n.HasType = false
	return nil
}

func hasCombinatorKeyword(m map[string]any) bool {
	for _, key := range [...]string{"anyOf", "allOf", "oneOf", "not"} {
		if _, ok := m[key]; ok {
			return true
		}
	}
	return false
}

func populateObjectFields(n *node.Node, m map[string]any) error {
	if raw, ok := m["properties"].(map[string]any); ok {
		n.Properties = make(map[string]*node.Node, len(raw))
		for name, v := range raw {
			child, err := Parse(v)
			if err != nil {
				return fmt.Errorf("jsonschema: properties.%s: %w", name, err)
			}
			n.Properties[name] = child
		}
	}
	if raw, ok := m["required"].([]any); ok {
		n.Required = make([]string, 0, len(raw))
		for _, v := range raw {
			if s, ok := v.(string); ok {
				n.Required = append(n.Required, s)
			}
		}
	}
	if raw, ok := m["patternProperties"].(map[string]any); ok {
		n.PatternProperties = make(map[string]*node.Node, len(raw))
		for pattern, v := range raw {
			child, err := Parse(v)
			if err != nil {
				return fmt.Errorf("jsonschema: patternProperties.%s: %w", pattern, err)
			}
			n.PatternProperties[pattern] = child
		}
	}
	if raw, ok := m["dependencies"].(map[string]any); ok {
		for name, v := range raw {
			switch dv := v.(type) {
			case []any:
				var deps []string
				for _, d := range dv {
					if s, ok := d.(string); ok {
						deps = append(deps, s)
					}
				}
				if n.Dependencies == nil {
					n.Dependencies = map[string][]string{}
				}
				n.Dependencies[name] = deps
			case map[string]any:
				child, err := Parse(dv)
				if err != nil {
					return fmt.Errorf("jsonschema: dependencies.%s: %w", name, err)
				}
				if n.DependencySchemas == nil {
					n.DependencySchemas = map[string]*node.Node{}
				}
				n.DependencySchemas[name] = child
			}
		}
	}
	if raw, ok := m["propertyNames"].(map[string]any); ok {
		child, err := Parse(raw)
		if err != nil {
			return fmt.Errorf("jsonschema: propertyNames: %w", err)
		}
		n.PropertyNames = child
	}
	if raw, ok := m["additionalProperties"]; ok {
		switch av := raw.(type) {
		case bool:
			b := av
			n.AdditionalPropsAllow = &b
		case map[string]any:
			child, err := Parse(av)
			if err != nil {
				return fmt.Errorf("jsonschema: additionalProperties: %w", err)
			}
			n.AdditionalProperties = child
		}
	}
	return nil
}

func populateArrayFields(n *node.Node, m map[string]any) error {
	if raw, ok := m["items"]; ok {
		switch iv := raw.(type) {
		case []any:
			for i, it := range iv {
				child, err := Parse(it)
				if err != nil {
					return fmt.Errorf("jsonschema: items[%d]: %w", i, err)
				}
				n.TupleItems = append(n.TupleItems, child)
			}
		case map[string]any, bool:
			child, err := Parse(iv)
			if err != nil {
				return fmt.Errorf("jsonschema: items: %w", err)
			}
			n.Items = child
		}
	}
	if raw, ok := m["additionalItems"]; ok {
		switch av := raw.(type) {
		case bool:
			b := av
			n.AdditionalItemsAllow = &b
		case map[string]any:
			child, err := Parse(av)
			if err != nil {
				return fmt.Errorf("jsonschema: additionalItems: %w", err)
			}
			n.AdditionalItems = child
		}
	}
	if v, ok := numeric(m, "minItems"); ok {
		iv := int(v)
		n.MinItems = &iv
	}
	if v, ok := numeric(m, "maxItems"); ok {
		iv := int(v)
		n.MaxItems = &iv
	}
	if v, ok := m["uniqueItems"].(bool); ok {
		n.UniqueItems = v
	}
	return nil
}

func populateCombinatorFields(n *node.Node, m map[string]any) error {
	combos := []struct {
		key string
		c   node.Combinator
	}{
		{"anyOf", node.AnyOf},
		{"allOf", node.AllOf},
		{"oneOf", node.OneOf},
	}
	for _, combo := range combos {
		raw, ok := m[combo.key].([]any)
		if !ok {
			continue
		}
		if n.Kind != node.KindCompound {
			continue
		}
		n.Combinator = combo.c
		for i, sv := range raw {
			child, err := Parse(sv)
			if err != nil {
				return fmt.Errorf("jsonschema: %s[%d]: %w", combo.key, i, err)
			}
			n.SubSchemas = append(n.SubSchemas, child)
		}
		return nil
	}
	if raw, ok := m["not"]; ok && n.Kind == node.KindCompound {
		n.Combinator = node.Not
		child, err := Parse(raw)
		if err != nil {
			return fmt.Errorf("jsonschema: not: %w", err)
		}
		n.SubSchemas = []*node.Node{child}
	}
	return nil
}

func numeric(m map[string]any, key string) (float64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}
