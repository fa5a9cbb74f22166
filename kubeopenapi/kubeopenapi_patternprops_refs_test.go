package kubeopenapi_test

import (
	"testing"

	"github.com/hollowpine/schemacore/kubeopenapi"
)

func TestImport_Refs_LocalDefs_InProperties(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"$defs": map[string]any{
			"Name": map[string]any{"type": "string"},
			"LabelMap": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "string"},
			},
		},
		"properties": map[string]any{
			"name":   map[string]any{"$ref": "#/$defs/Name"},
			"labels": map[string]any{"$ref": "#/$defs/LabelMap"},
		},
		"required":             []any{"name", "labels"},
		"additionalProperties": false,
	}
	n, _, err := kubeopenapi.Import(schema, kubeopenapi.Options{})
	if err != nil {
		t.Fatalf("import err: %v", err)
	}
	js := []byte(`{"name":"ok","labels":{"a":"x"}}`)
	if issues := validateInstance(t, n, js); len(issues) != 0 {
		t.Fatalf("parse err (should resolve $defs): %v", issues)
	}
}

func TestImport_Refs_LocalDefs_InItems(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"$defs": map[string]any{
			"Tag": map[string]any{"type": "string"},
		},
		"properties": map[string]any{
			"tags": map[string]any{
				"type":  "array",
				"items": map[string]any{"$ref": "#/$defs/Tag"},
			},
		},
		"required":             []any{"tags"},
		"additionalProperties": false,
	}
	n, _, err := kubeopenapi.Import(schema, kubeopenapi.Options{})
	if err != nil {
		t.Fatalf("import err: %v", err)
	}
	js := []byte(`{"tags":["a","b"]}`)
	if issues := validateInstance(t, n, js); len(issues) != 0 {
		t.Fatalf("parse err (should resolve $defs in items): %v", issues)
	}
}

func TestImport_PatternProperties_SingleRegex_StringValues(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"labels": map[string]any{
				"type": "object",
				// keys must start with 'app-'
				"patternProperties": map[string]any{
					"^app-": map[string]any{"type": "string"},
				},
			},
		},
		"required":             []any{"labels"},
		"additionalProperties": false,
	}
	n, _, err := kubeopenapi.Import(schema, kubeopenapi.Options{})
	if err != nil {
		t.Fatalf("import err: %v", err)
	}
	if issues := validateInstance(t, n, []byte(`{"labels":{"app-a":"x"}}`)); len(issues) != 0 {
		t.Fatalf("expected accept: %v", issues)
	}
	if issues := validateInstance(t, n, []byte(`{"labels":{"bad":"x"}}`)); len(issues) == 0 {
		t.Fatalf("expected key pattern violation for 'bad'")
	}
}

func TestImport_PatternProperties_MultipleRegex_StringValues(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"labels": map[string]any{
				"type": "object",
				// allow keys starting with 'app-' or 'sys-'
				"patternProperties": map[string]any{
					"^app-": map[string]any{"type": "string"},
					"^sys-": map[string]any{"type": "string"},
				},
			},
		},
		"required":             []any{"labels"},
		"additionalProperties": false,
	}
	n, _, err := kubeopenapi.Import(schema, kubeopenapi.Options{})
	if err != nil {
		t.Fatalf("import err: %v", err)
	}
	if issues := validateInstance(t, n, []byte(`{"labels":{"app-a":"x","sys-b":"y"}}`)); len(issues) != 0 {
		t.Fatalf("expected accept both prefixes: %v", issues)
	}
	if issues := validateInstance(t, n, []byte(`{"labels":{"bad":"x"}}`)); len(issues) == 0 {
		t.Fatalf("expected key pattern violation for 'bad'")
	}
}

func TestImport_PatternProperties_WithAdditionalPropertiesTrue_AllowsUnmatchedKeys(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"labels": map[string]any{
				"type": "object",
				"patternProperties": map[string]any{
					"^app-": map[string]any{"type": "string"},
				},
				// unmatched keys should be allowed when additionalProperties is true
				"additionalProperties": true,
			},
		},
		"required":             []any{"labels"},
		"additionalProperties": false,
	}
	n, _, err := kubeopenapi.Import(schema, kubeopenapi.Options{})
	if err != nil {
		t.Fatalf("import err: %v", err)
	}
	if issues := validateInstance(t, n, []byte(`{"labels":{"app-a":"x","other":"y"}}`)); len(issues) != 0 {
		t.Fatalf("expected unmatched key allowed due to additionalProperties=true: %v", issues)
	}
}

func TestImport_PatternProperties_WithAdditionalPropertiesSchema_TypeMismatch(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"labels": map[string]any{
				"type": "object",
				"patternProperties": map[string]any{
					"^app-": map[string]any{"type": "string"},
				},
				// allow other keys, but enforce that their values are number
				"additionalProperties": map[string]any{"type": "number"},
			},
		},
		"required":             []any{"labels"},
		"additionalProperties": false,
	}
	n, _, err := kubeopenapi.Import(schema, kubeopenapi.Options{})
	if err != nil {
		t.Fatalf("import err: %v", err)
	}
	if issues := validateInstance(t, n, []byte(`{"labels":{"app-a":"x","other":1}}`)); len(issues) != 0 {
		t.Fatalf("expected accept: %v", issues)
	}
	if issues := validateInstance(t, n, []byte(`{"labels":{"other":"y"}}`)); len(issues) == 0 {
		t.Fatalf("expected type mismatch for additionalProperties schema")
	}
}

func TestImport_PropertyNames_Pattern_Only(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"labels": map[string]any{
				"type": "object",
				"propertyNames": map[string]any{
					"pattern": "^app-",
				},
			},
		},
		"required":             []any{"labels"},
		"additionalProperties": false,
	}
	n, _, err := kubeopenapi.Import(schema, kubeopenapi.Options{})
	if err != nil {
		t.Fatalf("import err: %v", err)
	}
	if issues := validateInstance(t, n, []byte(`{"labels":{"app-a":"x"}}`)); len(issues) != 0 {
		t.Fatalf("expected accept: %v", issues)
	}
	if issues := validateInstance(t, n, []byte(`{"labels":{"bad":"x"}}`)); len(issues) == 0 {
		t.Fatalf("expected propertyNames pattern violation for 'bad'")
	}
}

func TestImport_PropertyNames_WithAdditionalPropertiesTrue_RejectsUnmatchedKeys(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"labels": map[string]any{
				"type": "object",
				"propertyNames": map[string]any{
					"pattern": "^app-",
				},
				"additionalProperties": true,
			},
		},
		"required":             []any{"labels"},
		"additionalProperties": false,
	}
	n, _, err := kubeopenapi.Import(schema, kubeopenapi.Options{})
	if err != nil {
		t.Fatalf("import err: %v", err)
	}
	if issues := validateInstance(t, n, []byte(`{"labels":{"other":"y"}}`)); len(issues) == 0 {
		t.Fatalf("expected propertyNames pattern violation for 'other'")
	}
}
