package jsonschema

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hollowpine/schemacore/node"
)

// ParseYAML decodes a YAML schema document (as used by Kubernetes CRD
// manifests, see the kubeopenapi package) and parses it the same way
// ParseBytes does for JSON. yaml.v3 decodes mappings into map[string]any
// directly, so no key-type normalization pass is needed.
func ParseYAML(data []byte) (*node.Node, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("jsonschema: yaml decode: %w", err)
	}
	return Parse(raw)
}
