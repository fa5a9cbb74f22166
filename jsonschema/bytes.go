package jsonschema

import (
	"bytes"
	"fmt"

	gojson "github.com/goccy/go-json"

	"github.com/hollowpine/schemacore/node"
)

// ParseBytes decodes a JSON document with goccy/go-json (numbers preserved
// as json.Number, matching the rest of the module's decoding stack) and
// parses the result into a schema node tree. This is the ParseBytes hook
// resolver.Resolver uses for freshly-fetched remote documents.
func ParseBytes(data []byte) (*node.Node, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("jsonschema: decode: %w", err)
	}
	return Parse(raw)
}
