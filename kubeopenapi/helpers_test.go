package kubeopenapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/hollowpine/schemacore/jsonschema"
	"github.com/hollowpine/schemacore/keyword"
	"github.com/hollowpine/schemacore/node"
	"github.com/hollowpine/schemacore/resolver"
)

// validateInstance decodes js and validates it against n using the default
// keyword registry and a fresh resolver pre-seeded with n's own ids, the
// same wiring schemacore.DefaultRuntime gives every other schema. $defs
// referenced via $ref resolve lazily at this point rather than having been
// expanded in place by Import.
func validateInstance(t *testing.T, n *node.Node, js []byte) node.Issues {
	t.Helper()
	dec := json.NewDecoder(bytes.NewReader(js))
	dec.UseNumber()
	var instance any
	if err := dec.Decode(&instance); err != nil {
		t.Fatalf("decode instance: %v", err)
	}
	res := resolver.New(jsonschema.ParseBytes, jsonschema.Parse)
	res.RegisterDocumentIDs(n)
	rt := node.Runtime{Registry: keyword.Default(), Resolve: res.AsResolveFunc()}
	_, issues := node.Process(context.Background(), n, instance, node.NewScope(n), rt)
	return issues
}
