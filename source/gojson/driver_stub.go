//go:build !gojson

package gojson

import (
	"io"

	schemacore "github.com/hollowpine/schemacore"
	jsonsrc "github.com/hollowpine/schemacore/source/json"
)

// Driver returns a stub driver description when gojson tag is not enabled.
// It delegates to the encoding/json-based source directly to avoid recursion.
func Driver() schemacore.JSONDriver { return stub{} }

type stub struct{}

func (stub) NewReader(r io.Reader) schemacore.Source {
	return schemacore.SourceFromEngine(jsonsrc.NewReader(r), schemacore.NumberJSONNumber)
}
func (stub) NewBytes(b []byte) schemacore.Source {
	return schemacore.SourceFromEngine(jsonsrc.NewBytes(b), schemacore.NumberJSONNumber)
}
func (stub) Name() string { return "encoding/json (gojson stub)" }
