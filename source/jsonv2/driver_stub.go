//go:build !jsonv2

package jsonv2

import (
	"io"

	schemacore "github.com/hollowpine/schemacore"
	jsonsrc "github.com/hollowpine/schemacore/source/json"
)

// Driver returns a fallback driver when jsonv2 build tag is not enabled.
// It delegates to the default encoding/json-based source.
func Driver() schemacore.JSONDriver { return driverStub{} }

type driverStub struct{}

func (driverStub) NewReader(r io.Reader) schemacore.Source {
	return schemacore.SourceFromEngine(jsonsrc.NewReader(r), schemacore.NumberJSONNumber)
}

func (driverStub) NewBytes(b []byte) schemacore.Source {
	return schemacore.SourceFromEngine(jsonsrc.NewBytes(b), schemacore.NumberJSONNumber)
}

func (driverStub) Name() string { return "encoding/json (jsonv2 stub)" }
