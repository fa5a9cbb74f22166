package source

import (
	schemacore "github.com/hollowpine/schemacore"
	drvgojson "github.com/hollowpine/schemacore/source/gojson"
)

// init in a separate package to avoid import cycle in root. Importing this package installs
// source/gojson's driver globally: go-json when built with the gojson tag, otherwise its
// encoding/json stub.
func init() { schemacore.SetJSONDriver(drvgojson.Driver()) }
