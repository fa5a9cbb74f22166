// Package dsl provides a fluent builder for constructing *node.Node schema
// trees in Go code, for callers who want to assemble a schema
// programmatically instead of parsing one from JSON via the jsonschema
// package.
package dsl
