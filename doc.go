// Package schemacore provides:
//
//   - A tagged-variant schema data model (node.Node) plus a $ref
//     resolution engine (resolver) that normalizes URIs, follows
//     JSON-Pointer fragments, and fetches remote documents through a
//     pluggable scheme registry with document-level caching.
//   - A recursive validation dispatcher (node.Process) keyed on the pair
//     of instance kind and schema kind, with a default keyword library
//     (keyword) covering the JSON Schema constraint vocabulary.
//   - Four entry shapes for validating polymorphic instances against a
//     schema: raw-to-raw, raw-to-typed, typed-to-raw, and typed
//     round-trip (see entrypoints.go).
//   - A stable error model via node.Issue/node.Issues (JSON Pointer,
//     code, message).
//   - Streaming decode enforcement (duplicate keys, depth, byte size) via
//     Source/EnforceSource, layered ahead of schema validation.
//
// Design policy:
//   - Keep only public APIs in the root package; put detailed
//     implementations under node/, resolver/, keyword/, jsonschema/, and
//     internal/.
//   - Place the fluent schema builder under dsl/ and the CLI under
//     cmd/schemacore.
//
// Typical usage:
//
//	root, err := jsonschema.ParseBytes(schemaJSON)
//	issues, err := schemacore.ValidateJSON(ctx, root, instanceJSON, schemacore.ParseOpt{})
package schemacore
