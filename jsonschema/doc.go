// Package jsonschema is the external schema-document parser the core
// consumes but does not specify. It turns already-decoded JSON (or YAML,
// for Kubernetes-style CRDs) into the node.Node tree the resolver and
// dispatcher operate on.
//
// Parsing is eager for the structure that participates in normal top-down
// validation (properties, items, combinators) and lazy for anything only
// reachable by JSON Pointer (definitions/$defs, or any other nested schema
// object the parser doesn't recurse into by default) — those subtrees stay
// as Node.Raw until the resolver's fragment-traversal fallback calls Parse
// on them directly.
package jsonschema
