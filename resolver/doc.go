// Package resolver implements reference resolution over a graph of schema
// nodes: URI normalization, JSON-Pointer fragment tokenization, a
// concurrency-safe document cache, a pluggable URL scheme-handler registry,
// and the resolve algorithm itself (embedded-ref chasing, remote fetch with
// "restore root after resolve" semantics, cycle detection).
//
// resolver depends only on the sibling node package; it never imports the
// keyword or jsonschema packages. A *Resolver is handed a pair of parse
// functions (ParseBytes, ParseValue) so it can lazily parse document bytes and raw JSON subtrees into *node.Node
// without importing the concrete schema parser.
package resolver
