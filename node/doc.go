// Package node defines the in-memory schema/instance data model and the
// recursive validation dispatcher described by the core specification:
//
//   - Node: a tagged-variant schema node (Object, Array, Tuple, Number,
//     Integer, String, Boolean, Null, Compound, Ref).
//   - Path / Scope: the resolution context threaded through a validation
//     call (document root, active id, schema/instance paths, visited refs).
//   - Issue / Issues: the stable error model, keyed by JSON Pointer path.
//   - Process: the dispatcher that walks a Node and an instance in lockstep.
//
// Reference resolution itself lives in the sibling resolver package, and
// the default keyword-validator set lives in the sibling keyword package;
// both depend on this package, never the reverse, so this package stays
// free of cycles and usable in isolation (e.g. by alternative resolvers).
package node
