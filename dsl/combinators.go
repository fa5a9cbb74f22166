package dsl

import "github.com/hollowpine/schemacore/node"

// AnyOf returns a schema satisfied when at least one branch matches.
func AnyOf(branches ...*node.Node) *node.Node {
	return &node.Node{Kind: node.KindCompound, Combinator: node.AnyOf, SubSchemas: branches}
}

// AllOf returns a schema satisfied only when every branch matches.
func AllOf(branches ...*node.Node) *node.Node {
	return &node.Node{Kind: node.KindCompound, Combinator: node.AllOf, SubSchemas: branches}
}

// OneOf returns a schema satisfied when exactly one branch matches.
func OneOf(branches ...*node.Node) *node.Node {
	return &node.Node{Kind: node.KindCompound, Combinator: node.OneOf, SubSchemas: branches}
}

// Not returns a schema satisfied only when sub fails to match.
func Not(sub *node.Node) *node.Node {
	return &node.Node{Kind: node.KindCompound, Combinator: node.Not, SubSchemas: []*node.Node{sub}}
}
