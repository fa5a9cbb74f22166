package dsl

import "github.com/hollowpine/schemacore/node"

// Array returns an array schema validating every element against items.
func Array(items *node.Node) *node.Node {
	return &node.Node{Kind: node.KindArray, HasType: true, Items: items}
}

// Tuple returns a positional-items array schema.
func Tuple(items ...*node.Node) *node.Node {
	return &node.Node{Kind: node.KindTuple, HasType: true, TupleItems: items}
}

// MinItems sets the array/tuple's minItems constraint.
func MinItems(n *node.Node, v int) *node.Node {
	n.MinItems = &v
	return n
}

// MaxItems sets the array/tuple's maxItems constraint.
func MaxItems(n *node.Node, v int) *node.Node {
	n.MaxItems = &v
	return n
}

// UniqueItems marks the array/tuple as requiring unique elements.
func UniqueItems(n *node.Node) *node.Node {
	n.UniqueItems = true
	return n
}

// AdditionalItems validates a Tuple's items past the declared positions.
func AdditionalItems(n *node.Node, schema *node.Node) *node.Node {
	n.AdditionalItems = schema
	return n
}
