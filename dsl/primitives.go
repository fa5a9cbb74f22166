package dsl

import "github.com/hollowpine/schemacore/node"

// String returns a bare string schema; chain constraint setters on the
// result before handing it to Field/Items/etc.
func String() *node.Node {
	return &node.Node{Kind: node.KindString, HasType: true, Constraints: map[string]any{}}
}

// Number returns a bare number schema (accepts integers too).
func Number() *node.Node {
	return &node.Node{Kind: node.KindNumber, HasType: true, Constraints: map[string]any{}}
}

// Integer returns a bare integer schema.
func Integer() *node.Node {
	return &node.Node{Kind: node.KindInteger, HasType: true, Constraints: map[string]any{}}
}

// Bool returns a bare boolean schema.
func Bool() *node.Node {
	return &node.Node{Kind: node.KindBoolean, HasType: true, Constraints: map[string]any{}}
}

// Null returns a bare null schema.
func Null() *node.Node {
	return &node.Node{Kind: node.KindNull, HasType: true, Constraints: map[string]any{}}
}

// Ref returns a $ref node pointing at uri.
func Ref(uri string) *node.Node {
	return &node.Node{Kind: node.KindRef, Ref: uri}
}

// WithConstraint sets a raw keyword on n's constraint table (e.g.
// WithConstraint(dsl.String(), "minLength", 3.0)) for keywords this
// package has no dedicated setter for.
func WithConstraint(n *node.Node, key string, value any) *node.Node {
	if n.Constraints == nil {
		n.Constraints = map[string]any{}
	}
	n.Constraints[key] = value
	return n
}

// Pattern sets the "pattern" keyword on a string schema.
func Pattern(n *node.Node, re string) *node.Node { return WithConstraint(n, "pattern", re) }

// MinLength sets the "minLength" keyword on a string schema.
func MinLength(n *node.Node, v float64) *node.Node { return WithConstraint(n, "minLength", v) }

// MaxLength sets the "maxLength" keyword on a string schema.
func MaxLength(n *node.Node, v float64) *node.Node { return WithConstraint(n, "maxLength", v) }

// Minimum sets the "minimum" keyword on a number/integer schema.
func Minimum(n *node.Node, v float64) *node.Node { return WithConstraint(n, "minimum", v) }

// Maximum sets the "maximum" keyword on a number/integer schema.
func Maximum(n *node.Node, v float64) *node.Node { return WithConstraint(n, "maximum", v) }

// MultipleOf sets the "multipleOf" keyword on a number/integer schema.
func MultipleOf(n *node.Node, v float64) *node.Node { return WithConstraint(n, "multipleOf", v) }

// Enum sets the "enum" keyword on any schema.
func Enum(n *node.Node, values ...any) *node.Node { return WithConstraint(n, "enum", values) }
