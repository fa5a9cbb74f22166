package dsl

import "github.com/hollowpine/schemacore/node"

// objectBuilder accumulates an object schema's fields before Build.
type objectBuilder struct {
	n *node.Node
}

type fieldStep struct {
	b    *objectBuilder
	name string
}

// Object creates a new object schema builder with safe defaults
// (additionalProperties: false).
func Object() *objectBuilder {
	deny := false
	return &objectBuilder{n: &node.Node{
		Kind:                 node.KindObject,
		HasType:              true,
		Properties:           map[string]*node.Node{},
		AdditionalPropsAllow: &deny,
	}}
}

// Field registers a field with its schema and returns a step that can mark
// it required or chain back into the builder.
func (b *objectBuilder) Field(name string, schema *node.Node) *fieldStep {
	b.n.Properties[name] = schema
	return &fieldStep{b: b, name: name}
}

// Required marks the field as required and returns the builder.
func (f *fieldStep) Required() *objectBuilder {
	f.b.n.Required = append(f.b.n.Required, f.name)
	return f.b
}

// Field chains to another field registration on the same builder.
func (f *fieldStep) Field(name string, schema *node.Node) *fieldStep {
	return f.b.Field(name, schema)
}

// Build returns the finished builder.
func (f *fieldStep) Build() *node.Node { return f.b.Build() }

// Dependency chains to a dependency registration on the same builder.
func (f *fieldStep) Dependency(name string, deps ...string) *objectBuilder {
	return f.b.Dependency(name, deps...)
}

// Require marks one or more already-registered fields as required.
func (b *objectBuilder) Require(names ...string) *objectBuilder {
	b.n.Required = append(b.n.Required, names...)
	return b
}

// PatternProperty registers a regexp-keyed property schema.
func (b *objectBuilder) PatternProperty(pattern string, schema *node.Node) *objectBuilder {
	if b.n.PatternProperties == nil {
		b.n.PatternProperties = map[string]*node.Node{}
	}
	b.n.PatternProperties[pattern] = schema
	return b
}

// PropertyNames constrains every property key via schema.
func (b *objectBuilder) PropertyNames(schema *node.Node) *objectBuilder {
	b.n.PropertyNames = schema
	return b
}

// Dependency registers a simple presence dependency (name requires deps).
func (b *objectBuilder) Dependency(name string, deps ...string) *objectBuilder {
	if b.n.Dependencies == nil {
		b.n.Dependencies = map[string][]string{}
	}
	b.n.Dependencies[name] = deps
	return b
}

// UnknownStrict rejects properties not covered by Properties/PatternProperties.
func (b *objectBuilder) UnknownStrict() *objectBuilder {
	deny := false
	b.n.AdditionalPropsAllow = &deny
	b.n.AdditionalProperties = nil
	return b
}

// UnknownAllow permits unmatched properties without further constraint.
func (b *objectBuilder) UnknownAllow() *objectBuilder {
	allow := true
	b.n.AdditionalPropsAllow = &allow
	b.n.AdditionalProperties = nil
	return b
}

// AdditionalProperties validates unmatched properties against schema.
func (b *objectBuilder) AdditionalProperties(schema *node.Node) *objectBuilder {
	b.n.AdditionalPropsAllow = nil
	b.n.AdditionalProperties = schema
	return b
}

// WithID attaches a base-URI refinement to the built node.
func (b *objectBuilder) WithID(id string) *objectBuilder {
	b.n.ID = id
	return b
}

// Build returns the finished object schema node.
func (b *objectBuilder) Build() *node.Node { return b.n }
