package resolver

import "github.com/hollowpine/schemacore/node"

// RegisterDocumentIDs walks root's schema tree and pre-registers every
// id-bearing subschema into the cache under its normalized document URI.
// Without this pass, a nested "id" only ever refines Scope.ID while the
// resolver is already mid-walk of some other $ref chain (see
// resolveFragmentSteps in resolve.go); a $ref appearing anywhere else in the document that simply
// names that id would otherwise force a live fetch of a URI nothing ever
// serves. Registering up front lets such refs resolve straight to the
// embedded node, the same way a cached remote document would.
func (r *Resolver) RegisterDocumentIDs(root *node.Node) {
	if root == nil {
		return
	}
	r.registerIDs(root, node.NewScope(root), make(map[*node.Node]bool))
}

func (r *Resolver) registerIDs(n *node.Node, scope node.Scope, seen map[*node.Node]bool) {
	if n == nil || seen[n] {
		return
	}
	seen[n] = true

	if n.ID != "" {
		normalized := Normalize(n.ID, scope)
		scope = scope.WithID(normalized)
		docURI, _ := splitFragment(normalized)
		r.Cache.Put(docURI, n)
	}

	for _, child := range n.Properties {
		r.registerIDs(child, scope, seen)
	}
	for _, child := range n.PatternProperties {
		r.registerIDs(child, scope, seen)
	}
	if n.AdditionalProperties != nil {
		r.registerIDs(n.AdditionalProperties, scope, seen)
	}
	if n.PropertyNames != nil {
		r.registerIDs(n.PropertyNames, scope, seen)
	}
	for _, child := range n.DependencySchemas {
		r.registerIDs(child, scope, seen)
	}
	if n.Items != nil {
		r.registerIDs(n.Items, scope, seen)
	}
	if n.AdditionalItems != nil {
		r.registerIDs(n.AdditionalItems, scope, seen)
	}
	for _, child := range n.TupleItems {
		r.registerIDs(child, scope, seen)
	}
	for _, child := range n.SubSchemas {
		r.registerIDs(child, scope, seen)
	}
}
