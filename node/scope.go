package node

// Scope is the resolution context threaded through one validation call. It
// is a plain value: every extension returns a copy, so restoring the
// enclosing scope after a recursive descent is automatic (the caller's
// local variable is simply untouched) rather than requiring explicit undo.
type Scope struct {
	// DocumentRoot is the schema node currently treated as root for
	// "#"-anchored references.
	DocumentRoot *Node
	// SchemaPath / InstancePath locate the node currently under
	// consideration in the schema tree and the instance tree respectively.
	SchemaPath   Path
	InstancePath Path
	// ID is the active base URI, derived from the nearest enclosing
	// id-bearing container. Empty when no id is in scope.
	ID string
	// Visited accumulates every $ref string entered on the current
	// resolution chain, for cycle detection (see the resolver package).
	Visited map[string]struct{}
}

// NewScope builds the root scope for a fresh validation call: empty paths,
// an empty visited set, and no active id.
func NewScope(root *Node) Scope {
	return Scope{DocumentRoot: root}
}

// IsRoot reports whether this scope denotes the top of the schema tree
// (both paths empty), used by the URI normalizer to pick a base URI.
func (s Scope) IsRoot() bool {
	return len(s.SchemaPath.segments) == 0 && len(s.InstancePath.segments) == 0
}

// WithSchemaPath returns a copy of s with SchemaPath set.
func (s Scope) WithSchemaPath(p Path) Scope {
	s.SchemaPath = p
	return s
}

// WithInstancePath returns a copy of s with InstancePath set.
func (s Scope) WithInstancePath(p Path) Scope {
	s.InstancePath = p
	return s
}

// WithID returns a copy of s with a refined base id.
func (s Scope) WithID(id string) Scope {
	s.ID = id
	return s
}

// WithDocumentRoot returns a copy of s rooted at a different document, used
// by the resolver while a remote fetch's sub-resolution is in flight. The
// caller is responsible for discarding this copy (not threading it back
// out) once the sub-resolution returns, which is how "restore root after
// resolve" falls out of Scope's value semantics.
func (s Scope) WithDocumentRoot(root *Node) Scope {
	s.DocumentRoot = root
	return s
}

// HasVisited reports whether ref has already been entered on this chain.
func (s Scope) HasVisited(ref string) bool {
	if s.Visited == nil {
		return false
	}
	_, ok := s.Visited[ref]
	return ok
}

// WithVisited returns a copy of s with ref added to the visited set. The
// underlying map is copied, not mutated in place, keeping Scope's "value,
// passed by copy" contract honest even though Go maps are reference types.
func (s Scope) WithVisited(ref string) Scope {
	next := make(map[string]struct{}, len(s.Visited)+1)
	for k := range s.Visited {
		next[k] = struct{}{}
	}
	next[ref] = struct{}{}
	s.Visited = next
	return s
}
