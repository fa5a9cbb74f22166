package keyword

import (
	"context"

	"github.com/hollowpine/schemacore/node"
)

// Boolean checks enum for boolean instances; there are no other standard
// boolean-specific keywords.
var Boolean node.KeywordValidator = node.KeywordValidatorFunc(func(ctx context.Context, schema *node.Node, instance any, scope node.Scope, rt node.Runtime) node.Issues {
	if issues, hasEnum := enumConstraint(schema, instance, scope); hasEnum {
		return issues
	}
	return nil
})

// Null succeeds after any null-specific keyword checks; enum is the only
// one that meaningfully applies to a null instance.
var Null node.KeywordValidator = node.KeywordValidatorFunc(func(ctx context.Context, schema *node.Node, instance any, scope node.Scope, rt node.Runtime) node.Issues {
	if issues, hasEnum := enumConstraint(schema, instance, scope); hasEnum {
		return issues
	}
	return nil
})
