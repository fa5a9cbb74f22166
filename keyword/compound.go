package keyword

import (
	"context"
	"fmt"

	"github.com/hollowpine/schemacore/node"
)

// Compound implements anyOf/allOf/oneOf/not. allOf and oneOf evaluate every
// branch; anyOf stops at the first branch that matches, and evaluates (and
// collects the errors of) every branch only when none matches. anyOf/oneOf
// consume their children's errors and emit a single aggregated issue on
// failure, while allOf's branch issues all surface directly since every
// branch is expected to hold simultaneously.
var Compound node.KeywordValidator = node.KeywordValidatorFunc(func(ctx context.Context, schema *node.Node, instance any, scope node.Scope, rt node.Runtime) node.Issues {
	switch schema.Combinator {
	case node.AllOf:
		var issues node.Issues
		for i, branch := range schema.SubSchemas {
			childScope := scope.WithSchemaPath(scope.SchemaPath.Field("allOf").Index(i))
			if _, iss := node.Process(ctx, branch, instance, childScope, rt); len(iss) > 0 {
				issues = append(issues, iss...)
			}
		}
		return issues

	case node.AnyOf:
		var branchIssues node.Issues
		for i, branch := range schema.SubSchemas {
			childScope := scope.WithSchemaPath(scope.SchemaPath.Field("anyOf").Index(i))
			_, iss := node.Process(ctx, branch, instance, childScope, rt)
			if len(iss) == 0 {
				return nil
			}
			branchIssues = append(branchIssues, iss...)
		}
		return node.Issues{scope.InstancePath.Issue(node.CodeCombinator,
			"Value did not match any of the allowed schemas (anyOf).",
			"branches", len(schema.SubSchemas), "branchErrors", branchIssues)}

	case node.OneOf:
		var branchIssues node.Issues
		passed := 0
		for i, branch := range schema.SubSchemas {
			childScope := scope.WithSchemaPath(scope.SchemaPath.Field("oneOf").Index(i))
			if _, iss := node.Process(ctx, branch, instance, childScope, rt); len(iss) == 0 {
				passed++
			} else {
				branchIssues = append(branchIssues, iss...)
			}
		}
		if passed == 1 {
			return nil
		}
		return node.Issues{scope.InstancePath.Issue(node.CodeCombinator,
			fmt.Sprintf("Value matched %d of %d schemas (oneOf requires exactly 1).", passed, len(schema.SubSchemas)),
			"matched", passed, "branches", len(schema.SubSchemas), "branchErrors", branchIssues)}

	case node.Not:
		if len(schema.SubSchemas) == 0 {
			return nil
		}
		childScope := scope.WithSchemaPath(scope.SchemaPath.Field("not"))
		if _, iss := node.Process(ctx, schema.SubSchemas[0], instance, childScope, rt); len(iss) == 0 {
			return node.Issues{scope.InstancePath.Issue(node.CodeCombinator,
				"Value must not match the \"not\" schema, but did.")}
		}
		return nil
	}
	return nil
})
