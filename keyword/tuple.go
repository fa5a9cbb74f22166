package keyword

import (
	"context"

	"github.com/hollowpine/schemacore/node"
)

// Tuple implements positional-items validation: each index up to
// len(TupleItems) is validated against its own schema; indices beyond that
// fall to AdditionalItems (a schema, or an allow/deny bool via
// AdditionalItemsAllow).
var Tuple node.KeywordValidator = node.KeywordValidatorFunc(validateTuple)

func validateTuple(ctx context.Context, schema *node.Node, instance any, scope node.Scope, rt node.Runtime) node.Issues {
	arr, ok := instance.([]any)
	if !ok {
		return nil
	}

	var issues node.Issues

	if schema.MinItems != nil && len(arr) < *schema.MinItems {
		issues = append(issues, scope.InstancePath.Issue(node.CodeTooSmall,
			"Array is too short.", "minItems", *schema.MinItems, "actual", len(arr)))
	}
	if schema.MaxItems != nil && len(arr) > *schema.MaxItems {
		issues = append(issues, scope.InstancePath.Issue(node.CodeTooBig,
			"Array is too long.", "maxItems", *schema.MaxItems, "actual", len(arr)))
	}

	for i, v := range arr {
		childScope := scope.WithInstancePath(scope.InstancePath.Index(i))
		if i < len(schema.TupleItems) {
			childScope = childScope.WithSchemaPath(scope.SchemaPath.Field("items").Index(i))
			if _, sub := node.Process(ctx, schema.TupleItems[i], v, childScope, rt); len(sub) > 0 {
				issues = append(issues, sub...)
			}
			continue
		}
		if schema.AdditionalItemsAllow != nil && !*schema.AdditionalItemsAllow {
			issues = append(issues, childScope.InstancePath.Issue(node.CodeUnknownKey,
				"Additional array item is not allowed.", "index", i))
			continue
		}
		if schema.AdditionalItems != nil {
			childScope = childScope.WithSchemaPath(scope.SchemaPath.Field("additionalItems"))
			if _, sub := node.Process(ctx, schema.AdditionalItems, v, childScope, rt); len(sub) > 0 {
				issues = append(issues, sub...)
			}
		}
	}

	return issues
}
