package keyword

import (
	"context"

	"github.com/hollowpine/schemacore/node"
)

// Array implements the array keyword set: items, minItems, maxItems,
// uniqueItems. additionalItems is not read here; only Tuple applies it.
var Array node.KeywordValidator = node.KeywordValidatorFunc(validateArray)

func validateArray(ctx context.Context, schema *node.Node, instance any, scope node.Scope, rt node.Runtime) node.Issues {
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
	if schema.UniqueItems {
		for i := 0; i < len(arr); i++ {
			for j := i + 1; j < len(arr); j++ {
				if deepEqual(arr[i], arr[j]) {
					issues = append(issues, scope.InstancePath.Issue(node.CodeNotUnique,
						"Array items must be unique.", "index", i, "duplicateOf", j))
				}
			}
		}
	}

	if schema.Items != nil {
		for i, v := range arr {
			childScope := scope.
				WithSchemaPath(scope.SchemaPath.Field("items")).
				WithInstancePath(scope.InstancePath.Index(i))
			if _, sub := node.Process(ctx, schema.Items, v, childScope, rt); len(sub) > 0 {
				issues = append(issues, sub...)
			}
		}
	}

	return issues
}
