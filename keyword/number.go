package keyword

import (
	"context"
	"fmt"

	"github.com/hollowpine/schemacore/node"
)

// Number implements minimum, maximum, exclusiveMinimum, exclusiveMaximum,
// multipleOf and enum for numeric instances.
var Number node.KeywordValidator = node.KeywordValidatorFunc(func(ctx context.Context, schema *node.Node, instance any, scope node.Scope, rt node.Runtime) node.Issues {
	return validateNumeric(schema, instance, scope, false)
})

// Integer wraps Number's checks with the additional requirement that the
// instance be an integral value.
var Integer node.KeywordValidator = node.KeywordValidatorFunc(func(ctx context.Context, schema *node.Node, instance any, scope node.Scope, rt node.Runtime) node.Issues {
	return validateNumeric(schema, instance, scope, true)
})

func validateNumeric(schema *node.Node, instance any, scope node.Scope, requireIntegral bool) node.Issues {
	f, ok := asFloat(instance)
	if !ok {
		return nil
	}

	var issues node.Issues

	if requireIntegral && !isIntegral(instance) {
		issues = append(issues, scope.InstancePath.Issue(node.CodeNotIntegral,
			"Value must be an integer.", "actual", f))
	}

	if min, ok := numericConstraint(schema, "minimum"); ok {
		if exclusive, _ := boolConstraint(schema, "exclusiveMinimum"); exclusive {
			if f <= min {
				issues = append(issues, scope.InstancePath.Issue(node.CodeTooSmall,
					fmt.Sprintf("Value must be greater than %v.", min), "exclusiveMinimum", min))
			}
		} else if f < min {
			issues = append(issues, scope.InstancePath.Issue(node.CodeTooSmall,
				fmt.Sprintf("Value must be at least %v.", min), "minimum", min))
		}
	}
	if max, ok := numericConstraint(schema, "maximum"); ok {
		if exclusive, _ := boolConstraint(schema, "exclusiveMaximum"); exclusive {
			if f >= max {
				issues = append(issues, scope.InstancePath.Issue(node.CodeTooBig,
					fmt.Sprintf("Value must be less than %v.", max), "exclusiveMaximum", max))
			}
		} else if f > max {
			issues = append(issues, scope.InstancePath.Issue(node.CodeTooBig,
				fmt.Sprintf("Value must be at most %v.", max), "maximum", max))
		}
	}
	if step, ok := numericConstraint(schema, "multipleOf"); ok && step != 0 {
		q := f / step
		if q != float64(int64(q)) {
			issues = append(issues, scope.InstancePath.Issue(node.CodeNotMultiple,
				fmt.Sprintf("Value must be a multiple of %v.", step), "multipleOf", step))
		}
	}
	if enumIssue, hasEnum := enumConstraint(schema, instance, scope); hasEnum {
		issues = append(issues, enumIssue...)
	}

	return issues
}

func numericConstraint(schema *node.Node, key string) (float64, bool) {
	v, ok := schema.Constraints[key]
	if !ok {
		return 0, false
	}
	return asFloat(v)
}

func boolConstraint(schema *node.Node, key string) (bool, bool) {
	v, ok := schema.Constraints[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

func enumConstraint(schema *node.Node, instance any, scope node.Scope) (node.Issues, bool) {
	raw, ok := schema.Constraints["enum"]
	if !ok {
		return nil, false
	}
	values, ok := raw.([]any)
	if !ok {
		return nil, false
	}
	for _, v := range values {
		if deepEqual(v, instance) {
			return nil, true
		}
	}
	return node.Issues{scope.InstancePath.Issue(node.CodeInvalidEnum,
		"Value is not one of the allowed values.", "enum", values)}, true
}
