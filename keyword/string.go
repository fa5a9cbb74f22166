package keyword

import (
	"context"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/hollowpine/schemacore/node"
)

// String implements minLength, maxLength, pattern and enum for string
// instances.
var String node.KeywordValidator = node.KeywordValidatorFunc(func(ctx context.Context, schema *node.Node, instance any, scope node.Scope, rt node.Runtime) node.Issues {
	s, ok := instance.(string)
	if !ok {
		return nil
	}

	var issues node.Issues
	length := utf8.RuneCountInString(s)

	if v, ok := schema.Constraints["minLength"]; ok {
		if min, ok := asFloat(v); ok && length < int(min) {
			issues = append(issues, scope.InstancePath.Issue(node.CodeTooShort,
				fmt.Sprintf("String is shorter than %d characters.", int(min)), "minLength", int(min)))
		}
	}
	if v, ok := schema.Constraints["maxLength"]; ok {
		if max, ok := asFloat(v); ok && length > int(max) {
			issues = append(issues, scope.InstancePath.Issue(node.CodeTooLong,
				fmt.Sprintf("String is longer than %d characters.", int(max)), "maxLength", int(max)))
		}
	}
	if v, ok := schema.Constraints["pattern"]; ok {
		if pattern, ok := v.(string); ok {
			if re, err := regexp.Compile(pattern); err == nil {
				if !re.MatchString(s) {
					issues = append(issues, scope.InstancePath.Issue(node.CodePattern,
						fmt.Sprintf("String does not match pattern %q.", pattern), "pattern", pattern))
				}
			}
		}
	}
	if enumIssue, hasEnum := enumConstraint(schema, instance, scope); hasEnum {
		issues = append(issues, enumIssue...)
	}

	return issues
})
