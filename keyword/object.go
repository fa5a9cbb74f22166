package keyword

import (
	"context"
	"regexp"

	"github.com/hollowpine/schemacore/node"
)

// Object implements the object keyword set: required, dependencies,
// properties, patternProperties, additionalProperties. It is invoked both
// for strict object schemas and, per the dispatch table's open-schema row,
// for untyped schemas whose instance happens to be an object — in the
// latter case any of these keywords that are simply absent contribute no
// issues, so an untyped `{}` schema validates any object trivially.
var Object node.KeywordValidator = node.KeywordValidatorFunc(validateObject)

func validateObject(ctx context.Context, schema *node.Node, instance any, scope node.Scope, rt node.Runtime) node.Issues {
	obj, ok := instance.(map[string]any)
	if !ok {
		return nil
	}

	var issues node.Issues

	for _, name := range schema.Required {
		if _, present := obj[name]; !present {
			issues = append(issues, scope.InstancePath.Issue(node.CodeRequired,
				"Missing required property \""+name+"\".", "property", name))
		}
	}

	for name, deps := range schema.Dependencies {
		if _, present := obj[name]; !present {
			continue
		}
		for _, dep := range deps {
			if _, present := obj[dep]; !present {
				issues = append(issues, scope.InstancePath.Issue(node.CodeDependency,
					"Property \""+name+"\" requires \""+dep+"\" to also be present.",
					"property", name, "requires", dep))
			}
		}
	}
	for name, depSchema := range schema.DependencySchemas {
		if _, present := obj[name]; !present {
			continue
		}
		childScope := scope.WithSchemaPath(scope.SchemaPath.Field("dependencies").Field(name))
		if _, sub := node.Process(ctx, depSchema, instance, childScope, rt); len(sub) > 0 {
			issues = append(issues, sub...)
		}
	}

	if schema.PropertyNames != nil {
		for name := range obj {
			childScope := scope.WithSchemaPath(scope.SchemaPath.Field("propertyNames"))
			if _, sub := node.Process(ctx, schema.PropertyNames, name, childScope, rt); len(sub) > 0 {
				issues = append(issues, scope.InstancePath.Field(name).Issue(node.CodePattern,
					"Property name \""+name+"\" does not satisfy propertyNames.", "property", name))
			}
		}
	}

	matched := make(map[string]bool, len(obj))

	for name, propSchema := range schema.Properties {
		val, present := obj[name]
		if !present {
			continue
		}
		matched[name] = true
		childScope := scope.
			WithSchemaPath(scope.SchemaPath.Field("properties").Field(name)).
			WithInstancePath(scope.InstancePath.Field(name))
		if _, sub := node.Process(ctx, propSchema, val, childScope, rt); len(sub) > 0 {
			issues = append(issues, sub...)
		}
	}

	for pattern, propSchema := range schema.PatternProperties {
		re, err := regexp.Compile(pattern)
		if err != nil {
			continue
		}
		for name, val := range obj {
			if !re.MatchString(name) {
				continue
			}
			matched[name] = true
			childScope := scope.
				WithSchemaPath(scope.SchemaPath.Field("patternProperties").Field(pattern)).
				WithInstancePath(scope.InstancePath.Field(name))
			if _, sub := node.Process(ctx, propSchema, val, childScope, rt); len(sub) > 0 {
				issues = append(issues, sub...)
			}
		}
	}

	if schema.AdditionalPropsAllow != nil && !*schema.AdditionalPropsAllow {
		for name := range obj {
			if matched[name] {
				continue
			}
			issues = append(issues, scope.InstancePath.Field(name).Issue(node.CodeUnknownKey,
				"Additional property \""+name+"\" is not allowed.", "property", name))
		}
	} else if schema.AdditionalProperties != nil {
		for name, val := range obj {
			if matched[name] {
				continue
			}
			childScope := scope.
				WithSchemaPath(scope.SchemaPath.Field("additionalProperties")).
				WithInstancePath(scope.InstancePath.Field(name))
			if _, sub := node.Process(ctx, schema.AdditionalProperties, val, childScope, rt); len(sub) > 0 {
				issues = append(issues, sub...)
			}
		}
	}

	return issues
}
