// Package keyword implements the default keyword-validator library the
// core dispatcher consults through node.Registry: the concrete checks for
// required, dependencies, properties/patternProperties/additionalProperties,
// items/additionalItems/minItems/maxItems/uniqueItems, positional tuple
// items, numeric bounds and multipleOf, string length/pattern/enum, and the
// anyOf/allOf/oneOf/not combinators.
//
// Every validator honors the external contract described by node.KeywordValidator:
// it receives the schema node, the instance, and the current scope, returns
// node.Issues (never panics on a malformed instance), and recurses into
// children by calling node.Process directly so that $ref expansion and
// further dispatch stay centralized in the node package.
package keyword
