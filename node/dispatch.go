package node

import (
	"context"
	"encoding/json"
	"fmt"
)

// instKind classifies an instance value into one of the JSON data kinds the
// dispatch table switches on.
type instKind int

const (
	instUnknown instKind = iota
	instObject
	instArray
	instNumber
	instString
	instBoolean
	instNull
)

func (k instKind) String() string {
	switch k {
	case instObject:
		return "object"
	case instArray:
		return "array"
	case instNumber:
		return "number"
	case instString:
		return "string"
	case instBoolean:
		return "boolean"
	case instNull:
		return "null"
	default:
		return "unknown"
	}
}

func classify(instance any) instKind {
	switch instance.(type) {
	case nil:
		return instNull
	case map[string]any:
		return instObject
	case []any:
		return instArray
	case json.Number, float64, float32, int, int64:
		return instNumber
	case string:
		return instString
	case bool:
		return instBoolean
	default:
		return instUnknown
	}
}

// KeywordValidator is the contract every external keyword-validator set
// must honor. The dispatcher guarantees Validate is only
// invoked when the instance kind is compatible with the schema's kind (or,
// for an untyped/open schema, with whichever kind the instance actually
// turned out to be). Implementations may recursively call Process on child
// (schema, instance) pairs; doing so they must propagate scope, extending
// SchemaPath/InstancePath as they descend.
type KeywordValidator interface {
	Validate(ctx context.Context, schema *Node, instance any, scope Scope, rt Runtime) Issues
}

// KeywordValidatorFunc adapts a plain function to KeywordValidator.
type KeywordValidatorFunc func(ctx context.Context, schema *Node, instance any, scope Scope, rt Runtime) Issues

func (f KeywordValidatorFunc) Validate(ctx context.Context, schema *Node, instance any, scope Scope, rt Runtime) Issues {
	return f(ctx, schema, instance, scope, rt)
}

// Registry is the table of keyword-validator sets keyed by schema kind,
// consulted by Process. A nil entry is treated as "no keywords bind",
// i.e. trivial success once the type/kind gate has passed.
type Registry struct {
	Object   KeywordValidator
	Array    KeywordValidator
	Tuple    KeywordValidator
	Number   KeywordValidator
	Integer  KeywordValidator
	String   KeywordValidator
	Boolean  KeywordValidator
	Null     KeywordValidator
	Compound KeywordValidator
}

// ResolveFunc resolves a $ref string against scope, returning the resolved
// node and the scope in which further resolution/validation must proceed.
// The concrete implementation lives in the sibling resolver package; this
// package only depends on the function type, so it never imports resolver.
type ResolveFunc func(ctx context.Context, ref string, scope Scope) (*Node, Scope, error)

// Runtime bundles everything a KeywordValidator needs to recurse back into
// the dispatcher for child (schema, instance) pairs.
type Runtime struct {
	Resolve  ResolveFunc
	Registry Registry
}

// Process walks schema and instance in lockstep, dispatching to the
// appropriate keyword-validator set based on the (instance kind, schema
// kind) pair. It returns the instance unchanged on success (the core never
// mutates) or a non-empty Issues list on failure.
func Process(ctx context.Context, schema *Node, instance any, scope Scope, rt Runtime) (any, Issues) {
	if schema == nil {
		return instance, nil
	}

	// $ref expansion happens before any keyword on the node containing it
	// runs.
	if schema.Kind == KindRef {
		if rt.Resolve == nil {
			return nil, Issues{scope.InstancePath.Issue(CodeResolutionError, "no resolver configured", "ref", schema.Ref)}
		}
		resolved, nextScope, err := rt.Resolve(ctx, schema.Ref, scope)
		if err != nil {
			return nil, Issues{scope.InstancePath.Issue(CodeResolutionError, resolveErrMessage(err), "ref", schema.Ref)}
		}
		return Process(ctx, resolved, instance, nextScope, rt)
	}

	if schema.Kind == KindCompound {
		return runValidator(ctx, rt.Registry.Compound, schema, instance, scope, rt)
	}

	ik := classify(instance)

	switch schema.Kind {
	case KindObject:
		if !schema.HasType {
			return dispatchOpen(ctx, ik, schema, instance, scope, rt)
		}
		if ik != instObject {
			return nil, mismatch(scope, "object", ik)
		}
		return runValidator(ctx, rt.Registry.Object, schema, instance, scope, rt)
	case KindArray:
		if ik != instArray {
			return nil, mismatch(scope, "array", ik)
		}
		return runValidator(ctx, rt.Registry.Array, schema, instance, scope, rt)
	case KindTuple:
		if ik != instArray {
			return nil, mismatch(scope, "array", ik)
		}
		return runValidator(ctx, rt.Registry.Tuple, schema, instance, scope, rt)
	case KindNumber:
		if ik != instNumber {
			return nil, mismatch(scope, "number", ik)
		}
		return runValidator(ctx, rt.Registry.Number, schema, instance, scope, rt)
	case KindInteger:
		if ik != instNumber {
			return nil, mismatch(scope, "integer", ik)
		}
		return runValidator(ctx, rt.Registry.Integer, schema, instance, scope, rt)
	case KindBoolean:
		if ik != instBoolean {
			return nil, mismatch(scope, "boolean", ik)
		}
		return runValidator(ctx, rt.Registry.Boolean, schema, instance, scope, rt)
	case KindString:
		if ik != instString {
			return nil, mismatch(scope, "string", ik)
		}
		return runValidator(ctx, rt.Registry.String, schema, instance, scope, rt)
	case KindNull:
		if ik != instNull {
			return nil, mismatch(scope, "null", ik)
		}
		return runValidator(ctx, rt.Registry.Null, schema, instance, scope, rt)
	default:
		return instance, nil
	}
}

// dispatchOpen handles the key subtlety of the dispatch table: an Object
// node with no declared "type" is an open schema whose bound keywords (if
// any, read straight from Constraints) still apply to whatever kind the
// instance happens to be, without requiring the instance itself to be an
// object. It is implemented as a multiplex over the same Registry entries
// used by the strict rows, rather than as special logic duplicated inside
// the object validator, so every keyword-validator set stays single-purpose.
func dispatchOpen(ctx context.Context, ik instKind, schema *Node, instance any, scope Scope, rt Runtime) (any, Issues) {
	switch ik {
	case instObject:
		return runValidator(ctx, rt.Registry.Object, schema, instance, scope, rt)
	case instArray:
		return runValidator(ctx, rt.Registry.Array, schema, instance, scope, rt)
	case instNumber:
		return runValidator(ctx, rt.Registry.Number, schema, instance, scope, rt)
	case instString:
		return runValidator(ctx, rt.Registry.String, schema, instance, scope, rt)
	case instBoolean:
		return runValidator(ctx, rt.Registry.Boolean, schema, instance, scope, rt)
	case instNull:
		return runValidator(ctx, rt.Registry.Null, schema, instance, scope, rt)
	default:
		return instance, nil
	}
}

func runValidator(ctx context.Context, v KeywordValidator, schema *Node, instance any, scope Scope, rt Runtime) (any, Issues) {
	if v == nil {
		return instance, nil
	}
	if iss := v.Validate(ctx, schema, instance, scope, rt); len(iss) > 0 {
		return nil, iss
	}
	return instance, nil
}

func mismatch(scope Scope, expected string, got instKind) Issues {
	return Issues{scope.InstancePath.Issue(CodeInvalidType,
		fmt.Sprintf("Wrong type. Expected %s, was %s.", expected, got),
		"expected", expected, "got", got.String())}
}

func resolveErrMessage(err error) string {
	if re, ok := err.(*ResolutionError); ok {
		return re.Message
	}
	return err.Error()
}
