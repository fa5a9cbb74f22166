package node

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes. The first block is the core's own error taxonomy
// (resolution errors, type mismatch, decode errors); the second block is
// the default keyword library's constraint-violation vocabulary. Distinct
// codes let callers branch/localize without string-matching messages.
const (
	CodeResolutionError = "resolution_error"
	CodeInvalidType     = "invalid_type"
	CodeDecodeError     = "decode_error"
	CodeDuplicateKey    = "duplicate_key"

	CodeRequired       = "required"
	CodeDependency     = "dependency_missing"
	CodeUnknownKey     = "unknown_key"
	CodeTooSmall       = "too_small"
	CodeTooBig         = "too_big"
	CodeTooShort       = "too_short"
	CodeTooLong        = "too_long"
	CodePattern        = "pattern"
	CodeInvalidEnum    = "invalid_enum"
	CodeNotMultiple    = "not_multiple_of"
	CodeNotUnique      = "not_unique"
	CodeNotIntegral    = "not_integral"
	CodeCombinator     = "combinator_violation"
	CodeParseError     = "parse_error"
)

// Issue represents a single validation entry: the path at which it
// occurred, a human-readable message, and a slot for the offending value.
// OffendingValue is not set by the dispatcher or by the default keyword
// library; Issues they produce carry only the path to the value.
type Issue struct {
	Path          string // JSON Pointer to the offending instance value.
	Code          string
	Message       string
	Hint          string
	Cause         error
	OffendingValue any
	Params        map[string]any
}

// Issues is a non-empty ordered collection of validation errors; it
// implements error so callers can return it directly or wrap it.
type Issues []Issue

func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := len(iss)
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", iss[i].Code, iss[i].Path)
	}
	if len(iss) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(iss))
	}
	return b.String()
}

// AppendIssues appends more onto dst, initializing dst when needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil && len(more) == 0 {
		return nil
	}
	return append(dst, more...)
}

// AsIssues extracts Issues from err using errors.As.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// ResolutionError is the single error value produced by every resolver
// failure mode (unresolvable fragment, unreachable URL, unparseable
// fetched document, malformed ref syntax). It is kept
// distinct from Issues because a resolution failure aborts the containing
// validation branch outright rather than accumulating alongside keyword
// violations — the dispatcher converts it into a single Issue at the
// current instance path when it surfaces.
type ResolutionError struct {
	Ref     string
	Message string
	Cause   error
}

func (e *ResolutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resolve %q: %s: %v", e.Ref, e.Message, e.Cause)
	}
	return fmt.Sprintf("resolve %q: %s", e.Ref, e.Message)
}

func (e *ResolutionError) Unwrap() error { return e.Cause }
