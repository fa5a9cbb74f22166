package schemacore

// UnknownPolicy names ways of handling unknown object keys outside the
// schema's own additionalProperties keyword. No decode or validation path
// in this module reads it; unknown keys are governed only by the schema.
type UnknownPolicy int

const (
	UnknownStrict      UnknownPolicy = iota // Reject unknown keys with an error.
	UnknownStrip                            // Drop unknown keys.
	UnknownPassthrough                      // Preserve unknown keys.
)

// NumberMode dictates how numbers are decoded off the wire.
type NumberMode int

const (
	NumberFloat64    NumberMode = iota // Fast mode (with potential precision loss).
	NumberJSONNumber                   // Preserve json.Number (default; required for exact multipleOf/integer checks).
)

// Strictness configures enforcement for duplicate keys during streaming
// decode (internal/engine). AllowNaN is not read by the decoder or the
// enforcement layer.
type Strictness struct {
	OnDuplicateKey Severity
	AllowNaN       bool
}

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// ParseOpt bundles decode-time options shared by all four entry shapes.
type ParseOpt struct {
	Strictness Strictness
	MaxDepth   int
	MaxBytes   int64
	FailFast   bool
}
