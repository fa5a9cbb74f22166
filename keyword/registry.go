package keyword

import "github.com/hollowpine/schemacore/node"

// Default returns the built-in keyword-validator registry, wiring every
// schema kind to the validator defined in this package.
func Default() node.Registry {
	return node.Registry{
		Object:   Object,
		Array:    Array,
		Tuple:    Tuple,
		Number:   Number,
		Integer:  Integer,
		String:   String,
		Boolean:  Boolean,
		Null:     Null,
		Compound: Compound,
	}
}
