package keyword

import "encoding/json"

// asFloat converts a numeric instance value (json.Number or a plain Go
// float/int, however the source JSON decoder represented it) to float64.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// isIntegral reports whether a numeric instance value has no fractional
// part, used by the integer keyword-validator's extra check.
func isIntegral(v any) bool {
	f, ok := asFloat(v)
	if !ok {
		return false
	}
	return f == float64(int64(f))
}

// deepEqual compares two decoded JSON values for uniqueItems/enum checks.
// Numbers compare by value regardless of their concrete Go representation.
func deepEqual(a, b any) bool {
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if aok && bok {
		return af == bf
	}
	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, vv := range av {
			bvv, ok := bv[k]
			if !ok || !deepEqual(vv, bvv) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !deepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
