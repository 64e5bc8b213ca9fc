//go:build collishi_stdlib_minmax

package collishi

import "math"

// math-backed counterpart of ordering.go, selected with
// -tags collishi_stdlib_minmax. Note that math.Min and math.Max order NaN
// operands differently than raw comparisons do; results on non-finite inputs
// are unspecified either way.

func minMax(a, b float64) (float64, float64) {
	return math.Min(a, b), math.Max(a, b)
}

func minMaxSlice(values []float64) (float64, float64) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
