//go:build !collishi_stdlib_minmax

package collishi

// The interval helpers funnel all ordering through minMax and minMaxSlice so
// that the comparison strategy is fixed once, at build time. The default build
// uses raw comparisons and needs nothing from the math package; building with
// -tags collishi_stdlib_minmax swaps in the math.Min/math.Max rendition from
// ordering_math.go instead.

func minMax(a, b float64) (float64, float64) {
	if b < a {
		return b, a
	}
	return a, b
}

func minMaxSlice(values []float64) (float64, float64) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
