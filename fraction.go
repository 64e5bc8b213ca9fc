package collishi

// Numeric primitives shared by the collision predicates. Everything here is a
// total pure function: no allocation, no branching on anything but the scalar
// arguments, and a defined result for every input, including degenerate ones.

// Abs returns v with its sign stripped. The predicates only ever need it for
// magnitude comparisons, so there is no special casing of negative zero.
func Abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// FractionLessThanZero reports whether nominator/denominator is negative,
// without performing the division. A zero nominator always yields false, so
// 0/x counts as non-negative for every x, including x == 0. The undefined
// fraction n/0 with n != 0 is classified as "not negative" by the same rule
// chain; the predicates rely on this convention to stay total on degenerate
// shapes, so it must not change.
func FractionLessThanZero(nominator, denominator float64) bool {
	if nominator == 0 {
		return false
	}
	return (nominator < 0) != (denominator < 0)
}

// FractionBetweenZeroAndOne reports whether nominator/denominator lies in the
// closed interval [0, 1], again without dividing. The zero-denominator
// convention of FractionLessThanZero carries over.
func FractionBetweenZeroAndOne(nominator, denominator float64) bool {
	if FractionLessThanZero(nominator, denominator) {
		return false
	}
	if Abs(nominator) > Abs(denominator) {
		return false
	}
	return true
}

// Between reports whether value lies between border1 and border2 inclusive,
// in either order.
func Between(value, border1, border2 float64) bool {
	lo, hi := minMax(border1, border2)
	if value < lo {
		return false
	}
	if value > hi {
		return false
	}
	return true
}

// Overlap takes two non-empty sets of scalars, reduces each to the closed
// interval spanned by its extremes, and reports whether those two intervals
// intersect. Intervals that merely touch at a boundary point count as
// overlapping.
func Overlap(interval1, interval2 []float64) bool {
	lo1, hi1 := minMaxSlice(interval1)
	lo2, hi2 := minMaxSlice(interval2)

	if hi2 < lo1 {
		return false
	}
	if hi1 < lo2 {
		return false
	}
	return true
}

// SignSquare returns x*x with the sign of x. Comparing signed squares instead
// of raw projections lets the predicates square away a square root while
// keeping orientation information.
func SignSquare(x float64) float64 {
	if x < 0 {
		return -x * x
	}
	return x * x
}
