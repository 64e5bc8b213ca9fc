package collishi

// CollisionPointPoint reports whether two points coincide exactly. Since the
// coordinates are floating point values, this will usually yield false; that
// is the intended semantics, not a bug, so no tolerance is applied.
func CollisionPointPoint(x1, y1, x2, y2 float64) bool {
	return x1 == x2 && y1 == y2
}

// CollisionPointLine reports whether a point lies on a line segment starting
// at (x2, y2) with direction (dx2, dy2).
func CollisionPointLine(x1, y1, x2, y2, dx2, dy2 float64) bool {
	// The most useful check is whether the point has a normal component
	// relative to the line. If so, it cannot possibly touch the line. This is
	// also by far the most common case, so it comes first.

	dx12 := x1 - x2
	dy12 := y1 - y2

	// The cross product of the distance vector and the line vector must vanish
	// for the point to lie on the infinite extension of the line.

	if dx12*dy2 != dy12*dx2 {
		return false
	}

	// The point is somewhere on the infinite extension, so project it onto the
	// line. A projection below 0 puts it before the start point, one beyond
	// the projected end point puts it past the end.

	projection := dx12*dx2 + dy12*dy2

	if !Between(projection, 0, dx2*dx2+dy2*dy2) {
		return false
	}

	return true
}

// CollisionPointCircle reports whether a point lies inside or on a circle.
func CollisionPointCircle(x1, y1, x2, y2, r2 float64) bool {
	dx := x1 - x2
	dy := y1 - y2

	if dx*dx+dy*dy > r2*r2 {
		return false
	}

	return true
}

// CollisionPointBox reports whether a point lies inside or on an axis-aligned
// box with corner (x2, y2) and size (w2, h2). This is literally the
// definition of an AABB.
func CollisionPointBox(x1, y1, x2, y2, w2, h2 float64) bool {
	if x1 < x2 {
		return false
	}
	if y1 < y2 {
		return false
	}
	if x2+w2 < x1 {
		return false
	}
	if y2+h2 < y1 {
		return false
	}

	return true
}

// CollisionPointTriangle reports whether a point lies inside or on a triangle
// given by a base vertex (x2, y2) and two side vectors.
func CollisionPointTriangle(x1, y1, x2, y2, sxa2, sya2, sxb2, syb2 float64) bool {
	// Point coordinates relative to the base vertex.

	dx12 := x1 - x2
	dy12 := y1 - y2

	// Express the point as the linear combination u*sideA + v*sideB. The point
	// is inside iff u >= 0, v >= 0 and u + v <= 1. Both u and v are fractions
	// over the side cross product, and the fraction helpers test them without
	// ever dividing, which keeps degenerate (zero-area) triangles safe.

	nominatorU := dx12*syb2 - dy12*sxb2
	denominatorU := sxa2*syb2 - sxb2*sya2

	if !FractionBetweenZeroAndOne(nominatorU, denominatorU) {
		return false
	}

	nominatorV := dx12*sya2 - dy12*sxa2
	denominatorV := -denominatorU

	if !FractionBetweenZeroAndOne(nominatorV, denominatorV) {
		return false
	}

	// The condition u + v <= 1 has a caveat: the nominators of u and -v may
	// carry different signs, so the sum has to be checked explicitly as one
	// more fraction, taken over the denominator of u.

	nominatorUV := nominatorU - nominatorV

	if !FractionBetweenZeroAndOne(nominatorUV, denominatorU) {
		return false
	}

	return true
}
