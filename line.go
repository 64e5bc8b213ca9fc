package collishi

// CollisionLineLine reports whether two line segments intersect.
func CollisionLineLine(x1, y1, dx1, dy1, x2, y2, dx2, dy2 float64) bool {
	// This is an extension of the point/line test. If the cross product of the
	// two direction vectors vanishes, the segments are parallel, so they can
	// only meet if one start point lies on the other segment. Checking the end
	// points as well is not necessary.

	crossTerm := dx2*dy1 - dy2*dx1

	if crossTerm == 0 {
		if CollisionPointLine(x1, y1, x2, y2, dx2, dy2) {
			return true
		}
		if CollisionPointLine(x2, y2, x1, y1, dx1, dy1) {
			return true
		}
	}

	// Otherwise the segments have at most one intersection point and the
	// separating axis theorem applies. Each segment is projected onto the
	// other one's normal; if the projection interval of the start and end
	// point does not straddle zero, the segments cannot cross. For the
	// parallel case above that fell through, both checks reject
	// deterministically, so no early return is needed.

	y21 := y2 - y1
	x21 := x2 - x1

	projection2OnN1 := y21*dx1 - x21*dy1

	if (projection2OnN1 < 0) == (projection2OnN1 < crossTerm) {
		return false
	}

	projection1OnN2 := x21*dy2 - y21*dx2

	if (projection1OnN2 < 0) == (projection1OnN2 < -crossTerm) {
		return false
	}

	return true
}

// CollisionLineCircle reports whether a line segment intersects a circle.
func CollisionLineCircle(x1, y1, dx1, dy1, x2, y2, r2 float64) bool {
	// A direct application of the separating axis theorem: if any axis admits
	// a gap between the projections of both shapes, there is no intersection.

	x21 := x2 - x1
	y21 := y2 - y1

	r2Squared := r2 * r2

	// First project the circle onto the line normal. The circle's projection
	// would normally span projCircleNormal +/- r2*sqrt(|line|); squaring both
	// sides of the containment test while conserving signs removes the square
	// root and leaves only a multiplication.

	projCircleNormal := y21*dx1 - x21*dy1
	projCircleNormalMax := r2Squared * (dx1*dx1 + dy1*dy1)

	if !Between(SignSquare(projCircleNormal), -projCircleNormalMax, projCircleNormalMax) {
		return false
	}

	// The remaining axis runs from the circle center to the closer of the two
	// segment end points. Once that axis is checked, no others are needed.

	x2d1 := x21 - dx1
	y2d1 := y21 - dy1

	distance12 := x21*x21 + y21*y21
	distanceD2 := x2d1*x2d1 + y2d1*y2d1

	if distance12 < distanceD2 {
		// Start point is closer to the circle.

		p1 := SignSquare(distance12)
		p2 := SignSquare(distance12 - dx1*x21 - dy1*y21)

		projR2Squared := r2Squared * (x21*x21 + y21*y21)

		if !Overlap([]float64{p1, p2}, []float64{-projR2Squared, projR2Squared}) {
			return false
		}
	} else {
		// End point is closer to the circle.

		p1 := SignSquare(distanceD2)
		p2 := SignSquare(distance12 - dx1*x21 - dy1*y21)

		projR2Squared := r2Squared * (x2d1*x2d1 + y2d1*y2d1)

		if !Overlap([]float64{p1, p2}, []float64{-projR2Squared, projR2Squared}) {
			return false
		}
	}

	return true
}

// CollisionLineBox reports whether a line segment intersects an axis-aligned
// box.
func CollisionLineBox(x1, y1, dx1, dy1, x2, y2, w2, h2 float64) bool {
	// If either end point lies inside the box, the test is already decided.

	if CollisionPointBox(x1, y1, x2, y2, w2, h2) {
		return true
	}
	if CollisionPointBox(x1+dx1, y1+dy1, x2, y2, w2, h2) {
		return true
	}

	// Otherwise check each of the four box sides for an intersection within
	// the rectangle. All of these terms are shared between several of the
	// following checks, so they are computed up front.

	// Nominators of the line parameter at each side.

	nominatorXNeg := x2 - x1
	nominatorXPos := x2 + w2 - x1
	nominatorYNeg := y2 - y1
	nominatorYPos := y2 + h2 - y1

	// Inserting the line parameter for one coordinate into the intersection
	// equation yields these cross terms. This is a mathematical trick to avoid
	// divisions here.

	nomXNegDy := nominatorXNeg * dy1
	nomXPosDy := nominatorXPos * dy1
	nomYNegDx := nominatorYNeg * dx1
	nomYPosDx := nominatorYPos * dx1

	// Left side: is the y coordinate of the intersection with the side's
	// infinite extension actually inside the box? If so, the line parameter of
	// that intersection still has to land in [0, 1], which is once more a sign
	// comparison of nominator and denominator. A vanishing dx1 cannot break
	// this; the fraction check rules it out.

	if nomXNegDy >= nomYNegDx && nomXNegDy <= nomYPosDx {
		if FractionBetweenZeroAndOne(nominatorXNeg, dx1) {
			return true
		}
	}

	// Right side. The line got shifted in its coordinates, so a fresh line
	// parameter check is necessary.

	if nomXPosDy >= nomYNegDx && nomXPosDy <= nomYPosDx {
		if FractionBetweenZeroAndOne(nominatorXPos, dx1) {
			return true
		}
	}

	// Bottom side.

	if nomYNegDx >= nomXNegDy && nomYNegDx <= nomXPosDy {
		if FractionBetweenZeroAndOne(nominatorYNeg, dy1) {
			return true
		}
	}

	// Top side.

	if nomYPosDx >= nomXNegDy && nomYPosDx <= nomXPosDy {
		if FractionBetweenZeroAndOne(nominatorYPos, dy1) {
			return true
		}
	}

	return false
}

// CollisionLineTriangle reports whether a line segment intersects a triangle.
func CollisionLineTriangle(x1, y1, dx1, dy1, x2, y2, sxa2, sya2, sxb2, syb2 float64) bool {
	// Another application of the separating axis theorem. First compute the
	// distances between the line start point and the three triangle vertices.

	x21 := x2 - x1
	y21 := y2 - y1

	xa1 := x21 + sxa2
	ya1 := y21 + sya2

	xb1 := x21 + sxb2
	yb1 := y21 + syb2

	// Project all three vertices onto the line normal. If no sign change
	// occurs among the three projections, the triangle lies entirely on one
	// side of the line.

	projection2OnN1 := y21*dx1 - x21*dy1
	projectionAOnN1 := ya1*dx1 - xa1*dy1
	projectionBOnN1 := yb1*dx1 - xb1*dy1

	negativeCount := 0
	if projection2OnN1 < 0 {
		negativeCount++
	}
	if projectionAOnN1 < 0 {
		negativeCount++
	}
	if projectionBOnN1 < 0 {
		negativeCount++
	}

	if negativeCount == 3 {
		return false
	}

	// Now project the line onto each triangle side. This time, the segment's
	// projection interval must overlap the interval between 0 and the
	// projection of the opposite vertex.

	projection1OnNa := x21*sya2 - y21*sxa2
	projectionDOnNa := dy1*sxa2 - dx1*sya2
	projectionBOnNa := syb2*sxa2 - sxb2*sya2

	if !Overlap([]float64{projection1OnNa, projection1OnNa + projectionDOnNa}, []float64{0, projectionBOnNa}) {
		return false
	}

	// Same procedure for the other given triangle side.

	projection1OnNb := x21*syb2 - y21*sxb2
	projectionDOnNb := dy1*sxb2 - dx1*syb2
	projectionAOnNb := -projectionBOnNa

	if !Overlap([]float64{projection1OnNb, projection1OnNb + projectionDOnNb}, []float64{0, projectionAOnNb}) {
		return false
	}

	// The last axis is the difference vector between the vertices A and B.

	sxc2 := sxb2 - sxa2
	syc2 := syb2 - sya2

	projection1OnNc := xa1*syc2 - ya1*sxc2
	projectionDOnNc := dy1*sxc2 - dx1*syc2
	projection2OnNc := projectionBOnNa

	if !Overlap([]float64{projection1OnNc, projection1OnNc + projectionDOnNc}, []float64{0, projection2OnNc}) {
		return false
	}

	return true
}
