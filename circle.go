package collishi

// CollisionCircleCircle reports whether two circles intersect. Simple
// generalization of point/circle.
func CollisionCircleCircle(x1, y1, r1, x2, y2, r2 float64) bool {
	dx := x1 - x2
	dy := y1 - y2

	combinedRadius := r1 + r2

	if dx*dx+dy*dy > combinedRadius*combinedRadius {
		return false
	}

	return true
}

// CollisionCircleBox reports whether a circle intersects an axis-aligned box.
func CollisionCircleBox(x1, y1, r1, x2, y2, w2, h2 float64) bool {
	// Separating axis theorem again. The circle is first projected onto both
	// cardinal axes against the box extents.

	dxp := x2 + w2 - x1
	dyp := y2 + h2 - y1
	dxm := x2 - x1
	dym := y2 - y1

	if !Overlap([]float64{dxm, dxp}, []float64{-r1, r1}) {
		return false
	}
	if !Overlap([]float64{dym, dyp}, []float64{-r1, r1}) {
		return false
	}

	// The cardinal axes alone are inconclusive when the circle sits near a
	// corner, so the box vertex closest to the circle center provides the
	// final axis. Compute the squared distances to all four vertices and brute
	// force the minimum.

	dxp2 := dxp * dxp
	dxm2 := dxm * dxm
	dyp2 := dyp * dyp
	dym2 := dym * dym

	dxp2yp2 := dxp2 + dyp2
	dyp2xm2 := dyp2 + dxm2
	dxm2ym2 := dxm2 + dym2
	dym2xp2 := dym2 + dxp2

	minDist := dxp2yp2
	vx := dxp
	vy := dyp

	if dyp2xm2 < minDist {
		minDist = dyp2xm2
		vx = dxm
		vy = dyp
	}

	if dxm2ym2 < minDist {
		minDist = dxm2ym2
		vx = dxm
		vy = dym
	}

	if dym2xp2 < minDist {
		vx = dxp
		vy = dym
	}

	// Project the box onto the difference vector, with the circle center
	// defined as zero, and compare signed squares against the circle's own
	// projection.

	projVpp := SignSquare(dxp*vx + dyp*vy)
	projVpm := SignSquare(dxp*vx + dym*vy)
	projVmp := SignSquare(dxm*vx + dyp*vy)
	projVmm := SignSquare(dxm*vx + dym*vy)

	projR1Squared := r1 * r1 * (vx*vx + vy*vy)

	if !Overlap([]float64{projVpp, projVpm, projVmp, projVmm}, []float64{-projR1Squared, projR1Squared}) {
		return false
	}

	return true
}

// CollisionCircleTriangle reports whether a circle intersects a triangle.
func CollisionCircleTriangle(x1, y1, r1, x2, y2, sxa2, sya2, sxb2, syb2 float64) bool {
	// Similar to circle/box, but with different axes: the first three are the
	// normals of the triangle edges, checked strictly by the separating axis
	// theorem.

	dx := x1 - x2
	dy := y1 - y2

	r1Squared := r1 * r1
	crossTerm := sxa2*syb2 - sxb2*sya2

	// Edge a.

	projX1A := dy*sxa2 - dx*sya2
	projR1ASquared := r1Squared * (sxa2*sxa2 + sya2*sya2)

	if !Overlap([]float64{SignSquare(-projX1A), SignSquare(crossTerm - projX1A)}, []float64{-projR1ASquared, projR1ASquared}) {
		return false
	}

	// Edge b.

	projX1B := dy*sxb2 - dx*syb2
	projR1BSquared := r1Squared * (sxb2*sxb2 + syb2*syb2)

	if !Overlap([]float64{SignSquare(-projX1B), SignSquare(-crossTerm - projX1B)}, []float64{-projR1BSquared, projR1BSquared}) {
		return false
	}

	// Edge c, the one spanned by the vertices A and B. The projection of the
	// base vertex onto this edge cancels the cross term, so it drops out of
	// the comparison entirely.

	sxc2 := sxb2 - sxa2
	syc2 := syb2 - sya2

	projX1C := dy*(sxb2-sxa2) - dx*(syb2-sya2)
	projR1CSquared := r1Squared * (sxc2*sxc2 + syc2*syc2)

	if !Overlap([]float64{SignSquare(-projX1C), SignSquare(projX1C)}, []float64{-projR1CSquared, projR1CSquared}) {
		return false
	}

	// All edge normals were inconclusive, so the axis from the circle center
	// to the nearest triangle vertex decides, the same principle as for
	// circle/box.

	minDist := dx*dx + dy*dy
	vx := -dx
	vy := -dy

	dxa := dx - sxa2
	dya := dy - sya2

	dxb := dx - sxb2
	dyb := dy - syb2

	daNorm := dxa*dxa + dya*dya
	dbNorm := dxb*dxb + dyb*dyb

	if daNorm < minDist {
		minDist = daNorm
		vx = -dxa
		vy = -dya
	}

	if dbNorm < minDist {
		minDist = dbNorm
		vx = -dxb
		vy = -dyb
	}

	// Projection of the triangle onto that axis.

	proj20V := SignSquare(-dx*vx - dy*vy)
	proj2AV := SignSquare(-dxa*vx - dya*vy)
	proj2BV := SignSquare(-dxb*vx - dyb*vy)

	projRVSquared := r1Squared * minDist

	if !Overlap([]float64{proj20V, proj2AV, proj2BV}, []float64{-projRVSquared, projRVSquared}) {
		return false
	}

	return true
}
