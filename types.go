package collishi

// Parameter records for the five supported shapes. The collision predicates
// themselves take plain scalars so they stay trivially inlinable and free of
// any calling convention beyond float64 arguments; these structs exist for
// callers that deal in whole shapes, such as the scene renderer and the demo
// binary.

type Point struct {
	X, Y float64
}

// Line is a segment from (X, Y) to (X+DX, Y+DY).
type Line struct {
	X, Y   float64
	DX, DY float64
}

type Circle struct {
	X, Y float64
	R    float64
}

// Box is an axis-aligned box with corner (X, Y) extending toward +x and +y.
type Box struct {
	X, Y float64
	W, H float64
}

// Triangle has a base vertex (X, Y); the other two vertices are the base
// vertex plus the side vectors (SXA, SYA) and (SXB, SYB).
type Triangle struct {
	X, Y     float64
	SXA, SYA float64
	SXB, SYB float64
}
