package collishi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollisionCircleCircleTouching(t *testing.T) {
	// Externally tangent circles collide, slightly separated ones do not.
	assert.True(t, CollisionCircleCircle(0, 0, 1, 2, 0, 1))
	assert.False(t, CollisionCircleCircle(0, 0, 1, 2.001, 0, 1))
}

func TestCollisionCircleCircleZeroRadius(t *testing.T) {
	assert.True(t, CollisionCircleCircle(3, 4, 0, 3, 4, 0))
	assert.False(t, CollisionCircleCircle(3, 4, 0, 3, 4.1, 0))
}

// A zero-radius first circle reduces circle/circle to point/circle.
func TestCollisionCircleCircleMatchesPointCircle(t *testing.T) {
	coords := []float64{-3, -1, 0, 1.5, 3, 6}
	for _, x := range coords {
		for _, y := range coords {
			expected := CollisionPointCircle(x, y, 1, 1, 3)
			assert.Equal(t, expected, CollisionCircleCircle(x, y, 0, 1, 1, 3), "center (%v, %v)", x, y)
		}
	}
}

// A zero-radius circle reduces circle/box to point/box.
func TestCollisionCircleBoxZeroRadius(t *testing.T) {
	coords := []float64{-1, 0, 1, 3, 4, 5}
	for _, x := range coords {
		for _, y := range coords {
			expected := CollisionPointBox(x, y, 0, 0, 4, 4)
			assert.Equal(t, expected, CollisionCircleBox(x, y, 0, 0, 0, 4, 4), "center (%v, %v)", x, y)
		}
	}
}

func TestCollisionCircleBoxZeroSizeBox(t *testing.T) {
	// Box shrunk to a point on the rim of the circle.
	assert.True(t, CollisionCircleBox(0, 0, 2, 2, 0, 0, 0))
	assert.False(t, CollisionCircleBox(0, 0, 2, 2.1, 0, 0, 0))
}

func TestCollisionCircleBoxContained(t *testing.T) {
	// Circle fully inside a large box, and box fully inside a large circle.
	assert.True(t, CollisionCircleBox(5, 5, 1, 0, 0, 10, 10))
	assert.True(t, CollisionCircleBox(5, 5, 100, 4, 4, 2, 2))
}

func TestCollisionCircleTriangleVertexTouch(t *testing.T) {
	// Circle reaching exactly to the nearest vertex of the triangle
	// (0, 0), (4, 0), (0, 4).
	assert.True(t, CollisionCircleTriangle(6, 0, 2, 0, 0, 4, 0, 0, 4))
	assert.False(t, CollisionCircleTriangle(6, 0, 1.9, 0, 0, 4, 0, 0, 4))
}

func TestCollisionCircleTriangleZeroRadius(t *testing.T) {
	// Zero-radius circle at a vertex, inside, and outside.
	assert.True(t, CollisionCircleTriangle(0, 0, 0, 0, 0, 4, 0, 0, 4))
	assert.True(t, CollisionCircleTriangle(1, 1, 0, 0, 0, 4, 0, 0, 4))
	assert.False(t, CollisionCircleTriangle(5, 5, 0, 0, 0, 4, 0, 0, 4))
}

func TestCollisionCircleTriangleEdgeTouch(t *testing.T) {
	// Circle below the bottom edge of the triangle (0, 0), (4, 0), (0, 4),
	// touching it exactly.
	assert.True(t, CollisionCircleTriangle(2, -1, 1, 0, 0, 4, 0, 0, 4))
	assert.False(t, CollisionCircleTriangle(2, -1, 0.9, 0, 0, 4, 0, 0, 4))
}

func TestCollisionCircleTriangleDegenerateTriangle(t *testing.T) {
	// Zero-area triangle collapsed onto a line still collides with a circle
	// crossing that line and stays clear of one that doesn't.
	assert.True(t, CollisionCircleTriangle(1, 1, 1.5, 0, 0, 1, 1, 2, 2))
	assert.False(t, CollisionCircleTriangle(5, 0, 1, 0, 0, 1, 1, 2, 2))
}
