package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a 2D vector in world units.
type Vec2 = mgl64.Vec2

// V returns the vector (x, y).
func V(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Rotate returns v rotated counter-clockwise by angle radians.
func Rotate(v Vec2, angle float64) Vec2 {
	return mgl64.Rotate2D(angle).Mul2x1(v)
}

// Heading returns the direction of v as a clockwise angle from the +Y axis,
// the convention draw.Renderer uses for rotated rectangles.
func Heading(v Vec2) float64 {
	return math.Atan2(v.X(), v.Y())
}
