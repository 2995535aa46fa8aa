// Package draw renders the world: colours, a camera from world units to a
// fixed logical canvas, and backends that turn rectangles and text into
// terminal half-block output.
package draw

import (
	"math"

	"github.com/tomz197/rockshot/internal/physics"
)

// Point is a position on the logical canvas, in pixels with Y growing downward.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Renderer draws the world. Rectangles are placed in world space and rotated
// clockwise by angle radians about their centre. Text is placed in canvas pixels.
type Renderer interface {
	DrawRect(pos, size physics.Vec2, c Color, angle float64)
	DrawTextScreen(text string, pos physics.Vec2, size float64, c Color)
}

// Camera maps world units (Y up) to the logical canvas (Y down).
type Camera struct {
	Pos    physics.Vec2 // World point shown at the canvas centre
	Scale  float64      // Canvas pixels per world unit
	Width  float64      // Logical canvas width in pixels
	Height float64      // Logical canvas height in pixels
}

// WorldToScreen converts a world position to canvas pixels.
func (c Camera) WorldToScreen(p physics.Vec2) Point {
	return Point{
		X: (p.X()-c.Pos.X())*c.Scale + c.Width/2,
		Y: c.Height/2 - (p.Y()-c.Pos.Y())*c.Scale,
	}
}

// RectCorners returns the four corners of a rotated world rectangle in canvas pixels.
func (c Camera) RectCorners(pos, size physics.Vec2, angle float64) [4]Point {
	hw, hh := size.X()/2, size.Y()/2
	offsets := [4]physics.Vec2{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}

	var corners [4]Point
	for i, off := range offsets {
		if angle != 0 {
			off = physics.Rotate(off, -angle)
		}
		corners[i] = c.WorldToScreen(pos.Add(off))
	}
	return corners
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func round(v float64) int {
	return int(math.Round(v))
}
