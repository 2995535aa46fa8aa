// Package physics provides the vector math, broad-phase grid, overlap tests and
// countdown timers the gameplay objects build on.
package physics

import "math"

// Rect is an axis-aligned rectangle described by its center and full size.
type Rect struct {
	Pos  Vec2
	Size Vec2
}

// Min returns the bottom-left corner.
func (r Rect) Min() Vec2 {
	return r.Pos.Sub(r.Size.Mul(0.5))
}

// Max returns the top-right corner.
func (r Rect) Max() Vec2 {
	return r.Pos.Add(r.Size.Mul(0.5))
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec2) bool {
	lo, hi := r.Min(), r.Max()
	return p.X() >= lo.X() && p.X() <= hi.X() && p.Y() >= lo.Y() && p.Y() <= hi.Y()
}

// Overlap reports whether two center/size boxes intersect.
// Touching edges do not count, so a zero-size box must be strictly inside the other.
func Overlap(posA, sizeA, posB, sizeB Vec2) bool {
	return math.Abs(posA.X()-posB.X())*2 < sizeA.X()+sizeB.X() &&
		math.Abs(posA.Y()-posB.Y())*2 < sizeA.Y()+sizeB.Y()
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates from a to b by percent, clamped to [0, 1].
func Lerp(percent, a, b float64) float64 {
	return a + Clamp(percent, 0, 1)*(b-a)
}
