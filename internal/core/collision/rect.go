// Package collision provides the axis-aligned rectangle used by every
// collidable thing in the world, and the overlap test between two of them.
package collision

import "math"

// Rect is an axis-aligned rectangle: top-left corner plus extents.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewRect builds a Rect, clamping negative extents to zero
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: math.Max(0, w), Height: math.Max(0, h)}
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the centre point of the rectangle
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Translate returns the rectangle moved by (dx, dy)
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Scaled returns the rectangle with its extents multiplied by s.
// The top-left corner stays where it is.
func (r Rect) Scaled(s float64) Rect {
	if s < 0 {
		s = 0
	}
	r.Width *= s
	r.Height *= s
	return r
}

// Overlaps reports whether a and b intersect. Edges that merely touch count
// as an intersection.
func Overlaps(a, b Rect) bool {
	return a.Right() >= b.X &&
		a.X <= b.Right() &&
		a.Bottom() >= b.Y &&
		a.Y <= b.Bottom()
}

// Overlaps is the method form of the package-level Overlaps
func (r Rect) Overlaps(other Rect) bool {
	return Overlaps(r, other)
}
