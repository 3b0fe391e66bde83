// Package core provides the host-independent building blocks shared by the
// simulation and the hosts: rectangles, the cell screen buffer, input frames
// and runtime configuration. It has no external dependencies so the game
// logic stays pure and testable.
package core

import "math"

// Rect is an axis-aligned bounding box in integer coordinates.
// It is used both for intersection tests and for render placement.
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Width and height
}

// NewRect creates a rectangle with the given position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt builds a rectangle from a sub-cell position.
// Coordinates are floored so that sprites moving left and right snap the same way.
func RectAt(x, y float64, w, h int) Rect {
	return Rect{X: Floor(x), Y: Floor(y), W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// CenterX returns the horizontal centre.
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// Intersects reports whether two rectangles overlap.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Centered returns a w*h rectangle centred inside r.
func (r Rect) Centered(w, h int) Rect {
	return NewRect(r.X+(r.W-w)/2, r.Y+(r.H-h)/2, w, h)
}

// Floor converts a sub-cell coordinate to its containing cell.
func Floor(v float64) int {
	return int(math.Floor(v))
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts val to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
