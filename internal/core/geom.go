// Package core provides the screen buffer and geometry primitives for the
// runner. It has no external dependencies (especially no Bubble Tea) so the
// game logic stays pure and testable.
package core

// Rect is an axis-aligned box in screen cells, used for panel layout.
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Width and height
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Span is a half-open horizontal interval [Lo, Hi) in field units.
// It is the collision primitive for the runner: the player and every obstacle
// occupy a span along the ground axis.
type Span struct {
	Lo, Hi float64
}

// NewSpan creates a span starting at lo with the given width.
func NewSpan(lo, width float64) Span {
	return Span{Lo: lo, Hi: lo + width}
}

// Overlaps returns true if the two spans share any point.
// Touching edges do not overlap.
func (s Span) Overlaps(other Span) bool {
	return s.Lo < other.Hi && other.Lo < s.Hi
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
