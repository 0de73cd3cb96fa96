// Package core holds the input model and the character screen shared by the
// game and the terminal platform. It imports no UI packages.
package core

// Rect is a block of screen cells used for boxes and filled areas.
type Rect struct {
	X, Y int // Top-left cell
	W, H int
}

// NewRect returns the rectangle at (x, y) spanning w by h cells.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row below the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts val to [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of a and b.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
