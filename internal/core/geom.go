// Package core provides the plain types shared by the shooter's packages:
// the coloured screen buffer, actions, feedback events and step results.
// It has no terminal or audio dependencies so game logic stays testable.
package core

// Rect is a screen-space box, used for overlays such as the game-over panel.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle with top-left corner (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Clamp pins v to the inclusive range [lo, hi].
func Clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
