// Package core provides the platform-neutral types shared by games and
// drivers: runtime config, input frames and the screen buffer. It has no
// terminal dependencies so game logic stays testable.
package core

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: max(r.W-2*n, 0), H: max(r.H-2*n, 0)}
}

// CenteredRect returns a w x h rectangle centered in an area of the given
// size. The origin is clamped at zero when the area is too small.
func CenteredRect(areaW, areaH, w, h int) Rect {
	return Rect{X: max((areaW-w)/2, 0), Y: max((areaH-h)/2, 0), W: w, H: h}
}
