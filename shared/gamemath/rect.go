// Package gamemath holds the pure geometry shared by the collision, projectile
// and movement code. It has no dependencies on ebitengine, donburi, or resolv.
//
// World space is y-up: a rectangle's Top is Y+H.
package gamemath

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Top returns the y coordinate of the upper edge.
func (r Rect) Top() float64 {
	return r.Y + r.H
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// SetPosition moves the rectangle's origin, keeping its size.
func (r *Rect) SetPosition(x, y float64) {
	r.X = x
	r.Y = y
}

// Overlaps reports whether r and other share interior area. Touching edges do
// not count.
func (r Rect) Overlaps(other Rect) bool {
	return Overlaps(r, other)
}

// Overlaps is the strict AABB intersection test.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// The directional predicates below test whether collider c is approaching
// probe b from one side. They are inclusive on the near edge and independent
// of Overlaps, so several may hold at once; callers resolve vertical before
// horizontal, and from-top before from-bottom.

// FromRight reports whether c's left edge lies within b's horizontal span.
func FromRight(c, b Rect) bool {
	return c.X <= b.X+b.W && c.X+c.W > b.X
}

// FromLeft reports whether c's right edge lies within b's horizontal span.
func FromLeft(c, b Rect) bool {
	return c.X+c.W >= b.X && c.X+c.W < b.X+b.W
}

// FromTop reports whether c's bottom edge lies within b's vertical span.
func FromTop(c, b Rect) bool {
	return c.Y <= b.Y+b.H && c.Y+c.H > b.Y
}

// FromBottom reports whether c's top edge lies within b's vertical span.
func FromBottom(c, b Rect) bool {
	return c.Y+c.H >= b.Y && c.Y < b.Y+b.H
}
