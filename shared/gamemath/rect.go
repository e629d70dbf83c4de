// Package gamemath holds pure geometry and physics helpers.
// It has no dependencies on ebitengine, donburi, or resolv.
package gamemath

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects reports open-interval overlap on both axes; touching edges do
// not count.
func Intersects(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// ContainsPoint reports whether (x, y) lies strictly inside r.
func (r Rect) ContainsPoint(x, y float64) bool {
	return x > r.X && x < r.Right() && y > r.Y && y < r.Bottom()
}

// ResolveHorizontal returns the x position that pushes the mover out of an
// overlapping solid along the shorter horizontal direction. On an exact tie
// the mover is pushed to the solid's right edge.
func ResolveHorizontal(mover, solid Rect) float64 {
	toRight := solid.Right()
	toLeft := solid.X - mover.W

	dRight := toRight - mover.X
	dLeft := mover.X - toLeft
	if dRight <= dLeft {
		return toRight
	}
	return toLeft
}
