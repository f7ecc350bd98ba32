package vmath

// Rect is an integer axis-aligned rectangle, half-open on the far edges
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the rect covers no pixels
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains checks if point is within the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersect returns the overlap of a and b, zero-sized when disjoint
func (r Rect) Intersect(b Rect) Rect {
	x0 := max(r.X, b.X)
	y0 := max(r.Y, b.Y)
	x1 := min(r.X+r.Width, b.X+b.Width)
	y1 := min(r.Y+r.Height, b.Y+b.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
