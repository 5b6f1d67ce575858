package gamemath

// Rect is an axis-aligned rectangle. X and Y are the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether r and o share interior area. Rectangles that only
// touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() && r.Right() > o.Left() &&
		r.Top() < o.Bottom() && r.Bottom() > o.Top()
}

// Grow returns r expanded by d on every side.
func (r Rect) Grow(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}
