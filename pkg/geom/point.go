package geom

// Point is a position in viewport coordinates.
type Point struct {
	X, Y float64
}

// Get returns the coordinate on axis.
func (p Point) Get(axis Axis) float64 {
	if axis == AxisY {
		return p.Y
	}
	return p.X
}

// With returns a copy of p with the coordinate on axis set to v.
func (p Point) With(axis Axis, v float64) Point {
	if axis == AxisY {
		p.Y = v
	} else {
		p.X = v
	}
	return p
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size holds width and height dimensions.
type Size struct {
	Width, Height float64
}

// Get returns the extent on axis.
func (s Size) Get(axis Axis) float64 {
	if axis == AxisY {
		return s.Height
	}
	return s.Width
}
