package anchor

import "github.com/grindlemire/go-anchor/pkg/geom"

// Policy is the collision policy applied after solving.
type Policy struct {
	// Sticky keeps the last valid placement while the anchor is partially
	// or fully outside the available rect, instead of following it.
	Sticky bool

	// HideWhenDetached reports Hidden when the anchor has no visible
	// intersection with the available rect.
	HideWhenDetached bool
}

// Resolution is a placement after collision handling.
type Resolution struct {
	Candidate

	// Hidden is set when HideWhenDetached is on and the anchor is detached.
	Hidden bool

	// Stuck is set when the sticky hold replaced the computed placement.
	Stuck bool

	// OverConstrained is set when the popup is larger than the available
	// rect on at least one axis.
	OverConstrained bool

	// Valid is set when the anchor lies wholly inside the available rect,
	// which makes this placement eligible as the sticky fallback.
	Valid bool
}

// Resolve shifts the candidate along its cross axis so the popup stays
// inside the available rect, then applies the sticky hold and the detached
// check. The main axis is never shifted so the popup does not cover the
// anchor; inner placements (SideNone) are shifted on both axes.
//
// last is the most recent Valid resolution for this popup, or nil.
func Resolve(c Candidate, m Measurements, p Policy, last *Candidate) Resolution {
	res := Resolution{Candidate: c, Valid: true}
	if !m.Bounded {
		return res
	}

	size := m.Popup.Size()
	main := c.Side.Axis()
	for _, axis := range [...]geom.Axis{geom.AxisX, geom.AxisY} {
		r := res.Rect(size)
		if size.Get(axis) > m.Available.Length(axis) {
			res.OverConstrained = true
		}
		if axis == main && c.Side != SideNone {
			continue
		}
		start, _ := shiftAxis(r.Start(axis), size.Get(axis), m.Available.Start(axis), m.Available.Length(axis))
		pt := Point{X: res.X, Y: res.Y}.With(axis, start)
		res.X, res.Y = pt.X, pt.Y
	}

	res.Valid = m.Available.ContainsRect(m.Anchor)
	if p.Sticky && !res.Valid && last != nil {
		res.Candidate = *last
		res.Stuck = true
	}

	if p.HideWhenDetached {
		res.Hidden = detached(m.Anchor, m.Available)
	}
	return res
}

// shiftAxis clamps the interval [pos, pos+length) into [start, start+avail).
// When the interval is longer than the space it is centered instead, so the
// overflow is split evenly between both edges.
func shiftAxis(pos, length, start, avail float64) (float64, bool) {
	if length > avail {
		return start + (avail-length)/2, true
	}
	return min(max(pos, start), start+avail-length), false
}

func detached(anchor, available Rect) bool {
	if anchor.IsEmpty() {
		return !available.ContainsPoint(anchor.Origin())
	}
	return !anchor.Intersects(available)
}
