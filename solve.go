package anchor

// Preference is the caller's desired placement before collision handling.
type Preference struct {
	Side            Side
	Alignment       Alignment
	SideOffset      float64 // Gap between anchor and popup on the main axis
	AlignmentOffset float64 // Nudge along the cross axis, toward the trailing edge for start/center and the leading edge for end
}

// Candidate is a proposed placement: the popup's top-left corner plus the
// side and alignment that produced it.
type Candidate struct {
	Side      Side
	Alignment Alignment
	X, Y      float64
}

// Rect returns the popup rect the candidate describes.
func (c Candidate) Rect(popup Size) Rect {
	return Rect{X: c.X, Y: c.Y, Width: popup.Width, Height: popup.Height}
}

// Place computes the naive position for side and align, with no collision
// handling.
func Place(side Side, align Alignment, pref Preference, anchor Rect, popup Size) Candidate {
	main := side.Axis()
	cross := main.Cross()

	var p Point
	if side.IsLeading() {
		p = p.With(main, anchor.Start(main)-popup.Get(main)-pref.SideOffset)
	} else {
		p = p.With(main, anchor.End(main)+pref.SideOffset)
	}

	var c float64
	switch align {
	case AlignStart:
		c = anchor.Start(cross) + pref.AlignmentOffset
	case AlignEnd:
		c = anchor.End(cross) - popup.Get(cross) - pref.AlignmentOffset
	default:
		c = anchor.Start(cross) + anchor.Length(cross)/2 - popup.Get(cross)/2 + pref.AlignmentOffset
	}
	p = p.With(cross, c)

	return Candidate{Side: side, Alignment: align, X: p.X, Y: p.Y}
}

// SolveOptions are the solver's policy switches.
type SolveOptions struct {
	// Flip allows moving to the opposite side when the preferred side
	// overflows the available rect on the main axis.
	Flip bool

	// FallbackAxis additionally considers the two perpendicular sides when
	// neither main-axis side fits.
	FallbackAxis bool

	// Previous is the side rendered on the previous pass, or SideNone.
	// Ties keep it so placement does not flap between frames.
	Previous Side
}

// Solve picks the side for the popup and returns the naive position on that
// side. Cross-axis shifting is left to Resolve.
//
// The preferred side wins when it fits on the main axis, then the opposite
// side. When neither fits, the one leaving more of the popup inside the
// available rect wins; on a tie the previously rendered side is kept, and on
// a first pass the flip stands. A popup larger than the available rect on
// both axes always gets its preferred placement.
func Solve(pref Preference, m Measurements, opts SolveOptions) Candidate {
	size := m.Popup.Size()
	preferred := Place(pref.Side, pref.Alignment, pref, m.Anchor, size)

	if !opts.Flip || !m.Bounded || overConstrained(size, m.Available) {
		return preferred
	}
	if fitsMainAxis(preferred, size, m.Available) {
		return preferred
	}

	flipped := Place(pref.Side.Opposite(), pref.Alignment, pref, m.Anchor, size)
	if fitsMainAxis(flipped, size, m.Available) {
		return flipped
	}

	best, bestArea := flipped, visibleArea(flipped, size, m.Available)
	if a := visibleArea(preferred, size, m.Available); a > bestArea || (a == bestArea && opts.Previous == preferred.Side) {
		best, bestArea = preferred, a
	}

	if opts.FallbackAxis {
		for _, side := range pref.Side.Perpendicular() {
			c := Place(side, pref.Alignment, pref, m.Anchor, size)
			if a := visibleArea(c, size, m.Available); a > bestArea || (a == bestArea && opts.Previous == side) {
				best, bestArea = c, a
			}
		}
	}

	return best
}

// solveInner places the popup so the inner item at offset (popup-relative)
// sits on the anchor's origin.
func solveInner(m Measurements, item Point) Candidate {
	return Candidate{
		Side:      SideNone,
		Alignment: AlignStart,
		X:         m.Anchor.X - item.X,
		Y:         m.Anchor.Y - item.Y,
	}
}

func overConstrained(popup Size, available Rect) bool {
	return popup.Width > available.Width && popup.Height > available.Height
}

func fitsMainAxis(c Candidate, popup Size, available Rect) bool {
	main := c.Side.Axis()
	r := c.Rect(popup)
	return r.Start(main) >= available.Start(main) && r.End(main) <= available.End(main)
}

// visibleArea is the area of the candidate that stays inside available once
// the cross axis has been shifted.
func visibleArea(c Candidate, popup Size, available Rect) float64 {
	cross := c.Side.Axis().Cross()
	r := c.Rect(popup)
	start, _ := shiftAxis(r.Start(cross), popup.Get(cross), available.Start(cross), available.Length(cross))
	return r.WithStart(cross, start).Intersect(available).Area()
}
