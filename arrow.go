package anchor

// Arrow is the computed position of the popup's arrow.
type Arrow struct {
	// Offset is the arrow's distance from the popup's leading edge along the
	// cross axis (left for top/bottom sides, top for left/right sides).
	Offset float64

	// Uncentered is set when the arrow had to be clamped and no longer
	// points at the anchor's midpoint.
	Uncentered bool

	// StaticSide is the popup edge the arrow sits on, facing the anchor.
	StaticSide Side
}

// CenterArrow positions an arrow of arrowSize (its cross-axis extent) so it
// points at the middle of the anchor, clamped to stay padding away from the
// popup's corners. popup is the resolved popup rect.
func CenterArrow(side Side, anchor, popup Rect, arrowSize, padding float64) Arrow {
	if side == SideNone {
		return Arrow{StaticSide: SideNone}
	}

	cross := side.Axis().Cross()
	ideal := anchor.Start(cross) + anchor.Length(cross)/2 - arrowSize/2 - popup.Start(cross)

	lo := padding
	hi := max(lo, popup.Length(cross)-arrowSize-padding)
	offset := min(max(ideal, lo), hi)

	return Arrow{
		Offset:     offset,
		Uncentered: offset != ideal,
		StaticSide: side.Opposite(),
	}
}
