package anchor

// Measurements is one snapshot of everything a pass needs, in viewport
// coordinates.
type Measurements struct {
	Anchor    Rect // Resolved anchor rect
	Popup     Rect // Popup rect as currently laid out; only its size is used
	Boundary  Rect // Collision boundary
	Available Rect // Boundary inset by the collision padding
	Container Rect // Offset parent for absolute positioning

	// OK is false when the anchor (or a connected popup) could not be
	// measured. Callers keep the prior placement.
	OK bool

	// Bounded is false when the boundary is degenerate; collision handling
	// is skipped.
	Bounded bool
}

// Measure resolves the anchor, popup, boundary and container in one pass. It
// has no side effects and never fails: unresolvable inputs produce zero rects
// and OK=false.
func Measure(a Anchor, popup Element, b Boundary, container Element, padding Edges, viewport Rect) Measurements {
	var m Measurements

	if a == nil {
		return m
	}
	anchorRect, ok := a.Resolve()
	if !ok {
		return m
	}
	m.Anchor = anchorRect

	if popup != nil {
		if !popup.IsConnected() {
			return m
		}
		m.Popup = popup.BoundingRect()
	}

	if container != nil && container.IsConnected() {
		m.Container = container.BoundingRect()
	}

	if b == nil {
		b = ClippingAncestors()
	}
	if boundary, bounded := b.Resolve(a.Element(), viewport); bounded {
		m.Boundary = boundary
		m.Available = boundary.Inset(padding)
		m.Bounded = true
	}

	m.OK = true
	return m
}
