package anchor

// Boundary is the region a popup is constrained to.
type Boundary interface {
	// Resolve returns the boundary rect for the given anchor element (which
	// may be nil for virtual anchors). ok is false when the boundary is
	// degenerate, in which case collision handling is skipped.
	Resolve(anchor Element, viewport Rect) (r Rect, ok bool)

	// Targets returns the host elements whose layout changes move the
	// boundary.
	Targets(anchor Element) []Element
}

// clippingAncestors intersects the viewport with every clipping ancestor of
// the anchor element.
type clippingAncestors struct{}

// ClippingAncestors returns the default boundary: the viewport intersected
// with the anchor's clipping ancestors.
func ClippingAncestors() Boundary {
	return clippingAncestors{}
}

func (clippingAncestors) Resolve(anchor Element, viewport Rect) (Rect, bool) {
	rect, ok := viewport, !viewport.IsEmpty()
	for _, el := range ancestorsOf(anchor) {
		r, measured := measureElement(el)
		if !measured {
			continue
		}
		if !ok {
			rect, ok = r, true
			continue
		}
		rect = rect.Intersect(r)
	}
	return rect, ok && !rect.IsEmpty()
}

func (clippingAncestors) Targets(anchor Element) []Element {
	return ancestorsOf(anchor)
}

func ancestorsOf(el Element) []Element {
	if c, ok := el.(Clipper); ok {
		return c.ClippingAncestors()
	}
	return nil
}

// elementsBoundary intersects the viewport with a fixed set of elements.
type elementsBoundary struct {
	els []Element
}

// ElementBoundary constrains the popup to el, intersected with the viewport.
func ElementBoundary(el Element) Boundary {
	return elementsBoundary{els: []Element{el}}
}

// ElementsBoundary constrains the popup to the intersection of els and the
// viewport.
func ElementsBoundary(els ...Element) Boundary {
	return elementsBoundary{els: els}
}

func (b elementsBoundary) Resolve(_ Element, viewport Rect) (Rect, bool) {
	rect, ok := viewport, !viewport.IsEmpty()
	for _, el := range b.els {
		r, measured := measureElement(el)
		if !measured {
			return Rect{}, false
		}
		if !ok {
			rect, ok = r, true
			continue
		}
		rect = rect.Intersect(r)
	}
	return rect, ok && !rect.IsEmpty()
}

func (b elementsBoundary) Targets(Element) []Element {
	return b.els
}

// rectBoundary is a fixed rect.
type rectBoundary Rect

// RectBoundary constrains the popup to a fixed rect in viewport coordinates.
func RectBoundary(r Rect) Boundary {
	return rectBoundary(r)
}

func (b rectBoundary) Resolve(Element, Rect) (Rect, bool) {
	return Rect(b), !Rect(b).IsEmpty()
}

func (rectBoundary) Targets(Element) []Element {
	return nil
}

// viewportBoundary ignores clipping ancestors.
type viewportBoundary struct{}

// ViewportBoundary constrains the popup to the viewport only.
func ViewportBoundary() Boundary {
	return viewportBoundary{}
}

func (viewportBoundary) Resolve(_ Element, viewport Rect) (Rect, bool) {
	return viewport, !viewport.IsEmpty()
}

func (viewportBoundary) Targets(Element) []Element {
	return nil
}
