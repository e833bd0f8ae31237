package anchor

// Anchor is the reference a popup is positioned against. Every kind is
// resolved through Resolve once per pass, so new kinds can be added without
// touching the solver.
type Anchor interface {
	// Resolve returns the anchor rect in viewport coordinates. ok is false
	// when the anchor cannot currently be measured (unset or detached).
	Resolve() (r Rect, ok bool)

	// Element returns the host element behind the anchor, used to find
	// clipping ancestors and to observe layout changes. Virtual anchors
	// without a context element return nil.
	Element() Element
}

// measureElement reads an element's rect, failing soft when the element is
// missing, detached, or not laid out.
func measureElement(el Element) (Rect, bool) {
	if el == nil || !el.IsConnected() {
		return Rect{}, false
	}
	r := el.BoundingRect()
	if r.IsZero() {
		return Rect{}, false
	}
	return r, true
}

// elementAnchor anchors to a concrete host element.
type elementAnchor struct {
	el Element
}

// ElementAnchor anchors to a concrete host element.
func ElementAnchor(el Element) Anchor {
	return elementAnchor{el: el}
}

func (a elementAnchor) Resolve() (Rect, bool) {
	return measureElement(a.el)
}

func (a elementAnchor) Element() Element {
	return a.el
}

// VirtualAnchor anchors to a rect supplied by a function, such as a cursor
// position or a text selection range.
type VirtualAnchor struct {
	// Rect returns the current anchor rect in viewport coordinates.
	Rect func() Rect

	// Context is the element the virtual rect lives in. Its clipping
	// ancestors bound the popup and its layout changes trigger a pass.
	// May be nil.
	Context Element
}

// Resolve calls the rect provider. A virtual anchor is always measurable
// unless its provider is nil or its context element is detached.
func (v VirtualAnchor) Resolve() (Rect, bool) {
	if v.Rect == nil {
		return Rect{}, false
	}
	if v.Context != nil && !v.Context.IsConnected() {
		return Rect{}, false
	}
	return v.Rect(), true
}

// Element returns the context element.
func (v VirtualAnchor) Element() Element {
	return v.Context
}

// VirtualPoint anchors to a fixed zero-size point.
func VirtualPoint(x, y float64) Anchor {
	return VirtualAnchor{Rect: func() Rect { return Rect{X: x, Y: y} }}
}

// VirtualRect anchors to a fixed rect.
func VirtualRect(r Rect) Anchor {
	return VirtualAnchor{Rect: func() Rect { return r }}
}

// CallbackAnchor resolves the anchor lazily on every pass. Returning nil
// means the anchor is currently unavailable.
type CallbackAnchor func() Anchor

// Resolve calls the callback and resolves the anchor it returns.
func (f CallbackAnchor) Resolve() (Rect, bool) {
	if f == nil {
		return Rect{}, false
	}
	a := f()
	if a == nil {
		return Rect{}, false
	}
	return a.Resolve()
}

// Element returns the element of the anchor the callback currently returns.
func (f CallbackAnchor) Element() Element {
	if f == nil {
		return nil
	}
	a := f()
	if a == nil {
		return nil
	}
	return a.Element()
}

// refAnchor anchors to whatever element a Ref currently holds.
type refAnchor struct {
	ref *Ref
}

// RefAnchor anchors to the element held by ref. The ref may be set after the
// positioner is created; passes before that fail soft.
func RefAnchor(ref *Ref) Anchor {
	return refAnchor{ref: ref}
}

func (a refAnchor) Resolve() (Rect, bool) {
	return measureElement(a.Element())
}

func (a refAnchor) Element() Element {
	if a.ref == nil {
		return nil
	}
	return a.ref.El()
}
