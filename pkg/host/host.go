// Package host defines the measurement contract between the positioning
// engine and the UI toolkit that owns the element tree. The toolkit supplies
// rects and change notifications; the engine never mutates host state.
package host

import "github.com/grindlemire/go-anchor/pkg/geom"

// Element is a measurable node in the host tree.
type Element interface {
	// BoundingRect returns the element's border box in viewport coordinates,
	// after all ancestor scroll offsets are applied.
	BoundingRect() geom.Rect

	// IsConnected reports whether the element is attached to a laid-out tree.
	IsConnected() bool
}

// Clipper is implemented by elements that know which of their ancestors clip
// overflowing content (scroll containers, overflow:hidden boxes).
type Clipper interface {
	// ClippingAncestors returns the clipping ancestors, nearest first.
	ClippingAncestors() []Element
}

// Observable is implemented by host objects that can report layout changes
// (resize, move, scroll). The callback runs on the host's UI goroutine.
type Observable interface {
	// Observe registers fn and returns a function that removes it.
	Observe(fn func()) (cancel func())
}

// Viewport supplies the root visible area.
type Viewport interface {
	Rect() geom.Rect
}

// StaticViewport is a Viewport with a fixed rect.
type StaticViewport geom.Rect

// Rect returns the fixed rect.
func (v StaticViewport) Rect() geom.Rect {
	return geom.Rect(v)
}
