package anchor

import (
	"fmt"

	"github.com/grindlemire/go-anchor/pkg/host"
)

// Option is a functional option for configuring a Positioner.
type Option func(*config) error

// config holds every positioner setting. Defaults follow defaultConfig.
type config struct {
	anchor   Anchor
	pref     Preference
	boundary Boundary
	padding  Edges

	allowAxisFlip    bool
	fallbackAxis     bool
	sticky           bool
	hideWhenDetached bool

	arrow        Element
	arrowSize    Size
	arrowPadding float64

	keepMounted bool
	trackAnchor bool

	innerItem     Element
	innerList     *RefList
	innerIndex    int
	innerFallback bool
	touchModality bool

	method    PositionMethod
	container Element
	viewport  Viewport
	frames    FrameScheduler
	registry  *Registry
	onChange  func(Result)
}

func defaultConfig() config {
	return config{
		pref: Preference{
			Side:      SideBottom,
			Alignment: AlignCenter,
		},
		boundary:      ClippingAncestors(),
		padding:       EdgeAll(5),
		allowAxisFlip: true,
		arrowPadding:  5,
		trackAnchor:   true,
		method:        PositionAbsolute,
		viewport:      host.StaticViewport{},
	}
}

// WithAnchor sets the anchor the popup is positioned against.
func WithAnchor(a Anchor) Option {
	return func(c *config) error {
		c.anchor = a
		return nil
	}
}

// WithSide sets the preferred side of the anchor. Default is SideBottom.
func WithSide(s Side) Option {
	return func(c *config) error {
		if s > SideLeft {
			return fmt.Errorf("%w: side must be top, right, bottom or left, got %v", ErrInvalidOption, s)
		}
		c.pref.Side = s
		return nil
	}
}

// WithAlignment sets the preferred cross-axis alignment. Default is AlignCenter.
func WithAlignment(a Alignment) Option {
	return func(c *config) error {
		if a > AlignEnd {
			return fmt.Errorf("%w: unknown alignment %v", ErrInvalidOption, a)
		}
		c.pref.Alignment = a
		return nil
	}
}

// WithSideOffset sets the gap between anchor and popup. Default is 0.
func WithSideOffset(n float64) Option {
	return func(c *config) error {
		c.pref.SideOffset = n
		return nil
	}
}

// WithAlignmentOffset sets the cross-axis nudge. Default is 0.
func WithAlignmentOffset(n float64) Option {
	return func(c *config) error {
		c.pref.AlignmentOffset = n
		return nil
	}
}

// WithCollisionBoundary sets the boundary. Default is ClippingAncestors().
func WithCollisionBoundary(b Boundary) Option {
	return func(c *config) error {
		if b == nil {
			return fmt.Errorf("%w: collision boundary must not be nil", ErrInvalidOption)
		}
		c.boundary = b
		return nil
	}
}

// WithCollisionPadding sets the same padding on every boundary edge.
// Default is 5. Must not be negative.
func WithCollisionPadding(n float64) Option {
	return WithCollisionPaddingEdges(EdgeAll(n))
}

// WithCollisionPaddingEdges sets per-edge boundary padding. Must not be negative.
func WithCollisionPaddingEdges(e Edges) Option {
	return func(c *config) error {
		if e.HasNegative() {
			return fmt.Errorf("%w: collision padding must not be negative, got %+v", ErrInvalidOption, e)
		}
		c.padding = e
		return nil
	}
}

// WithAllowAxisFlip enables flipping to the opposite side when the preferred
// side overflows. Default is true.
func WithAllowAxisFlip(allow bool) Option {
	return func(c *config) error {
		c.allowAxisFlip = allow
		return nil
	}
}

// WithFallbackAxis lets the popup move to a perpendicular side when neither
// side of the preferred axis fits. Has no effect without axis flipping.
// Default is false.
func WithFallbackAxis(enabled bool) Option {
	return func(c *config) error {
		c.fallbackAxis = enabled
		return nil
	}
}

// WithSticky keeps the popup at its last valid position while the anchor is
// scrolled out of the boundary. Default is false.
func WithSticky(sticky bool) Option {
	return func(c *config) error {
		c.sticky = sticky
		return nil
	}
}

// WithHideWhenDetached reports Hidden once the anchor is fully clipped.
// Default is false.
func WithHideWhenDetached(hide bool) Option {
	return func(c *config) error {
		c.hideWhenDetached = hide
		return nil
	}
}

// WithArrow measures the arrow element on every pass.
func WithArrow(el Element) Option {
	return func(c *config) error {
		c.arrow = el
		return nil
	}
}

// WithArrowSize sets a fixed arrow size for hosts without an arrow element.
func WithArrowSize(s Size) Option {
	return func(c *config) error {
		if s.Width < 0 || s.Height < 0 {
			return fmt.Errorf("%w: arrow size must not be negative, got %+v", ErrInvalidOption, s)
		}
		c.arrowSize = s
		return nil
	}
}

// WithArrowPadding sets the minimum distance between the arrow and the
// popup's corners. Default is 5. Must not be negative.
func WithArrowPadding(n float64) Option {
	return func(c *config) error {
		if n < 0 {
			return fmt.Errorf("%w: arrow padding must not be negative, got %v", ErrInvalidOption, n)
		}
		c.arrowPadding = n
		return nil
	}
}

// WithKeepMounted declares that the popup stays in the host tree while
// closed. Tracking then only runs while open. Default is false.
func WithKeepMounted(keep bool) Option {
	return func(c *config) error {
		c.keepMounted = keep
		return nil
	}
}

// WithTrackAnchor keeps re-measuring after the initial pass. Default is true.
func WithTrackAnchor(track bool) Option {
	return func(c *config) error {
		c.trackAnchor = track
		return nil
	}
}

// WithInner positions the popup so that item, an element inside the popup,
// overlays the anchor (a select list opening over its trigger).
func WithInner(item Element) Option {
	return func(c *config) error {
		c.innerItem = item
		c.innerList = nil
		return nil
	}
}

// WithInnerList is WithInner for list popups: the item at index selected is
// read from list on every pass, so the list may be rebuilt while mounted.
// Standard placement is used while that item is missing.
func WithInnerList(list *RefList, selected int) Option {
	return func(c *config) error {
		if list == nil {
			return fmt.Errorf("%w: inner list must not be nil", ErrInvalidOption)
		}
		if selected < 0 {
			return fmt.Errorf("%w: selected index must not be negative, got %d", ErrInvalidOption, selected)
		}
		c.innerList = list
		c.innerIndex = selected
		c.innerItem = nil
		return nil
	}
}

// WithInnerFallback ignores WithInner and uses standard placement, for when
// overlaying the anchor would give poor results. Default is false.
func WithInnerFallback(fallback bool) Option {
	return func(c *config) error {
		c.innerFallback = fallback
		return nil
	}
}

// WithTouchModality marks the current input as touch: inner anchoring and
// axis flipping are both disabled. Default is false.
func WithTouchModality(touch bool) Option {
	return func(c *config) error {
		c.touchModality = touch
		return nil
	}
}

// WithPositionMethod selects absolute (container-relative) or fixed
// (viewport-relative) output coordinates. Default is PositionAbsolute.
func WithPositionMethod(m PositionMethod) Option {
	return func(c *config) error {
		if m > PositionFixed {
			return fmt.Errorf("%w: unknown position method %v", ErrInvalidOption, m)
		}
		c.method = m
		return nil
	}
}

// WithContainer sets the offset parent used for absolute positioning.
func WithContainer(el Element) Option {
	return func(c *config) error {
		c.container = el
		return nil
	}
}

// WithViewport sets the root visible area. If the viewport is also
// Observable, resizes trigger a pass.
func WithViewport(v Viewport) Option {
	return func(c *config) error {
		if v == nil {
			return fmt.Errorf("%w: viewport must not be nil", ErrInvalidOption)
		}
		c.viewport = v
		return nil
	}
}

// WithFrames sets the frame source used to coalesce passes. Default is a
// ManualFrames reachable through Positioner.Frames.
func WithFrames(f FrameScheduler) Option {
	return func(c *config) error {
		if f == nil {
			return fmt.Errorf("%w: frame scheduler must not be nil", ErrInvalidOption)
		}
		c.frames = f
		return nil
	}
}

// WithRegistry shares host observations with other positioners.
// Default is a registry private to the positioner.
func WithRegistry(r *Registry) Option {
	return func(c *config) error {
		if r == nil {
			return fmt.Errorf("%w: registry must not be nil", ErrInvalidOption)
		}
		c.registry = r
		return nil
	}
}

// WithOnChange registers a callback run after every pass that changes the result.
func WithOnChange(fn func(Result)) Option {
	return func(c *config) error {
		c.onChange = fn
		return nil
	}
}
