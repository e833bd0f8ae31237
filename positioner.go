package anchor

import (
	"sync"

	"github.com/grindlemire/go-anchor/internal/debug"
)

// State is the positioner's lifecycle state.
type State uint8

const (
	StateUnmounted  State = iota // Not tracking; no result
	StateMeasuring               // Mounted, waiting for a first successful measurement
	StatePositioned              // At least one pass succeeded since Mount
)

func (s State) String() string {
	switch s {
	case StateMeasuring:
		return "measuring"
	case StatePositioned:
		return "positioned"
	}
	return "unmounted"
}

// Positioner positions one popup. It is owned by the popup's widget and must
// be driven from the host's UI goroutine; Result, State and Payload may be
// read from any goroutine.
type Positioner struct {
	cfg   config
	popup Element

	mu     sync.Mutex // Guards state, result and open for readers
	state  State
	result Result
	open   bool

	// Loop-goroutine state.
	lastValid  *Candidate // Sticky fallback
	generation uint64     // Bumped on Unmount to orphan queued frames
	pending    func()     // Cancels the outstanding frame request
	inPass     bool
	observed   []Observable
	releases   []func()
}

// NewPositioner creates a positioner for popup. The popup's size is read on
// every pass; its position is ignored.
func NewPositioner(popup Element, opts ...Option) (*Positioner, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if cfg.frames == nil {
		cfg.frames = NewManualFrames()
	}
	if cfg.registry == nil {
		cfg.registry = NewRegistry()
	}
	return &Positioner{
		cfg:   cfg,
		popup: popup,
		open:  true,
	}, nil
}

// Frames returns the frame scheduler passes are coalesced on.
func (p *Positioner) Frames() FrameScheduler {
	return p.cfg.frames
}

// Result returns the most recent placement.
func (p *Positioner) Result() Result {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.result
}

// State returns the lifecycle state.
func (p *Positioner) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Update runs a pass immediately and returns its result. It is a no-op
// while unmounted or when called from inside a pass.
func (p *Positioner) Update() Result {
	p.pass()
	return p.Result()
}

func (p *Positioner) isMounted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state != StateUnmounted
}

// pass runs measure → solve → resolve → arrow and publishes the result.
func (p *Positioner) pass() {
	if p.inPass || !p.isMounted() {
		return
	}
	p.inPass = true
	defer func() { p.inPass = false }()

	var viewport Rect
	if p.cfg.viewport != nil {
		viewport = p.cfg.viewport.Rect()
	}
	m := Measure(p.cfg.anchor, p.popup, p.cfg.boundary, p.cfg.container, p.cfg.padding, viewport)

	p.mu.Lock()
	prev := p.result
	p.mu.Unlock()

	next := p.compute(m, prev)

	p.mu.Lock()
	p.result = next
	if next.IsPositioned && p.state == StateMeasuring {
		p.state = StatePositioned
		debug.Log("positioner: measuring -> positioned side=%s align=%s", next.Side, next.Alignment)
	}
	p.mu.Unlock()

	if next.Degraded != 0 {
		debug.Log("positioner: degraded pass: %s", next.Degraded)
	}
	if p.cfg.onChange != nil && next != prev {
		p.cfg.onChange(next)
	}

	if p.tracking() {
		p.syncObservers()
	}
}

func (p *Positioner) compute(m Measurements, prev Result) Result {
	if !m.OK {
		prev.Degraded = ConditionMeasurementUnavailable
		return prev
	}

	var cand Candidate
	inner := false
	if el := p.innerItem(); el != nil && !p.cfg.innerFallback && !p.cfg.touchModality {
		if item, ok := measureElement(el); ok {
			cand = solveInner(m, item.Origin().Sub(m.Popup.Origin()))
			inner = true
		}
	}
	if !inner {
		// A held sticky placement counts as rendered: ties keep the side
		// the user is looking at.
		previous := SideNone
		if prev.IsPositioned {
			previous = prev.Side
		}
		cand = Solve(p.cfg.pref, m, SolveOptions{
			Flip:         p.cfg.allowAxisFlip && !p.cfg.touchModality,
			FallbackAxis: p.cfg.fallbackAxis,
			Previous:     previous,
		})
	}

	res := Resolve(cand, m, Policy{
		Sticky:           p.cfg.sticky,
		HideWhenDetached: p.cfg.hideWhenDetached,
	}, p.lastValid)
	if res.Valid && !res.Stuck {
		c := res.Candidate
		p.lastValid = &c
	}

	popup := res.Rect(m.Popup.Size())

	var arrow Arrow
	if size, ok := p.arrowSize(); ok {
		cross := res.Side.Axis().Cross()
		arrow = CenterArrow(res.Side, m.Anchor, popup, size.Get(cross), p.cfg.arrowPadding)
	}

	x, y := res.X, res.Y
	if p.cfg.method == PositionAbsolute {
		x -= m.Container.X
		y -= m.Container.Y
	}

	var cond Condition
	if res.OverConstrained {
		cond |= ConditionOverConstrained
	}
	if res.Stuck {
		cond |= ConditionStuck
	}
	if !m.Bounded {
		cond |= ConditionUnbounded
	} else if detached(m.Anchor, m.Available) {
		cond |= ConditionDetachedAnchor
	}

	return Result{
		Side:         res.Side,
		Alignment:    res.Alignment,
		X:            x,
		Y:            y,
		IsPositioned: true,
		Hidden:       res.Hidden,
		Arrow:        arrow,
		Anchor:       m.Anchor,
		Popup:        popup,
		Available:    m.Available,
		Degraded:     cond,
	}
}

// innerItem returns the element inner anchoring aligns with the anchor, or
// nil when inner anchoring is off or the selected list item is not set.
func (p *Positioner) innerItem() Element {
	if p.cfg.innerList != nil {
		return p.cfg.innerList.At(p.cfg.innerIndex)
	}
	return p.cfg.innerItem
}

func (p *Positioner) arrowSize() (Size, bool) {
	if p.cfg.arrow != nil {
		if r, ok := measureElement(p.cfg.arrow); ok {
			return r.Size(), true
		}
		return Size{}, false
	}
	return p.cfg.arrowSize, p.cfg.arrowSize != Size{}
}
