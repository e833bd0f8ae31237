package anchor

import (
	"slices"

	"github.com/grindlemire/go-anchor/internal/debug"
)

// Mount starts the positioner's lifecycle: it runs one pass synchronously
// and, when anchor tracking is on, subscribes to layout changes of the
// anchor, its clipping ancestors, the popup and the viewport. Mounting a
// mounted positioner does nothing.
func (p *Positioner) Mount() {
	p.mu.Lock()
	if p.state != StateUnmounted {
		p.mu.Unlock()
		return
	}
	p.state = StateMeasuring
	p.mu.Unlock()

	debug.Log("positioner: mount track=%v keepMounted=%v", p.cfg.trackAnchor, p.cfg.keepMounted)
	p.pass()
}

// Unmount stops tracking. The pending frame is cancelled and observers are
// released before Unmount returns; a frame callback that was already
// dequeued becomes a no-op. The result is discarded.
func (p *Positioner) Unmount() {
	p.generation++
	if p.pending != nil {
		p.pending()
		p.pending = nil
	}
	p.releaseObservers()
	p.lastValid = nil

	p.mu.Lock()
	p.state = StateUnmounted
	p.result = Result{}
	p.mu.Unlock()

	debug.Log("positioner: unmount")
}

// SetOpen records whether the popup is open. Closed popups get
// pointer-events: none. With WithKeepMounted, tracking pauses while closed
// and resumes, with a fresh pass, when reopened.
func (p *Positioner) SetOpen(open bool) {
	p.mu.Lock()
	changed := p.open != open
	p.open = open
	mounted := p.state != StateUnmounted
	p.mu.Unlock()

	if !changed || !mounted {
		return
	}
	if p.tracking() {
		p.syncObservers()
		p.schedule()
	} else if p.cfg.keepMounted {
		if p.pending != nil {
			p.pending()
			p.pending = nil
		}
		p.releaseObservers()
	}
}

// tracking reports whether layout changes should trigger passes.
func (p *Positioner) tracking() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == StateUnmounted || !p.cfg.trackAnchor {
		return false
	}
	return !p.cfg.keepMounted || p.open
}

// schedule requests a pass on the next frame. While a request is pending
// further calls are no-ops, so bursts of scroll and resize events collapse
// into one pass.
func (p *Positioner) schedule() {
	if p.pending != nil || !p.isMounted() {
		return
	}
	gen := p.generation
	p.pending = p.cfg.frames.RequestFrame(func() { p.runFrame(gen) })
}

func (p *Positioner) runFrame(gen uint64) {
	if gen != p.generation {
		return
	}
	p.pending = nil
	p.pass()
}

// syncObservers subscribes to the current target set, replacing the old
// subscriptions when the anchor element or its ancestors changed.
func (p *Positioner) syncObservers() {
	want := p.targets()
	if p.releases != nil && slices.Equal(want, p.observed) {
		return
	}
	p.releaseObservers()
	p.releases = make([]func(), 0, len(want))
	for _, t := range want {
		p.releases = append(p.releases, p.cfg.registry.Subscribe(t, p.schedule))
	}
	p.observed = want
}

func (p *Positioner) releaseObservers() {
	for _, release := range p.releases {
		release()
	}
	p.releases = nil
	p.observed = nil
}

// targets collects the observable objects whose layout affects placement,
// without duplicates.
func (p *Positioner) targets() []Observable {
	var out []Observable
	add := func(v any) {
		o, ok := v.(Observable)
		if !ok || o == nil || slices.Contains(out, o) {
			return
		}
		out = append(out, o)
	}

	var anchorEl Element
	if p.cfg.anchor != nil {
		anchorEl = p.cfg.anchor.Element()
	}
	if anchorEl != nil {
		add(anchorEl)
	}
	for _, el := range p.cfg.boundary.Targets(anchorEl) {
		add(el)
	}
	if p.popup != nil {
		add(p.popup)
	}
	if p.cfg.container != nil {
		add(p.cfg.container)
	}
	if p.cfg.viewport != nil {
		add(p.cfg.viewport)
	}
	return out
}
