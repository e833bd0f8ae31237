package anchor

import "slices"

// fakeEl is a host element with a fixed rect, used across the package tests.
type fakeEl struct {
	rect      Rect
	connected bool
	clippers  []Element
	listeners map[int]func()
	nextID    int
}

func newFakeEl(x, y, w, h float64) *fakeEl {
	return &fakeEl{rect: NewRect(x, y, w, h), connected: true}
}

func (e *fakeEl) BoundingRect() Rect {
	return e.rect
}

func (e *fakeEl) IsConnected() bool {
	return e.connected
}

func (e *fakeEl) ClippingAncestors() []Element {
	return e.clippers
}

func (e *fakeEl) Observe(fn func()) func() {
	if e.listeners == nil {
		e.listeners = make(map[int]func())
	}
	id := e.nextID
	e.nextID++
	e.listeners[id] = fn
	return func() { delete(e.listeners, id) }
}

func (e *fakeEl) observers() int {
	return len(e.listeners)
}

// move sets the rect and notifies observers.
func (e *fakeEl) move(r Rect) {
	e.rect = r
	e.notify()
}

func (e *fakeEl) notify() {
	ids := make([]int, 0, len(e.listeners))
	for id := range e.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if fn, ok := e.listeners[id]; ok {
			fn()
		}
	}
}

// recordingFrames captures frame callbacks without running them.
type recordingFrames struct {
	fns []func()
}

func (f *recordingFrames) RequestFrame(fn func()) func() {
	f.fns = append(f.fns, fn)
	return func() {}
}
