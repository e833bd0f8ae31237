package anchor

import (
	"slices"
	"sync"
)

// FrameScheduler runs callbacks on the next rendering frame, on the host's
// UI goroutine. Each Positioner keeps at most one request outstanding.
type FrameScheduler interface {
	// RequestFrame queues fn for the next frame and returns a function that
	// cancels the request. Cancel is idempotent and safe after fn ran.
	RequestFrame(fn func()) (cancel func())
}

// frameQueue holds pending frame callbacks in request order.
type frameQueue struct {
	mu      sync.Mutex
	nextID  uint64
	pending map[uint64]func()
}

func (q *frameQueue) request(fn func()) func() {
	q.mu.Lock()
	if q.pending == nil {
		q.pending = make(map[uint64]func())
	}
	id := q.nextID
	q.nextID++
	q.pending[id] = fn
	q.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			q.mu.Lock()
			delete(q.pending, id)
			q.mu.Unlock()
		})
	}
}

// flush runs the callbacks pending when it was called. Requests made while
// flushing wait for the next frame; a callback cancelled by an earlier one in
// the same frame does not run.
func (q *frameQueue) flush() int {
	q.mu.Lock()
	ids := make([]uint64, 0, len(q.pending))
	for id := range q.pending {
		ids = append(ids, id)
	}
	q.mu.Unlock()
	slices.Sort(ids)

	ran := 0
	for _, id := range ids {
		q.mu.Lock()
		fn, ok := q.pending[id]
		delete(q.pending, id)
		q.mu.Unlock()
		if ok {
			fn()
			ran++
		}
	}
	return ran
}

func (q *frameQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// ManualFrames is a FrameScheduler driven by the host: callbacks run when
// the host calls Flush, typically once per render.
type ManualFrames struct {
	q frameQueue
}

// NewManualFrames creates an empty ManualFrames.
func NewManualFrames() *ManualFrames {
	return &ManualFrames{}
}

// RequestFrame queues fn until the next Flush.
func (f *ManualFrames) RequestFrame(fn func()) func() {
	return f.q.request(fn)
}

// Flush runs all pending callbacks and returns how many ran.
func (f *ManualFrames) Flush() int {
	return f.q.flush()
}

// Pending returns the number of queued callbacks.
func (f *ManualFrames) Pending() int {
	return f.q.len()
}
