package anchor

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/grindlemire/go-anchor/internal/debug"
	"github.com/jonboulle/clockwork"
)

// Watcher represents a deferred event source that starts when the host loop
// runs. The eventQueue channel and stopCh are provided by the host.
type Watcher interface {
	// Start begins the watcher goroutine.
	Start(eventQueue chan<- func(), stopCh <-chan struct{})
}

var _ Watcher = (*TickerFrames)(nil)

// TickerFrames is a FrameScheduler for hosts with an event-queue loop. A
// ticker goroutine enqueues one frame batch per tick onto the host queue
// whenever callbacks are pending; the batch itself runs on the host loop.
type TickerFrames struct {
	q        frameQueue
	clock    clockwork.Clock
	interval time.Duration
	queued   atomic.Bool
}

// TickerOption is a functional option for configuring TickerFrames.
type TickerOption func(*TickerFrames) error

// WithFrameRate sets the target frame rate.
// Default is 60 fps (16ms frame duration). Valid range is 1-240 fps.
func WithFrameRate(fps int) TickerOption {
	return func(f *TickerFrames) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		f.interval = time.Second / time.Duration(fps)
		return nil
	}
}

// WithClock sets the clock driving the ticker. Tests pass a fake clock.
func WithClock(c clockwork.Clock) TickerOption {
	return func(f *TickerFrames) error {
		if c == nil {
			return fmt.Errorf("clock must not be nil")
		}
		f.clock = c
		return nil
	}
}

// NewTickerFrames creates a TickerFrames. It does nothing until Start.
func NewTickerFrames(opts ...TickerOption) (*TickerFrames, error) {
	f := &TickerFrames{
		clock:    clockwork.NewRealClock(),
		interval: time.Second / 60,
	}
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// RequestFrame queues fn for the next tick.
func (f *TickerFrames) RequestFrame(fn func()) func() {
	return f.q.request(fn)
}

// Pending returns the number of queued callbacks.
func (f *TickerFrames) Pending() int {
	return f.q.len()
}

// Start the ticker. At most one batch is in the event queue at a time.
func (f *TickerFrames) Start(eventQueue chan<- func(), stopCh <-chan struct{}) {
	ticker := f.clock.NewTicker(f.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.Chan():
				if f.q.len() == 0 || f.queued.Swap(true) {
					continue
				}
				select {
				case eventQueue <- f.runFrame:
				case <-stopCh:
					return
				}
			}
		}
	}()
}

func (f *TickerFrames) runFrame() {
	f.queued.Store(false)
	if n := f.q.flush(); n > 0 {
		debug.Log("frame: ran %d callbacks", n)
	}
}
