package anchor

import (
	"slices"
	"sync"
)

// Registry shares host observations between positioners. Each observed
// target gets a single underlying host subscription no matter how many
// positioners watch it; the subscription is removed when the last one
// releases. Results never cross between subscribers: each only receives a
// wake-up and measures for itself.
//
// Targets are used as map keys and must have comparable dynamic types
// (pointers in practice).
type Registry struct {
	mu      sync.Mutex
	entries map[Observable]*registryEntry
}

type registryEntry struct {
	cancel func()
	subs   map[uint64]func()
	nextID uint64
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[Observable]*registryEntry)}
}

// Subscribe calls fn whenever target reports a change and returns a release
// function. Release is idempotent.
//
// The target's Observe is called with the registry locked, so it must not
// invoke its callback synchronously.
func (r *Registry) Subscribe(target Observable, fn func()) (release func()) {
	r.mu.Lock()
	e, ok := r.entries[target]
	if !ok {
		e = &registryEntry{subs: make(map[uint64]func())}
		r.entries[target] = e
		e.cancel = target.Observe(func() { r.dispatch(target) })
	}
	id := e.nextID
	e.nextID++
	e.subs[id] = fn
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { r.release(target, id) })
	}
}

func (r *Registry) release(target Observable, id uint64) {
	r.mu.Lock()
	e, ok := r.entries[target]
	if !ok {
		r.mu.Unlock()
		return
	}
	delete(e.subs, id)
	var cancel func()
	if len(e.subs) == 0 {
		delete(r.entries, target)
		cancel = e.cancel
	}
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (r *Registry) dispatch(target Observable) {
	r.mu.Lock()
	e, ok := r.entries[target]
	if !ok {
		r.mu.Unlock()
		return
	}
	ids := make([]uint64, 0, len(e.subs))
	for id := range e.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, e.subs[id])
	}
	r.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Len returns the number of targets with a live host subscription.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Subscribers returns the number of subscribers watching target.
func (r *Registry) Subscribers(target Observable) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[target]; ok {
		return len(e.subs)
	}
	return 0
}
