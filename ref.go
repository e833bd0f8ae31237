package anchor

import "sync"

// Ref is a reference to a host element, set when the element is created and
// read by the positioner on every pass. Thread-safe.
type Ref struct {
	mu    sync.RWMutex
	value Element
}

// NewRef creates a new empty Ref.
func NewRef() *Ref {
	return &Ref{}
}

// Set stores the element in this ref.
func (r *Ref) Set(v Element) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = v
}

// El returns the referenced element, or nil if not yet set.
func (r *Ref) El() Element {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value
}

// IsSet returns true if the ref has been set to a non-nil element.
func (r *Ref) IsSet() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value != nil
}

// RefList holds references to the items of a list popup (select options,
// menu items) in display order. WithInnerList reads the selected item
// through it on every pass. Thread-safe.
type RefList struct {
	mu    sync.RWMutex
	elems []Element
}

// NewRefList creates a new empty RefList.
func NewRefList() *RefList {
	return &RefList{}
}

// Append adds an element to this ref list.
func (r *RefList) Append(el Element) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.elems = append(r.elems, el)
}

// Reset removes all elements, for when the list is rebuilt.
func (r *RefList) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.elems = nil
}

// At returns the element at the given index, or nil if out of bounds.
func (r *RefList) At(i int) Element {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i < 0 || i >= len(r.elems) {
		return nil
	}
	return r.elems[i]
}

// Len returns the number of elements in this ref list.
func (r *RefList) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.elems)
}
