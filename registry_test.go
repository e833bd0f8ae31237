package anchor

import "testing"

func TestRegistry_SharesOneHostSubscription(t *testing.T) {
	reg := NewRegistry()
	el := newFakeEl(0, 0, 10, 10)

	var a, b int
	releaseA := reg.Subscribe(el, func() { a++ })
	releaseB := reg.Subscribe(el, func() { b++ })

	if el.observers() != 1 {
		t.Fatalf("host observers = %d, want 1", el.observers())
	}

	el.notify()
	if a != 1 || b != 1 {
		t.Errorf("calls = (%d, %d), want (1, 1)", a, b)
	}

	releaseA()
	releaseA()
	if got := reg.Subscribers(el); got != 1 {
		t.Errorf("Subscribers() = %d after one release, want 1", got)
	}

	el.notify()
	if a != 1 || b != 2 {
		t.Errorf("calls after release = (%d, %d), want (1, 2)", a, b)
	}

	releaseB()
	if el.observers() != 0 {
		t.Errorf("host observers = %d after last release, want 0", el.observers())
	}
	if reg.Len() != 0 {
		t.Errorf("Len() = %d, want 0", reg.Len())
	}
}

func TestRegistry_TargetsAreIndependent(t *testing.T) {
	reg := NewRegistry()
	first := newFakeEl(0, 0, 10, 10)
	second := newFakeEl(0, 0, 10, 10)

	var calls int
	release := reg.Subscribe(first, func() { calls++ })
	defer release()
	defer reg.Subscribe(second, func() { t.Error("second target subscriber was called") })()

	first.notify()
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if reg.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reg.Len())
	}
}

func TestRegistry_SubscriberMayReleaseDuringDispatch(t *testing.T) {
	reg := NewRegistry()
	el := newFakeEl(0, 0, 10, 10)

	var release func()
	var calls int
	release = reg.Subscribe(el, func() {
		calls++
		release()
	})

	el.notify()
	el.notify()
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if el.observers() != 0 {
		t.Errorf("host observers = %d, want 0", el.observers())
	}
}
