package anchor

import (
	"testing"

	"github.com/grindlemire/go-anchor/pkg/host"
)

func newTestPositioner(t *testing.T, anchorEl, popup *fakeEl, opts ...Option) *Positioner {
	t.Helper()
	base := []Option{
		WithAnchor(ElementAnchor(anchorEl)),
		WithViewport(host.StaticViewport(NewRect(0, 0, 100, 40))),
		WithCollisionPadding(0),
		WithPositionMethod(PositionFixed),
	}
	p, err := NewPositioner(popup, append(base, opts...)...)
	if err != nil {
		t.Fatalf("NewPositioner() error = %v", err)
	}
	return p
}

func manualFrames(t *testing.T, p *Positioner) *ManualFrames {
	t.Helper()
	f, ok := p.Frames().(*ManualFrames)
	if !ok {
		t.Fatalf("Frames() = %T, want *ManualFrames", p.Frames())
	}
	return f
}

func TestPositioner_FlipsToTopWhenBottomOverflows(t *testing.T) {
	anchorEl := newFakeEl(10, 10, 50, 20)
	popup := newFakeEl(0, 0, 40, 30)
	p := newTestPositioner(t, anchorEl, popup, WithSide(SideBottom), WithAlignment(AlignStart))

	p.Mount()
	defer p.Unmount()

	got := p.Result()
	if got.Side != SideTop || got.Alignment != AlignStart {
		t.Errorf("side/align = %s/%s, want top/start", got.Side, got.Alignment)
	}
	if got.X != 10 || got.Y != -20 {
		t.Errorf("position = (%v, %v), want (10, -20)", got.X, got.Y)
	}
	if !got.IsPositioned {
		t.Error("IsPositioned = false after a successful pass")
	}
	if p.State() != StatePositioned {
		t.Errorf("State() = %s, want positioned", p.State())
	}
}

func TestPositioner_ReportsMissingBoundary(t *testing.T) {
	type tc struct {
		opts          []Option
		wantSide      Side
		wantUnbounded bool
	}

	tests := map[string]tc{
		"no viewport and no clipping ancestors": {
			wantSide: SideBottom, wantUnbounded: true,
		},
		"viewport set": {
			opts:     []Option{WithViewport(host.StaticViewport(NewRect(0, 0, 100, 40)))},
			wantSide: SideTop,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			opts := append([]Option{
				WithAnchor(ElementAnchor(newFakeEl(10, 10, 50, 20))),
				WithAlignment(AlignStart),
				WithCollisionPadding(0),
			}, tt.opts...)
			p, err := NewPositioner(newFakeEl(0, 0, 40, 30), opts...)
			if err != nil {
				t.Fatalf("NewPositioner() error = %v", err)
			}
			p.Mount()
			defer p.Unmount()

			got := p.Result()
			if got.Side != tt.wantSide {
				t.Errorf("Side = %s, want %s", got.Side, tt.wantSide)
			}
			if got.Degraded.Has(ConditionUnbounded) != tt.wantUnbounded {
				t.Errorf("Degraded = %s, want unbounded=%v", got.Degraded, tt.wantUnbounded)
			}
		})
	}
}

func TestPositioner_UpdateIsIdempotent(t *testing.T) {
	p := newTestPositioner(t, newFakeEl(10, 10, 50, 20), newFakeEl(0, 0, 40, 30), WithAlignment(AlignStart))
	p.Mount()
	defer p.Unmount()

	first := p.Result()
	for i := range 3 {
		if got := p.Update(); got != first {
			t.Fatalf("Update() #%d = %+v, want %+v", i, got, first)
		}
	}
}

func TestPositioner_KeepsPlacementWhenMeasurementFails(t *testing.T) {
	anchorEl := newFakeEl(10, 10, 50, 20)
	p := newTestPositioner(t, anchorEl, newFakeEl(0, 0, 40, 30))
	p.Mount()
	defer p.Unmount()
	before := p.Result()

	anchorEl.connected = false
	got := p.Update()

	if !got.IsPositioned {
		t.Error("IsPositioned reverted to false on a degraded pass")
	}
	if !got.Degraded.Has(ConditionMeasurementUnavailable) {
		t.Errorf("Degraded = %s, want measurement-unavailable", got.Degraded)
	}
	if got.X != before.X || got.Y != before.Y || got.Side != before.Side {
		t.Errorf("placement changed on a degraded pass: got %+v, want %+v", got, before)
	}
	if p.State() != StatePositioned {
		t.Errorf("State() = %s, want positioned", p.State())
	}
}

func TestPositioner_MeasuringUntilAnchorIsAvailable(t *testing.T) {
	ref := NewRef()
	popup := newFakeEl(0, 0, 40, 30)
	p, err := NewPositioner(popup,
		WithAnchor(RefAnchor(ref)),
		WithViewport(host.StaticViewport(NewRect(0, 0, 100, 100))),
	)
	if err != nil {
		t.Fatalf("NewPositioner() error = %v", err)
	}
	p.Mount()
	defer p.Unmount()

	if p.State() != StateMeasuring {
		t.Fatalf("State() = %s, want measuring", p.State())
	}
	if p.Result().IsPositioned {
		t.Fatal("IsPositioned = true before the anchor was measured")
	}

	ref.Set(newFakeEl(10, 10, 20, 10))
	if got := p.Update(); !got.IsPositioned {
		t.Errorf("IsPositioned = false after the ref was set")
	}
	if p.State() != StatePositioned {
		t.Errorf("State() = %s, want positioned", p.State())
	}
}

func TestPositioner_CoalescesChangesIntoOneFrame(t *testing.T) {
	anchorEl := newFakeEl(10, 10, 50, 20)
	p := newTestPositioner(t, anchorEl, newFakeEl(0, 0, 40, 30), WithAlignment(AlignStart))
	p.Mount()
	defer p.Unmount()
	frames := manualFrames(t, p)

	anchorEl.move(NewRect(10, 2, 50, 5))
	anchorEl.move(NewRect(10, 1, 50, 5))
	anchorEl.move(NewRect(10, 0, 50, 5))

	if got := frames.Pending(); got != 1 {
		t.Fatalf("Pending() = %d, want 1", got)
	}
	if ran := frames.Flush(); ran != 1 {
		t.Fatalf("Flush() ran %d callbacks, want 1", ran)
	}

	got := p.Result()
	if got.Side != SideBottom || got.Y != 5 {
		t.Errorf("after frame: side=%s y=%v, want bottom y=5", got.Side, got.Y)
	}

	anchorEl.move(NewRect(10, 1, 50, 5))
	if got := frames.Pending(); got != 1 {
		t.Errorf("Pending() after next change = %d, want 1", got)
	}
}

func TestPositioner_UnmountCancelsPendingWork(t *testing.T) {
	anchorEl := newFakeEl(10, 10, 50, 20)
	popup := newFakeEl(0, 0, 40, 30)
	p := newTestPositioner(t, anchorEl, popup)
	p.Mount()
	frames := manualFrames(t, p)

	anchorEl.move(NewRect(0, 0, 10, 10))
	if frames.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", frames.Pending())
	}

	p.Unmount()

	if got := frames.Pending(); got != 0 {
		t.Errorf("Pending() after Unmount = %d, want 0", got)
	}
	if anchorEl.observers() != 0 || popup.observers() != 0 {
		t.Errorf("observers after Unmount: anchor=%d popup=%d, want 0", anchorEl.observers(), popup.observers())
	}
	if p.State() != StateUnmounted {
		t.Errorf("State() = %s, want unmounted", p.State())
	}
	if p.Result() != (Result{}) {
		t.Errorf("Result() after Unmount = %+v, want zero", p.Result())
	}
}

func TestPositioner_DequeuedFrameAfterUnmountIsNoop(t *testing.T) {
	anchorEl := newFakeEl(10, 10, 50, 20)
	frames := &recordingFrames{}
	var changes int
	p := newTestPositioner(t, anchorEl, newFakeEl(0, 0, 40, 30),
		WithFrames(frames),
		WithOnChange(func(Result) { changes++ }),
	)
	p.Mount()
	anchorEl.move(NewRect(0, 0, 10, 10))
	if len(frames.fns) != 1 {
		t.Fatalf("requested %d frames, want 1", len(frames.fns))
	}

	p.Unmount()
	before := changes
	frames.fns[0]()

	if changes != before {
		t.Error("stale frame published a result")
	}
	if p.Result() != (Result{}) {
		t.Errorf("Result() = %+v, want zero", p.Result())
	}
}

func TestPositioner_Sticky(t *testing.T) {
	type tc struct {
		sticky    bool
		wantY     float64
		wantStuck bool
	}

	tests := map[string]tc{
		"sticky holds last valid placement": {sticky: true, wantY: 20, wantStuck: true},
		"not sticky follows the anchor":     {sticky: false, wantY: 5},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			anchorEl := newFakeEl(10, 10, 10, 10)
			p := newTestPositioner(t, anchorEl, newFakeEl(0, 0, 20, 10),
				WithViewport(host.StaticViewport(NewRect(0, 0, 100, 100))),
				WithSticky(tt.sticky),
			)
			p.Mount()
			defer p.Unmount()

			if got := p.Result(); got.X != 5 || got.Y != 20 {
				t.Fatalf("initial position = (%v, %v), want (5, 20)", got.X, got.Y)
			}

			anchorEl.move(NewRect(10, -5, 10, 10))
			manualFrames(t, p).Flush()

			got := p.Result()
			if got.Y != tt.wantY {
				t.Errorf("Y = %v, want %v", got.Y, tt.wantY)
			}
			if got.Degraded.Has(ConditionStuck) != tt.wantStuck {
				t.Errorf("Degraded = %s, want stuck=%v", got.Degraded, tt.wantStuck)
			}
		})
	}
}

func TestPositioner_TieKeepsHeldStickySide(t *testing.T) {
	anchorEl := newFakeEl(10, 10, 10, 10)
	popup := newFakeEl(0, 0, 20, 10)
	p := newTestPositioner(t, anchorEl, popup,
		WithViewport(host.StaticViewport(NewRect(0, 0, 100, 100))),
		WithSticky(true),
	)
	p.Mount()
	defer p.Unmount()
	frames := manualFrames(t, p)

	anchorEl.move(NewRect(10, -5, 10, 10))
	frames.Flush()
	if got := p.Result(); got.Side != SideBottom || !got.Degraded.Has(ConditionStuck) {
		t.Fatalf("held result = %s %s, want bottom stuck", got.Side, got.Degraded)
	}

	// Both sides now overflow by 5 rows.
	popup.move(NewRect(0, 0, 20, 50))
	anchorEl.move(NewRect(10, 45, 10, 10))
	frames.Flush()

	got := p.Result()
	if got.Side != SideBottom || got.Y != 55 {
		t.Errorf("side = %s, Y = %v, want bottom, 55", got.Side, got.Y)
	}
	if got.Degraded.Has(ConditionStuck) {
		t.Error("still stuck with the anchor back inside the boundary")
	}
}

func TestPositioner_HideWhenDetached(t *testing.T) {
	anchorEl := newFakeEl(10, 10, 10, 10)
	p := newTestPositioner(t, anchorEl, newFakeEl(0, 0, 20, 10), WithHideWhenDetached(true))
	p.Mount()
	defer p.Unmount()

	if p.Result().Hidden {
		t.Fatal("Hidden = true with the anchor in view")
	}

	anchorEl.move(NewRect(10, -50, 10, 10))
	manualFrames(t, p).Flush()

	got := p.Result()
	if !got.Hidden {
		t.Error("Hidden = false with the anchor scrolled out")
	}
	if !got.Degraded.Has(ConditionDetachedAnchor) {
		t.Errorf("Degraded = %s, want detached-anchor", got.Degraded)
	}
}

func TestPositioner_AbsoluteIsRelativeToContainer(t *testing.T) {
	p := newTestPositioner(t, newFakeEl(10, 10, 50, 20), newFakeEl(0, 0, 40, 30),
		WithAlignment(AlignStart),
		WithPositionMethod(PositionAbsolute),
		WithContainer(newFakeEl(20, 5, 80, 80)),
	)
	p.Mount()
	defer p.Unmount()

	got := p.Result()
	if got.X != -10 || got.Y != -25 {
		t.Errorf("position = (%v, %v), want (-10, -25)", got.X, got.Y)
	}
	if got.Popup.X != 10 || got.Popup.Y != -20 {
		t.Errorf("popup rect origin = (%v, %v), want viewport coordinates (10, -20)", got.Popup.X, got.Popup.Y)
	}
}

func TestPositioner_Inner(t *testing.T) {
	type tc struct {
		opts     []Option
		wantSide Side
		wantX    float64
		wantY    float64
	}

	tests := map[string]tc{
		"item overlays the anchor": {
			wantSide: SideNone, wantX: 10, wantY: 18,
		},
		"touch uses standard placement": {
			opts:     []Option{WithTouchModality(true)},
			wantSide: SideBottom, wantX: 15, wantY: 50,
		},
		"fallback uses standard placement": {
			opts:     []Option{WithInnerFallback(true)},
			wantSide: SideBottom, wantX: 15, wantY: 50,
		},
		"selected list item overlays the anchor": {
			opts:     []Option{WithInnerList(innerList(), 2)},
			wantSide: SideNone, wantX: 10, wantY: 22,
		},
		"missing list item uses standard placement": {
			opts:     []Option{WithInnerList(innerList(), 5)},
			wantSide: SideBottom, wantX: 15, wantY: 50,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			item := newFakeEl(0, 12, 40, 4)
			opts := append([]Option{
				WithViewport(host.StaticViewport(NewRect(0, 0, 100, 100))),
				WithInner(item),
			}, tt.opts...)
			p := newTestPositioner(t, newFakeEl(10, 30, 50, 20), newFakeEl(0, 0, 40, 30), opts...)
			p.Mount()
			defer p.Unmount()

			got := p.Result()
			if got.Side != tt.wantSide {
				t.Errorf("Side = %s, want %s", got.Side, tt.wantSide)
			}
			if got.X != tt.wantX || got.Y != tt.wantY {
				t.Errorf("position = (%v, %v), want (%v, %v)", got.X, got.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

// innerList returns three list rows of height 4 stacked from the popup's top.
func innerList() *RefList {
	l := NewRefList()
	for i := range 3 {
		l.Append(newFakeEl(0, float64(i)*4, 40, 4))
	}
	return l
}

func TestPositioner_InnerListReadsSelectedItemEachPass(t *testing.T) {
	list := NewRefList()
	p := newTestPositioner(t, newFakeEl(10, 30, 50, 20), newFakeEl(0, 0, 40, 30),
		WithViewport(host.StaticViewport(NewRect(0, 0, 100, 100))),
		WithInnerList(list, 1),
	)
	p.Mount()
	defer p.Unmount()

	if got := p.Result().Side; got != SideBottom {
		t.Fatalf("Side before the list is built = %s, want bottom", got)
	}

	list.Append(newFakeEl(0, 0, 40, 4))
	list.Append(newFakeEl(0, 4, 40, 4))
	got := p.Update()
	if got.Side != SideNone || got.Y != 26 {
		t.Errorf("after build: side = %s, Y = %v, want none, 26", got.Side, got.Y)
	}
}

func TestPositioner_TouchDisablesFlip(t *testing.T) {
	p := newTestPositioner(t, newFakeEl(10, 10, 50, 20), newFakeEl(0, 0, 40, 30), WithTouchModality(true))
	p.Mount()
	defer p.Unmount()

	if got := p.Result().Side; got != SideBottom {
		t.Errorf("Side = %s, want bottom with flipping disabled", got)
	}
}

func TestPositioner_Arrow(t *testing.T) {
	p := newTestPositioner(t, newFakeEl(10, 10, 50, 20), newFakeEl(0, 0, 40, 30),
		WithAlignment(AlignStart),
		WithArrowSize(Size{Width: 10, Height: 5}),
	)
	p.Mount()
	defer p.Unmount()

	got := p.Result().Arrow
	if got.Offset != 20 || got.Uncentered {
		t.Errorf("Arrow = %+v, want offset 20 centered", got)
	}
	if got.StaticSide != SideBottom {
		t.Errorf("StaticSide = %s, want bottom", got.StaticSide)
	}
}

func TestPositioner_KeepMountedTracksOnlyWhileOpen(t *testing.T) {
	anchorEl := newFakeEl(10, 10, 50, 20)
	p := newTestPositioner(t, anchorEl, newFakeEl(0, 0, 40, 30), WithKeepMounted(true))
	p.Mount()
	defer p.Unmount()
	frames := manualFrames(t, p)

	if anchorEl.observers() != 1 {
		t.Fatalf("observers while open = %d, want 1", anchorEl.observers())
	}

	before := p.Result()
	anchorEl.move(NewRect(60, 60, 50, 20))
	if frames.Pending() != 1 {
		t.Fatalf("Pending() after move = %d, want 1", frames.Pending())
	}

	p.SetOpen(false)
	if frames.Pending() != 0 {
		t.Errorf("Pending() after close = %d, want 0", frames.Pending())
	}
	frames.Flush()
	if got := p.Result(); got != before {
		t.Errorf("Result() changed while closed: got (%v, %v), want (%v, %v)", got.X, got.Y, before.X, before.Y)
	}
	if anchorEl.observers() != 0 {
		t.Errorf("observers while closed = %d, want 0", anchorEl.observers())
	}
	anchorEl.move(NewRect(0, 0, 10, 10))
	if frames.Pending() != 0 {
		t.Errorf("Pending() while closed = %d, want 0", frames.Pending())
	}

	p.SetOpen(true)
	if anchorEl.observers() != 1 {
		t.Errorf("observers after reopen = %d, want 1", anchorEl.observers())
	}
	if frames.Pending() != 1 {
		t.Errorf("Pending() after reopen = %d, want 1", frames.Pending())
	}
}

func TestPositioner_TrackAnchorDisabled(t *testing.T) {
	anchorEl := newFakeEl(10, 10, 50, 20)
	p := newTestPositioner(t, anchorEl, newFakeEl(0, 0, 40, 30), WithTrackAnchor(false))
	p.Mount()
	defer p.Unmount()

	if anchorEl.observers() != 0 {
		t.Errorf("observers = %d, want 0 with tracking off", anchorEl.observers())
	}
	if !p.Result().IsPositioned {
		t.Error("initial pass did not run")
	}
}

func TestPositioner_MountTwiceSubscribesOnce(t *testing.T) {
	anchorEl := newFakeEl(10, 10, 50, 20)
	p := newTestPositioner(t, anchorEl, newFakeEl(0, 0, 40, 30))
	p.Mount()
	p.Mount()
	defer p.Unmount()

	if anchorEl.observers() != 1 {
		t.Errorf("observers = %d, want 1", anchorEl.observers())
	}
}

func TestPositioner_OnChangeOnlyWhenResultChanges(t *testing.T) {
	anchorEl := newFakeEl(10, 10, 50, 20)
	var calls int
	p := newTestPositioner(t, anchorEl, newFakeEl(0, 0, 40, 30), WithOnChange(func(Result) { calls++ }))
	p.Mount()
	defer p.Unmount()

	p.Update()
	if calls != 1 {
		t.Fatalf("onChange calls = %d, want 1", calls)
	}

	anchorEl.move(NewRect(12, 10, 50, 20))
	manualFrames(t, p).Flush()
	if calls != 2 {
		t.Errorf("onChange calls after move = %d, want 2", calls)
	}
}

func TestPositioner_SharedRegistry(t *testing.T) {
	reg := NewRegistry()
	anchorEl := newFakeEl(10, 10, 50, 20)
	a := newTestPositioner(t, anchorEl, newFakeEl(0, 0, 40, 30), WithRegistry(reg))
	b := newTestPositioner(t, anchorEl, newFakeEl(0, 0, 20, 10), WithRegistry(reg))
	a.Mount()
	b.Mount()

	if anchorEl.observers() != 1 {
		t.Errorf("host observers = %d, want 1", anchorEl.observers())
	}
	if got := reg.Subscribers(anchorEl); got != 2 {
		t.Errorf("Subscribers() = %d, want 2", got)
	}

	a.Unmount()
	if anchorEl.observers() != 1 {
		t.Errorf("host observers after one unmount = %d, want 1", anchorEl.observers())
	}

	b.Unmount()
	if anchorEl.observers() != 0 {
		t.Errorf("host observers after both unmount = %d, want 0", anchorEl.observers())
	}
	if reg.Len() != 0 {
		t.Errorf("Len() = %d, want 0", reg.Len())
	}
}
