package anchor

import "testing"

func TestResolve_ShiftsCrossAxis(t *testing.T) {
	type tc struct {
		cand      Candidate
		popup     Size
		anchor    Rect
		wantX     float64
		wantY     float64
		wantOver  bool
		wantValid bool
	}

	available := NewRect(0, 0, 100, 100)

	tests := map[string]tc{
		"inside is untouched": {
			cand:   Candidate{Side: SideBottom, X: 20, Y: 20},
			popup:  Size{Width: 40, Height: 30},
			anchor: NewRect(20, 10, 10, 10),
			wantX:  20, wantY: 20, wantValid: true,
		},
		"left overflow shifts right": {
			cand:   Candidate{Side: SideBottom, X: -10, Y: 20},
			popup:  Size{Width: 40, Height: 30},
			anchor: NewRect(0, 10, 10, 10),
			wantX:  0, wantY: 20, wantValid: true,
		},
		"right overflow shifts left": {
			cand:   Candidate{Side: SideBottom, X: 80, Y: 20},
			popup:  Size{Width: 40, Height: 30},
			anchor: NewRect(80, 10, 10, 10),
			wantX:  60, wantY: 20, wantValid: true,
		},
		"main axis is never shifted": {
			cand:   Candidate{Side: SideBottom, X: 20, Y: 90},
			popup:  Size{Width: 40, Height: 30},
			anchor: NewRect(20, 80, 10, 10),
			wantX:  20, wantY: 90, wantValid: true,
		},
		"over-constrained cross axis is centered": {
			cand:   Candidate{Side: SideBottom, X: 30, Y: 20},
			popup:  Size{Width: 120, Height: 30},
			anchor: NewRect(30, 10, 10, 10),
			wantX:  -10, wantY: 20, wantOver: true, wantValid: true,
		},
		"inner placement shifts both axes": {
			cand:   Candidate{Side: SideNone, X: -5, Y: 95},
			popup:  Size{Width: 40, Height: 30},
			anchor: NewRect(0, 95, 10, 5),
			wantX:  0, wantY: 70, wantValid: true,
		},
		"anchor partly outside is not valid": {
			cand:   Candidate{Side: SideBottom, X: 20, Y: 5},
			popup:  Size{Width: 40, Height: 30},
			anchor: NewRect(20, -5, 10, 10),
			wantX:  20, wantY: 5, wantValid: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := Measurements{
				Anchor:    tt.anchor,
				Popup:     Rect{Width: tt.popup.Width, Height: tt.popup.Height},
				Boundary:  available,
				Available: available,
				OK:        true,
				Bounded:   true,
			}
			got := Resolve(tt.cand, m, Policy{}, nil)
			if got.X != tt.wantX || got.Y != tt.wantY {
				t.Errorf("Resolve() = (%v, %v), want (%v, %v)", got.X, got.Y, tt.wantX, tt.wantY)
			}
			if got.OverConstrained != tt.wantOver {
				t.Errorf("OverConstrained = %v, want %v", got.OverConstrained, tt.wantOver)
			}
			if got.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", got.Valid, tt.wantValid)
			}
		})
	}
}

func TestResolve_KeepsPopupInsideAvailable(t *testing.T) {
	available := NewRect(5, 5, 90, 90)
	popup := Size{Width: 30, Height: 20}
	for x := -50.0; x <= 150; x += 7 {
		m := Measurements{
			Anchor:    NewRect(x, 40, 10, 10),
			Popup:     Rect{Width: popup.Width, Height: popup.Height},
			Available: available,
			OK:        true,
			Bounded:   true,
		}
		cand := Place(SideBottom, AlignCenter, Preference{}, m.Anchor, popup)
		got := Resolve(cand, m, Policy{}, nil)
		r := got.Rect(popup)
		if r.X < available.X || r.Right() > available.Right() {
			t.Errorf("anchor x=%v: popup %+v escapes available %+v on the cross axis", x, r, available)
		}
	}
}

func TestResolve_Sticky(t *testing.T) {
	type tc struct {
		policy    Policy
		last      *Candidate
		anchor    Rect
		wantStuck bool
		wantY     float64
	}

	last := &Candidate{Side: SideBottom, X: 20, Y: 30}

	tests := map[string]tc{
		"sticky holds last valid placement": {
			policy:    Policy{Sticky: true},
			last:      last,
			anchor:    NewRect(20, -5, 10, 10),
			wantStuck: true,
			wantY:     30,
		},
		"sticky without a valid placement follows the anchor": {
			policy: Policy{Sticky: true},
			anchor: NewRect(20, -5, 10, 10),
			wantY:  5,
		},
		"not sticky follows the anchor": {
			last:   last,
			anchor: NewRect(20, -5, 10, 10),
			wantY:  5,
		},
		"sticky with anchor inside follows the anchor": {
			policy: Policy{Sticky: true},
			last:   last,
			anchor: NewRect(20, 10, 10, 10),
			wantY:  20,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			popup := Size{Width: 40, Height: 30}
			m := Measurements{
				Anchor:    tt.anchor,
				Popup:     Rect{Width: popup.Width, Height: popup.Height},
				Available: NewRect(0, 0, 100, 100),
				OK:        true,
				Bounded:   true,
			}
			cand := Place(SideBottom, AlignStart, Preference{}, tt.anchor, popup)
			got := Resolve(cand, m, tt.policy, tt.last)
			if got.Stuck != tt.wantStuck {
				t.Errorf("Stuck = %v, want %v", got.Stuck, tt.wantStuck)
			}
			if got.Y != tt.wantY {
				t.Errorf("Y = %v, want %v", got.Y, tt.wantY)
			}
		})
	}
}

func TestResolve_HideWhenDetached(t *testing.T) {
	type tc struct {
		anchor     Rect
		hide       bool
		wantHidden bool
	}

	tests := map[string]tc{
		"fully outside is hidden": {
			anchor: NewRect(200, 200, 10, 10), hide: true, wantHidden: true,
		},
		"partly outside is visible": {
			anchor: NewRect(95, 95, 10, 10), hide: true,
		},
		"point inside is visible": {
			anchor: NewRect(50, 50, 0, 0), hide: true,
		},
		"point outside is hidden": {
			anchor: NewRect(-1, 50, 0, 0), hide: true, wantHidden: true,
		},
		"policy off never hides": {
			anchor: NewRect(200, 200, 10, 10),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := Measurements{
				Anchor:    tt.anchor,
				Popup:     NewRect(0, 0, 10, 10),
				Available: NewRect(0, 0, 100, 100),
				OK:        true,
				Bounded:   true,
			}
			got := Resolve(Candidate{Side: SideBottom}, m, Policy{HideWhenDetached: tt.hide}, nil)
			if got.Hidden != tt.wantHidden {
				t.Errorf("Hidden = %v, want %v", got.Hidden, tt.wantHidden)
			}
		})
	}
}

func TestResolve_UnboundedSkipsCollision(t *testing.T) {
	cand := Candidate{Side: SideBottom, X: -500, Y: -500}
	m := Measurements{Anchor: NewRect(0, 0, 10, 10), Popup: NewRect(0, 0, 10, 10), OK: true}
	got := Resolve(cand, m, Policy{Sticky: true, HideWhenDetached: true}, &Candidate{})
	if got.Candidate != cand || got.Hidden || got.Stuck || !got.Valid {
		t.Errorf("Resolve() = %+v, want candidate unchanged and valid", got)
	}
}
