package anchor

import "strings"

// Result is the resolved placement of one pass. It is recomputed on every
// pass; nothing in it is carried over except through the sticky hold and the
// last-known-good fallback.
type Result struct {
	Side      Side      // Rendered side; may differ from the preference after flipping
	Alignment Alignment // Rendered alignment
	X, Y      float64   // Popup origin in output coordinates (see PositionMethod)

	// IsPositioned turns true on the first successful measurement and stays
	// true until Unmount.
	IsPositioned bool

	// Hidden is set when HideWhenDetached is on and the anchor is detached.
	Hidden bool

	Arrow Arrow

	Anchor    Rect // Anchor rect, viewport coordinates
	Popup     Rect // Resolved popup rect, viewport coordinates
	Available Rect // Boundary minus collision padding

	// Degraded lists the soft failures the pass recovered from.
	Degraded Condition
}

// Condition is a set of soft failures. None of them stops a pass.
type Condition uint8

const (
	// ConditionMeasurementUnavailable: the anchor could not be measured;
	// the previous placement was kept.
	ConditionMeasurementUnavailable Condition = 1 << iota

	// ConditionOverConstrained: the popup is larger than the available
	// space on an axis and was centered on it.
	ConditionOverConstrained

	// ConditionDetachedAnchor: the anchor is fully outside the available space.
	ConditionDetachedAnchor

	// ConditionStuck: the sticky hold kept the last valid placement.
	ConditionStuck

	// ConditionUnbounded: the boundary resolved to an empty rect (no
	// viewport and no clipping ancestor), so flipping, shifting and the
	// detachment check were skipped.
	ConditionUnbounded
)

// Has reports whether every flag in o is set in c.
func (c Condition) Has(o Condition) bool {
	return c&o == o
}

func (c Condition) String() string {
	if c == 0 {
		return "none"
	}
	var names []string
	if c.Has(ConditionMeasurementUnavailable) {
		names = append(names, "measurement-unavailable")
	}
	if c.Has(ConditionOverConstrained) {
		names = append(names, "over-constrained")
	}
	if c.Has(ConditionDetachedAnchor) {
		names = append(names, "detached-anchor")
	}
	if c.Has(ConditionStuck) {
		names = append(names, "stuck")
	}
	if c.Has(ConditionUnbounded) {
		names = append(names, "unbounded")
	}
	return strings.Join(names, "|")
}
