package geom

import "fmt"

// Axis identifies the horizontal or vertical dimension.
type Axis uint8

const (
	AxisX Axis = iota // Horizontal
	AxisY             // Vertical
)

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Side is the edge of the anchor a popup is placed against.
type Side uint8

const (
	SideBottom Side = iota // Below the anchor
	SideTop                // Above the anchor
	SideRight              // Right of the anchor
	SideLeft               // Left of the anchor
	SideNone               // Overlapping the anchor (inner anchoring)
)

// Opposite returns the side across the anchor. SideNone has no opposite.
func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	}
	return s
}

// Axis returns the main axis: the axis along which the popup is offset
// away from the anchor.
func (s Side) Axis() Axis {
	if s == SideLeft || s == SideRight {
		return AxisX
	}
	return AxisY
}

// Perpendicular returns the two sides on the cross axis, end direction first.
func (s Side) Perpendicular() [2]Side {
	if s.Axis() == AxisY {
		return [2]Side{SideRight, SideLeft}
	}
	return [2]Side{SideBottom, SideTop}
}

// IsLeading reports whether the popup sits before the anchor on the main axis.
func (s Side) IsLeading() bool {
	return s == SideTop || s == SideLeft
}

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideNone:
		return "none"
	}
	return fmt.Sprintf("Side(%d)", uint8(s))
}

// ParseSide converts a side name to a Side.
func ParseSide(name string) (Side, error) {
	switch name {
	case "top":
		return SideTop, nil
	case "right":
		return SideRight, nil
	case "bottom":
		return SideBottom, nil
	case "left":
		return SideLeft, nil
	case "none":
		return SideNone, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSide, name)
}

// Alignment is the position of the popup along the cross axis.
type Alignment uint8

const (
	AlignCenter Alignment = iota // Centered on the anchor
	AlignStart                   // Flush with the anchor's leading edge
	AlignEnd                     // Flush with the anchor's trailing edge
)

// Opposite swaps start and end. Center is its own opposite.
func (a Alignment) Opposite() Alignment {
	switch a {
	case AlignStart:
		return AlignEnd
	case AlignEnd:
		return AlignStart
	}
	return a
}

func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	}
	return fmt.Sprintf("Alignment(%d)", uint8(a))
}

// ParseAlignment converts an alignment name to an Alignment.
func ParseAlignment(name string) (Alignment, error) {
	switch name {
	case "start":
		return AlignStart, nil
	case "center":
		return AlignCenter, nil
	case "end":
		return AlignEnd, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlignment, name)
}
