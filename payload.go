package anchor

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/grindlemire/go-anchor/pkg/geom"
)

// PositionMethod selects the CSS positioning scheme of the output.
type PositionMethod uint8

const (
	PositionAbsolute PositionMethod = iota // Coordinates relative to the container
	PositionFixed                          // Coordinates relative to the viewport
)

func (m PositionMethod) String() string {
	if m == PositionFixed {
		return "fixed"
	}
	return "absolute"
}

// ParsePositionMethod converts "absolute" or "fixed" to a PositionMethod.
func ParsePositionMethod(name string) (PositionMethod, error) {
	switch name {
	case "absolute":
		return PositionAbsolute, nil
	case "fixed":
		return PositionFixed, nil
	}
	return 0, fmt.Errorf("%w: unknown position method %q", ErrInvalidOption, name)
}

// Style is the inline style a host applies to the positioner element.
type Style struct {
	Position        string
	Left, Top       float64
	PointerEvents   string            // "none" while closed or hidden
	Visibility      string            // "hidden" until the first successful pass
	TransformOrigin string            // Arrow tip or anchor center, for open/close animations
	Vars            map[string]string // --anchor-width, --anchor-height, --available-width, --available-height
}

// CSS renders the style as a declaration list with a stable property order.
func (s Style) CSS() string {
	var b strings.Builder
	decl := func(k, v string) {
		if v == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString(";")
	}
	decl("position", s.Position)
	decl("left", px(s.Left))
	decl("top", px(s.Top))
	decl("pointer-events", s.PointerEvents)
	decl("visibility", s.Visibility)
	decl("transform-origin", s.TransformOrigin)

	keys := make([]string, 0, len(s.Vars))
	for k := range s.Vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		decl(k, s.Vars[k])
	}
	return b.String()
}

// ArrowStyle places the arrow element inside the popup.
type ArrowStyle struct {
	// Property is "left" for top/bottom popups and "top" for left/right
	// popups; empty when there is no arrow.
	Property string
	Offset   float64

	// StaticSide is the popup edge the arrow sits on.
	StaticSide Side
}

// CSS renders the arrow offset declaration.
func (a ArrowStyle) CSS() string {
	if a.Property == "" {
		return ""
	}
	return a.Property + ": " + px(a.Offset) + ";"
}

// Payload is everything a host applies to the positioner element after a
// pass.
type Payload struct {
	Role       string
	Hidden     bool // The element is not mounted
	Style      Style
	Attributes map[string]string
	Arrow      ArrowStyle
}

// Payload builds the host-facing output from the current result and the
// open/mounted flags.
func (p *Positioner) Payload() Payload {
	p.mu.Lock()
	res := p.result
	open := p.open
	mounted := p.state != StateUnmounted
	p.mu.Unlock()

	style := Style{
		Position: p.cfg.method.String(),
		Left:     res.X,
		Top:      res.Y,
	}
	if !open || res.Hidden {
		style.PointerEvents = "none"
	}
	if !res.IsPositioned {
		style.Visibility = "hidden"
	}

	attrs := map[string]string{}
	if res.IsPositioned {
		attrs["data-side"] = res.Side.String()
		attrs["data-align"] = res.Alignment.String()
		style.TransformOrigin = p.transformOrigin(res)
		style.Vars = map[string]string{
			"--anchor-width":     px(res.Anchor.Width),
			"--anchor-height":    px(res.Anchor.Height),
			"--available-width":  px(availableExtent(res, p.cfg.pref.SideOffset).Width),
			"--available-height": px(availableExtent(res, p.cfg.pref.SideOffset).Height),
		}
	}

	var arrow ArrowStyle
	if _, ok := p.arrowSize(); ok && res.IsPositioned && res.Side != SideNone {
		if res.Arrow.Uncentered {
			attrs["data-uncentered"] = ""
		}
		arrow = ArrowStyle{
			Property:   "left",
			Offset:     res.Arrow.Offset,
			StaticSide: res.Arrow.StaticSide,
		}
		if res.Side.Axis() == geom.AxisX {
			arrow.Property = "top"
		}
	}

	return Payload{
		Role:       "presentation",
		Hidden:     !mounted,
		Style:      style,
		Attributes: attrs,
		Arrow:      arrow,
	}
}

// transformOrigin points at the arrow tip when there is an arrow, otherwise
// at the anchor's center, on the popup edge facing the anchor.
func (p *Positioner) transformOrigin(res Result) string {
	if res.Side == SideNone {
		c := res.Anchor.Center().Sub(res.Popup.Origin())
		return px(c.X) + " " + px(c.Y)
	}

	main := res.Side.Axis()
	cross := main.Cross()

	var along float64
	if size, ok := p.arrowSize(); ok {
		along = res.Arrow.Offset + size.Get(cross)/2
	} else {
		along = res.Anchor.Start(cross) + res.Anchor.Length(cross)/2 - res.Popup.Start(cross)
		along = min(max(along, 0), res.Popup.Length(cross))
	}

	var edge float64
	if res.Side.IsLeading() {
		edge = res.Popup.Length(main)
	}

	origin := Point{}.With(cross, along).With(main, edge)
	return px(origin.X) + " " + px(origin.Y)
}

// availableExtent is the room a popup has on its rendered side: from the
// anchor edge (plus the side offset) to the available rect's edge on the
// main axis, and the full available length on the cross axis.
func availableExtent(res Result, sideOffset float64) Size {
	if res.Available.IsEmpty() {
		return Size{}
	}
	if res.Side == SideNone {
		return res.Available.Size()
	}
	main := res.Side.Axis()
	var room float64
	if res.Side.IsLeading() {
		room = res.Anchor.Start(main) - sideOffset - res.Available.Start(main)
	} else {
		room = res.Available.End(main) - res.Anchor.End(main) - sideOffset
	}
	room = max(room, 0)
	if main == geom.AxisX {
		return Size{Width: room, Height: res.Available.Height}
	}
	return Size{Width: res.Available.Width, Height: room}
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
