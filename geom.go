package anchor

import (
	"github.com/grindlemire/go-anchor/pkg/geom"
	"github.com/grindlemire/go-anchor/pkg/host"
)

// Rect is a type alias for geom.Rect.
type Rect = geom.Rect

// Edges is a type alias for geom.Edges.
type Edges = geom.Edges

// Point is a type alias for geom.Point.
type Point = geom.Point

// Size is a type alias for geom.Size.
type Size = geom.Size

// Side is a type alias for geom.Side.
type Side = geom.Side

// Alignment is a type alias for geom.Alignment.
type Alignment = geom.Alignment

// Element is a type alias for host.Element.
type Element = host.Element

// Clipper is a type alias for host.Clipper.
type Clipper = host.Clipper

// Observable is a type alias for host.Observable.
type Observable = host.Observable

// Viewport is a type alias for host.Viewport.
type Viewport = host.Viewport

// Side constants
const (
	SideTop    = geom.SideTop
	SideRight  = geom.SideRight
	SideBottom = geom.SideBottom
	SideLeft   = geom.SideLeft
	SideNone   = geom.SideNone
)

// Alignment constants
const (
	AlignStart  = geom.AlignStart
	AlignCenter = geom.AlignCenter
	AlignEnd    = geom.AlignEnd
)

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return geom.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return geom.EdgeAll(n)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return geom.EdgeTRBL(t, r, b, l)
}
