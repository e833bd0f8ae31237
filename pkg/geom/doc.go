// Package geom provides the floating-point geometry primitives used by the
// anchor positioning engine: rectangles, per-edge insets, points, sizes, and
// the side/alignment enumerations that describe where a popup sits relative
// to its anchor.
//
// All coordinates share one space (normally the viewport) with X growing to
// the right and Y growing downward.
package geom
