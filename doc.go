// Package anchor computes where a floating popup is placed relative to an
// anchor element or virtual point.
//
// A Positioner owns one popup. Each pass measures the anchor, the popup and
// the collision boundary, picks a side and alignment (flipping when the
// preferred side has no room), shifts the popup along the cross axis to keep
// it inside the boundary, and centers an optional arrow on the anchor. The
// result is declarative: callers apply Payload as style and attributes.
//
// While mounted with anchor tracking enabled, the Positioner subscribes to
// host layout notifications and coalesces them into at most one pass per
// frame through a FrameScheduler.
//
// Users import this single package for the public API; geometry lives in
// pkg/geom and the host contract in pkg/host, both re-exported here.
package anchor
