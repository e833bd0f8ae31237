// Package scene is a small retained tree of boxes that implements the host
// contract of the anchor engine: nodes report viewport rects that account
// for ancestor scroll offsets, know their clipping ancestors, and notify
// observers when they move, resize, scroll, or are detached.
//
// Hosts that already own a layout tree implement pkg/host directly; scene
// backs the CLI, the demos and the engine's tests.
//
// Nodes are not safe for concurrent use; mutate them on the UI goroutine.
package scene
