package geom

import "errors"

var (
	// ErrUnknownSide is returned by ParseSide for unrecognized names.
	ErrUnknownSide = errors.New("geom: unknown side")

	// ErrUnknownAlignment is returned by ParseAlignment for unrecognized names.
	ErrUnknownAlignment = errors.New("geom: unknown alignment")
)
