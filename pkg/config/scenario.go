package config

import "github.com/grindlemire/go-anchor/pkg/geom"

// Box is a serializable rect. Sizes ignore X and Y.
type Box struct {
	X      float64 `toml:"x,omitempty" yaml:"x,omitempty"`
	Y      float64 `toml:"y,omitempty" yaml:"y,omitempty"`
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
}

// Rect converts the box to a geom.Rect.
func (b Box) Rect() geom.Rect {
	return geom.NewRect(b.X, b.Y, b.Width, b.Height)
}

// Size returns the box's size.
func (b Box) Size() geom.Size {
	return geom.Size{Width: b.Width, Height: b.Height}
}

// Scenario describes one layout to solve: a viewport, optional clipping
// containers, an anchor and a popup. All rects are in viewport coordinates.
type Scenario struct {
	Name      string  `toml:"name" yaml:"name"`
	Preset    string  `toml:"preset,omitempty" yaml:"preset,omitempty"`
	Placement *Preset `toml:"placement,omitempty" yaml:"placement,omitempty"`

	Viewport Box `toml:"viewport" yaml:"viewport"`
	Anchor   Box `toml:"anchor" yaml:"anchor"`
	Popup    Box `toml:"popup" yaml:"popup"`

	// Clip lists clipping containers around the anchor, outermost first.
	Clip []Box `toml:"clip,omitempty" yaml:"clip,omitempty"`

	// Boundary replaces the clipping-ancestor boundary with a fixed rect.
	Boundary *Box `toml:"boundary,omitempty" yaml:"boundary,omitempty"`

	// Arrow is the arrow size; omitted means no arrow.
	Arrow *Box `toml:"arrow,omitempty" yaml:"arrow,omitempty"`
}
