package config

import (
	anchor "github.com/grindlemire/go-anchor"
	"github.com/grindlemire/go-anchor/pkg/geom"
)

// Preset is a serializable set of positioner settings. Empty and nil fields
// keep the engine default.
type Preset struct {
	Side             string   `toml:"side,omitempty" yaml:"side,omitempty"`
	Alignment        string   `toml:"alignment,omitempty" yaml:"alignment,omitempty"`
	SideOffset       float64  `toml:"side_offset,omitempty" yaml:"side_offset,omitempty"`
	AlignmentOffset  float64  `toml:"alignment_offset,omitempty" yaml:"alignment_offset,omitempty"`
	CollisionPadding *float64 `toml:"collision_padding,omitempty" yaml:"collision_padding,omitempty"`
	AllowAxisFlip    *bool    `toml:"allow_axis_flip,omitempty" yaml:"allow_axis_flip,omitempty"`
	FallbackAxis     bool     `toml:"fallback_axis,omitempty" yaml:"fallback_axis,omitempty"`
	Sticky           bool     `toml:"sticky,omitempty" yaml:"sticky,omitempty"`
	HideWhenDetached bool     `toml:"hide_when_detached,omitempty" yaml:"hide_when_detached,omitempty"`
	ArrowPadding     *float64 `toml:"arrow_padding,omitempty" yaml:"arrow_padding,omitempty"`
	TrackAnchor      *bool    `toml:"track_anchor,omitempty" yaml:"track_anchor,omitempty"`
	KeepMounted      bool     `toml:"keep_mounted,omitempty" yaml:"keep_mounted,omitempty"`
	PositionMethod   string   `toml:"position_method,omitempty" yaml:"position_method,omitempty"`
}

// Options converts the preset to positioner options. Unknown side,
// alignment or method names are errors; range checks happen when the
// options are applied.
func (p Preset) Options() ([]anchor.Option, error) {
	var opts []anchor.Option

	if p.Side != "" {
		side, err := geom.ParseSide(p.Side)
		if err != nil {
			return nil, err
		}
		opts = append(opts, anchor.WithSide(side))
	}
	if p.Alignment != "" {
		align, err := geom.ParseAlignment(p.Alignment)
		if err != nil {
			return nil, err
		}
		opts = append(opts, anchor.WithAlignment(align))
	}
	if p.PositionMethod != "" {
		method, err := anchor.ParsePositionMethod(p.PositionMethod)
		if err != nil {
			return nil, err
		}
		opts = append(opts, anchor.WithPositionMethod(method))
	}

	opts = append(opts,
		anchor.WithSideOffset(p.SideOffset),
		anchor.WithAlignmentOffset(p.AlignmentOffset),
		anchor.WithFallbackAxis(p.FallbackAxis),
		anchor.WithSticky(p.Sticky),
		anchor.WithHideWhenDetached(p.HideWhenDetached),
		anchor.WithKeepMounted(p.KeepMounted),
	)
	if p.CollisionPadding != nil {
		opts = append(opts, anchor.WithCollisionPadding(*p.CollisionPadding))
	}
	if p.AllowAxisFlip != nil {
		opts = append(opts, anchor.WithAllowAxisFlip(*p.AllowAxisFlip))
	}
	if p.ArrowPadding != nil {
		opts = append(opts, anchor.WithArrowPadding(*p.ArrowPadding))
	}
	if p.TrackAnchor != nil {
		opts = append(opts, anchor.WithTrackAnchor(*p.TrackAnchor))
	}
	return opts, nil
}
