// Package config loads positioner presets and test scenarios from TOML or
// YAML files.
//
// A file holds named presets and, for the CLI, scenarios that describe a
// viewport, an anchor and a popup to solve:
//
//	[presets.select]
//	side = "bottom"
//	alignment = "start"
//	sticky = true
//
//	[[scenarios]]
//	name = "flip near the bottom edge"
//	preset = "select"
//	viewport = { width = 100, height = 40 }
//	anchor = { x = 10, y = 10, width = 50, height = 20 }
//	popup = { width = 40, height = 30 }
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither TOML nor YAML.
	ErrUnsupportedFormat = errors.New("config: unsupported format")

	// ErrUnknownPreset is returned when a scenario names a preset the file
	// does not define.
	ErrUnknownPreset = errors.New("config: unknown preset")
)

// Format is a config file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// File is the decoded contents of a config file.
type File struct {
	Presets   map[string]Preset `toml:"presets" yaml:"presets"`
	Scenarios []Scenario        `toml:"scenarios" yaml:"scenarios"`
}

// Load reads and validates a config file. The format follows the extension.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates config data.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Marshal encodes the file in the given format.
func (f *File) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(f)
	case FormatYAML:
		return yaml.Marshal(f)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

func (f *File) validate() error {
	for name, p := range f.Presets {
		if _, err := p.Options(); err != nil {
			return fmt.Errorf("preset %q: %w", name, err)
		}
	}
	for i, s := range f.Scenarios {
		if _, err := f.PresetFor(s); err != nil {
			return fmt.Errorf("scenario %d (%s): %w", i, s.Name, err)
		}
	}
	return nil
}

// PresetFor returns the placement settings of a scenario: its inline
// placement if it has one, otherwise the named preset, otherwise the
// engine defaults.
func (f *File) PresetFor(s Scenario) (Preset, error) {
	if s.Placement != nil {
		if _, err := s.Placement.Options(); err != nil {
			return Preset{}, err
		}
		return *s.Placement, nil
	}
	if s.Preset == "" {
		return Preset{}, nil
	}
	p, ok := f.Presets[s.Preset]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, s.Preset)
	}
	return p, nil
}

// Scenario looks up a scenario by name.
func (f *File) Scenario(name string) (Scenario, bool) {
	for _, s := range f.Scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}
