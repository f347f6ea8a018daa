// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads the entries and style of a slider from a YAML
// document.
//
// A document looks like this:
//
//	data: [222, 333, 4544, 555]
//	trackColor: "#ffffff"
//	trackFillColor: "#00a6f5"
//	thumbColor: "#00a6f5"
//	thumbHoverColor: "#00a6f5"
//	trackWidth: 300
//	showHover: true
//	showTooltip: true
//
// Only data is required.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"slices"

	"gioui.org/unit"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/stepslider/stepslider/widget/material"
)

// ErrNoData is returned for an empty document.
var ErrNoData = errors.New("config: empty document")

//go:embed schema.json
var schemaJSON string

var schema = jsonschema.MustCompileString("schema.json", schemaJSON)

// Config is the configuration of one slider.
type Config struct {
	// Data holds the entries as displayed in the tooltip.
	Data            []string
	TrackColor      color.NRGBA
	TrackFillColor  color.NRGBA
	ThumbColor      color.NRGBA
	ThumbHoverColor color.NRGBA
	// TrackWidth is zero for a track filling its parent.
	TrackWidth  unit.Dp
	ShowHover   bool
	ShowTooltip bool
}

type document struct {
	Data            []any    `yaml:"data"`
	TrackColor      string   `yaml:"trackColor"`
	TrackFillColor  string   `yaml:"trackFillColor"`
	ThumbColor      string   `yaml:"thumbColor"`
	ThumbHoverColor string   `yaml:"thumbHoverColor"`
	TrackWidth      *float32 `yaml:"trackWidth"`
	ShowHover       *bool    `yaml:"showHover"`
	ShowTooltip     bool     `yaml:"showTooltip"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Data:            []string{"222", "333", "4544", "555"},
		TrackColor:      material.DefaultTrackColor,
		TrackFillColor:  material.DefaultFillColor,
		ThumbColor:      material.DefaultFillColor,
		ThumbHoverColor: material.DefaultFillColor,
		ShowHover:       true,
		ShowTooltip:     true,
	}
}

// Load reads and parses the document at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses and validates a YAML document.
func Parse(data []byte) (*Config, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoData
	}
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("config: invalid YAML: %w", err)
	}
	if err := validate(tree); err != nil {
		return nil, err
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("config: invalid YAML: %w", err)
	}

	cfg := &Config{
		ShowHover:   true,
		ShowTooltip: doc.ShowTooltip,
	}
	for _, v := range doc.Data {
		cfg.Data = append(cfg.Data, fmt.Sprint(v))
	}
	if doc.TrackWidth != nil {
		cfg.TrackWidth = unit.Dp(*doc.TrackWidth)
	}
	if doc.ShowHover != nil {
		cfg.ShowHover = *doc.ShowHover
	}
	colors := []struct {
		name string
		hex  string
		def  color.NRGBA
		dst  *color.NRGBA
	}{
		{"trackColor", doc.TrackColor, material.DefaultTrackColor, &cfg.TrackColor},
		{"trackFillColor", doc.TrackFillColor, material.DefaultFillColor, &cfg.TrackFillColor},
		{"thumbColor", doc.ThumbColor, material.DefaultFillColor, &cfg.ThumbColor},
		{"thumbHoverColor", doc.ThumbHoverColor, material.DefaultFillColor, &cfg.ThumbHoverColor},
	}
	for _, c := range colors {
		if c.hex == "" {
			*c.dst = c.def
			continue
		}
		col, err := parseColor(c.hex)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", c.name, err)
		}
		*c.dst = col
	}
	return cfg, nil
}

// Apply copies the style options onto s and replaces the entries of
// its Steps when they differ.
func (c *Config) Apply(s *material.SliderStyle[string]) {
	s.TrackColor = c.TrackColor
	s.TrackFillColor = c.TrackFillColor
	s.ThumbColor = c.ThumbColor
	s.ThumbHoverColor = c.ThumbHoverColor
	s.TrackWidth = c.TrackWidth
	s.ShowHover = c.ShowHover
	s.ShowTooltip = c.ShowTooltip
	if s.Steps != nil && !slices.Equal(s.Steps.Data, c.Data) {
		s.Steps.Data = slices.Clone(c.Data)
	}
}

// validate checks a decoded YAML tree against the schema. The tree is
// round-tripped through JSON so that the validator sees JSON types.
func validate(tree any) error {
	b, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func parseColor(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
