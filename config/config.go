// Package config holds the slicing settings this core consumes,
// loadable from a YAML file so the pipeline can be driven without the
// caller hand-assembling a struct literal. There is no global instance:
// every stage that reads a setting takes a *Config explicitly, so a run
// is a pure function of its inputs and many regions can be processed
// concurrently.
package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Config is the slicing settings bundle consumed by the perimeter, fill
// and bridge stages.
type Config struct {
	// Perimeters is the number of perimeter loops to generate around
	// each island, before any per-surface AdditionalInnerPerimeters.
	// [Limit: >= 0]
	Perimeters int `yaml:"perimeters"`

	// SolidInfillBelowArea is the area, in mm^2, below which an internal
	// surface is promoted to solid fill rather than sparse fill.
	// [Limit: >= 0] [Units: mm^2]
	SolidInfillBelowArea float64 `yaml:"solid_infill_below_area"`

	// TopSolidLayers is the number of solid layers printed at the top of
	// the model. 0 disables top solid fill entirely.
	// [Limit: >= 0]
	TopSolidLayers int `yaml:"top_solid_layers"`

	// BottomSolidLayers is the bottom-side equivalent of TopSolidLayers.
	// [Limit: >= 0]
	BottomSolidLayers int `yaml:"bottom_solid_layers"`

	// GapFillSpeed is the print speed used for gap fill extrusions, in
	// mm/s. 0 disables gap fill entirely.
	// [Limit: >= 0] [Units: mm/s]
	GapFillSpeed float64 `yaml:"gap_fill_speed"`

	// FillDensity is the sparse infill density, from 0 (no infill, and
	// bridge processing is skipped entirely) to 1 (fully solid).
	// [Limit: 0 <= value <= 1]
	FillDensity float64 `yaml:"fill_density"`

	// BrimWidth is the width of the first-layer brim, in mm. A non-zero
	// brim on layer 0 reverses the perimeter traversal order so printing
	// continues inward after the brim.
	// [Limit: >= 0] [Units: mm]
	BrimWidth float64 `yaml:"brim_width"`

	// EnableArcFill toggles the arc-compensation gap-fill path. Present
	// but never exercised by the baseline pipeline -- mirrors an
	// optional feature the reference implementation also ships disabled.
	EnableArcFill bool `yaml:"enable_arc_fill"`

	// EnableDynamicGapWidth toggles choosing gap-fill bead width from the
	// measured gap rather than the fixed trial widths of §4.4 step 5.
	EnableDynamicGapWidth bool `yaml:"enable_dynamic_gap_width"`
}

// Default returns the configuration a fresh project starts from.
func Default() *Config {
	return &Config{
		Perimeters:            3,
		SolidInfillBelowArea:  70,
		TopSolidLayers:        3,
		BottomSolidLayers:     3,
		GapFillSpeed:          20,
		FillDensity:           0.2,
		BrimWidth:             0,
		EnableArcFill:         false,
		EnableDynamicGapWidth: false,
	}
}

// Validate reports the first config key found out of the ranges
// documented on Config's fields.
func (c *Config) Validate() error {
	switch {
	case c.Perimeters < 0:
		return fmt.Errorf("config: perimeters must be >= 0, got %d", c.Perimeters)
	case c.SolidInfillBelowArea < 0:
		return fmt.Errorf("config: solid_infill_below_area must be >= 0, got %v", c.SolidInfillBelowArea)
	case c.TopSolidLayers < 0:
		return fmt.Errorf("config: top_solid_layers must be >= 0, got %d", c.TopSolidLayers)
	case c.BottomSolidLayers < 0:
		return fmt.Errorf("config: bottom_solid_layers must be >= 0, got %d", c.BottomSolidLayers)
	case c.GapFillSpeed < 0:
		return fmt.Errorf("config: gap_fill_speed must be >= 0, got %v", c.GapFillSpeed)
	case c.FillDensity < 0 || c.FillDensity > 1:
		return fmt.Errorf("config: fill_density must be in [0, 1], got %v", c.FillDensity)
	case c.BrimWidth < 0:
		return fmt.Errorf("config: brim_width must be >= 0, got %v", c.BrimWidth)
	}
	return nil
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path in YAML format, prefilled with whatever values
// it currently holds (typically the defaults, when used by `slicegeom
// config`).
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
