// Package config holds the bridge parameter set.
//
// Parameters are an immutable value: they are constructed once (from the
// documented defaults, optionally overlaid with a TOML file) and passed into
// the model constructor. No package-level mutable state exists.
//
// All lengths are millimeters; angles are degrees.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/spanforge/spanforge/pkg/errors"
)

// Parameters is the complete configuration for one bridge generation run.
type Parameters struct {
	Bridge  Bridge  `toml:"bridge"`
	Girder  Girder  `toml:"girder"`
	Deck    Deck    `toml:"deck"`
	Parapet Parapet `toml:"parapet"`
	Export  Export  `toml:"export"`
	Display Display `toml:"display"`
}

// Bridge describes the overall span arrangement.
type Bridge struct {
	// SpanLength is the girder length along the bridge axis (X).
	SpanLength float64 `toml:"span_length"`
	// GirderCount is the number of girders. Must be at least 1;
	// highway bridges conventionally use 3 or more.
	GirderCount int `toml:"girder_count"`
	// GirderSpacing is the transverse centroid spacing between girders.
	GirderSpacing float64 `toml:"girder_spacing"`
	// DeckOverhang is the deck edge distance beyond the outermost girders.
	DeckOverhang float64 `toml:"deck_overhang"`
	// SkewAngle is the support skew in degrees. It is carried and reported
	// but not applied to any solid; see the layout command output.
	SkewAngle float64 `toml:"skew_angle"`
}

// Girder describes the I-section of a steel girder.
type Girder struct {
	Depth           float64 `toml:"depth"`
	FlangeWidth     float64 `toml:"flange_width"`
	FlangeThickness float64 `toml:"flange_thickness"`
	WebThickness    float64 `toml:"web_thickness"`
}

// Deck describes the concrete deck slab.
type Deck struct {
	Thickness float64 `toml:"thickness"`
}

// Parapet describes the edge safety barriers.
type Parapet struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Export selects output formats and file names.
type Export struct {
	STEP     bool   `toml:"step"`
	STEPFile string `toml:"step_file"`
	BREP     bool   `toml:"brep"`
	BREPFile string `toml:"brep_file"`
	OBJ      bool   `toml:"obj"`
	OBJFile  string `toml:"obj_file"`
}

// Display configures the viewer and the preview renderers.
type Display struct {
	// Background is "white" or "gray".
	Background string `toml:"background"`
	ShowAxes   bool   `toml:"show_axes"`
}

// Default returns the documented default configuration: a 12 m single-span
// bridge with three 900 mm deep girders at 3 m spacing.
func Default() Parameters {
	return Parameters{
		Bridge: Bridge{
			SpanLength:    12000,
			GirderCount:   3,
			GirderSpacing: 3000,
			DeckOverhang:  500,
			SkewAngle:     10,
		},
		Girder: Girder{
			Depth:           900,
			FlangeWidth:     300,
			FlangeThickness: 16,
			WebThickness:    10,
		},
		Deck:    Deck{Thickness: 200},
		Parapet: Parapet{Width: 300, Height: 1000},
		Export: Export{
			STEP:     true,
			STEPFile: "bridge_model.step",
			BREP:     true,
			BREPFile: "bridge_model.brep",
			OBJ:      false,
			OBJFile:  "bridge_model.obj",
		},
		Display: Display{
			Background: "white",
			ShowAxes:   true,
		},
	}
}

// Load reads a TOML file and overlays it on the defaults, so partial files
// only override the keys they mention. The result is not validated; call
// [Parameters.Validate] before building geometry.
func Load(path string) (Parameters, error) {
	params := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return params, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return params, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to read config %s", path)
	}

	if err := toml.Unmarshal(data, &params); err != nil {
		return params, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to parse config %s", path)
	}

	return params, nil
}
