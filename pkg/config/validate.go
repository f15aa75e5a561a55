package config

import "github.com/spanforge/spanforge/pkg/errors"

// Validate checks the parameter set before any kernel call is made, so bad
// input surfaces as a typed configuration error instead of a failure deep
// inside geometry construction.
func (p Parameters) Validate() error {
	if p.Bridge.GirderCount < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "girder count must be at least 1, got %d", p.Bridge.GirderCount)
	}

	dims := []struct {
		name  string
		value float64
	}{
		{"span length", p.Bridge.SpanLength},
		{"girder spacing", p.Bridge.GirderSpacing},
		{"deck overhang", p.Bridge.DeckOverhang},
		{"girder depth", p.Girder.Depth},
		{"girder flange width", p.Girder.FlangeWidth},
		{"girder flange thickness", p.Girder.FlangeThickness},
		{"girder web thickness", p.Girder.WebThickness},
		{"deck thickness", p.Deck.Thickness},
		{"parapet width", p.Parapet.Width},
		{"parapet height", p.Parapet.Height},
	}
	for _, d := range dims {
		if err := errors.ValidateDimension(d.name, d.value); err != nil {
			return err
		}
	}

	// The web must have positive height between the flanges.
	if p.Girder.Depth <= 2*p.Girder.FlangeThickness {
		return errors.New(errors.ErrCodeInvalidConfig,
			"girder depth %g leaves no web height with flange thickness %g",
			p.Girder.Depth, p.Girder.FlangeThickness)
	}
	if p.Girder.WebThickness > p.Girder.FlangeWidth {
		return errors.New(errors.ErrCodeInvalidConfig,
			"girder web thickness %g exceeds flange width %g",
			p.Girder.WebThickness, p.Girder.FlangeWidth)
	}

	// Skew is reported, not applied; still reject nonsensical values early.
	if p.Bridge.SkewAngle <= -90 || p.Bridge.SkewAngle >= 90 {
		return errors.New(errors.ErrCodeInvalidConfig, "skew angle must be within (-90, 90) degrees, got %g", p.Bridge.SkewAngle)
	}

	if p.Display.Background != "white" && p.Display.Background != "gray" {
		return errors.New(errors.ErrCodeInvalidConfig, "background must be \"white\" or \"gray\", got %q", p.Display.Background)
	}

	for _, f := range []struct {
		enabled bool
		path    string
		format  string
	}{
		{p.Export.STEP, p.Export.STEPFile, "step"},
		{p.Export.BREP, p.Export.BREPFile, "brep"},
		{p.Export.OBJ, p.Export.OBJFile, "obj"},
	} {
		if !f.enabled {
			continue
		}
		if err := errors.ValidateOutputPath(f.path); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid %s output file", f.format)
		}
	}

	return nil
}
