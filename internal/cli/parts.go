package cli

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/spanforge/spanforge/pkg/bridge"
	"github.com/spanforge/spanforge/pkg/config"
	"github.com/spanforge/spanforge/pkg/export"
	"github.com/spanforge/spanforge/pkg/geom"
	"github.com/spanforge/spanforge/pkg/render"
)

// Part display colors, matching the conventional material shades: steel
// girders slightly blue, concrete deck gray, parapets off-white.
var kindColors = map[bridge.Kind]geom.RGB{
	bridge.KindGirder:  {R: 0.7, G: 0.7, B: 0.75},
	bridge.KindDeck:    {R: 0.8, G: 0.8, B: 0.8},
	bridge.KindParapet: {R: 0.9, G: 0.9, B: 0.85},
}

// loadParams loads and validates the parameter set. With no path, the
// documented defaults are used.
func loadParams(path string, logger *log.Logger) (config.Parameters, error) {
	params := config.Default()
	if path != "" {
		var err error
		params, err = config.Load(path)
		if err != nil {
			return params, err
		}
		logger.Debug("config loaded", "path", path)
	}

	if err := params.Validate(); err != nil {
		return params, err
	}
	if params.Bridge.GirderCount < 3 {
		logger.Warn("highway bridges conventionally use at least 3 girders",
			"girder_count", params.Bridge.GirderCount)
	}
	return params, nil
}

// partNames returns stable export names for the model's components, in
// assembly order: girder_1..n, deck, parapet_1, parapet_2.
func partNames(components []bridge.Component) []string {
	names := make([]string, len(components))
	counts := map[bridge.Kind]int{}
	for i, c := range components {
		counts[c.Kind()]++
		switch c.Kind() {
		case bridge.KindDeck:
			names[i] = "deck"
		default:
			names[i] = fmt.Sprintf("%s_%d", c.Kind(), counts[c.Kind()])
		}
	}
	return names
}

// buildParts pairs each built component with its export name and color.
func buildParts(m *bridge.Model) []export.Part {
	components := m.Components()
	names := partNames(components)
	parts := make([]export.Part, len(components))
	for i, c := range components {
		parts[i] = export.Part{
			Name:  names[i],
			Solid: c.Solid(),
			Color: kindColors[c.Kind()],
		}
	}
	return parts
}

// buildScene assembles the renderer input from the built model and its
// display options.
func buildScene(m *bridge.Model) render.Scene {
	display := m.Params().Display

	bg := geom.RGB{R: 1, G: 1, B: 1}
	if display.Background == "gray" {
		bg = geom.RGB{R: 0.5, G: 0.5, B: 0.5}
	}

	components := m.Components()
	names := partNames(components)
	items := make([]render.Item, len(components))
	for i, c := range components {
		items[i] = render.Item{
			Label: names[i],
			Solid: c.Solid(),
			Color: kindColors[c.Kind()],
		}
	}

	return render.Scene{
		Items:      items,
		Background: bg,
		ShowAxes:   display.ShowAxes,
	}
}
