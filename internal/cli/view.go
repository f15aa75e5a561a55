package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/spanforge/spanforge/pkg/bridge"
	"github.com/spanforge/spanforge/pkg/geom"
	"github.com/spanforge/spanforge/pkg/geom/meshkern"
	"github.com/spanforge/spanforge/pkg/render"
)

// newViewCmd creates the view command: an interactive terminal viewer for
// the assembled model. Projections are rasterized into colored cells; keys
// switch between views and toggle the axes.
func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [config.toml]",
		Short: "Inspect the bridge model interactively in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var configPath string
			if len(args) == 1 {
				configPath = args[0]
			}

			logger := loggerFromContext(cmd.Context())
			params, err := loadParams(configPath, logger)
			if err != nil {
				return err
			}

			kernel := meshkern.New()
			model := bridge.New(params, kernel, bridge.WithLogger(logger))
			if err := model.Build(); err != nil {
				return err
			}

			m := newViewerModel(buildScene(model))
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}

// viewerModel is the bubbletea model for the terminal viewer.
type viewerModel struct {
	scene      render.Scene
	projection render.Projection
	showAxes   bool
	width      int
	height     int
}

func newViewerModel(scene render.Scene) viewerModel {
	return viewerModel{
		scene:      scene,
		projection: render.Elevation,
		showAxes:   scene.ShowAxes,
		width:      80,
		height:     24,
	}
}

func (m viewerModel) Init() tea.Cmd {
	return nil
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "e":
			m.projection = render.Elevation
		case "p":
			m.projection = render.Plan
		case "s":
			m.projection = render.Section
		case "a":
			m.showAxes = !m.showAxes
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m viewerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Bridge Model"))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %s view", m.projection)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("e elevation  p plan  s section  a axes  q quit"))
	b.WriteString("\n\n")

	cols := m.width - 4
	rows := m.height - 6
	if cols < 20 {
		cols = 20
	}
	if rows < 8 {
		rows = 8
	}
	b.WriteString(m.raster(cols, rows))

	return b.String()
}

// raster draws the current projection into a cols x rows character grid.
// Cells covered by a part take its color; later items draw over earlier
// ones, matching the assembly order (girders, deck, parapets).
func (m viewerModel) raster(cols, rows int) string {
	scene := m.scene
	scene.ShowAxes = false // axes handled here, on the cell grid

	frame := render.Frame(scene, m.projection)
	if frame.Empty() {
		return StyleDim.Render("  (no geometry)")
	}

	type cell struct {
		set   bool
		color geom.RGB
	}
	grid := make([][]cell, rows)
	for r := range grid {
		grid[r] = make([]cell, cols)
	}

	// Uniform scale so the model keeps its proportions. Terminal cells are
	// roughly twice as tall as wide.
	const cellAspect = 2.0
	sx := float64(cols) / frame.SpanH()
	sy := float64(rows) * cellAspect / frame.SpanV()
	scale := sx
	if sy < sx {
		scale = sy
	}

	toCell := func(h, v float64) (int, int) {
		c := int((h - frame.MinH()) * scale)
		r := rows - 1 - int((v-frame.MinV())*scale/cellAspect)
		return c, r
	}

	for _, rc := range frame.Rects() {
		c0, r1 := toCell(rc.MinH, rc.MinV)
		c1, r0 := toCell(rc.MaxH, rc.MaxV)
		for r := r0; r <= r1; r++ {
			for c := c0; c <= c1; c++ {
				if r < 0 || r >= rows || c < 0 || c >= cols {
					continue
				}
				grid[r][c] = cell{set: true, color: rc.Color}
			}
		}
	}

	axisCol, axisRow := -1, -1
	if m.showAxes {
		axisCol, axisRow = toCell(0, 0)
	}

	var b strings.Builder
	for r := 0; r < rows; r++ {
		b.WriteString("  ")
		for c := 0; c < cols; c++ {
			switch {
			case grid[r][c].set:
				b.WriteString(cellStyle(grid[r][c].color).Render("█"))
			case r == axisRow && c == axisCol:
				b.WriteString(StyleDim.Render("+"))
			case r == axisRow:
				b.WriteString(StyleDim.Render("·"))
			case c == axisCol:
				b.WriteString(StyleDim.Render("·"))
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// cellStyle converts a display color to a lipgloss style.
func cellStyle(c geom.RGB) lipgloss.Style {
	r, g, b := c.Bytes()
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b)))
}
