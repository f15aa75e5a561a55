package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/spanforge/spanforge/pkg/bridge"
	"github.com/spanforge/spanforge/pkg/config"
	"github.com/spanforge/spanforge/pkg/export"
	"github.com/spanforge/spanforge/pkg/geom/meshkern"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	configPath string   // optional TOML parameter file
	outDir     string   // directory for exported files
	formats    []string // export formats; empty means "use config toggles"
	view       bool     // open the terminal viewer after exporting
}

// newGenerateCmd creates the generate command: the full pipeline from
// parameters to exported CAD files.
//
// Export formats default to the config file's toggles (STEP and BREP in the
// default configuration); --format overrides them.
func newGenerateCmd() *cobra.Command {
	var formatsStr string
	opts := generateOpts{outDir: "."}

	cmd := &cobra.Command{
		Use:   "generate [config.toml]",
		Short: "Build the bridge geometry and export CAD files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.configPath = args[0]
			}
			if formatsStr != "" {
				opts.formats = strings.Split(formatsStr, ",")
				for _, f := range opts.formats {
					if err := export.ValidateFormat(f); err != nil {
						return err
					}
				}
			}
			return runGenerate(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "output-dir", "o", opts.outDir, "directory for exported files")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "export format(s): step, brep, obj (comma-separated; overrides config)")
	cmd.Flags().BoolVar(&opts.view, "view", false, "open the terminal viewer after exporting")

	return cmd
}

func runGenerate(ctx context.Context, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	params, err := loadParams(opts.configPath, logger)
	if err != nil {
		return err
	}

	p := newProgress(logger)
	kernel := meshkern.New()
	model := bridge.New(params, kernel, bridge.WithLogger(logger))

	spin := newSpinner(ctx, "Building bridge geometry...")
	spin.Start()
	err = model.Build()
	spin.Stop()
	if err != nil {
		return err
	}

	layout := model.Layout()
	p.done(fmt.Sprintf("Built %d solids, deck width %.0f mm", len(model.Components()), layout.DeckWidth))

	parts := buildParts(model)
	written, err := exportAll(params, parts, opts)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(StyleTitle.Render("Bridge model generated"))
	printKV("Span length", fmt.Sprintf("%.0f mm", params.Bridge.SpanLength))
	printKV("Girders", fmt.Sprintf("%d @ %.0f mm spacing", params.Bridge.GirderCount, params.Bridge.GirderSpacing))
	printKV("Deck width", fmt.Sprintf("%.0f mm", layout.DeckWidth))
	printKV("Deck elevation", fmt.Sprintf("%.0f mm", layout.DeckZ))
	if params.Bridge.SkewAngle != 0 {
		printKV("Skew angle", fmt.Sprintf("%.1f° %s", params.Bridge.SkewAngle, StyleDim.Render("(not applied to geometry)")))
	}
	for _, f := range written {
		printSuccess(fmt.Sprintf("wrote %s", StyleNumber.Render(f)))
	}

	if opts.view {
		vm := newViewerModel(buildScene(model))
		if _, err := tea.NewProgram(vm, tea.WithAltScreen()).Run(); err != nil {
			return err
		}
	}
	return nil
}

// exportAll writes every enabled format and returns the file paths written.
func exportAll(params config.Parameters, parts []export.Part, opts *generateOpts) ([]string, error) {
	type job struct {
		format string
		file   string
		write  func(path string) error
	}

	jobs := []job{
		{"step", params.Export.STEPFile, func(path string) error {
			return export.ExportSTEP(parts, path, export.WithSTEPColors())
		}},
		{"brep", params.Export.BREPFile, func(path string) error {
			return export.ExportBREP(parts, path)
		}},
		{"obj", params.Export.OBJFile, func(path string) error {
			return export.ExportOBJ(parts, path)
		}},
	}

	enabled := map[string]bool{
		"step": params.Export.STEP,
		"brep": params.Export.BREP,
		"obj":  params.Export.OBJ,
	}
	if len(opts.formats) > 0 {
		enabled = map[string]bool{}
		for _, f := range opts.formats {
			enabled[f] = true
		}
	}

	var written []string
	for _, j := range jobs {
		if !enabled[j.format] {
			continue
		}
		path := filepath.Join(opts.outDir, j.file)
		if err := j.write(path); err != nil {
			return nil, err
		}
		written = append(written, path)
	}
	return written, nil
}
