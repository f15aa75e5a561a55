package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spanforge/spanforge/pkg/bridge"
	"github.com/spanforge/spanforge/pkg/errors"
	"github.com/spanforge/spanforge/pkg/geom/meshkern"
	"github.com/spanforge/spanforge/pkg/render"
)

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	configPath  string
	output      string   // output base path, extension stripped per format
	projections []string // view planes to draw
	formats     []string // svg, png
}

// newPreviewCmd creates the preview command for rendering projection
// diagrams without exporting CAD files.
func newPreviewCmd() *cobra.Command {
	var projStr, formatsStr string
	opts := previewOpts{output: "bridge"}

	cmd := &cobra.Command{
		Use:   "preview [config.toml]",
		Short: "Render SVG/PNG projection diagrams of the bridge",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.configPath = args[0]
			}

			opts.projections = render.Projections()
			if projStr != "" {
				opts.projections = strings.Split(projStr, ",")
				for _, p := range opts.projections {
					if err := render.ValidateProjection(p); err != nil {
						return err
					}
				}
			}

			opts.formats = []string{"svg"}
			if formatsStr != "" {
				opts.formats = strings.Split(formatsStr, ",")
				for _, f := range opts.formats {
					if err := errors.ValidateFormatName(f, []string{"svg", "png"}); err != nil {
						return err
					}
				}
			}

			return runPreview(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output base path (projection and extension are appended)")
	cmd.Flags().StringVarP(&projStr, "projection", "p", "", "projection(s): elevation, plan, section (comma-separated; default all)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png (comma-separated)")

	return cmd
}

func runPreview(ctx context.Context, opts *previewOpts) error {
	logger := loggerFromContext(ctx)

	params, err := loadParams(opts.configPath, logger)
	if err != nil {
		return err
	}

	kernel := meshkern.New()
	model := bridge.New(params, kernel, bridge.WithLogger(logger))
	if err := model.Build(); err != nil {
		return err
	}
	scene := buildScene(model)

	p := newProgress(logger)
	var written []string
	for _, proj := range opts.projections {
		for _, format := range opts.formats {
			path := fmt.Sprintf("%s_%s.%s", opts.output, proj, format)
			switch format {
			case "svg":
				data := render.RenderSVG(scene,
					render.WithProjection(render.Projection(proj)),
					render.WithLabels())
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return errors.Wrap(errors.ErrCodeExport, err, "failed to write %s", path)
				}
			case "png":
				err := render.ExportPNG(scene, path,
					render.WithPNGProjection(render.Projection(proj)),
					render.WithPNGTitle(fmt.Sprintf("Bridge Model (%s)", proj)))
				if err != nil {
					return err
				}
			}
			written = append(written, path)
		}
	}
	p.done(fmt.Sprintf("Rendered %d diagrams", len(written)))

	for _, f := range written {
		printSuccess(fmt.Sprintf("wrote %s", StyleNumber.Render(f)))
	}
	return nil
}
