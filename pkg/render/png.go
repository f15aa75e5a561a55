package render

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/spanforge/spanforge/pkg/errors"
	"github.com/spanforge/spanforge/pkg/geom"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	projection Projection
	title      string
	width      vg.Length
}

// WithPNGProjection selects the view plane (default Elevation).
func WithPNGProjection(p Projection) PNGOption {
	return func(r *pngRenderer) { r.projection = p }
}

// WithPNGTitle sets the diagram title.
func WithPNGTitle(t string) PNGOption {
	return func(r *pngRenderer) { r.title = t }
}

// ExportPNG draws the scene as a dimensioned diagram and saves it to
// filename. The file format follows the extension, so .png, .svg and .pdf
// all work; PNG is the documented default.
func ExportPNG(s Scene, filename string, opts ...PNGOption) error {
	r := pngRenderer{projection: Elevation, title: "Bridge Model", width: 10 * vg.Inch}
	for _, opt := range opts {
		opt(&r)
	}

	p := plot.New()
	p.Title.Text = r.title
	h, v := r.projection.AxisLabels()
	p.X.Label.Text = h
	p.Y.Label.Text = v
	p.BackgroundColor = rgbaColor(s.Background)

	rects := sceneRects(s, r.projection)
	for _, rc := range rects {
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: rc.x0, Y: rc.y0},
			{X: rc.x1, Y: rc.y0},
			{X: rc.x1, Y: rc.y1},
			{X: rc.x0, Y: rc.y1},
		})
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "failed to build outline for %s", rc.label)
		}
		poly.Color = rgbaColor(rc.color)
		poly.LineStyle.Color = color.Black
		poly.LineStyle.Width = vg.Points(0.75)
		p.Add(poly)
	}

	if s.ShowAxes {
		p.Add(plotter.NewGrid())
	}

	// Keep model proportions: scale plot height by the scene aspect ratio.
	x0, y0, x1, y1 := sceneBounds(rects)
	height := r.width / 2
	if x1 > x0 && y1 > y0 {
		aspect := (y1 - y0) / (x1 - x0)
		height = vg.Length(float64(r.width) * aspect)
		if height < 2*vg.Inch {
			height = 2 * vg.Inch
		}
		if height > r.width {
			height = r.width
		}
	}

	if err := p.Save(r.width, height, filename); err != nil {
		return errors.Wrap(errors.ErrCodeExport, err, "failed to save diagram %s", filename)
	}
	return nil
}

func rgbaColor(c geom.RGB) color.RGBA {
	r, g, b := c.Bytes()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
