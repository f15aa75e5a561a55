package render

import (
	"bytes"
	"fmt"

	"github.com/spanforge/spanforge/pkg/geom"
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	projection Projection
	width      float64
	margin     float64
	labels     bool
}

// WithProjection selects the view plane (default Elevation).
func WithProjection(p Projection) SVGOption {
	return func(r *svgRenderer) { r.projection = p }
}

// WithWidth sets the viewport width in pixels (default 800); height follows
// from the scene aspect ratio.
func WithWidth(w float64) SVGOption {
	return func(r *svgRenderer) { r.width = w }
}

// WithLabels draws part labels next to each outline.
func WithLabels() SVGOption {
	return func(r *svgRenderer) { r.labels = true }
}

// RenderSVG draws the scene as an orthographic projection. Each shell of
// each solid becomes one filled rectangle in the item's color; the model Y/Z
// axis points up in the image.
func RenderSVG(s Scene, opts ...SVGOption) []byte {
	r := svgRenderer{projection: Elevation, width: 800, margin: 40}
	for _, opt := range opts {
		opt(&r)
	}

	rects := sceneRects(s, r.projection)
	x0, y0, x1, y1 := sceneBounds(rects)
	spanX, spanY := x1-x0, y1-y0
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}

	scale := (r.width - 2*r.margin) / spanX
	height := spanY*scale + 2*r.margin

	// Model coordinates to image coordinates; the image y axis points down.
	tx := func(x float64) float64 { return r.margin + (x-x0)*scale }
	ty := func(y float64) float64 { return height - r.margin - (y-y0)*scale }

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.width, height, r.width, height)

	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		r.width, height, cssColor(s.Background))

	if s.ShowAxes {
		ox, oy := tx(0), ty(0)
		fmt.Fprintf(&buf, `  <line x1="0" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#888" stroke-width="1" stroke-dasharray="4 4"/>`+"\n",
			oy, r.width, oy)
		fmt.Fprintf(&buf, `  <line x1="%.1f" y1="0" x2="%.1f" y2="%.1f" stroke="#888" stroke-width="1" stroke-dasharray="4 4"/>`+"\n",
			ox, ox, height)
	}

	for _, rc := range rects {
		fmt.Fprintf(&buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="#333" stroke-width="0.5"/>`+"\n",
			tx(rc.x0), ty(rc.y1), (rc.x1-rc.x0)*scale, (rc.y1-rc.y0)*scale, cssColor(rc.color))
	}

	if r.labels {
		seen := map[string]bool{}
		for _, rc := range rects {
			if rc.label == "" || seen[rc.label] {
				continue
			}
			seen[rc.label] = true
			fmt.Fprintf(&buf, `  <text x="%.2f" y="%.2f" font-size="11" font-family="sans-serif" fill="#333">%s</text>`+"\n",
				tx(rc.x0), ty(rc.y1)-4, rc.label)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// cssColor formats an RGB color with [0,1] components as a CSS rgb() value.
func cssColor(c geom.RGB) string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}
