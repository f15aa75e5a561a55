// Package render draws the assembled bridge for human inspection.
//
// The renderer consumes a [Scene]: solid handles paired with display colors,
// a background color and an axes toggle. Output goes to SVG (hand-written
// markup) or PNG (via gonum/plot); both draw orthographic projections of the
// solids, which for this box-built geometry capture the model exactly.
package render

import (
	"github.com/spanforge/spanforge/pkg/errors"
	"github.com/spanforge/spanforge/pkg/geom"
)

// Item is one displayable solid with its color and label.
type Item struct {
	Label string
	Solid geom.Solid
	Color geom.RGB
}

// Scene is the renderer input: what to draw and how.
type Scene struct {
	Items      []Item
	Background geom.RGB
	ShowAxes   bool
}

// Projection selects the orthographic view plane.
type Projection string

const (
	// Elevation is the side view: span along the horizontal axis (X),
	// height vertical (Z).
	Elevation Projection = "elevation"
	// Plan is the top view: span (X) against transverse position (Y).
	Plan Projection = "plan"
	// Section is the cross-section view: transverse position (Y) against
	// height (Z).
	Section Projection = "section"
)

// Projections lists the supported view names.
func Projections() []string {
	return []string{string(Elevation), string(Plan), string(Section)}
}

// ValidateProjection checks a projection name.
func ValidateProjection(p string) error {
	return errors.ValidateFormatName(p, Projections())
}

// AxisLabels returns the horizontal and vertical axis names of a projection.
func (p Projection) AxisLabels() (h, v string) {
	switch p {
	case Plan:
		return "X (mm)", "Y (mm)"
	case Section:
		return "Y (mm)", "Z (mm)"
	default:
		return "X (mm)", "Z (mm)"
	}
}

// project maps a model-space point onto the projection plane.
func (p Projection) project(v geom.Vec3) (h, vert float64) {
	switch p {
	case Plan:
		return v.X, v.Y
	case Section:
		return v.Y, v.Z
	default:
		return v.X, v.Z
	}
}

// rect is one projected shell outline.
type rect struct {
	x0, y0, x1, y1 float64
	color          geom.RGB
	label          string
}

// sceneRects projects every shell of every item onto the plane as its
// bounding rectangle. Box-built solids project exactly to rectangles, so no
// detail is lost. Items whose solids expose no triangulation fall back to
// the solid's overall bounding box.
func sceneRects(s Scene, p Projection) []rect {
	var out []rect
	for _, item := range s.Items {
		if item.Solid == nil {
			continue
		}
		if t, ok := item.Solid.(geom.Triangulated); ok {
			for _, sh := range t.Shells() {
				lo, hi := sh.Bounds()
				out = append(out, boundsRect(lo, hi, p, item))
			}
			continue
		}
		lo, hi := item.Solid.Bounds()
		out = append(out, boundsRect(lo, hi, p, item))
	}
	return out
}

func boundsRect(lo, hi geom.Vec3, p Projection, item Item) rect {
	x0, y0 := p.project(lo)
	x1, y1 := p.project(hi)
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return rect{x0: x0, y0: y0, x1: x1, y1: y1, color: item.Color, label: item.Label}
}

// sceneBounds returns the extent of all projected rectangles.
func sceneBounds(rects []rect) (x0, y0, x1, y1 float64) {
	if len(rects) == 0 {
		return 0, 0, 0, 0
	}
	x0, y0, x1, y1 = rects[0].x0, rects[0].y0, rects[0].x1, rects[0].y1
	for _, r := range rects[1:] {
		if r.x0 < x0 {
			x0 = r.x0
		}
		if r.y0 < y0 {
			y0 = r.y0
		}
		if r.x1 > x1 {
			x1 = r.x1
		}
		if r.y1 > y1 {
			y1 = r.y1
		}
	}
	return x0, y0, x1, y1
}
