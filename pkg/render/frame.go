package render

import "github.com/spanforge/spanforge/pkg/geom"

// ProjectedRect is one shell outline in projection-plane coordinates.
type ProjectedRect struct {
	MinH, MinV float64
	MaxH, MaxV float64
	Color      geom.RGB
	Label      string
}

// ProjectionFrame is a scene flattened onto a view plane, for callers that
// rasterize the model themselves (the terminal viewer). The SVG and PNG
// renderers use the same projection internally.
type ProjectionFrame struct {
	rects                  []ProjectedRect
	minH, minV, maxH, maxV float64
}

// Frame projects the scene onto the given plane.
func Frame(s Scene, p Projection) ProjectionFrame {
	rects := sceneRects(s, p)
	x0, y0, x1, y1 := sceneBounds(rects)

	out := ProjectionFrame{minH: x0, minV: y0, maxH: x1, maxV: y1}
	for _, r := range rects {
		out.rects = append(out.rects, ProjectedRect{
			MinH: r.x0, MinV: r.y0,
			MaxH: r.x1, MaxV: r.y1,
			Color: r.color,
			Label: r.label,
		})
	}
	return out
}

// Rects returns the projected outlines in scene order.
func (f ProjectionFrame) Rects() []ProjectedRect { return f.rects }

// Empty reports whether the frame contains no geometry.
func (f ProjectionFrame) Empty() bool { return len(f.rects) == 0 }

// MinH returns the lowest horizontal coordinate of the frame.
func (f ProjectionFrame) MinH() float64 { return f.minH }

// MinV returns the lowest vertical coordinate of the frame.
func (f ProjectionFrame) MinV() float64 { return f.minV }

// SpanH returns the horizontal extent of the frame, never less than 1.
func (f ProjectionFrame) SpanH() float64 {
	if s := f.maxH - f.minH; s > 1 {
		return s
	}
	return 1
}

// SpanV returns the vertical extent of the frame, never less than 1.
func (f ProjectionFrame) SpanV() float64 {
	if s := f.maxV - f.minV; s > 1 {
		return s
	}
	return 1
}
