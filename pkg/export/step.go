package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/spanforge/spanforge/pkg/geom"
)

// STEPOption configures STEP rendering via [RenderSTEP].
type STEPOption func(*stepRenderer)

type stepRenderer struct {
	product string
	colors  bool
	now     func() time.Time
}

// WithSTEPProduct sets the product name recorded in the file (default
// "bridge").
func WithSTEPProduct(name string) STEPOption {
	return func(r *stepRenderer) { r.product = name }
}

// WithSTEPColors attaches per-part presentation colors.
func WithSTEPColors() STEPOption {
	return func(r *stepRenderer) { r.colors = true }
}

// withSTEPClock overrides the header timestamp source, for deterministic
// output in tests.
func withSTEPClock(now func() time.Time) STEPOption {
	return func(r *stepRenderer) { r.now = now }
}

// stepWriter accumulates ISO 10303-21 entity instances with sequential ids.
type stepWriter struct {
	buf  bytes.Buffer
	next int
}

// entity appends one instance and returns its id.
func (w *stepWriter) entity(format string, args ...any) int {
	id := w.next
	w.next++
	fmt.Fprintf(&w.buf, "#%d=", id)
	fmt.Fprintf(&w.buf, format, args...)
	w.buf.WriteString(";\n")
	return id
}

// RenderSTEP encodes the parts as a STEP AP214 file. Each shell becomes a
// FACETED_BREP whose faces are planar POLY_LOOP triangles; all breps share
// one shape representation in millimeter units.
func RenderSTEP(parts []Part, opts ...STEPOption) ([]byte, error) {
	r := stepRenderer{product: "bridge", now: time.Now}
	for _, opt := range opts {
		opt(&r)
	}

	w := &stepWriter{next: 1}

	appCtx := w.entity("APPLICATION_CONTEXT('automotive design')")
	w.entity("APPLICATION_PROTOCOL_DEFINITION('international standard','automotive_design',2010,#%d)", appCtx)
	prodCtx := w.entity("PRODUCT_CONTEXT('',#%d,'mechanical')", appCtx)
	product := w.entity("PRODUCT('%s','%s','',(#%d))", r.product, r.product, prodCtx)
	formation := w.entity("PRODUCT_DEFINITION_FORMATION('','',#%d)", product)
	defCtx := w.entity("PRODUCT_DEFINITION_CONTEXT('part definition',#%d,'design')", appCtx)
	prodDef := w.entity("PRODUCT_DEFINITION('design','',#%d,#%d)", formation, defCtx)
	prodShape := w.entity("PRODUCT_DEFINITION_SHAPE('','',#%d)", prodDef)

	lengthUnit := w.entity("(LENGTH_UNIT()NAMED_UNIT(*)SI_UNIT(.MILLI.,.METRE.))")
	angleUnit := w.entity("(NAMED_UNIT(*)PLANE_ANGLE_UNIT()SI_UNIT($,.RADIAN.))")
	solidAngleUnit := w.entity("(NAMED_UNIT(*)SI_UNIT($,.STERADIAN.)SOLID_ANGLE_UNIT())")
	uncertainty := w.entity("UNCERTAINTY_MEASURE_WITH_UNIT(LENGTH_MEASURE(1.E-3),#%d,'distance_accuracy_value','')", lengthUnit)
	geomCtx := w.entity("(GEOMETRIC_REPRESENTATION_CONTEXT(3)GLOBAL_UNCERTAINTY_ASSIGNED_CONTEXT((#%d))GLOBAL_UNIT_ASSIGNED_CONTEXT((#%d,#%d,#%d))REPRESENTATION_CONTEXT('',''))",
		uncertainty, lengthUnit, angleUnit, solidAngleUnit)

	var brepIDs []int
	var styledIDs []int
	for _, p := range parts {
		sh, err := shells(p)
		if err != nil {
			return nil, err
		}
		for i, mesh := range sh {
			name := p.Name
			if len(sh) > 1 {
				name = fmt.Sprintf("%s_shell_%d", p.Name, i+1)
			}
			brep := writeFacetedBrep(w, name, mesh)
			brepIDs = append(brepIDs, brep)
			if r.colors {
				styledIDs = append(styledIDs, writeSurfaceColor(w, brep, p.Color))
			}
		}
	}

	items := "("
	for i, id := range brepIDs {
		if i > 0 {
			items += ","
		}
		items += fmt.Sprintf("#%d", id)
	}
	items += ")"
	shapeRep := w.entity("FACETED_BREP_SHAPE_REPRESENTATION('%s',%s,#%d)", r.product, items, geomCtx)
	w.entity("SHAPE_DEFINITION_REPRESENTATION(#%d,#%d)", prodShape, shapeRep)

	if len(styledIDs) > 0 {
		styled := "("
		for i, id := range styledIDs {
			if i > 0 {
				styled += ","
			}
			styled += fmt.Sprintf("#%d", id)
		}
		styled += ")"
		w.entity("MECHANICAL_DESIGN_GEOMETRIC_PRESENTATION_REPRESENTATION('',%s,#%d)", styled, geomCtx)
	}

	var out bytes.Buffer
	out.WriteString("ISO-10303-21;\n")
	out.WriteString("HEADER;\n")
	out.WriteString("FILE_DESCRIPTION(('parametric steel girder bridge'),'2;1');\n")
	fmt.Fprintf(&out, "FILE_NAME('%s','%s',('spanforge'),(''),'','spanforge','');\n",
		r.product, r.now().UTC().Format("2006-01-02T15:04:05"))
	out.WriteString("FILE_SCHEMA(('AUTOMOTIVE_DESIGN { 1 0 10303 214 1 1 1 1 }'));\n")
	out.WriteString("ENDSEC;\n")
	out.WriteString("DATA;\n")
	out.Write(w.buf.Bytes())
	out.WriteString("ENDSEC;\n")
	out.WriteString("END-ISO-10303-21;\n")
	return out.Bytes(), nil
}

// writeFacetedBrep emits the point, loop, face and shell entities for one
// closed triangle shell and returns the FACETED_BREP id.
func writeFacetedBrep(w *stepWriter, name string, mesh *geom.Mesh) int {
	pointIDs := make([]int, mesh.VertexCount())
	for i := range pointIDs {
		v := mesh.Vertex(i)
		pointIDs[i] = w.entity("CARTESIAN_POINT('',(%s,%s,%s))", stepFloat(v.X), stepFloat(v.Y), stepFloat(v.Z))
	}

	faceIDs := make([]int, mesh.TriangleCount())
	for i := range faceIDs {
		a, b, c := mesh.Triangle(i)
		loop := w.entity("POLY_LOOP('',(#%d,#%d,#%d))", pointIDs[a], pointIDs[b], pointIDs[c])
		bound := w.entity("FACE_OUTER_BOUND('',#%d,.T.)", loop)
		faceIDs[i] = w.entity("FACE('',(#%d))", bound)
	}

	faces := "("
	for i, id := range faceIDs {
		if i > 0 {
			faces += ","
		}
		faces += fmt.Sprintf("#%d", id)
	}
	faces += ")"
	shell := w.entity("CLOSED_SHELL('',%s)", faces)
	return w.entity("FACETED_BREP('%s',#%d)", name, shell)
}

// writeSurfaceColor emits the presentation chain assigning an RGB surface
// color to a brep and returns the STYLED_ITEM id.
func writeSurfaceColor(w *stepWriter, brep int, c geom.RGB) int {
	rgb := w.entity("COLOUR_RGB('',%s,%s,%s)", stepFloat(c.R), stepFloat(c.G), stepFloat(c.B))
	fill := w.entity("FILL_AREA_STYLE_COLOUR('',#%d)", rgb)
	fillStyle := w.entity("FILL_AREA_STYLE('',(#%d))", fill)
	surfFill := w.entity("SURFACE_STYLE_FILL_AREA(#%d)", fillStyle)
	side := w.entity("SURFACE_SIDE_STYLE('',(#%d))", surfFill)
	usage := w.entity("SURFACE_STYLE_USAGE(.BOTH.,#%d)", side)
	style := w.entity("PRESENTATION_STYLE_ASSIGNMENT((#%d))", usage)
	return w.entity("STYLED_ITEM('',(#%d),#%d)", style, brep)
}

// stepFloat formats a float in STEP real syntax (always with a decimal
// point).
func stepFloat(f float64) string {
	s := fmt.Sprintf("%g", f)
	for _, r := range s {
		if r == '.' || r == 'e' || r == 'E' {
			return s
		}
	}
	return s + "."
}

// ExportSTEP renders the parts and writes the file at path.
func ExportSTEP(parts []Part, path string, opts ...STEPOption) error {
	data, err := RenderSTEP(parts, opts...)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}
