package geom

// Mesh is a triangle mesh describing one closed shell of a solid boundary.
// All arrays are flat: Vertices has 3 floats per vertex (x,y,z), Indices has
// 3 entries per triangle. Triangles are wound counter-clockwise seen from
// outside the shell.
type Mesh struct {
	Vertices []float64 // [x0,y0,z0, x1,y1,z1, ...]
	Indices  []uint32  // [i0,i1,i2, ...] triangles
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Vertex returns vertex i as a Vec3.
func (m *Mesh) Vertex(i int) Vec3 {
	return Vec3{m.Vertices[3*i], m.Vertices[3*i+1], m.Vertices[3*i+2]}
}

// Triangle returns the three vertex indices of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c uint32) {
	return m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]
}

// Normal returns the unit outward normal of triangle i.
func (m *Mesh) Normal(i int) Vec3 {
	a, b, c := m.Triangle(i)
	va, vb, vc := m.Vertex(int(a)), m.Vertex(int(b)), m.Vertex(int(c))
	return vb.Sub(va).Cross(vc.Sub(va)).Normalize()
}

// Bounds returns the axis-aligned bounding box of the mesh. An empty mesh
// returns two zero vectors.
func (m *Mesh) Bounds() (min, max Vec3) {
	if m.VertexCount() == 0 {
		return Vec3{}, Vec3{}
	}
	min, max = m.Vertex(0), m.Vertex(0)
	for i := 1; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		min.X = minf(min.X, v.X)
		min.Y = minf(min.Y, v.Y)
		min.Z = minf(min.Z, v.Z)
		max.X = maxf(max.X, v.X)
		max.Y = maxf(max.Y, v.Y)
		max.Z = maxf(max.Z, v.Z)
	}
	return min, max
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Triangulated is implemented by solids that can expose their boundary as
// triangle shells. Exporters and renderers require it; the bridge
// orchestration itself never does.
type Triangulated interface {
	// Shells returns one mesh per closed shell. For a compound this is the
	// concatenation of the shells of all children.
	Shells() []*Mesh
}
