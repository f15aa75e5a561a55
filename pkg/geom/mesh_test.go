package geom

import (
	"math"
	"testing"
)

// unit right triangle in the XY plane, wound counter-clockwise seen from +Z.
func testMesh() *Mesh {
	return &Mesh{
		Vertices: []float64{
			0, 0, 0,
			1, 0, 0,
			0, 1, 0,
		},
		Indices: []uint32{0, 1, 2},
	}
}

func TestMeshCounts(t *testing.T) {
	m := testMesh()
	if m.VertexCount() != 3 {
		t.Errorf("VertexCount = %d, want 3", m.VertexCount())
	}
	if m.TriangleCount() != 1 {
		t.Errorf("TriangleCount = %d, want 1", m.TriangleCount())
	}
}

func TestMeshAccessors(t *testing.T) {
	m := testMesh()

	if got := m.Vertex(1); got != (Vec3{1, 0, 0}) {
		t.Errorf("Vertex(1) = %+v", got)
	}

	a, b, c := m.Triangle(0)
	if a != 0 || b != 1 || c != 2 {
		t.Errorf("Triangle(0) = %d,%d,%d", a, b, c)
	}
}

func TestMeshNormal(t *testing.T) {
	n := testMesh().Normal(0)
	if math.Abs(n.X) > 1e-12 || math.Abs(n.Y) > 1e-12 || math.Abs(n.Z-1) > 1e-12 {
		t.Errorf("Normal = %+v, want +z", n)
	}
}

func TestMeshBounds(t *testing.T) {
	m := &Mesh{
		Vertices: []float64{
			-2, 5, 1,
			3, -1, 7,
			0, 0, 0,
		},
		Indices: []uint32{0, 1, 2},
	}

	min, max := m.Bounds()
	if min != (Vec3{-2, -1, 0}) {
		t.Errorf("min = %+v", min)
	}
	if max != (Vec3{3, 5, 7}) {
		t.Errorf("max = %+v", max)
	}
}

func TestMeshBoundsEmpty(t *testing.T) {
	var m Mesh
	min, max := m.Bounds()
	if min != (Vec3{}) || max != (Vec3{}) {
		t.Errorf("empty bounds = %+v %+v, want zeros", min, max)
	}
}
