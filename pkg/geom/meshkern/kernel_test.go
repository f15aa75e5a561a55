package meshkern

import (
	"math"
	"testing"

	"github.com/spanforge/spanforge/pkg/errors"
	"github.com/spanforge/spanforge/pkg/geom"
)

func mustBox(t *testing.T, k *Kernel, dx, dy, dz float64) geom.Solid {
	t.Helper()
	s, err := k.MakeBox(dx, dy, dz)
	if err != nil {
		t.Fatalf("MakeBox(%g,%g,%g) error = %v", dx, dy, dz, err)
	}
	return s
}

func boundsNear(t *testing.T, s geom.Solid, wantMin, wantMax geom.Vec3) {
	t.Helper()
	min, max := s.Bounds()
	for _, p := range []struct {
		name      string
		got, want float64
	}{
		{"min.X", min.X, wantMin.X}, {"min.Y", min.Y, wantMin.Y}, {"min.Z", min.Z, wantMin.Z},
		{"max.X", max.X, wantMax.X}, {"max.Y", max.Y, wantMax.Y}, {"max.Z", max.Z, wantMax.Z},
	} {
		if math.Abs(p.got-p.want) > 1e-9 {
			t.Errorf("%s = %g, want %g", p.name, p.got, p.want)
		}
	}
}

func TestMakeBox(t *testing.T) {
	k := New()
	s := mustBox(t, k, 12000, 300, 16)

	boundsNear(t, s, geom.Vec3{}, geom.Vec3{X: 12000, Y: 300, Z: 16})

	tri, ok := s.(geom.Triangulated)
	if !ok {
		t.Fatal("box solid should implement geom.Triangulated")
	}
	shells := tri.Shells()
	if len(shells) != 1 {
		t.Fatalf("box has %d shells, want 1", len(shells))
	}
	if shells[0].VertexCount() != 8 || shells[0].TriangleCount() != 12 {
		t.Errorf("box mesh = %d verts %d tris, want 8 and 12",
			shells[0].VertexCount(), shells[0].TriangleCount())
	}

	if s.ID() == "" {
		t.Error("solid ID should not be empty")
	}
}

// Every box triangle must face away from the box center, so the shell is
// closed with outward winding.
func TestMakeBoxWinding(t *testing.T) {
	k := New()
	s := mustBox(t, k, 2, 4, 6)
	mesh := s.(geom.Triangulated).Shells()[0]
	center := geom.Vec3{X: 1, Y: 2, Z: 3}

	for i := 0; i < mesh.TriangleCount(); i++ {
		a, _, _ := mesh.Triangle(i)
		toFace := mesh.Vertex(int(a)).Sub(center)
		if mesh.Normal(i).Dot(toFace) <= 0 {
			t.Errorf("triangle %d winds inward", i)
		}
	}
}

func TestMakeBoxDegenerate(t *testing.T) {
	k := New()
	for _, dims := range [][3]float64{{0, 1, 1}, {1, -2, 1}, {1, 1, 0}} {
		_, err := k.MakeBox(dims[0], dims[1], dims[2])
		if err == nil {
			t.Errorf("MakeBox(%v) = nil error, want kernel error", dims)
			continue
		}
		if !errors.Is(err, errors.ErrCodeKernel) {
			t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeKernel)
		}
	}
}

func TestFuse(t *testing.T) {
	k := New()
	a := mustBox(t, k, 1, 1, 1)
	b, err := k.Translate(mustBox(t, k, 1, 1, 1), geom.Vec3{Z: 1})
	if err != nil {
		t.Fatal(err)
	}

	f, err := k.Fuse(a, b)
	if err != nil {
		t.Fatalf("Fuse error = %v", err)
	}

	shells := f.(geom.Triangulated).Shells()
	if len(shells) != 2 {
		t.Errorf("fused solid has %d shells, want 2", len(shells))
	}
	boundsNear(t, f, geom.Vec3{}, geom.Vec3{X: 1, Y: 1, Z: 2})

	if f.ID() == a.ID() || f.ID() == b.ID() {
		t.Error("fuse should return a fresh handle")
	}
}

// Bounds over a multi-shell solid must take the extreme of every shell on
// every axis, in both directions.
func TestBoundsAcrossShells(t *testing.T) {
	k := New()
	a, err := k.Translate(mustBox(t, k, 1, 1, 1), geom.Vec3{X: -10, Y: 5, Z: 2})
	if err != nil {
		t.Fatal(err)
	}
	b, err := k.Translate(mustBox(t, k, 1, 1, 1), geom.Vec3{X: 4, Y: -7, Z: -3})
	if err != nil {
		t.Fatal(err)
	}

	f, err := k.Fuse(a, b)
	if err != nil {
		t.Fatal(err)
	}
	boundsNear(t, f, geom.Vec3{X: -10, Y: -7, Z: -3}, geom.Vec3{X: 5, Y: 6, Z: 3})
}

func TestTranslate(t *testing.T) {
	k := New()
	s := mustBox(t, k, 10, 20, 30)

	moved, err := k.Translate(s, geom.Vec3{X: -5, Y: 100, Z: 1})
	if err != nil {
		t.Fatalf("Translate error = %v", err)
	}

	boundsNear(t, moved, geom.Vec3{X: -5, Y: 100, Z: 1}, geom.Vec3{X: 5, Y: 120, Z: 31})

	// The original handle is untouched.
	boundsNear(t, s, geom.Vec3{}, geom.Vec3{X: 10, Y: 20, Z: 30})
}

func TestRotateQuarterTurn(t *testing.T) {
	k := New()
	s := mustBox(t, k, 10, 2, 1)

	r, err := k.Rotate(s, geom.ZAxis(geom.Vec3{}), 90)
	if err != nil {
		t.Fatalf("Rotate error = %v", err)
	}

	// A +90 degree turn about +Z maps (x, y) to (-y, x).
	boundsNear(t, r, geom.Vec3{X: -2, Y: 0, Z: 0}, geom.Vec3{X: 0, Y: 10, Z: 1})
}

func TestRotateAboutOffsetAxis(t *testing.T) {
	k := New()
	s := mustBox(t, k, 1, 1, 1)

	// Rotating 180 degrees about the vertical axis through (1, 0) maps the
	// unit box from [0,1]x[0,1] to [1,2]x[-1,0].
	r, err := k.Rotate(s, geom.ZAxis(geom.Vec3{X: 1}), 180)
	if err != nil {
		t.Fatalf("Rotate error = %v", err)
	}
	boundsNear(t, r, geom.Vec3{X: 1, Y: -1, Z: 0}, geom.Vec3{X: 2, Y: 0, Z: 1})
}

func TestCompound(t *testing.T) {
	k := New()
	a := mustBox(t, k, 1, 1, 1)
	b := mustBox(t, k, 2, 2, 2)
	c := mustBox(t, k, 3, 3, 3)

	comp, err := k.Compound(a, b, c)
	if err != nil {
		t.Fatalf("Compound error = %v", err)
	}

	shells := comp.(geom.Triangulated).Shells()
	if len(shells) != 3 {
		t.Errorf("compound has %d shells, want 3", len(shells))
	}

	kids := comp.(interface{ Children() []geom.Solid }).Children()
	if len(kids) != 3 {
		t.Fatalf("compound has %d children, want 3", len(kids))
	}
	for i, want := range []geom.Solid{a, b, c} {
		if kids[i].ID() != want.ID() {
			t.Errorf("child %d = %s, want %s", i, kids[i].ID(), want.ID())
		}
	}

	boundsNear(t, comp, geom.Vec3{}, geom.Vec3{X: 3, Y: 3, Z: 3})
}

func TestCompoundEmpty(t *testing.T) {
	k := New()
	_, err := k.Compound()
	if !errors.Is(err, errors.ErrCodeKernel) {
		t.Errorf("Compound() error = %v, want kernel error", err)
	}
}

type foreignSolid struct{}

func (foreignSolid) ID() string                   { return "foreign" }
func (foreignSolid) Bounds() (min, max geom.Vec3) { return geom.Vec3{}, geom.Vec3{} }

func TestForeignHandleRejected(t *testing.T) {
	k := New()
	a := mustBox(t, k, 1, 1, 1)

	if _, err := k.Fuse(a, foreignSolid{}); !errors.Is(err, errors.ErrCodeKernel) {
		t.Errorf("Fuse with foreign handle error = %v, want kernel error", err)
	}
	if _, err := k.Translate(foreignSolid{}, geom.Vec3{}); !errors.Is(err, errors.ErrCodeKernel) {
		t.Errorf("Translate with foreign handle error = %v, want kernel error", err)
	}
	if _, err := k.Fuse(a, nil); !errors.Is(err, errors.ErrCodeKernel) {
		t.Errorf("Fuse with nil handle error = %v, want kernel error", err)
	}
}
