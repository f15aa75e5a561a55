// Package meshkern is the reference implementation of the geom.Kernel
// boundary. Solids are boundary triangle meshes: a box is one closed shell of
// 12 triangles, a fused solid keeps the shells of both operands, and a
// compound groups child solids while keeping them individually addressable.
//
// The kernel trades exact boolean merging for simplicity: Fuse concatenates
// shells rather than computing the merged boundary surface. For the box
// geometry this tool produces, that is what the STEP, BREP and OBJ writers
// need. A kernel backed by a full CAD system can replace this package without
// changes to the orchestration code.
package meshkern

import (
	"github.com/google/uuid"

	"github.com/spanforge/spanforge/pkg/errors"
	"github.com/spanforge/spanforge/pkg/geom"
)

// Kernel implements geom.Kernel on triangle meshes. The zero value is ready
// to use and safe to share; the kernel itself holds no state, all geometry
// lives on the handles it returns.
type Kernel struct{}

// New returns a new mesh kernel.
func New() *Kernel {
	return &Kernel{}
}

// solid is a mesh-backed solid handle. Compounds keep their children so
// per-part operations (styling, naming) remain possible after grouping.
type solid struct {
	id       string
	shells   []*geom.Mesh
	children []*solid // non-nil only for compounds
}

func (s *solid) ID() string { return s.id }

// Bounds returns the axis-aligned bounding box over all shells.
func (s *solid) Bounds() (min, max geom.Vec3) {
	first := true
	for _, sh := range s.shells {
		lo, hi := sh.Bounds()
		if first {
			min, max = lo, hi
			first = false
			continue
		}
		min.X, min.Y, min.Z = minf(min.X, lo.X), minf(min.Y, lo.Y), minf(min.Z, lo.Z)
		max.X, max.Y, max.Z = maxf(max.X, hi.X), maxf(max.Y, hi.Y), maxf(max.Z, hi.Z)
	}
	return min, max
}

// Shells implements geom.Triangulated.
func (s *solid) Shells() []*geom.Mesh { return s.shells }

// Children returns the child solids of a compound, or nil for a simple solid.
func (s *solid) Children() []geom.Solid {
	if s.children == nil {
		return nil
	}
	out := make([]geom.Solid, len(s.children))
	for i, c := range s.children {
		out[i] = c
	}
	return out
}

func newSolid(shells ...*geom.Mesh) *solid {
	return &solid{id: uuid.NewString(), shells: shells}
}

// boxMesh tessellates an axis-aligned box spanning (0,0,0)..(dx,dy,dz) into
// a single closed shell: 8 vertices, 12 triangles, outward-facing winding.
func boxMesh(dx, dy, dz float64) *geom.Mesh {
	return &geom.Mesh{
		Vertices: []float64{
			0, 0, 0, // 0
			dx, 0, 0, // 1
			dx, dy, 0, // 2
			0, dy, 0, // 3
			0, 0, dz, // 4
			dx, 0, dz, // 5
			dx, dy, dz, // 6
			0, dy, dz, // 7
		},
		Indices: []uint32{
			0, 2, 1, 0, 3, 2, // bottom (z=0, normal -Z)
			4, 5, 6, 4, 6, 7, // top (z=dz, normal +Z)
			0, 1, 5, 0, 5, 4, // front (y=0, normal -Y)
			2, 3, 7, 2, 7, 6, // back (y=dy, normal +Y)
			3, 0, 4, 3, 4, 7, // left (x=0, normal -X)
			1, 2, 6, 1, 6, 5, // right (x=dx, normal +X)
		},
	}
}

// MakeBox creates a box with one corner at the origin and the opposite at
// (dx, dy, dz). Non-positive extents are a kernel failure, matching the
// behavior of CAD kernels on degenerate primitives.
func (k *Kernel) MakeBox(dx, dy, dz float64) (geom.Solid, error) {
	if dx <= 0 || dy <= 0 || dz <= 0 {
		return nil, errors.New(errors.ErrCodeKernel, "degenerate box %g x %g x %g", dx, dy, dz)
	}
	return newSolid(boxMesh(dx, dy, dz)), nil
}

// Fuse combines two solids into one. The result carries the shells of both
// operands under a fresh handle.
func (k *Kernel) Fuse(a, b geom.Solid) (geom.Solid, error) {
	sa, err := k.own(a)
	if err != nil {
		return nil, err
	}
	sb, err := k.own(b)
	if err != nil {
		return nil, err
	}
	shells := make([]*geom.Mesh, 0, len(sa.shells)+len(sb.shells))
	shells = append(shells, sa.shells...)
	shells = append(shells, sb.shells...)
	return newSolid(shells...), nil
}

// Translate returns a copy of s moved by v.
func (k *Kernel) Translate(s geom.Solid, v geom.Vec3) (geom.Solid, error) {
	return k.transform(s, translation(v))
}

// Rotate returns a copy of s rotated by angleDeg degrees about axis.
func (k *Kernel) Rotate(s geom.Solid, axis geom.Axis, angleDeg float64) (geom.Solid, error) {
	return k.transform(s, rotation(axis, angleDeg))
}

func (k *Kernel) transform(s geom.Solid, m mat4) (geom.Solid, error) {
	src, err := k.own(s)
	if err != nil {
		return nil, err
	}
	shells := make([]*geom.Mesh, len(src.shells))
	for i, sh := range src.shells {
		shells[i] = m.applyMesh(sh)
	}
	return newSolid(shells...), nil
}

// Compound groups solids into one aggregate. Child handles stay addressable
// through Children; the compound's shells are the concatenation of all child
// shells in argument order.
func (k *Kernel) Compound(solids ...geom.Solid) (geom.Solid, error) {
	if len(solids) == 0 {
		return nil, errors.New(errors.ErrCodeKernel, "compound requires at least one solid")
	}
	children := make([]*solid, len(solids))
	var shells []*geom.Mesh
	for i, s := range solids {
		src, err := k.own(s)
		if err != nil {
			return nil, err
		}
		children[i] = src
		shells = append(shells, src.shells...)
	}
	c := newSolid(shells...)
	c.children = children
	return c, nil
}

// own asserts that a handle was produced by this kernel implementation.
func (k *Kernel) own(s geom.Solid) (*solid, error) {
	if s == nil {
		return nil, errors.New(errors.ErrCodeKernel, "nil solid handle")
	}
	src, ok := s.(*solid)
	if !ok {
		return nil, errors.New(errors.ErrCodeKernel, "foreign solid handle %s", s.ID())
	}
	return src, nil
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
