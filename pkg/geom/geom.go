// Package geom defines the boundary between bridge orchestration and the
// solid-modeling kernel.
//
// The orchestration code in pkg/bridge depends only on the small [Kernel]
// interface, so it can be tested against a stub and a different kernel (for
// example an OpenCascade-backed one) can be swapped in without touching the
// layout or placement logic. The reference implementation lives in
// pkg/geom/meshkern.
package geom

import "math"

// Vec3 is a point or direction in model space. Lengths are millimeters.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v scaled by f.
func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{v.X * f, v.Y * f, v.Z * f}
}

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of v and w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Axis is a rotation axis defined by a point and a direction.
type Axis struct {
	Point Vec3
	Dir   Vec3
}

// ZAxis returns the axis through origin pointing along +Z, the vertical axis
// a bridge skew rotation would use.
func ZAxis(origin Vec3) Axis {
	return Axis{Point: origin, Dir: Vec3{0, 0, 1}}
}

// RGB is a display color with components in [0, 1].
type RGB struct {
	R, G, B float64
}

// Bytes returns the color as 8-bit channel values, clamping each component
// to [0, 1] first.
func (c RGB) Bytes() (r, g, b uint8) {
	return byte255(c.R), byte255(c.G), byte255(c.B)
}

func byte255(f float64) uint8 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 255
	}
	return uint8(f*255 + 0.5)
}

// Solid is an opaque handle to a kernel-owned solid body. Handles are
// immutable; transforms return new handles.
type Solid interface {
	// ID uniquely identifies the handle within its kernel.
	ID() string
	// Bounds returns the axis-aligned bounding box of the solid.
	Bounds() (min, max Vec3)
}

// Kernel is the narrow set of solid-modeling primitives the bridge
// orchestration consumes. Every method either returns a valid handle or an
// error; callers treat errors as fatal (there is no partial recovery in the
// assembly sequence).
type Kernel interface {
	// MakeBox creates a rectangular box with one corner at the origin and
	// the opposite corner at (dx, dy, dz).
	MakeBox(dx, dy, dz float64) (Solid, error)

	// Fuse combines two solids into one representing their combined volume.
	Fuse(a, b Solid) (Solid, error)

	// Translate returns a copy of s moved by v.
	Translate(s Solid, v Vec3) (Solid, error)

	// Rotate returns a copy of s rotated by angleDeg degrees about axis.
	Rotate(s Solid, axis Axis, angleDeg float64) (Solid, error)

	// Compound groups solids into one aggregate without merging their
	// topology. The children remain individually addressable.
	Compound(solids ...Solid) (Solid, error)
}
