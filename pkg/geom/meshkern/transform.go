package meshkern

import (
	"math"

	"github.com/spanforge/spanforge/pkg/geom"
)

// mat4 is a row-major 4x4 affine transform matrix. The bottom row is always
// (0, 0, 0, 1) for the transforms this kernel produces.
type mat4 [16]float64

// identity returns the identity transform.
func identity() mat4 {
	return mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// translation returns the transform moving points by v.
func translation(v geom.Vec3) mat4 {
	m := identity()
	m[3] = v.X
	m[7] = v.Y
	m[11] = v.Z
	return m
}

// rotation returns the transform rotating points by angleDeg degrees about
// the given axis, following the right-hand rule. The axis direction is
// normalized; a zero direction yields the identity.
func rotation(axis geom.Axis, angleDeg float64) mat4 {
	d := axis.Dir.Normalize()
	if d.Length() == 0 {
		return identity()
	}

	rad := angleDeg * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	t := 1 - c
	x, y, z := d.X, d.Y, d.Z

	// Rodrigues rotation about an axis through the origin.
	r := mat4{
		t*x*x + c, t*x*y - s*z, t*x*z + s*y, 0,
		t*x*y + s*z, t*y*y + c, t*y*z - s*x, 0,
		t*x*z - s*y, t*y*z + s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}

	// Conjugate by the axis point so the axis need not pass through origin.
	return translation(axis.Point).mul(r).mul(translation(axis.Point.Scale(-1)))
}

// mul returns m * n (apply n first, then m).
func (m mat4) mul(n mat4) mat4 {
	var out mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[4*row+k] * n[4*k+col]
			}
			out[4*row+col] = sum
		}
	}
	return out
}

// apply transforms a point.
func (m mat4) apply(v geom.Vec3) geom.Vec3 {
	return geom.Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3],
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7],
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11],
	}
}

// applyMesh returns a copy of the mesh with all vertices transformed.
// Indices are shared with the input; vertex data is not.
func (m mat4) applyMesh(mesh *geom.Mesh) *geom.Mesh {
	out := &geom.Mesh{
		Vertices: make([]float64, len(mesh.Vertices)),
		Indices:  mesh.Indices,
	}
	for i := 0; i < mesh.VertexCount(); i++ {
		v := m.apply(mesh.Vertex(i))
		out.Vertices[3*i] = v.X
		out.Vertices[3*i+1] = v.Y
		out.Vertices[3*i+2] = v.Z
	}
	return out
}
