package export

import (
	"bytes"
	"fmt"

	"github.com/spanforge/spanforge/pkg/geom"
)

// RenderBREP encodes the parts in the OpenCascade ASCII BRep format,
// restricted to the triangulation-only shape class (the same class OCC
// itself produces when importing mesh data): faces carry a triangulation and
// no analytic surface, so the curve and surface sections are empty.
//
// Topology: one face per shell, shells grouped into one solid per part, all
// solids under a single compound.
func RenderBREP(parts []Part) ([]byte, error) {
	type face struct {
		tri int // 1-based triangulation index
	}
	type part struct {
		faces []face
	}

	var meshes []*geom.Mesh
	var tree []part
	for _, p := range parts {
		sh, err := shells(p)
		if err != nil {
			return nil, err
		}
		pt := part{}
		for _, mesh := range sh {
			meshes = append(meshes, mesh)
			pt.faces = append(pt.faces, face{tri: len(meshes)})
		}
		tree = append(tree, pt)
	}

	var out bytes.Buffer
	out.WriteString("DBRep_DrawableShape\n\n")
	out.WriteString("CASCADE Topology V1, (c) Matra-Datavision\n")
	out.WriteString("Locations 0\n")
	out.WriteString("Curve2ds 0\n")
	out.WriteString("Curves 0\n")
	out.WriteString("Polygon3D 0\n")
	out.WriteString("PolygonOnTriangulations 0\n")
	out.WriteString("Surfaces 0\n")

	fmt.Fprintf(&out, "Triangulations %d\n", len(meshes))
	for _, mesh := range meshes {
		fmt.Fprintf(&out, "%d %d 0\n", mesh.VertexCount(), mesh.TriangleCount())
		out.WriteString("0\n") // deflection: exact for planar facets
		for i := 0; i < mesh.VertexCount(); i++ {
			v := mesh.Vertex(i)
			fmt.Fprintf(&out, "%g %g %g ", v.X, v.Y, v.Z)
		}
		out.WriteString("\n")
		for i := 0; i < mesh.TriangleCount(); i++ {
			a, b, c := mesh.Triangle(i)
			// BRep triangle node indices are 1-based.
			fmt.Fprintf(&out, "%d %d %d ", a+1, b+1, c+1)
		}
		out.WriteString("\n")
	}
	out.WriteString("\n")

	// TShape records are numbered from the bottom of the section: the last
	// record is 1. Order written: compound, solids, shells, faces.
	nFaces := 0
	for _, p := range tree {
		nFaces += len(p.faces)
	}
	total := 1 + 2*len(tree) + nFaces

	// Precompute record numbers.
	compoundNum := total
	solidNum := make([]int, len(tree))
	shellNum := make([]int, len(tree))
	faceNum := make([]int, nFaces)
	pos := 1 // position within the section, top-down
	for i := range tree {
		pos++
		solidNum[i] = total - pos + 1
	}
	for i := range tree {
		pos++
		shellNum[i] = total - pos + 1
	}
	fi := 0
	for _, p := range tree {
		for range p.faces {
			pos++
			faceNum[fi] = total - pos + 1
			fi++
		}
	}

	fmt.Fprintf(&out, "TShapes %d\n", total)

	// Compound of all solids.
	out.WriteString("Co\n")
	out.WriteString("1 0 0 1 0 0 0\n")
	for i := range tree {
		fmt.Fprintf(&out, "+%d 0 ", solidNum[i])
	}
	out.WriteString("*\n")

	// One solid per part.
	for i := range tree {
		out.WriteString("So\n")
		out.WriteString("0 1 0 1 1 0 0\n")
		fmt.Fprintf(&out, "+%d 0 *\n", shellNum[i])
	}

	// One shell per part, referencing its faces.
	fi = 0
	for _, p := range tree {
		out.WriteString("Sh\n")
		out.WriteString("0 1 0 1 1 0 0\n")
		for range p.faces {
			fmt.Fprintf(&out, "+%d 0 ", faceNum[fi])
			fi++
		}
		out.WriteString("*\n")
	}

	// Faces: no surface (0), triangulation reference on the "2" record.
	for _, p := range tree {
		for _, f := range p.faces {
			out.WriteString("Fa\n")
			out.WriteString("0  1e-07 0 0\n")
			fmt.Fprintf(&out, "2 %d\n", f.tri)
			out.WriteString("0 1 0 1 1 0 0\n")
			out.WriteString("*\n")
		}
	}

	fmt.Fprintf(&out, "\n+%d 0\n", compoundNum)
	return out.Bytes(), nil
}

// ExportBREP renders the parts and writes the file at path.
func ExportBREP(parts []Part, path string) error {
	data, err := RenderBREP(parts)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}
