package export

import (
	"bytes"
	"fmt"
)

// RenderOBJ encodes the parts as a Wavefront OBJ file, one group per part.
// Vertex indices are global and 1-based per the format.
func RenderOBJ(parts []Part) ([]byte, error) {
	var out bytes.Buffer
	out.WriteString("# spanforge bridge model\n")

	offset := 1
	for _, p := range parts {
		sh, err := shells(p)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&out, "g %s\n", p.Name)
		for _, mesh := range sh {
			for i := 0; i < mesh.VertexCount(); i++ {
				v := mesh.Vertex(i)
				fmt.Fprintf(&out, "v %g %g %g\n", v.X, v.Y, v.Z)
			}
			for i := 0; i < mesh.TriangleCount(); i++ {
				a, b, c := mesh.Triangle(i)
				fmt.Fprintf(&out, "f %d %d %d\n", offset+int(a), offset+int(b), offset+int(c))
			}
			offset += mesh.VertexCount()
		}
	}
	return out.Bytes(), nil
}

// ExportOBJ renders the parts and writes the file at path.
func ExportOBJ(parts []Part, path string) error {
	data, err := RenderOBJ(parts)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}
