package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderBREPStructure(t *testing.T) {
	data, err := RenderBREP(testParts(t))
	if err != nil {
		t.Fatalf("RenderBREP error = %v", err)
	}
	s := string(data)

	if !strings.HasPrefix(s, "DBRep_DrawableShape\n") {
		t.Error("missing DBRep_DrawableShape header")
	}
	if !strings.Contains(s, "CASCADE Topology V1") {
		t.Error("missing topology version line")
	}

	// Triangulation-only shape class: analytic geometry sections are empty.
	for _, line := range []string{
		"Locations 0\n",
		"Curve2ds 0\n",
		"Curves 0\n",
		"Surfaces 0\n",
	} {
		if !strings.Contains(s, line) {
			t.Errorf("missing section %q", strings.TrimSpace(line))
		}
	}

	// Two single-shell boxes: two triangulations with 8 nodes, 12 triangles.
	if !strings.Contains(s, "Triangulations 2\n") {
		t.Error("missing Triangulations 2")
	}
	if n := strings.Count(s, "8 12 0\n"); n != 2 {
		t.Errorf("triangulation headers = %d, want 2", n)
	}

	// Topology: 1 compound + 2 solids + 2 shells + 2 faces.
	if !strings.Contains(s, "TShapes 7\n") {
		t.Error("missing TShapes 7")
	}
	if n := strings.Count(s, "Co\n"); n != 1 {
		t.Errorf("Co records = %d, want 1", n)
	}
	if n := strings.Count(s, "So\n"); n != 2 {
		t.Errorf("So records = %d, want 2", n)
	}
	if n := strings.Count(s, "Sh\n"); n != 2 {
		t.Errorf("Sh records = %d, want 2", n)
	}
	if n := strings.Count(s, "Fa\n"); n != 2 {
		t.Errorf("Fa records = %d, want 2", n)
	}

	// The final reference points at the compound record, numbered from the
	// bottom of the section.
	if !strings.HasSuffix(s, "\n+7 0\n") {
		t.Errorf("output should end with the compound reference, got %q", s[len(s)-20:])
	}
}

func TestRenderBREPTriangleIndicesAreOneBased(t *testing.T) {
	data, err := RenderBREP(testParts(t)[:1])
	if err != nil {
		t.Fatal(err)
	}
	// A box indexes vertices 1..8; node index 0 must never appear in the
	// triangle rows. The first triangle of the box mesh is (1, 3, 2).
	if !strings.Contains(string(data), "1 3 2 ") {
		t.Error("expected first triangle row to start with 1-based indices 1 3 2")
	}
}

func TestExportBREP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bridge.brep")
	if err := ExportBREP(testParts(t), path); err != nil {
		t.Fatalf("ExportBREP error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "DBRep_DrawableShape") {
		t.Error("written file does not look like BRep output")
	}
}
