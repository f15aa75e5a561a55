package render

import (
	"testing"

	"github.com/spanforge/spanforge/pkg/errors"
	"github.com/spanforge/spanforge/pkg/geom"
	"github.com/spanforge/spanforge/pkg/geom/meshkern"
)

// testScene is a deck slab over one girder, enough to distinguish the
// projections.
func testScene(t *testing.T) Scene {
	t.Helper()
	k := meshkern.New()

	girder, err := k.MakeBox(12000, 300, 900)
	if err != nil {
		t.Fatal(err)
	}
	deckBox, err := k.MakeBox(12000, 7000, 200)
	if err != nil {
		t.Fatal(err)
	}
	deck, err := k.Translate(deckBox, geom.Vec3{Y: -3500, Z: 900})
	if err != nil {
		t.Fatal(err)
	}

	return Scene{
		Items: []Item{
			{Label: "girder_1", Solid: girder, Color: geom.RGB{R: 0.7, G: 0.7, B: 0.75}},
			{Label: "deck", Solid: deck, Color: geom.RGB{R: 0.8, G: 0.8, B: 0.8}},
		},
		Background: geom.RGB{R: 1, G: 1, B: 1},
		ShowAxes:   true,
	}
}

func TestProjections(t *testing.T) {
	want := []string{"elevation", "plan", "section"}
	got := Projections()
	if len(got) != len(want) {
		t.Fatalf("Projections() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Projections()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestValidateProjection(t *testing.T) {
	for _, p := range Projections() {
		if err := ValidateProjection(p); err != nil {
			t.Errorf("ValidateProjection(%q) = %v", p, err)
		}
	}
	if err := ValidateProjection("isometric"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ValidateProjection(isometric) = %v, want invalid format error", err)
	}
}

func TestProjectionAxisLabels(t *testing.T) {
	tests := []struct {
		p    Projection
		h, v string
	}{
		{Elevation, "X (mm)", "Z (mm)"},
		{Plan, "X (mm)", "Y (mm)"},
		{Section, "Y (mm)", "Z (mm)"},
	}
	for _, tt := range tests {
		h, v := tt.p.AxisLabels()
		if h != tt.h || v != tt.v {
			t.Errorf("%s labels = %q/%q, want %q/%q", tt.p, h, v, tt.h, tt.v)
		}
	}
}

func TestProjectionProject(t *testing.T) {
	v := geom.Vec3{X: 1, Y: 2, Z: 3}

	tests := []struct {
		p    Projection
		h, w float64
	}{
		{Elevation, 1, 3},
		{Plan, 1, 2},
		{Section, 2, 3},
	}
	for _, tt := range tests {
		h, w := tt.p.project(v)
		if h != tt.h || w != tt.w {
			t.Errorf("%s.project = %g,%g, want %g,%g", tt.p, h, w, tt.h, tt.w)
		}
	}
}

func TestSceneRects(t *testing.T) {
	s := testScene(t)

	rects := sceneRects(s, Section)
	if len(rects) != 2 {
		t.Fatalf("len(rects) = %d, want 2 (one shell each)", len(rects))
	}

	// In section the girder box spans Y 0..300, Z 0..900.
	g := rects[0]
	if g.x0 != 0 || g.x1 != 300 || g.y0 != 0 || g.y1 != 900 {
		t.Errorf("girder section rect = %+v", g)
	}

	d := rects[1]
	if d.x0 != -3500 || d.x1 != 3500 || d.y0 != 900 || d.y1 != 1100 {
		t.Errorf("deck section rect = %+v", d)
	}
}

func TestSceneRectsSkipsNilSolids(t *testing.T) {
	s := Scene{Items: []Item{{Label: "ghost"}}}
	if rects := sceneRects(s, Elevation); len(rects) != 0 {
		t.Errorf("len(rects) = %d, want 0", len(rects))
	}
}

func TestSceneBounds(t *testing.T) {
	rects := []rect{
		{x0: -10, y0: 0, x1: 5, y1: 3},
		{x0: 0, y0: -2, x1: 20, y1: 1},
	}
	x0, y0, x1, y1 := sceneBounds(rects)
	if x0 != -10 || y0 != -2 || x1 != 20 || y1 != 3 {
		t.Errorf("sceneBounds = %g,%g,%g,%g", x0, y0, x1, y1)
	}

	x0, y0, x1, y1 = sceneBounds(nil)
	if x0 != 0 || y0 != 0 || x1 != 0 || y1 != 0 {
		t.Error("empty scene bounds should be zeros")
	}
}

func TestFrame(t *testing.T) {
	s := testScene(t)
	f := Frame(s, Section)

	if f.Empty() {
		t.Fatal("frame should not be empty")
	}
	if len(f.Rects()) != 2 {
		t.Fatalf("len(Rects) = %d, want 2", len(f.Rects()))
	}

	if f.MinH() != -3500 || f.MinV() != 0 {
		t.Errorf("frame origin = %g,%g, want -3500,0", f.MinH(), f.MinV())
	}
	if f.SpanH() != 7000 || f.SpanV() != 1100 {
		t.Errorf("frame span = %g,%g, want 7000,1100", f.SpanH(), f.SpanV())
	}

	r := f.Rects()[1]
	if r.Label != "deck" || r.MinV != 900 || r.MaxV != 1100 {
		t.Errorf("deck rect = %+v", r)
	}
}

func TestFrameSpansNeverZero(t *testing.T) {
	var f ProjectionFrame
	if f.SpanH() < 1 || f.SpanV() < 1 {
		t.Errorf("empty frame spans = %g,%g, want at least 1", f.SpanH(), f.SpanV())
	}
	if !f.Empty() {
		t.Error("zero frame should be empty")
	}
}
