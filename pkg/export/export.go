// Package export writes the assembled bridge to CAD interchange files.
//
// Each format lives in its own file with a RenderX function producing the
// encoded bytes and an ExportX convenience wrapper writing them to disk,
// mirroring the render-sink layout of the rest of the codebase. Writers
// consume solids through the geom.Triangulated view; they never reach into a
// kernel implementation.
package export

import (
	"os"

	"github.com/spanforge/spanforge/pkg/errors"
	"github.com/spanforge/spanforge/pkg/geom"
)

// Part pairs a solid with a stable name for export. Compound children are
// exported as separate parts so downstream tools keep them addressable.
type Part struct {
	Name  string
	Solid geom.Solid
	Color geom.RGB
}

// Formats lists the supported export format names.
func Formats() []string {
	return []string{"step", "brep", "obj"}
}

// ValidateFormat checks that format names a supported exporter.
func ValidateFormat(format string) error {
	return errors.ValidateFormatName(format, Formats())
}

// shells extracts the triangulated boundary of a part, failing with a typed
// error when the solid's kernel does not expose one.
func shells(p Part) ([]*geom.Mesh, error) {
	if p.Solid == nil {
		return nil, errors.New(errors.ErrCodeExport, "part %q has no solid", p.Name)
	}
	t, ok := p.Solid.(geom.Triangulated)
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupported, "part %q: solid %s exposes no triangulation", p.Name, p.Solid.ID())
	}
	sh := t.Shells()
	if len(sh) == 0 {
		return nil, errors.New(errors.ErrCodeExport, "part %q has an empty boundary", p.Name)
	}
	return sh, nil
}

// writeFile writes data to path, wrapping failures with an export error.
func writeFile(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeExport, err, "failed to write %s", path)
	}
	return nil
}
