package bridge

import (
	"github.com/spanforge/spanforge/pkg/geom"
)

// Kind identifies a component type, used for display colors and export names.
type Kind string

const (
	KindGirder  Kind = "girder"
	KindDeck    Kind = "deck"
	KindParapet Kind = "parapet"
)

// Component is a bridge part holding the parameters needed to request one
// solid from the kernel, plus the handle to that solid once built. The handle
// is set by CreateGeometry and replaced by each transform; readers never take
// ownership.
type Component interface {
	Kind() Kind

	// CreateGeometry builds the part's solid. Calling it again rebuilds the
	// solid at the local origin, discarding any applied transforms.
	CreateGeometry(k geom.Kernel) error

	// Solid returns the current handle, or nil before CreateGeometry.
	Solid() geom.Solid
}

// Translatable is implemented by components that can be moved into position.
type Translatable interface {
	Translate(k geom.Kernel, v geom.Vec3) error
}

// Rotatable is implemented by components that can be rotated about an axis.
// The assembly sequence never rotates anything (the skew angle is carried but
// unapplied); the capability exists for callers that decide otherwise.
type Rotatable interface {
	Rotate(k geom.Kernel, axis geom.Axis, angleDeg float64) error
}

// Girder is a longitudinal steel girder with an I-shaped cross-section,
// extruded along the span (X axis). The section sits with its bottom flange
// on Z=0 and its flange width along Y.
type Girder struct {
	Depth           float64
	FlangeWidth     float64
	FlangeThickness float64
	WebThickness    float64
	Length          float64

	solid geom.Solid
}

func (g *Girder) Kind() Kind        { return KindGirder }
func (g *Girder) Solid() geom.Solid { return g.solid }

// CreateGeometry builds the I-section from three boxes: bottom flange, top
// flange lifted to depth-tf, and the web centered between them.
func (g *Girder) CreateGeometry(k geom.Kernel) error {
	webHeight := g.Depth - 2*g.FlangeThickness

	bottom, err := k.MakeBox(g.Length, g.FlangeWidth, g.FlangeThickness)
	if err != nil {
		return err
	}

	top, err := k.MakeBox(g.Length, g.FlangeWidth, g.FlangeThickness)
	if err != nil {
		return err
	}
	top, err = k.Translate(top, geom.Vec3{Z: g.Depth - g.FlangeThickness})
	if err != nil {
		return err
	}

	web, err := k.MakeBox(g.Length, g.WebThickness, webHeight)
	if err != nil {
		return err
	}
	web, err = k.Translate(web, geom.Vec3{Y: (g.FlangeWidth - g.WebThickness) / 2, Z: g.FlangeThickness})
	if err != nil {
		return err
	}

	shape, err := k.Fuse(bottom, top)
	if err != nil {
		return err
	}
	shape, err = k.Fuse(shape, web)
	if err != nil {
		return err
	}

	g.solid = shape
	return nil
}

func (g *Girder) Translate(k geom.Kernel, v geom.Vec3) error {
	s, err := k.Translate(g.solid, v)
	if err != nil {
		return err
	}
	g.solid = s
	return nil
}

func (g *Girder) Rotate(k geom.Kernel, axis geom.Axis, angleDeg float64) error {
	s, err := k.Rotate(g.solid, axis, angleDeg)
	if err != nil {
		return err
	}
	g.solid = s
	return nil
}

// Deck is the concrete deck slab: a rectangular prism extruded along the
// span, width along Y and thickness along Z.
type Deck struct {
	Width     float64
	Thickness float64
	Length    float64

	solid geom.Solid
}

func (d *Deck) Kind() Kind        { return KindDeck }
func (d *Deck) Solid() geom.Solid { return d.solid }

func (d *Deck) CreateGeometry(k geom.Kernel) error {
	s, err := k.MakeBox(d.Length, d.Width, d.Thickness)
	if err != nil {
		return err
	}
	d.solid = s
	return nil
}

func (d *Deck) Translate(k geom.Kernel, v geom.Vec3) error {
	s, err := k.Translate(d.solid, v)
	if err != nil {
		return err
	}
	d.solid = s
	return nil
}

// Parapet is an edge safety barrier: a rectangular prism extruded along the
// span, width along Y and height along Z.
type Parapet struct {
	Width  float64
	Height float64
	Length float64

	solid geom.Solid
}

func (p *Parapet) Kind() Kind        { return KindParapet }
func (p *Parapet) Solid() geom.Solid { return p.solid }

func (p *Parapet) CreateGeometry(k geom.Kernel) error {
	s, err := k.MakeBox(p.Length, p.Width, p.Height)
	if err != nil {
		return err
	}
	p.solid = s
	return nil
}

func (p *Parapet) Translate(k geom.Kernel, v geom.Vec3) error {
	s, err := k.Translate(p.solid, v)
	if err != nil {
		return err
	}
	p.solid = s
	return nil
}
