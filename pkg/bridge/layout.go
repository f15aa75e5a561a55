// Package bridge generates a simplified steel-girder highway bridge as solid
// geometry: n girders carrying a deck slab with a parapet along each edge.
//
// The package contributes layout arithmetic, component descriptors and the
// fixed assembly sequence; all solid modeling is delegated to a geom.Kernel.
package bridge

import "github.com/spanforge/spanforge/pkg/config"

// Layout holds the geometry derived from the parameter set.
type Layout struct {
	// DeckWidth is the transverse slab width:
	// spacing*(girderCount-1) + 2*overhang.
	DeckWidth float64

	// GirderY lists the transverse girder positions, centered about the
	// longitudinal axis (Y=0), strictly increasing by the spacing.
	GirderY []float64

	// DeckZ is the deck underside elevation; the slab rests on the girder
	// top flanges, so this equals the girder section depth.
	DeckZ float64

	// SkewAngle is carried through from the parameters for reporting. It is
	// never applied to any solid.
	SkewAngle float64
}

// ComputeLayout derives the bridge layout from the parameter set. It is a
// pure function: same parameters, same layout, no side effects.
//
// The function is deliberately permissive: a girder count of zero yields an
// empty position list and a degenerate deck width. Rejecting such input is
// the caller's job (config.Parameters.Validate), keeping the formulas here
// exact for all inputs.
func ComputeLayout(p config.Parameters) Layout {
	n := p.Bridge.GirderCount
	spacing := p.Bridge.GirderSpacing

	l := Layout{
		DeckWidth: spacing*float64(n-1) + 2*p.Bridge.DeckOverhang,
		DeckZ:     p.Girder.Depth,
		SkewAngle: p.Bridge.SkewAngle,
	}

	if n > 0 {
		l.GirderY = make([]float64, n)
		start := -spacing * float64(n-1) / 2
		for i := 0; i < n; i++ {
			l.GirderY[i] = start + float64(i)*spacing
		}
	}

	return l
}
