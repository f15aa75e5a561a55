package bridge

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/spanforge/spanforge/pkg/config"
	"github.com/spanforge/spanforge/pkg/errors"
	"github.com/spanforge/spanforge/pkg/geom"
)

// Model orchestrates one bridge generation run. The sequence is fixed and
// linear: compute layout, create components, position them, assemble the
// compound. Any kernel failure aborts the run; there is no partial recovery.
type Model struct {
	params config.Parameters
	kernel geom.Kernel
	logger *log.Logger

	layout   *Layout
	girders  []*Girder
	deck     *Deck
	parapets []*Parapet
	assembly geom.Solid
}

// Option configures a Model.
type Option func(*Model)

// WithLogger attaches a logger for per-stage progress output. Without it the
// model stays silent.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// New creates a model for the given parameters and kernel. The parameters
// should already be validated; New does not re-validate.
func New(params config.Parameters, kernel geom.Kernel, opts ...Option) *Model {
	m := &Model{params: params, kernel: kernel}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	return m
}

// Params returns the parameter set the model was constructed with.
func (m *Model) Params() config.Parameters { return m.params }

// Layout returns the derived layout, computing it on first use and caching
// it for the rest of the model's life.
func (m *Model) Layout() Layout {
	if m.layout == nil {
		l := ComputeLayout(m.params)
		m.layout = &l
	}
	return *m.layout
}

// CreateComponents instantiates and geometrizes all parts: one girder per
// layout position, the deck slab, and two parapets. All solids are built at
// the local origin; PositionComponents moves them into place.
func (m *Model) CreateComponents() error {
	layout := m.Layout()

	m.girders = make([]*Girder, 0, len(layout.GirderY))
	for range layout.GirderY {
		g := &Girder{
			Depth:           m.params.Girder.Depth,
			FlangeWidth:     m.params.Girder.FlangeWidth,
			FlangeThickness: m.params.Girder.FlangeThickness,
			WebThickness:    m.params.Girder.WebThickness,
			Length:          m.params.Bridge.SpanLength,
		}
		if err := g.CreateGeometry(m.kernel); err != nil {
			return errors.Wrap(errors.ErrCodeKernel, err, "failed to create girder %d", len(m.girders))
		}
		m.girders = append(m.girders, g)
	}

	m.deck = &Deck{
		Width:     layout.DeckWidth,
		Thickness: m.params.Deck.Thickness,
		Length:    m.params.Bridge.SpanLength,
	}
	if err := m.deck.CreateGeometry(m.kernel); err != nil {
		return errors.Wrap(errors.ErrCodeKernel, err, "failed to create deck")
	}

	m.parapets = make([]*Parapet, 0, 2)
	for i := 0; i < 2; i++ {
		p := &Parapet{
			Width:  m.params.Parapet.Width,
			Height: m.params.Parapet.Height,
			Length: m.params.Bridge.SpanLength,
		}
		if err := p.CreateGeometry(m.kernel); err != nil {
			return errors.Wrap(errors.ErrCodeKernel, err, "failed to create parapet %d", i)
		}
		m.parapets = append(m.parapets, p)
	}

	m.logger.Debug("components created",
		"girders", len(m.girders), "deck", 1, "parapets", len(m.parapets))
	return nil
}

// PositionComponents translates each part into its final location:
//   - girder i to its layout Y position
//   - deck centered transversely, resting on the girder top flanges
//   - parapets on the deck surface at both slab edges
func (m *Model) PositionComponents() error {
	layout := m.Layout()

	for i, g := range m.girders {
		if err := g.Translate(m.kernel, geom.Vec3{Y: layout.GirderY[i]}); err != nil {
			return errors.Wrap(errors.ErrCodeKernel, err, "failed to position girder %d", i)
		}
	}

	if err := m.deck.Translate(m.kernel, geom.Vec3{Y: -layout.DeckWidth / 2, Z: layout.DeckZ}); err != nil {
		return errors.Wrap(errors.ErrCodeKernel, err, "failed to position deck")
	}

	parapetZ := layout.DeckZ + m.params.Deck.Thickness
	halfW := layout.DeckWidth / 2
	offsets := []float64{
		-halfW - m.params.Parapet.Width/2,
		halfW - m.params.Parapet.Width/2,
	}
	for i, p := range m.parapets {
		if err := p.Translate(m.kernel, geom.Vec3{Y: offsets[i], Z: parapetZ}); err != nil {
			return errors.Wrap(errors.ErrCodeKernel, err, "failed to position parapet %d", i)
		}
	}

	m.logger.Debug("components positioned",
		"deck_width", layout.DeckWidth, "deck_z", layout.DeckZ, "parapet_z", parapetZ)
	return nil
}

// Assemble groups all positioned solids into one compound in component order:
// girders, deck, parapets. The per-part handles stay addressable through
// Components for styling and export naming.
func (m *Model) Assemble() error {
	solids := make([]geom.Solid, 0, len(m.girders)+1+len(m.parapets))
	for _, c := range m.Components() {
		solids = append(solids, c.Solid())
	}

	compound, err := m.kernel.Compound(solids...)
	if err != nil {
		return errors.Wrap(errors.ErrCodeKernel, err, "failed to assemble compound")
	}
	m.assembly = compound

	m.logger.Debug("assembly built", "solids", len(solids))
	return nil
}

// Build runs the full sequence: layout, creation, positioning, assembly.
func (m *Model) Build() error {
	layout := m.Layout()
	m.logger.Debug("layout computed",
		"deck_width", layout.DeckWidth,
		"girders", len(layout.GirderY),
		"deck_z", layout.DeckZ,
		"skew_deg", layout.SkewAngle)

	if err := m.CreateComponents(); err != nil {
		return err
	}
	if err := m.PositionComponents(); err != nil {
		return err
	}
	return m.Assemble()
}

// Components returns all parts in assembly order: girders, deck, parapets.
func (m *Model) Components() []Component {
	out := make([]Component, 0, len(m.girders)+1+len(m.parapets))
	for _, g := range m.girders {
		out = append(out, g)
	}
	if m.deck != nil {
		out = append(out, m.deck)
	}
	for _, p := range m.parapets {
		out = append(out, p)
	}
	return out
}

// Assembly returns the compound handle, or nil before Assemble.
func (m *Model) Assembly() geom.Solid { return m.assembly }
