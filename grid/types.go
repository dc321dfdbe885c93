package grid

import (
	"math"
)

// DefaultPanelOrder is the number of quadrature nodes per panel.
// The value 24 is empirical: together with the dyadic panel layout it
// discretizes the kernel to double machine precision for practical Λ.
const DefaultPanelOrder = 24

// minFrequencyCutoff is the floor applied to the Matsubara index cutoff
// NMax = max(⌈Λ⌉, minFrequencyCutoff). Empirical, like the panel order.
const minFrequencyCutoff = 20

// FineParams collects the derived parameters of the fine composite grids
// for a cutoff Λ and panel order p. Immutable once constructed.
type FineParams struct {
	// Lambda is the DLR cutoff parameter (dimensionless, Λ = β·ωmax).
	Lambda float64
	// P is the quadrature order per panel.
	P int
	// NMax is the Matsubara frequency index cutoff.
	NMax int
	// PanelsOmega is the number of panels on (0,Λ]; the full frequency grid
	// has twice as many after antisymmetric mirroring.
	PanelsOmega int
	// PanelsTime is the number of panels on (0,1/2]; the full time grid has
	// twice as many after mirroring.
	PanelsTime int
	// NOmega is the total fine frequency grid size: 2·P·PanelsOmega.
	NOmega int
	// NTime is the total fine time grid size: 2·P·PanelsTime.
	NTime int
}

// Option configures fine-grid construction.
type Option func(*options)

type options struct {
	panelOrder int
}

// WithPanelOrder overrides the per-panel quadrature order (default 24).
// The value is validated in NewFineParams, not here.
func WithPanelOrder(p int) Option {
	return func(o *options) { o.panelOrder = p }
}

// NewFineParams derives the fine composite grid parameters for cutoff
// lambda. Fails fast with ErrNonPositiveLambda or ErrNonPositiveOrder;
// no other failure mode exists.
//
// Derivations (reference-implementation values, kept verbatim):
//
//	NMax        = max(⌈Λ⌉, 20)
//	PanelsOmega = max(⌈log2 Λ⌉, 1)
//	PanelsTime  = max(⌈log2 Λ⌉ - 2, 1)
func NewFineParams(lambda float64, opts ...Option) (FineParams, error) {
	o := options{panelOrder: DefaultPanelOrder}
	for _, opt := range opts {
		opt(&o)
	}

	if lambda <= 0 {
		return FineParams{}, ErrNonPositiveLambda
	}
	if o.panelOrder <= 0 {
		return FineParams{}, ErrNonPositiveOrder
	}

	p := o.panelOrder
	npom := int(math.Max(math.Ceil(math.Log2(lambda)), 1))
	npt := int(math.Max(math.Ceil(math.Log2(lambda))-2, 1))

	return FineParams{
		Lambda:      lambda,
		P:           p,
		NMax:        int(math.Max(math.Ceil(lambda), minFrequencyCutoff)),
		PanelsOmega: npom,
		PanelsTime:  npt,
		NOmega:      2 * p * npom,
		NTime:       2 * p * npt,
	}, nil
}
