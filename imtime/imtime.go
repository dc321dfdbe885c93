package imtime

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/Thoemi09/godlr/grid"
	"github.com/Thoemi09/godlr/kernel"
	"github.com/Thoemi09/godlr/pivgs"
)

// effZeroTol stands in for "no tolerance cut": node selection must run to
// the full basis rank, so the cut threshold is pushed below any residual
// norm that can occur in double precision.
const effZeroTol = 1e-100

// Ops is an imaginary-time DLR representation: r interpolation nodes in
// relative time format together with the factorized r×r transform between
// node values and DLR coefficients. Construct with New or FromParts; the
// zero value is not usable. Safe for concurrent reads after construction.
type Ops struct {
	lambda float64
	rf     []float64 // basis frequencies, ascending
	nodes  []float64 // interpolation nodes, relative format, ascending pivot order
	cf2it  *mat.Dense
	lu     mat.LU
}

// Option configures node selection in New.
type Option func(*options)

type options struct {
	symmetrized bool
	panelOrder  int
}

// WithSymmetrized selects nodes in reflection pairs τ ↔ 1-τ (relative
// format: index pairing on the mirrored fine grid). Use together with a
// symmetrized frequency basis.
func WithSymmetrized() Option {
	return func(o *options) { o.symmetrized = true }
}

// WithPanelOrder overrides the fine-grid panel order used during node
// selection (default grid.DefaultPanelOrder).
func WithPanelOrder(p int) Option {
	return func(o *options) { o.panelOrder = p }
}

// New builds an imaginary-time representation for the given cutoff and
// basis frequencies rf (as returned by basis.Frequencies).
//
// Node selection tabulates the kernel on the fine time grid against rf and
// runs pivoted Gram-Schmidt on the time rows at effectively zero tolerance,
// so exactly r = len(rf) rows are picked; the pivot rows become the
// interpolation nodes and, restricted to the pivots, the kernel matrix
// becomes the coefficients→values map, which is LU-factorized once here.
//
// Errors: ErrEmptyBasis, grid.ErrNonPositiveLambda, grid.ErrNonPositiveOrder,
// ErrDegenerateBasis.
func New(lambda float64, rf []float64, opts ...Option) (*Ops, error) {
	if len(rf) == 0 {
		return nil, ErrEmptyBasis
	}
	o := options{panelOrder: grid.DefaultPanelOrder}
	for _, opt := range opts {
		opt(&o)
	}

	fp, err := grid.NewFineParams(lambda, grid.WithPanelOrder(o.panelOrder))
	if err != nil {
		return nil, err
	}
	t, _ := grid.TimeGrid(fp)
	kmat := kernel.MatrixIt(t, rf)

	var res *pivgs.Result
	if o.symmetrized {
		res, err = pivgs.DecomposeSym(kmat, effZeroTol)
	} else {
		res, err = pivgs.Decompose(kmat, effZeroTol)
	}
	if err != nil {
		return nil, err
	}
	r := len(rf)
	if res.Rank() != r {
		return nil, ErrDegenerateBasis
	}

	piv := append([]int(nil), res.Pivots...)
	sort.Ints(piv)

	nodes := make([]float64, r)
	cf2it := mat.NewDense(r, r, nil)
	for i, p := range piv {
		nodes[i] = t[p]
		for j := 0; j < r; j++ {
			cf2it.Set(i, j, kmat.At(p, j))
		}
	}

	return fromArtifacts(lambda, append([]float64(nil), rf...), nodes, cf2it)
}

// FromParts rebuilds a representation from persisted artifacts: the cutoff,
// the basis frequencies, the interpolation nodes (relative format) and the
// r×r coefficients→values matrix, exactly as returned by the accessors of a
// live Ops. Node selection is not repeated; only the small LU factorization
// is redone.
func FromParts(lambda float64, rf, nodes []float64, cf2it *mat.Dense) (*Ops, error) {
	if lambda <= 0 {
		return nil, grid.ErrNonPositiveLambda
	}
	if len(rf) == 0 {
		return nil, ErrEmptyBasis
	}
	if cf2it == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := cf2it.Dims()
	if len(nodes) != len(rf) || rows != len(rf) || cols != len(rf) {
		return nil, ErrRankMismatch
	}

	return fromArtifacts(lambda,
		append([]float64(nil), rf...),
		append([]float64(nil), nodes...),
		mat.DenseCopyOf(cf2it))
}

// fromArtifacts assembles an Ops from owned slices and matrix, factorizing
// the transform. A singular transform means the artifacts are inconsistent.
func fromArtifacts(lambda float64, rf, nodes []float64, cf2it *mat.Dense) (*Ops, error) {
	o := &Ops{lambda: lambda, rf: rf, nodes: nodes, cf2it: cf2it}
	o.lu.Factorize(cf2it)
	if c := o.lu.Cond(); math.IsInf(c, 1) || math.IsNaN(c) {
		return nil, ErrDegenerateBasis
	}

	return o, nil
}

// Rank returns the number of basis frequencies (and nodes).
func (o *Ops) Rank() int { return len(o.rf) }

// Lambda returns the dimensionless energy cutoff the representation was
// built for.
func (o *Ops) Lambda() float64 { return o.lambda }

// Nodes returns a copy of the interpolation nodes in relative time format.
func (o *Ops) Nodes() []float64 { return append([]float64(nil), o.nodes...) }

// RealFrequencies returns a copy of the basis frequencies.
func (o *Ops) RealFrequencies() []float64 { return append([]float64(nil), o.rf...) }

// Coefs2ValsMatrix returns a copy of the r×r coefficients→values matrix.
// Together with Lambda, RealFrequencies and Nodes it is everything FromParts
// needs.
func (o *Ops) Coefs2ValsMatrix() *mat.Dense { return mat.DenseCopyOf(o.cf2it) }

// Absolute converts a relative-format time point to absolute format in
// [0,1): negative values map to t+1.
func Absolute(t float64) float64 {
	if t < 0 {
		return t + 1
	}

	return t
}

// Relative converts an absolute time point in [0,1) to relative format:
// values above 1/2 map to t-1.
func Relative(t float64) float64 {
	if t > 0.5 {
		return t - 1
	}

	return t
}
