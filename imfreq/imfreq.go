package imfreq

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/Thoemi09/godlr/grid"
	"github.com/Thoemi09/godlr/kernel"
	"github.com/Thoemi09/godlr/pivgs"
)

// effZeroTol stands in for "no tolerance cut" in plain node selection, as
// in package imtime.
const effZeroTol = 1e-100

// Ops is a Matsubara-frequency DLR representation: sampling indices n (so
// the sampling points are iν_n with ν_n = (2n+ζ)π/β) together with the
// values↔coefficients system. Construct with New or FromParts; the zero
// value is not usable. Safe for concurrent reads after construction.
//
// Complex linear solves run through a real LU of the 2r×2r block embedding
// [[Re,-Im],[Im,Re]], factorized once at construction.
type Ops struct {
	lambda float64
	stat   kernel.Statistic
	rf     []float64 // basis frequencies, ascending
	nodes  []int     // sampling indices, ascending
	cf2if  *mat.CDense
	lu     mat.LU // of the real embedding; unused when evaluation-only
	eval   bool   // evaluation-only: more nodes than coefficients
}

// Option configures node selection in New.
type Option func(*options)

type options struct {
	symmetrized bool
	panelOrder  int
}

// WithSymmetrized selects sampling indices in reflection pairs (n ↔ -n-1
// fermionic, n ↔ -n bosonic). For bosons this makes the representation
// evaluation-only: see the package comment.
func WithSymmetrized() Option {
	return func(o *options) { o.symmetrized = true }
}

// WithPanelOrder overrides the fine-grid panel order used to derive the
// index window half-width n_max (default grid.DefaultPanelOrder).
func WithPanelOrder(p int) Option {
	return func(o *options) { o.panelOrder = p }
}

// New builds a Matsubara-frequency representation for the given cutoff,
// basis frequencies rf and statistic.
//
// The kernel is tabulated over the dense index window (2·n_max rows for
// fermions, 2·n_max+1 for bosons) against rf, and pivoted Gram-Schmidt
// picks the sampling rows: tolerance mode at effectively zero tolerance in
// the plain case, fixed-count symmetric mode when symmetrized. The pivot
// rows form the coefficients→values matrix; when it is square its real
// embedding is LU-factorized here.
//
// Errors: ErrEmptyBasis, grid.ErrNonPositiveLambda, grid.ErrNonPositiveOrder,
// ErrDegenerateBasis.
func New(lambda float64, rf []float64, s kernel.Statistic, opts ...Option) (*Ops, error) {
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
	kmat := kernel.MatrixIf(fp.NMax, rf, s)

	r := len(rf)
	niom := r
	if o.symmetrized && s == kernel.Boson {
		// Pairing n ↔ -n fixes n=0, so covering r frequencies in pairs
		// costs one extra index.
		niom = r + 1
	}

	var res *pivgs.CResult
	if o.symmetrized {
		res, err = pivgs.DecomposeCmplxSymRank(kmat, niom)
	} else {
		res, err = pivgs.DecomposeCmplx(kmat, effZeroTol)
	}
	if err != nil {
		return nil, err
	}
	if res.Rank() != niom {
		return nil, ErrDegenerateBasis
	}

	piv := append([]int(nil), res.Pivots...)
	sort.Ints(piv)

	nodes := make([]int, niom)
	cf2if := mat.NewCDense(niom, r, nil)
	for i, p := range piv {
		nodes[i] = p - fp.NMax
		for j := 0; j < r; j++ {
			cf2if.Set(i, j, kmat.At(p, j))
		}
	}

	return fromArtifacts(lambda, s, append([]float64(nil), rf...), nodes, cf2if)
}

// FromParts rebuilds a representation from persisted artifacts, exactly as
// returned by the accessors of a live Ops. Node selection is not repeated;
// only the small LU factorization is redone (and skipped entirely for an
// evaluation-only representation).
func FromParts(lambda float64, rf []float64, s kernel.Statistic, nodes []int, cf2if *mat.CDense) (*Ops, error) {
	if lambda <= 0 {
		return nil, grid.ErrNonPositiveLambda
	}
	if len(rf) == 0 {
		return nil, ErrEmptyBasis
	}
	if cf2if == nil {
		return nil, ErrNilMatrix
	}
	r := len(rf)
	niom := len(nodes)
	if niom != r && !(niom == r+1 && s == kernel.Boson) {
		return nil, ErrRankMismatch
	}
	if rows, cols := cf2if.Dims(); rows != niom || cols != r {
		return nil, ErrRankMismatch
	}

	return fromArtifacts(lambda, s,
		append([]float64(nil), rf...),
		append([]int(nil), nodes...),
		copyCDense(cf2if))
}

func fromArtifacts(lambda float64, s kernel.Statistic, rf []float64, nodes []int, cf2if *mat.CDense) (*Ops, error) {
	o := &Ops{lambda: lambda, stat: s, rf: rf, nodes: nodes, cf2if: cf2if}
	if len(nodes) != len(rf) {
		o.eval = true

		return o, nil
	}

	o.lu.Factorize(embedReal(cf2if))
	if c := o.lu.Cond(); math.IsInf(c, 1) || math.IsNaN(c) {
		return nil, ErrDegenerateBasis
	}

	return o, nil
}

// embedReal maps an r×r complex matrix A to the 2r×2r real block matrix
// [[Re A, -Im A], [Im A, Re A]]; solving with it is equivalent to solving
// with A on stacked real and imaginary parts.
func embedReal(a *mat.CDense) *mat.Dense {
	r, _ := a.Dims()
	b := mat.NewDense(2*r, 2*r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			v := a.At(i, j)
			b.Set(i, j, real(v))
			b.Set(i, j+r, -imag(v))
			b.Set(i+r, j, imag(v))
			b.Set(i+r, j+r, real(v))
		}
	}

	return b
}

func copyCDense(a *mat.CDense) *mat.CDense {
	r, c := a.Dims()
	out := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, a.At(i, j))
		}
	}

	return out
}

// Rank returns the number of basis frequencies (coefficients).
func (o *Ops) Rank() int { return len(o.rf) }

// NodeCount returns the number of sampling indices; equal to Rank except
// for the symmetrized bosonic case, where it is Rank+1.
func (o *Ops) NodeCount() int { return len(o.nodes) }

// EvaluationOnly reports whether the representation has more nodes than
// coefficients, in which case Vals2Coefs is unavailable.
func (o *Ops) EvaluationOnly() bool { return o.eval }

// Lambda returns the dimensionless energy cutoff the representation was
// built for.
func (o *Ops) Lambda() float64 { return o.lambda }

// Statistic returns the particle statistic of the sampling indices.
func (o *Ops) Statistic() kernel.Statistic { return o.stat }

// Nodes returns a copy of the sampling indices n; the sampling points are
// iν_n with ν_n = (2n+ζ)π/β.
func (o *Ops) Nodes() []int { return append([]int(nil), o.nodes...) }

// RealFrequencies returns a copy of the basis frequencies.
func (o *Ops) RealFrequencies() []float64 { return append([]float64(nil), o.rf...) }

// Coefs2ValsMatrix returns a copy of the coefficients→values matrix
// (NodeCount×Rank, dimensionless). Together with Lambda, RealFrequencies,
// Statistic and Nodes it is everything FromParts needs.
func (o *Ops) Coefs2ValsMatrix() *mat.CDense { return copyCDense(o.cf2if) }
