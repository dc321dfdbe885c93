package basis

import (
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/Thoemi09/godlr/grid"
	"github.com/Thoemi09/godlr/kernel"
	"github.com/Thoemi09/godlr/pivgs"
)

// EpsWarnThreshold is the tolerance below which rank discovery becomes
// unstable: the residual norms being compared sit at the rounding floor of
// the Gram-Schmidt sweep, so the tolerance cut may land anywhere inside the
// noise plateau.
const EpsWarnThreshold = 1e-14

// logger carries the package's only side channel: the precision-risk
// warning of Frequencies. Default: console writer on stderr.
var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger()

// SetLogger replaces the package logger. Intended for embedding godlr into
// an application with its own zerolog sink, and for tests.
func SetLogger(l zerolog.Logger) { logger = l }

// Option configures basis construction.
type Option func(*options)

type options struct {
	symmetrized bool
	panelOrder  int
}

// WithSymmetrized switches to the symmetrized construction: basis
// frequencies are selected in sign pairs ω ↔ -ω. Required for certain
// bosonic use cases; slightly larger rank for the same tolerance.
func WithSymmetrized() Option {
	return func(o *options) { o.symmetrized = true }
}

// WithPanelOrder overrides the fine-grid panel order (default
// grid.DefaultPanelOrder). Validation happens in grid.NewFineParams.
func WithPanelOrder(p int) Option {
	return func(o *options) { o.panelOrder = p }
}

// Frequencies returns the DLR basis frequencies for cutoff lambda and
// accuracy eps, sorted ascending.
//
// Pipeline (fine grids and kernel matrices are scratch data, discarded on
// return):
//  1. derive fine-grid parameters for lambda (fails fast on lambda ≤ 0);
//  2. build the fine time grid with weights and the fine frequency grid;
//  3. tabulate the weighted kernel matrix (time rows × frequency columns);
//  4. pivoted Gram-Schmidt on the transpose — frequency rows — with
//     tolerance eps (symmetric variant if WithSymmetrized);
//  5. sort the pivots ascending and map them to fine-grid frequencies.
//
// eps at or below EpsWarnThreshold logs a warning and proceeds; eps ≤ 0 is
// rejected by the orthogonalizer (pivgs.ErrBadTolerance).
func Frequencies(lambda, eps float64, opts ...Option) ([]float64, error) {
	o := options{panelOrder: grid.DefaultPanelOrder}
	for _, opt := range opts {
		opt(&o)
	}

	if eps > 0 && eps <= EpsWarnThreshold {
		logger.Warn().
			Float64("lambda", lambda).
			Float64("eps", eps).
			Msg("basis: tolerance near or below machine precision; frequency selection may be unstable, consider increasing eps")
	}

	fp, err := grid.NewFineParams(lambda, grid.WithPanelOrder(o.panelOrder))
	if err != nil {
		return nil, err
	}

	t, w := grid.TimeGrid(fp)
	om := grid.FrequencyGrid(fp)
	kmat := kernel.MatrixItWeighted(t, w, om)

	var res *pivgs.Result
	if o.symmetrized {
		res, err = pivgs.DecomposeSym(kmat.T(), eps)
	} else {
		res, err = pivgs.Decompose(kmat.T(), eps)
	}
	if err != nil {
		return nil, err
	}

	piv := append([]int(nil), res.Pivots...)
	sort.Ints(piv)

	rf := make([]float64, len(piv))
	for i, p := range piv {
		rf[i] = om[p]
	}

	return rf, nil
}
