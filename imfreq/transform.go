package imfreq

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/Thoemi09/godlr/kernel"
)

// Vals2Coefs maps values on the sampling points to DLR coefficients. vals
// is NodeCount×k: row i holds the values at index nodes[i], one column per
// independent function. beta is the inverse temperature the values were
// sampled at; the solve happens in dimensionless units, so the input is
// rescaled by 1/β first.
//
// Errors: ErrNonPositiveBeta, ErrEvaluationOnly, ErrNilMatrix,
// ErrRankMismatch.
func (o *Ops) Vals2Coefs(beta float64, vals mat.CMatrix) (*mat.CDense, error) {
	if beta <= 0 {
		return nil, ErrNonPositiveBeta
	}
	if o.eval {
		return nil, ErrEvaluationOnly
	}
	if vals == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := vals.Dims()
	if rows != o.NodeCount() {
		return nil, ErrRankMismatch
	}

	// Stack rescaled real and imaginary parts for the embedded real solve.
	r := o.Rank()
	rhs := mat.NewDense(2*r, cols, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < cols; j++ {
			v := vals.At(i, j)
			rhs.Set(i, j, real(v)/beta)
			rhs.Set(i+r, j, imag(v)/beta)
		}
	}

	var sol mat.Dense
	if err := solveLU(&o.lu, &sol, rhs); err != nil {
		return nil, err
	}

	coefs := mat.NewCDense(r, cols, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < cols; j++ {
			coefs.Set(i, j, complex(sol.At(i, j), sol.At(i+r, j)))
		}
	}

	return coefs, nil
}

// Coefs2Vals is the adjoint direction: DLR coefficients (Rank×k) to values
// on the sampling points (NodeCount×k), rescaled by β. Available on
// evaluation-only representations.
func (o *Ops) Coefs2Vals(beta float64, coefs mat.CMatrix) (*mat.CDense, error) {
	if beta <= 0 {
		return nil, ErrNonPositiveBeta
	}
	if coefs == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := coefs.Dims()
	if rows != o.Rank() {
		return nil, ErrRankMismatch
	}

	vals := mat.NewCDense(o.NodeCount(), cols, nil)
	for i := 0; i < o.NodeCount(); i++ {
		for j := 0; j < cols; j++ {
			var s complex128
			for l := 0; l < rows; l++ {
				s += o.cf2if.At(i, l) * coefs.At(l, j)
			}
			vals.Set(i, j, complex(beta, 0)*s)
		}
	}

	return vals, nil
}

// Vals2CoefsVec is Vals2Coefs for a single scalar-valued function.
func (o *Ops) Vals2CoefsVec(beta float64, vals []complex128) ([]complex128, error) {
	if len(vals) != o.NodeCount() {
		return nil, ErrRankMismatch
	}

	m := mat.NewCDense(len(vals), 1, append([]complex128(nil), vals...))
	coefs, err := o.Vals2Coefs(beta, m)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, o.Rank())
	for i := range out {
		out[i] = coefs.At(i, 0)
	}

	return out, nil
}

// Coefs2ValsVec is Coefs2Vals for a single scalar-valued function.
func (o *Ops) Coefs2ValsVec(beta float64, coefs []complex128) ([]complex128, error) {
	if beta <= 0 {
		return nil, ErrNonPositiveBeta
	}
	if len(coefs) != o.Rank() {
		return nil, ErrRankMismatch
	}

	vals := make([]complex128, o.NodeCount())
	for i := range vals {
		var s complex128
		for l := range coefs {
			s += o.cf2if.At(i, l) * coefs[l]
		}
		vals[i] = complex(beta, 0) * s
	}

	return vals, nil
}

// Eval evaluates the coefficient expansion at Matsubara index n (not
// necessarily a sampling index): it forms the kernel row K(iν_n,ω_l) over
// the basis frequencies, contracts it with the coefficients (Rank×k) and
// rescales by β, returning one value per column.
func (o *Ops) Eval(beta float64, coefs mat.CMatrix, n int) ([]complex128, error) {
	if beta <= 0 {
		return nil, ErrNonPositiveBeta
	}
	if coefs == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := coefs.Dims()
	if rows != o.Rank() {
		return nil, ErrRankMismatch
	}

	kv := kernel.VectorIf(n, o.rf, o.stat)
	out := make([]complex128, cols)
	for j := 0; j < cols; j++ {
		var s complex128
		for l := 0; l < rows; l++ {
			s += kv[l] * coefs.At(l, j)
		}
		out[j] = complex(beta, 0) * s
	}

	return out, nil
}

// EvalVec is Eval for a single scalar-valued function.
func (o *Ops) EvalVec(beta float64, coefs []complex128, n int) (complex128, error) {
	if beta <= 0 {
		return 0, ErrNonPositiveBeta
	}
	if len(coefs) != o.Rank() {
		return 0, ErrRankMismatch
	}

	kv := kernel.VectorIf(n, o.rf, o.stat)
	var s complex128
	for l := range coefs {
		s += kv[l] * coefs[l]
	}

	return complex(beta, 0) * s, nil
}

// solveLU runs an LU solve and keeps gonum's soft Condition error from
// surfacing; conditioning is checked once at construction.
func solveLU(lu *mat.LU, dst *mat.Dense, b mat.Matrix) error {
	err := lu.SolveTo(dst, false, b)
	if err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil
		}
	}

	return err
}
