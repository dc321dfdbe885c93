package imtime

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/Thoemi09/godlr/kernel"
)

// Vals2Coefs maps values on the interpolation nodes to DLR coefficients.
// vals is r×k: row i holds the sampled values at node i, one column per
// independent function (orbital component, say). The returned matrix has
// the same shape.
func (o *Ops) Vals2Coefs(vals mat.Matrix) (*mat.Dense, error) {
	if vals == nil {
		return nil, ErrNilMatrix
	}
	if rows, _ := vals.Dims(); rows != o.Rank() {
		return nil, ErrRankMismatch
	}

	var coefs mat.Dense
	if err := solveLU(&o.lu, &coefs, vals); err != nil {
		return nil, err
	}

	return &coefs, nil
}

// Coefs2Vals is the inverse of Vals2Coefs: it maps DLR coefficients (r×k)
// to values on the interpolation nodes.
func (o *Ops) Coefs2Vals(coefs mat.Matrix) (*mat.Dense, error) {
	if coefs == nil {
		return nil, ErrNilMatrix
	}
	if rows, _ := coefs.Dims(); rows != o.Rank() {
		return nil, ErrRankMismatch
	}

	var vals mat.Dense
	vals.Mul(o.cf2it, coefs)

	return &vals, nil
}

// Vals2CoefsVec is Vals2Coefs for a single scalar-valued function.
func (o *Ops) Vals2CoefsVec(vals []float64) ([]float64, error) {
	if len(vals) != o.Rank() {
		return nil, ErrRankMismatch
	}

	var coefs mat.Dense
	if err := solveLU(&o.lu, &coefs, mat.NewDense(len(vals), 1, append([]float64(nil), vals...))); err != nil {
		return nil, err
	}

	return mat.Col(nil, 0, &coefs), nil
}

// Coefs2ValsVec is Coefs2Vals for a single scalar-valued function.
func (o *Ops) Coefs2ValsVec(coefs []float64) ([]float64, error) {
	if len(coefs) != o.Rank() {
		return nil, ErrRankMismatch
	}

	vals := make([]float64, o.Rank())
	for i := range vals {
		vals[i] = floats.Dot(o.cf2it.RawRowView(i), coefs)
	}

	return vals, nil
}

// Eval evaluates the coefficient expansion at relative-format time t: it
// forms the kernel row K(t,ω_l) over the basis frequencies and contracts it
// with the coefficients (r×k), returning one value per column.
func (o *Ops) Eval(coefs mat.Matrix, t float64) ([]float64, error) {
	if coefs == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := coefs.Dims()
	if rows != o.Rank() {
		return nil, ErrRankMismatch
	}

	kv := kernel.VectorIt(t, o.rf)
	out := make([]float64, cols)
	for j := 0; j < cols; j++ {
		var s float64
		for l := 0; l < rows; l++ {
			s += kv[l] * coefs.At(l, j)
		}
		out[j] = s
	}

	return out, nil
}

// EvalVec is Eval for a single scalar-valued function.
func (o *Ops) EvalVec(coefs []float64, t float64) (float64, error) {
	if len(coefs) != o.Rank() {
		return 0, ErrRankMismatch
	}

	return floats.Dot(kernel.VectorIt(t, o.rf), coefs), nil
}

// solveLU runs an LU solve and keeps gonum's soft Condition error from
// surfacing: conditioning is checked once at construction, and a Condition
// error still carries a valid solution.
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
