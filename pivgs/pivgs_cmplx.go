package pivgs

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// DecomposeCmplx is Decompose for complex matrices; orthogonality is with
// respect to the Hermitian inner product ⟨x,y⟩ = Σ conj(x_i)·y_i.
func DecomposeCmplx(a mat.CMatrix, eps float64) (*CResult, error) {
	if eps <= 0 {
		return nil, ErrBadTolerance
	}

	return decomposeCmplx(a, eps, 0, false)
}

// DecomposeCmplxRank is DecomposeCmplx in fixed-rank mode.
func DecomposeCmplxRank(a mat.CMatrix, rank int) (*CResult, error) {
	if rank < 1 {
		return nil, ErrBadRank
	}

	return decomposeCmplx(a, 0, rank, false)
}

// DecomposeCmplxSym is the frequency-symmetric complex variant; the pair
// constraint is row i ↔ row m-1-i, as in DecomposeSym.
func DecomposeCmplxSym(a mat.CMatrix, eps float64) (*CResult, error) {
	if eps <= 0 {
		return nil, ErrBadTolerance
	}

	return decomposeCmplx(a, eps, 0, true)
}

// DecomposeCmplxSymRank fixes the selection count instead of using a
// tolerance; this is the mode the Matsubara representation uses, where the
// node count (rank, or rank+1 for the symmetrized bosonic case) is known
// before pivoting starts.
func DecomposeCmplxSymRank(a mat.CMatrix, rank int) (*CResult, error) {
	if rank < 1 {
		return nil, ErrBadRank
	}

	return decomposeCmplx(a, 0, rank, true)
}

// decomposeCmplx mirrors decomposeReal with Hermitian arithmetic. The two
// engines are kept separate rather than abstracted over a scalar type: the
// inner product, norm and scaling differ, and the loop bodies are short.
func decomposeCmplx(a mat.CMatrix, eps float64, rank int, sym bool) (*CResult, error) {
	if a == nil {
		return nil, ErrEmptyMatrix
	}
	m, n := a.Dims()
	if m == 0 || n == 0 {
		return nil, ErrEmptyMatrix
	}

	fixed := rank > 0
	target := min(m, n)
	if fixed {
		if rank > target {
			return nil, ErrBadRank
		}
		target = rank
	}

	q := make([][]complex128, m)
	for i := 0; i < m; i++ {
		q[i] = make([]complex128, n)
		for j := 0; j < n; j++ {
			q[i][j] = a.At(i, j)
		}
	}
	piv := make([]int, m)
	for i := range piv {
		piv[i] = i
	}

	var (
		norms  []float64
		nrmMax float64
		pos    int
	)

	for pos < target {
		best, bestNrm := pos, normc(q[pos])
		for i := pos + 1; i < m; i++ {
			if nn := normc(q[i]); nn > bestNrm {
				best, bestNrm = i, nn
			}
		}
		if bestNrm == 0 {
			break
		}
		swapRowsC(q, piv, best, pos)

		nrm := reorthRowC(q, pos)
		if pos == 0 {
			nrmMax = nrm
		} else if !fixed && nrm < eps*nrmMax {
			break
		}
		if nrm == 0 {
			break
		}
		scaleC(1/nrm, q[pos])
		norms = append(norms, nrm)
		sweepRemainingC(q, pos)
		pos++

		if !sym {
			continue
		}

		partner := m - 1 - piv[pos-1]
		if partner == piv[pos-1] || pos >= target {
			continue
		}
		jp := -1
		for i := pos; i < m; i++ {
			if piv[i] == partner {
				jp = i
				break
			}
		}
		if jp < 0 {
			continue
		}
		swapRowsC(q, piv, jp, pos)
		if nrm = reorthRowC(q, pos); nrm == 0 {
			continue
		}
		scaleC(1/nrm, q[pos])
		norms = append(norms, nrm)
		sweepRemainingC(q, pos)
		pos++
	}

	if pos == 0 {
		return nil, ErrEmptyMatrix
	}

	qm := mat.NewCDense(pos, n, nil)
	for i := 0; i < pos; i++ {
		for j := 0; j < n; j++ {
			qm.Set(i, j, q[i][j])
		}
	}

	return &CResult{Q: qm, Norms: norms, Pivots: piv[:pos:pos]}, nil
}

func reorthRowC(q [][]complex128, pos int) float64 {
	for k := 0; k < pos; k++ {
		c := dotc(q[k], q[pos])
		axpyC(-c, q[k], q[pos])
	}

	return normc(q[pos])
}

func sweepRemainingC(q [][]complex128, pos int) {
	for i := pos + 1; i < len(q); i++ {
		c := dotc(q[pos], q[i])
		axpyC(-c, q[pos], q[i])
	}
}

func swapRowsC(q [][]complex128, piv []int, i, j int) {
	if i == j {
		return
	}
	q[i], q[j] = q[j], q[i]
	piv[i], piv[j] = piv[j], piv[i]
}

// dotc is the Hermitian inner product ⟨x,y⟩ = Σ conj(x_i)·y_i. gonum's
// cmplxs package only carries the unconjugated dot, and conjugation is the
// invariant here.
func dotc(x, y []complex128) complex128 {
	var s complex128
	for i := range x {
		s += cmplx.Conj(x[i]) * y[i]
	}

	return s
}

func normc(x []complex128) float64 {
	var s float64
	for i := range x {
		s += real(x[i])*real(x[i]) + imag(x[i])*imag(x[i])
	}

	return math.Sqrt(s)
}

func axpyC(alpha complex128, x, y []complex128) {
	for i := range y {
		y[i] += alpha * x[i]
	}
}

func scaleC(alpha float64, x []complex128) {
	for i := range x {
		x[i] *= complex(alpha, 0)
	}
}
