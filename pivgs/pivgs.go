package pivgs

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Decompose runs pivoted, re-orthogonalized Gram-Schmidt on the rows of a
// in tolerance mode.
//
// Implementation:
//   - Stage 1: copy rows into a working buffer; every accepted vector is
//     immediately projected out of all remaining rows, so residual norms
//     are always current.
//   - Stage 2: per step, pick the remaining row with the largest residual
//     norm (greedy, ties to the lowest index), apply a full second
//     orthogonalization pass against all accepted vectors, and accept it
//     unless its residual norm relative to the first pivot's norm fell
//     below eps — that is the rank cut.
//
// Behavior highlights:
//   - The second pass is not optional: classical Gram-Schmidt alone loses
//     orthogonality well above machine precision at these matrix sizes.
//   - Duplicate and near-duplicate rows acquire near-zero residual norms
//     and are never selected; no explicit dedup exists.
//
// Inputs:
//   - a:   m×n matrix; rows are the candidate vectors.
//   - eps: relative tolerance in (0,∞); ~1e-6..1e-12 are typical, values
//     at machine precision make the discovered rank unstable (the caller
//     owns that warning — see basis.Frequencies).
//
// Returns:
//   - *Result: Q (r×n, orthonormal rows), Norms (non-increasing residual
//     norms up to rounding), Pivots (selection order, indices into a's rows).
//
// Errors:
//   - ErrEmptyMatrix, ErrBadTolerance.
//
// Determinism:
//   - Fixed scan orders throughout; identical inputs give identical pivots.
//
// Complexity:
//   - Time O(m·n·r), Space O(m·n) for the working copy.
//
// AI-Hints:
//   - eps=1e-100 effectively requests full numerical rank min(m,n); that is
//     how the representation builders pin an already-known rank.
//   - Feed the transpose if you mean to pivot columns; there is no column
//     mode by design.
func Decompose(a mat.Matrix, eps float64) (*Result, error) {
	if eps <= 0 {
		return nil, ErrBadTolerance
	}

	return decomposeReal(a, eps, 0, false)
}

// DecomposeRank is Decompose in fixed-rank mode: exactly rank pivots are
// selected, with no tolerance cut. Errors: ErrEmptyMatrix, ErrBadRank.
func DecomposeRank(a mat.Matrix, rank int) (*Result, error) {
	if rank < 1 {
		return nil, ErrBadRank
	}

	return decomposeReal(a, 0, rank, false)
}

// DecomposeSym is the frequency-symmetric variant of Decompose: whenever
// the row at index i is selected, its reflection partner m-1-i is selected
// immediately after it, regardless of the partner's own residual norm.
//
// The pairing i ↔ m-1-i matches every grid in this library: the fine
// frequency grid is antisymmetric about zero, the relative time grid
// mirrors about 1/2, and Matsubara index blocks reflect n ↔ -n-1
// (fermionic) or n ↔ -n (bosonic) at the same index arithmetic. A middle
// row (odd m) is its own partner and is selected singly.
func DecomposeSym(a mat.Matrix, eps float64) (*Result, error) {
	if eps <= 0 {
		return nil, ErrBadTolerance
	}

	return decomposeReal(a, eps, 0, true)
}

// DecomposeSymRank is DecomposeSym in fixed-rank mode. If the requested
// rank is reached mid-pair, the trailing partner is not selected.
func DecomposeSymRank(a mat.Matrix, rank int) (*Result, error) {
	if rank < 1 {
		return nil, ErrBadRank
	}

	return decomposeReal(a, 0, rank, true)
}

// decomposeReal is the single real-valued engine behind all four exported
// entry points. rank>0 selects fixed-rank mode; otherwise eps rules.
func decomposeReal(a mat.Matrix, eps float64, rank int, sym bool) (*Result, error) {
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

	// Working copy: q[i] holds the residual of original row piv[i].
	q := make([][]float64, m)
	for i := 0; i < m; i++ {
		q[i] = make([]float64, n)
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
		nrmMax float64 // first (largest) accepted residual norm
		pos    int     // number of accepted vectors
	)

	for pos < target {
		// Greedy pivot: remaining row with the largest residual norm.
		best, bestNrm := pos, floats.Norm(q[pos], 2)
		for i := pos + 1; i < m; i++ {
			if nn := floats.Norm(q[i], 2); nn > bestNrm {
				best, bestNrm = i, nn
			}
		}
		if bestNrm == 0 {
			break // row space exhausted
		}
		swapRows(q, piv, best, pos)

		nrm := reorthRow(q, pos)
		if pos == 0 {
			nrmMax = nrm
		} else if !fixed && nrm < eps*nrmMax {
			break // rank cut: next candidate below tolerance
		}
		if nrm == 0 {
			break
		}
		floats.Scale(1/nrm, q[pos])
		norms = append(norms, nrm)
		sweepRemaining(q, pos)
		pos++

		if !sym {
			continue
		}

		// Symmetric constraint: bring in the reflection partner now.
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
			continue // partner already accepted earlier
		}
		swapRows(q, piv, jp, pos)
		if nrm = reorthRow(q, pos); nrm == 0 {
			continue // degenerate partner; leave it unselected
		}
		floats.Scale(1/nrm, q[pos])
		norms = append(norms, nrm)
		sweepRemaining(q, pos)
		pos++
	}

	if pos == 0 {
		return nil, ErrEmptyMatrix
	}

	qm := mat.NewDense(pos, n, nil)
	for i := 0; i < pos; i++ {
		qm.SetRow(i, q[i])
	}

	return &Result{Q: qm, Norms: norms, Pivots: piv[:pos:pos]}, nil
}

// reorthRow applies the full second orthogonalization pass of row pos
// against all previously accepted (orthonormal) rows and returns the
// resulting residual norm. Row pos is left unnormalized.
func reorthRow(q [][]float64, pos int) float64 {
	for k := 0; k < pos; k++ {
		c := floats.Dot(q[pos], q[k])
		floats.AddScaled(q[pos], -c, q[k])
	}

	return floats.Norm(q[pos], 2)
}

// sweepRemaining projects the freshly accepted (normalized) row pos out of
// every remaining candidate row, keeping their residual norms current.
func sweepRemaining(q [][]float64, pos int) {
	for i := pos + 1; i < len(q); i++ {
		c := floats.Dot(q[i], q[pos])
		floats.AddScaled(q[i], -c, q[pos])
	}
}

func swapRows(q [][]float64, piv []int, i, j int) {
	if i == j {
		return
	}
	q[i], q[j] = q[j], q[i]
	piv[i], piv[j] = piv[j], piv[i]
}
