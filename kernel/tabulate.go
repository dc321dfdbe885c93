package kernel

import "gonum.org/v1/gonum/mat"

// MatrixIt tabulates the imaginary-time kernel on a (time × frequency) grid:
// row i, column j holds K(t[i], om[j]) with t in relative format.
//
// Determinism: fixed i→j fill order; the result is a fresh Dense the caller
// owns. Complexity: O(len(t)·len(om)).
func MatrixIt(t, om []float64) *mat.Dense {
	nt, nom := len(t), len(om)
	k := mat.NewDense(nt, nom, nil)
	for i := 0; i < nt; i++ {
		k.SetRow(i, VectorIt(t[i], om))
	}

	return k
}

// MatrixItWeighted tabulates the imaginary-time kernel with each row i
// scaled by w[i]. With w the square-rooted composite quadrature weights of
// the time grid, row dot products approximate the L² inner product on [0,1],
// which is what the pivoted Gram-Schmidt basis selection needs.
//
// len(w) must equal len(t); a mismatch is a programmer error and panics via
// the slice index below.
func MatrixItWeighted(t, w, om []float64) *mat.Dense {
	nt, nom := len(t), len(om)
	k := mat.NewDense(nt, nom, nil)
	row := make([]float64, nom)
	for i := 0; i < nt; i++ {
		copy(row, VectorIt(t[i], om))
		for j := 0; j < nom; j++ {
			row[j] *= w[i]
		}
		k.SetRow(i, row)
	}

	return k
}

// MatrixIf tabulates the Matsubara-frequency kernel for all integer indices
// up to the cutoff nmax, against every frequency in om.
//
// Fermion: 2·nmax rows for n = -nmax..nmax-1 (odd indices 2n+1 span
// -2·nmax+1 .. 2·nmax-1).
// Boson: 2·nmax+1 rows for n = -nmax..nmax (even indices 2n span
// -2·nmax .. 2·nmax).
//
// Row i corresponds to index n = i - nmax in both cases.
func MatrixIf(nmax int, om []float64, s Statistic) *mat.CDense {
	nom := len(om)
	nrow := 2 * nmax
	if s == Boson {
		nrow = 2*nmax + 1
	}

	k := mat.NewCDense(nrow, nom, nil)
	for i := 0; i < nrow; i++ {
		n := i - nmax
		for j := 0; j < nom; j++ {
			k.Set(i, j, If(n, om[j], s))
		}
	}

	return k
}
