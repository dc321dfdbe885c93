package pivgs_test

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/Thoemi09/godlr/pivgs"
)

// lowRankReal builds an m×n matrix with singular values 2^0, 2^-1, ... by
// orthonormalizing two random matrices and scaling the smaller one's rows.
func lowRankReal(t *testing.T, rng *rand.Rand, m, n int) *mat.Dense {
	t.Helper()

	a1 := mat.NewDense(m, m, nil)
	a2 := mat.NewDense(n, n, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			a1.Set(i, j, rng.Float64())
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a2.Set(i, j, rng.Float64())
		}
	}

	// Full-rank factorization doubles as an orthonormalization step.
	u, err := pivgs.Decompose(a1, 1e-100)
	require.NoError(t, err)
	v, err := pivgs.Decompose(a2, 1e-100)
	require.NoError(t, err)
	require.Equal(t, m, u.Rank())
	require.Equal(t, n, v.Rank())

	// Scale v's rows by the singular values, then a = u[:, :n] * v.
	sv := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sv.Set(i, j, math.Pow(2, -float64(i))*v.Q.At(i, j))
		}
	}
	a := mat.NewDense(m, n, nil)
	a.Mul(u.Q.Slice(0, m, 0, n), sv)

	return a
}

// TestDecompose_Real ports the reference property suite: rank window,
// orthonormality, row-space projection, and pivot idempotence.
func TestDecompose_Real(t *testing.T) {
	const (
		m   = 50
		n   = 40
		eps = 1e-6
	)
	rng := rand.New(rand.NewSource(7))
	a := lowRankReal(t, rng, m, n)

	res, err := pivgs.Decompose(a, eps)
	require.NoError(t, err)
	r := res.Rank()

	// Rank tracks ceil(log2(1/eps)) within a small window.
	expect := math.Ceil(math.Log2(1 / eps))
	assert.LessOrEqual(t, float64(r), expect+3)
	assert.GreaterOrEqual(t, float64(r), expect-3)
	require.Len(t, res.Norms, r)
	require.Len(t, res.Pivots, r)

	// Norms non-increasing (up to rounding slack).
	for i := 1; i < r; i++ {
		assert.LessOrEqual(t, res.Norms[i], res.Norms[i-1]*(1+1e-12))
	}

	// Q·Qᵀ = I to near machine precision.
	var qqt mat.Dense
	qqt.Mul(res.Q, res.Q.T())
	assert.Less(t, frobDistFromEye(&qqt), 1e-14)

	// Projection of a random row-space combination onto span(Q) is lossless
	// to roughly the target accuracy.
	x := mat.NewVecDense(m, nil)
	for i := 0; i < m; i++ {
		x.SetVec(i, 2*rng.Float64()-1)
	}
	x.ScaleVec(1/mat.Norm(x, 2), x)
	b := mat.NewVecDense(n, nil)
	b.MulVec(a.T(), x)

	qb := mat.NewVecDense(r, nil)
	qb.MulVec(res.Q, b)
	proj := mat.NewVecDense(n, nil)
	proj.MulVec(res.Q.T(), qb)
	var resid mat.VecDense
	resid.SubVec(b, proj)
	assert.Less(t, mat.Norm(&resid, 2), 10*eps)

	// Stronger: ‖A - (A·Qᵀ)·Q‖_F < 10·eps.
	var aq, aproj, diff mat.Dense
	aq.Mul(a, res.Q.T())
	aproj.Mul(&aq, res.Q)
	diff.Sub(a, &aproj)
	assert.Less(t, mat.Norm(&diff, 2), 10*eps)

	// Idempotence: factorizing the selected pivot rows reproduces Q and
	// yields pivots 0..r-1 in order.
	thin := mat.NewDense(r, n, nil)
	for i, p := range res.Pivots {
		thin.SetRow(i, mat.Row(nil, p, a))
	}
	again, err := pivgs.Decompose(thin, eps)
	require.NoError(t, err)
	require.Equal(t, r, again.Rank())
	for i := 0; i < r; i++ {
		assert.Equal(t, i, again.Pivots[i])
	}
	var qdiff mat.Dense
	qdiff.Sub(res.Q, again.Q)
	assert.Less(t, mat.Norm(&qdiff, 2), 1e-13)
}

// TestDecomposeCmplx_Real mirrors the real suite under the Hermitian inner
// product.
func TestDecomposeCmplx(t *testing.T) {
	const (
		m   = 40
		n   = 30
		eps = 1e-6
	)
	rng := rand.New(rand.NewSource(11))

	a1 := mat.NewCDense(m, m, nil)
	a2 := mat.NewCDense(n, n, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			a1.Set(i, j, complex(rng.Float64(), rng.Float64()))
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a2.Set(i, j, complex(rng.Float64(), rng.Float64()))
		}
	}

	u, err := pivgs.DecomposeCmplx(a1, 1e-100)
	require.NoError(t, err)
	v, err := pivgs.DecomposeCmplx(a2, 1e-100)
	require.NoError(t, err)
	require.Equal(t, m, u.Rank())
	require.Equal(t, n, v.Rank())

	// a = u[:, :n] * diag(2^-i) * v, elementwise assembly.
	a := mat.NewCDense(m, n, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var s complex128
			for k := 0; k < n; k++ {
				s += u.Q.At(i, k) * complex(math.Pow(2, -float64(k)), 0) * v.Q.At(k, j)
			}
			a.Set(i, j, s)
		}
	}

	res, err := pivgs.DecomposeCmplx(a, eps)
	require.NoError(t, err)
	r := res.Rank()

	expect := math.Ceil(math.Log2(1 / eps))
	assert.LessOrEqual(t, float64(r), expect+3)
	assert.GreaterOrEqual(t, float64(r), expect-3)

	// Q·Q† = I.
	assert.Less(t, hermDistFromEye(res.Q), 1e-14)

	// ‖A - (A·Q†)·Q‖_F < 10·eps.
	aq := mat.NewCDense(m, r, nil)
	qh := res.Q.H()
	for i := 0; i < m; i++ {
		for j := 0; j < r; j++ {
			var s complex128
			for k := 0; k < n; k++ {
				s += a.At(i, k) * qh.At(k, j)
			}
			aq.Set(i, j, s)
		}
	}
	aproj := mat.NewCDense(m, n, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var s complex128
			for k := 0; k < r; k++ {
				s += aq.At(i, k) * res.Q.At(k, j)
			}
			aproj.Set(i, j, s)
		}
	}
	sum := 0.0
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			d := a.At(i, j) - aproj.At(i, j)
			sum += real(d)*real(d) + imag(d)*imag(d)
		}
	}
	assert.Less(t, math.Sqrt(sum), 10*eps)

	// Idempotence on the pivot rows.
	thin := mat.NewCDense(r, n, nil)
	for i, p := range res.Pivots {
		for j := 0; j < n; j++ {
			thin.Set(i, j, a.At(p, j))
		}
	}
	again, err := pivgs.DecomposeCmplx(thin, eps)
	require.NoError(t, err)
	require.Equal(t, r, again.Rank())
	for i := 0; i < r; i++ {
		assert.Equal(t, i, again.Pivots[i])
	}
}

// mirrorExp builds a numerically low-rank matrix with the reflection
// symmetry of kernel grids: a[i][j] = e^{x_i·y_j} on antisymmetric point
// sets, so row m-1-i equals row i with its columns reversed.
func mirrorExp(m, n int) *mat.Dense {
	a := mat.NewDense(m, n, nil)
	for i := 0; i < m; i++ {
		x := -1 + 2*float64(i)/float64(m-1)
		for j := 0; j < n; j++ {
			y := -1 + 2*float64(j)/float64(n-1)
			a.Set(i, j, math.Exp(x*y))
		}
	}

	return a
}

// TestDecomposeSym_PairClosure checks the defining property of the
// symmetric variant: the pivot set is closed under i ↦ m-1-i. The input is
// low rank so the tolerance cut, not the min(m,n) capacity, ends selection.
func TestDecomposeSym_PairClosure(t *testing.T) {
	a := mirrorExp(20, 16)

	res, err := pivgs.DecomposeSym(a, 1e-8)
	require.NoError(t, err)
	require.NotZero(t, res.Rank())
	require.Less(t, res.Rank(), 16)

	selected := make(map[int]bool, res.Rank())
	for _, p := range res.Pivots {
		selected[p] = true
	}
	for _, p := range res.Pivots {
		assert.True(t, selected[20-1-p], "partner of pivot %d missing", p)
	}

	// Orthonormality holds for the symmetric variant too.
	var qqt mat.Dense
	qqt.Mul(res.Q, res.Q.T())
	assert.Less(t, frobDistFromEye(&qqt), 1e-14)
}

// TestDecomposeSymRank_ExactCount pins fixed-rank mode: exactly the
// requested number of pivots, even when a pair straddles the cut.
func TestDecomposeSymRank_ExactCount(t *testing.T) {
	a := mirrorExp(21, 18) // odd m: middle row is its own partner

	for _, want := range []int{2, 4, 7} {
		res, err := pivgs.DecomposeSymRank(a, want)
		require.NoError(t, err)
		assert.Equal(t, want, res.Rank())
	}
}

// TestDecompose_DuplicateRows: duplicates collapse to near-zero residual
// norm and are never selected.
func TestDecompose_DuplicateRows(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	a := mat.NewDense(6, 8, nil)
	row := make([]float64, 8)
	for j := range row {
		row[j] = rng.Float64()
	}
	for i := 0; i < 3; i++ {
		a.SetRow(i, row) // three identical rows
	}
	for i := 3; i < 6; i++ {
		for j := 0; j < 8; j++ {
			a.Set(i, j, rng.Float64())
		}
	}

	res, err := pivgs.Decompose(a, 1e-10)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Rank())
}

// TestDecompose_Validation covers the error surface.
func TestDecompose_Validation(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 0, 0, 1})

	_, err := pivgs.Decompose(a, 0)
	assert.ErrorIs(t, err, pivgs.ErrBadTolerance)
	_, err = pivgs.Decompose(a, -1e-8)
	assert.ErrorIs(t, err, pivgs.ErrBadTolerance)

	_, err = pivgs.DecomposeRank(a, 0)
	assert.ErrorIs(t, err, pivgs.ErrBadRank)
	_, err = pivgs.DecomposeRank(a, 3)
	assert.ErrorIs(t, err, pivgs.ErrBadRank)

	_, err = pivgs.Decompose(nil, 1e-6)
	assert.ErrorIs(t, err, pivgs.ErrEmptyMatrix)

	ca := mat.NewCDense(2, 2, nil)
	_, err = pivgs.DecomposeCmplx(ca, -1)
	assert.ErrorIs(t, err, pivgs.ErrBadTolerance)
	_, err = pivgs.DecomposeCmplxSymRank(ca, 5)
	assert.ErrorIs(t, err, pivgs.ErrBadRank)
}

// frobDistFromEye returns ‖M - I‖_F for a square real matrix.
func frobDistFromEye(m *mat.Dense) float64 {
	r, _ := m.Dims()
	sum := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			d := m.At(i, j)
			if i == j {
				d -= 1
			}
			sum += d * d
		}
	}

	return math.Sqrt(sum)
}

// hermDistFromEye returns ‖Q·Q† - I‖_F for a complex Q with orthonormal rows.
func hermDistFromEye(q *mat.CDense) float64 {
	r, n := q.Dims()
	qh := q.H()
	qqh := mat.NewCDense(r, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			var s complex128
			for k := 0; k < n; k++ {
				s += q.At(i, k) * qh.At(k, j)
			}
			qqh.Set(i, j, s)
		}
	}
	sum := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			d := qqh.At(i, j)
			if i == j {
				d -= 1
			}
			sum += cmplx.Abs(d) * cmplx.Abs(d)
		}
	}

	return math.Sqrt(sum)
}
