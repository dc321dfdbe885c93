package pivgs

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrEmptyMatrix indicates an input with zero rows or columns.
	ErrEmptyMatrix = errors.New("pivgs: input matrix must be non-empty")
	// ErrBadTolerance indicates a non-positive tolerance in tolerance mode.
	ErrBadTolerance = errors.New("pivgs: tolerance must be > 0")
	// ErrBadRank indicates a fixed rank outside [1, min(m,n)].
	ErrBadRank = errors.New("pivgs: target rank out of range")
)

// Result is the outcome of a real factorization: r orthonormal rows, the
// residual norm recorded when each pivot was accepted (non-increasing up to
// rounding), and the pivot indices into the original row space, in selection
// order. Rank r is len(Pivots).
type Result struct {
	Q      *mat.Dense
	Norms  []float64
	Pivots []int
}

// CResult is the complex counterpart of Result; Q's rows are orthonormal
// under the Hermitian inner product.
type CResult struct {
	Q      *mat.CDense
	Norms  []float64
	Pivots []int
}

// Rank returns the discovered (or requested) rank.
func (r *Result) Rank() int { return len(r.Pivots) }

// Rank returns the discovered (or requested) rank.
func (r *CResult) Rank() int { return len(r.Pivots) }
