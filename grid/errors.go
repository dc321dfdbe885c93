package grid

import "errors"

var (
	// ErrNonPositiveLambda indicates a cutoff Λ ≤ 0 was requested.
	ErrNonPositiveLambda = errors.New("grid: cutoff lambda must be > 0")
	// ErrNonPositiveOrder indicates a panel order p ≤ 0 was requested.
	ErrNonPositiveOrder = errors.New("grid: panel order must be > 0")
	// ErrDimensionMismatch indicates grid slices or a kernel matrix whose
	// sizes do not match the fine-grid parameters they claim to discretize.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")
)
