package imfreq

import "errors"

var (
	// ErrEmptyBasis is returned when the frequency basis has no entries.
	ErrEmptyBasis = errors.New("imfreq: empty frequency basis")

	// ErrRankMismatch is returned when a value or coefficient array does not
	// match the representation's node count or rank.
	ErrRankMismatch = errors.New("imfreq: array size does not match basis rank")

	// ErrDegenerateBasis is returned when node selection cannot find the
	// required number of independent Matsubara rows.
	ErrDegenerateBasis = errors.New("imfreq: basis is numerically rank-deficient")

	// ErrEvaluationOnly is returned by Vals2Coefs on a representation with
	// more nodes than coefficients (symmetrized bosonic case): the square
	// values→coefficients system does not exist.
	ErrEvaluationOnly = errors.New("imfreq: representation is evaluation-only")

	// ErrNonPositiveBeta is returned when an inverse temperature β ≤ 0 is
	// passed to a transform.
	ErrNonPositiveBeta = errors.New("imfreq: inverse temperature must be positive")

	// ErrNilMatrix is returned when a nil matrix is passed where values or
	// coefficients are expected.
	ErrNilMatrix = errors.New("imfreq: nil matrix")
)
