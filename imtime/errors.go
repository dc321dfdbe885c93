package imtime

import "errors"

var (
	// ErrEmptyBasis is returned when the frequency basis has no entries.
	ErrEmptyBasis = errors.New("imtime: empty frequency basis")

	// ErrRankMismatch is returned when a value or coefficient array does not
	// have one entry (row) per basis frequency.
	ErrRankMismatch = errors.New("imtime: array size does not match basis rank")

	// ErrDegenerateBasis is returned when node selection cannot find one
	// independent time row per basis frequency, e.g. because the basis
	// contains duplicate frequencies.
	ErrDegenerateBasis = errors.New("imtime: basis is numerically rank-deficient")

	// ErrNilMatrix is returned when a nil matrix is passed where values or
	// coefficients are expected.
	ErrNilMatrix = errors.New("imtime: nil matrix")
)
