// Package imfreq is the Matsubara-frequency side of the DLR: given the
// basis frequencies (package basis) and a statistic, it selects sampling
// nodes iν_n out of the dense Matsubara index window and converts between
// values on those nodes and DLR coefficients.
//
// 🚀 What you get
//
//   - New: node selection by pivoted Gram-Schmidt on the complex kernel
//     matrix over the index window n ∈ [-n_max, n_max); the pivot rows give
//     the sampling indices and the values↔coefficients system.
//   - Vals2Coefs / Coefs2Vals / Eval and vector variants, all carrying the
//     inverse temperature β explicitly: the dimensionless representation is
//     built once, β enters only as a multiplicative rescaling.
//   - FromParts: rebuild from persisted artifacts without reselection.
//
// ✨ The symmetrized bosonic case
//
// A symmetrized bosonic representation needs one extra node (the n ↔ -n
// reflection fixes n=0, so pairing r frequencies costs r+1 indices). Such a
// representation has more nodes than coefficients: Coefs2Vals and Eval work,
// Vals2Coefs returns ErrEvaluationOnly.
package imfreq
