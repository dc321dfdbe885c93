// Package pivgs implements pivoted, re-orthogonalized Gram-Schmidt: a
// rank-revealing factorization that selects a numerically independent,
// well-conditioned subset of a matrix's rows.
//
// 🚀 What does it do?
//
//	Given an m×n matrix A and a relative tolerance ε (or a fixed target
//	rank), pivgs greedily picks the row with the largest residual norm,
//	orthogonalizes it against everything chosen so far — twice, because a
//	single classical Gram-Schmidt pass loses orthogonality at scale — and
//	repeats until the next candidate's residual norm falls below ε relative
//	to the first pivot's norm. The outputs are an orthonormal basis Q of the
//	selected row space, the non-increasing residual norms, and the pivot
//	order into the original rows.
//
// ✨ Variants:
//   - Decompose / DecomposeCmplx — plain greedy pivoting, tolerance mode
//   - DecomposeRank / DecomposeCmplxRank — exact target rank
//   - DecomposeSym / DecomposeCmplxSym (+Rank forms) — symmetric pivoting:
//     whenever row i is selected, its reflection partner m-1-i is selected
//     with it, preserving sign-pair symmetry of frequency-indexed rows
//
// Near-duplicate rows need no special handling: after projection they have
// near-zero residual norm and are simply never picked.
//
// Complexity: O(m·n·r) for discovered rank r. Deterministic: ties resolve
// to the lowest row index, and no randomness exists anywhere.
package pivgs
