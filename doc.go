// Package godlr builds and operates the Discrete Lehmann Representation
// (DLR) — a compressed basis of exponentials for imaginary-time and
// Matsubara-frequency response functions.
//
// 🚀 What is godlr?
//
//	Given a dimensionless cutoff Λ and a target accuracy ε, godlr discovers
//	a minimal set of r real "DLR frequencies" such that any function of the
//	analytic-continuation (Lehmann) kernel class is captured, to accuracy ε,
//	by r coefficients. It then builds the small linear maps needed to move
//	between coefficients and values sampled at r specially chosen imaginary
//	time points or Matsubara frequency indices.
//
// ✨ What you get:
//   - kernel/  — branch-stable evaluation of K(τ,ω) and K(iν_n,ω)
//   - grid/    — dyadically refined composite quadrature grids (Chebyshev
//     and Gauss-Legendre panels) discretizing the kernel to near machine ε
//   - pivgs/   — pivoted, re-orthogonalized Gram-Schmidt: the rank-revealing
//     factorization behind every node-selection step
//   - basis/   — DLR frequency selection for a given (Λ, ε)
//   - imtime/  — imaginary-time representation: nodes, coefficient↔value
//     transforms, pointwise evaluation
//   - imfreq/  — Matsubara-frequency representation, fermionic and bosonic,
//     with an optional symmetrized construction
//
// Typical flow:
//
//	rf, err := basis.Frequencies(1000, 1e-10)
//	it, err := imtime.New(1000, rf)
//	// sample G at it.Nodes(), then:
//	gc, err := it.Vals2CoefsVec(g)
//	v, err  := it.EvalVec(gc, tau)
//
// Everything is deterministic, synchronous and allocation-bounded; every
// representation object is immutable after construction and safe for
// concurrent read-only use.
//
//	go get github.com/Thoemi09/godlr
package godlr
