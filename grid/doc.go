// Package grid builds the fine composite quadrature grids that discretize
// the Lehmann kernel to near machine precision before any basis selection
// happens.
//
// Both grids are dyadic: panel widths halve toward the region where the
// kernel varies fastest (the origin in frequency, the boundaries in time),
// and each panel carries a fixed number p of high-order quadrature nodes:
//
//   - frequency: panels on (0,Λ] with Chebyshev (first-kind) nodes,
//     mirrored antisymmetrically onto [-Λ,0);
//   - imaginary time: panels on (0,1/2] with Gauss-Legendre nodes and
//     square-rooted quadrature weights, mirrored onto (1/2,1) and stored in
//     relative format (τ ∈ (1/2,1) kept as τ-1).
//
// Grid construction is a pure function of (Λ, p); the defaults (p=24, a
// frequency-index floor of 20) are the empirically chosen values of the
// reference implementation and are configurable, not invariants.
//
// KernelErrorIt is a verification tool: it estimates the discretization
// error of a tabulated kernel matrix by refining every panel to 2p points
// through barycentric interpolation. It is not needed for correctness of
// basis construction.
package grid
