// Package kernel evaluates the analytic-continuation (Lehmann) kernel in
// its imaginary-time and Matsubara-frequency forms, pointwise and tabulated.
//
// The kernel connects a real-frequency density to an imaginary-time or
// imaginary-frequency response function:
//
//	K(τ,ω)    = e^{-τω} / (1 + e^{-ω})        (time form, τ ∈ [0,1])
//	K(iν_n,ω) = -1 / (iν_n - ω),  ν_n = (2n+ζ)π  (frequency form)
//
// where ζ is 1 for fermionic and 0 for bosonic statistics. Time arguments
// use the relative format: a point τ ∈ (1/2, 1) is stored as τ-1 < 0, which
// lets the reflection K(τ,ω) = K(1-τ,-ω) be applied without cancellation.
// Evaluation is branch-split on sign(ω) so no exponential argument ever
// overflows, for any Λ-scaled frequency.
//
// All functions are pure: no state, no failure modes beyond finite inputs.
package kernel
