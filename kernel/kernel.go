package kernel

import "math"

// It evaluates the imaginary-time kernel K(t,ω) for a time t given in
// relative format (t ∈ [-1/2, 1], negative values standing for t+1) and a
// real frequency ω.
//
// Negative relative times are folded through the reflection
// K(t,ω) = K(-t,-ω), so the stable absolute-value branch in ItAbs is the
// only code path that touches an exponential.
//
// Complexity: O(1). Pure; never overflows for finite inputs.
func It(t, om float64) float64 {
	if t >= 0 {
		return ItAbs(t, om)
	}

	return ItAbs(-t, -om)
}

// ItAbs evaluates K(t,ω) for an absolute-format time t ∈ [0,1].
//
// The branch split on sign(ω) keeps every exponential argument non-positive:
//
//	ω ≥ 0: e^{-tω} / (1 + e^{-ω})
//	ω < 0: e^{(1-t)ω} / (1 + e^{ω})
//
// Both branches are the same analytic function; the split only avoids
// overflow when |ω| is large (ω scales with the cutoff Λ).
func ItAbs(t, om float64) float64 {
	if om >= 0 {
		return math.Exp(-t*om) / (1 + math.Exp(-om))
	}

	return math.Exp((1-t)*om) / (1 + math.Exp(om))
}

// If evaluates the Matsubara-frequency kernel K(iν_n, ω) for integer index n,
// real frequency ω and statistic s:
//
//	K(iν_n,ω) = -1 / (iν_n - ω),  ν_n = (2n + ζ)·π,  ζ = int(s).
//
// Fermionic indices are odd (2n+1), bosonic even (2n); both fold into the
// same closed form through the statistic shift.
func If(n int, om float64, s Statistic) complex128 {
	nu := float64(2*n+int(s)) * math.Pi

	return -1 / complex(-om, nu)
}

// VectorIt evaluates K(t,ω_l) at one relative-format time t against every
// frequency in om, deciding the reflection branch once for the whole row.
//
// This is the evaluation vector used when a DLR expansion is evaluated at an
// arbitrary time point: the result contracted against r coefficients gives
// the value of the represented function at t.
func VectorIt(t float64, om []float64) []float64 {
	kv := make([]float64, len(om))
	if t >= 0 {
		for l, w := range om {
			kv[l] = ItAbs(t, w)
		}

		return kv
	}
	for l, w := range om {
		kv[l] = ItAbs(-t, -w)
	}

	return kv
}

// VectorIf evaluates K(iν_n, ω_l) at one Matsubara index n against every
// frequency in om.
func VectorIf(n int, om []float64, s Statistic) []complex128 {
	kv := make([]complex128, len(om))
	for l, w := range om {
		kv[l] = If(n, w, s)
	}

	return kv
}
