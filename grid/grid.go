package grid

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// chebNodes returns the n Chebyshev nodes of the first kind on [-1,1] in
// ascending order, together with the matching barycentric weights
// (-1)^i·sin((2i+1)π/2n) used by the interpolation diagnostic.
func chebNodes(n int) (x, w []float64) {
	x = make([]float64, n)
	w = make([]float64, n)
	for i := 0; i < n; i++ {
		c := float64(2*i+1) * math.Pi / float64(2*n)
		sign := 1.0
		if i%2 == 1 {
			sign = -1.0
		}
		x[n-i-1] = math.Cos(c)
		w[n-i-1] = sign * math.Sin(c)
	}

	return x, w
}

// FrequencyGrid builds the fine composite frequency grid: PanelsOmega
// dyadic panels on (0,Λ], widths halving toward the origin, each populated
// with P Chebyshev nodes, then mirrored antisymmetrically onto [-Λ,0).
//
// The result has length fp.NOmega, is strictly ascending, and satisfies
// om[i] = -om[len(om)-1-i] exactly — the pairing the symmetrized pivoting
// variants rely on. Pure function of fp; no randomness.
func FrequencyGrid(fp FineParams) []float64 {
	p, npom := fp.P, fp.PanelsOmega

	xc, _ := chebNodes(p)
	xc01 := make([]float64, p)
	for k, v := range xc {
		xc01[k] = (v + 1) / 2 // Chebyshev nodes rescaled to [0,1]
	}

	om := make([]float64, fp.NOmega)

	// Panels on (0, lambda], then the mirror.
	a := 0.0
	for i := 0; i < npom; i++ {
		b := fp.Lambda / math.Pow(2, float64(npom-i-1))
		for k := 0; k < p; k++ {
			om[(npom+i)*p+k] = a + (b-a)*xc01[k]
		}
		a = b
	}
	half := npom * p
	for j := 0; j < half; j++ {
		om[j] = -om[2*half-1-j]
	}

	return om
}

// TimeGrid builds the fine composite imaginary-time grid in relative
// format, with matching square-rooted quadrature weights.
//
// PanelsTime dyadic panels cover (0,1/2], widths halving toward 0, each
// populated with P Gauss-Legendre nodes; the Gauss-Legendre weights are
// already panel-scaled by the quadrature provider and are stored as their
// square roots, so that a row scaling by w turns Euclidean dot products
// into composite-quadrature approximations of L² inner products.
//
// The mirror onto (1/2,1) uses the relative format t ↦ -(1-t): the second
// half holds the negated reflection of the first, t[i] = -t[len(t)-1-i],
// with weights mirrored symmetrically. Pure function of fp.
func TimeGrid(fp FineParams) (t, w []float64) {
	p, npt := fp.P, fp.PanelsTime

	t = make([]float64, fp.NTime)
	w = make([]float64, fp.NTime)
	xs := make([]float64, p)
	ws := make([]float64, p)

	var leg quad.Legendre
	a := 0.0
	for i := 0; i < npt; i++ {
		b := 1.0 / math.Pow(2, float64(npt-i))
		leg.FixedLocations(xs, ws, a, b)
		for k := 0; k < p; k++ {
			t[i*p+k] = xs[k]
			w[i*p+k] = math.Sqrt(ws[k])
		}
		a = b
	}

	half := npt * p
	for k := 0; k < half; k++ {
		t[half+k] = -t[half-1-k]
		w[half+k] = w[half-1-k]
	}

	return t, w
}
