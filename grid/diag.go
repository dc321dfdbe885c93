package grid

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/mat"

	"github.com/Thoemi09/godlr/kernel"
)

// baryInterp is a barycentric Lagrange interpolant on a fixed node set in
// reference coordinates [-1,1]. Only the diagnostic below uses it; gonum's
// interp package has no barycentric form, and this one is ~40 lines.
type baryInterp struct {
	x []float64 // nodes, ascending
	w []float64 // barycentric weights (any common scaling)
}

// newBaryCheb builds the interpolant on n Chebyshev first-kind nodes, whose
// barycentric weights have the closed form (-1)^i·sin((2i+1)π/2n).
func newBaryCheb(n int) baryInterp {
	x, w := chebNodes(n)

	return baryInterp{x: x, w: w}
}

// newBaryLeg builds the interpolant on n Gauss-Legendre nodes with weights
// from the generic product formula w_j = 1/∏_{k≠j}(x_j-x_k), rescaled by
// the largest magnitude to keep them in floating range.
func newBaryLeg(n int) baryInterp {
	x := make([]float64, n)
	junk := make([]float64, n)
	var leg quad.Legendre
	leg.FixedLocations(x, junk, -1, 1)

	w := make([]float64, n)
	wmax := 0.0
	for j := 0; j < n; j++ {
		prod := 1.0
		for k := 0; k < n; k++ {
			if k != j {
				prod *= x[j] - x[k]
			}
		}
		w[j] = 1 / prod
		wmax = math.Max(wmax, math.Abs(w[j]))
	}
	for j := 0; j < n; j++ {
		w[j] /= wmax
	}

	return baryInterp{x: x, w: w}
}

// interp evaluates the interpolant of the node values f at reference point
// x ∈ [-1,1]. An exact node hit short-circuits to the node value.
func (b baryInterp) interp(x float64, f []float64) float64 {
	num, den := 0.0, 0.0
	for j := range b.x {
		d := x - b.x[j]
		if d == 0 {
			return f[j]
		}
		c := b.w[j] / d
		num += c * f[j]
		den += c
	}

	return num / den
}

// KernelErrorIt estimates the fine-grid discretization error of a tabulated
// imaginary-time kernel matrix kmat (rows: time grid t, columns: frequency
// grid om, both built from fp).
//
// Every panel is refined to 2·P points: panel values are interpolated to
// the refined nodes barycentrically (Gauss-Legendre panels in time,
// Chebyshev panels in frequency) and compared against exact kernel
// evaluations there. Returned are the worst-case absolute errors, each
// normalized by the largest kernel magnitude at the fixed frequency
// (errTime) or fixed time (errOmega) being tested.
//
// This is a verification tool, not part of basis construction. Errors:
// ErrDimensionMismatch when t, om or kmat disagree with fp.
func KernelErrorIt(fp FineParams, t, om []float64, kmat *mat.Dense) (errTime, errOmega float64, err error) {
	if len(t) != fp.NTime || len(om) != fp.NOmega {
		return 0, 0, ErrDimensionMismatch
	}
	if r, c := kmat.Dims(); r != fp.NTime || c != fp.NOmega {
		return 0, 0, ErrDimensionMismatch
	}

	// Reference grids with double the points per panel. Panel boundaries
	// depend only on lambda, so panels line up one-to-one.
	fine2, err := NewFineParams(fp.Lambda, WithPanelOrder(2*fp.P))
	if err != nil {
		return 0, 0, err
	}
	ttst, _ := TimeGrid(fine2)
	omtst := FrequencyGrid(fine2)
	p, p2 := fp.P, fine2.P

	bl := newBaryLeg(p)
	bc := newBaryCheb(p)
	xl2 := newBaryLeg(p2).x // refined reference nodes, Legendre
	xc2 := newBaryCheb(p2).x

	panel := make([]float64, p)

	// Time discretization error at each fixed frequency. Only the first
	// half of the time grid needs testing; the second half is its mirror.
	for j := 0; j < fp.NOmega; j++ {
		colMax := 0.0
		for i := 0; i < fp.NTime; i++ {
			colMax = math.Max(colMax, math.Abs(kmat.At(i, j)))
		}
		errTmp := 0.0
		for i := 0; i < fp.PanelsTime; i++ {
			for k := 0; k < p; k++ {
				panel[k] = kmat.At(i*p+k, j)
			}
			for k := 0; k < p2; k++ {
				ktru := kernel.It(ttst[i*p2+k], om[j])
				ktst := bl.interp(xl2[k], panel)
				errTmp = math.Max(errTmp, math.Abs(ktru-ktst))
			}
		}
		errTime = math.Max(errTime, errTmp/colMax)
	}

	// Frequency discretization error at each fixed time in the first half.
	for i := 0; i < fp.NTime/2; i++ {
		rowMax := 0.0
		for j := 0; j < fp.NOmega; j++ {
			rowMax = math.Max(rowMax, math.Abs(kmat.At(i, j)))
		}
		errTmp := 0.0
		for j := 0; j < 2*fp.PanelsOmega; j++ {
			for k := 0; k < p; k++ {
				panel[k] = kmat.At(i, j*p+k)
			}
			for k := 0; k < p2; k++ {
				ktru := kernel.It(t[i], omtst[j*p2+k])
				ktst := bc.interp(xc2[k], panel)
				errTmp = math.Max(errTmp, math.Abs(ktru-ktst))
			}
		}
		errOmega = math.Max(errOmega, errTmp/rowMax)
	}

	return errTime, errOmega, nil
}
