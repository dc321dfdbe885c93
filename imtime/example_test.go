package imtime_test

import (
	"fmt"
	"math"

	"github.com/Thoemi09/godlr/basis"
	"github.com/Thoemi09/godlr/imtime"
	"github.com/Thoemi09/godlr/kernel"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleOps_interpolation
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Compress a two-pole fermionic Green's function in imaginary time.
//	  G(τ) = 0.6·K(τ, -40) + 0.4·K(τ, +55)
//
// Pipeline:
//   - basis.Frequencies(Λ=100, ε=1e-10) → DLR frequencies
//   - imtime.New → interpolation nodes + transform
//   - sample G on the nodes only, fit, evaluate anywhere
//
// The expansion reproduces G on a dense sweep to roughly the requested
// accuracy, from just a handful of samples.
func ExampleOps_interpolation() {
	const (
		lambda = 100.0
		eps    = 1e-10
	)

	g := func(t float64) float64 {
		return 0.6*kernel.It(t, -40) + 0.4*kernel.It(t, 55)
	}

	rf, err := basis.Frequencies(lambda, eps)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	ops, err := imtime.New(lambda, rf)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	vals := make([]float64, ops.Rank())
	for i, tau := range ops.Nodes() {
		vals[i] = g(tau)
	}
	coefs, err := ops.Vals2CoefsVec(vals)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	var maxErr float64
	for i := 0; i < 1000; i++ {
		tau := imtime.Relative(float64(i) / 1000)
		got, _ := ops.EvalVec(coefs, tau)
		if d := math.Abs(got - g(tau)); d > maxErr {
			maxErr = d
		}
	}

	fmt.Printf("compressed to a few dozen nodes: %v\n", ops.Rank() < 60)
	fmt.Printf("max interpolation error below 1e-8: %v\n", maxErr < 1e-8)
	// Output:
	// compressed to a few dozen nodes: true
	// max interpolation error below 1e-8: true
}
