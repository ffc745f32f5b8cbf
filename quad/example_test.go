package quad_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quadra/quad"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleComposite
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	∫₀^π sin(x)dx = 2, approximated with the composite Simpson rule over
//	100 equal subintervals.
//
// Accuracy:
//
//	Simpson's composite error is O(n^{-4}); at n=100 the error is ~1e-8,
//	far below the printed precision.
//
// Complexity: O(n·k) integrand evaluations.
func ExampleComposite() {
	v, err := quad.Composite(quad.Simpson(), math.Sin, 0, math.Pi, 100)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.6f\n", v)
	// Output:
	// 2.000000
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleGaussLegendre
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A 3-point Gauss–Legendre rule is exact for polynomials up to degree
//	2k-1 = 5: a single application over [-1,1] to 1+x+x²+x³+x⁴+x⁵ returns
//	the exact 2 + 2/3 + 2/5 = 46/15.
func ExampleGaussLegendre() {
	rule, err := quad.GaussLegendre(3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	f := func(x float64) float64 {
		return 1 + x + x*x + x*x*x + x*x*x*x + x*x*x*x*x
	}
	v, err := rule.Apply(f, -1, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.6f\n", v)
	// Output:
	// 3.066667
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleInterpolate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Three samples of x² determine it exactly: the Lagrange interpolant of a
//	quadratic through 3 points IS the quadratic, so extrapolation is exact.
func ExampleInterpolate() {
	f := func(x float64) float64 { return x * x }

	p, err := quad.Interpolate(f, []float64{0, 1, 2})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("degree=%d p(3)=%.0f\n", p.Degree(), p.Eval(3))
	// Output:
	// degree=2 p(3)=9
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleIntegrateND
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The constant 1 over the box [0,1]×[0,2] integrates to its area.
//	Cost grows as O((n·5)^d) with dimension d — fine at d=2, ruinous at
//	d=10; that cliff is the curse of dimensionality.
func ExampleIntegrateND() {
	one := func([]float64) float64 { return 1 }

	v, err := quad.IntegrateND(one, []float64{0, 0}, []float64{1, 2}, 4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.4f\n", v)
	// Output:
	// 2.0000
}
