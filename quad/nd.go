// Package quad - N-dimensional integration by recursive application of
// Fubini's theorem.
package quad

import "fmt"

// ndRuleOrder is the Gauss–Legendre point count used per dimension.
const ndRuleOrder = 5

// IntegrateND approximates the d-dimensional integral of f over the box
// [lower₀,upper₀]×...×[lower_{d-1},upper_{d-1}] by Fubini's theorem: the
// outermost dimension is integrated with an n-subinterval composite
// Gauss–Legendre(5) rule whose integrand recursively integrates the
// remaining dimensions.
//
// Cost is O((n·5)^d) function evaluations — the curse of dimensionality.
// This growth is inherent to tensor-product quadrature, not a defect;
// beyond a handful of dimensions use package montecarlo instead.
//
// The recursion is genuine (one stack frame per dimension, depth d).
//
// Edge cases:
//   - len(lower) != len(upper) or zero length: ErrDimensionMismatch.
//   - any lowerᵢ > upperᵢ or non-finite bound: ErrInvalidInterval.
//   - any lowerᵢ == upperᵢ: the box has measure zero, returns 0.
//   - n < 1: ErrBadSubintervals.
//   - NaN/±Inf from f: ErrNonFiniteEvaluation.
func IntegrateND(f NDFunc, lower, upper []float64, n int) (float64, error) {
	d := len(lower)
	if d == 0 || len(upper) != d {
		return 0, fmt.Errorf("%w: len(lower)=%d len(upper)=%d", ErrDimensionMismatch, d, len(upper))
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: n=%d", ErrBadSubintervals, n)
	}
	degenerate := false
	for i := 0; i < d; i++ {
		if err := checkInterval(lower[i], upper[i]); err != nil {
			return 0, fmt.Errorf("%w (dimension %d)", err, i)
		}
		if lower[i] == upper[i] {
			degenerate = true
		}
	}
	if degenerate {
		return 0, nil
	}

	rule, err := GaussLegendre(ndRuleOrder)
	if err != nil {
		return 0, err
	}

	// point is reused across the whole recursion; f must not retain it.
	point := make([]float64, d)

	var integrate func(dim int) (float64, error)
	integrate = func(dim int) (float64, error) {
		if dim == d {
			v := f(point)
			if !isFinite(v) {
				return 0, fmt.Errorf("%w: f(%v)=%v", ErrNonFiniteEvaluation, point, v)
			}

			return v, nil
		}

		// The 1-D integrand of this dimension fixes point[dim] and defers
		// to the inner dimensions. Composite's Func signature carries no
		// error, so the first inner failure is captured and re-raised
		// after the sweep.
		var innerErr error
		g := func(x float64) float64 {
			point[dim] = x
			v, err := integrate(dim + 1)
			if err != nil && innerErr == nil {
				innerErr = err
			}

			return v
		}

		v, err := Composite(rule, g, lower[dim], upper[dim], n)
		if innerErr != nil {
			return 0, innerErr
		}

		return v, err
	}

	return integrate(0)
}
