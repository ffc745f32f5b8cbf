// Package quad approximates definite integrals ∫_a^b f(x)dx with pluggable
// quadrature rules and explicit, documented error orders.
//
// 🚀 What is quadrature?
//
//	A quadrature rule replaces an integral by a weighted sum of function
//	values at fixed points:
//	  ∫_a^b f(x)dx ≈ Σ wᵢ·f(xᵢ)
//	The points come from polynomial interpolation: integrate the unique
//	polynomial through the samples instead of f itself.  It's the workhorse
//	behind:
//	  • numerical solution of ODEs/PDEs (inner products, stiffness matrices)
//	  • expectation computation for low-dimensional distributions
//	  • any place a closed-form antiderivative does not exist
//
// ✨ Key features:
//   - Newton–Cotes rules (closed & open variants, orders 1–3):
//     rectangle, trapezoid, Simpson / midpoint, open-2, Milne
//   - Gauss–Legendre rules of 1–5 points, exact up to degree 2k−1
//   - Lagrange interpolation with exact polynomial algebra (the Newton–Cotes
//     weights are derived by integrating the basis polynomials, not typed in)
//   - composite application over n equal subintervals — the sole accuracy
//     knob in practice, with error O(n^{-r}) where r is the rule's order
//   - optional data-parallel composite evaluation (WithWorkers)
//   - recursive N-dimensional integration via Fubini's theorem
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/quadra/quad"
//
//	rule, err := quad.GaussLegendre(5)
//	if err != nil { ... }
//	v, err := quad.Composite(rule, math.Sin, 0, 10, 50)
//	// v ≈ 1 - cos(10), |error| = O(n^{-10})
//
// Conventions:
//
//   - Bounds must be finite and a ≤ b; a > b is rejected with
//     ErrInvalidInterval (the reversed-interval sign convention is never
//     inferred silently).  a == b returns 0 without evaluating f.
//   - A NaN or ±Inf from the integrand surfaces as ErrNonFiniteEvaluation,
//     never as a silently-poisoned result.
//   - IntegrateND costs O((n·k)^d) function evaluations — the curse of
//     dimensionality, inherent to tensor-product quadrature, not a bug.
//     Prefer package montecarlo beyond a handful of dimensions.
//
// Performance:
//
//   - Rule construction: O(k²) once; reuse the Rule across calls.
//   - Apply: O(k).  Composite: O(n·k).  IntegrateND: O((n·k)^d).
//
// See example_test.go for runnable examples.
package quad
