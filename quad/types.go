// Package quad - core types, sentinel errors and functional options for the
// quadrature engine.
//
// Design goals (mirrored across the library):
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Fail fast: malformed input surfaces as a sentinel error at the call
//     site; no silent NaN propagation into a returned result.
//   - Value semantics: a Rule is immutable after construction and safe to
//     share across goroutines.
package quad

import (
	"errors"
	"math"
)

// Sentinel errors returned by the quadrature engine.
var (
	// ErrInvalidInterval indicates malformed integration bounds: a NaN or
	// ±Inf endpoint, or a > b (the reversed-interval convention is rejected,
	// not negated silently).
	ErrInvalidInterval = errors.New("quad: invalid integration interval")

	// ErrDegenerateInterpolation indicates duplicate interpolation abscissas,
	// which would divide by zero in the Lagrange basis.
	ErrDegenerateInterpolation = errors.New("quad: duplicate interpolation points")

	// ErrRuleNotImplemented indicates a requested Newton–Cotes or
	// Gauss–Legendre order outside the supported set.
	ErrRuleNotImplemented = errors.New("quad: requested rule order not implemented")

	// ErrNonFiniteEvaluation indicates the integrand returned NaN or ±Inf
	// where a finite value was required.
	ErrNonFiniteEvaluation = errors.New("quad: integrand returned a non-finite value")

	// ErrBadSubintervals indicates a composite subdivision count n < 1.
	ErrBadSubintervals = errors.New("quad: subinterval count must be >= 1")

	// ErrDimensionMismatch indicates N-dimensional bounds of unequal or zero
	// length.
	ErrDimensionMismatch = errors.New("quad: lower/upper bounds must have equal, non-zero length")

	// ErrNoPoints indicates an empty interpolation point set.
	ErrNoPoints = errors.New("quad: at least one interpolation point is required")

	// ErrInvalidRule indicates a malformed Rule: empty node set, mismatched
	// node/weight lengths, nodes outside [0,1], or weights that do not sum
	// to the interval length.
	ErrInvalidRule = errors.New("quad: malformed quadrature rule")

	// ErrBadWorkers indicates WithWorkers was given a value < 1.
	ErrBadWorkers = errors.New("quad: worker count must be >= 1")
)

// Func is a one-dimensional integrand, evaluable at arbitrary points of the
// integration interval.
type Func func(x float64) float64

// NDFunc is a d-dimensional integrand. The point slice is reused between
// evaluations; implementations must not retain it.
type NDFunc func(x []float64) float64

// Variant selects between the closed and open families of Newton–Cotes rules.
//
//   - Closed rules may evaluate the integrand at the interval endpoints.
//   - Open rules keep all nodes strictly inside the interval, for integrands
//     that are singular (or simply undefined) at an endpoint.
type Variant int

const (
	// Closed Newton–Cotes: nodes include the interval endpoints.
	// k=1 is the left-endpoint rectangle rule (by convention), k=2 the
	// trapezoid rule, k=3 Simpson's rule.
	Closed Variant = iota

	// Open Newton–Cotes: nodes are strictly interior.
	// k=1 is the midpoint rule, k=2 the two-point open rule, k=3 Milne's rule.
	Open
)

// weightSumTolerance bounds the allowed deviation of Σwᵢ from 1 on the
// reference interval when validating a Rule.
const weightSumTolerance = 1e-12

// Rule is an immutable quadrature rule stored on the reference interval
// [0,1]: ordered nodes tᵢ ∈ [0,1] and weights wᵢ with Σwᵢ = 1, so the
// constant function 1 integrates exactly to b-a after rescaling.
//
// Construct one via NewtonCotes, GaussLegendre or NewRule and reuse it for
// every subinterval of a composite application.
type Rule struct {
	name    string
	nodes   []float64 // reference nodes in [0,1], strictly increasing
	weights []float64 // reference weights, Σ = 1
	order   int       // composite convergence order r: error = O(n^{-r})
}

// NewRule builds a custom rule from reference nodes in [0,1] and weights
// summing to 1. order documents the composite convergence rate and must be
// >= 1. Nodes must be strictly increasing. Returns ErrInvalidRule otherwise.
func NewRule(name string, nodes, weights []float64, order int) (Rule, error) {
	if len(nodes) == 0 || len(nodes) != len(weights) || order < 1 {
		return Rule{}, ErrInvalidRule
	}

	var sum float64
	for i := range nodes {
		if !isFinite(nodes[i]) || nodes[i] < 0 || nodes[i] > 1 {
			return Rule{}, ErrInvalidRule
		}
		if i > 0 && nodes[i] <= nodes[i-1] {
			return Rule{}, ErrInvalidRule
		}
		if !isFinite(weights[i]) {
			return Rule{}, ErrInvalidRule
		}
		sum += weights[i]
	}
	if math.Abs(sum-1) > weightSumTolerance {
		return Rule{}, ErrInvalidRule
	}

	r := Rule{
		name:    name,
		nodes:   append([]float64(nil), nodes...),
		weights: append([]float64(nil), weights...),
		order:   order,
	}

	return r, nil
}

// Name returns the rule's human-readable identifier.
func (r Rule) Name() string { return r.name }

// Len returns the number of evaluation points per interval.
func (r Rule) Len() int { return len(r.nodes) }

// Order returns the composite convergence order r: halving the subinterval
// width divides the error by ~2^r.
func (r Rule) Order() int { return r.order }

// Nodes returns a copy of the reference nodes on [0,1].
func (r Rule) Nodes() []float64 { return append([]float64(nil), r.nodes...) }

// Weights returns a copy of the reference weights (summing to 1).
func (r Rule) Weights() []float64 { return append([]float64(nil), r.weights...) }

// valid reports whether the rule was built by a constructor (a zero-value
// Rule is unusable).
func (r Rule) valid() bool { return len(r.nodes) > 0 && len(r.nodes) == len(r.weights) }

// Options configures composite integration.
//
// Workers – number of goroutines evaluating subintervals in parallel.
// Default 1 (sequential). Correctness never depends on Workers: results are
// identical up to floating-point summation order, which may differ between
// worker counts by a few ulps.
type Options struct {
	Workers int
}

// Option is a functional option for Composite and IntegrateND.
type Option func(*Options)

// WithWorkers fans subinterval evaluation out to w goroutines.
// Must pass w >= 1; other values panic (programmer error).
func WithWorkers(w int) Option {
	return func(o *Options) {
		if w < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = w
	}
}

// DefaultOptions returns the sequential default configuration.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// checkInterval validates integration bounds: both finite, a <= b.
func checkInterval(a, b float64) error {
	if !isFinite(a) || !isFinite(b) || a > b {
		return ErrInvalidInterval
	}

	return nil
}
