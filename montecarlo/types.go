// Package montecarlo - core types, sentinel errors and functional options.
package montecarlo

import (
	"errors"
	"math"
	"math/rand"
)

// Sentinel errors returned by the Monte Carlo engine.
var (
	// ErrBadSampleCount indicates a requested sample count n < 1.
	ErrBadSampleCount = errors.New("montecarlo: sample count must be >= 1")

	// ErrNilSampler indicates a nil Sampler or Proposal argument.
	ErrNilSampler = errors.New("montecarlo: sampler must be non-nil")

	// ErrNilDensity indicates a nil density or integrand function argument.
	ErrNilDensity = errors.New("montecarlo: density/function must be non-nil")

	// ErrBadBound indicates a rejection-sampling bound M that is zero,
	// negative, NaN or ±Inf.
	ErrBadBound = errors.New("montecarlo: rejection bound M must be finite and > 0")

	// ErrRejectionBoundExceeded indicates the rejection-sampling attempt cap
	// was exhausted without an acceptance — the bound M is likely
	// misspecified or the supports do not overlap.
	ErrRejectionBoundExceeded = errors.New("montecarlo: rejection sampling attempt cap exhausted")

	// ErrNonFiniteEvaluation indicates a supplied function or density
	// returned NaN or ±Inf (including an infinite importance weight from a
	// zero proposal density).
	ErrNonFiniteEvaluation = errors.New("montecarlo: non-finite evaluation")

	// ErrZeroWeightSum indicates all self-normalized importance weights were
	// zero, leaving the estimator undefined.
	ErrZeroWeightSum = errors.New("montecarlo: importance weights sum to zero")

	// ErrBadMaxAttempts indicates WithMaxAttempts was given a value < 1.
	ErrBadMaxAttempts = errors.New("montecarlo: max attempts must be >= 1")
)

// Func is a real-valued test function whose expectation is estimated.
type Func func(x float64) float64

// Density evaluates a non-negative, possibly unnormalized probability
// density at a point.
type Density func(x float64) float64

// Sampler produces one i.i.d. draw per call, consuming entropy only from the
// supplied generator. Implementations must be stateless between calls.
type Sampler interface {
	Sample(rng *rand.Rand) float64
}

// SamplerFunc adapts a plain function to the Sampler interface.
type SamplerFunc func(rng *rand.Rand) float64

// Sample implements Sampler.
func (f SamplerFunc) Sample(rng *rand.Rand) float64 { return f(rng) }

// Proposal is a distribution that supports both drawing and pointwise
// density evaluation — the capability pair required by rejection and
// importance sampling.
type Proposal interface {
	Sampler

	// Density returns the proposal's (normalized) density at x.
	Density(x float64) float64
}

// Estimate is a point estimate with companion spread statistics for
// CLT-based confidence intervals: Mean ± z·StdErr.
type Estimate struct {
	// Mean is the point estimate of E[f(X)].
	Mean float64

	// Variance is the sample variance of the averaged terms.
	Variance float64

	// StdErr is sqrt(Variance/N), the standard error of Mean.
	StdErr float64

	// N is the number of draws consumed.
	N int
}

// defaultMaxAttempts caps a single rejection-sampling acceptance loop.
// Generous: a correctly bounded sampler with M as large as 10⁴ exhausts it
// with probability < exp(-100); only a misspecified M plausibly hits it.
const defaultMaxAttempts = 1_000_000

// Options configures rejection sampling.
//
// MaxAttempts – upper bound on proposal draws per accepted sample; when
// exhausted, Rejection fails with ErrRejectionBoundExceeded rather than
// looping forever on a misspecified bound.
type Options struct {
	MaxAttempts int
}

// Option is a functional option for Rejection and RejectionN.
type Option func(*Options)

// WithMaxAttempts caps the number of proposal draws per accepted sample.
// Must pass k >= 1; other values panic (programmer error).
func WithMaxAttempts(k int) Option {
	return func(o *Options) {
		if k < 1 {
			panic(ErrBadMaxAttempts.Error())
		}
		o.MaxAttempts = k
	}
}

// DefaultOptions returns the default rejection-sampling configuration.
func DefaultOptions() Options {
	return Options{MaxAttempts: defaultMaxAttempts}
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
