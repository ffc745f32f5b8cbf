// Package montecarlo - the plain i.i.d. Monte Carlo mean estimator.
package montecarlo

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/quadra/randx"
)

// Mean draws n i.i.d. samples from sampler and returns the sample mean of
// f(X) together with its sample variance and standard error:
//
//	Mean     = (1/n)·Σ f(xᵢ)                 — unbiased for E[f(X)]
//	Variance = (1/(n-1))·Σ (f(xᵢ) - Mean)²   — sample variance of f(X)
//	StdErr   = sqrt(Variance/n)
//
// By the CLT, Mean ± 1.96·StdErr is an asymptotic 95% confidence interval.
// Accumulation uses Welford's online algorithm: one pass, no sample buffer,
// numerically stable for large n.
//
// Errors: ErrNilSampler, ErrNilDensity (nil f), ErrBadSampleCount (n < 1),
// ErrNonFiniteEvaluation (NaN/±Inf from f). A nil rng selects the
// deterministic randx default stream.
//
// Complexity: O(n) time, O(1) space.
func Mean(sampler Sampler, f Func, n int, rng *rand.Rand) (Estimate, error) {
	if sampler == nil {
		return Estimate{}, ErrNilSampler
	}
	if f == nil {
		return Estimate{}, ErrNilDensity
	}
	if n < 1 {
		return Estimate{}, fmt.Errorf("%w: n=%d", ErrBadSampleCount, n)
	}
	rng = randx.Ensure(rng)

	// Welford's recurrence: mean_i = mean_{i-1} + (y_i - mean_{i-1})/i,
	// m2 accumulates Σ(y_i - mean)² without catastrophic cancellation.
	var mean, m2, x, y, delta float64
	for i := 1; i <= n; i++ {
		x = sampler.Sample(rng)
		y = f(x)
		if !isFinite(y) {
			return Estimate{}, fmt.Errorf("%w: f(%v)=%v", ErrNonFiniteEvaluation, x, y)
		}
		delta = y - mean
		mean += delta / float64(i)
		m2 += delta * (y - mean)
	}

	variance := 0.0
	if n > 1 {
		variance = m2 / float64(n-1)
	}

	return Estimate{
		Mean:     mean,
		Variance: variance,
		StdErr:   math.Sqrt(variance / float64(n)),
		N:        n,
	}, nil
}
