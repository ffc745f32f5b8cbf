// Package montecarlo - importance sampling: plain (normalized target) and
// self-normalized (target known up to a constant) estimators.
package montecarlo

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/quadra/randx"
)

// ImportanceMean estimates E_π[f(X)] by reweighting n i.i.d. draws from the
// proposal μ:
//
//	Mean = (1/n)·Σ f(xᵢ)·w(xᵢ),  w(x) = target(x)/proposal.Density(x)
//
// Unbiased — but only when target is exactly normalized (integrates to 1);
// an unnormalized target biases the estimate by the missing constant. When
// the constant is unknown, use SelfNormalizedMean instead.
//
// Variance/StdErr are the sample statistics of the weighted terms f·w,
// giving the usual CLT interval around Mean.
//
// A zero proposal density at a drawn point makes w infinite and surfaces as
// ErrNonFiniteEvaluation; a proposal whose support misses part of the
// target's support loses that mass invisibly — a documented precondition,
// not a detectable error.
//
// Complexity: O(n) time, O(1) space.
func ImportanceMean(target Density, proposal Proposal, f Func, n int, rng *rand.Rand) (Estimate, error) {
	if target == nil || f == nil {
		return Estimate{}, ErrNilDensity
	}
	if proposal == nil {
		return Estimate{}, ErrNilSampler
	}
	if n < 1 {
		return Estimate{}, fmt.Errorf("%w: n=%d", ErrBadSampleCount, n)
	}
	rng = randx.Ensure(rng)

	// Welford over the weighted terms y = w·f.
	var mean, m2, x, w, y, delta float64
	var err error
	for i := 1; i <= n; i++ {
		x = proposal.Sample(rng)
		w, err = importanceWeight(target, proposal, x)
		if err != nil {
			return Estimate{}, err
		}
		y = w * f(x)
		if !isFinite(y) {
			return Estimate{}, fmt.Errorf("%w: w·f at x=%v is %v", ErrNonFiniteEvaluation, x, y)
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

// SelfNormalizedMean estimates E_π[f(X)] with the self-normalized ratio
//
//	Mean = Σ w(xᵢ)·f(xᵢ) / Σ w(xᵢ)
//
// Valid even when target is known only up to a constant: the constant
// appears in numerator and denominator and cancels. The estimator is biased
// at finite n but consistent as n→∞, with asymptotic variance
// ∫(f(x)-π(f))²·w(x)·π(dx) — generally smaller than the plain estimator's,
// which is why it is the practical default whenever normalization is
// uncertain.
//
// StdErr is the delta-method standard error sqrt(Σwᵢ²(fᵢ-Mean)²)/Σw;
// Variance is n·StdErr² for interface consistency with the other
// estimators.
//
// Errors mirror ImportanceMean, plus ErrZeroWeightSum when every weight is
// zero (disjoint supports on the realized draws).
//
// Complexity: O(n) time, O(n) space (two passes over retained terms).
func SelfNormalizedMean(target Density, proposal Proposal, f Func, n int, rng *rand.Rand) (Estimate, error) {
	if target == nil || f == nil {
		return Estimate{}, ErrNilDensity
	}
	if proposal == nil {
		return Estimate{}, ErrNilSampler
	}
	if n < 1 {
		return Estimate{}, fmt.Errorf("%w: n=%d", ErrBadSampleCount, n)
	}
	rng = randx.Ensure(rng)

	// First pass: draw, weigh, accumulate Σw and Σwf; retain per-draw terms
	// for the second-pass spread estimate around the ratio.
	weights := make([]float64, n)
	values := make([]float64, n)
	var sumW, sumWF, x, w, fx float64
	var err error
	for i := 0; i < n; i++ {
		x = proposal.Sample(rng)
		w, err = importanceWeight(target, proposal, x)
		if err != nil {
			return Estimate{}, err
		}
		fx = f(x)
		if !isFinite(fx) {
			return Estimate{}, fmt.Errorf("%w: f(%v)=%v", ErrNonFiniteEvaluation, x, fx)
		}
		weights[i] = w
		values[i] = fx
		sumW += w
		sumWF += w * fx
	}
	if sumW == 0 {
		return Estimate{}, ErrZeroWeightSum
	}

	mean := sumWF / sumW

	// Delta-method spread: Σ wᵢ²·(fᵢ - mean)² / (Σw)².
	var s float64
	var d float64
	for i := 0; i < n; i++ {
		d = weights[i] * (values[i] - mean)
		s += d * d
	}
	stdErr := math.Sqrt(s) / sumW

	return Estimate{
		Mean:     mean,
		Variance: float64(n) * stdErr * stdErr,
		StdErr:   stdErr,
		N:        n,
	}, nil
}

// importanceWeight computes w(x) = target(x)/proposal.Density(x), failing
// fast on non-finite or negative inputs and on a zero proposal density under
// positive target mass.
func importanceWeight(target Density, proposal Proposal, x float64) (float64, error) {
	tx := target(x)
	px := proposal.Density(x)
	if !isFinite(tx) || tx < 0 {
		return 0, fmt.Errorf("%w: target(%v)=%v", ErrNonFiniteEvaluation, x, tx)
	}
	if !isFinite(px) || px < 0 {
		return 0, fmt.Errorf("%w: proposal(%v)=%v", ErrNonFiniteEvaluation, x, px)
	}
	if px == 0 {
		if tx == 0 {
			return 0, nil // both vanish: the point carries no mass either way
		}

		return 0, fmt.Errorf("%w: proposal density is zero at x=%v with positive target mass",
			ErrNonFiniteEvaluation, x)
	}

	return tx / px, nil
}
