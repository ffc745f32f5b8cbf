// Package montecarlo - rejection sampling: exact draws from an unnormalized
// target through a dominating proposal.
package montecarlo

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/quadra/randx"
)

// Rejection produces one exact draw from the (possibly unnormalized) target
// density by the accept/reject loop:
//
//	repeat: z ~ proposal;  accept z with probability target(z)/(M·proposal.Density(z))
//
// Caller contract (NOT runtime-checkable in general): M must dominate the
// density ratio, M ≥ sup_x target(x)/proposal.Density(x). Violating it
// silently skews the output distribution. The attempt count is
// Geometric(1/M) when the contract holds: expect M proposal draws per
// accepted sample, so a large M is a cost problem before it is anything
// else.
//
// The loop is capped at Options.MaxAttempts (default 10⁶, override with
// WithMaxAttempts); exhaustion returns ErrRejectionBoundExceeded — the
// signature of a misspecified M or disjoint supports — rather than looping
// forever.
//
// Errors: ErrNilDensity, ErrNilSampler, ErrBadBound (M ≤ 0 or non-finite),
// ErrNonFiniteEvaluation (NaN/±Inf density value, or a zero proposal
// density making the acceptance ratio undefined), ErrRejectionBoundExceeded.
func Rejection(target Density, proposal Proposal, boundM float64, rng *rand.Rand, opts ...Option) (float64, error) {
	if target == nil {
		return 0, ErrNilDensity
	}
	if proposal == nil {
		return 0, ErrNilSampler
	}
	if !isFinite(boundM) || boundM <= 0 {
		return 0, fmt.Errorf("%w: M=%v", ErrBadBound, boundM)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	rng = randx.Ensure(rng)

	return rejectOne(target, proposal, boundM, rng, cfg.MaxAttempts)
}

// RejectionN produces n exact draws by repeated rejection sampling. The
// attempt cap applies per accepted sample, not to the batch.
//
// Errors mirror Rejection, plus ErrBadSampleCount for n < 1.
//
// Complexity: expected O(n·M) proposal draws.
func RejectionN(target Density, proposal Proposal, boundM float64, n int, rng *rand.Rand, opts ...Option) ([]float64, error) {
	if target == nil {
		return nil, ErrNilDensity
	}
	if proposal == nil {
		return nil, ErrNilSampler
	}
	if !isFinite(boundM) || boundM <= 0 {
		return nil, fmt.Errorf("%w: M=%v", ErrBadBound, boundM)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadSampleCount, n)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	rng = randx.Ensure(rng)

	draws := make([]float64, n)
	var err error
	for i := range draws {
		draws[i], err = rejectOne(target, proposal, boundM, rng, cfg.MaxAttempts)
		if err != nil {
			return nil, err
		}
	}

	return draws, nil
}

// rejectOne runs a single capped acceptance loop. Inputs are pre-validated.
func rejectOne(target Density, proposal Proposal, boundM float64, rng *rand.Rand, maxAttempts int) (float64, error) {
	var z, tz, pz float64
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		z = proposal.Sample(rng)
		tz = target(z)
		pz = proposal.Density(z)
		if !isFinite(tz) || tz < 0 {
			return 0, fmt.Errorf("%w: target(%v)=%v", ErrNonFiniteEvaluation, z, tz)
		}
		if !isFinite(pz) || pz <= 0 {
			// A zero proposal density at its own draw makes the acceptance
			// ratio undefined; fail fast instead of spinning.
			return 0, fmt.Errorf("%w: proposal density at own draw %v is %v", ErrNonFiniteEvaluation, z, pz)
		}

		// Accept with probability target(z) / (M·proposal(z)).
		if rng.Float64()*boundM*pz < tz {
			return z, nil
		}
	}

	return 0, fmt.Errorf("%w: no acceptance in %d attempts (M=%v)",
		ErrRejectionBoundExceeded, maxAttempts, boundM)
}
