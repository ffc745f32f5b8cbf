// Package mcmc - kernel combinators: probabilistic mixtures and fixed-order
// cycles.
package mcmc

import (
	"fmt"
	"math/rand"
)

// Mix returns the mixture kernel: at each step, pick kernel i with
// probability weights[i] (normalized internally) and apply it.
//
// Invariance: a mixture preserves the invariant measure whenever every
// constituent kernel does — with no further conditions. This makes Mix the
// safe way to alternate exploration strategies (e.g. a bold and a timid
// random walk).
//
// Errors: ErrNoKernels (empty set), ErrNilKernel (nil constituent),
// ErrBadWeights (length mismatch, non-finite or non-positive weight).
//
// Complexity per step: O(len(kernels)) for the cumulative scan, plus one
// constituent step.
func Mix(weights []float64, kernels ...Kernel) (Kernel, error) {
	if len(kernels) == 0 {
		return nil, ErrNoKernels
	}
	if len(weights) != len(kernels) {
		return nil, fmt.Errorf("%w: %d weights for %d kernels", ErrBadWeights, len(weights), len(kernels))
	}

	var total float64
	for i, w := range weights {
		if kernels[i] == nil {
			return nil, ErrNilKernel
		}
		if !isFinite(w) || w <= 0 {
			return nil, fmt.Errorf("%w: weights[%d]=%v", ErrBadWeights, i, w)
		}
		total += w
	}

	// Cumulative distribution over kernel indices; cum[last] pinned to 1
	// so the final bucket absorbs rounding.
	cum := make([]float64, len(weights))
	var acc float64
	for i, w := range weights {
		acc += w / total
		cum[i] = acc
	}
	cum[len(cum)-1] = 1

	picked := append([]Kernel(nil), kernels...)

	return KernelFunc(func(rng *rand.Rand, x float64) float64 {
		u := rng.Float64()
		for i, c := range cum {
			if u < c {
				return picked[i].Step(rng, x)
			}
		}

		return picked[len(picked)-1].Step(rng, x)
	}), nil
}

// Cycle returns the cycle kernel: every step applies all constituent
// kernels once, in the given fixed order.
//
// Invariance: the composition preserves the invariant measure when each
// constituent individually does (π·K₁·K₂ = π·K₂ = π). Unlike a mixture,
// the composition is generally NOT reversible even when every constituent
// is — detailed balance does not survive composition. That is fine for
// ergodic averaging, which needs invariance, not reversibility.
//
// Errors: ErrNoKernels, ErrNilKernel.
//
// Complexity per step: one step of every constituent.
func Cycle(kernels ...Kernel) (Kernel, error) {
	if len(kernels) == 0 {
		return nil, ErrNoKernels
	}
	for _, k := range kernels {
		if k == nil {
			return nil, ErrNilKernel
		}
	}

	seq := append([]Kernel(nil), kernels...)

	return KernelFunc(func(rng *rand.Rand, x float64) float64 {
		for _, k := range seq {
			x = k.Step(rng, x)
		}

		return x
	}), nil
}
