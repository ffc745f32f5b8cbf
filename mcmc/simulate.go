// Package mcmc - chain simulation: single chains and parallel independent
// chains with derived RNG substreams.
package mcmc

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/katalvlaran/quadra/randx"
)

// Simulate applies the kernel steps times starting from initial and returns
// the full trajectory: a slice of length steps+1 with chain[0] == initial.
//
// The result is deterministic given the RNG stream and the initial state.
// No burn-in is discarded and no thinning is applied — both are caller
// decisions, made with caller diagnostics (see AcceptanceRate, or run
// several chains via SimulateChains and compare).
//
// Chain steps are inherently sequential: state i+1 depends on state i plus
// a fresh draw. Parallelism exists only across independent chains.
//
// Errors: ErrNilKernel, ErrBadChainLength (steps < 1), ErrBadState
// (non-finite initial). A nil rng selects the deterministic randx default
// stream.
//
// Complexity: O(steps) kernel applications, O(steps) memory.
func Simulate(kernel Kernel, initial float64, steps int, rng *rand.Rand) ([]float64, error) {
	if kernel == nil {
		return nil, ErrNilKernel
	}
	if steps < 1 {
		return nil, fmt.Errorf("%w: steps=%d", ErrBadChainLength, steps)
	}
	if !isFinite(initial) {
		return nil, fmt.Errorf("%w: initial=%v", ErrBadState, initial)
	}
	rng = randx.Ensure(rng)

	chain := make([]float64, steps+1)
	chain[0] = initial
	for i := 1; i <= steps; i++ {
		chain[i] = kernel.Step(rng, chain[i-1])
	}

	return chain, nil
}

// SimulateChains runs one independent chain per initial state, each on its
// own RNG substream derived from base (randx.Derive with the chain index as
// stream id). Substreams are derived sequentially before any goroutine
// starts, so the result is identical for every worker count.
//
// WithWorkers(w) runs up to w chains concurrently — the chain-level
// embarrassing parallelism used for multi-chain convergence diagnostics.
//
// Errors: ErrNilKernel, ErrNoChains, plus per-chain Simulate errors
// (first one wins).
//
// Complexity: O(len(initials)·steps) kernel applications.
func SimulateChains(kernel Kernel, initials []float64, steps int, base *rand.Rand, opts ...Option) ([][]float64, error) {
	if kernel == nil {
		return nil, ErrNilKernel
	}
	if len(initials) == 0 {
		return nil, ErrNoChains
	}
	if steps < 1 {
		return nil, fmt.Errorf("%w: steps=%d", ErrBadChainLength, steps)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Derivation order is fixed here, independent of scheduling below.
	rngs := make([]*rand.Rand, len(initials))
	for i := range initials {
		rngs[i] = randx.Derive(base, uint64(i))
	}

	chains := make([][]float64, len(initials))
	errs := make([]error, len(initials))

	workers := cfg.Workers
	if workers > len(initials) {
		workers = len(initials)
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i := range initials {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			chains[i], errs[i] = Simulate(kernel, initials[i], steps, rngs[i])
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return chains, nil
}

// AcceptanceRate returns the fraction of transitions in the chain that
// changed state — the standard diagnostic for tuning proposal scale
// (too high: steps too timid; too low: steps too bold).
//
// A chain shorter than 2 states has no transitions; the rate is 0.
func AcceptanceRate(chain []float64) float64 {
	if len(chain) < 2 {
		return 0
	}

	moved := 0
	for i := 1; i < len(chain); i++ {
		if chain[i] != chain[i-1] {
			moved++
		}
	}

	return float64(moved) / float64(len(chain)-1)
}
