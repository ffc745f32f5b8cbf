// Package mcmc - core types, sentinel errors and functional options.
package mcmc

import (
	"errors"
	"math"
	"math/rand"
)

// Sentinel errors returned by the MCMC engine.
var (
	// ErrNilKernel indicates a nil Kernel argument.
	ErrNilKernel = errors.New("mcmc: kernel must be non-nil")

	// ErrNilDensity indicates a nil target density.
	ErrNilDensity = errors.New("mcmc: target density must be non-nil")

	// ErrNilProposal indicates a nil proposal kernel.
	ErrNilProposal = errors.New("mcmc: proposal kernel must be non-nil")

	// ErrBadChainLength indicates a requested step count < 1.
	ErrBadChainLength = errors.New("mcmc: chain length must be >= 1")

	// ErrBadState indicates a NaN or ±Inf initial state.
	ErrBadState = errors.New("mcmc: initial state must be finite")

	// ErrNoKernels indicates an empty kernel set passed to Mix or Cycle.
	ErrNoKernels = errors.New("mcmc: at least one kernel is required")

	// ErrBadWeights indicates mixture weights that are missing, mismatched
	// in length, non-finite or not strictly positive.
	ErrBadWeights = errors.New("mcmc: mixture weights must be positive, finite and match the kernel count")

	// ErrNoChains indicates an empty initial-state set for SimulateChains.
	ErrNoChains = errors.New("mcmc: at least one initial state is required")

	// ErrBadWorkers indicates WithWorkers was given a value < 1.
	ErrBadWorkers = errors.New("mcmc: worker count must be >= 1")
)

// Density evaluates a non-negative, possibly unnormalized target density.
// The Metropolis–Hastings ratio cancels any constant factor.
type Density func(x float64) float64

// Kernel is a Markov transition rule: given the current state and a source
// of randomness, produce the next state. Implementations constructed by
// this package preserve their target's invariant measure.
type Kernel interface {
	Step(rng *rand.Rand, x float64) float64
}

// KernelFunc adapts a plain function to the Kernel interface.
type KernelFunc func(rng *rand.Rand, x float64) float64

// Step implements Kernel.
func (f KernelFunc) Step(rng *rand.Rand, x float64) float64 { return f(rng, x) }

// ProposalKernel is a conditional proposal distribution q(·|from): it can
// draw a candidate given the current state and evaluate the density of
// proposing `to` from `from`. Symmetry is NOT assumed anywhere.
type ProposalKernel interface {
	// Sample draws a candidate state given the current state.
	Sample(rng *rand.Rand, from float64) float64

	// Density returns q(from → to), the density of proposing to from from.
	Density(from, to float64) float64
}

// Options configures multi-chain simulation.
//
// Workers – number of goroutines running chains in parallel. Default 1.
// Per-chain RNG substreams are derived before fan-out, so results are
// identical for every worker count.
type Options struct {
	Workers int
}

// Option is a functional option for SimulateChains.
type Option func(*Options)

// WithWorkers runs independent chains on w goroutines.
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
