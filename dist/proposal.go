// Package dist - Markov proposal kernels built from the distribution
// adapters.
package dist

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/quadra/mcmc"
	"github.com/katalvlaran/quadra/montecarlo"
	"gonum.org/v1/gonum/stat/distuv"
)

// Compile-time interface checks: the adapters must satisfy the sampling
// capability pairs the engines dispatch on.
var (
	_ montecarlo.Proposal = Normal{}
	_ montecarlo.Proposal = Laplace{}
	_ montecarlo.Proposal = Uniform{}
	_ mcmc.ProposalKernel = RandomWalk{}
	_ mcmc.ProposalKernel = Independence{}
)

// RandomWalk is the Gaussian random-walk proposal q(x → ·) = N(x, Sigma²).
// It is symmetric — q(x→z) == q(z→x) — so the Hastings correction cancels,
// but MetropolisHastings does not rely on that.
type RandomWalk struct {
	step distuv.Normal // zero-mean step distribution
}

// NewRandomWalk returns a random-walk proposal with step deviation sigma > 0.
func NewRandomWalk(sigma float64) (RandomWalk, error) {
	if !finite(sigma) || sigma <= 0 {
		return RandomWalk{}, fmt.Errorf("%w: random walk sigma=%v", ErrBadParam, sigma)
	}

	return RandomWalk{step: distuv.Normal{Mu: 0, Sigma: sigma}}, nil
}

// Sample proposes from + N(0, Sigma²).
func (p RandomWalk) Sample(rng *rand.Rand, from float64) float64 {
	return from + p.step.Sigma*rng.NormFloat64()
}

// Density returns q(from → to) = φ_Sigma(to - from).
func (p RandomWalk) Density(from, to float64) float64 {
	return p.step.Prob(to - from)
}

// Independence lifts an unconditional proposal into a ProposalKernel that
// ignores the current state — the independence Metropolis–Hastings sampler.
// Asymmetric by construction (q(x→z) = μ(z) ≠ μ(x) = q(z→x)), so it
// exercises the full Hastings ratio.
type Independence struct {
	p montecarlo.Proposal
}

// NewIndependence wraps a non-nil proposal.
func NewIndependence(p montecarlo.Proposal) (Independence, error) {
	if p == nil {
		return Independence{}, fmt.Errorf("%w: nil proposal", ErrBadParam)
	}

	return Independence{p: p}, nil
}

// Sample draws from the wrapped proposal, discarding the current state.
func (p Independence) Sample(rng *rand.Rand, _ float64) float64 {
	return p.p.Sample(rng)
}

// Density returns μ(to); the origin state is irrelevant by construction.
func (p Independence) Density(_, to float64) float64 {
	return p.p.Density(to)
}
