// Package mcmc - the Metropolis–Hastings kernel constructor.
package mcmc

import "math/rand"

// MetropolisHastings builds a Markov kernel with invariant distribution
// proportional to target, using an arbitrary (possibly asymmetric) proposal.
//
// One step from state x:
//
//	z ~ prop.Sample(·|x)
//	α  = min(1, target(z)·q(z→x) / (target(x)·q(x→z)))
//	return z with probability α, else x
//
// Correctness rests on detailed balance w.r.t. target — which the Hastings
// q-ratio guarantees for ANY proposal density, symmetric or not. target may
// be unnormalized; the constant cancels in α.
//
// Degenerate-ratio policy: if target(x)·q(x→z) == 0 the ratio is undefined;
// the kernel accepts the move. Starting states of zero target mass are
// thereby escaped instead of absorbing the chain (a state with positive
// mass is never left this way, since its denominator is positive).
// Proposals that can strand the chain (q zero on part of the target's
// support) break irreducibility silently — a caller contract, not a
// runtime-detectable error.
//
// Errors: ErrNilDensity, ErrNilProposal.
//
// Complexity per step: one proposal draw, two target and two proposal
// density evaluations.
func MetropolisHastings(target Density, prop ProposalKernel) (Kernel, error) {
	if target == nil {
		return nil, ErrNilDensity
	}
	if prop == nil {
		return nil, ErrNilProposal
	}

	return KernelFunc(func(rng *rand.Rand, x float64) float64 {
		z := prop.Sample(rng, x)

		// Compare u·den < num instead of u < num/den to dodge 0/0.
		num := target(z) * prop.Density(z, x)
		den := target(x) * prop.Density(x, z)
		if den <= 0 {
			return z // undefined ratio: escape zero-mass states
		}
		if num >= den {
			return z // α = 1
		}
		if rng.Float64()*den < num {
			return z
		}

		return x
	}), nil
}
