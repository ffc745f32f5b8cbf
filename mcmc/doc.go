// Package mcmc constructs and simulates Markov kernels that leave a target
// distribution invariant — Metropolis–Hastings, plus mixtures and cycles of
// kernels — and provides ergodic-averaging building blocks.
//
// 🚀 Why MCMC?
//
//	When neither direct nor rejection sampling from π is practical, a Markov
//	chain with invariant distribution π still visits states with the right
//	long-run frequencies; averaging f along the chain estimates π(f).
//
// ✨ What's here:
//   - MetropolisHastings: accept a proposed move z from x with probability
//     min(1, π(z)·q(z,x) / (π(x)·q(x,z))).
//     Detailed balance w.r.t. π holds for ANY proposal density q — symmetric
//     or not; symmetry merely cancels the q-ratio. π may be unnormalized:
//     the constant cancels in the ratio.
//   - Simulate: run a kernel for a fixed number of steps from an initial
//     state. Deterministic given the RNG stream. No burn-in or thinning is
//     performed internally — discarding a warm-up prefix is the caller's
//     call, made with the caller's diagnostics.
//   - Mix / Cycle: combine kernels. A mixture (pick kernel i with
//     probability wᵢ each step) preserves invariance whenever every
//     constituent does. A cycle (apply all kernels in fixed order) also
//     preserves invariance of each constituent — but note the composition
//     is generally NOT reversible even when every constituent is.
//   - SimulateChains: independent chains with derived RNG substreams,
//     optionally in parallel. Chains are embarrassingly parallel at the
//     chain level only: within a chain each state depends on the previous
//     one, so steps are inherently sequential.
//   - AcceptanceRate: fraction of steps that moved — the standard proposal
//     tuning diagnostic.
//
// ⚙️ Usage:
//
//	prop, _ := dist.NewRandomWalk(1.0)
//	k, _ := mcmc.MetropolisHastings(target, prop)
//	chain, _ := mcmc.Simulate(k, 0, 100_000, randx.New(42))
//	kept := chain[10_000:] // caller-chosen burn-in
//
// Termination is purely count-bounded (the step budget); there are no
// timeouts or cancellation points — each step is a cheap pure function.
//
// See example_test.go for runnable examples.
package mcmc
