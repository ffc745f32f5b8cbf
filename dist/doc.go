// Package dist provides ready-made distribution adapters that bridge
// gonum's density implementations (gonum.org/v1/gonum/stat/distuv) into the
// toolkit's sampling interfaces.
//
// Each adapter is a small immutable value that pairs:
//   - exact pdf evaluation, delegated to distuv, with
//   - sampling driven by an explicit caller-owned *rand.Rand — never
//     distuv's own source, so one generator governs an entire experiment.
//
// Adapters:
//   - Normal, Laplace, Uniform — implement montecarlo.Proposal (Sample +
//     Density), the capability pair needed by rejection and importance
//     sampling.
//   - RandomWalk  — a Gaussian-step mcmc.ProposalKernel (symmetric).
//   - Independence — lifts any montecarlo.Proposal into an
//     mcmc.ProposalKernel that ignores the current state (independence
//     Metropolis–Hastings).
//
// Constructors validate parameters and return ErrBadParam on nonsense
// (σ ≤ 0, b ≤ a, ...); the zero values are deliberately unusable.
package dist
