// Package montecarlo approximates expectations π(f) = E_π[f(X)] by random
// sampling: direct i.i.d. estimation, rejection sampling through a
// dominating proposal, and importance sampling (plain and self-normalized).
//
// 🚀 When quadrature stops working
//
//	Tensor-product quadrature costs O((n·k)^d) evaluations in d dimensions.
//	Monte Carlo trades the deterministic O(n^{-r}) rate for a dimension-free
//	O(n^{-1/2}) statistical rate: by the CLT,
//	  √n·(estimate − truth) → N(0, Var[f(X)]),
//	so every estimate here ships with its variance and standard error for
//	confidence-interval construction.
//
// ✨ Estimators:
//   - Mean:                (1/n)Σf(xᵢ) over i.i.d. draws — unbiased.
//   - Rejection:           exact draws from an unnormalized target through a
//     proposal μ and a bound M ≥ sup π/μ; the attempt
//     count is Geometric(1/M), i.e. M proposals per
//     accepted sample on average.
//   - ImportanceMean:      (1/n)Σf(xᵢ)w(xᵢ), w = π/μ — unbiased, but only
//     when π is exactly normalized.
//   - SelfNormalizedMean:  Σwf/Σw — valid for targets known only up to a
//     constant (the ratio cancels it); biased at finite
//     n, consistent as n→∞, and usually lower-variance
//     than the plain estimator. Prefer it whenever the
//     normalizing constant is unknown.
//
// ⚠️ Caller contracts (not runtime-checkable in general):
//   - Rejection requires boundM ≥ sup_x target(x)/proposal.Density(x).
//     A too-small M silently skews the output distribution; there is no
//     general runtime check. The optional attempt cap (WithMaxAttempts)
//     converts the pathological "M far too small or disjoint supports" case
//     into ErrRejectionBoundExceeded instead of an endless loop.
//   - A proposal with zero density where the target is positive loses mass
//     invisibly (importance sampling) or loops (rejection sampling). This is
//     a precondition violation, mirroring the treatment in the literature:
//     correctness is conditional on analyst-verified assumptions.
//
// Randomness is always explicit: every function takes a caller-owned
// *rand.Rand (nil ⇒ the deterministic randx default stream).
//
// See example_test.go for runnable examples.
package montecarlo
