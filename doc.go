// Package quadra is your toolbox for approximating numbers defined as
// integrals — from classic quadrature rules to Monte Carlo and Markov
// chain Monte Carlo estimation.
//
// 🚀 What is quadra?
//
//	A small, deterministic, test-driven library that brings together:
//		• Quadrature:   Lagrange interpolation, Newton–Cotes (open & closed),
//		                Gauss–Legendre rules, composite rules, N-dimensional
//		                integration via Fubini recursion
//		• Monte Carlo:  i.i.d. mean estimation with CLT error bars, rejection
//		                sampling, importance sampling (plain & self-normalized)
//		• MCMC:         Metropolis–Hastings kernels, chain simulation,
//		                kernel mixtures and cycles, parallel independent chains
//		• Distributions: ready-made Normal / Laplace / Uniform adapters and
//		                random-walk proposals backed by gonum
//
// ✨ Why choose quadra?
//
//   - Explicit randomness – every sampling call takes a caller-owned
//     *rand.Rand; same seed ⇒ same result, no hidden global state
//   - Fail-fast contracts – malformed inputs surface as sentinel errors,
//     never as a silently wrong number
//   - Documented accuracy – every rule states its convergence order, and
//     the tests verify it empirically
//   - Pure Go core – gonum only where it genuinely helps (densities, stats)
//
// The library is organized into independent subpackages:
//
//	quad/       — quadrature engine (rules, composite application, N-d)
//	montecarlo/ — i.i.d. estimation, rejection & importance sampling
//	mcmc/       — Metropolis–Hastings kernels and chain simulation
//	dist/       — distribution adapters bridging gonum/stat/distuv
//	randx/      — seed policy and independent substream derivation
//	mathutil/   — elementary numeric utilities (Newton's method, sieve)
//
// Quick taste:
//
//	rule, _ := quad.GaussLegendre(5)
//	v, _ := quad.Composite(rule, math.Sin, 0, 10, 50)
//	// v ≈ 1 - cos(10)
//
// Dive into each subpackage's doc.go for tutorials, complexity notes and
// runnable examples.
package quadra
