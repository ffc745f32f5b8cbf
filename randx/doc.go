// Package randx centralizes the library's randomness policy: explicit,
// caller-owned *rand.Rand instances and deterministic substream derivation.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden
//     anywhere in the library.
//   - Reproducible parallelism: Derive creates independent streams for
//     parallel chains or workers from one base generator.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Never share a *rand.Rand across
//     goroutines; derive one stream per goroutine instead.
//
// Every sampling entry point in this library accepts a *rand.Rand argument
// and treats nil as "use the deterministic default stream" (see New).
// Global process-wide PRNG state is never consulted.
package randx
