// Package mathutil collects small, self-contained numeric utilities with no
// coupling to the quadrature or sampling engines: Newton's method for
// one-dimensional root finding and a sieve of Eratosthenes.
//
// Everything here is deterministic, allocation-light and separately
// testable; treat it as a grab bag of course-grade algorithms with
// production-grade contracts (typed errors, documented iteration bounds).
package mathutil
