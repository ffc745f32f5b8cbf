// Package mathutil - prime enumeration and testing.
package mathutil

import (
	"errors"
	"fmt"
)

// ErrBadLimit indicates a negative sieve limit.
var ErrBadLimit = errors.New("mathutil: sieve limit must be non-negative")

// Sieve returns all primes <= n in increasing order using the sieve of
// Eratosthenes. n < 2 yields an empty (non-nil) slice; n < 0 is ErrBadLimit.
//
// Complexity: O(n log log n) time, O(n) space.
func Sieve(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadLimit, n)
	}
	if n < 2 {
		return []int{}, nil
	}

	composite := make([]bool, n+1)
	for p := 2; p*p <= n; p++ {
		if composite[p] {
			continue
		}
		// p² is the first multiple not already struck by a smaller prime.
		for m := p * p; m <= n; m += p {
			composite[m] = true
		}
	}

	primes := make([]int, 0, n/2)
	for p := 2; p <= n; p++ {
		if !composite[p] {
			primes = append(primes, p)
		}
	}

	return primes, nil
}

// IsPrime reports whether n is prime by trial division up to √n.
//
// Complexity: O(√n).
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}
