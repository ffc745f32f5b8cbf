// Package mathutil - Newton's method for f(x) = 0 in one dimension.
package mathutil

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by NewtonRoot.
var (
	// ErrNilFunc indicates a nil function or derivative argument.
	ErrNilFunc = errors.New("mathutil: function and derivative must be non-nil")

	// ErrZeroDerivative indicates f'(x) vanished at an iterate, so the
	// Newton step is undefined.
	ErrZeroDerivative = errors.New("mathutil: derivative is zero at iterate")

	// ErrNoConvergence indicates the iteration budget was exhausted before
	// |f(x)| fell under the tolerance.
	ErrNoConvergence = errors.New("mathutil: Newton iteration did not converge")

	// ErrBadTolerance indicates WithTolerance was given a non-positive or
	// non-finite value.
	ErrBadTolerance = errors.New("mathutil: tolerance must be finite and > 0")

	// ErrBadMaxIter indicates WithMaxIterations was given a value < 1.
	ErrBadMaxIter = errors.New("mathutil: max iterations must be >= 1")

	// ErrNonFinite indicates an iterate or function value became NaN/±Inf.
	ErrNonFinite = errors.New("mathutil: non-finite value during iteration")
)

// Func is a real function of one real variable.
type Func func(x float64) float64

// Default Newton iteration parameters. Quadratic convergence near a simple
// root makes 50 iterations ample for any reasonable starting point.
const (
	DefaultTolerance     = 1e-12
	DefaultMaxIterations = 50
)

// NewtonOptions configures NewtonRoot.
//
// Tolerance     – stop once |f(x)| <= Tolerance.
// MaxIterations – iteration budget before ErrNoConvergence.
type NewtonOptions struct {
	Tolerance     float64
	MaxIterations int
}

// NewtonOption is a functional option for NewtonRoot.
type NewtonOption func(*NewtonOptions)

// WithTolerance sets the convergence tolerance on |f(x)|.
// Must pass a finite tol > 0; other values panic (programmer error).
func WithTolerance(tol float64) NewtonOption {
	return func(o *NewtonOptions) {
		if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
			panic(ErrBadTolerance.Error())
		}
		o.Tolerance = tol
	}
}

// WithMaxIterations sets the iteration budget.
// Must pass n >= 1; other values panic (programmer error).
func WithMaxIterations(n int) NewtonOption {
	return func(o *NewtonOptions) {
		if n < 1 {
			panic(ErrBadMaxIter.Error())
		}
		o.MaxIterations = n
	}
}

// DefaultNewtonOptions returns the default iteration parameters.
func DefaultNewtonOptions() NewtonOptions {
	return NewtonOptions{Tolerance: DefaultTolerance, MaxIterations: DefaultMaxIterations}
}

// NewtonRoot finds a root of f starting from x0 by Newton–Raphson iteration
//
//	x_{k+1} = x_k - f(x_k)/f'(x_k)
//
// and returns the first iterate with |f(x)| within tolerance.
//
// Convergence is quadratic near a simple root but conditional on the
// starting point; a bad x0 can diverge or cycle, which surfaces as
// ErrNoConvergence after the iteration budget.
//
// Errors: ErrNilFunc, ErrZeroDerivative, ErrNonFinite, ErrNoConvergence.
//
// Complexity: O(MaxIterations) evaluations of f and fPrime.
func NewtonRoot(f, fPrime Func, x0 float64, opts ...NewtonOption) (float64, error) {
	if f == nil || fPrime == nil {
		return 0, ErrNilFunc
	}

	cfg := DefaultNewtonOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	x := x0
	var fx, dfx float64
	for i := 0; i < cfg.MaxIterations; i++ {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, fmt.Errorf("%w: iterate %d is %v", ErrNonFinite, i, x)
		}
		fx = f(x)
		if math.IsNaN(fx) || math.IsInf(fx, 0) {
			return 0, fmt.Errorf("%w: f(%v)=%v", ErrNonFinite, x, fx)
		}
		if math.Abs(fx) <= cfg.Tolerance {
			return x, nil
		}
		dfx = fPrime(x)
		if math.IsNaN(dfx) || math.IsInf(dfx, 0) {
			return 0, fmt.Errorf("%w: f'(%v)=%v", ErrNonFinite, x, dfx)
		}
		if dfx == 0 {
			return 0, fmt.Errorf("%w: x=%v", ErrZeroDerivative, x)
		}
		x -= fx / dfx
	}

	return 0, fmt.Errorf("%w: after %d iterations (last x=%v)", ErrNoConvergence, cfg.MaxIterations, x)
}
