package mathutil_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quadra/mathutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewtonRoot_Sqrt2 solves x² - 2 = 0 from x0 = 1 — the textbook case,
// converging quadratically in a handful of steps.
func TestNewtonRoot_Sqrt2(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	fPrime := func(x float64) float64 { return 2 * x }

	root, err := mathutil.NewtonRoot(f, fPrime, 1)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, root, 1e-10)
}

// TestNewtonRoot_CosFixedPoint solves cos(x) - x = 0 (the Dottie number).
func TestNewtonRoot_CosFixedPoint(t *testing.T) {
	f := func(x float64) float64 { return math.Cos(x) - x }
	fPrime := func(x float64) float64 { return -math.Sin(x) - 1 }

	root, err := mathutil.NewtonRoot(f, fPrime, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.7390851332151607, root, 1e-10)
	assert.InDelta(t, math.Cos(root), root, 1e-10)
}

// TestNewtonRoot_ZeroDerivative: from x0 = 1 on x² + 1 the first step lands
// exactly on 0, where the derivative vanishes.
func TestNewtonRoot_ZeroDerivative(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }
	fPrime := func(x float64) float64 { return 2 * x }

	_, err := mathutil.NewtonRoot(f, fPrime, 1)
	assert.ErrorIs(t, err, mathutil.ErrZeroDerivative)
}

// TestNewtonRoot_NoConvergence: exp has no root; the step x - 1 walks left
// forever and the budget runs out.
func TestNewtonRoot_NoConvergence(t *testing.T) {
	_, err := mathutil.NewtonRoot(math.Exp, math.Exp, 0, mathutil.WithMaxIterations(10))
	assert.ErrorIs(t, err, mathutil.ErrNoConvergence)
}

// TestNewtonRoot_LooseToleranceStopsEarly: a huge tolerance accepts the
// starting point itself.
func TestNewtonRoot_LooseToleranceStopsEarly(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	fPrime := func(x float64) float64 { return 2 * x }

	root, err := mathutil.NewtonRoot(f, fPrime, 1, mathutil.WithTolerance(10))
	require.NoError(t, err)
	assert.Equal(t, 1.0, root, "|f(1)| = 1 <= 10 accepts x0 untouched")
}

// TestNewtonRoot_NonFiniteSurfaces: NaN from the integrand is an error, not
// a silent garbage root.
func TestNewtonRoot_NonFiniteSurfaces(t *testing.T) {
	bad := func(float64) float64 { return math.NaN() }
	one := func(float64) float64 { return 1 }

	_, err := mathutil.NewtonRoot(bad, one, 0)
	assert.ErrorIs(t, err, mathutil.ErrNonFinite)

	_, err = mathutil.NewtonRoot(one, bad, 0)
	assert.ErrorIs(t, err, mathutil.ErrNonFinite)

	_, err = mathutil.NewtonRoot(one, one, math.Inf(1))
	assert.ErrorIs(t, err, mathutil.ErrNonFinite)
}

// TestNewtonRoot_Validation covers the nil contract and option panics.
func TestNewtonRoot_Validation(t *testing.T) {
	one := func(float64) float64 { return 1 }

	_, err := mathutil.NewtonRoot(nil, one, 0)
	assert.ErrorIs(t, err, mathutil.ErrNilFunc)

	_, err = mathutil.NewtonRoot(one, nil, 0)
	assert.ErrorIs(t, err, mathutil.ErrNilFunc)

	assert.Panics(t, func() {
		_, _ = mathutil.NewtonRoot(one, one, 0, mathutil.WithTolerance(0))
	})
	assert.Panics(t, func() {
		_, _ = mathutil.NewtonRoot(one, one, 0, mathutil.WithTolerance(math.NaN()))
	})
	assert.Panics(t, func() {
		_, _ = mathutil.NewtonRoot(one, one, 0, mathutil.WithMaxIterations(0))
	})
}
