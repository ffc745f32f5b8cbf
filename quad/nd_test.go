package quad_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quadra/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIntegrateND_SeparableProduct checks ∫∫ xy over [0,1]² = 1/4 — a
// separable integrand where Fubini's reduction is exact for the rule.
func TestIntegrateND_SeparableProduct(t *testing.T) {
	f := func(p []float64) float64 { return p[0] * p[1] }

	got, err := quad.IntegrateND(f, []float64{0, 0}, []float64{1, 1}, 4)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, got, 1e-12)
}

// TestIntegrateND_VolumeOfBox verifies the constant 1 integrates to the box
// volume in three dimensions.
func TestIntegrateND_VolumeOfBox(t *testing.T) {
	one := func([]float64) float64 { return 1 }

	got, err := quad.IntegrateND(one, []float64{-1, 0, 2}, []float64{1, 3, 2.5}, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2*3*0.5, got, 1e-10)
}

// TestIntegrateND_Transcendental checks a smooth 2-D integral with a
// closed-form value: ∫₀^{π/2}∫₀^{π/2} sin(x)·cos(y) dx dy = 1.
func TestIntegrateND_Transcendental(t *testing.T) {
	f := func(p []float64) float64 { return math.Sin(p[0]) * math.Cos(p[1]) }
	half := math.Pi / 2

	got, err := quad.IntegrateND(f, []float64{0, 0}, []float64{half, half}, 8)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-9, "composite GL(5) at n=8 is far past 1e-9 for smooth f")
}

// TestIntegrateND_DegenerateDimension: any zero-width dimension collapses
// the box to measure zero.
func TestIntegrateND_DegenerateDimension(t *testing.T) {
	f := func(p []float64) float64 { return 1 + p[0] }

	got, err := quad.IntegrateND(f, []float64{0, 2}, []float64{1, 2}, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

// TestIntegrateND_Validation covers the error surface.
func TestIntegrateND_Validation(t *testing.T) {
	one := func([]float64) float64 { return 1 }

	_, err := quad.IntegrateND(one, []float64{0, 0}, []float64{1}, 4)
	assert.ErrorIs(t, err, quad.ErrDimensionMismatch, "length mismatch")

	_, err = quad.IntegrateND(one, nil, nil, 4)
	assert.ErrorIs(t, err, quad.ErrDimensionMismatch, "zero dimensions")

	_, err = quad.IntegrateND(one, []float64{0, 1}, []float64{1, 0}, 4)
	assert.ErrorIs(t, err, quad.ErrInvalidInterval, "reversed bounds in one dimension")

	_, err = quad.IntegrateND(one, []float64{0, math.NaN()}, []float64{1, 1}, 4)
	assert.ErrorIs(t, err, quad.ErrInvalidInterval, "non-finite bound")

	_, err = quad.IntegrateND(one, []float64{0}, []float64{1}, 0)
	assert.ErrorIs(t, err, quad.ErrBadSubintervals)
}

// TestIntegrateND_InnerNonFinite ensures a NaN deep inside the recursion
// surfaces as ErrNonFiniteEvaluation from the outermost call.
func TestIntegrateND_InnerNonFinite(t *testing.T) {
	f := func(p []float64) float64 {
		if p[1] > 0.9 {
			return math.NaN()
		}

		return p[0]
	}

	_, err := quad.IntegrateND(f, []float64{0, 0}, []float64{1, 1}, 4)
	assert.ErrorIs(t, err, quad.ErrNonFiniteEvaluation)
}
