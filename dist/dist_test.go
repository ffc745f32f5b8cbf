package dist_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/quadra/dist"
	"github.com/katalvlaran/quadra/randx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

// TestNormal_DensityPins checks the pdf against closed-form values.
func TestNormal_DensityPins(t *testing.T) {
	n, err := dist.NewNormal(0, 1)
	require.NoError(t, err)

	assert.InDelta(t, 1/math.Sqrt(2*math.Pi), n.Density(0), 1e-12) // ≈ 0.398942
	assert.InDelta(t, math.Exp(-0.5)/math.Sqrt(2*math.Pi), n.Density(1), 1e-12)
	assert.Equal(t, n.Density(2), n.Density(-2), "symmetric about the mean")

	shifted, err := dist.NewNormal(3, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1/(2*math.Sqrt(2*math.Pi)), shifted.Density(3), 1e-12)
}

// TestLaplace_DensityPins: the peak value is 1/(2·scale) and the tails decay
// exponentially with rate 1/scale.
func TestLaplace_DensityPins(t *testing.T) {
	l, err := dist.NewLaplace(1, 0.5)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, l.Density(1), 1e-12) // 1/(2·0.5)
	assert.InDelta(t, math.Exp(-2), l.Density(2), 1e-12)
	assert.Equal(t, l.Density(0), l.Density(2), "symmetric about mu")
}

// TestUniform_DensityPins: constant inside, zero outside.
func TestUniform_DensityPins(t *testing.T) {
	u, err := dist.NewUniform(2, 6)
	require.NoError(t, err)

	assert.InDelta(t, 0.25, u.Density(3), 1e-12)
	assert.Equal(t, 0.0, u.Density(1.99))
	assert.Equal(t, 0.0, u.Density(6.01))
}

// TestSampleMoments checks all three samplers against their first two
// moments at n = 50 000 (tolerances a few standard errors wide).
func TestSampleMoments(t *testing.T) {
	const n = 50_000

	normal, err := dist.NewNormal(2, 3)
	require.NoError(t, err)
	laplace, err := dist.NewLaplace(-1, 0.5)
	require.NoError(t, err)
	uniform, err := dist.NewUniform(0, 4)
	require.NoError(t, err)

	tests := []struct {
		name         string
		sample       func() []float64
		mean, stddev float64
	}{
		{"normal(2,3)", drawN(normal.Sample, n, 1), 2, 3},
		{"laplace(-1,0.5)", drawN(laplace.Sample, n, 2), -1, 0.5 * math.Sqrt2},
		{"uniform(0,4)", drawN(uniform.Sample, n, 3), 2, 4 / math.Sqrt(12)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			xs := tc.sample()
			assert.InDelta(t, tc.mean, stat.Mean(xs, nil), 5*tc.stddev/math.Sqrt(n))
			assert.InDelta(t, tc.stddev, stat.StdDev(xs, nil), 0.1*tc.stddev)
		})
	}
}

// drawN returns a closure producing n seeded draws from sample.
func drawN(sample func(*rand.Rand) float64, n int, seed int64) func() []float64 {
	return func() []float64 {
		rng := randx.New(seed)
		xs := make([]float64, n)
		for i := range xs {
			xs[i] = sample(rng)
		}

		return xs
	}
}

// TestConstructors_RejectBadParams covers the parameter contract.
func TestConstructors_RejectBadParams(t *testing.T) {
	for _, sigma := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := dist.NewNormal(0, sigma)
		assert.ErrorIs(t, err, dist.ErrBadParam, "normal sigma=%v", sigma)

		_, err = dist.NewLaplace(0, sigma)
		assert.ErrorIs(t, err, dist.ErrBadParam, "laplace scale=%v", sigma)

		_, err = dist.NewRandomWalk(sigma)
		assert.ErrorIs(t, err, dist.ErrBadParam, "walk sigma=%v", sigma)
	}

	_, err := dist.NewNormal(math.NaN(), 1)
	assert.ErrorIs(t, err, dist.ErrBadParam)

	_, err = dist.NewUniform(1, 1)
	assert.ErrorIs(t, err, dist.ErrBadParam)
	_, err = dist.NewUniform(2, 1)
	assert.ErrorIs(t, err, dist.ErrBadParam)

	_, err = dist.NewIndependence(nil)
	assert.ErrorIs(t, err, dist.ErrBadParam)
}

// TestRandomWalk_SymmetryAndShape: q(from→to) depends only on the step, so
// the density is symmetric under swapping the endpoints.
func TestRandomWalk_SymmetryAndShape(t *testing.T) {
	w, err := dist.NewRandomWalk(2)
	require.NoError(t, err)

	assert.Equal(t, w.Density(1, 3), w.Density(3, 1))
	assert.Equal(t, w.Density(0, 5), w.Density(10, 15), "translation invariant")
	assert.InDelta(t, 1/(2*math.Sqrt(2*math.Pi)), w.Density(0, 0), 1e-12)
}

// TestIndependence_IgnoresOrigin: density and draws must not depend on the
// current state.
func TestIndependence_IgnoresOrigin(t *testing.T) {
	base, err := dist.NewNormal(0, 1)
	require.NoError(t, err)
	indep, err := dist.NewIndependence(base)
	require.NoError(t, err)

	assert.Equal(t, base.Density(1.5), indep.Density(-100, 1.5))
	assert.Equal(t, indep.Density(0, 1.5), indep.Density(42, 1.5))

	a := indep.Sample(randx.New(3), 0)
	b := indep.Sample(randx.New(3), 99)
	assert.Equal(t, a, b, "origin state must not enter the draw")
}
