package montecarlo_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/quadra/dist"
	"github.com/katalvlaran/quadra/montecarlo"
	"github.com/katalvlaran/quadra/randx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

// uniform01 returns the Uniform(0,1) proposal used across these tests.
func uniform01(t *testing.T) dist.Uniform {
	t.Helper()
	u, err := dist.NewUniform(0, 1)
	require.NoError(t, err)

	return u
}

// TestMean_SinUniform checks the estimator against the known value
// E[sin(U)] = 1 - cos(1) ≈ 0.4597 and that the reported StdErr is coherent.
func TestMean_SinUniform(t *testing.T) {
	u := uniform01(t)

	est, err := montecarlo.Mean(u, math.Sin, 10_000, randx.New(42))
	require.NoError(t, err)

	want := 1 - math.Cos(1)
	assert.InDelta(t, want, est.Mean, 0.01, "estimate must land within a few StdErr of the truth")
	assert.Equal(t, 10_000, est.N)
	assert.Greater(t, est.StdErr, 0.0)
	assert.Less(t, est.StdErr, 0.01, "Var[sin(U)] ≈ 0.061 gives StdErr ≈ 0.0025 at n=10⁴")
	assert.InDelta(t, est.StdErr*est.StdErr*float64(est.N), est.Variance, 1e-12,
		"StdErr must be sqrt(Variance/N)")
}

// TestMean_Unbiasedness runs many independent repetitions and checks the
// grand mean of the estimates against the truth — the CLT property the
// estimator advertises.
func TestMean_Unbiasedness(t *testing.T) {
	u := uniform01(t)
	want := 1 - math.Cos(1)

	const reps = 60
	base := randx.New(7)
	means := make([]float64, reps)
	for r := 0; r < reps; r++ {
		est, err := montecarlo.Mean(u, math.Sin, 2_000, randx.Derive(base, uint64(r)))
		require.NoError(t, err)
		means[r] = est.Mean
	}

	grand := stat.Mean(means, nil)
	// StdErr of the grand mean: sd(sin U)/sqrt(reps·n) ≈ 0.0007.
	assert.InDelta(t, want, grand, 0.004)
}

// TestMean_DeterministicGivenSeed verifies two equal-seed runs agree bit
// for bit, and a different seed disagrees.
func TestMean_DeterministicGivenSeed(t *testing.T) {
	u := uniform01(t)

	a, err := montecarlo.Mean(u, math.Sin, 1_000, randx.New(5))
	require.NoError(t, err)
	b, err := montecarlo.Mean(u, math.Sin, 1_000, randx.New(5))
	require.NoError(t, err)
	c, err := montecarlo.Mean(u, math.Sin, 1_000, randx.New(6))
	require.NoError(t, err)

	assert.Equal(t, a, b, "same seed, same estimate")
	assert.NotEqual(t, a.Mean, c.Mean, "different seed, different stream")
}

// TestMean_NilRNGUsesDefaultStream: nil rng must select the deterministic
// randx default, not some hidden global.
func TestMean_NilRNGUsesDefaultStream(t *testing.T) {
	u := uniform01(t)

	a, err := montecarlo.Mean(u, math.Sin, 500, nil)
	require.NoError(t, err)
	b, err := montecarlo.Mean(u, math.Sin, 500, randx.New(0))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

// TestMean_Validation covers the error surface.
func TestMean_Validation(t *testing.T) {
	u := uniform01(t)

	_, err := montecarlo.Mean(nil, math.Sin, 10, nil)
	assert.ErrorIs(t, err, montecarlo.ErrNilSampler)

	_, err = montecarlo.Mean(u, nil, 10, nil)
	assert.ErrorIs(t, err, montecarlo.ErrNilDensity)

	_, err = montecarlo.Mean(u, math.Sin, 0, nil)
	assert.ErrorIs(t, err, montecarlo.ErrBadSampleCount)

	bad := func(float64) float64 { return math.NaN() }
	_, err = montecarlo.Mean(u, bad, 10, nil)
	assert.ErrorIs(t, err, montecarlo.ErrNonFiniteEvaluation)
}

// TestMean_SamplerFuncAdapter exercises the function adapter with a custom
// sampler.
func TestMean_SamplerFuncAdapter(t *testing.T) {
	constant := montecarlo.SamplerFunc(func(*rand.Rand) float64 { return 2 })

	est, err := montecarlo.Mean(constant, func(x float64) float64 { return x * x }, 100, nil)
	require.NoError(t, err)
	assert.Equal(t, 4.0, est.Mean)
	assert.Equal(t, 0.0, est.Variance, "a constant has zero sample variance")
}
