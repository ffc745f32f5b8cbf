// Package dist - distribution adapters over gonum/stat/distuv.
package dist

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrBadParam indicates a distribution parameter outside its legal range.
var ErrBadParam = errors.New("dist: invalid distribution parameter")

// Normal is the N(Mu, Sigma²) distribution.
type Normal struct {
	impl distuv.Normal
}

// NewNormal returns a Normal with mean mu and standard deviation sigma > 0.
func NewNormal(mu, sigma float64) (Normal, error) {
	if !finite(mu) || !finite(sigma) || sigma <= 0 {
		return Normal{}, fmt.Errorf("%w: normal(mu=%v, sigma=%v)", ErrBadParam, mu, sigma)
	}

	return Normal{impl: distuv.Normal{Mu: mu, Sigma: sigma}}, nil
}

// Density returns the normalized pdf at x.
func (d Normal) Density(x float64) float64 { return d.impl.Prob(x) }

// Sample draws one value using the supplied generator.
func (d Normal) Sample(rng *rand.Rand) float64 {
	return d.impl.Mu + d.impl.Sigma*rng.NormFloat64()
}

// Laplace is the Laplace(Mu, Scale) distribution — the classic dominating
// proposal for the standard normal (bound M = √(2/π)·e^½ ≈ 1.3155).
type Laplace struct {
	impl distuv.Laplace
}

// NewLaplace returns a Laplace with location mu and scale > 0.
func NewLaplace(mu, scale float64) (Laplace, error) {
	if !finite(mu) || !finite(scale) || scale <= 0 {
		return Laplace{}, fmt.Errorf("%w: laplace(mu=%v, scale=%v)", ErrBadParam, mu, scale)
	}

	return Laplace{impl: distuv.Laplace{Mu: mu, Scale: scale}}, nil
}

// Density returns the normalized pdf at x.
func (d Laplace) Density(x float64) float64 { return d.impl.Prob(x) }

// Sample draws one value by inverse-CDF: fold a uniform around ½ and invert
// the exponential tail.
func (d Laplace) Sample(rng *rand.Rand) float64 {
	u := rng.Float64() - 0.5
	sign := 1.0
	if u < 0 {
		sign = -1.0
	}

	return d.impl.Mu - d.impl.Scale*sign*math.Log(1-2*math.Abs(u))
}

// Uniform is the continuous Uniform(A, B) distribution.
type Uniform struct {
	impl distuv.Uniform
}

// NewUniform returns a Uniform on [a, b), a < b.
func NewUniform(a, b float64) (Uniform, error) {
	if !finite(a) || !finite(b) || b <= a {
		return Uniform{}, fmt.Errorf("%w: uniform(a=%v, b=%v)", ErrBadParam, a, b)
	}

	return Uniform{impl: distuv.Uniform{Min: a, Max: b}}, nil
}

// Density returns the normalized pdf at x.
func (d Uniform) Density(x float64) float64 { return d.impl.Prob(x) }

// Sample draws one value using the supplied generator.
func (d Uniform) Sample(rng *rand.Rand) float64 {
	return d.impl.Min + (d.impl.Max-d.impl.Min)*rng.Float64()
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
