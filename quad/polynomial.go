// Package quad - dense polynomial arithmetic and Lagrange interpolation.
//
// Polynomials serve two roles here:
//   - Interpolate exposes the textbook construction "fit a polynomial, then
//     integrate it" directly to callers.
//   - NewtonCotes derives its weights by integrating each Lagrange basis
//     polynomial in closed form, so the weights are exact by construction
//     rather than transcribed from a table.
package quad

import "fmt"

// Polynomial is an immutable dense polynomial in monomial form:
// coeffs[i] is the coefficient of x^i. The zero value is the zero polynomial.
type Polynomial struct {
	coeffs []float64
}

// NewPolynomial builds a polynomial from coefficients, low degree first.
// Trailing zero coefficients are trimmed so Degree is well-defined.
func NewPolynomial(coeffs ...float64) Polynomial {
	n := len(coeffs)
	for n > 0 && coeffs[n-1] == 0 {
		n--
	}

	return Polynomial{coeffs: append([]float64(nil), coeffs[:n]...)}
}

// Degree returns the polynomial degree; the zero polynomial has degree -1.
func (p Polynomial) Degree() int { return len(p.coeffs) - 1 }

// Coeffs returns a copy of the coefficients, low degree first.
func (p Polynomial) Coeffs() []float64 { return append([]float64(nil), p.coeffs...) }

// Eval evaluates p at x by Horner's scheme.
//
// Complexity: O(deg).
func (p Polynomial) Eval(x float64) float64 {
	var acc float64
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc*x + p.coeffs[i]
	}

	return acc
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	sum := make([]float64, n)
	copy(sum, p.coeffs)
	for i, c := range q.coeffs {
		sum[i] += c
	}

	return NewPolynomial(sum...)
}

// Scale returns c·p.
func (p Polynomial) Scale(c float64) Polynomial {
	scaled := make([]float64, len(p.coeffs))
	for i, v := range p.coeffs {
		scaled[i] = c * v
	}

	return NewPolynomial(scaled...)
}

// Mul returns the product p·q by coefficient convolution.
//
// Complexity: O(deg(p)·deg(q)).
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if len(p.coeffs) == 0 || len(q.coeffs) == 0 {
		return Polynomial{}
	}
	prod := make([]float64, len(p.coeffs)+len(q.coeffs)-1)
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			prod[i+j] += a * b
		}
	}

	return NewPolynomial(prod...)
}

// Integrate returns the antiderivative of p with zero constant term.
func (p Polynomial) Integrate() Polynomial {
	if len(p.coeffs) == 0 {
		return Polynomial{}
	}
	anti := make([]float64, len(p.coeffs)+1)
	for i, c := range p.coeffs {
		anti[i+1] = c / float64(i+1)
	}

	return NewPolynomial(anti...)
}

// IntegrateOver returns ∫_a^b p(x)dx in closed form via the antiderivative.
// The bounds here are an algebraic evaluation, not an integration interval,
// so a > b is legal and yields the negated value.
func (p Polynomial) IntegrateOver(a, b float64) float64 {
	anti := p.Integrate()

	return anti.Eval(b) - anti.Eval(a)
}

// Interpolate builds the unique Lagrange interpolating polynomial through
// {(xᵢ, f(xᵢ))} for the given abscissas. Degree = len(points) - 1.
//
// Errors:
//   - ErrNoPoints if points is empty.
//   - ErrInvalidInterval if any abscissa is NaN or ±Inf.
//   - ErrDegenerateInterpolation if two abscissas coincide (the Lagrange
//     basis would divide by zero).
//   - ErrNonFiniteEvaluation if f returns NaN or ±Inf at any abscissa.
//
// Complexity: O(k²) basis construction for k points.
func Interpolate(f Func, points []float64) (Polynomial, error) {
	if len(points) == 0 {
		return Polynomial{}, ErrNoPoints
	}
	for i, x := range points {
		if !isFinite(x) {
			return Polynomial{}, fmt.Errorf("%w: point %d is %v", ErrInvalidInterval, i, x)
		}
		for j := 0; j < i; j++ {
			if points[j] == x {
				return Polynomial{}, fmt.Errorf("%w: x=%v appears at indices %d and %d",
					ErrDegenerateInterpolation, x, j, i)
			}
		}
	}

	var p Polynomial
	var y float64
	for i := range points {
		y = f(points[i])
		if !isFinite(y) {
			return Polynomial{}, fmt.Errorf("%w: f(%v)=%v", ErrNonFiniteEvaluation, points[i], y)
		}
		p = p.Add(lagrangeBasis(points, i).Scale(y))
	}

	return p, nil
}

// lagrangeBasis returns the i-th Lagrange basis polynomial
// Lᵢ(x) = Π_{j≠i} (x-xⱼ)/(xᵢ-xⱼ). Lᵢ(xᵢ)=1, Lᵢ(xⱼ)=0 for j≠i.
// Callers must have rejected duplicate abscissas already.
func lagrangeBasis(points []float64, i int) Polynomial {
	basis := NewPolynomial(1)
	for j, xj := range points {
		if j == i {
			continue
		}
		// multiply by (x - xj) / (xi - xj)
		d := points[i] - xj
		basis = basis.Mul(NewPolynomial(-xj/d, 1/d))
	}

	return basis
}
