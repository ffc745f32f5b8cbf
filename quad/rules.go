// Package quad - rule constructors: Newton–Cotes (closed/open) and
// Gauss–Legendre families.
package quad

import "fmt"

// maxNewtonCotesOrder bounds the supported Newton–Cotes point counts.
// Higher orders suffer from negative, oscillating weights (Runge phenomenon)
// and are intentionally outside the supported set.
const maxNewtonCotesOrder = 3

// Composite convergence orders per family. Open/closed one-point rules
// differ: the midpoint rule gains an order from symmetry, the left-endpoint
// rectangle does not.
var (
	closedOrders = [maxNewtonCotesOrder + 1]int{0, 1, 2, 4}
	openOrders   = [maxNewtonCotesOrder + 1]int{0, 2, 2, 4}

	closedNames = [maxNewtonCotesOrder + 1]string{"", "rectangle", "trapezoid", "simpson"}
	openNames   = [maxNewtonCotesOrder + 1]string{"", "midpoint", "open-newton-cotes-2", "milne"}
)

// NewtonCotes returns the k-point Newton–Cotes rule of the requested variant,
// k ∈ {1,2,3}.
//
// Closed rules place nodes on the endpoints of the reference interval:
//
//	k=1: {0}            — left-endpoint rectangle (by convention)
//	k=2: {0, 1}         — trapezoid
//	k=3: {0, 1/2, 1}    — Simpson
//
// Open rules keep nodes strictly interior:
//
//	k=1: {1/2}           — midpoint
//	k=2: {1/3, 2/3}      — two-point open rule
//	k=3: {1/4, 1/2, 3/4} — Milne (note the negative middle weight)
//
// The weights are not table lookups: each is ∫₀¹ Lᵢ(t)dt, the exact integral
// of the corresponding Lagrange basis polynomial, evaluated in closed form.
// A k-point rule integrates polynomials of degree ≤ k-1 exactly (one extra
// degree for the symmetric midpoint/Simpson/Milne cases).
//
// Returns ErrRuleNotImplemented for k outside {1,2,3}.
func NewtonCotes(k int, variant Variant) (Rule, error) {
	if k < 1 || k > maxNewtonCotesOrder {
		return Rule{}, fmt.Errorf("%w: newton-cotes k=%d (supported: 1..%d)",
			ErrRuleNotImplemented, k, maxNewtonCotesOrder)
	}

	var nodes []float64
	switch variant {
	case Closed:
		switch k {
		case 1:
			nodes = []float64{0}
		case 2:
			nodes = []float64{0, 1}
		case 3:
			nodes = []float64{0, 0.5, 1}
		}
	case Open:
		switch k {
		case 1:
			nodes = []float64{0.5}
		case 2:
			nodes = []float64{1.0 / 3.0, 2.0 / 3.0}
		case 3:
			nodes = []float64{0.25, 0.5, 0.75}
		}
	default:
		return Rule{}, fmt.Errorf("%w: unknown variant %d", ErrRuleNotImplemented, variant)
	}

	// Weight i is the exact integral of the i-th Lagrange basis polynomial
	// over the reference interval. For k=1 the basis is the constant 1.
	weights := make([]float64, k)
	for i := range nodes {
		weights[i] = lagrangeBasis(nodes, i).IntegrateOver(0, 1)
	}

	name := closedNames[k]
	order := closedOrders[k]
	if variant == Open {
		name = openNames[k]
		order = openOrders[k]
	}

	return Rule{name: name, nodes: nodes, weights: weights, order: order}, nil
}

// maxGaussLegendreOrder bounds the supported Gauss–Legendre point counts.
const maxGaussLegendreOrder = 5

// glNode / glWeight tabulate the positive roots of the degree-k Legendre
// polynomial on [-1,1] and their weights. Symmetry supplies the negative
// half; values carry full float64 precision.
var glNodes = [maxGaussLegendreOrder + 1][]float64{
	1: {0},
	2: {0.5773502691896257},
	3: {0, 0.7745966692414834},
	4: {0.33998104358485626, 0.8611363115940526},
	5: {0, 0.5384693101056831, 0.906179845938664},
}

var glWeights = [maxGaussLegendreOrder + 1][]float64{
	1: {2},
	2: {1},
	3: {0.8888888888888888, 0.5555555555555556},
	4: {0.6521451548625461, 0.34785484513745385},
	5: {0.5688888888888889, 0.47862867049936647, 0.23692688505618908},
}

// GaussLegendre returns the k-point Gauss–Legendre rule, k ∈ {1,...,5}.
//
// Nodes are the roots of the degree-k Legendre polynomial on [-1,1], here
// pre-rescaled to the [0,1] reference via t ↦ (t+1)/2 (weights halved
// accordingly). The rule integrates polynomials of degree ≤ 2k-1 exactly —
// the best possible for k points — and its composite error is O(n^{-2k}).
//
// Returns ErrRuleNotImplemented for k outside {1,...,5}.
func GaussLegendre(k int) (Rule, error) {
	if k < 1 || k > maxGaussLegendreOrder {
		return Rule{}, fmt.Errorf("%w: gauss-legendre k=%d (supported: 1..%d)",
			ErrRuleNotImplemented, k, maxGaussLegendreOrder)
	}

	// Expand the symmetric half-tables into ascending nodes on [0,1].
	nodes := make([]float64, 0, k)
	weights := make([]float64, 0, k)
	half := glNodes[k]
	halfW := glWeights[k]
	for i := len(half) - 1; i >= 0; i-- {
		if half[i] == 0 {
			continue
		}
		nodes = append(nodes, (1-half[i])/2)
		weights = append(weights, halfW[i]/2)
	}
	if k%2 == 1 { // odd rules carry the center node
		nodes = append(nodes, 0.5)
		weights = append(weights, halfW[0]/2)
	}
	for i := 0; i < len(half); i++ {
		if half[i] == 0 {
			continue
		}
		nodes = append(nodes, (1+half[i])/2)
		weights = append(weights, halfW[i]/2)
	}

	return Rule{
		name:    fmt.Sprintf("gauss-legendre-%d", k),
		nodes:   nodes,
		weights: weights,
		order:   2 * k,
	}, nil
}

// Rectangle returns the left-endpoint rectangle rule (closed Newton–Cotes, k=1).
func Rectangle() Rule { r, _ := NewtonCotes(1, Closed); return r }

// Midpoint returns the midpoint rule (open Newton–Cotes, k=1).
func Midpoint() Rule { r, _ := NewtonCotes(1, Open); return r }

// Trapezoid returns the trapezoid rule (closed Newton–Cotes, k=2).
func Trapezoid() Rule { r, _ := NewtonCotes(2, Closed); return r }

// Simpson returns Simpson's rule (closed Newton–Cotes, k=3).
func Simpson() Rule { r, _ := NewtonCotes(3, Closed); return r }
