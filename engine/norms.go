package engine

import "math"

// Norm combines two membership degrees into one. T-norms (Minimum,
// AlgebraicProduct, BoundedDifference) model conjunction and implication;
// S-norms (Maximum, AlgebraicSum, BoundedSum) model disjunction and
// aggregation. All operate on degrees in [0, 1].
type Norm func(a, b float64) float64

// Minimum is the Gödel T-norm: min(a, b).
func Minimum(a, b float64) float64 { return math.Min(a, b) }

// Maximum is the Gödel S-norm: max(a, b).
func Maximum(a, b float64) float64 { return math.Max(a, b) }

// AlgebraicProduct is the product T-norm: a·b.
func AlgebraicProduct(a, b float64) float64 { return a * b }

// AlgebraicSum is the probabilistic S-norm: a + b − a·b.
func AlgebraicSum(a, b float64) float64 { return a + b - a*b }

// BoundedDifference is the Łukasiewicz T-norm: max(0, a + b − 1).
func BoundedDifference(a, b float64) float64 { return math.Max(0, a+b-1) }

// BoundedSum is the Łukasiewicz S-norm: min(1, a + b).
func BoundedSum(a, b float64) float64 { return math.Min(1, a+b) }
