package mf

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownShape indicates that a synthesis request named a shape this
// package does not implement.
var ErrUnknownShape = errors.New("mf: unknown membership-function shape")

// Shape selects a membership-function family for automatic synthesis.
type Shape int

const (
	// ShapeTriangular synthesizes Triangle terms.
	ShapeTriangular Shape = iota

	// ShapeTrapezoid synthesizes Trapezoid terms with a ratio-controlled
	// flat top.
	ShapeTrapezoid

	// ShapeGaussian synthesizes Gaussian terms from the triangular envelope.
	ShapeGaussian
)

// String returns the canonical lowercase name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeTriangular:
		return "triangular"
	case ShapeTrapezoid:
		return "trapezoid"
	case ShapeGaussian:
		return "gaussian"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// ParseShape maps a canonical shape name back to its Shape value.
// Unknown names return ErrUnknownShape.
func ParseShape(name string) (Shape, error) {
	switch name {
	case "triangular":
		return ShapeTriangular, nil
	case "trapezoid":
		return ShapeTrapezoid, nil
	case "gaussian":
		return ShapeGaussian, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
}

// Term is one named membership function: it maps a universe value to a
// degree of membership in [0, 1].
type Term interface {
	// Name returns the label identifying this term within its variable.
	Name() string

	// Membership returns the degree of membership of x in this term.
	Membership(x float64) float64
}

// Triangle is a triangular term with feet A and C and peak B, A ≤ B ≤ C.
type Triangle struct {
	Label   string
	A, B, C float64
}

// Name returns the term's label.
func (t Triangle) Name() string { return t.Label }

// Membership evaluates the triangle at x: zero outside [A, C], one at the
// peak, linear on both slopes. Degenerate sides (A == B or B == C, as on
// boundary labels) never divide by zero because the slope branch for a
// zero-width side is unreachable.
func (t Triangle) Membership(x float64) float64 {
	if x < t.A || x > t.C {
		return 0
	}
	if x == t.B {
		return 1
	}
	if x < t.B {
		return (x - t.A) / (t.B - t.A)
	}

	return (t.C - x) / (t.C - t.B)
}

// Trapezoid is a trapezoidal term with feet A and D and shoulders B and C,
// A ≤ B ≤ C ≤ D. B == C degenerates to a triangle; A == B together with
// C == D degenerates to a rectangular, crisp-set-like term.
type Trapezoid struct {
	Label      string
	A, B, C, D float64
}

// Name returns the term's label.
func (t Trapezoid) Name() string { return t.Label }

// Membership evaluates the trapezoid at x: zero outside [A, D], one on the
// flat top [B, C], linear on both slopes.
func (t Trapezoid) Membership(x float64) float64 {
	if x < t.A || x > t.D {
		return 0
	}
	switch {
	case x < t.B:
		return (x - t.A) / (t.B - t.A)
	case x <= t.C:
		return 1
	default:
		return (t.D - x) / (t.D - t.C)
	}
}

// Gaussian is a Gaussian-approximated term derived from a triangular
// envelope. StdDev keeps the sign the derivation produces (negative when
// the governing envelope foot lies right of the mean); Membership squares
// it, so evaluation is unaffected. Callers that round-trip the parameters
// should treat |StdDev| as the spread.
type Gaussian struct {
	Label  string
	Mean   float64
	StdDev float64
}

// Name returns the term's label.
func (g Gaussian) Name() string { return g.Label }

// Membership evaluates exp(−(x−Mean)² / (2·StdDev²)) at x.
// A zero StdDev collapses to a crisp singleton at Mean.
func (g Gaussian) Membership(x float64) float64 {
	if g.StdDev == 0 {
		if x == g.Mean {
			return 1
		}

		return 0
	}
	d := x - g.Mean

	return math.Exp(-(d * d) / (2 * g.StdDev * g.StdDev))
}
