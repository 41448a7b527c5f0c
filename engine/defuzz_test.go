package engine_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fiskit/engine"
	"github.com/katalvlaran/fiskit/mf"
	"github.com/stretchr/testify/assert"
)

// symmetricTriangle is a membership curve peaking at 5 over [0,10].
func symmetricTriangle(x float64) float64 {
	return mf.Triangle{Label: "t", A: 0, B: 5, C: 10}.Membership(x)
}

// TestCentroid_Symmetric verifies the center of gravity of a symmetric
// curve lands exactly on the axis of symmetry (midpoint sampling is
// symmetric over the universe).
func TestCentroid_Symmetric(t *testing.T) {
	got := engine.Centroid{}.Defuzzify(symmetricTriangle, 0, 10)
	assert.InDelta(t, 5, got, 1e-9)
}

// TestCentroid_ZeroCurve yields NaN: an all-zero curve has no centroid.
func TestCentroid_ZeroCurve(t *testing.T) {
	got := engine.Centroid{Resolution: 100}.Defuzzify(func(float64) float64 { return 0 }, 0, 10)
	assert.True(t, math.IsNaN(got))
}

// TestCentroid_OffCenter checks a uniform curve over a sub-interval.
func TestCentroid_OffCenter(t *testing.T) {
	rect := mf.Trapezoid{Label: "r", A: 8, B: 8, C: 10, D: 10}
	got := engine.Centroid{}.Defuzzify(rect.Membership, 0, 10)
	assert.InDelta(t, 9, got, 1e-9, "uniform mass over [8,10] centers at 9")
}

// TestBisector_Uniform splits a uniform curve near the middle of its support.
func TestBisector_Uniform(t *testing.T) {
	got := engine.Bisector{}.Defuzzify(func(float64) float64 { return 1 }, 0, 10)
	assert.InDelta(t, 5, got, 0.2)
}

// TestBisector_ZeroCurve yields NaN.
func TestBisector_ZeroCurve(t *testing.T) {
	got := engine.Bisector{}.Defuzzify(func(float64) float64 { return 0 }, 0, 10)
	assert.True(t, math.IsNaN(got))
}

// TestMeanOfMaximum_Plateau averages the plateau of a trapezoid.
func TestMeanOfMaximum_Plateau(t *testing.T) {
	tz := mf.Trapezoid{Label: "p", A: 0, B: 4, C: 6, D: 10}
	got := engine.MeanOfMaximum{Resolution: 100}.Defuzzify(tz.Membership, 0, 10)
	assert.InDelta(t, 5, got, 1e-9)
}

// TestMeanOfMaximum_SharpPeak lands on a symmetric triangle's peak.
func TestMeanOfMaximum_SharpPeak(t *testing.T) {
	got := engine.MeanOfMaximum{}.Defuzzify(symmetricTriangle, 0, 10)
	assert.InDelta(t, 5, got, 1e-9)
}

// TestDefuzzifiers_DefaultResolution ensures a zero Resolution falls back
// to DefaultResolution rather than dividing by zero.
func TestDefuzzifiers_DefaultResolution(t *testing.T) {
	for _, d := range []engine.Defuzzifier{engine.Centroid{}, engine.Bisector{}, engine.MeanOfMaximum{}} {
		got := d.Defuzzify(symmetricTriangle, 0, 10)
		assert.False(t, math.IsNaN(got))
		assert.InDelta(t, 5, got, 0.2)
	}
}
