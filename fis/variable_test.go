package fis_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fiskit/engine"
	"github.com/katalvlaran/fiskit/fis"
	"github.com/katalvlaran/fiskit/mf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewInput_MissingTerms rejects construction with nothing to build
// terms from: nil options and empty options both fail.
func TestNewInput_MissingTerms(t *testing.T) {
	_, err := fis.NewInput("v", 0, 1, nil)
	assert.ErrorIs(t, err, fis.ErrMissingTerms)

	_, err = fis.NewInput("v", 0, 1, &fis.VariableOptions{Description: "no terms"})
	assert.ErrorIs(t, err, fis.ErrMissingTerms)

	_, err = fis.NewOutput("v", 0, 1, &fis.VariableOptions{})
	assert.ErrorIs(t, err, fis.ErrMissingTerms)
}

// TestNewInput_ExplicitTermsWin verifies the documented precedence: when
// both Terms and Auto are set, the explicit terms are installed verbatim
// and the synthesis parameters leave no trace.
func TestNewInput_ExplicitTermsWin(t *testing.T) {
	explicit := []mf.Term{
		mf.Triangle{Label: "only", A: 0.1, B: 0.2, C: 0.3},
	}
	v, err := fis.NewInput("v", 0, 1, &fis.VariableOptions{
		Terms: explicit,
		Auto: &fis.Synthesis{
			Shape:   mf.ShapeTrapezoid,
			Labels:  []string{"a", "b", "c"},
			Overlap: 0.5,
			Ratio:   0.5,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, explicit, v.Terms, "explicit terms must be installed unmodified")
}

// TestNewInput_AutoSynthesis synthesizes terms over the variable's universe
// in label order.
func TestNewInput_AutoSynthesis(t *testing.T) {
	v, err := fis.NewInput("service", 0, 10, &fis.VariableOptions{
		Auto: &fis.Synthesis{Shape: mf.ShapeTriangular, Labels: []string{"poor", "good", "excellent"}},
	})
	require.NoError(t, err)
	require.Len(t, v.Terms, 3)
	assert.Equal(t, "poor", v.Terms[0].Name())
	assert.Equal(t, "excellent", v.Terms[2].Name())

	peak, ok := v.Terms[1].(mf.Triangle)
	require.True(t, ok)
	assert.InDelta(t, 5, peak.B, 1e-9, "interior peak centered over [0,10]")

	_, err = fis.NewInput("bad", 0, 10, &fis.VariableOptions{
		Auto: &fis.Synthesis{Shape: mf.Shape(99), Labels: []string{"x"}},
	})
	assert.ErrorIs(t, err, mf.ErrUnknownShape)
}

// TestNewInput_Flags maps options onto the variable descriptor.
func TestNewInput_Flags(t *testing.T) {
	v, err := fis.NewInput("v", -1, 1, &fis.VariableOptions{
		Description: "flagged",
		Disabled:    true,
		LockRange:   true,
		Terms:       []mf.Term{mf.Triangle{Label: "t", A: -1, B: 0, C: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "flagged", v.Description)
	assert.False(t, v.Enabled)
	assert.True(t, v.LockRange)
	assert.Equal(t, -1.0, v.Minimum)
	assert.Equal(t, 1.0, v.Maximum)
}

// TestNewOutput_OperatorDefaults resolves unset output operators to
// Maximum aggregation and Centroid defuzzification.
func TestNewOutput_OperatorDefaults(t *testing.T) {
	v, err := fis.NewOutput("y", 0, 1, &fis.VariableOptions{
		Terms: []mf.Term{mf.Triangle{Label: "t", A: 0, B: 0.5, C: 1}},
	})
	require.NoError(t, err)
	require.NotNil(t, v.Aggregation)
	assert.Equal(t, 0.7, v.Aggregation(0.3, 0.7), "default aggregation is Maximum")
	assert.IsType(t, engine.Centroid{}, v.Defuzzifier)
}

// TestNewOutput_OperatorOverrides keeps caller-supplied operators.
func TestNewOutput_OperatorOverrides(t *testing.T) {
	v, err := fis.NewOutput("y", 0, 1, &fis.VariableOptions{
		Terms:       []mf.Term{mf.Triangle{Label: "t", A: 0, B: 0.5, C: 1}},
		Aggregation: engine.AlgebraicSum,
		Defuzzifier: engine.MeanOfMaximum{Resolution: 200},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.79, v.Aggregation(0.3, 0.7), 1e-12)
	assert.Equal(t, engine.MeanOfMaximum{Resolution: 200}, v.Defuzzifier)
}

// TestNewInput_NoUniverseValidation documents the caller-responsibility
// policy: a degenerate universe is accepted and produces degenerate terms.
func TestNewInput_NoUniverseValidation(t *testing.T) {
	v, err := fis.NewInput("degenerate", 1, 1, &fis.VariableOptions{
		Auto: &fis.Synthesis{Shape: mf.ShapeTriangular, Labels: []string{"a", "b"}},
	})
	require.NoError(t, err)
	require.Len(t, v.Terms, 2)
	for _, term := range v.Terms {
		tr := term.(mf.Triangle)
		assert.False(t, math.IsNaN(tr.A))
		assert.Equal(t, 1.0, tr.A, "all breakpoints collapse onto the zero-width universe")
	}
}
