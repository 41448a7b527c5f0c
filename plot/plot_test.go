package plot_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/fiskit/engine"
	"github.com/katalvlaran/fiskit/mf"
	"github.com/katalvlaran/fiskit/plot"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSample_Linspace pins the grid: n points, both ends inclusive, and the
// membership evaluated at each point.
func TestSample_Linspace(t *testing.T) {
	terms := []mf.Term{mf.Triangle{Label: "tri", A: 0, B: 0.5, C: 1}}

	series := plot.Sample(terms, 0, 1, 5)
	require.Len(t, series, 1)
	s := series[0]
	assert.Equal(t, "tri", s.Label)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, s.X)
	assert.Equal(t, []float64{0, 0.5, 1, 0.5, 0}, s.Y)
}

// TestSample_DefaultCount substitutes the default grid for degenerate counts.
func TestSample_DefaultCount(t *testing.T) {
	terms := []mf.Term{mf.Triangle{Label: "tri", A: 0, B: 0.5, C: 1}}

	for _, n := range []int{-1, 0, 1} {
		series := plot.Sample(terms, 0, 1, n)
		require.Len(t, series, 1)
		assert.Len(t, series[0].X, plot.DefaultSamples)
		assert.Len(t, series[0].Y, plot.DefaultSamples)
	}
}

// TestSample_TermOrder keeps one series per term, in term order.
func TestSample_TermOrder(t *testing.T) {
	terms := []mf.Term{
		mf.Triangle{Label: "b", A: 0, B: 0, C: 1},
		mf.Triangle{Label: "a", A: 0, B: 1, C: 1},
	}

	series := plot.Sample(terms, 0, 1, 3)
	require.Len(t, series, 2)
	assert.Equal(t, "b", series[0].Label)
	assert.Equal(t, "a", series[1].Label)
}

// TestSampleVariable samples over the variable's own universe.
func TestSampleVariable(t *testing.T) {
	v := &engine.Variable{
		Name:    "x",
		Minimum: 2,
		Maximum: 6,
		Terms:   []mf.Term{mf.Triangle{Label: "mid", A: 2, B: 4, C: 6}},
	}

	series := plot.SampleVariable(v, 5)
	require.Len(t, series, 1)
	assert.Equal(t, []float64{2, 3, 4, 5, 6}, series[0].X)
	assert.Equal(t, []float64{0, 0.5, 1, 0.5, 0}, series[0].Y)
}

// TestRender_Ascii draws a tiny triangle on a 5x3 grid with the Ascii
// profile, so markers render plain and the whole frame is deterministic.
func TestRender_Ascii(t *testing.T) {
	r := &plot.Renderer{Width: 5, Height: 3, Profile: termenv.Ascii}
	series := []plot.Series{{
		Label: "tri",
		X:     []float64{0, 0.25, 0.5, 0.75, 1},
		Y:     []float64{0, 0.5, 1, 0.5, 0},
	}}

	got := r.Render("", series)
	want := strings.Join([]string{
		"│  •  ",
		"│ • • ",
		"│•   •",
		"└─────",
		"• tri [0, 1]",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

// TestRender_TitleAndEmpty covers the title line and the empty-series frame.
func TestRender_TitleAndEmpty(t *testing.T) {
	r := &plot.Renderer{Width: 3, Height: 2, Profile: termenv.Ascii}

	got := r.Render("x", nil)
	want := strings.Join([]string{
		"x",
		"│   ",
		"│   ",
		"└───",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

// TestRender_LaterSeriesWins checks overlap resolution: the second curve
// paints over the first where both hit the same cell.
func TestRender_LaterSeriesWins(t *testing.T) {
	r := &plot.Renderer{Width: 2, Height: 2, Profile: termenv.TrueColor}
	flat := func(label string) plot.Series {
		return plot.Series{Label: label, X: []float64{0, 1}, Y: []float64{1, 1}}
	}

	got := r.Render("", []plot.Series{flat("first"), flat("second")})
	lines := strings.Split(got, "\n")
	require.GreaterOrEqual(t, len(lines), 1)
	// Both curves occupy the top row; the painted markers must carry the
	// second series' color, which also prefixes its legend line.
	legendSecond := lines[len(lines)-2]
	secondMarker := strings.TrimSuffix(legendSecond, " second [0, 1]")
	assert.Equal(t, "│"+secondMarker+secondMarker, lines[0])
}
