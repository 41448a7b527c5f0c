package plot

import (
	"github.com/katalvlaran/fiskit/engine"
	"github.com/katalvlaran/fiskit/mf"
)

// DefaultSamples is the grid size used when a non-positive sample count is
// requested.
const DefaultSamples = 100

// Series is one sampled membership curve: the term's label and parallel
// X/Y point slices.
type Series struct {
	Label string
	X     []float64
	Y     []float64
}

// Sample evaluates every term over a linearly spaced grid of n points
// across [minimum, maximum], both ends inclusive, and returns one Series
// per term in term order.
func Sample(terms []mf.Term, minimum, maximum float64, n int) []Series {
	if n < 2 {
		n = DefaultSamples
	}
	step := (maximum - minimum) / float64(n-1)

	series := make([]Series, 0, len(terms))
	for _, term := range terms {
		s := Series{
			Label: term.Name(),
			X:     make([]float64, n),
			Y:     make([]float64, n),
		}
		for i := 0; i < n; i++ {
			x := minimum + float64(i)*step
			s.X[i] = x
			s.Y[i] = term.Membership(x)
		}
		series = append(series, s)
	}

	return series
}

// SampleVariable samples all terms of a variable over its own universe.
func SampleVariable(v *engine.Variable, n int) []Series {
	return Sample(v.Terms, v.Minimum, v.Maximum, n)
}
