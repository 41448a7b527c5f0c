package engine

import "math"

// DefaultResolution is the sample count used by resolution-based
// defuzzifiers when none is configured.
const DefaultResolution = 50

// Defuzzifier converts an aggregated membership curve over [minimum,
// maximum] into one crisp value. The curve is supplied as a function so the
// defuzzifier controls its own sampling.
type Defuzzifier interface {
	Defuzzify(membership func(x float64) float64, minimum, maximum float64) float64
}

// Centroid defuzzifies to the center of gravity of the aggregated curve,
// estimated over Resolution midpoint samples. A curve that is zero
// everywhere has no centroid and yields NaN.
type Centroid struct {
	Resolution int
}

// Defuzzify returns Σ(x·μ(x)) / Σμ(x) over the sampled universe.
func (c Centroid) Defuzzify(membership func(x float64) float64, minimum, maximum float64) float64 {
	res := c.Resolution
	if res <= 0 {
		res = DefaultResolution
	}
	dx := (maximum - minimum) / float64(res)

	var area, moment float64
	for i := 0; i < res; i++ {
		x := minimum + (float64(i)+0.5)*dx
		y := membership(x)
		area += y
		moment += x * y
	}
	if area == 0 {
		return math.NaN()
	}

	return moment / area
}

// Bisector defuzzifies to the vertical line splitting the aggregated area
// into two equal halves. A zero curve yields NaN.
type Bisector struct {
	Resolution int
}

// Defuzzify returns the sample abscissa at which the running area first
// reaches half of the total.
func (b Bisector) Defuzzify(membership func(x float64) float64, minimum, maximum float64) float64 {
	res := b.Resolution
	if res <= 0 {
		res = DefaultResolution
	}
	dx := (maximum - minimum) / float64(res)

	ys := make([]float64, res)
	var total float64
	for i := 0; i < res; i++ {
		ys[i] = membership(minimum + (float64(i)+0.5)*dx)
		total += ys[i]
	}
	if total == 0 {
		return math.NaN()
	}

	var running float64
	for i := 0; i < res; i++ {
		running += ys[i]
		if running >= total/2 {
			return minimum + (float64(i)+0.5)*dx
		}
	}

	return maximum
}

// MeanOfMaximum defuzzifies to the mean abscissa of the curve's maximum
// plateau. A zero curve yields NaN.
type MeanOfMaximum struct {
	Resolution int
}

// Defuzzify averages every sample abscissa whose membership reaches the
// observed maximum (within a small tolerance for sampled plateaus).
func (m MeanOfMaximum) Defuzzify(membership func(x float64) float64, minimum, maximum float64) float64 {
	res := m.Resolution
	if res <= 0 {
		res = DefaultResolution
	}
	dx := (maximum - minimum) / float64(res)

	const tolerance = 1e-9

	peak := 0.0
	ys := make([]float64, res)
	for i := 0; i < res; i++ {
		ys[i] = membership(minimum + (float64(i)+0.5)*dx)
		if ys[i] > peak {
			peak = ys[i]
		}
	}
	if peak == 0 {
		return math.NaN()
	}

	var sum float64
	var count int
	for i := 0; i < res; i++ {
		if ys[i] >= peak-tolerance {
			sum += minimum + (float64(i)+0.5)*dx
			count++
		}
	}

	return sum / float64(count)
}
