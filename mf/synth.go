package mf

// TriangularTerms partitions [minimum, maximum] into one Triangle per label.
//
// Breakpoints for n labels with step = (maximum − minimum)/n:
//
//	first    (i = 0):   a = b = minimum, c = minimum + step·(1 + overlap)
//	last     (i = n−1): a = minimum + step·(i − overlap), b = c = maximum
//	interior:           a = minimum + step·(i − overlap),
//	                    c = minimum + step·(i+1 + overlap), b = (a + c)/2
//
// At overlap = 0 adjacent feet coincide exactly; larger overlaps widen every
// interior support while the boundary anchors stay fixed. A single label
// (n = 1) takes the first-label branch and spans the whole universe.
// Complexity: O(n) time, O(n) space.
func TriangularTerms(labels []string, minimum, maximum, overlap float64) []Triangle {
	n := len(labels)
	step := (maximum - minimum) / float64(n)

	terms := make([]Triangle, 0, n)
	for i, label := range labels {
		var a, b, c float64
		switch {
		case i == 0:
			a = minimum
			b = minimum
			c = minimum + step*(1+overlap)
		case i == n-1:
			a = minimum + step*(float64(i)-overlap)
			b = maximum
			c = maximum
		default:
			a = minimum + step*(float64(i)-overlap)
			c = minimum + step*(float64(i+1)+overlap)
			b = 0.5 * (a + c)
		}
		terms = append(terms, Triangle{Label: label, A: a, B: b, C: c})
	}

	return terms
}

// TrapezoidTerms partitions [minimum, maximum] into one Trapezoid per label.
//
// The feet (a, d) match the triangular partition; the flat top has width
// ratio·(d − a). Interior tops are centered at mid = (a + d)/2:
//
//	b = mid − ratio·(d − a)/2,  c = mid + ratio·(d − a)/2
//
// Boundary tops are anchored flush to the universe edge:
//
//	first: a = b = minimum,  c = minimum + ratio·(d − minimum)
//	last:  c = d = maximum,  b = maximum − ratio·(maximum − a)
//
// ratio = 0 degenerates to the triangular partition, ratio = 1 to
// rectangular terms. Parameters stay monotone (a ≤ b ≤ c ≤ d) for every
// ratio in [0, 1] and overlap ≥ 0.
// Complexity: O(n) time, O(n) space.
func TrapezoidTerms(labels []string, minimum, maximum, ratio, overlap float64) []Trapezoid {
	n := len(labels)
	step := (maximum - minimum) / float64(n)

	terms := make([]Trapezoid, 0, n)
	for i, label := range labels {
		var a, b, c, d float64
		switch {
		case i == 0:
			a = minimum
			b = minimum
			d = minimum + step*(1+overlap)
			c = minimum + ratio*(d-a)
		case i == n-1:
			a = minimum + step*(float64(i)-overlap)
			c = maximum
			d = maximum
			b = maximum - ratio*(maximum-a)
		default:
			a = minimum + step*(float64(i)-overlap)
			d = minimum + step*(float64(i+1)+overlap)
			mid := 0.5 * (a + d)
			halfTop := 0.5 * ratio * (d - a)
			b = mid - halfTop
			c = mid + halfTop
		}
		terms = append(terms, Trapezoid{Label: label, A: a, B: b, C: c, D: d})
	}

	return terms
}

// GaussianTerms partitions [minimum, maximum] into one Gaussian per label.
//
// Each term reuses the peak of the corresponding triangular envelope as its
// mean, and derives the standard deviation from the distance between the
// mean and the envelope's outer foot divided by 3 (three-sigma rule).
// Boundary labels have a single envelope foot — the universe edge — so that
// foot governs. The subtraction order follows the geometry and is not
// sign-normalized: interior and first labels yield a negative StdDev, the
// last label a positive one. See the Gaussian type for the consequences.
// Complexity: O(n) time, O(n) space.
func GaussianTerms(labels []string, minimum, maximum, overlap float64) []Gaussian {
	n := len(labels)
	step := (maximum - minimum) / float64(n)

	terms := make([]Gaussian, 0, n)
	for i, label := range labels {
		var mean, stdDev float64
		switch {
		case i == 0:
			c := minimum + step*(1+overlap)
			mean = minimum
			stdDev = (mean - c) / 3
		case i == n-1:
			a := minimum + step*(float64(i)-overlap)
			mean = maximum
			stdDev = (mean - a) / 3
		default:
			a := minimum + step*(float64(i)-overlap)
			c := minimum + step*(float64(i+1)+overlap)
			mean = 0.5 * (a + c)
			stdDev = (mean - c) / 3
		}
		terms = append(terms, Gaussian{Label: label, Mean: mean, StdDev: stdDev})
	}

	return terms
}

// Synthesize dispatches to the shape-specific synthesizer and returns the
// terms behind the Term interface, in label order. The ratio argument is
// consulted only for Trapezoid. Unknown shapes return ErrUnknownShape.
func Synthesize(shape Shape, labels []string, minimum, maximum, overlap, ratio float64) ([]Term, error) {
	switch shape {
	case ShapeTriangular:
		return asTerms(TriangularTerms(labels, minimum, maximum, overlap)), nil
	case ShapeTrapezoid:
		return asTerms(TrapezoidTerms(labels, minimum, maximum, ratio, overlap)), nil
	case ShapeGaussian:
		return asTerms(GaussianTerms(labels, minimum, maximum, overlap)), nil
	default:
		return nil, ErrUnknownShape
	}
}

// asTerms lifts a concrete term slice into []Term without copying values twice.
func asTerms[T Term](concrete []T) []Term {
	terms := make([]Term, len(concrete))
	for i, t := range concrete {
		terms[i] = t
	}

	return terms
}
