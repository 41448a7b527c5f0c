package engine

// Activation decides which rules of a block contribute to the aggregated
// result, by rewriting the slice of antecedent degrees in place (one entry
// per rule, in rule order). A zeroed entry suppresses that rule.
type Activation func(degrees []float64)

// General activates every rule with its full antecedent degree.
func General() Activation {
	return func([]float64) {}
}

// Threshold suppresses rules whose antecedent degree falls below min.
func Threshold(min float64) Activation {
	return func(degrees []float64) {
		for i, d := range degrees {
			if d < min {
				degrees[i] = 0
			}
		}
	}
}

// Highest activates only the n rules with the largest antecedent degrees;
// ties resolve in rule order. A non-positive n suppresses every rule.
func Highest(n int) Activation {
	return func(degrees []float64) {
		if n >= len(degrees) {
			return
		}
		keep := make([]int, 0, n)
		for i := range degrees {
			keep = insertByDegree(keep, i, degrees, n)
		}
		kept := make(map[int]bool, len(keep))
		for _, i := range keep {
			kept[i] = true
		}
		for i := range degrees {
			if !kept[i] {
				degrees[i] = 0
			}
		}
	}
}

// insertByDegree keeps at most n rule indices sorted by descending degree.
func insertByDegree(keep []int, idx int, degrees []float64, n int) []int {
	pos := len(keep)
	for pos > 0 && degrees[keep[pos-1]] < degrees[idx] {
		pos--
	}
	if pos >= n {
		return keep
	}
	keep = append(keep, 0)
	copy(keep[pos+1:], keep[pos:])
	keep[pos] = idx
	if len(keep) > n {
		keep = keep[:n]
	}

	return keep
}
