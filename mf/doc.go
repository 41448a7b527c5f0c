// Package mf synthesizes parametric membership-function geometry for fuzzy
// variables: given an ordered label sequence and a continuous universe
// [minimum, maximum], it produces one term per label so that the terms
// partition the universe in label order.
//
// Partitioning rule (shared across shapes):
//
//	step = (maximum − minimum) / n        n = len(labels)
//
//	index 0      — first:    anchored flush to minimum
//	index n−1    — last:     anchored flush to maximum
//	otherwise    — interior: centered in its step-wide slot, widened on both
//	               sides by overlap·step
//
// Shapes:
//
//   - Triangle (a, b, c): feet at the slot edges, peak centered. The first
//     label peaks at minimum (a = b = minimum), the last at maximum
//     (b = c = maximum), so adjacent terms meet foot-to-foot at overlap = 0
//     and share support as overlap grows.
//   - Trapezoid (a, b, c, d): same feet as the triangle, plus a flat top of
//     width ratio·(d − a). Interior tops are centered at (a+d)/2; boundary
//     tops are anchored flush to the universe edge. ratio = 0 degenerates to
//     the triangle, ratio = 1 to a rectangular, crisp-set-like term.
//   - Gaussian (mean, stdDev): reuses the triangular envelope. mean is the
//     triangle's peak; stdDev is (mean − outer foot)/3 by the three-sigma
//     rule, so ≈99.7% of the bell lies inside the envelope. The subtraction
//     order is not sign-normalized per side: stdDev is negative whenever the
//     governing foot lies right of the mean. Membership squares it, so the
//     sign never changes evaluation.
//
// Validation policy: none. A degenerate universe (minimum ≥ maximum), an
// empty label sequence or a negative overlap produce geometrically
// well-defined but possibly unintended terms; callers validate before
// invoking. The only error surface is Synthesize with an unknown Shape.
//
// Errors (sentinel):
//
//	– ErrUnknownShape if Synthesize is asked for a shape it does not know.
package mf
