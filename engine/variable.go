package engine

import "github.com/katalvlaran/fiskit/mf"

// Variable is one named linguistic variable: a universe [Minimum, Maximum]
// and an ordered sequence of terms, plus a crisp value slot read and
// written around evaluation. Terms are stored in label order and are not
// mutated after insertion.
type Variable struct {
	Name        string
	Description string
	Enabled     bool
	Minimum     float64
	Maximum     float64
	LockRange   bool
	Terms       []mf.Term

	value float64
}

// Value returns the variable's current crisp value.
func (v *Variable) Value() float64 { return v.value }

// SetValue stores a crisp value, clamped to the universe when LockRange is
// set.
func (v *Variable) SetValue(x float64) {
	if v.LockRange {
		if x < v.Minimum {
			x = v.Minimum
		}
		if x > v.Maximum {
			x = v.Maximum
		}
	}
	v.value = x
}

// Term returns the term with the given label, if present.
func (v *Variable) Term(label string) (mf.Term, bool) {
	for _, t := range v.Terms {
		if t.Name() == label {
			return t, true
		}
	}

	return nil, false
}

// InputVariable is a Variable on the antecedent side: its value is bound by
// the caller before evaluation and fuzzified against its terms.
type InputVariable struct {
	Variable
}

// OutputVariable is a Variable on the consequent side: rules accumulate
// implication-shaped term activations into it, and Process aggregates and
// defuzzifies them into the value slot.
type OutputVariable struct {
	Variable

	// Aggregation combines the activated consequent curves (an S-norm).
	Aggregation Norm

	// Defuzzifier converts the aggregated curve into a crisp value.
	Defuzzifier Defuzzifier

	activated []activatedTerm
}

// activatedTerm is one rule contribution: a consequent term clipped or
// scaled by the rule's activation degree through the block's implication.
type activatedTerm struct {
	term        mf.Term
	degree      float64
	implication Norm
}

// reset clears the contributions accumulated by the previous evaluation.
func (o *OutputVariable) reset() { o.activated = o.activated[:0] }

// activate records one rule contribution for the next defuzzification.
func (o *OutputVariable) activate(term mf.Term, degree float64, implication Norm) {
	o.activated = append(o.activated, activatedTerm{term: term, degree: degree, implication: implication})
}

// fuzzyMembership evaluates the aggregated consequent curve at x.
func (o *OutputVariable) fuzzyMembership(x float64) float64 {
	var y float64
	for _, at := range o.activated {
		y = o.Aggregation(y, at.implication(at.degree, at.term.Membership(x)))
	}

	return y
}

// defuzzify collapses the aggregated curve into one crisp value.
// With no accumulated activation the curve is zero everywhere and the
// defuzzifier decides the outcome (NaN for the resolution-based ones).
func (o *OutputVariable) defuzzify() (float64, error) {
	if o.Defuzzifier == nil {
		return 0, ErrNoDefuzzifier
	}
	if o.Aggregation == nil {
		return 0, ErrNoAggregation
	}

	return o.Defuzzifier.Defuzzify(o.fuzzyMembership, o.Minimum, o.Maximum), nil
}
