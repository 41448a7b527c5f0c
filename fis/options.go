package fis

import (
	"github.com/katalvlaran/fiskit/engine"
	"github.com/katalvlaran/fiskit/mf"
)

// Synthesis requests automatic term synthesis for a variable. Shape selects
// the family; Labels fixes term names and their left-to-right order across
// the universe; Overlap widens adjacent supports; Ratio controls the
// trapezoid flat-top width and is ignored by the other shapes.
type Synthesis struct {
	Shape   mf.Shape
	Labels  []string
	Overlap float64
	Ratio   float64
}

// VariableOptions configures variable construction.
//
// Exactly one of Terms and Auto must carry the term specification; if both
// are set, Terms wins verbatim and Auto is ignored (explicit overrides
// automatic). Aggregation and Defuzzifier apply to output variables only;
// unset output operators resolve to Maximum aggregation and a Centroid
// defuzzifier at the default resolution.
type VariableOptions struct {
	Description string
	Disabled    bool
	LockRange   bool

	// Terms supplies pre-built terms, installed as-is.
	Terms []mf.Term

	// Auto requests synthesis over the variable's universe.
	Auto *Synthesis

	// Aggregation combines rule contributions on an output variable.
	Aggregation engine.Norm

	// Defuzzifier produces the output variable's crisp value.
	Defuzzifier engine.Defuzzifier
}

// RuleBlockOptions configures rule-block assembly. The zero value carries
// no operators at all; use DefaultRuleBlockOptions for the standard set.
type RuleBlockOptions struct {
	Name        string
	Description string
	Disabled    bool

	Conjunction engine.Norm
	Disjunction engine.Norm
	Implication engine.Norm
	Activation  engine.Activation
}

// DefaultRuleBlockOptions returns the standard operator configuration:
// Minimum conjunction, Maximum disjunction, AlgebraicProduct implication
// and General activation. The value is fresh on every call, so mutating
// one returned configuration never leaks into another block.
func DefaultRuleBlockOptions() RuleBlockOptions {
	return RuleBlockOptions{
		Conjunction: engine.Minimum,
		Disjunction: engine.Maximum,
		Implication: engine.AlgebraicProduct,
		Activation:  engine.General(),
	}
}

// resolveTerms applies the Terms-over-Auto precedence and synthesizes when
// asked. A nil options value or one carrying neither path is ErrMissingTerms.
func resolveTerms(opts *VariableOptions, minimum, maximum float64) ([]mf.Term, error) {
	if opts == nil || (opts.Terms == nil && opts.Auto == nil) {
		return nil, ErrMissingTerms
	}
	if opts.Terms != nil {
		return opts.Terms, nil
	}

	return mf.Synthesize(opts.Auto.Shape, opts.Auto.Labels, minimum, maximum, opts.Auto.Overlap, opts.Auto.Ratio)
}
