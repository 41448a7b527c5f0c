package engine

import "errors"

var (
	// ErrRuleSyntax indicates a rule expression that does not match the
	// "if ... is ... then ... is ..." grammar.
	ErrRuleSyntax = errors.New("engine: malformed rule expression")

	// ErrUnknownVariable indicates a rule referencing a variable name absent
	// from the relevant (input or output) set.
	ErrUnknownVariable = errors.New("engine: unknown variable in rule")

	// ErrUnknownTerm indicates a rule referencing a label its variable does
	// not carry.
	ErrUnknownTerm = errors.New("engine: unknown term in rule")

	// ErrNoConjunction indicates an "and" connective with no conjunction norm
	// configured on the rule block.
	ErrNoConjunction = errors.New("engine: rule block has no conjunction norm")

	// ErrNoDisjunction indicates an "or" connective with no disjunction norm
	// configured on the rule block.
	ErrNoDisjunction = errors.New("engine: rule block has no disjunction norm")

	// ErrNoImplication indicates a rule block holding rules without an
	// implication norm.
	ErrNoImplication = errors.New("engine: rule block has no implication norm")

	// ErrNoAggregation indicates an output variable asked to aggregate rule
	// contributions without an aggregation norm.
	ErrNoAggregation = errors.New("engine: output variable has no aggregation norm")

	// ErrNoDefuzzifier indicates an enabled output variable with no
	// defuzzifier configured.
	ErrNoDefuzzifier = errors.New("engine: output variable has no defuzzifier")
)
