package fis

import "errors"

var (
	// ErrMissingTerms indicates a variable request carrying neither explicit
	// terms nor automatic synthesis parameters — nothing to build from.
	ErrMissingTerms = errors.New("fis: variable needs explicit terms or a synthesis request")

	// ErrDuplicateVariable indicates a name collision within the input set or
	// within the output set. The engine configuration is left unchanged.
	ErrDuplicateVariable = errors.New("fis: variable names must be unique within their set")

	// ErrInputCount indicates an Inference call whose value count differs
	// from the number of registered input variables.
	ErrInputCount = errors.New("fis: input value count does not match registered input variables")

	// ErrNoRuleBlock indicates a rule operation before CreateRuleBlock.
	ErrNoRuleBlock = errors.New("fis: no rule block has been created")

	// ErrNoOutputs indicates an Inference call on a system with no output
	// variables registered.
	ErrNoOutputs = errors.New("fis: no output variables registered")
)
