package fis

import (
	"github.com/katalvlaran/fiskit/engine"
)

// NewInput builds an input variable over [minimum, maximum] from the given
// options. Terms come from opts.Terms verbatim or from opts.Auto synthesis
// (see VariableOptions for the precedence); neither set is ErrMissingTerms.
// The variable is not yet registered anywhere — pass it to FIS.AddInput.
func NewInput(name string, minimum, maximum float64, opts *VariableOptions) (*engine.InputVariable, error) {
	terms, err := resolveTerms(opts, minimum, maximum)
	if err != nil {
		return nil, err
	}

	return &engine.InputVariable{Variable: engine.Variable{
		Name:        name,
		Description: opts.Description,
		Enabled:     !opts.Disabled,
		Minimum:     minimum,
		Maximum:     maximum,
		LockRange:   opts.LockRange,
		Terms:       terms,
	}}, nil
}

// NewOutput builds an output variable over [minimum, maximum] from the
// given options. Term resolution matches NewInput; unset output operators
// default to Maximum aggregation and Centroid defuzzification.
func NewOutput(name string, minimum, maximum float64, opts *VariableOptions) (*engine.OutputVariable, error) {
	terms, err := resolveTerms(opts, minimum, maximum)
	if err != nil {
		return nil, err
	}

	aggregation := opts.Aggregation
	if aggregation == nil {
		aggregation = engine.Maximum
	}
	defuzzifier := opts.Defuzzifier
	if defuzzifier == nil {
		defuzzifier = engine.Centroid{}
	}

	return &engine.OutputVariable{
		Variable: engine.Variable{
			Name:        name,
			Description: opts.Description,
			Enabled:     !opts.Disabled,
			Minimum:     minimum,
			Maximum:     maximum,
			LockRange:   opts.LockRange,
			Terms:       terms,
		},
		Aggregation: aggregation,
		Defuzzifier: defuzzifier,
	}, nil
}
