package config

import (
	"fmt"

	"github.com/katalvlaran/fiskit/engine"
	"github.com/katalvlaran/fiskit/fis"
	"github.com/katalvlaran/fiskit/mf"
)

// Build compiles the model into a ready-to-evaluate system: variables are
// constructed and registered in document order, the rule block assembled,
// and the rule expressions compiled against the registered vocabulary.
func (m *Model) Build() (*fis.FIS, error) {
	f := fis.New(m.Name, m.Description)

	for _, vc := range m.Inputs {
		opts, err := vc.options()
		if err != nil {
			return nil, fmt.Errorf("config: input %q: %w", vc.Name, err)
		}
		v, err := fis.NewInput(vc.Name, vc.Minimum, vc.Maximum, opts)
		if err != nil {
			return nil, fmt.Errorf("config: input %q: %w", vc.Name, err)
		}
		if err = f.AddInput(v); err != nil {
			return nil, err
		}
	}
	for _, vc := range m.Outputs {
		opts, err := vc.options()
		if err != nil {
			return nil, fmt.Errorf("config: output %q: %w", vc.Name, err)
		}
		v, err := fis.NewOutput(vc.Name, vc.Minimum, vc.Maximum, opts)
		if err != nil {
			return nil, fmt.Errorf("config: output %q: %w", vc.Name, err)
		}
		if err = f.AddOutput(v); err != nil {
			return nil, err
		}
	}

	blockOpts, err := m.RuleBlock.options()
	if err != nil {
		return nil, fmt.Errorf("config: rule block: %w", err)
	}
	f.CreateRuleBlock(blockOpts)
	if err = f.AddRuleBlock(); err != nil {
		return nil, err
	}
	if err = f.AddRules(m.Rules); err != nil {
		return nil, err
	}

	return f, nil
}

// options translates a variable declaration into builder options.
func (v *Variable) options() (*fis.VariableOptions, error) {
	opts := &fis.VariableOptions{
		Description: v.Description,
		Disabled:    v.Disabled,
		LockRange:   v.LockRange,
	}

	if len(v.Terms) > 0 {
		terms := make([]mf.Term, 0, len(v.Terms))
		for _, tc := range v.Terms {
			term, err := tc.build()
			if err != nil {
				return nil, err
			}
			terms = append(terms, term)
		}
		opts.Terms = terms
	}
	if v.Auto != nil {
		shape, err := mf.ParseShape(v.Auto.Shape)
		if err != nil {
			return nil, err
		}
		opts.Auto = &fis.Synthesis{
			Shape:   shape,
			Labels:  v.Auto.Labels,
			Overlap: v.Auto.Overlap,
			Ratio:   v.Auto.Ratio,
		}
	}

	if v.Aggregation != "" {
		norm, err := parseNorm(v.Aggregation)
		if err != nil {
			return nil, err
		}
		opts.Aggregation = norm
	}
	if v.Defuzzifier != nil {
		defuzz, err := v.Defuzzifier.build()
		if err != nil {
			return nil, err
		}
		opts.Defuzzifier = defuzz
	}

	return opts, nil
}

// build translates one term declaration into its membership term.
func (t *Term) build() (mf.Term, error) {
	shape, err := mf.ParseShape(t.Shape)
	if err != nil {
		return nil, err
	}

	switch shape {
	case mf.ShapeTriangular:
		if len(t.Params) != 3 {
			return nil, fmt.Errorf("%w: term %q wants 3 params, got %d", ErrTermParams, t.Label, len(t.Params))
		}

		return mf.Triangle{Label: t.Label, A: t.Params[0], B: t.Params[1], C: t.Params[2]}, nil
	case mf.ShapeTrapezoid:
		if len(t.Params) != 4 {
			return nil, fmt.Errorf("%w: term %q wants 4 params, got %d", ErrTermParams, t.Label, len(t.Params))
		}

		return mf.Trapezoid{Label: t.Label, A: t.Params[0], B: t.Params[1], C: t.Params[2], D: t.Params[3]}, nil
	default:
		if len(t.Params) != 2 {
			return nil, fmt.Errorf("%w: term %q wants 2 params, got %d", ErrTermParams, t.Label, len(t.Params))
		}

		return mf.Gaussian{Label: t.Label, Mean: t.Params[0], StdDev: t.Params[1]}, nil
	}
}

// build translates a defuzzifier declaration into its engine implementation.
func (d *Defuzzifier) build() (engine.Defuzzifier, error) {
	switch d.Method {
	case "centroid":
		return engine.Centroid{Resolution: d.Resolution}, nil
	case "bisector":
		return engine.Bisector{Resolution: d.Resolution}, nil
	case "mean_of_maximum":
		return engine.MeanOfMaximum{Resolution: d.Resolution}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDefuzzifier, d.Method)
	}
}

// options translates the rule block declaration into assembler options,
// starting from the standard defaults and overriding only the named slots.
func (rb *RuleBlock) options() (*fis.RuleBlockOptions, error) {
	opts := fis.DefaultRuleBlockOptions()
	opts.Name = rb.Name
	opts.Description = rb.Description
	opts.Disabled = rb.Disabled

	var err error
	if rb.Conjunction != "" {
		if opts.Conjunction, err = parseNorm(rb.Conjunction); err != nil {
			return nil, err
		}
	}
	if rb.Disjunction != "" {
		if opts.Disjunction, err = parseNorm(rb.Disjunction); err != nil {
			return nil, err
		}
	}
	if rb.Implication != "" {
		if opts.Implication, err = parseNorm(rb.Implication); err != nil {
			return nil, err
		}
	}
	if rb.Activation != nil {
		if opts.Activation, err = rb.Activation.build(); err != nil {
			return nil, err
		}
	}

	return &opts, nil
}

// build translates an activation declaration into its engine implementation.
func (a *Activation) build() (engine.Activation, error) {
	switch a.Method {
	case "general":
		return engine.General(), nil
	case "threshold":
		return engine.Threshold(a.Threshold), nil
	case "highest":
		return engine.Highest(a.Count), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownActivation, a.Method)
	}
}

// parseNorm resolves a documented norm name to its implementation.
func parseNorm(name string) (engine.Norm, error) {
	switch name {
	case "minimum":
		return engine.Minimum, nil
	case "maximum":
		return engine.Maximum, nil
	case "algebraic_product":
		return engine.AlgebraicProduct, nil
	case "algebraic_sum":
		return engine.AlgebraicSum, nil
	case "bounded_difference":
		return engine.BoundedDifference, nil
	case "bounded_sum":
		return engine.BoundedSum, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNorm, name)
	}
}
