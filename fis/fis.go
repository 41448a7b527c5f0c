package fis

import (
	"fmt"

	"github.com/katalvlaran/fiskit/engine"
)

// FIS is one fuzzy inference system under assembly and evaluation: an
// engine configuration, at most one rule block, and the crisp result of
// the latest inference pass.
type FIS struct {
	engine *engine.Engine
	block  *engine.RuleBlock
	output float64
}

// New returns an empty system around a fresh engine configuration.
func New(name, description string) *FIS {
	return &FIS{engine: engine.New(name, description)}
}

// Engine exposes the underlying configuration for direct reads — e.g.
// retrieving outputs beyond the first after an Inference call.
func (f *FIS) Engine() *engine.Engine { return f.engine }

// CreateRuleBlock assembles a fresh rule block from the given options
// (nil means DefaultRuleBlockOptions) and makes it the system's current
// block. Any previously created block is superseded; the engine keeps at
// most this one block.
func (f *FIS) CreateRuleBlock(opts *RuleBlockOptions) {
	resolved := DefaultRuleBlockOptions()
	if opts != nil {
		resolved = *opts
	}
	f.block = &engine.RuleBlock{
		Name:        resolved.Name,
		Description: resolved.Description,
		Enabled:     !resolved.Disabled,
		Conjunction: resolved.Conjunction,
		Disjunction: resolved.Disjunction,
		Implication: resolved.Implication,
		Activation:  resolved.Activation,
	}
}

// AddRuleBlock registers the current rule block with the engine. Calling
// it before CreateRuleBlock is ErrNoRuleBlock.
func (f *FIS) AddRuleBlock() error {
	if f.block == nil {
		return ErrNoRuleBlock
	}
	f.engine.AddRuleBlock(f.block)

	return nil
}

// AddInput registers an input variable, enforcing name uniqueness within
// the input set. On ErrDuplicateVariable the engine is left unchanged.
func (f *FIS) AddInput(v *engine.InputVariable) error {
	if _, exists := f.engine.Input(v.Name); exists {
		return fmt.Errorf("%w: input %q", ErrDuplicateVariable, v.Name)
	}
	f.engine.AddInput(v)

	return nil
}

// AddOutput registers an output variable, enforcing name uniqueness within
// the output set. A name already used by an input does not conflict.
func (f *FIS) AddOutput(v *engine.OutputVariable) error {
	if _, exists := f.engine.Output(v.Name); exists {
		return fmt.Errorf("%w: output %q", ErrDuplicateVariable, v.Name)
	}
	f.engine.AddOutput(v)

	return nil
}

// AddRules compiles the whole batch of textual rule expressions against
// the registered vocabulary and replaces the current block's rule list.
// The new list is installed only if every rule compiles: a failure aborts
// the batch, leaves the previous list visible, and wraps the engine's
// compilation sentinel with the offending expression. An empty batch
// installs an empty rule list.
func (f *FIS) AddRules(rules []string) error {
	if f.block == nil {
		return ErrNoRuleBlock
	}

	compiled := make([]*engine.Rule, 0, len(rules))
	for _, text := range rules {
		r, err := engine.ParseRule(text, f.engine)
		if err != nil {
			return fmt.Errorf("fis: rule %q: %w", text, err)
		}
		compiled = append(compiled, r)
	}
	f.block.Rules = compiled

	return nil
}

// Inference binds the values to the input variables positionally — value i
// goes to the variable added i-th, regardless of names — runs one
// evaluation pass, and returns the value of the first registered output
// variable. Further outputs, if any, are readable through Engine() after
// the call; this single-output contract is deliberate.
func (f *FIS) Inference(values []float64) (float64, error) {
	inputs := f.engine.Inputs()
	if len(values) != len(inputs) {
		return 0, fmt.Errorf("%w: got %d values for %d inputs", ErrInputCount, len(values), len(inputs))
	}
	outputs := f.engine.Outputs()
	if len(outputs) == 0 {
		return 0, ErrNoOutputs
	}

	for i, v := range inputs {
		v.SetValue(values[i])
	}
	if err := f.engine.Process(); err != nil {
		return 0, err
	}
	f.output = outputs[0].Value()

	return f.output, nil
}

// Output returns the crisp result of the latest Inference call.
func (f *FIS) Output() float64 { return f.output }

// InputNames returns the input variable names in insertion order — the
// same order Inference binds values in.
func (f *FIS) InputNames() []string {
	inputs := f.engine.Inputs()
	names := make([]string, len(inputs))
	for i, v := range inputs {
		names[i] = v.Name
	}

	return names
}

// OutputNames returns the output variable names in insertion order.
func (f *FIS) OutputNames() []string {
	outputs := f.engine.Outputs()
	names := make([]string, len(outputs))
	for i, v := range outputs {
		names[i] = v.Name
	}

	return names
}
