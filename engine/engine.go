package engine

// RuleBlock groups an ordered rule list with the operator configuration
// used to evaluate it. Every field is an explicit, per-instance value;
// there are no shared defaults.
type RuleBlock struct {
	Name        string
	Description string
	Enabled     bool

	// Conjunction combines antecedent propositions joined by "and" (T-norm).
	Conjunction Norm

	// Disjunction combines antecedent propositions joined by "or" (S-norm).
	Disjunction Norm

	// Implication shapes each consequent term by its rule's degree (T-norm).
	Implication Norm

	// Activation selects or weights which rules contribute; nil activates all.
	Activation Activation

	// Rules holds the compiled rules in declaration order. Reassignment
	// replaces the whole list; there is no incremental merge.
	Rules []*Rule
}

// Engine is one fuzzy inference configuration: ordered input and output
// variable lists plus rule blocks. Insertion order is the positional
// contract for input binding, so Inputs and Outputs always return variables
// in the order they were added.
type Engine struct {
	Name        string
	Description string

	inputs  []*InputVariable
	outputs []*OutputVariable
	blocks  []*RuleBlock
}

// New returns an empty engine configuration.
func New(name, description string) *Engine {
	return &Engine{Name: name, Description: description}
}

// AddInput appends an input variable. Name uniqueness is the caller's
// contract (the fis builder enforces it); the engine itself appends blindly.
func (e *Engine) AddInput(v *InputVariable) { e.inputs = append(e.inputs, v) }

// AddOutput appends an output variable.
func (e *Engine) AddOutput(v *OutputVariable) { e.outputs = append(e.outputs, v) }

// AddRuleBlock appends a rule block.
func (e *Engine) AddRuleBlock(rb *RuleBlock) { e.blocks = append(e.blocks, rb) }

// Inputs returns the input variables in insertion order. The slice is the
// engine's own; callers must not reorder it.
func (e *Engine) Inputs() []*InputVariable { return e.inputs }

// Outputs returns the output variables in insertion order.
func (e *Engine) Outputs() []*OutputVariable { return e.outputs }

// RuleBlocks returns the rule blocks in insertion order.
func (e *Engine) RuleBlocks() []*RuleBlock { return e.blocks }

// Input returns the input variable with the given name, if registered.
func (e *Engine) Input(name string) (*InputVariable, bool) {
	for _, v := range e.inputs {
		if v.Name == name {
			return v, true
		}
	}

	return nil, false
}

// Output returns the output variable with the given name, if registered.
func (e *Engine) Output(name string) (*OutputVariable, bool) {
	for _, v := range e.outputs {
		if v.Name == name {
			return v, true
		}
	}

	return nil, false
}

// Process runs one synchronous evaluation pass: fuzzification of the
// current input values, antecedent combination, implication, activation,
// per-output aggregation and defuzzification. It either completes, leaving
// every enabled output's value slot updated, or returns the first
// configuration error encountered.
func (e *Engine) Process() error {
	for _, out := range e.outputs {
		out.reset()
	}

	for _, rb := range e.blocks {
		if rb == nil || !rb.Enabled {
			continue
		}
		if len(rb.Rules) > 0 && rb.Implication == nil {
			return ErrNoImplication
		}

		degrees := make([]float64, len(rb.Rules))
		for i, r := range rb.Rules {
			d, err := r.antecedentDegree(rb.Conjunction, rb.Disjunction)
			if err != nil {
				return err
			}
			degrees[i] = d
		}
		if rb.Activation != nil {
			rb.Activation(degrees)
		}
		for i, r := range rb.Rules {
			if degrees[i] == 0 {
				continue
			}
			r.output.activate(r.consequent, degrees[i], rb.Implication)
		}
	}

	for _, out := range e.outputs {
		if !out.Enabled {
			continue
		}
		crisp, err := out.defuzzify()
		if err != nil {
			return err
		}
		out.SetValue(crisp)
	}

	return nil
}
