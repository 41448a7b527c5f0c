package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Model is the root of a YAML model document.
type Model struct {
	Name        string     `yaml:"name" validate:"required"`
	Description string     `yaml:"description"`
	Inputs      []Variable `yaml:"inputs" validate:"min=1,dive"`
	Outputs     []Variable `yaml:"outputs" validate:"min=1,dive"`
	RuleBlock   RuleBlock  `yaml:"rule_block"`
	Rules       []string   `yaml:"rules"`
}

// Variable declares one input or output variable. Terms and Auto follow the
// same precedence as the builder layer: explicit terms win when both are
// present. Aggregation and Defuzzifier apply to outputs only.
type Variable struct {
	Name        string  `yaml:"name" validate:"required"`
	Description string  `yaml:"description"`
	Minimum     float64 `yaml:"minimum"`
	Maximum     float64 `yaml:"maximum" validate:"gtfield=Minimum"`
	LockRange   bool    `yaml:"lock_range"`
	Disabled    bool    `yaml:"disabled"`

	Terms []Term `yaml:"terms" validate:"dive"`
	Auto  *Auto  `yaml:"auto"`

	Aggregation string       `yaml:"aggregation" validate:"omitempty,oneof=minimum maximum algebraic_product algebraic_sum bounded_difference bounded_sum"`
	Defuzzifier *Defuzzifier `yaml:"defuzzifier"`
}

// Term declares one explicit membership term by shape and parameter list:
// [a, b, c] for triangular, [a, b, c, d] for trapezoid, [mean, std_dev]
// for gaussian.
type Term struct {
	Label  string    `yaml:"label" validate:"required"`
	Shape  string    `yaml:"shape" validate:"required,oneof=triangular trapezoid gaussian"`
	Params []float64 `yaml:"params" validate:"required,min=2,max=4"`
}

// Auto requests automatic term synthesis over the variable's universe.
type Auto struct {
	Shape   string   `yaml:"shape" validate:"required,oneof=triangular trapezoid gaussian"`
	Labels  []string `yaml:"labels" validate:"required,min=1"`
	Overlap float64  `yaml:"overlap" validate:"gte=0"`
	Ratio   float64  `yaml:"ratio" validate:"gte=0,lte=1"`
}

// Defuzzifier selects an output variable's defuzzification method. A zero
// resolution keeps the engine default.
type Defuzzifier struct {
	Method     string `yaml:"method" validate:"required,oneof=centroid bisector mean_of_maximum"`
	Resolution int    `yaml:"resolution" validate:"gte=0"`
}

// RuleBlock tunes the system's rule block. Every field is optional; an
// omitted operator keeps the standard default.
type RuleBlock struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Disabled    bool        `yaml:"disabled"`
	Conjunction string      `yaml:"conjunction" validate:"omitempty,oneof=minimum maximum algebraic_product algebraic_sum bounded_difference bounded_sum"`
	Disjunction string      `yaml:"disjunction" validate:"omitempty,oneof=minimum maximum algebraic_product algebraic_sum bounded_difference bounded_sum"`
	Implication string      `yaml:"implication" validate:"omitempty,oneof=minimum maximum algebraic_product algebraic_sum bounded_difference bounded_sum"`
	Activation  *Activation `yaml:"activation"`
}

// Activation selects the rule block's activation method. Threshold feeds
// the threshold method, Count the highest method; the general method takes
// no parameters.
type Activation struct {
	Method    string  `yaml:"method" validate:"required,oneof=general threshold highest"`
	Threshold float64 `yaml:"threshold" validate:"gte=0,lte=1"`
	Count     int     `yaml:"count" validate:"gte=0"`
}

// Parse unmarshals a YAML model document and validates its structure.
func Parse(data []byte) (*Model, error) {
	var m Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("config: parse model: %w", err)
	}
	if err := validator.New().Struct(&m); err != nil {
		return nil, fmt.Errorf("config: validate model: %w", err)
	}

	return &m, nil
}

// Load reads and parses the model document at path.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read model: %w", err)
	}

	return Parse(data)
}
