package engine

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fiskit/mf"
)

// Grammar keywords. Variable and label names are matched case-sensitively;
// keywords are lowercase, as in the textual rule format.
const (
	keywordIf   = "if"
	keywordIs   = "is"
	keywordThen = "then"
	keywordAnd  = "and"
	keywordOr   = "or"
)

// connective joins two antecedent propositions.
type connective int

const (
	connAnd connective = iota
	connOr
)

// proposition is one resolved "<var> is <label>" clause.
type proposition struct {
	variable *Variable
	term     mf.Term
}

// membership fuzzifies the proposition against its variable's current value.
func (p proposition) membership() float64 {
	return p.term.Membership(p.variable.Value())
}

// Rule is one compiled inference rule: an antecedent chain of propositions
// joined by and/or connectives, and a single consequent proposition on an
// output variable.
type Rule struct {
	// Text is the original rule expression, kept for diagnostics.
	Text string

	antecedent  []proposition
	connectives []connective
	output      *OutputVariable
	consequent  mf.Term
}

// ParseRule compiles a textual rule of the form
//
//	if <var> is <label> [(and|or) <var> is <label>]* then <var> is <label>
//
// against the engine's registered vocabulary: antecedent variables resolve
// within the input set, the consequent within the output set. Compilation
// fails with ErrRuleSyntax, ErrUnknownVariable or ErrUnknownTerm; the
// sentinel is wrapped with the offending token for diagnostics.
func ParseRule(text string, e *Engine) (*Rule, error) {
	tokens := strings.Fields(text)
	if len(tokens) < 8 || tokens[0] != keywordIf {
		return nil, fmt.Errorf("%w: %q", ErrRuleSyntax, text)
	}

	rule := &Rule{Text: text}
	pos := 1

	for {
		if pos+3 > len(tokens) || tokens[pos+1] != keywordIs {
			return nil, fmt.Errorf("%w: %q", ErrRuleSyntax, text)
		}
		name, label := tokens[pos], tokens[pos+2]
		pos += 3

		in, ok := e.Input(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
		}
		term, ok := in.Term(label)
		if !ok {
			return nil, fmt.Errorf("%w: %q has no term %q", ErrUnknownTerm, name, label)
		}
		rule.antecedent = append(rule.antecedent, proposition{variable: &in.Variable, term: term})

		if pos >= len(tokens) {
			return nil, fmt.Errorf("%w: %q", ErrRuleSyntax, text)
		}
		switch tokens[pos] {
		case keywordAnd:
			rule.connectives = append(rule.connectives, connAnd)
			pos++
		case keywordOr:
			rule.connectives = append(rule.connectives, connOr)
			pos++
		case keywordThen:
			pos++

			return parseConsequent(rule, tokens[pos:], text, e)
		default:
			return nil, fmt.Errorf("%w: unexpected token %q in %q", ErrRuleSyntax, tokens[pos], text)
		}
	}
}

// parseConsequent resolves the trailing "<var> is <label>" clause against
// the output set and finishes the rule.
func parseConsequent(rule *Rule, tokens []string, text string, e *Engine) (*Rule, error) {
	if len(tokens) != 3 || tokens[1] != keywordIs {
		return nil, fmt.Errorf("%w: %q", ErrRuleSyntax, text)
	}
	name, label := tokens[0], tokens[2]

	out, ok := e.Output(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}
	term, ok := out.Term(label)
	if !ok {
		return nil, fmt.Errorf("%w: %q has no term %q", ErrUnknownTerm, name, label)
	}
	rule.output = out
	rule.consequent = term

	return rule, nil
}

// antecedentDegree fuzzifies the current input values and folds the
// proposition chain left to right with the block's conjunction and
// disjunction norms.
func (r *Rule) antecedentDegree(conjunction, disjunction Norm) (float64, error) {
	degree := r.antecedent[0].membership()
	for i, c := range r.connectives {
		next := r.antecedent[i+1].membership()
		switch c {
		case connAnd:
			if conjunction == nil {
				return 0, fmt.Errorf("%w: %q", ErrNoConjunction, r.Text)
			}
			degree = conjunction(degree, next)
		case connOr:
			if disjunction == nil {
				return 0, fmt.Errorf("%w: %q", ErrNoDisjunction, r.Text)
			}
			degree = disjunction(degree, next)
		}
	}

	return degree, nil
}
