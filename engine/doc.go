// Package engine evaluates Mamdani-style fuzzy inference configurations:
// it holds ordered input and output variables and rule blocks, compiles
// textual rules against the registered vocabulary, and runs one synchronous
// evaluation pass per Process call.
//
// Evaluation pipeline (one Process call):
//
//  1. Every output variable's accumulated activations are cleared.
//  2. For each enabled rule block, each rule's antecedent degree is computed
//     by fuzzifying the current input values and folding the propositions
//     left to right with the block's conjunction ("and") and disjunction
//     ("or") norms.
//  3. The block's activation policy may rescale or suppress rule degrees
//     (General keeps all of them).
//  4. Each firing rule contributes its consequent term to the consequent
//     output variable, shaped by the block's implication norm.
//  5. Each enabled output variable aggregates its contributions with its
//     aggregation norm and defuzzifies the aggregated curve into one crisp
//     value, stored in the variable's value slot.
//
// Rule grammar:
//
//	if <var> is <label> [(and|or) <var> is <label>]* then <var> is <label>
//
// Antecedent variables resolve against the input set, the consequent
// against the output set; unknown names fail compilation.
//
// Concurrency: an Engine is a single mutable configuration with no internal
// locking. Input binding, Process and output reads are separate steps over
// shared state, so concurrent Process calls on one Engine are unsafe; use
// one Engine per concurrent evaluator.
//
// Errors (sentinel):
//
//	– ErrRuleSyntax      if a rule expression does not match the grammar.
//	– ErrUnknownVariable if a rule references an unregistered variable.
//	– ErrUnknownTerm     if a rule references a label its variable lacks.
//	– ErrNoConjunction   if a rule uses "and" but the block has no conjunction.
//	– ErrNoDisjunction   if a rule uses "or" but the block has no disjunction.
//	– ErrNoImplication   if a block with rules has no implication norm.
//	– ErrNoAggregation   if an output accumulates terms without an aggregation norm.
//	– ErrNoDefuzzifier   if an enabled output has no defuzzifier.
package engine
