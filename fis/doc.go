// Package fis assembles and runs fuzzy inference systems: it builds named
// input/output variables (from explicit terms or automatic synthesis),
// compiles textual rule lists into a rule block, and runs single-pass
// inference over the underlying engine configuration.
//
// Assembly flow:
//
//	f := fis.New("tipper", "classic restaurant tipper")
//	in, _ := fis.NewInput("service", 0, 10, &fis.VariableOptions{
//	    Auto: &fis.Synthesis{Shape: mf.ShapeTriangular, Labels: []string{"poor", "good", "excellent"}},
//	})
//	_ = f.AddInput(in)
//	...
//	f.CreateRuleBlock(nil)           // fresh defaults: Minimum/Maximum/AlgebraicProduct/General
//	_ = f.AddRuleBlock()
//	_ = f.AddRules([]string{"if service is poor then tip is low", ...})
//	tip, _ := f.Inference([]float64{3.5})
//
// Contracts:
//
//   - Variable construction needs either explicit Terms or an Auto synthesis
//     request; neither set is ErrMissingTerms. When both are set the explicit
//     Terms win, verbatim — synthesis parameters are ignored.
//   - AddInput/AddOutput enforce name uniqueness within their own set (the
//     same name may appear once among inputs and once among outputs); a
//     duplicate is ErrDuplicateVariable and the engine is left unchanged.
//   - AddRules compiles the whole batch before installing it: a compilation
//     failure aborts the batch and the previously installed rule list stays
//     visible. An empty batch installs an empty rule list.
//   - Inference binds values positionally — value i goes to the input
//     variable added i-th, regardless of names — then evaluates once and
//     returns the value of the FIRST registered output variable only.
//     Callers needing further outputs read them through Engine() after the
//     call. This single-output contract is deliberate and preserved.
//
// Concurrency: a FIS wraps one mutable engine configuration; input binding
// and output reads are separate steps around shared state, so concurrent
// Inference calls on one FIS are unsafe. Use one FIS per concurrent
// evaluator.
//
// Errors (sentinel):
//
//	– ErrMissingTerms      if neither Terms nor Auto is supplied.
//	– ErrDuplicateVariable if a variable name collides within its set.
//	– ErrInputCount        if Inference receives the wrong number of values.
//	– ErrNoRuleBlock       if rules are added before a block exists.
//	– ErrNoOutputs         if Inference runs with no output variables.
//
// Rule compilation failures propagate the engine package's sentinels
// (ErrRuleSyntax, ErrUnknownVariable, ErrUnknownTerm) wrapped with the
// offending rule text.
package fis
