// Package config loads fuzzy inference systems from YAML model documents.
//
// A model document names the system, declares input and output variables
// (each with explicit terms or an auto-synthesis request), optionally tunes
// the rule block's operators, and lists the rule expressions. Parse
// unmarshals and validates the document; Model.Build compiles it into a
// ready-to-evaluate *fis.FIS.
//
// Operator names in documents are lowercase snake_case: minimum, maximum,
// algebraic_product, algebraic_sum, bounded_difference, bounded_sum for
// norms; centroid, bisector, mean_of_maximum for defuzzifiers; general,
// threshold, highest for activations. Omitted operators fall back to the
// same defaults the fis package applies.
package config
