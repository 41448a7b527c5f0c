// Package fiskit is a construction kit for Mamdani-style fuzzy inference
// systems: it synthesizes membership-function geometry, assembles named
// variables and rule blocks, and runs single-pass inference.
//
// 🚀 What is fiskit?
//
//	A small, deterministic library that brings together:
//		• MF synthesis: triangular, trapezoid and Gaussian-approximated terms,
//		  evenly partitioned over a universe with a tunable overlap factor
//		• Variable assembly: named input/output variables built from explicit
//		  terms or from automatic synthesis parameters
//		• Rule blocks: textual "if ... is ... then ... is ..." rules compiled
//		  against the registered variable vocabulary
//		• Inference: positional input binding, one evaluation pass, one crisp
//		  output value
//		• Visualization: terminal plots of every term's membership curve
//
// ✨ Why choose fiskit?
//
//   - Deterministic by construction – synthesis is pure closed-form geometry
//   - Explicit operator configuration – no hidden global defaults
//   - Sentinel errors everywhere – branch with errors.Is, never on strings
//   - Pure Go core – the engine, parser and defuzzifiers carry no cgo
//
// Everything is organized under five subpackages plus the CLI:
//
//	mf/     — term types (Triangle, Trapezoid, Gaussian) & shape synthesis
//	engine/ — variables, rule blocks, norms, activations, defuzzifiers, Process
//	fis/    — the high-level builder: variables, rules, Inference
//	plot/   — linspace sampling of membership curves + terminal rendering
//	config/ — YAML model documents, validated and compiled into a ready FIS
//
// Quick ASCII example of a three-label triangular partition over [0,1]:
//
//	 low     average    high
//	 ╲       ╱╲          ╱
//	  ╲     ╱  ╲        ╱
//	   ╲   ╱    ╲      ╱
//	    ╲ ╱      ╲    ╱
//	─────╳────────╳──────────
//	0   1/3      2/3        1
//
// Dive into the examples/ directory for a full tipper scenario, and into
// each package's doc.go for contracts, invariants and error policy.
//
//	go get github.com/katalvlaran/fiskit
package fiskit
