package config

import "errors"

var (
	// ErrUnknownNorm reports a norm name outside the documented set.
	ErrUnknownNorm = errors.New("config: unknown norm")

	// ErrUnknownDefuzzifier reports a defuzzifier method outside the
	// documented set.
	ErrUnknownDefuzzifier = errors.New("config: unknown defuzzifier")

	// ErrUnknownActivation reports an activation method outside the
	// documented set.
	ErrUnknownActivation = errors.New("config: unknown activation")

	// ErrTermParams reports a term whose params length does not match its
	// shape: 3 for triangular, 4 for trapezoid, 2 for gaussian.
	ErrTermParams = errors.New("config: wrong term parameter count")
)
