// SPDX-License-Identifier: MIT
// Package signal: functional options.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless inputs.
//   - Shape constructors never panic; they return errors.
//   - Later options override earlier ones.

package signal

import (
	"math"
	"math/cmplx"
)

// Option customizes a shape constructor.
type Option func(*config)

// WithAmplitude sets the amplitude A (> 0, finite).
func WithAmplitude(a float64) Option {
	if !(a > 0) || math.IsInf(a, 0) {
		panic("signal: WithAmplitude(A<=0)")
	}
	return func(c *config) { c.amplitude = a }
}

// WithFrequency sets how many laps the shape makes per period (> 0, finite).
func WithFrequency(f float64) Option {
	if !(f > 0) || math.IsInf(f, 0) {
		panic("signal: WithFrequency(f<=0)")
	}
	return func(c *config) { c.frequency = f }
}

// WithPhase sets the starting phase φ in radians.
func WithPhase(phi float64) Option {
	if math.IsNaN(phi) || math.IsInf(phi, 0) {
		panic("signal: WithPhase(non-finite)")
	}
	return func(c *config) { c.phase = phi }
}

// WithCenter translates the shape by c.
func WithCenter(c complex128) Option {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		panic("signal: WithCenter(non-finite)")
	}
	return func(cfg *config) { cfg.center = c }
}

// WithDuty sets the high fraction of a Pulse cycle, d ∈ [0,1].
func WithDuty(d float64) Option {
	if !(d >= 0 && d <= 1) {
		panic("signal: WithDuty(d outside [0,1])")
	}
	return func(c *config) { c.duty = d }
}
