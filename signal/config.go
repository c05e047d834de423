// SPDX-License-Identifier: MIT

package signal

import "math"

// config aggregates every shape knob. It is passed by value into the
// returned closures, so later changes never leak into built functions.
type config struct {
	amplitude float64    // > 0
	frequency float64    // laps per period, > 0
	phase     float64    // radians
	center    complex128 // translation
	duty      float64    // Pulse high fraction in [0,1]
}

// newConfig resolves defaults and applies opts in order; nil options are skipped.
func newConfig(opts ...Option) config {
	c := config{
		amplitude: DefaultAmplitude,
		frequency: DefaultFrequency,
		phase:     DefaultPhase,
		duty:      DefaultDuty,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// theta is the shape angle at time t: 2πf·t/P + φ.
func (c config) theta(period, t float64) float64 {
	return tau*c.frequency/period*t + c.phase
}

// position is the fraction of the current lap reached at time t, in [0,1).
func (c config) position(period, t float64) float64 {
	u := c.frequency*t/period + c.phase/tau
	return u - math.Floor(u)
}
