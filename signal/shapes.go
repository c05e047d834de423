// SPDX-License-Identifier: MIT
// Package signal: closed shapes.
//
// Every constructor validates its arguments up front and returns a pure
// closure. The closures capture a resolved config by value.

package signal

import (
	"math"

	"github.com/katalvlaran/epicycle/fourier"
)

// Circle returns t ↦ A·e^{i(2πf·t/P + φ)} + center.
// With default options its only Fourier coefficient is c_1 = 1.
func Circle(period float64, opts ...Option) (fourier.SamplingFunc, error) {
	if err := validatePeriod(period); err != nil {
		return nil, signalErrorf(MethodCircle, err)
	}
	c := newConfig(opts...)

	return func(t float64) complex128 {
		th := c.theta(period, t)
		return complex(c.amplitude*math.Cos(th), c.amplitude*math.Sin(th)) + c.center
	}, nil
}

// Line returns t ↦ A·cos(2πf·t/P + φ) + center.
// The oscillation is real-only, so it moves along the horizontal axis.
func Line(period float64, opts ...Option) (fourier.SamplingFunc, error) {
	if err := validatePeriod(period); err != nil {
		return nil, signalErrorf(MethodLine, err)
	}
	c := newConfig(opts...)

	return func(t float64) complex128 {
		return complex(c.amplitude*math.Cos(c.theta(period, t)), 0) + c.center
	}, nil
}

// Tone returns the pure tone t ↦ e^{i2πk·t/P}. Negative k turns clockwise.
func Tone(k int, period float64) (fourier.SamplingFunc, error) {
	if err := validatePeriod(period); err != nil {
		return nil, signalErrorf(MethodTone, err)
	}
	w := tau * float64(k) / period

	return func(t float64) complex128 {
		return complex(math.Cos(w*t), math.Sin(w*t))
	}, nil
}

// Ellipse returns t ↦ rx·cos θ + i·ry·sin θ + center with θ = 2πf·t/P + φ.
// WithAmplitude scales both radii.
func Ellipse(rx, ry, period float64, opts ...Option) (fourier.SamplingFunc, error) {
	if err := validatePeriod(period); err != nil {
		return nil, signalErrorf(MethodEllipse, err)
	}
	if err := validateRadius(rx); err != nil {
		return nil, signalErrorf(MethodEllipse, err)
	}
	if err := validateRadius(ry); err != nil {
		return nil, signalErrorf(MethodEllipse, err)
	}
	c := newConfig(opts...)
	ax, ay := c.amplitude*rx, c.amplitude*ry

	return func(t float64) complex128 {
		th := c.theta(period, t)
		return complex(ax*math.Cos(th), ay*math.Sin(th)) + c.center
	}, nil
}

// Square returns the boundary of the axis-aligned square with half-side A,
// walked counter-clockwise at constant speed starting from (A, 0).
// WithPhase shifts the start along the boundary by φ/2π of a lap.
func Square(period float64, opts ...Option) (fourier.SamplingFunc, error) {
	if err := validatePeriod(period); err != nil {
		return nil, signalErrorf(MethodSquare, err)
	}
	c := newConfig(opts...)

	return func(t float64) complex128 {
		return complex(c.amplitude, 0)*squarePoint(c.position(period, t)) + c.center
	}, nil
}

// squarePoint maps a lap fraction u ∈ [0,1) onto the unit square boundary.
// The walk is 8 half-sides long: up the right edge from its midpoint, then
// left, down, right and back up to the start.
func squarePoint(u float64) complex128 {
	s := u * squareSides * 2
	switch {
	case s < 1:
		return complex(1, s)
	case s < 3:
		return complex(2-s, 1)
	case s < 5:
		return complex(-1, 4-s)
	case s < 7:
		return complex(s-6, -1)
	default:
		return complex(1, s-8)
	}
}

// Pulse returns a real rectangular wave: A + center while the lap position is
// below the duty ratio, center otherwise.
func Pulse(period float64, opts ...Option) (fourier.SamplingFunc, error) {
	if err := validatePeriod(period); err != nil {
		return nil, signalErrorf(MethodPulse, err)
	}
	c := newConfig(opts...)

	return func(t float64) complex128 {
		if c.position(period, t) < c.duty {
			return complex(c.amplitude, 0) + c.center
		}
		return c.center
	}, nil
}
