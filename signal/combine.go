// SPDX-License-Identifier: MIT
// Package signal: combinators and grid sampling.

package signal

import (
	"github.com/katalvlaran/epicycle/fourier"
)

// Sum returns t ↦ Σ fs[i](t). With no inputs it is the zero function.
func Sum(fs ...fourier.SamplingFunc) (fourier.SamplingFunc, error) {
	for _, f := range fs {
		if f == nil {
			return nil, signalErrorf(MethodSum, ErrNilFunc)
		}
	}
	parts := append([]fourier.SamplingFunc(nil), fs...)

	return func(t float64) complex128 {
		var z complex128
		for _, f := range parts {
			z += f(t)
		}
		return z
	}, nil
}

// Scale returns t ↦ s·f(t). A complex s also rotates the curve.
func Scale(f fourier.SamplingFunc, s complex128) (fourier.SamplingFunc, error) {
	if f == nil {
		return nil, signalErrorf(MethodScale, ErrNilFunc)
	}
	return func(t float64) complex128 { return s * f(t) }, nil
}

// Translate returns t ↦ f(t) + d.
func Translate(f fourier.SamplingFunc, d complex128) (fourier.SamplingFunc, error) {
	if f == nil {
		return nil, signalErrorf(MethodTranslate, ErrNilFunc)
	}
	return func(t float64) complex128 { return f(t) + d }, nil
}

// Sample evaluates f on the grid t_k = k·period/steps, k = 0..steps-1, the
// same grid the fourier estimators use.
func Sample(f fourier.SamplingFunc, period float64, steps int) ([]complex128, error) {
	if f == nil {
		return nil, signalErrorf(MethodSample, ErrNilFunc)
	}
	if err := validatePeriod(period); err != nil {
		return nil, signalErrorf(MethodSample, err)
	}
	if steps < 1 {
		return nil, signalErrorf(MethodSample, ErrBadSteps)
	}

	times := fourier.SampleTimes(period, steps)
	out := make([]complex128, steps)
	for k, t := range times {
		out[k] = f(t)
	}
	return out, nil
}
