// SPDX-License-Identifier: MIT

package fourier

import (
	dspfourier "gonum.org/v1/gonum/dsp/fourier"
)

// EstimateCoefficients approximates the one-sided Fourier coefficients of f.
//
// For every frequency index n = 0..totalTerms-1:
//
//	c_n = (1/steps) · Σ_{k=0}^{steps-1} f(t_k) · e^{-i·2π·n·t_k/period},  t_k = k·period/steps
//
// i.e. a left-endpoint Riemann sum of (1/period)∫₀^period f(t)e^{-i2πnt/period}dt.
//
// Algorithm:
//  1. Validate f, period, totalTerms, steps (fail fast, nothing sampled).
//  2. Sample f once per grid point (f is pure, so the samples are shared by
//     every n).
//  3. For each n independently (sequentially, or across workers), accumulate
//     the plain complex sum and divide by steps.
//
// Complexity:
//
//	Time   = O(steps) evaluations of f + O(totalTerms·steps) multiply-adds
//	Memory = O(steps + totalTerms)
//
// Errors (all wrap ErrInvalidArgument):
//   - ErrNilFunc        — f is nil.
//   - ErrBadPeriod      — period is NaN, ±Inf or ≤ 0.
//   - ErrBadTerms       — totalTerms < 0.
//   - ErrBadSteps       — steps < 1.
//
// With WithContext, a done context returns ctx.Err() and no coefficients.
// totalTerms = 0 yields an empty, non-nil slice.
func EstimateCoefficients(f SamplingFunc, period float64, totalTerms, steps int, opts ...Option) ([]complex128, error) {
	const method = "EstimateCoefficients"
	if err := validateEstimate(f, period, totalTerms, steps); err != nil {
		return nil, fourierErrorf(method, err)
	}
	o := gatherOptions(opts...)

	samples, err := sampleGrid(o, f, period, steps)
	if err != nil {
		return nil, fourierErrorf(method, err)
	}
	times := SampleTimes(period, steps)
	s := float64(steps)

	coeffs := make([]complex128, totalTerms)
	err = mapIndex(o.ctx, totalTerms, o.workers, func(n int) {
		var total complex128
		for k, t := range times {
			total += samples[k] * unitPhasor(angle(-n, period, t))
		}
		coeffs[n] = divReal(total, s)
	})
	if err != nil {
		return nil, fourierErrorf(method, err)
	}

	return coeffs, nil
}

// EstimateCoefficientsFFT computes the same coefficients as
// EstimateCoefficients through a mixed-radix FFT of the sampled grid.
//
// On the uniform grid e^{-i2πn·t_k/period} = e^{-i2πnk/steps}, so
// c_n = FFT(samples)[n mod steps] / steps. Indices ≥ steps alias back onto
// the spectrum exactly as the Riemann sum does. Results agree with
// EstimateCoefficients to rounding (≈1e-12 for unit-scale curves), not bit
// for bit.
//
// Complexity: O(steps·log steps + totalTerms) time, O(steps + totalTerms) memory.
//
// Errors: as EstimateCoefficients.
func EstimateCoefficientsFFT(f SamplingFunc, period float64, totalTerms, steps int, opts ...Option) ([]complex128, error) {
	const method = "EstimateCoefficientsFFT"
	if err := validateEstimate(f, period, totalTerms, steps); err != nil {
		return nil, fourierErrorf(method, err)
	}
	o := gatherOptions(opts...)

	samples, err := sampleGrid(o, f, period, steps)
	if err != nil {
		return nil, fourierErrorf(method, err)
	}

	spectrum := dspfourier.NewCmplxFFT(steps).Coefficients(nil, samples)
	s := float64(steps)

	coeffs := make([]complex128, totalTerms)
	for n := range coeffs {
		coeffs[n] = divReal(spectrum[n%steps], s)
	}

	return coeffs, nil
}

// validateEstimate runs the estimator guards in a fixed order:
// nil func → period → terms → steps.
func validateEstimate(f SamplingFunc, period float64, totalTerms, steps int) error {
	if f == nil {
		return ErrNilFunc
	}
	if err := validatePeriod(period); err != nil {
		return err
	}
	if err := validateTerms(totalTerms); err != nil {
		return err
	}
	return validateSteps(steps, 1)
}

// sampleGrid evaluates f at every t_k. f is called from a single goroutine
// in ascending k, so implementations need not be safe for concurrent use.
func sampleGrid(o options, f SamplingFunc, period float64, steps int) ([]complex128, error) {
	times := SampleTimes(period, steps)
	samples := make([]complex128, len(times))
	for k, t := range times {
		samples[k] = f(t)
	}
	if err := o.ctx.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}
