// SPDX-License-Identifier: MIT
// Package fourier: argument validators.
//
// Each validator returns a plain sentinel (no method prefix) so public entry
// points can wrap it uniformly with fourierErrorf.

package fourier

import "math"

// validatePeriod ensures period is finite and strictly positive.
func validatePeriod(period float64) error {
	if math.IsNaN(period) || math.IsInf(period, 0) || period <= 0 {
		return ErrBadPeriod
	}
	return nil
}

// validateTerms ensures totalTerms ≥ 0.
func validateTerms(totalTerms int) error {
	if totalTerms < 0 {
		return ErrBadTerms
	}
	return nil
}

// validateSteps ensures steps ≥ min. Estimation divides by steps and needs
// min = 1; reconstruction accepts an empty grid and passes min = 0.
func validateSteps(steps, min int) error {
	if steps < min {
		return ErrBadSteps
	}
	return nil
}
