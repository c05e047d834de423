// SPDX-License-Identifier: MIT

package fourier

import "math"

// unitPhasor returns e^{iθ} as cos θ + i·sin θ.
func unitPhasor(theta float64) complex128 {
	return complex(math.Cos(theta), math.Sin(theta))
}

// angle returns 2π·n·t/period, evaluated in that order so every caller lands
// on the same float64 for the same (n, t).
func angle(n int, period, t float64) float64 {
	return tau * float64(n) / period * t
}

// divReal divides z by a positive real s component-wise. Complex division by
// complex(s, 0) may round differently; averaging must not.
func divReal(z complex128, s float64) complex128 {
	return complex(real(z)/s, imag(z)/s)
}

// SampleTimes returns the uniform grid t_k = k·period/steps, k = 0..steps-1.
// Both the estimator and the reconstructor use exactly these values.
// Returns an empty slice for steps ≤ 0.
func SampleTimes(period float64, steps int) []float64 {
	if steps <= 0 {
		return []float64{}
	}
	resolution := period / float64(steps)
	ts := make([]float64, steps)
	for k := range ts {
		ts[k] = float64(k) * resolution
	}
	return ts
}
