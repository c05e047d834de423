// SPDX-License-Identifier: MIT
// Package fourier_test contains shared fixtures and tolerance helpers.

package fourier_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/epicycle/fourier"
)

// twoPi is one full turn.
const twoPi = 2 * math.Pi

// tone returns the pure tone e^{i2πkt/period}.
func tone(k int, period float64) fourier.SamplingFunc {
	return func(t float64) complex128 {
		th := twoPi * float64(k) / period * t
		return complex(math.Cos(th), math.Sin(th))
	}
}

// ellipse is a smooth closed curve carrying both positive and negative
// frequencies: a·cos t + i·b·sin t, period 2π.
func ellipse(a, b float64) fourier.SamplingFunc {
	return func(t float64) complex128 {
		return complex(a*math.Cos(t), b*math.Sin(t))
	}
}

// geometric is 1/(1 − r·e^{it}) = Σ_{m≥0} r^m e^{imt}: smooth, periodic in 2π,
// positive frequencies only, with coefficients decaying like r^m.
func geometric(r float64) fourier.SamplingFunc {
	return func(t float64) complex128 {
		return 1 / (1 - complex(r, 0)*complex(math.Cos(t), math.Sin(t)))
	}
}

// counting wraps f and counts its invocations.
func counting(f fourier.SamplingFunc, calls *int) fourier.SamplingFunc {
	return func(t float64) complex128 {
		*calls++
		return f(t)
	}
}

// requireNear fails unless |want − got| ≤ tol.
func requireNear(t *testing.T, want, got complex128, tol float64, msgAndArgs ...interface{}) {
	t.Helper()
	require.True(t, scalar.EqualWithinAbs(0, cmplx.Abs(want-got), tol), msgAndArgs...)
}

// maxAbsDiff returns max_i |a[i] − b[i]|; lengths must match.
func maxAbsDiff(t *testing.T, a, b []complex128) float64 {
	t.Helper()
	require.Len(t, b, len(a))
	var worst float64
	for i := range a {
		worst = math.Max(worst, cmplx.Abs(a[i]-b[i]))
	}
	return worst
}

// rowSum adds a table row left to right.
func rowSum(row []complex128) complex128 {
	var s complex128
	for _, z := range row {
		s += z
	}
	return s
}
