// SPDX-License-Identifier: MIT

package signal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epicycle/fourier"
	"github.com/katalvlaran/epicycle/signal"
)

// TestSum_Linearity checks coefficients of a sum are sums of coefficients.
func TestSum_Linearity(t *testing.T) {
	a, err := signal.Circle(twoPi, signal.WithAmplitude(2))
	require.NoError(t, err)
	b, err := signal.Tone(3, twoPi)
	require.NoError(t, err)
	c, err := signal.Scale(b, complex(0, -0.5))
	require.NoError(t, err)

	sum, err := signal.Sum(a, c)
	require.NoError(t, err)
	shifted, err := signal.Translate(sum, complex(1, 1))
	require.NoError(t, err)

	coeffs, err := fourier.EstimateCoefficients(shifted, twoPi, 4, 48)
	require.NoError(t, err)
	requireNear(t, complex(1, 1), coeffs[0], 1e-12)
	requireNear(t, 2, coeffs[1], 1e-12)
	requireNear(t, 0, coeffs[2], 1e-12)
	requireNear(t, complex(0, -0.5), coeffs[3], 1e-12)
}

// TestSum_Empty checks the zero function.
func TestSum_Empty(t *testing.T) {
	f, err := signal.Sum()
	require.NoError(t, err)
	assert.Equal(t, complex128(0), f(3))
}

// TestCombinators_RejectNil checks nil inputs.
func TestCombinators_RejectNil(t *testing.T) {
	ok, err := signal.Tone(1, twoPi)
	require.NoError(t, err)

	_, err = signal.Sum(ok, nil)
	assert.ErrorIs(t, err, signal.ErrNilFunc)
	_, err = signal.Scale(nil, 2)
	assert.ErrorIs(t, err, signal.ErrNilFunc)
	_, err = signal.Translate(nil, 2)
	assert.ErrorIs(t, err, signal.ErrNilFunc)
	_, err = signal.Sample(nil, twoPi, 4)
	assert.ErrorIs(t, err, signal.ErrNilFunc)
}

// TestSample_Grid checks the shared grid and validation.
func TestSample_Grid(t *testing.T) {
	var calls []float64
	f := func(tt float64) complex128 {
		calls = append(calls, tt)
		return complex(tt, 0)
	}
	pts, err := signal.Sample(f, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, []complex128{0, 0.5, 1, 1.5}, pts)
	assert.Equal(t, fourier.SampleTimes(2, 4), calls)

	_, err = signal.Sample(f, 2, 0)
	assert.ErrorIs(t, err, signal.ErrBadSteps)
	_, err = signal.Sample(f, 0, 3)
	assert.ErrorIs(t, err, signal.ErrBadPeriod)
}
