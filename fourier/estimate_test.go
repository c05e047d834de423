// SPDX-License-Identifier: MIT

package fourier_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/epicycle/fourier"
)

// EstimateSuite exercises EstimateCoefficients and its FFT twin.
type EstimateSuite struct {
	suite.Suite
}

// TestPureToneRoundTrip checks c_k ≈ 1 and c_n ≈ 0 (n ≠ k) for e^{i2πkt/P}.
func (s *EstimateSuite) TestPureToneRoundTrip() {
	const (
		steps = 1000
		terms = 12
		tol   = 1e-9
	)
	for _, period := range []float64{twoPi, 1, 3.7} {
		for _, k := range []int{0, 1, 3, 7, 11} {
			coeffs, err := fourier.EstimateCoefficients(tone(k, period), period, terms, steps)
			require.NoError(s.T(), err)
			require.Len(s.T(), coeffs, terms)
			for n, c := range coeffs {
				want := complex(0, 0)
				if n == k {
					want = 1
				}
				requireNear(s.T(), want, c, tol, "period=%g k=%d n=%d got %v", period, k, n, c)
			}
		}
	}
}

// TestLinearity checks coeffs(f1+f2) = coeffs(f1) + coeffs(f2).
func (s *EstimateSuite) TestLinearity() {
	const (
		period = twoPi
		terms  = 16
		steps  = 500
	)
	f1 := ellipse(2, 1)
	f2 := func(t float64) complex128 {
		return 0.3*complex(math.Cos(-2*t), math.Sin(-2*t)) + complex(0.1, -0.4) + complex(t/period, 0)
	}
	sum := func(t float64) complex128 { return f1(t) + f2(t) }

	c1, err := fourier.EstimateCoefficients(f1, period, terms, steps)
	require.NoError(s.T(), err)
	c2, err := fourier.EstimateCoefficients(f2, period, terms, steps)
	require.NoError(s.T(), err)
	cs, err := fourier.EstimateCoefficients(sum, period, terms, steps)
	require.NoError(s.T(), err)

	for n := range cs {
		requireNear(s.T(), c1[n]+c2[n], cs[n], 1e-12, "n=%d", n)
	}
}

// TestDCIsExactMean checks c_0 equals the mean of the grid samples exactly.
func (s *EstimateSuite) TestDCIsExactMean() {
	const (
		period = 5.5
		steps  = 777
	)
	f := func(t float64) complex128 {
		return complex(t*t-3, math.Sin(3*t)+0.25)
	}

	coeffs, err := fourier.EstimateCoefficients(f, period, 1, steps)
	require.NoError(s.T(), err)

	var sum complex128
	for _, t := range fourier.SampleTimes(period, steps) {
		sum += f(t)
	}
	want := complex(real(sum)/steps, imag(sum)/steps)
	assert.Equal(s.T(), want, coeffs[0], "c_0 must be the plain sample mean")
}

// TestCosineHalfAmplitude checks the one-sided estimate of cos t.
func (s *EstimateSuite) TestCosineHalfAmplitude() {
	f := func(t float64) complex128 { return complex(math.Cos(t), 0) }

	coeffs, err := fourier.EstimateCoefficients(f, twoPi, 3, 360)
	require.NoError(s.T(), err)
	require.Len(s.T(), coeffs, 3)
	requireNear(s.T(), 0, coeffs[0], 1e-12, "c_0")
	requireNear(s.T(), 0.5, coeffs[1], 1e-12, "c_1 carries half the amplitude")
	requireNear(s.T(), 0, coeffs[2], 1e-12, "c_2")
}

// TestZeroStepsRejected checks the division-by-zero guard.
func (s *EstimateSuite) TestZeroStepsRejected() {
	calls := 0
	f := counting(ellipse(1, 1), &calls)

	coeffs, err := fourier.EstimateCoefficients(f, 6.28, 10, 0)
	require.ErrorIs(s.T(), err, fourier.ErrInvalidArgument)
	require.ErrorIs(s.T(), err, fourier.ErrBadSteps)
	assert.Nil(s.T(), coeffs, "no partial result")
	assert.Zero(s.T(), calls, "f must not be sampled before validation")
}

// TestValidation covers every guard of the estimator.
func (s *EstimateSuite) TestValidation() {
	f := ellipse(1, 1)
	cases := []struct {
		name   string
		f      fourier.SamplingFunc
		period float64
		terms  int
		steps  int
		want   error
	}{
		{"nil func", nil, twoPi, 4, 10, fourier.ErrNilFunc},
		{"zero period", f, 0, 4, 10, fourier.ErrBadPeriod},
		{"negative period", f, -1, 4, 10, fourier.ErrBadPeriod},
		{"NaN period", f, math.NaN(), 4, 10, fourier.ErrBadPeriod},
		{"Inf period", f, math.Inf(1), 4, 10, fourier.ErrBadPeriod},
		{"negative terms", f, twoPi, -1, 10, fourier.ErrBadTerms},
		{"negative steps", f, twoPi, 4, -3, fourier.ErrBadSteps},
	}
	for _, tc := range cases {
		for _, estimate := range []func(fourier.SamplingFunc, float64, int, int, ...fourier.Option) ([]complex128, error){
			fourier.EstimateCoefficients,
			fourier.EstimateCoefficientsFFT,
		} {
			_, err := estimate(tc.f, tc.period, tc.terms, tc.steps)
			require.ErrorIs(s.T(), err, tc.want, tc.name)
			require.ErrorIs(s.T(), err, fourier.ErrInvalidArgument, tc.name)
		}
	}
}

// TestZeroTermsIsEmpty checks totalTerms = 0 yields an empty, non-nil slice.
func (s *EstimateSuite) TestZeroTermsIsEmpty() {
	coeffs, err := fourier.EstimateCoefficients(ellipse(1, 1), twoPi, 0, 10)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), coeffs)
	assert.Empty(s.T(), coeffs)
}

// TestShape checks len(output) == totalTerms for a spread of inputs.
func (s *EstimateSuite) TestShape() {
	for _, terms := range []int{1, 2, 17, 64} {
		for _, steps := range []int{1, 3, 64, 100} {
			coeffs, err := fourier.EstimateCoefficients(ellipse(1, 2), twoPi, terms, steps)
			require.NoError(s.T(), err)
			assert.Len(s.T(), coeffs, terms, "terms=%d steps=%d", terms, steps)
		}
	}
}

// TestSamplesAreShared checks f is evaluated once per grid point, not per term.
func (s *EstimateSuite) TestSamplesAreShared() {
	calls := 0
	_, err := fourier.EstimateCoefficients(counting(ellipse(1, 1), &calls), twoPi, 25, 40)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 40, calls)
}

// TestAliasing checks c_{n+steps} ≈ c_n on a coarse grid.
func (s *EstimateSuite) TestAliasing() {
	const steps = 16
	coeffs, err := fourier.EstimateCoefficients(ellipse(3, 1), twoPi, 3*steps, steps)
	require.NoError(s.T(), err)
	for n := 0; n < 2*steps; n++ {
		requireNear(s.T(), coeffs[n], coeffs[n+steps], 1e-9, "n=%d", n)
	}
}

// TestFFTMatchesRiemannSum cross-checks the gonum FFT path.
func (s *EstimateSuite) TestFFTMatchesRiemannSum() {
	f := func(t float64) complex128 {
		return ellipse(2, 1)(t) + 0.2*complex(math.Cos(5*t), math.Sin(5*t)) + complex(0.5, 0.5)
	}
	for _, steps := range []int{2, 7, 360, 1000} {
		direct, err := fourier.EstimateCoefficients(f, twoPi, 40, steps)
		require.NoError(s.T(), err)
		fast, err := fourier.EstimateCoefficientsFFT(f, twoPi, 40, steps)
		require.NoError(s.T(), err)
		assert.Less(s.T(), maxAbsDiff(s.T(), direct, fast), 1e-10, "steps=%d", steps)
	}
}

// TestWorkersMatchSequential checks the parallel path is bit-identical.
func (s *EstimateSuite) TestWorkersMatchSequential() {
	seq, err := fourier.EstimateCoefficients(geometric(0.6), twoPi, 64, 256)
	require.NoError(s.T(), err)
	for _, w := range []int{2, 3, 8} {
		par, err := fourier.EstimateCoefficients(geometric(0.6), twoPi, 64, 256, fourier.WithWorkers(w))
		require.NoError(s.T(), err)
		assert.Equal(s.T(), seq, par, "workers=%d", w)
	}
}

// TestCancelledContext checks a done context aborts without a result.
func (s *EstimateSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, w := range []int{1, 4} {
		coeffs, err := fourier.EstimateCoefficients(ellipse(1, 1), twoPi, 32, 64,
			fourier.WithContext(ctx), fourier.WithWorkers(w))
		require.ErrorIs(s.T(), err, context.Canceled, "workers=%d", w)
		assert.Nil(s.T(), coeffs)
	}
}

func TestEstimateSuite(t *testing.T) {
	suite.Run(t, new(EstimateSuite))
}
