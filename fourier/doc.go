// SPDX-License-Identifier: MIT

// Package fourier estimates the Fourier coefficients of a closed 2-D curve and
// reconstructs it as a chain of rotating complex exponentials (epicycles).
//
// 🚀 What is an epicycle drawing?
//
//	A closed curve z(t) = x(t) + i·y(t) with period P can be written as a sum
//	of rotating arrows c_n·e^{i2πnt/P}. Chaining the arrows tip-to-tail and
//	letting t run over one period, the tip of the last arrow traces z(t).
//
// ✨ What this package does:
//   - EstimateCoefficients — one-sided coefficients c_0..c_{N-1} by a
//     left-endpoint Riemann sum over `steps` uniform samples.
//   - EstimateCoefficientsFFT — the same numbers through an FFT (gonum).
//   - Reconstruct — the (steps × N) table of per-term contributions.
//   - CumulativeChain / Chains — the epicycle joints of every table row.
//   - Decompose — all of the above in one call, returned as a *Series.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/epicycle/fourier"
//
//	circle := func(t float64) complex128 { return complex(math.Cos(t), math.Sin(t)) }
//	s, err := fourier.Decompose(circle, 2*math.Pi, 8, 360, fourier.WithWorkers(4))
//	if err != nil {
//	  // errors.Is(err, fourier.ErrInvalidArgument)
//	}
//	chain := s.Frame(42) // joints of the epicycle drawing at frame 42
//
// Conventions:
//   - Estimation multiplies by e^{-i2πnt/P}, reconstruction by e^{+i2πnt/P}.
//   - Only non-negative frequency indices are estimated. For a real-valued
//     signal the non-DC harmonics therefore carry half of their amplitude:
//     cos(t) yields c_1 = 0.5.
//   - e^{iθ} is always evaluated as cos θ + i·sin θ.
//
// Performance:
//
//   - Time:   O(N·steps) for estimation and for reconstruction,
//     O(steps·log steps + N) for the FFT path.
//   - Memory: O(steps) samples + O(N) coefficients + O(N·steps) table.
//
// All functions are pure. With WithWorkers(n) the outer index (frequency for
// estimation, sample row for reconstruction) is spread over n goroutines; the
// output is identical to the sequential result.
package fourier
