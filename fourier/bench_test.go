// SPDX-License-Identifier: MIT

package fourier_test

import (
	"testing"

	"github.com/katalvlaran/epicycle/fourier"
)

// benchmarkEstimate runs the direct estimator on an ellipse with the given
// term/step counts and options.
func benchmarkEstimate(b *testing.B, terms, steps int, opts ...fourier.Option) {
	f := ellipse(2, 1)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := fourier.EstimateCoefficients(f, twoPi, terms, steps, opts...); err != nil {
			b.Fatalf("EstimateCoefficients failed: %v", err)
		}
	}
}

// benchmarkReconstruct rebuilds the term table from fixed coefficients.
func benchmarkReconstruct(b *testing.B, terms, steps int, opts ...fourier.Option) {
	coeffs := make([]complex128, terms)
	for n := range coeffs {
		coeffs[n] = complex(1/float64(n+1), 0)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fourier.Reconstruct(coeffs, twoPi, terms, steps, opts...); err != nil {
			b.Fatalf("Reconstruct failed: %v", err)
		}
	}
}

// BenchmarkEstimate_Small benchmarks 100 terms × 100 steps sequentially.
func BenchmarkEstimate_Small(b *testing.B) { benchmarkEstimate(b, 100, 100) }

// BenchmarkEstimate_Default benchmarks the CLI defaults sequentially.
func BenchmarkEstimate_Default(b *testing.B) {
	benchmarkEstimate(b, fourier.DefaultTerms, fourier.DefaultSteps)
}

// BenchmarkEstimate_DefaultWorkers benchmarks the CLI defaults on 8 workers.
func BenchmarkEstimate_DefaultWorkers(b *testing.B) {
	benchmarkEstimate(b, fourier.DefaultTerms, fourier.DefaultSteps, fourier.WithWorkers(8))
}

// BenchmarkEstimateFFT_Default benchmarks the FFT path at the CLI defaults.
func BenchmarkEstimateFFT_Default(b *testing.B) {
	f := ellipse(2, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fourier.EstimateCoefficientsFFT(f, twoPi, fourier.DefaultTerms, fourier.DefaultSteps); err != nil {
			b.Fatalf("EstimateCoefficientsFFT failed: %v", err)
		}
	}
}

// BenchmarkReconstruct_Default benchmarks the table at the CLI defaults.
func BenchmarkReconstruct_Default(b *testing.B) {
	benchmarkReconstruct(b, fourier.DefaultTerms, fourier.DefaultSteps)
}

// BenchmarkReconstruct_DefaultWorkers benchmarks the table on 8 workers.
func BenchmarkReconstruct_DefaultWorkers(b *testing.B) {
	benchmarkReconstruct(b, fourier.DefaultTerms, fourier.DefaultSteps, fourier.WithWorkers(8))
}
