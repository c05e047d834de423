// SPDX-License-Identifier: MIT

package fourier

import "math"

// Defaults suggested for callers that have no better information. They match
// the command-line defaults of cmd/epicycles.
const (
	// DefaultTerms is the default number of one-sided frequency indices.
	DefaultTerms = 1000

	// DefaultSteps is the default number of samples per period.
	DefaultSteps = 1000

	// DefaultCycles is the default number of periods an animation plays.
	// The core never reads it; render does.
	DefaultCycles = 1

	// DefaultPeriod is the parameter length of one cycle used by the
	// command-line tool.
	DefaultPeriod = tau
)

// tau is one full turn, 2π.
const tau = 2.0 * math.Pi

// SamplingFunc maps a real parameter t ∈ [0, period) to a point of the curve:
// real part = x, imaginary part = y. It must be pure and defined at every
// sample time; periodicity f(t) ≈ f(t+period) is assumed, not enforced.
type SamplingFunc func(t float64) complex128

// Table holds per-term contributions: Table[j][n] is the value of term n at
// sample time t_j = j·period/steps. Rows ascend in time, columns in frequency
// index (DC first).
type Table [][]complex128

// Rows reports the number of sample rows.
func (tb Table) Rows() int { return len(tb) }

// Terms reports the number of columns (0 for an empty table).
func (tb Table) Terms() int {
	if len(tb) == 0 {
		return 0
	}
	return len(tb[0])
}

// Chain is the vertex sequence of one epicycle drawing. X[0], Y[0] is the
// origin; X[k], Y[k] is the sum of the first k terms. The last vertex is the
// reconstructed curve point; the others are joints between arms.
type Chain struct {
	X []float64
	Y []float64
}

// Len reports the number of vertices (terms + 1).
func (c Chain) Len() int { return len(c.X) }

// Tip returns the last vertex as a complex number.
func (c Chain) Tip() complex128 {
	if len(c.X) == 0 {
		return 0
	}
	last := len(c.X) - 1
	return complex(c.X[last], c.Y[last])
}
