// SPDX-License-Identifier: MIT

package fourier

// Series bundles one decomposition: the coefficients of a curve and the term
// table reconstructed from them. It is produced by Decompose and never
// mutated afterwards.
type Series struct {
	// Period is the parameter length of one cycle.
	Period float64

	// Coefficients holds c_0..c_{N-1}.
	Coefficients []complex128

	// Table holds the per-term contributions on the steps-point grid.
	Table Table
}

// Decompose runs EstimateCoefficients followed by Reconstruct with the same
// period, term count, step count and options.
//
// Errors: any error of the two stages, prefixed with "Decompose".
// Complexity: O(totalTerms·steps).
func Decompose(f SamplingFunc, period float64, totalTerms, steps int, opts ...Option) (*Series, error) {
	coeffs, err := EstimateCoefficients(f, period, totalTerms, steps, opts...)
	if err != nil {
		return nil, fourierErrorf("Decompose", err)
	}
	table, err := Reconstruct(coeffs, period, totalTerms, steps, opts...)
	if err != nil {
		return nil, fourierErrorf("Decompose", err)
	}

	return &Series{Period: period, Coefficients: coeffs, Table: table}, nil
}

// Terms reports the number of coefficients.
func (s *Series) Terms() int { return len(s.Coefficients) }

// Steps reports the number of sample rows.
func (s *Series) Steps() int { return len(s.Table) }

// Chains returns the chain of every row.
func (s *Series) Chains() []Chain { return Chains(s.Table) }

// Frame returns the chain shown at animation frame i. Frames wrap around the
// period, so frame i uses row i mod steps; negative i counts back from the
// end. An empty series yields the single-origin chain.
func (s *Series) Frame(i int) Chain {
	steps := len(s.Table)
	if steps == 0 {
		return CumulativeChain(nil)
	}
	j := i % steps
	if j < 0 {
		j += steps
	}
	return CumulativeChain(s.Table[j])
}

// Point evaluates the truncated series at time t.
func (s *Series) Point(t float64) (complex128, error) {
	return Evaluate(s.Coefficients, s.Period, t)
}
