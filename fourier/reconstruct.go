// SPDX-License-Identifier: MIT

package fourier

// Reconstruct evaluates every term of the truncated series at every sample
// time of one period.
//
//	Table[j][n] = c_n · e^{+i·2π·n·t_j/period},  t_j = j·period/steps
//
// The sign is positive (estimation uses −n); the pair is only consistent in
// this orientation.
//
// Algorithm:
//  1. Validate (length → period → terms → steps).
//  2. For each row j independently (sequentially, or across workers),
//     allocate the row and fill its totalTerms columns.
//
// Complexity:
//
//	Time   = O(steps·totalTerms)
//	Memory = O(steps·totalTerms)
//
// Errors (all wrap ErrInvalidArgument):
//   - ErrLengthMismatch — len(coefficients) != totalTerms.
//   - ErrBadPeriod      — period is NaN, ±Inf or ≤ 0.
//   - ErrBadTerms       — totalTerms < 0.
//   - ErrBadSteps       — steps < 0.
//
// steps = 0 is not an error (nothing is divided): the table is empty.
// totalTerms = 0 yields steps empty rows.
func Reconstruct(coefficients []complex128, period float64, totalTerms, steps int, opts ...Option) (Table, error) {
	const method = "Reconstruct"
	if len(coefficients) != totalTerms {
		return nil, fourierErrorf(method, ErrLengthMismatch)
	}
	if err := validatePeriod(period); err != nil {
		return nil, fourierErrorf(method, err)
	}
	if err := validateTerms(totalTerms); err != nil {
		return nil, fourierErrorf(method, err)
	}
	if err := validateSteps(steps, 0); err != nil {
		return nil, fourierErrorf(method, err)
	}
	o := gatherOptions(opts...)

	times := SampleTimes(period, steps)
	table := make(Table, steps)
	err := mapIndex(o.ctx, steps, o.workers, func(j int) {
		t := times[j]
		row := make([]complex128, totalTerms)
		for n, c := range coefficients {
			row[n] = c * unitPhasor(angle(n, period, t))
		}
		table[j] = row
	})
	if err != nil {
		return nil, fourierErrorf(method, err)
	}

	return table, nil
}

// Evaluate returns the partial Fourier sum Σ_n c_n·e^{+i·2π·n·t/period} at an
// arbitrary time t. At t = t_j it equals the left-to-right sum of row j of
// Reconstruct. Empty coefficients evaluate to 0.
//
// Errors: ErrBadPeriod (wraps ErrInvalidArgument).
// Complexity: O(len(coefficients)).
func Evaluate(coefficients []complex128, period, t float64) (complex128, error) {
	if err := validatePeriod(period); err != nil {
		return 0, fourierErrorf("Evaluate", err)
	}

	var sum complex128
	for n, c := range coefficients {
		sum += c * unitPhasor(angle(n, period, t))
	}

	return sum, nil
}
