// SPDX-License-Identifier: MIT
// Package fourier: sentinel error set.
//
// Every validation failure wraps ErrInvalidArgument, so callers may match the
// whole class with errors.Is(err, ErrInvalidArgument) or the precise cause with
// errors.Is(err, ErrBadSteps) and friends. All checks run before any sampling
// or allocation; no partial results are ever returned.

package fourier

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the class of every input-validation failure.
var ErrInvalidArgument = errors.New("fourier: invalid argument")

var (
	// ErrNilFunc indicates a nil SamplingFunc.
	ErrNilFunc = fmt.Errorf("%w: sampling function is nil", ErrInvalidArgument)

	// ErrBadPeriod indicates a period that is not a finite value > 0.
	ErrBadPeriod = fmt.Errorf("%w: period must be finite and > 0", ErrInvalidArgument)

	// ErrBadSteps indicates a sample count outside the accepted range
	// (steps ≥ 1 for estimation, steps ≥ 0 for reconstruction).
	ErrBadSteps = fmt.Errorf("%w: bad step count", ErrInvalidArgument)

	// ErrBadTerms indicates a negative term count.
	ErrBadTerms = fmt.Errorf("%w: term count must be ≥ 0", ErrInvalidArgument)

	// ErrLengthMismatch indicates len(coefficients) != totalTerms.
	ErrLengthMismatch = fmt.Errorf("%w: coefficient count does not match term count", ErrInvalidArgument)
)

// fourierErrorf prefixes err with the public method name, keeping %w so
// errors.Is still reaches the sentinel.
func fourierErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
