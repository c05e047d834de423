// SPDX-License-Identifier: MIT
// Package signal: sentinel errors.
//
// Callers branch with errors.Is. Constructors prefix the sentinel with their
// own name ("Circle: signal: period must be finite and > 0").

package signal

import (
	"errors"
	"fmt"
)

var (
	// ErrBadPeriod indicates a period that is not a finite value > 0.
	ErrBadPeriod = errors.New("signal: period must be finite and > 0")

	// ErrBadRadius indicates a negative or non-finite radius.
	ErrBadRadius = errors.New("signal: radius must be finite and ≥ 0")

	// ErrBadSteps indicates a sample count below one.
	ErrBadSteps = errors.New("signal: steps must be ≥ 1")

	// ErrNilFunc indicates a nil sampling function passed to a combinator.
	ErrNilFunc = errors.New("signal: sampling function is nil")
)

// signalErrorf prefixes err with the constructor name.
func signalErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
