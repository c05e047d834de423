// SPDX-License-Identifier: MIT

package signal_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

const twoPi = 2 * math.Pi

// requireNear asserts |want - got| ≤ tol.
func requireNear(t *testing.T, want, got complex128, tol float64, msgAndArgs ...interface{}) {
	t.Helper()
	require.True(t, scalar.EqualWithinAbs(cmplx.Abs(want-got), 0, tol),
		append([]interface{}{"want %v, got %v (tol %g)", want, got, tol}, msgAndArgs...)...)
}
