// SPDX-License-Identifier: MIT

package svgpath_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"honnef.co/go/curve"

	"github.com/katalvlaran/epicycle/svgpath"
)

// requireNear asserts |want - got| ≤ tol.
func requireNear(t *testing.T, want, got complex128, tol float64, msgAndArgs ...interface{}) {
	t.Helper()
	require.True(t, scalar.EqualWithinAbs(cmplx.Abs(want-got), 0, tol),
		append([]interface{}{"want %v, got %v (tol %g)", want, got, tol}, msgAndArgs...)...)
}

// mustPath parses d or fails the test.
func mustPath(t *testing.T, d string) curve.BezPath {
	t.Helper()
	p, err := svgpath.ParsePathData(d)
	require.NoError(t, err)
	return p
}
