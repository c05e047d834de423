// SPDX-License-Identifier: MIT

package render_test

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epicycle/fourier"
)

const twoPi = 2 * math.Pi

// circleSeries decomposes the unit circle into terms × steps.
func circleSeries(t testing.TB, terms, steps int) *fourier.Series {
	t.Helper()
	circle := func(tt float64) complex128 { return complex(math.Cos(tt), math.Sin(tt)) }
	s, err := fourier.Decompose(circle, twoPi, terms, steps)
	require.NoError(t, err)
	return s
}

// isBackground reports whether c is (close to) white.
func isBackground(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r > 0xf000 && g > 0xf000 && b > 0xf000
}
