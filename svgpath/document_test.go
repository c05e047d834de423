// SPDX-License-Identifier: MIT

package svgpath_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epicycle/svgpath"
)

const squareSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.9 50.2">
  <g transform="translate(1 1)"><path d="M0 0 H10"/></g>
  <circle r="3"/>
  <path id="rest" d="V10 H0 Z"/>
</svg>`

// TestParseDocument checks viewBox truncation and path concatenation.
func TestParseDocument(t *testing.T) {
	doc, err := svgpath.ParseDocument(strings.NewReader(squareSVG))
	require.NoError(t, err)
	assert.Equal(t, 100, doc.Width)
	assert.Equal(t, 50, doc.Height)
	assert.Equal(t, "M0 0 H10V10 H0 Z", doc.Data)
	assert.Equal(t, complex(100, 50), doc.Offset())

	path, err := doc.Path()
	require.NoError(t, err)
	assert.Len(t, path, 5)
}

// TestParseDocument_ViewBoxForms checks comma separators and no namespace.
func TestParseDocument_ViewBoxForms(t *testing.T) {
	doc, err := svgpath.ParseDocument(strings.NewReader(
		`<svg viewBox="0,0,30,40.99"><path d="M0 0 L1 1"/></svg>`))
	require.NoError(t, err)
	assert.Equal(t, 30, doc.Width)
	assert.Equal(t, 40, doc.Height)
}

// TestParseDocument_Errors covers the failure modes.
func TestParseDocument_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"empty input", "", svgpath.ErrNoViewBox},
		{"no viewBox", `<svg xmlns="http://www.w3.org/2000/svg"><path d="M0 0 L1 1"/></svg>`, svgpath.ErrNoViewBox},
		{"short viewBox", `<svg viewBox="0 0 10"><path d="M0 0 L1 1"/></svg>`, svgpath.ErrNoViewBox},
		{"bad viewBox", `<svg viewBox="0 0 ten 10"><path d="M0 0 L1 1"/></svg>`, svgpath.ErrNoViewBox},
		{"no path", `<svg viewBox="0 0 10 10"><rect width="3"/></svg>`, svgpath.ErrNoPath},
		{"blank path", `<svg viewBox="0 0 10 10"><path d="  "/></svg>`, svgpath.ErrNoPath},
		{"foreign path", `<svg xmlns:x="urn:x" viewBox="0 0 10 10"><x:path d="M0 0 L1 1"/></svg>`, svgpath.ErrNoPath},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := svgpath.ParseDocument(strings.NewReader(tc.src))
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, doc)
		})
	}

	_, err := svgpath.ParseDocument(strings.NewReader(`<svg viewBox="0 0 1 1"><path`))
	assert.Error(t, err)
}

// TestDocument_Func checks the viewBox offset and the period mapping.
func TestDocument_Func(t *testing.T) {
	doc, err := svgpath.ParseDocument(strings.NewReader(squareSVG))
	require.NoError(t, err)

	f, err := doc.Func(2 * math.Pi)
	require.NoError(t, err)
	requireNear(t, complex(100, 50), f(0), 1e-12)
	// Perimeter 40: a quarter period is the first corner.
	requireNear(t, complex(110, 50), f(math.Pi/2), 1e-12)

	// An explicit offset wins.
	f, err = doc.Func(2*math.Pi, svgpath.WithOffset(0))
	require.NoError(t, err)
	requireNear(t, complex(10, 10), f(math.Pi), 1e-12)

	bad := &svgpath.Document{Width: 1, Height: 1, Data: "L0 0"}
	_, err = bad.Func(1)
	assert.ErrorIs(t, err, svgpath.ErrSyntax)
}
