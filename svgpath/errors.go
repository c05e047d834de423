// SPDX-License-Identifier: MIT
// Package svgpath: sentinel errors.
//
// Syntax errors carry the byte offset into the path data; match them with
// errors.Is(err, ErrSyntax).

package svgpath

import (
	"errors"
	"fmt"
)

var (
	// ErrNoViewBox indicates the root element lacks a usable viewBox.
	ErrNoViewBox = errors.New("svgpath: missing or malformed viewBox")

	// ErrNoPath indicates the document has no <path> with path data.
	ErrNoPath = errors.New("svgpath: no path data")

	// ErrSyntax indicates malformed path data.
	ErrSyntax = errors.New("svgpath: syntax error")

	// ErrEmptyPath indicates a path with zero total length.
	ErrEmptyPath = errors.New("svgpath: path has zero length")

	// ErrBadPeriod indicates a period that is not a finite value > 0.
	ErrBadPeriod = errors.New("svgpath: period must be finite and > 0")
)

// syntaxError reports ErrSyntax at byte offset pos.
func syntaxError(pos int, format string, args ...interface{}) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, pos, fmt.Sprintf(format, args...))
}
