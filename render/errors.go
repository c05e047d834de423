// SPDX-License-Identifier: MIT
// Package render: sentinel errors.

package render

import "errors"

var (
	// ErrNoFrames indicates there is nothing to draw or to encode.
	ErrNoFrames = errors.New("render: no frames")

	// ErrBadSize indicates an image too small for its margin.
	ErrBadSize = errors.New("render: image size too small")

	// ErrBadCycles indicates a cycle count below one.
	ErrBadCycles = errors.New("render: cycles must be ≥ 1")

	// ErrBadDelay indicates a negative frame delay.
	ErrBadDelay = errors.New("render: delay must be ≥ 0")

	// ErrUnsupportedFormat indicates an output type other than gif or png.
	ErrUnsupportedFormat = errors.New("render: unsupported output format (supported: gif, png)")
)
