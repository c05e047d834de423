// SPDX-License-Identifier: MIT

// Package epicycle turns closed curves into chains of rotating arms and
// draws them.
//
// 🚀 What is epicycle?
//
//	A small, concurrent toolkit for Fourier epicycle drawings:
//		• Sources: SVG path data, built-in shapes and their combinations
//		• Decomposition: coefficient estimation, reconstruction, arm chains
//		• Output: animated GIF or PNG frames, XLSX export of the series
//		• CLI: cmd/epicycles wires the pieces end to end
//
// ✨ Why epicycle?
//
//   - Plain functions over complex128 – a curve is func(t) complex128
//   - Deterministic – parallel work writes to owned slots only
//   - Cancellable – long runs honour a context.Context
//
// Packages:
//
//	fourier/ — coefficients, term tables, cumulative chains, Series
//	signal/  — circle, line, tone, ellipse, square, pulse and combinators
//	svgpath/ — SVG path parser and arc-length sampler
//	render/  — viewport, rasterizer, GIF and PNG writers
//	sheet/   — XLSX export of coefficients, terms and chains
//
// Quick ASCII example:
//
//	  ╭─○─╮
//	  ○   ●──○
//	  ╰───╯
//
//	the tip of the last arm traces the drawing.
//
//	go install github.com/katalvlaran/epicycle/cmd/epicycles@latest
package epicycle
