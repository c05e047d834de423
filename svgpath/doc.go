// SPDX-License-Identifier: MIT

// Package svgpath turns the outline of an SVG drawing into a periodic
// sampling function for the fourier package.
//
// 🚀 Pipeline:
//
//	ParseDocument  — read the SVG, take the viewBox size and every <path d>.
//	ParsePathData  — parse path data into a curve.BezPath (arcs become cubics).
//	NewSampler     — map pos ∈ [0,1] onto the path, segment by arc length.
//	Sampler.Func   — t ↦ Point(t/P) + offset, a fourier.SamplingFunc.
//
// ✨ Path data grammar:
//   - Every SVG 1.1 command: M m L l H h V v C c S s Q q T t A a Z z.
//   - Implicit repeats ("M0 0 1 1 2 2" draws two lines).
//   - Compact numbers: "1-2", ".5.5", "1e-3", and packed arc flags "a1 1 0 01 5 5".
//
// ⚙️ Sampling semantics:
//
//	The path parameter pos picks a segment in proportion to segment arc
//	length; inside the segment the local Bézier parameter is used. Points on
//	a long cubic are therefore not equally spaced, but every segment receives
//	its fair share of the period.
//
// Document.Func adds the viewBox (width + height·i) to every point, as the
// command-line tool has always done. Use NewSampler directly for a different
// placement.
package svgpath
