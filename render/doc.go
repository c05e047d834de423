// SPDX-License-Identifier: MIT

// Package render draws epicycle animations: one raster frame per time step,
// showing the chain of rotating arms and the trace left by its tip.
//
// 🚀 Frame i shows:
//   - the chain of row i mod steps, arms drawn tip-to-tail (half transparent)
//     with a dot at every joint;
//   - the trace: the chain tip of every frame up to and including i.
//
// ✨ Layout:
//
//	A single Viewport is fitted to every joint of every row, so the camera
//	never moves between frames. Both axes share one scale (equal aspect) and
//	the y axis points up unless WithScreenY is given.
//
// ⚙️ Output:
//   - Renderer.Frames renders steps·cycles paletted frames, spread over
//     WithWorkers goroutines; frames are independent, so the result does not
//     depend on the worker count.
//   - WriteGIF encodes an animated GIF (60 fps is a delay of 2/100 s).
//   - WritePNGs writes one numbered PNG per frame.
//
// Rasterization uses golang.org/x/image/vector; frame labels use the
// basicfont 7×13 face.
package render
