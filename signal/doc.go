// SPDX-License-Identifier: MIT

// Package signal builds synthetic periodic sampling functions for the fourier
// package: circles, ellipses, squares, pulses and pure tones, plus small
// combinators to add, scale and shift them.
//
// 🚀 Why?
//
//	Epicycle drawings are only as good as the curve they are fed. The shapes
//	here have known Fourier coefficients, which makes them handy fixtures for
//	tests, benchmarks and demos of the decomposition.
//
// ✨ Shapes:
//   - Circle   — A·e^{i(2πf·t/P + φ)} + center.
//   - Line     — A·cos(2πf·t/P + φ) + center, a real-only oscillation.
//   - Tone     — e^{i2πk·t/P}, a single coefficient c_k = 1.
//   - Ellipse  — rx·cos θ + i·ry·sin θ, θ = 2πf·t/P + φ.
//   - Square   — the boundary of a square with half-side A, traced at
//     constant speed, counter-clockwise from (A, 0).
//   - Pulse    — a real rectangular wave, A while the cycle position is
//     below the duty ratio and 0 after.
//
// ⚙️ Combinators:
//   - Sum, Scale, Translate build new functions from existing ones.
//   - Sample evaluates a function on the uniform grid t_k = k·P/steps.
//
// Options (WithAmplitude, WithFrequency, WithPhase, WithCenter, WithDuty)
// panic on nonsensical values. Constructors return errors wrapping ErrBadPeriod,
// ErrBadRadius, ErrBadSteps or ErrNilFunc.
//
// Every returned function is pure and safe for concurrent use.
package signal
