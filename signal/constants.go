// SPDX-License-Identifier: MIT

package signal

import "math"

// Constructor names used as error prefixes.
const (
	MethodCircle    = "Circle"
	MethodLine      = "Line"
	MethodTone      = "Tone"
	MethodEllipse   = "Ellipse"
	MethodSquare    = "Square"
	MethodPulse     = "Pulse"
	MethodSum       = "Sum"
	MethodScale     = "Scale"
	MethodTranslate = "Translate"
	MethodSample    = "Sample"
)

// Defaults applied when no option overrides them.
const (
	DefaultAmplitude = 1.0
	DefaultFrequency = 1.0
	DefaultPhase     = 0.0
	DefaultDuty      = 0.5
)

const tau = 2.0 * math.Pi

// squareSides is the number of sides walked by Square; each side spans two
// half-side lengths, so one lap is squareSides*2 units long.
const squareSides = 4
