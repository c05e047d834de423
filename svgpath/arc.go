// SPDX-License-Identifier: MIT

package svgpath

import (
	"math"

	"honnef.co/go/curve"
)

// arcTo appends an SVG elliptical arc from the current point to end.
//
// The endpoint form (radii, rotation, flags) is converted to the centre form
// used by curve.Arc, following the SVG 1.1 implementation notes: radii too
// small to span the chord are scaled up uniformly, a zero radius degrades to
// a straight line, and an arc ending where it starts draws nothing.
func (p *parser) arcTo(rx, ry, rotDeg float64, large, sweep bool, end curve.Point) {
	start := p.cur
	if start == end {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		p.lineTo(end)
		return
	}

	phi := rotDeg * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	// Midpoint in the rotated frame.
	dx, dy := (start.X-end.X)/2, (start.Y-end.Y)/2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx, ry = rx*s, ry*s
	}

	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*y1*y1 - ry2*x1*x1
	den := rx2*y1*y1 + ry2*x1*x1
	coef := math.Sqrt(math.Max(0, num/den))
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	center := curve.Pt(
		cosPhi*cx1-sinPhi*cy1+(start.X+end.X)/2,
		sinPhi*cx1+cosPhi*cy1+(start.Y+end.Y)/2,
	)

	theta1 := math.Atan2((y1-cy1)/ry, (x1-cx1)/rx)
	theta2 := math.Atan2((-y1-cy1)/ry, (-x1-cx1)/rx)
	delta := theta2 - theta1
	switch {
	case sweep && delta < 0:
		delta += 2 * math.Pi
	case !sweep && delta > 0:
		delta -= 2 * math.Pi
	}

	arc := curve.Arc{
		Center:     center,
		Radii:      curve.Vec(rx, ry),
		StartAngle: theta1,
		SweepAngle: delta,
		XRotation:  phi,
	}
	emitted := 0
	for el := range arc.PathElements(arcTolerance) {
		if el.Kind != curve.CubicToKind {
			continue
		}
		p.path.CubicTo(el.P0, el.P1, el.P2)
		emitted++
	}
	if emitted == 0 {
		p.lineTo(end)
		return
	}
	// Snap the final cubic onto the exact endpoint.
	p.path[len(p.path)-1].P2 = end
	p.cur, p.ctrl = end, end
}
