// SPDX-License-Identifier: MIT

package render

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/epicycle/fourier"
)

// Viewport is the world-space rectangle shown in every frame.
type Viewport struct {
	MinX, MinY, MaxX, MaxY float64
}

// FitViewport returns the bounding box of every joint of every chain.
// An empty or single-point input is widened to a unit box around it.
func FitViewport(chains []fourier.Chain) Viewport {
	vp := Viewport{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, c := range chains {
		if len(c.X) == 0 {
			continue
		}
		vp.MinX = math.Min(vp.MinX, floats.Min(c.X))
		vp.MaxX = math.Max(vp.MaxX, floats.Max(c.X))
		vp.MinY = math.Min(vp.MinY, floats.Min(c.Y))
		vp.MaxY = math.Max(vp.MaxY, floats.Max(c.Y))
	}
	if math.IsInf(vp.MinX, 0) {
		vp = Viewport{}
	}
	if vp.Width() == 0 {
		vp.MinX, vp.MaxX = vp.MinX-0.5, vp.MaxX+0.5
	}
	if vp.Height() == 0 {
		vp.MinY, vp.MaxY = vp.MinY-0.5, vp.MaxY+0.5
	}
	return vp
}

// Width of the viewport in world units.
func (v Viewport) Width() float64 { return v.MaxX - v.MinX }

// Height of the viewport in world units.
func (v Viewport) Height() float64 { return v.MaxY - v.MinY }

// projection maps world coordinates to pixels with one scale for both axes,
// centring the viewport inside the image minus its margin.
type projection struct {
	scale   float64
	ox, oy  float64
	minX    float64
	minY    float64
	height  float64
	screenY bool
}

func newProjection(v Viewport, w, h, margin int, screenY bool) projection {
	iw, ih := float64(w-2*margin), float64(h-2*margin)
	scale := math.Min(iw/v.Width(), ih/v.Height())
	return projection{
		scale:   scale,
		ox:      float64(margin) + (iw-v.Width()*scale)/2,
		oy:      float64(margin) + (ih-v.Height()*scale)/2,
		minX:    v.MinX,
		minY:    v.MinY,
		height:  float64(h),
		screenY: screenY,
	}
}

// apply returns the pixel position of world point (x, y).
func (p projection) apply(x, y float64) (float32, float32) {
	px := p.ox + (x-p.minX)*p.scale
	py := p.oy + (y-p.minY)*p.scale
	if !p.screenY {
		py = p.height - py
	}
	return float32(px), float32(py)
}
