// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/katalvlaran/epicycle/fourier"
)

// dotSides is the polygon resolution of a joint dot.
const dotSides = 12

// canvas accumulates filled shapes for one color.
type canvas struct {
	z    *vector.Rasterizer
	used bool
}

func newCanvas(w, h int) *canvas {
	return &canvas{z: vector.NewRasterizer(w, h)}
}

// segment fills the rectangle of the given width around p0→p1.
func (c *canvas) segment(x0, y0, x1, y1 float32, width float64) {
	dx, dy := float64(x1-x0), float64(y1-y0)
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx := float32(-dy / l * width / 2)
	ny := float32(dx / l * width / 2)

	c.z.MoveTo(x0+nx, y0+ny)
	c.z.LineTo(x1+nx, y1+ny)
	c.z.LineTo(x1-nx, y1-ny)
	c.z.LineTo(x0-nx, y0-ny)
	c.z.ClosePath()
	c.used = true
}

// dot fills a small regular polygon centred at (x, y).
func (c *canvas) dot(x, y float32, r float64) {
	if r <= 0 {
		return
	}
	for k := 0; k < dotSides; k++ {
		th := 2 * math.Pi * float64(k) / dotSides
		px := x + float32(r*math.Cos(th))
		py := y + float32(r*math.Sin(th))
		if k == 0 {
			c.z.MoveTo(px, py)
			continue
		}
		c.z.LineTo(px, py)
	}
	c.z.ClosePath()
	c.used = true
}

// paint composites the accumulated shapes onto dst in color col.
func (c *canvas) paint(dst *image.RGBA, col color.Color) {
	if !c.used {
		return
	}
	c.z.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{})
}

// frameJob is everything needed to draw one frame.
type frameJob struct {
	chain fourier.Chain
	trace []complex128
	label string
}

// drawFrame renders one frame and quantizes it to the Plan 9 palette.
func (r *Renderer) drawFrame(p projection, job frameJob) *image.Paletted {
	o := r.opts
	bounds := image.Rect(0, 0, o.width, o.height)
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, image.NewUniform(o.background), image.Point{}, draw.Src)

	// Trace.
	tr := newCanvas(o.width, o.height)
	for k := 1; k < len(job.trace); k++ {
		x0, y0 := p.apply(real(job.trace[k-1]), imag(job.trace[k-1]))
		x1, y1 := p.apply(real(job.trace[k]), imag(job.trace[k]))
		tr.segment(x0, y0, x1, y1, o.line)
	}
	tr.paint(rgba, o.trace)

	// Arms and joints.
	arms := newCanvas(o.width, o.height)
	for k := 0; k < job.chain.Len(); k++ {
		x1, y1 := p.apply(job.chain.X[k], job.chain.Y[k])
		if k > 0 {
			x0, y0 := p.apply(job.chain.X[k-1], job.chain.Y[k-1])
			arms.segment(x0, y0, x1, y1, o.line)
		}
		arms.dot(x1, y1, o.dot)
	}
	armColor := color.NRGBA{R: o.arms.R, G: o.arms.G, B: o.arms.B, A: uint8(armAlpha * float64(o.arms.A))}
	arms.paint(rgba, armColor)

	if o.label && job.label != "" {
		d := font.Drawer{
			Dst:  rgba,
			Src:  image.NewUniform(color.Black),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(4, basicfont.Face7x13.Ascent+2),
		}
		d.DrawString(job.label)
	}

	pal := image.NewPaletted(bounds, palette.Plan9)
	draw.Draw(pal, bounds, rgba, image.Point{}, draw.Src)
	return pal
}
