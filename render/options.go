// SPDX-License-Identifier: MIT
// Package render: functional options.
//
// Option constructors panic on meaningless values; rendering returns errors.

package render

import (
	"context"
	"image/color"
)

// Defaults.
const (
	DefaultWidth   = 640
	DefaultHeight  = 480
	DefaultMargin  = 16 // capped at an eighth of the shorter side
	DefaultWorkers = 1
	DefaultLine    = 1.5 // stroke width in pixels
	DefaultDot     = 2.5 // joint dot radius in pixels
)

// Matplotlib's first two cycle colors: the trace and the arms.
var (
	DefaultBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	DefaultTrace      = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	DefaultArms       = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
)

// armAlpha is the opacity of arms and joints.
const armAlpha = 0.5

// Option customizes a Renderer.
type Option func(*options)

type options struct {
	ctx     context.Context
	width   int
	height  int
	margin  int
	workers int
	line    float64
	dot     float64
	screenY bool
	label   bool

	background color.RGBA
	trace      color.RGBA
	arms       color.RGBA
}

// WithSize sets the frame size in pixels.
func WithSize(w, h int) Option {
	if w < 1 || h < 1 {
		panic("render: WithSize(w<1 || h<1)")
	}
	return func(o *options) { o.width, o.height = w, h }
}

// WithMargin sets the empty border kept around the drawing. Without it the
// border is min(DefaultMargin, min(w, h)/8), which fits any frame size.
func WithMargin(px int) Option {
	if px < 0 {
		panic("render: WithMargin(px<0)")
	}
	return func(o *options) { o.margin = px }
}

// WithWorkers renders frames on n goroutines.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("render: WithWorkers(n<1)")
	}
	return func(o *options) { o.workers = n }
}

// WithContext stops rendering once ctx is done.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("render: WithContext(nil)")
	}
	return func(o *options) { o.ctx = ctx }
}

// WithStroke sets the line width and the joint dot radius, in pixels.
func WithStroke(line, dot float64) Option {
	if !(line > 0) || !(dot >= 0) {
		panic("render: WithStroke(line<=0 || dot<0)")
	}
	return func(o *options) { o.line, o.dot = line, dot }
}

// WithColors overrides background, trace and arm colors. Arms are always
// drawn half transparent.
func WithColors(background, trace, arms color.Color) Option {
	if background == nil || trace == nil || arms == nil {
		panic("render: WithColors(nil)")
	}
	bg, tr, ar := toRGBA(background), toRGBA(trace), toRGBA(arms)
	return func(o *options) { o.background, o.trace, o.arms = bg, tr, ar }
}

// WithScreenY keeps the y axis pointing down, as in SVG user space.
func WithScreenY() Option {
	return func(o *options) { o.screenY = true }
}

// WithLabel prints "i/total" in the top-left corner of each frame.
func WithLabel() Option {
	return func(o *options) { o.label = true }
}

func gatherOptions(opts ...Option) options {
	o := options{
		ctx:        context.Background(),
		width:      DefaultWidth,
		height:     DefaultHeight,
		margin:     -1,
		workers:    DefaultWorkers,
		line:       DefaultLine,
		dot:        DefaultDot,
		background: DefaultBackground,
		trace:      DefaultTrace,
		arms:       DefaultArms,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.margin < 0 {
		o.margin = min(DefaultMargin, min(o.width, o.height)/8)
	}
	return o
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
