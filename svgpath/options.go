// SPDX-License-Identifier: MIT

package svgpath

import (
	"math"
	"math/cmplx"
)

// DefaultAccuracy is the arc-length accuracy used to weigh segments.
const DefaultAccuracy = 1e-6

// Option customizes a Sampler.
type Option func(*samplerOptions)

type samplerOptions struct {
	offset   complex128
	accuracy float64
}

// WithOffset adds c to every sampled point.
func WithOffset(c complex128) Option {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		panic("svgpath: WithOffset(non-finite)")
	}
	return func(o *samplerOptions) { o.offset = c }
}

// WithAccuracy sets the arc-length accuracy (> 0).
func WithAccuracy(a float64) Option {
	if !(a > 0) || math.IsInf(a, 0) {
		panic("svgpath: WithAccuracy(a<=0)")
	}
	return func(o *samplerOptions) { o.accuracy = a }
}

func gatherOptions(opts ...Option) samplerOptions {
	o := samplerOptions{accuracy: DefaultAccuracy}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
