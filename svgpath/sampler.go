// SPDX-License-Identifier: MIT

package svgpath

import (
	"fmt"
	"math"
	"sort"

	"honnef.co/go/curve"

	"github.com/katalvlaran/epicycle/fourier"
)

// Sampler evaluates a path at a normalized position. It is immutable and
// safe for concurrent use.
type Sampler struct {
	segments []curve.PathSegment
	ends     []float64 // cumulative length fraction at the end of each segment
	length   float64
	offset   complex128
}

// NewSampler measures every segment of path. Zero-length segments are
// dropped; a path with no length at all yields ErrEmptyPath.
func NewSampler(path curve.BezPath, opts ...Option) (*Sampler, error) {
	o := gatherOptions(opts...)

	s := &Sampler{offset: o.offset}
	var lengths []float64
	for seg := range path.Segments() {
		l := seg.Arclen(o.accuracy)
		if !(l > 0) {
			continue
		}
		s.segments = append(s.segments, seg)
		lengths = append(lengths, l)
		s.length += l
	}
	if len(s.segments) == 0 || math.IsInf(s.length, 0) {
		return nil, fmt.Errorf("NewSampler: %w", ErrEmptyPath)
	}

	s.ends = make([]float64, len(lengths))
	var acc float64
	for i, l := range lengths {
		acc += l
		s.ends[i] = acc / s.length
	}
	s.ends[len(s.ends)-1] = 1

	return s, nil
}

// Length is the total arc length of the sampled path.
func (s *Sampler) Length() float64 { return s.length }

// Segments is the number of non-degenerate segments.
func (s *Sampler) Segments() int { return len(s.segments) }

// Point returns the path point at pos ∈ [0,1] plus the offset. pos is
// clamped; Point(0) is the start of the first segment and Point(1) the end
// of the last.
func (s *Sampler) Point(pos float64) complex128 {
	switch {
	case !(pos > 0):
		pos = 0
	case pos > 1:
		pos = 1
	}

	i := sort.SearchFloat64s(s.ends, pos)
	if i == len(s.ends) {
		i = len(s.ends) - 1
	}
	lo := 0.0
	if i > 0 {
		lo = s.ends[i-1]
	}
	local := (pos - lo) / (s.ends[i] - lo)

	pt := s.segments[i].Eval(local)
	return complex(pt.X, pt.Y) + s.offset
}

// Func returns t ↦ Point(frac(t/period)), a periodic sampling function.
func (s *Sampler) Func(period float64) (fourier.SamplingFunc, error) {
	if math.IsNaN(period) || math.IsInf(period, 0) || period <= 0 {
		return nil, fmt.Errorf("Func: %w", ErrBadPeriod)
	}
	return func(t float64) complex128 {
		u := t / period
		return s.Point(u - math.Floor(u))
	}, nil
}
