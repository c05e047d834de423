// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/epicycle/fourier"
)

// Renderer turns a decomposed series into frames. It holds only resolved
// options and is safe for concurrent use.
type Renderer struct {
	opts options
}

// New returns a Renderer configured by opts.
func New(opts ...Option) *Renderer {
	return &Renderer{opts: gatherOptions(opts...)}
}

// scene is the per-series state shared by all frames.
type scene struct {
	chains []fourier.Chain
	tips   []complex128
	proj   projection
}

func (r *Renderer) prepare(method string, s *fourier.Series) (*scene, error) {
	if s == nil || s.Steps() == 0 {
		return nil, fmt.Errorf("%s: %w", method, ErrNoFrames)
	}
	o := r.opts
	if o.width <= 2*o.margin || o.height <= 2*o.margin {
		return nil, fmt.Errorf("%s: %w: %dx%d with margin %d", method, ErrBadSize, o.width, o.height, o.margin)
	}

	chains := s.Chains()
	tips := make([]complex128, len(chains))
	for j, c := range chains {
		tips[j] = c.Tip()
	}
	return &scene{
		chains: chains,
		tips:   tips,
		proj:   newProjection(FitViewport(chains), o.width, o.height, o.margin, o.screenY),
	}, nil
}

// job builds frame i of total. The trace holds the tips of frames 0..i;
// after a full cycle it is the closed curve.
func (sc *scene) job(i, total int) frameJob {
	steps := len(sc.chains)
	var trace []complex128
	if i < steps {
		trace = sc.tips[:i+1]
	} else {
		trace = append(append(make([]complex128, 0, steps+1), sc.tips...), sc.tips[0])
	}
	return frameJob{
		chain: sc.chains[i%steps],
		trace: trace,
		label: fmt.Sprintf("%d/%d", i+1, total),
	}
}

// Frames renders steps·cycles frames; frame i shows row i mod steps.
// Without a label every cycle after the first draws the same images, so
// frames from the third cycle on share the second cycle's *image.Paletted.
func (r *Renderer) Frames(s *fourier.Series, cycles int) ([]*image.Paletted, error) {
	if cycles < 1 {
		return nil, fmt.Errorf("Frames: %w", ErrBadCycles)
	}
	sc, err := r.prepare("Frames", s)
	if err != nil {
		return nil, err
	}

	steps := len(sc.chains)
	total := steps * cycles
	frames := make([]*image.Paletted, total)
	drawn := total
	if !r.opts.label {
		drawn = min(total, 2*steps)
	}

	g, ctx := errgroup.WithContext(r.opts.ctx)
	g.SetLimit(r.opts.workers)
	for i := 0; i < drawn; i++ {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			frames[i] = r.drawFrame(sc.proj, sc.job(i, total))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("Frames: %w", err)
	}
	if err := r.opts.ctx.Err(); err != nil {
		return nil, fmt.Errorf("Frames: %w", err)
	}
	for i := drawn; i < total; i++ {
		frames[i] = frames[i-steps]
	}
	return frames, nil
}

// Frame renders frame i alone, with the same viewport Frames would use.
// Negative i wraps from the end of the first cycle.
func (r *Renderer) Frame(s *fourier.Series, i int) (*image.Paletted, error) {
	sc, err := r.prepare("Frame", s)
	if err != nil {
		return nil, err
	}
	steps := len(sc.chains)
	if i < 0 {
		i = ((i % steps) + steps) % steps
	}
	return r.drawFrame(sc.proj, sc.job(i, max(i+1, steps))), nil
}
