// SPDX-License-Identifier: MIT
// Package fourier: functional configuration.
//
// Contract:
//   - Option constructors validate and PANIC on nonsensical values
//     (programmer error). Algorithms themselves never panic.
//   - No hidden globals: every knob flows through options.
//   - Options never change numeric results; they only decide how the outer
//     loop is scheduled and when to stop early.

package fourier

import "context"

// DefaultWorkers is the number of goroutines used when WithWorkers is absent.
// One worker means the plain sequential loop.
const DefaultWorkers = 1

const (
	panicWorkersInvalid = "fourier: WithWorkers: n must be ≥ 1"
	panicContextNil     = "fourier: WithContext(nil)"
)

// Option customizes a single call.
type Option func(*options)

// options is the resolved configuration of one call.
type options struct {
	ctx     context.Context
	workers int
}

// WithWorkers spreads the outer index over n goroutines (n ≥ 1).
// Results are identical to the sequential path.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *options) { o.workers = n }
}

// WithContext makes the call stop with ctx.Err() once ctx is done. The
// context is polled between outer-index units, never inside the inner sum.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic(panicContextNil)
	}
	return func(o *options) { o.ctx = ctx }
}

// gatherOptions applies opts over the defaults; last write wins.
func gatherOptions(opts ...Option) options {
	o := options{
		ctx:     context.Background(),
		workers: DefaultWorkers,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
