// SPDX-License-Identifier: MIT

package fourier

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// mapIndex calls fn(i) for every i in [0, count). With workers ≤ 1 it is a
// plain loop; otherwise at most `workers` goroutines run fn concurrently.
// fn must only write to slots owned by index i. ctx is polled before each
// unit; a done context aborts with ctx.Err() and the partial output must be
// discarded by the caller.
func mapIndex(ctx context.Context, count, workers int, fn func(i int)) error {
	if workers <= 1 || count < 2 {
		for i := 0; i < count; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(i)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < count; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// The loop may have stopped early without any goroutine observing it.
	return ctx.Err()
}
