// SPDX-License-Identifier: MIT

package simplify

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/unitshape/shape"
)

// Batch simplifies every shape in shapes concurrently and returns the
// results in input order.
//
// At most WithConcurrency(n) shapes are processed at once (default
// GOMAXPROCS). Simplify itself cannot fail, so the only error is the
// context's: once ctx is done no new work starts and ctx.Err() is returned
// with a nil result slice.
func Batch(ctx context.Context, shapes []shape.Shape, opts ...Option) ([]Result, error) {
	o := gatherOptions(opts...)
	out := make([]Result, len(shapes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, s := range shapes {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = simplifyWith(o, s)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
