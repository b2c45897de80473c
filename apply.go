package funcs

import (
	"context"
	"runtime"

	"github.com/apache/arrow/go/v15/arrow"
	"golang.org/x/sync/errgroup"
)

// Apply executes f over independent blocks concurrently. Blocks share nothing,
// results line up with the input order. The argument types are resolved once
// against the first block before any row is processed.
func Apply(ctx context.Context, f Function, blocks []arrow.Array) ([]arrow.Array, error) {
	if len(blocks) == 0 {
		return nil, nil
	}
	if _, err := f.Resolve([]arrow.DataType{blocks[0].DataType()}); err != nil {
		return nil, err
	}
	out := make([]arrow.Array, len(blocks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, block := range blocks {
		i, block := i, block
		g.Go(func() error {
			a, err := f.Exec(gctx, []arrow.Array{block})
			if err != nil {
				return err
			}
			out[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, a := range out {
			if a != nil {
				a.Release()
			}
		}
		return nil, err
	}
	return out, nil
}
