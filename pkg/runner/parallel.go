package runner

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RunAll executes specs concurrently through r, at most limit at a time
// (limit <= 0 means unbounded). Results are positionally aligned with specs.
// The first failure cancels the runs that have not started yet and is
// returned after every started run has finished.
func RunAll(ctx context.Context, r Runner, specs []Spec, limit int) ([]*Result, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	results := make([]*Result, len(specs))
	for i, spec := range specs {
		g.Go(func() error {
			res, err := r.Run(ctx, spec)
			results[i] = res
			return err
		})
	}

	return results, g.Wait()
}
