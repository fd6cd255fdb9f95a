package pipeline

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"idfgen/model"
	"idfgen/params"
	"idfgen/site"
)

// BatchItem is one portfolio entry: an address to resolve plus the
// caller's partial parameter overrides.
type BatchItem struct {
	Address string
	Input   params.UserInput
}

// BatchResult pairs one item with its outcome; exactly one of Output
// and Err is set.
type BatchResult struct {
	Address string
	Output  *Output
	Err     error
}

// RunBatch generates one IDF per item across a bounded worker pool.
// Each invocation owns its model arena, so the only shared state is
// the immutable defaults library and the rate limiter in front of the
// external resolver — a large portfolio run must not hammer the
// geocoding service. Results come back in item order regardless of
// completion order.
func (g *Generator) RunBatch(ctx context.Context, items []BatchItem, resolver site.Resolver, workers int) []BatchResult {
	if workers < 1 {
		workers = 1
	}
	limiter := rate.NewLimiter(
		rate.Limit(g.cfg.SiteResolver.RequestsPerSecond),
		g.cfg.SiteResolver.Burst,
	)

	results := make([]BatchResult, len(items))
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)

	for i, item := range items {
		i, item := i, item
		grp.Go(func() error {
			var resolved *model.Site
			if resolver != nil && item.Address != "" {
				if err := limiter.Wait(ctx); err != nil {
					results[i] = BatchResult{Address: item.Address, Err: err}
					return nil
				}
				s, err := resolver.Resolve(ctx, item.Address)
				if err != nil {
					g.logger.Warn("site resolution failed, continuing without site",
						zap.String("address", item.Address), zap.Error(err))
				} else {
					resolved = &s
				}
			}

			out, err := g.Run(ctx, item.Input, resolved)
			results[i] = BatchResult{Address: item.Address, Output: out, Err: err}
			return nil // one failed item never cancels the batch
		})
	}
	_ = grp.Wait()
	return results
}
