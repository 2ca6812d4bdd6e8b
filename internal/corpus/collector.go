package corpus

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/domain"
)

// Collector fans its sources out concurrently and merges their URL sets
// into one deduplicated corpus. A failing source contributes nothing and the
// collection itself never fails: triage over an incomplete corpus beats no
// run at all.
type Collector struct {
	Sources []Source
	Logger  *zap.Logger
}

func NewCollector(logger *zap.Logger, sources ...Source) *Collector {
	return &Collector{Sources: sources, Logger: logger}
}

// Collect queries every source for the target and returns the merged,
// canonicalized candidate set. Candidates keep first-discovery order:
// sources are merged in registration order, each source's URLs in the order
// the source returned them.
func (c *Collector) Collect(ctx context.Context, target string, subdomains bool) []domain.Candidate {
	perSource := make([][]string, len(c.Sources))

	var wg sync.WaitGroup
	for i, src := range c.Sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			urls, err := src.Fetch(ctx, target, subdomains)
			if err != nil {
				c.Logger.Warn("collector_source_error",
					zap.String("source", src.Name()),
					zap.String("target", target),
					zap.Error(err),
				)
				return
			}
			c.Logger.Info("collector_source_done",
				zap.String("source", src.Name()),
				zap.Int("urls", len(urls)),
			)
			perSource[i] = urls
		}(i, src)
	}
	wg.Wait()

	// Merge sequentially so discovery order is deterministic.
	seen := make(map[string]struct{})
	var merged []domain.Candidate
	for _, urls := range perSource {
		for _, raw := range urls {
			canon, err := Canonicalize(raw)
			if err != nil {
				continue
			}
			if _, dup := seen[canon]; dup {
				continue
			}
			seen[canon] = struct{}{}
			merged = append(merged, domain.Candidate{URL: canon, Index: len(merged)})
		}
	}

	c.Logger.Info("collector_done",
		zap.String("target", target),
		zap.Int("sources", len(c.Sources)),
		zap.Int("candidates", len(merged)),
	)
	return merged
}
