package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/domain"
	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/probe"
	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/repo"
)

// Runner drives one probing run: a bounded worker pool fed from the ranked
// candidate sequence, with every classified outcome funneled into the
// single aggregator goroutine that owns the store handle.
type Runner struct {
	Logger      *zap.Logger
	Checker     probe.Checker
	Store       repo.RecordStore
	Threshold   time.Duration // race-window boundary, strict <
	Timeout     time.Duration // per-request hard timeout
	Concurrency int
}

func NewRunner(
	logger *zap.Logger,
	checker probe.Checker,
	store repo.RecordStore,
	threshold time.Duration,
	timeout time.Duration,
	concurrency int,
) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	if timeout < threshold {
		timeout = threshold
	}
	return &Runner{
		Logger:      logger,
		Checker:     checker,
		Store:       store,
		Threshold:   threshold,
		Timeout:     timeout,
		Concurrency: concurrency,
	}
}

type outcomeMsg struct {
	cand domain.ScoredCandidate
	out  domain.Outcome
}

// Run probes the ranked candidates and blocks until every dispatched probe
// has been classified and aggregated.
//
// Dispatch follows ranking order and is the only place that blocks on a
// free worker slot. Completion order is unordered. Cancelling ctx stops new
// dispatch immediately; in-flight probes abort best-effort via their own
// request context, and candidates never dispatched leave no outcome at all.
func (r *Runner) Run(ctx context.Context, candidates []domain.ScoredCandidate) Summary {
	runID := domain.RunID(uuid.New().String())
	r.Logger.Info("run_started",
		zap.String("run_id", string(runID)),
		zap.Int("candidates", len(candidates)),
		zap.Int("concurrency", r.Concurrency),
		zap.Duration("threshold", r.Threshold),
	)

	sem := make(chan struct{}, r.Concurrency)
	outcomes := make(chan outcomeMsg, r.Concurrency)
	var wg sync.WaitGroup

	agg := newAggregator(r.Logger, r.Store, runID)
	aggDone := make(chan Summary, 1)
	go func() { aggDone <- agg.consume(ctx, outcomes) }()

	dispatched := 0
dispatch:
	for _, cand := range candidates {
		select {
		case <-ctx.Done():
			break dispatch
		case sem <- struct{}{}:
		}
		// A slot freed by a finishing worker can win the select against a
		// cancelled context; recheck so no probe launches after cancel.
		if ctx.Err() != nil {
			<-sem
			break dispatch
		}

		wg.Add(1)
		dispatched++
		go func(c domain.ScoredCandidate) {
			defer wg.Done()
			defer func() { <-sem }()

			cctx, cancel := context.WithTimeout(ctx, r.Timeout)
			defer cancel()

			timing := r.Checker.Check(cctx, c.URL)
			outcomes <- outcomeMsg{cand: c, out: probe.Classify(timing, r.Threshold, c.Score)}
		}(cand)
	}

	wg.Wait()
	close(outcomes)
	sum := <-aggDone
	sum.Dispatched = dispatched

	r.Logger.Info("run_finished",
		zap.String("run_id", string(runID)),
		zap.Int("dispatched", sum.Dispatched),
		zap.Int("flagged", sum.Flagged),
		zap.Int("normal", sum.Normal),
		zap.Int("failed", sum.Failed),
		zap.Int("dropped_writes", sum.Dropped),
	)
	return sum
}
