package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/domain"
	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/repo"
)

// Summary is the in-memory end-of-run view. Records holds every flagged
// record, including ones a failed write dropped from durable storage.
type Summary struct {
	RunID      domain.RunID
	Dispatched int
	Probed     int
	Flagged    int
	Normal     int
	Failed     int
	Dropped    int // flagged records that failed to persist
	Records    []domain.Record
}

// aggregator is the single writer: exactly one goroutine runs consume, so
// the store handle and the summary need no further locking.
type aggregator struct {
	logger *zap.Logger
	store  repo.RecordStore
	runID  domain.RunID
	seen   map[string]struct{}
}

func newAggregator(logger *zap.Logger, store repo.RecordStore, runID domain.RunID) *aggregator {
	return &aggregator{
		logger: logger,
		store:  store,
		runID:  runID,
		seen:   make(map[string]struct{}),
	}
}

func (a *aggregator) consume(ctx context.Context, outcomes <-chan outcomeMsg) Summary {
	sum := Summary{RunID: a.runID}

	// Writes survive run cancellation: an outcome that was measured before
	// the cancel is still a finding worth keeping.
	writeCtx := context.WithoutCancel(ctx)

	for msg := range outcomes {
		sum.Probed++
		switch msg.out.Kind {
		case domain.OutcomeFailed:
			sum.Failed++
			a.logger.Debug("probe_failed",
				zap.String("url", msg.cand.URL),
				zap.String("error_kind", string(msg.out.ErrorKind)),
				zap.String("reason", msg.out.Reason),
			)

		case domain.OutcomeNormal:
			sum.Normal++

		case domain.OutcomeFlagged:
			if _, dup := a.seen[msg.cand.URL]; dup {
				continue
			}
			a.seen[msg.cand.URL] = struct{}{}
			sum.Flagged++

			rec := domain.Record{
				URL:          msg.cand.URL,
				StatusCode:   msg.out.StatusCode,
				ResponseTime: msg.out.Elapsed.Seconds(),
				AIScore:      msg.out.Score,
				ObservedAt:   time.Now().UTC(),
			}
			sum.Records = append(sum.Records, rec)

			if err := a.store.Append(writeCtx, &rec); err != nil {
				sum.Dropped++
				a.logger.Warn("sink_append_error",
					zap.String("url", rec.URL),
					zap.Error(err),
				)
				continue
			}
			a.logger.Info("probe_flagged",
				zap.String("url", rec.URL),
				zap.Int("status", rec.StatusCode),
				zap.Float64("response_time", rec.ResponseTime),
				zap.Float64("score", rec.AIScore),
			)
		}
	}
	return sum
}
