package repo

import (
	"context"

	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/domain"
)

// RecordStore is the persistence port for flagged probes. The aggregator is
// the only writer during a run; the results API and the reporter read.
//
// Append is plain append-only: the store enforces no uniqueness, per-run
// dedup belongs to the aggregator.
type RecordStore interface {
	Append(ctx context.Context, r *domain.Record) error
	List(ctx context.Context) ([]domain.Record, error)
	Purge(ctx context.Context) (int64, error)
}
