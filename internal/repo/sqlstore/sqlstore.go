package sqlstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/domain"
	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/repo"
)

var _ repo.RecordStore = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS race_conditions (
    url           TEXT,
    status_code   INTEGER,
    response_time REAL,
    ai_score      REAL,
    observed_at   TIMESTAMP
)`

// Store persists flagged probes through sqlx. The DSN decides the driver:
// postgres:// goes to lib/pq, anything else is treated as a sqlite file
// path, which is what the --db flag hands over.
type Store struct {
	db  *sqlx.DB
	log *zap.Logger
}

func driverFor(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "postgres"
	}
	return "sqlite3"
}

// Open connects, pings, and ensures the schema exists. An error here is
// fatal to the caller: a scan without a working sink is pointless.
func Open(ctx context.Context, dsn string, log *zap.Logger) (*Store, error) {
	driver := driverFor(dsn)
	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", driver, err)
	}
	if driver == "sqlite3" {
		// sqlite allows a single writer; the aggregator is the only one,
		// but the API may read concurrently.
		db.SetMaxOpenConns(1)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	log.Info("store_opened", zap.String("driver", driver))
	return &Store{db: db, log: log}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Append(ctx context.Context, r *domain.Record) error {
	q := s.db.Rebind(`INSERT INTO race_conditions
	    (url, status_code, response_time, ai_score, observed_at)
	    VALUES (?, ?, ?, ?, ?)`)
	if _, err := s.db.ExecContext(ctx, q,
		r.URL, r.StatusCode, r.ResponseTime, r.AIScore, r.ObservedAt.UTC(),
	); err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]domain.Record, error) {
	var out []domain.Record
	err := s.db.SelectContext(ctx, &out,
		`SELECT url, status_code, response_time, ai_score, observed_at
		   FROM race_conditions
		  ORDER BY observed_at, url`)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	for i := range out {
		out[i].ObservedAt = out[i].ObservedAt.In(time.UTC)
	}
	return out, nil
}

func (s *Store) Purge(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM race_conditions`)
	if err != nil {
		return 0, fmt.Errorf("purge records: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}
