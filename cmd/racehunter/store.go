package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/domain"
	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/repo/sqlstore"
)

type recordLister interface {
	List(ctx context.Context) ([]domain.Record, error)
}

func openStore(ctx context.Context, dsn string, logger *zap.Logger) (*sqlstore.Store, error) {
	store, err := sqlstore.Open(ctx, dsn, logger)
	if err != nil {
		return nil, fmt.Errorf("open database %q: %w", dsn, err)
	}
	return store, nil
}
