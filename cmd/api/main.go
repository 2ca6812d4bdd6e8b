package main

import (
	"context"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/config"
	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/httpapi"
	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/logging"
	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/repo"
	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/repo/memory"
	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/repo/sqlstore"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	var store repo.RecordStore
	if cfg.DatabaseDSN != "" {
		s, err := sqlstore.Open(context.Background(), cfg.DatabaseDSN, logger)
		if err != nil {
			logger.Error("store_open_failed", zap.Error(err))
			log.Fatal(err)
		}
		defer s.Close()
		store = s
	} else {
		logger.Warn("no_database_configured", zap.String("fallback", "in-memory"))
		store = memory.New()
	}

	api := httpapi.NewServer(logger, store, cfg)

	logger.Info("api_listen", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, api.Router()); err != nil {
		log.Fatal(err)
	}
}
