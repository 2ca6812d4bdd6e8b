package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/config"
	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/corpus"
	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/logging"
	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/notify"
	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/probe"
	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/report"
	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/scheduler"
	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/score"
)

type scanFlags struct {
	subdomains bool
	threads    int
	maxProbe   int
	db         string
	report     string
	logDir     string
	insecure   bool
	noScore    bool
}

func (f scanFlags) toConfig(domain string, thresholdSec, timeoutSec float64) (config.Scan, error) {
	cfg := config.DefaultScan()
	cfg.Domain = domain
	cfg.IncludeSubdomains = f.subdomains
	cfg.Concurrency = f.threads
	cfg.Threshold = time.Duration(thresholdSec * float64(time.Second))
	cfg.RequestTimeout = time.Duration(timeoutSec * float64(time.Second))
	cfg.MaxProbe = f.maxProbe
	cfg.DatabaseDSN = f.db
	cfg.ReportPath = f.report
	cfg.LogDir = f.logDir
	cfg.InsecureTLS = f.insecure
	cfg.NoScore = f.noScore
	return cfg, cfg.Validate()
}

func runScan(ctx context.Context, cfg config.Scan) error {
	logger, err := logging.NewScanLogger(cfg.LogDir)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg.DatabaseDSN, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	collector := corpus.NewCollector(logger,
		corpus.NewWaybackSource(),
		corpus.NewOTXSource(),
	)
	candidates := collector.Collect(ctx, cfg.Domain, cfg.IncludeSubdomains)
	fmt.Printf("[>>] %d unique URLs collected for %s\n", len(candidates), cfg.Domain)

	var scorer score.Scorer
	if !cfg.NoScore {
		scorer = score.Heuristic{}
	}
	ranked := score.Rank(logger, candidates, scorer, cfg.MaxProbe)

	runner := scheduler.NewRunner(
		logger,
		probe.NewHTTPChecker(cfg.RequestTimeout, cfg.InsecureTLS),
		store,
		cfg.Threshold,
		cfg.RequestTimeout,
		cfg.Concurrency,
	)
	sum := runner.Run(ctx, ranked)

	writeReport(cfg, store, logger)
	sendNotification(cfg, sum, logger)

	fmt.Printf("[>>] run %s: probed %d, flagged %d, failed %d\n",
		sum.RunID, sum.Probed, sum.Flagged, sum.Failed)
	for _, r := range sum.Records {
		fmt.Printf(" - %s | %d | %.3fs | score %.2f\n",
			r.URL, r.StatusCode, r.ResponseTime, r.AIScore)
	}
	// Zero flagged URLs is still a successful run.
	return nil
}

func writeReport(cfg config.Scan, store recordLister, logger *zap.Logger) {
	if cfg.ReportPath == "" {
		return
	}
	// The report reads persisted state, so it reflects every run against
	// this database, not just the current one.
	records, err := store.List(context.Background())
	if err != nil {
		logger.Warn("report_list_error", zap.Error(err))
		return
	}
	if err := report.WriteFile(cfg.ReportPath, records); err != nil {
		logger.Warn("report_write_error", zap.String("path", cfg.ReportPath), zap.Error(err))
		return
	}
	logger.Info("report_written", zap.String("path", cfg.ReportPath), zap.Int("rows", len(records)))
}

func sendNotification(cfg config.Scan, sum scheduler.Summary, logger *zap.Logger) {
	if sum.Flagged == 0 {
		return
	}
	var targets notify.Multi
	if s := notify.NewSlack(cfg.SlackWebhook); s != nil {
		targets = append(targets, s)
	}
	if len(targets) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	title, text := notify.FormatSummary(cfg.Domain, sum)
	if err := targets.Send(ctx, title, text); err != nil {
		logger.Warn("notify_error", zap.Error(err))
	}
}
