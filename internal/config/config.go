package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Scan holds everything one probing run needs. It is populated from CLI
// flags; Validate is the single place argument errors become fatal.
type Scan struct {
	Domain            string        // target apex domain, required
	IncludeSubdomains bool          // widen the corpus query with a wildcard prefix
	Concurrency       int           // worker pool size, >= 1
	Threshold         time.Duration // responses strictly faster than this are flagged
	RequestTimeout    time.Duration // hard per-request timeout, must be >= Threshold
	MaxProbe          int           // top-K cap on scheduled probes; 0 = probe everything
	DatabaseDSN       string        // sqlite file path, or postgres:// DSN
	ReportPath        string        // HTML report output; empty disables the report
	LogDir            string        // rotated log directory
	InsecureTLS       bool          // skip TLS verification on probes
	NoScore           bool          // disable the suspicion scorer (discovery order)
	SlackWebhook      string        // optional end-of-run notification
}

func DefaultScan() Scan {
	return Scan{
		Concurrency:    5,
		Threshold:      100 * time.Millisecond,
		RequestTimeout: 10 * time.Second,
		DatabaseDSN:    "race_conditions.db",
		ReportPath:     "race_conditions_report.html",
		LogDir:         "logs",
		SlackWebhook:   os.Getenv("RACEHUNTER_SLACK_WEBHOOK"),
	}
}

func (s Scan) Validate() error {
	if strings.TrimSpace(s.Domain) == "" {
		return errors.New("domain is required")
	}
	if s.Concurrency < 1 {
		return fmt.Errorf("threads must be >= 1, got %d", s.Concurrency)
	}
	if s.Threshold <= 0 {
		return fmt.Errorf("response-time-threshold must be positive, got %s", s.Threshold)
	}
	if s.RequestTimeout < s.Threshold {
		return fmt.Errorf("request-timeout %s must be >= response-time-threshold %s",
			s.RequestTimeout, s.Threshold)
	}
	if s.MaxProbe < 0 {
		return fmt.Errorf("max-probe must be >= 0, got %d", s.MaxProbe)
	}
	if strings.TrimSpace(s.DatabaseDSN) == "" {
		return errors.New("db path is required")
	}
	return nil
}

// API configures the read-only results server.
type API struct {
	Addr           string   // bind address, e.g. "127.0.0.1:8080"
	LogDir         string   // logs directory
	DatabaseDSN    string   // empty means in-memory store (useful for tests)
	AllowedOrigins []string // CORS allowlist; empty allows none
	AdminAPIKeys   []string // keys accepted on the purge route
	RateRPS        float64  // per-IP token refill rate
	RateBurst      int      // per-IP bucket size
}

func FromEnv() API {
	addr := os.Getenv("API_ADDR")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}
	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	rps := 5.0
	if v := os.Getenv("RATE_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			rps = f
		}
	}
	burst := 10
	if v := os.Getenv("RATE_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			burst = n
		}
	}

	return API{
		Addr:           addr,
		LogDir:         logDir,
		DatabaseDSN:    os.Getenv("DATABASE_URL"),
		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),
		AdminAPIKeys:   splitList(os.Getenv("ADMIN_API_KEYS")),
		RateRPS:        rps,
		RateBurst:      burst,
	}
}

func splitList(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
