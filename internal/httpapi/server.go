package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/config"
	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/domain"
	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/httpapi/middleware"
	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/repo"
)

// Server exposes persisted flagged records. It reads what the aggregator
// wrote; it is never part of a running probe.
type Server struct {
	Logger  *zap.Logger
	Records repo.RecordStore
	Cfg     config.API
}

func NewServer(l *zap.Logger, rs repo.RecordStore, cfg config.API) *Server {
	return &Server{Logger: l, Records: rs, Cfg: cfg}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.Cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "X-API-Key", "Content-Type"},
	}))
	r.Use(middleware.RateLimit(s.Cfg.RateRPS, s.Cfg.RateBurst))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/records", s.handleListRecords)
	r.With(middleware.RequireAdmin(s.Cfg.AdminAPIKeys)).
		Delete("/api/records", s.handlePurgeRecords)

	return r
}

// handleListRecords returns every persisted record, optionally filtered by
// ?min_score=0.5.
func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := s.Records.List(r.Context())
	if err != nil {
		s.Logger.Warn("records_list_error", zap.Error(err))
		http.Error(w, "list error", http.StatusInternalServerError)
		return
	}

	if v := r.URL.Query().Get("min_score"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "bad min_score", http.StatusBadRequest)
			return
		}
		filtered := make([]domain.Record, 0, len(records))
		for _, rec := range records {
			if rec.AIScore >= min {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	if records == nil {
		records = []domain.Record{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(records)
}

func (s *Server) handlePurgeRecords(w http.ResponseWriter, r *http.Request) {
	n, err := s.Records.Purge(r.Context())
	if err != nil {
		s.Logger.Warn("records_purge_error", zap.Error(err))
		http.Error(w, "purge error", http.StatusInternalServerError)
		return
	}
	s.Logger.Info("records_purged", zap.Int64("rows", n))
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]int64{"purged": n})
}
