// Package server exposes the alarm-history table description over HTTP for
// web frontends. It serves exactly what the TUI paints: the declarative
// view.Table, as JSON.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/hjops/alarmtop/config"
	"github.com/hjops/alarmtop/engine"
	"github.com/hjops/alarmtop/model"
	"github.com/hjops/alarmtop/source"
	"github.com/hjops/alarmtop/view"
)

// Server serves the alarm history API.
type Server struct {
	cfg      config.ServerConfig
	src      source.Source
	pageSize int
	log      zerolog.Logger
}

// New creates a server reading from the given source.
func New(cfg config.ServerConfig, src source.Source, pageSize int, log zerolog.Logger) *Server {
	if pageSize <= 0 {
		pageSize = engine.DefaultPageSize
	}
	return &Server{cfg: cfg, src: src, pageSize: pageSize, log: log}
}

// Router builds the chi router with CORS, metrics and the API routes.
func (s *Server) Router() *chi.Mux {
	initMetrics()

	r := chi.NewRouter()

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   s.cfg.CORSAllowedOrigins,
		AllowCredentials: true,
	}).Handler)
	r.Use(measure)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v0", func(r chi.Router) {
		r.Get("/alarms/history", s.historyHandler)
		r.Get("/alarms/stats", s.statsHandler)
	})

	return r
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Str("source", s.src.Name()).Msg("serving alarm history API")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// pageMeta is HistoryPage without the records, which live in the table.
type pageMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type historyResponse struct {
	Table view.Table `json:"table"`
	Page  pageMeta   `json:"page"`
}

// historyHandler returns one page of filtered history as a table description.
// Query parameters: q, level, status, page, page_size.
func (s *Server) historyHandler(w http.ResponseWriter, r *http.Request) {
	alarms, err := s.src.Fetch(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("history fetch failed")
		http.Error(w, "upstream fetch failed", http.StatusBadGateway)
		return
	}

	f := model.Filter{
		Query:  r.URL.Query().Get("q"),
		Status: model.Status(r.URL.Query().Get("status")),
	}
	f.Level, _ = strconv.Atoi(r.URL.Query().Get("level"))

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if pageSize <= 0 {
		pageSize = s.pageSize
	}

	p := engine.Paginate(engine.Apply(alarms, f), page, pageSize)

	writeJSON(w, s.log, historyResponse{
		Table: view.HistoryTable(p.Alarms),
		Page: pageMeta{
			Page:       p.Page,
			PageSize:   p.PageSize,
			TotalItems: p.TotalItems,
			TotalPages: p.TotalPages,
		},
	})
}

// statsHandler returns per-severity totals for the overview cards.
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	alarms, err := s.src.Fetch(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("stats fetch failed")
		http.Error(w, "upstream fetch failed", http.StatusBadGateway)
		return
	}
	writeJSON(w, s.log, engine.Count(alarms))
}

func writeJSON(w http.ResponseWriter, log zerolog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}
