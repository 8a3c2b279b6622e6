// Package api provides the HTTP REST API server for finscope.
//
// It exposes endpoints for running analyses, browsing the analysis catalog,
// resolving benchmark tables and retrieving stored reports.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/seenimoa/finscope/internal/config"
	"github.com/seenimoa/finscope/internal/engine"
	"github.com/seenimoa/finscope/internal/infra"
	"github.com/seenimoa/finscope/internal/store"
)

// Server is the HTTP API server.
type Server struct {
	router  chi.Router
	cfg     *config.Config
	engine  *engine.Engine
	store   store.Store
	limiter *infra.RateLimiter
	logger  *slog.Logger
	version string
	started time.Time
}

// NewServer creates a configured API server with all routes and middleware.
// Reports produced by /analyze are persisted through the engine's sink;
// st serves report retrieval.
func NewServer(cfg *config.Config, eng *engine.Engine, st store.Store) *Server {
	srv := &Server{
		cfg:     cfg,
		engine:  eng,
		store:   st,
		logger:  slog.Default().With("component", "api"),
		version: "dev",
		started: time.Now(),
	}
	if cfg.API.RateLimit > 0 {
		srv.limiter = infra.NewRateLimiter(cfg.API.RateLimit, time.Minute/time.Duration(cfg.API.RateLimit))
	}
	srv.router = srv.buildRouter()
	return srv
}

// SetVersion sets the version reported by /health.
func (s *Server) SetVersion(v string) {
	s.version = v
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe starts the HTTP server and shuts it down gracefully once
// ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	timeout := s.requestTimeout()
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: timeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

func (s *Server) requestTimeout() time.Duration {
	if s.cfg.API.RequestTimeout > 0 {
		return time.Duration(s.cfg.API.RequestTimeout) * time.Second
	}
	return 30 * time.Second
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.requestTimeout()))

	// CORS
	origins := []string{"*"}
	if len(s.cfg.API.CORSOrigins) > 0 {
		origins = s.cfg.API.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", s.handleHealth)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		// Analysis
		r.With(s.rateLimit).Post("/analyze", s.handleAnalyze)

		// Catalog
		r.Get("/catalog", s.handleCatalog)
		r.Get("/catalog/{id}", s.handleCatalogEntry)

		// Benchmarks
		r.Get("/benchmarks/resolve", s.handleResolveBenchmark)

		// Reports
		r.Get("/reports", s.handleListReports)
		r.Get("/reports/{id}", s.handleGetReport)

		// Config
		r.Get("/config", s.handleGetConfig)
		r.Get("/config/secrets", s.handleGetSecrets)
	})

	return r
}

// requestLogger logs one line per request with the chi request id.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// rateLimit rejects requests once the shared token bucket is empty.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter != nil && !s.limiter.Allow() {
			w.Header().Set("Retry-After", "60")
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// APIResponse is the standard JSON envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Error:   msg,
	})
}
