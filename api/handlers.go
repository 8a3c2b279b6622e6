package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/seenimoa/finscope/internal/benchmark"
	"github.com/seenimoa/finscope/internal/catalog"
	"github.com/seenimoa/finscope/internal/engine"
	"github.com/seenimoa/finscope/internal/store"
	"github.com/seenimoa/finscope/pkg/models"
)

// AnalyzeRequest is the body for POST /api/v1/analyze.
type AnalyzeRequest struct {
	Statements []models.FinancialStatement `json:"statements"`
	engine.RunOptions
}

// CatalogResponse is the body returned by GET /api/v1/catalog.
type CatalogResponse struct {
	Count    int                  `json:"count"`
	Analyses []catalog.Definition `json:"analyses"`
}

const maxReportListLimit = 200

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":   "ok",
			"version":  s.version,
			"analyses": s.engine.Catalog().Len(),
			"store":    s.cfg.Store.Driver,
			"uptime":   time.Since(s.started).Round(time.Second).String(),
		},
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if s.cfg.API.MaxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.API.MaxBodyBytes)
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Statements) == 0 {
		writeError(w, http.StatusBadRequest, "statements are required")
		return
	}
	if req.Language == "" {
		req.Language = models.Language(s.cfg.Engine.Language)
	}

	report, err := s.engine.Run(r.Context(), req.Statements, req.RunOptions)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: report})
	case errors.Is(err, models.ErrStructural):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, "analysis timed out")
	case errors.Is(err, context.Canceled):
		writeError(w, http.StatusServiceUnavailable, "analysis cancelled")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	cat := s.engine.Catalog()
	defs := cat.List()

	if c := r.URL.Query().Get("category"); c != "" {
		category := models.Category(c)
		if !category.Valid() {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown category: %s", c))
			return
		}
		defs = cat.ByCategory(category)
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    CatalogResponse{Count: len(defs), Analyses: defs},
	})
}

func (s *Server) handleCatalogEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	def, err := s.engine.Catalog().Get(id)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownAnalysis) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: def})
}

func (s *Server) handleResolveBenchmark(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	key := benchmark.Key{
		Sector:      q.Get("sector"),
		LegalEntity: q.Get("legal_entity"),
		Level:       q.Get("level"),
	}
	if key.Level == "" && len(s.cfg.Engine.ComparisonLevels) > 0 {
		key.Level = s.cfg.Engine.ComparisonLevels[0]
	}

	set, err := s.engine.Resolver().Resolve(r.Context(), key)
	if err != nil {
		if errors.Is(err, benchmark.ErrUnresolvable) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: set})
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxReportListLimit)
	}

	reports, err := s.store.ListReports(r.Context(), r.URL.Query().Get("company"), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: reports})
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	report, err := s.store.LoadReport(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("report %s not found", id))
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: report})
}
