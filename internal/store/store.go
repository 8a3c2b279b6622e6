// Package store persists completed analysis reports.
package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/seenimoa/finscope/pkg/models"
)

// ErrNotFound is returned when no report exists for a run id.
var ErrNotFound = errors.New("report not found")

// Summary is the listing entry for a stored report.
type Summary struct {
	RunID       string      `json:"run_id"`
	Company     string      `json:"company"`
	Sector      string      `json:"sector"`
	Performance models.Tier `json:"performance,omitempty"`
	GeneratedAt time.Time   `json:"generated_at"`
}

// Store saves and loads reports by run id.
type Store interface {
	SaveReport(ctx context.Context, report *models.AnalysisReport) error
	LoadReport(ctx context.Context, runID string) (*models.AnalysisReport, error)
	ListReports(ctx context.Context, company string, limit int) ([]Summary, error)
	Close()
}

func summarize(r *models.AnalysisReport) Summary {
	return Summary{
		RunID:       r.Meta.RunID,
		Company:     r.Meta.Company,
		Sector:      r.Meta.Sector,
		Performance: r.Executive.Performance,
		GeneratedAt: r.Meta.GeneratedAt,
	}
}

// MemoryStore keeps reports in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	reports map[string]*models.AnalysisReport
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{reports: make(map[string]*models.AnalysisReport)}
}

// SaveReport stores report, replacing any report with the same run id.
func (s *MemoryStore) SaveReport(_ context.Context, report *models.AnalysisReport) error {
	if report == nil || report.Meta.RunID == "" {
		return errors.New("store: report without run id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[report.Meta.RunID] = report
	return nil
}

// LoadReport returns the report saved under runID.
func (s *MemoryStore) LoadReport(_ context.Context, runID string) (*models.AnalysisReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reports[runID]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

// ListReports returns the newest reports first, optionally filtered by
// company. A limit of zero or less returns every match.
func (s *MemoryStore) ListReports(_ context.Context, company string, limit int) ([]Summary, error) {
	s.mu.RLock()
	out := make([]Summary, 0, len(s.reports))
	for _, r := range s.reports {
		if company != "" && r.Meta.Company != company {
			continue
		}
		out = append(out, summarize(r))
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].GeneratedAt.Equal(out[j].GeneratedAt) {
			return out[i].GeneratedAt.After(out[j].GeneratedAt)
		}
		return out[i].RunID < out[j].RunID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Len returns the number of stored reports.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reports)
}

// Close is a no-op.
func (s *MemoryStore) Close() {}
