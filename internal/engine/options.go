package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/seenimoa/finscope/internal/benchmark"
	"github.com/seenimoa/finscope/internal/catalog"
	"github.com/seenimoa/finscope/pkg/models"
)

// Resolver resolves a peer group to a benchmark set.
type Resolver interface {
	Resolve(ctx context.Context, key benchmark.Key) (*benchmark.Set, error)
}

// ReportSink receives every completed report.
type ReportSink interface {
	SaveReport(ctx context.Context, report *models.AnalysisReport) error
}

// StateHook observes state transitions of a run.
type StateHook func(runID string, from, to State)

// Option configures an Engine.
type Option func(*Engine)

// WithCatalog replaces the default catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(e *Engine) { e.catalog = c }
}

// WithResolver sets the benchmark resolver.
func WithResolver(r Resolver) Option {
	return func(e *Engine) { e.resolver = r }
}

// WithSink sets the destination for completed reports.
func WithSink(s ReportSink) Option {
	return func(e *Engine) { e.sink = s }
}

// WithClock sets the time source for report timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDGenerator sets the run id generator.
func WithIDGenerator(gen func() string) Option {
	return func(e *Engine) { e.newID = gen }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithStateHook registers a transition observer.
func WithStateHook(h StateHook) Option {
	return func(e *Engine) { e.hook = h }
}
