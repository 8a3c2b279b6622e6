// Package engine drives an analysis run: it validates the statements,
// resolves benchmarks once, fans the selected analyses out over a bounded
// worker pool and aggregates the joined results into a report.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/seenimoa/finscope/internal/aggregate"
	"github.com/seenimoa/finscope/internal/benchmark"
	"github.com/seenimoa/finscope/internal/catalog"
	"github.com/seenimoa/finscope/internal/compute"
	"github.com/seenimoa/finscope/internal/evaluate"
	"github.com/seenimoa/finscope/internal/logger"
	"github.com/seenimoa/finscope/pkg/models"
)

// Config tunes the engine.
type Config struct {
	Workers int
	TopK    int
	Policy  evaluate.Policy
}

// DefaultConfig returns eight workers, three strengths and weaknesses per
// category and the default banding policy.
func DefaultConfig() Config {
	return Config{Workers: 8, TopK: aggregate.DefaultTopK, Policy: evaluate.DefaultPolicy()}
}

// RunOptions are the per-run inputs besides the statements.
type RunOptions struct {
	Sector          string          `json:"sector"`
	LegalEntity     string          `json:"legal_entity"`
	ComparisonLevel string          `json:"comparison_level"`
	YearsCount      int             `json:"years_count,omitempty"`
	Analyses        []string        `json:"analyses,omitempty"`
	Language        models.Language `json:"language,omitempty"`
}

// Engine runs analyses. It is safe for concurrent runs.
type Engine struct {
	cfg       Config
	catalog   *catalog.Catalog
	resolver  Resolver
	computer  *compute.Computer
	evaluator *evaluate.Evaluator
	sink      ReportSink
	now       func() time.Time
	newID     func() string
	logger    *slog.Logger
	hook      StateHook
}

// New creates an Engine. Without WithResolver every run is benchmarked
// against the built-in default table.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.TopK <= 0 {
		cfg.TopK = aggregate.DefaultTopK
	}
	if err := cfg.Policy.Validate(); err != nil {
		return nil, fmt.Errorf("engine policy: %w", err)
	}

	e := &Engine{
		cfg:       cfg,
		computer:  compute.NewComputer(),
		evaluator: evaluate.New(cfg.Policy),
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
		logger:    slog.Default(),
	}
	for _, o := range opts {
		o(e)
	}
	if e.catalog == nil {
		c, err := catalog.Default()
		if err != nil {
			return nil, err
		}
		e.catalog = c
	}
	if e.resolver == nil {
		e.resolver = benchmark.NewResolver(nil, benchmark.WithLogger(e.logger))
	}
	return e, nil
}

// Catalog returns the catalog the engine runs.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// Resolver returns the benchmark resolver in use.
func (e *Engine) Resolver() Resolver { return e.resolver }

type run struct {
	id     string
	state  State
	engine *Engine
	log    *slog.Logger
}

func (r *run) transition(to State) {
	from := r.state
	if !from.CanTransition(to) {
		r.log.Error("invalid state transition", "from", from, "to", to)
		return
	}
	r.state = to
	r.log.Debug("state transition", "from", from, "to", to)
	if r.engine.hook != nil {
		r.engine.hook(r.id, from, to)
	}
}

// Run analyzes statements and returns the report. Only structural errors
// (errors.Is(err, models.ErrStructural)) and context errors are returned;
// per-analysis problems are recorded in the report.
func (e *Engine) Run(ctx context.Context, stmts []models.FinancialStatement, opts RunOptions) (report *models.AnalysisReport, err error) {
	r := &run{id: e.newID(), state: StateValidating, engine: e}
	r.log = e.logger.With("run_id", r.id)

	ctx, span := logger.StartSpan(ctx, "engine.run", attribute.String("run_id", r.id))
	defer func() { logger.EndSpan(span, err) }()

	fail := func(err error) (*models.AnalysisReport, error) {
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			r.transition(StateCancelled)
		} else {
			r.transition(StateFailed)
		}
		r.log.Warn("run failed", "state", r.state, "error", err)
		return nil, err
	}

	// Validating
	if err := ctx.Err(); err != nil {
		return fail(err)
	}
	if err := compute.ValidateStatements(stmts); err != nil {
		return fail(err)
	}
	defs, err := e.catalog.Select(opts.Analyses)
	if err != nil {
		return fail(models.NewStructuralError(string(StateValidating), "analysis selection", err))
	}
	lang := opts.Language
	switch lang {
	case "":
		lang = models.English
	case models.English, models.Arabic:
	default:
		return fail(models.NewStructuralError(string(StateValidating), fmt.Sprintf("unsupported language %q", lang), nil))
	}
	periods := compute.BuildPeriods(stmts, opts.YearsCount)

	// Resolving benchmarks
	r.transition(StateResolvingBenchmarks)
	key := benchmark.Key{Sector: opts.Sector, LegalEntity: opts.LegalEntity, Level: opts.ComparisonLevel}
	rctx, rspan := logger.StartSpan(ctx, "engine.resolve")
	set, err := e.resolver.Resolve(rctx, key)
	logger.EndSpan(rspan, err)
	if err != nil {
		if ctx.Err() != nil {
			return fail(ctx.Err())
		}
		return fail(models.NewStructuralError(string(StateResolvingBenchmarks), "benchmark resolution", err))
	}
	if set == nil {
		return fail(models.NewStructuralError(string(StateResolvingBenchmarks), "benchmark resolution",
			fmt.Errorf("resolver returned no set for %s: %w", key.Normalize(), benchmark.ErrUnresolvable)))
	}
	if set.LowConfidence {
		r.log.Info("benchmark degraded", "requested", key.Normalize().String(), "resolved", set.Key.String(), "stage", set.Source)
	}

	// Computing
	r.transition(StateComputing)
	cctx, cspan := logger.StartSpan(ctx, "engine.compute", attribute.Int("analyses", len(defs)))
	outcomes := e.fanOut(cctx, defs, periods, set)
	logger.EndSpan(cspan, ctx.Err())
	if err := ctx.Err(); err != nil {
		r.transition(StateCancelled)
		r.log.Warn("run cancelled, result discarded", "error", err)
		return nil, err
	}

	// Aggregating
	r.transition(StateAggregating)
	exec, categories := aggregate.Aggregate(outcomes, e.cfg.TopK)

	years := make([]int, len(periods))
	for i, p := range periods {
		years[i] = p.Year
	}
	meta := models.RunMeta{
		RunID:           r.id,
		Company:         stmts[0].Company,
		GeneratedAt:     e.now(),
		Sector:          opts.Sector,
		LegalEntity:     opts.LegalEntity,
		ComparisonLevel: opts.ComparisonLevel,
		Language:        lang,
		Years:           years,
		BenchmarkKey:    set.Key.String(),
		BenchmarkSource: string(set.Source),
		LowConfidence:   set.LowConfidence,
		Attempted:       len(outcomes),
	}
	for _, o := range outcomes {
		switch o.Status {
		case models.StatusSucceeded:
			meta.Succeeded++
		case models.StatusSkipped:
			meta.Skipped++
		case models.StatusFailed:
			meta.Failed++
		}
	}

	report = &models.AnalysisReport{
		Meta:       meta,
		Executive:  exec,
		Categories: categories,
		Outcomes:   outcomes,
	}
	r.transition(StateCompleted)
	r.log.Info("run completed",
		"company", meta.Company,
		"attempted", meta.Attempted,
		"succeeded", meta.Succeeded,
		"skipped", meta.Skipped,
		"failed", meta.Failed,
		"benchmark", meta.BenchmarkSource,
	)

	if e.sink != nil {
		if err := e.sink.SaveReport(ctx, report); err != nil {
			r.log.Error("report sink failed", "error", err)
		}
	}
	return report, nil
}

// fanOut runs one task per definition on a bounded pool. Each task writes
// only its own slot. Once ctx is done no new task starts; running tasks
// finish.
func (e *Engine) fanOut(ctx context.Context, defs []catalog.Definition, periods []catalog.Period, set *benchmark.Set) []models.AnalysisOutcome {
	outcomes := make([]models.AnalysisOutcome, len(defs))

	var g errgroup.Group
	g.SetLimit(e.cfg.Workers)
	for i, def := range defs {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			outcomes[i] = e.analyze(def, periods, set)
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

// analyze computes and evaluates one definition. A panic inside the
// formula becomes a failed outcome for that id only.
func (e *Engine) analyze(def catalog.Definition, periods []catalog.Period, set *benchmark.Set) (out models.AnalysisOutcome) {
	out = models.AnalysisOutcome{ID: def.ID, Category: def.Category, Name: def.Name}

	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		kind, msg := models.ErrorPanic, fmt.Sprint(rec)
		if err, ok := rec.(error); ok {
			kind, msg = models.ErrorComputation, err.Error()
		}
		failed := models.Failed(def.ID, kind, msg)
		out.Status = models.StatusFailed
		out.Computed = failed
		out.Evaluation = nil
		out.SkipReason = ""
		out.Error = failed.Error
		e.logger.Warn("analysis failed", "analysis", def.ID, "kind", kind, "error", msg)
	}()

	out.Computed = e.computer.Compute(def, periods)
	if out.Computed.Kind != models.ResultNumeric {
		out.Status = models.StatusSkipped
		out.SkipReason = out.Computed.Reason
		return out
	}

	eval, reason := e.evaluator.Evaluate(def, out.Computed, set)
	if eval == nil {
		out.Status = models.StatusSkipped
		out.SkipReason = reason
		return out
	}
	out.Status = models.StatusSucceeded
	out.Evaluation = eval
	return out
}
