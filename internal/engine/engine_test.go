package engine

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seenimoa/finscope/internal/benchmark"
	"github.com/seenimoa/finscope/internal/catalog"
	"github.com/seenimoa/finscope/internal/logger"
	"github.com/seenimoa/finscope/pkg/models"
)

var fixedTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	base := []Option{
		WithClock(func() time.Time { return fixedTime }),
		WithIDGenerator(func() string { return "run-1" }),
		WithLogger(logger.Discard()),
	}
	e, err := New(DefaultConfig(), append(base, opts...)...)
	require.NoError(t, err)
	return e
}

func staticResolver(entries map[string]benchmark.Entry) Resolver {
	set := &benchmark.Set{
		Key:     benchmark.Key{Sector: "manufacturing", LegalEntity: "jsc", Level: "local"},
		Entries: entries,
	}
	return benchmark.NewResolver(benchmark.NewStaticProvider(set))
}

var mfg = RunOptions{Sector: "manufacturing", LegalEntity: "jsc", ComparisonLevel: "local"}

// ── Full runs ──

func TestRunFullCatalog(t *testing.T) {
	report, err := newEngine(t).Run(context.Background(), sampleStatements(), mfg)
	require.NoError(t, err)

	m := report.Meta
	assert.Equal(t, 181, m.Attempted)
	assert.Equal(t, m.Attempted, m.Succeeded+m.Skipped+m.Failed)
	assert.Zero(t, m.Failed)
	assert.Positive(t, m.Succeeded)
	assert.Equal(t, []int{2022, 2023, 2024}, m.Years)
	assert.Equal(t, "ACME", m.Company)
	assert.Equal(t, fixedTime, m.GeneratedAt)
	assert.Equal(t, models.English, m.Language)
	assert.Len(t, report.Categories, 4)
	assert.Len(t, report.Outcomes, 181)

	for i, def := range catalog.MustDefault().List() {
		o := report.Outcomes[i]
		require.Equal(t, def.ID, o.ID, "outcomes follow catalog order")
		switch o.Status {
		case models.StatusSucceeded:
			assert.NotNil(t, o.Evaluation, o.ID)
		case models.StatusSkipped:
			assert.Nil(t, o.Evaluation, o.ID)
			assert.NotEmpty(t, o.SkipReason, o.ID)
		default:
			t.Errorf("%s: unexpected status %s", o.ID, o.Status)
		}
	}
}

func TestRunDeterministic(t *testing.T) {
	stmts := sampleStatements()

	var encoded [][]byte
	for _, workers := range []int{1, 4, 32} {
		cfg := DefaultConfig()
		cfg.Workers = workers
		e, err := New(cfg,
			WithClock(func() time.Time { return fixedTime }),
			WithIDGenerator(func() string { return "run-1" }),
			WithLogger(logger.Discard()),
		)
		require.NoError(t, err)

		for range 2 {
			report, err := e.Run(context.Background(), stmts, mfg)
			require.NoError(t, err)
			b, err := json.Marshal(report)
			require.NoError(t, err)
			encoded = append(encoded, b)
		}
	}
	for i := 1; i < len(encoded); i++ {
		assert.Equal(t, string(encoded[0]), string(encoded[i]), "run %d differs", i)
	}
}

func TestRunNoEvaluationForNotApplicable(t *testing.T) {
	stmts := sampleStatements()
	// drop inventory from the latest year
	for i := range stmts {
		if stmts[i].FiscalYear == 2024 && stmts[i].Kind == models.BalanceSheet {
			delete(stmts[i].Items, models.KeyInventory)
		}
	}
	report, err := newEngine(t).Run(context.Background(), stmts, mfg)
	require.NoError(t, err)

	for _, o := range report.Outcomes {
		if o.Computed.Kind == models.ResultNotApplicable {
			assert.Nil(t, o.Evaluation, o.ID)
			assert.Equal(t, models.StatusSkipped, o.Status, o.ID)
		}
	}
	for _, id := range []string{"ratio.quick", "ratio.inventory_turnover"} {
		o, ok := report.Outcome(id)
		require.True(t, ok)
		assert.Equal(t, "missing:inventory", o.SkipReason, id)
	}
	_, charted := report.ChartPoints()["ratio.quick"]
	assert.False(t, charted)
}

func TestRunYearsCount(t *testing.T) {
	opts := mfg
	opts.YearsCount = 2
	report, err := newEngine(t).Run(context.Background(), sampleStatements(), opts)
	require.NoError(t, err)
	assert.Equal(t, []int{2023, 2024}, report.Meta.Years)
}

func TestRunSubsetSelection(t *testing.T) {
	opts := mfg
	opts.Analyses = []string{"ratio.debt", "ratio.current"}
	report, err := newEngine(t).Run(context.Background(), sampleStatements(), opts)
	require.NoError(t, err)

	require.Len(t, report.Outcomes, 2)
	assert.Equal(t, "ratio.current", report.Outcomes[0].ID)
	assert.Equal(t, 2, report.Meta.Attempted)
	require.Len(t, report.Categories, 1)
	assert.Equal(t, models.CategoryClassical, report.Categories[0].Category)
}

// ── Scenarios ──

func TestScenarioCurrentRatioAgainstBenchmark(t *testing.T) {
	e := newEngine(t, WithResolver(staticResolver(map[string]benchmark.Entry{
		"ratio.current": {Average: 1.2},
	})))
	opts := mfg
	opts.Analyses = []string{"ratio.current"}

	report, err := e.Run(context.Background(), currentRatioStatements(150, 100, nil), opts)
	require.NoError(t, err)

	o, ok := report.Outcome("ratio.current")
	require.True(t, ok)
	require.NotNil(t, o.Evaluation)
	assert.Equal(t, 1.5, o.Evaluation.Value)
	assert.Equal(t, models.Higher, o.Evaluation.Comparison)
	assert.Equal(t, 25.0, o.Evaluation.PercentDifference)
	assert.Equal(t, models.TierExcellent, o.Evaluation.Tier)
	assert.False(t, report.Meta.LowConfidence)
	assert.Equal(t, models.ChartPoint{Value: 1.5, Benchmark: 1.2, Tier: models.TierExcellent}, report.ChartPoints()["ratio.current"])
}

func TestScenarioMissingInventory(t *testing.T) {
	opts := mfg
	opts.Analyses = []string{"ratio.quick"}
	report, err := newEngine(t).Run(context.Background(), currentRatioStatements(150, 100, nil), opts)
	require.NoError(t, err)

	o, _ := report.Outcome("ratio.quick")
	assert.Equal(t, models.StatusSkipped, o.Status)
	assert.Equal(t, "missing:inventory", o.SkipReason)
	assert.Equal(t, models.NotApplicable("ratio.quick", "missing:inventory"), o.Computed)
	assert.Nil(t, o.Evaluation)
	assert.Equal(t, 1, report.Meta.Skipped)
}

func TestScenarioZeroBenchmark(t *testing.T) {
	e := newEngine(t, WithResolver(staticResolver(map[string]benchmark.Entry{
		"ratio.current": {Average: 0},
		"ratio.debt":    {Average: 0.5},
	})))
	opts := mfg
	opts.Analyses = []string{"ratio.current", "ratio.debt"}
	stmts := currentRatioStatements(150, 100, map[string]float64{
		models.KeyTotalLiabilities: 40, models.KeyTotalAssets: 100,
	})

	report, err := e.Run(context.Background(), stmts, opts)
	require.NoError(t, err)

	cur, _ := report.Outcome("ratio.current")
	assert.Equal(t, "benchmark:zero", cur.SkipReason)
	assert.Nil(t, cur.Evaluation)
	assert.Equal(t, models.ResultNumeric, cur.Computed.Kind, "the value itself was computed")

	debt, _ := report.Outcome("ratio.debt")
	assert.Equal(t, models.StatusSucceeded, debt.Status)
	assert.Equal(t, 1, report.Meta.Succeeded)
	assert.Equal(t, 1, report.Meta.Skipped)
}

func TestScenarioOneAnalysisPanics(t *testing.T) {
	stmts := sampleStatements()
	baseline, err := newEngine(t).Run(context.Background(), stmts, mfg)
	require.NoError(t, err)

	defs := catalog.MustDefault().List()
	const broken = 42
	defs[broken].Formula = func(catalog.Window) float64 { panic("unexpected input shape") }
	cat, err := catalog.New(defs...)
	require.NoError(t, err)

	report, err := newEngine(t, WithCatalog(cat)).Run(context.Background(), stmts, mfg)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Meta.Failed)
	assert.Equal(t, 181, report.Meta.Attempted)
	assert.Equal(t, report.Meta.Attempted, report.Meta.Succeeded+report.Meta.Skipped+report.Meta.Failed)

	for i, o := range report.Outcomes {
		if i == broken {
			assert.Equal(t, models.StatusFailed, o.Status)
			require.NotNil(t, o.Error)
			assert.Equal(t, models.ErrorPanic, o.Error.Kind)
			assert.Equal(t, defs[broken].ID, o.Error.ID)
			assert.Nil(t, o.Evaluation)
			continue
		}
		assert.Equal(t, baseline.Outcomes[i], o, o.ID)
	}
}

func TestRuntimeErrorIsComputationError(t *testing.T) {
	def := catalog.Definition{
		ID: "ratio.broken", Category: models.CategoryClassical, Inputs: []string{models.KeyCurrentAssets},
		Direction: models.HigherIsBetter, Scope: catalog.ScopePoint,
		Formula: func(w catalog.Window) float64 {
			return w.Series(models.KeyCurrentAssets)[5]
		},
	}
	cat, err := catalog.New(def)
	require.NoError(t, err)

	report, err := newEngine(t, WithCatalog(cat)).Run(context.Background(), currentRatioStatements(1, 1, nil), mfg)
	require.NoError(t, err)

	o := report.Outcomes[0]
	require.NotNil(t, o.Error)
	assert.Equal(t, models.ErrorComputation, o.Error.Kind)
	assert.Equal(t, models.ResultError, o.Computed.Kind)
}

// ── Benchmarks ──

func TestRunFallsBackToDefaultBenchmark(t *testing.T) {
	opts := RunOptions{Sector: "shipbuilding", LegalEntity: "llc", ComparisonLevel: "local"}
	report, err := newEngine(t).Run(context.Background(), sampleStatements(), opts)
	require.NoError(t, err)

	assert.True(t, report.Meta.LowConfidence)
	assert.Equal(t, string(benchmark.StageDefault), report.Meta.BenchmarkSource)
	for _, ev := range report.Evaluations() {
		assert.True(t, ev.LowConfidence, ev.ID)
	}
}

func TestRunDefaultBenchmarkScoresCatalog(t *testing.T) {
	opts := RunOptions{Sector: "shipbuilding", LegalEntity: "llc", ComparisonLevel: "local"}
	report, err := newEngine(t).Run(context.Background(), sampleStatements(), opts)
	require.NoError(t, err)

	var scaled int
	for _, o := range report.Outcomes {
		if o.Status != models.StatusSkipped {
			continue
		}
		assert.True(t, benchmark.ScaleDependent(o.ID), "%s skipped: %s", o.ID, o.SkipReason)
		assert.Equal(t, "benchmark:missing", o.SkipReason, o.ID)
		scaled++
	}
	assert.Equal(t, report.Meta.Attempted-scaled, report.Meta.Succeeded)
	assert.Greater(t, report.Meta.Succeeded, 170)
}

func TestRunPartialTableFallsThroughToDefault(t *testing.T) {
	e := newEngine(t, WithResolver(staticResolver(map[string]benchmark.Entry{
		"ratio.current": {Average: 1.2},
	})))
	opts := mfg
	opts.Analyses = []string{"ratio.current", "ratio.debt"}
	report, err := e.Run(context.Background(), sampleStatements(), opts)
	require.NoError(t, err)

	assert.Equal(t, string(benchmark.StageExact), report.Meta.BenchmarkSource)
	assert.Equal(t, 2, report.Meta.Succeeded)

	cur, _ := report.Outcome("ratio.current")
	require.NotNil(t, cur.Evaluation)
	assert.False(t, cur.Evaluation.LowConfidence)

	debt, _ := report.Outcome("ratio.debt")
	require.NotNil(t, debt.Evaluation)
	assert.True(t, debt.Evaluation.LowConfidence)
	assert.Equal(t, 0.5, debt.Evaluation.Average)
}

type nilResolver struct{}

func (nilResolver) Resolve(context.Context, benchmark.Key) (*benchmark.Set, error) { return nil, nil }

func TestRunNilBenchmarkSetIsStructural(t *testing.T) {
	var last State
	e := newEngine(t, WithResolver(nilResolver{}), WithStateHook(func(_ string, _, to State) { last = to }))
	report, err := e.Run(context.Background(), sampleStatements(), mfg)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, models.ErrStructural)
	assert.ErrorIs(t, err, benchmark.ErrUnresolvable)
	assert.Equal(t, StateFailed, last)
}

type countingResolver struct {
	calls atomic.Int32
	next  Resolver
}

func (c *countingResolver) Resolve(ctx context.Context, k benchmark.Key) (*benchmark.Set, error) {
	c.calls.Add(1)
	return c.next.Resolve(ctx, k)
}

func TestBenchmarksResolvedOncePerRun(t *testing.T) {
	r := &countingResolver{next: benchmark.NewResolver(nil)}
	_, err := newEngine(t, WithResolver(r)).Run(context.Background(), sampleStatements(), mfg)
	require.NoError(t, err)
	assert.Equal(t, int32(1), r.calls.Load())
}

// ── Structural failures ──

func TestRunStructuralErrors(t *testing.T) {
	tests := []struct {
		name  string
		stmts []models.FinancialStatement
		opts  RunOptions
		is    error
	}{
		{"empty statements", nil, mfg, nil},
		{"unsorted", append(currentRatioStatements(1, 1, nil), models.FinancialStatement{
			Company: "ACME", FiscalYear: 2020, Kind: models.BalanceSheet, Items: models.LineItems{},
		}), mfg, nil},
		{"unknown analysis", sampleStatements(), RunOptions{Sector: "x", Analyses: []string{"ratio.nope"}}, catalog.ErrUnknownAnalysis},
		{"blank sector", sampleStatements(), RunOptions{}, benchmark.ErrUnresolvable},
		{"language", sampleStatements(), RunOptions{Sector: "x", Language: "fr"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var states []State
			var mu sync.Mutex
			hook := func(_ string, _, to State) {
				mu.Lock()
				states = append(states, to)
				mu.Unlock()
			}
			report, err := newEngine(t, WithStateHook(hook)).Run(context.Background(), tt.stmts, tt.opts)
			assert.Nil(t, report)
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrStructural)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
			assert.Equal(t, StateFailed, states[len(states)-1])
			assert.NotContains(t, states, StateComputing)
		})
	}
}

// ── Lifecycle ──

func TestStateTransitions(t *testing.T) {
	var got []State
	hook := func(id string, from, to State) {
		assert.Equal(t, "run-1", id)
		got = append(got, to)
	}
	_, err := newEngine(t, WithStateHook(hook)).Run(context.Background(), sampleStatements(), mfg)
	require.NoError(t, err)
	assert.Equal(t, []State{StateResolvingBenchmarks, StateComputing, StateAggregating, StateCompleted}, got)
}

func TestStateCanTransition(t *testing.T) {
	assert.True(t, StateValidating.CanTransition(StateFailed))
	assert.True(t, StateResolvingBenchmarks.CanTransition(StateFailed))
	assert.False(t, StateComputing.CanTransition(StateFailed))
	assert.False(t, StateCompleted.CanTransition(StateValidating))
	assert.True(t, StateCancelled.Terminal())
}

func TestRunCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report, err := newEngine(t).Run(ctx, sampleStatements(), mfg)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunCancelledDuringComputation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	defs := catalog.MustDefault().List()
	for i := range defs {
		f := defs[i].Formula
		defs[i].Formula = func(w catalog.Window) float64 {
			calls.Add(1)
			cancel()
			return f(w)
		}
	}
	cat, err := catalog.New(defs...)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Workers = 1
	var last State
	e, err := New(cfg, WithCatalog(cat), WithLogger(logger.Discard()),
		WithStateHook(func(_ string, _, to State) { last = to }))
	require.NoError(t, err)

	report, err := e.Run(ctx, sampleStatements(), mfg)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, int(calls.Load()), 20, "no new tasks start after cancellation")
	assert.Equal(t, StateCancelled, last)
}

// ── Sink ──

type recordingSink struct {
	mu      sync.Mutex
	reports []*models.AnalysisReport
	err     error
}

func (s *recordingSink) SaveReport(_ context.Context, r *models.AnalysisReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, r)
	return s.err
}

func TestSinkReceivesReport(t *testing.T) {
	sink := &recordingSink{}
	report, err := newEngine(t, WithSink(sink)).Run(context.Background(), sampleStatements(), mfg)
	require.NoError(t, err)
	require.Len(t, sink.reports, 1)
	assert.Same(t, report, sink.reports[0])
}

func TestSinkFailureDoesNotFailRun(t *testing.T) {
	sink := &recordingSink{err: errors.New("database unavailable")}
	report, err := newEngine(t, WithSink(sink)).Run(context.Background(), sampleStatements(), mfg)
	require.NoError(t, err)
	assert.NotNil(t, report)
}

func TestNewRejectsInvalidPolicy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy.ExcellentAt = 0
	_, err := New(cfg)
	assert.Error(t, err)
}
