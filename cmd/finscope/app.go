package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/seenimoa/finscope/internal/benchmark"
	"github.com/seenimoa/finscope/internal/config"
	"github.com/seenimoa/finscope/internal/engine"
	"github.com/seenimoa/finscope/internal/evaluate"
	"github.com/seenimoa/finscope/internal/store"
)

// policyFromConfig maps the engine section onto an evaluation policy.
func policyFromConfig(c *config.Config) evaluate.Policy {
	t := c.Engine.Tiers
	return evaluate.Policy{
		ExcellentAt:    t.Excellent,
		VeryGoodAt:     t.VeryGood,
		GoodAt:         t.Good,
		AcceptableAt:   t.Acceptable,
		EqualTolerance: c.Engine.EqualTolerance,
	}
}

// buildResolver returns a resolver over the configured benchmark directory,
// or one that always falls back to the default table when none is set.
func buildResolver(c *config.Config) (*benchmark.Resolver, error) {
	opts := []benchmark.ResolverOption{
		benchmark.WithLevels(c.Engine.ComparisonLevels),
		benchmark.WithLogger(slog.Default()),
	}
	if c.Benchmarks.Dir == "" {
		return benchmark.NewResolver(nil, opts...), nil
	}

	files, err := benchmark.NewFileProvider(c.Benchmarks.Dir)
	if err != nil {
		return nil, fmt.Errorf("load benchmarks: %w", err)
	}
	slog.Info("benchmark tables loaded", "dir", c.Benchmarks.Dir, "tables", files.Len())

	var p benchmark.Provider = files
	if c.Benchmarks.CacheTTL > 0 {
		p = benchmark.NewCachedProvider(files, time.Duration(c.Benchmarks.CacheTTL)*time.Second)
	}
	return benchmark.NewResolver(p, opts...), nil
}

// buildStore opens the configured report store.
func buildStore(ctx context.Context, c *config.Config) (store.Store, error) {
	switch c.Store.Driver {
	case "", "memory":
		return store.NewMemoryStore(), nil
	case "postgres":
		return store.NewPostgresStore(ctx, c.Store.DatabaseURL, c.Store.MaxConns)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", c.Store.Driver)
	}
}

// buildEngine wires an engine from configuration. sink may be nil.
func buildEngine(c *config.Config, sink engine.ReportSink) (*engine.Engine, error) {
	resolver, err := buildResolver(c)
	if err != nil {
		return nil, err
	}
	opts := []engine.Option{
		engine.WithResolver(resolver),
		engine.WithLogger(slog.Default()),
	}
	if sink != nil {
		opts = append(opts, engine.WithSink(sink))
	}
	return engine.New(engine.Config{
		Workers: c.Engine.Workers,
		TopK:    c.Engine.TopK,
		Policy:  policyFromConfig(c),
	}, opts...)
}
