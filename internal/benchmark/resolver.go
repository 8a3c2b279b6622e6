package benchmark

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
)

// DefaultLevels orders comparison levels from finest to coarsest.
var DefaultLevels = []string{"local", "regional", GlobalLevel}

// Strategy is one step of the resolution chain. Candidates lists the keys
// to try, in order, for a requested key.
type Strategy struct {
	Stage      Stage
	Candidates func(Key) []Key
}

// ExactStrategy tries the requested key only.
func ExactStrategy() Strategy {
	return Strategy{Stage: StageExact, Candidates: func(k Key) []Key { return []Key{k} }}
}

// CoarserStrategy tries the same sector and legal entity at each level
// coarser than the requested one. An unknown level tries every level.
func CoarserStrategy(levels []string) Strategy {
	return Strategy{Stage: StageCoarser, Candidates: func(k Key) []Key {
		start := 0
		if i := slices.Index(levels, k.Level); i >= 0 {
			start = i + 1
		}
		var out []Key
		for _, lvl := range levels[start:] {
			if lvl == k.Level {
				continue
			}
			out = append(out, Key{Sector: k.Sector, LegalEntity: k.LegalEntity, Level: lvl})
		}
		return out
	}}
}

// SectorStrategy tries the sector-wide global table.
func SectorStrategy() Strategy {
	return Strategy{Stage: StageSector, Candidates: func(k Key) []Key {
		return []Key{{Sector: k.Sector, LegalEntity: AnyEntity, Level: GlobalLevel}}
	}}
}

// DefaultStrategies returns exact, coarser and sector, in that order.
func DefaultStrategies(levels []string) []Strategy {
	return []Strategy{ExactStrategy(), CoarserStrategy(levels), SectorStrategy()}
}

// Resolver walks an ordered list of strategies against a Provider and
// falls back to a conservative default table.
type Resolver struct {
	provider   Provider
	strategies []Strategy
	fallback   *Set
	logger     *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithStrategies replaces the resolution chain.
func WithStrategies(s ...Strategy) ResolverOption {
	return func(r *Resolver) { r.strategies = s }
}

// WithLevels rebuilds the default chain for a custom level order.
func WithLevels(levels []string) ResolverOption {
	return func(r *Resolver) { r.strategies = DefaultStrategies(levels) }
}

// WithFallback replaces the built-in default table. A nil set is ignored.
func WithFallback(s *Set) ResolverOption {
	return func(r *Resolver) {
		if s != nil {
			r.fallback = s
		}
	}
}

// WithLogger sets the logger used for provider errors.
func WithLogger(l *slog.Logger) ResolverOption {
	return func(r *Resolver) { r.logger = l }
}

// NewResolver creates a Resolver over p. A nil provider resolves every key
// to the default table.
func NewResolver(p Provider, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		provider:   p,
		strategies: DefaultStrategies(DefaultLevels),
		fallback:   DefaultTable(),
		logger:     slog.Default(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Resolve returns the benchmark set for key. Any stage after the exact
// match is flagged low-confidence, as is every entry filled from the
// fallback table. Only a blank sector or a cancelled context fail;
// provider errors are logged and treated as a miss.
func (r *Resolver) Resolve(ctx context.Context, key Key) (*Set, error) {
	key = key.Normalize()
	if key.Sector == "" {
		return nil, fmt.Errorf("resolve %s: blank sector: %w", key, ErrUnresolvable)
	}

	if r.provider != nil {
		for _, s := range r.strategies {
			for _, cand := range s.Candidates(key) {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				set, err := r.provider.Table(ctx, cand)
				switch {
				case err == nil && set != nil:
					return r.resolved(set, cand, s.Stage), nil
				case err == nil, errors.Is(err, ErrNotFound):
				case ctx.Err() != nil:
					return nil, ctx.Err()
				default:
					r.logger.Warn("benchmark provider error", "key", cand.String(), "stage", s.Stage, "error", err)
				}
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.resolved(r.fallback, r.fallback.Key, StageDefault), nil
}

// resolved returns a private copy of set tagged with its stage. Ids the
// table lacks are filled from the fallback table and marked as such.
func (r *Resolver) resolved(set *Set, key Key, stage Stage) *Set {
	entries := maps.Clone(set.Entries)
	if entries == nil {
		entries = make(map[string]Entry)
	}
	if stage != StageDefault {
		for id, e := range r.fallback.Entries {
			if _, ok := entries[id]; !ok {
				e.Fallback = true
				entries[id] = e
			}
		}
	}
	return &Set{
		Key:           key,
		Source:        stage,
		LowConfidence: stage != StageExact,
		Entries:       entries,
	}
}
