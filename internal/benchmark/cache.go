package benchmark

import (
	"context"
	"errors"
	"time"

	"github.com/seenimoa/finscope/internal/infra"
)

// CachedProvider memoizes another provider's answers, misses included, for
// a fixed TTL.
type CachedProvider struct {
	next  Provider
	cache *infra.Cache[*Set]
}

// NewCachedProvider wraps next with a TTL cache.
func NewCachedProvider(next Provider, ttl time.Duration) *CachedProvider {
	return &CachedProvider{next: next, cache: infra.NewCache[*Set](ttl)}
}

// Table implements Provider. Errors other than ErrNotFound are not cached.
func (c *CachedProvider) Table(ctx context.Context, key Key) (*Set, error) {
	k := key.Normalize().String()
	if set, ok := c.cache.Get(k); ok {
		if set == nil {
			return nil, ErrNotFound
		}
		return set, nil
	}

	set, err := c.next.Table(ctx, key)
	switch {
	case err == nil:
		c.cache.Set(k, set)
	case errors.Is(err, ErrNotFound):
		c.cache.Set(k, nil)
	}
	return set, err
}

// Invalidate drops every cached answer.
func (c *CachedProvider) Invalidate() { c.cache.Flush() }
