package benchmark

import (
	"context"
	"fmt"
	"sync"
)

// StaticProvider serves tables held in memory.
type StaticProvider struct {
	mu     sync.RWMutex
	tables map[Key]*Set
}

// NewStaticProvider indexes sets by their normalized key.
func NewStaticProvider(sets ...*Set) *StaticProvider {
	p := &StaticProvider{tables: make(map[Key]*Set, len(sets))}
	for _, s := range sets {
		p.Put(s)
	}
	return p
}

// Put adds or replaces a table.
func (p *StaticProvider) Put(s *Set) {
	p.mu.Lock()
	p.tables[s.Key.Normalize()] = s
	p.mu.Unlock()
}

// Len returns the number of stored tables.
func (p *StaticProvider) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.tables)
}

// Table implements Provider.
func (p *StaticProvider) Table(_ context.Context, key Key) (*Set, error) {
	p.mu.RLock()
	s, ok := p.tables[key.Normalize()]
	p.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	return s, nil
}
