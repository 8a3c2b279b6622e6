// Package catalog holds the fixed registry of analysis definitions.
//
// The catalog is built once at startup, validated, and then only read. It is
// safe to share across goroutines.
package catalog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/seenimoa/finscope/pkg/models"
)

// ErrUnknownAnalysis is returned when an analysis id is not in the catalog.
var ErrUnknownAnalysis = errors.New("unknown analysis")

// UnknownAnalysisError names the id that could not be found.
type UnknownAnalysisError struct {
	ID string
}

func (e *UnknownAnalysisError) Error() string {
	return fmt.Sprintf("%v: %s", ErrUnknownAnalysis, e.ID)
}

func (e *UnknownAnalysisError) Unwrap() error { return ErrUnknownAnalysis }

// Catalog is an immutable, ordered set of definitions indexed by id.
type Catalog struct {
	defs  []Definition
	index map[string]int
}

// New validates defs and builds a catalog preserving their order.
func New(defs ...Definition) (*Catalog, error) {
	c := &Catalog{
		defs:  make([]Definition, 0, len(defs)),
		index: make(map[string]int, len(defs)),
	}
	for _, d := range defs {
		if err := d.validate(); err != nil {
			return nil, err
		}
		if _, dup := c.index[d.ID]; dup {
			return nil, fmt.Errorf("duplicate analysis id %s", d.ID)
		}
		d = d.clone()
		c.index[d.ID] = len(c.defs)
		c.defs = append(c.defs, d)
	}
	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the process-wide catalog of built-in analyses.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		var defs []Definition
		defs = append(defs, classicalRatios()...)
		defs = append(defs, structuralAnalyses()...)
		defs = append(defs, cashFlowAnalyses()...)
		defs = append(defs, advancedAnalyses()...)
		defaultCatalog, defaultErr = New(defs...)
	})
	return defaultCatalog, defaultErr
}

// MustDefault is Default for program initialization; an invalid built-in
// catalog is a startup failure.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}

// Len returns the number of definitions.
func (c *Catalog) Len() int { return len(c.defs) }

// List returns every definition in catalog order.
func (c *Catalog) List() []Definition {
	out := make([]Definition, len(c.defs))
	for i, d := range c.defs {
		out[i] = d.clone()
	}
	return out
}

// Get returns the definition for id.
func (c *Catalog) Get(id string) (Definition, error) {
	i, ok := c.index[id]
	if !ok {
		return Definition{}, &UnknownAnalysisError{ID: id}
	}
	return c.defs[i].clone(), nil
}

// Position returns the catalog order of id, or -1.
func (c *Catalog) Position(id string) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}

// ByCategory returns the definitions of one category in catalog order.
func (c *Catalog) ByCategory(cat models.Category) []Definition {
	var out []Definition
	for _, d := range c.defs {
		if d.Category == cat {
			out = append(out, d.clone())
		}
	}
	return out
}

// Select returns the definitions for ids in catalog order, ignoring
// duplicates. An empty selection returns the whole catalog.
func (c *Catalog) Select(ids []string) ([]Definition, error) {
	if len(ids) == 0 {
		return c.List(), nil
	}
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := c.index[id]; !ok {
			return nil, &UnknownAnalysisError{ID: id}
		}
		wanted[id] = true
	}
	out := make([]Definition, 0, len(wanted))
	for _, d := range c.defs {
		if wanted[d.ID] {
			out = append(out, d.clone())
		}
	}
	return out, nil
}
