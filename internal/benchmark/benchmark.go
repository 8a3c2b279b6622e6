// Package benchmark resolves industry reference tables for a peer group and
// exposes the providers those tables come from.
package benchmark

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Wildcards used by the sector-only stage.
const (
	AnyEntity   = "*"
	GlobalLevel = "global"
)

var (
	// ErrNotFound is returned by a Provider that has no table for a key.
	ErrNotFound = errors.New("benchmark table not found")
	// ErrUnresolvable is returned when a key cannot identify a peer group.
	ErrUnresolvable = errors.New("benchmark key unresolvable")
)

// Key identifies a peer group.
type Key struct {
	Sector      string `json:"sector" yaml:"sector"`
	LegalEntity string `json:"legal_entity" yaml:"legal_entity"`
	Level       string `json:"level" yaml:"level"`
}

// Normalize lower-cases and trims every component.
func (k Key) Normalize() Key {
	norm := func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
	return Key{Sector: norm(k.Sector), LegalEntity: norm(k.LegalEntity), Level: norm(k.Level)}
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Sector, k.LegalEntity, k.Level)
}

// Entry is the reference data for one analysis id. Fallback marks an entry
// filled from the default table because the resolved table lacked the id.
type Entry struct {
	Average      float64   `json:"average" yaml:"average"`
	PeerCount    int       `json:"peer_count,omitempty" yaml:"peer_count"`
	Distribution []float64 `json:"distribution,omitempty" yaml:"distribution"`
	Fallback     bool      `json:"fallback,omitempty" yaml:"-"`
}

// Stage names the resolution strategy that produced a Set.
type Stage string

const (
	StageExact   Stage = "exact"
	StageCoarser Stage = "coarser"
	StageSector  Stage = "sector"
	StageDefault Stage = "default"
)

// Set is a resolved benchmark table. It is read-only once returned by a
// Resolver and is shared by every analysis of a run.
type Set struct {
	Key           Key              `json:"key"`
	Source        Stage            `json:"source"`
	LowConfidence bool             `json:"low_confidence"`
	Entries       map[string]Entry `json:"entries"`
}

// Lookup returns the entry for an analysis id.
func (s *Set) Lookup(id string) (Entry, bool) {
	if s == nil {
		return Entry{}, false
	}
	e, ok := s.Entries[id]
	return e, ok
}

// Len returns the number of analysis ids covered.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Entries)
}

// Provider supplies benchmark tables keyed by peer group.
type Provider interface {
	Table(ctx context.Context, key Key) (*Set, error)
}
