package catalog

import (
	"fmt"
	"slices"

	"github.com/seenimoa/finscope/pkg/models"
)

// Scope describes which years an analysis needs.
type Scope string

const (
	// ScopePoint needs the evaluated year only. It is evaluated for every
	// year with complete inputs; the latest year is mandatory.
	ScopePoint Scope = "point"
	// ScopeChange needs the evaluated year and the year before it.
	ScopeChange Scope = "change"
	// ScopeTrend needs every year of the window and is evaluated once.
	ScopeTrend Scope = "trend"
)

// Formula computes a metric from a statement window. Non-finite results
// are reported as undefined by the computer, so formulas divide freely.
type Formula func(w Window) float64

// Definition describes one analysis in the catalog. Definitions are values
// and are never modified after the catalog is built.
type Definition struct {
	ID        string           `json:"id"`
	Category  models.Category  `json:"category"`
	Name      models.Label     `json:"name"`
	Inputs    []string         `json:"inputs"`
	Direction models.Direction `json:"direction"`
	Scope     Scope            `json:"scope"`
	MinYears  int              `json:"min_years,omitempty"`
	Formula   Formula          `json:"-"`
}

// RequiredYears returns the minimum window length the definition needs.
func (d Definition) RequiredYears() int {
	switch d.Scope {
	case ScopeChange:
		return 2
	case ScopeTrend:
		if d.MinYears > 2 {
			return d.MinYears
		}
		return 2
	}
	return 1
}

// clone returns d with its own copy of Inputs.
func (d Definition) clone() Definition {
	d.Inputs = slices.Clone(d.Inputs)
	return d
}

func (d Definition) validate() error {
	if d.ID == "" {
		return fmt.Errorf("definition with empty id")
	}
	if !d.Category.Valid() {
		return fmt.Errorf("definition %s: unknown category %q", d.ID, d.Category)
	}
	if len(d.Inputs) == 0 {
		return fmt.Errorf("definition %s: no required inputs", d.ID)
	}
	if d.Formula == nil {
		return fmt.Errorf("definition %s: nil formula", d.ID)
	}
	switch d.Scope {
	case ScopePoint, ScopeChange, ScopeTrend:
	default:
		return fmt.Errorf("definition %s: unknown scope %q", d.ID, d.Scope)
	}
	switch d.Direction {
	case models.HigherIsBetter, models.LowerIsBetter, models.Neutral:
	default:
		return fmt.Errorf("definition %s: unknown direction %q", d.ID, d.Direction)
	}
	return nil
}
