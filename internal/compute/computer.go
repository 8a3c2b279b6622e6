package compute

import (
	"math"

	"github.com/seenimoa/finscope/internal/catalog"
	"github.com/seenimoa/finscope/pkg/models"
)

// Not-applicable reasons.
const (
	ReasonMissingPrefix     = "missing:"
	ReasonUndefined         = "undefined:division"
	ReasonInsufficientYears = "insufficient:years"
)

// Computer evaluates definitions against a statement window. It holds no
// state and may be shared across goroutines.
type Computer struct{}

// NewComputer creates a Computer.
func NewComputer() *Computer {
	return &Computer{}
}

// Compute evaluates def over periods (ascending by year).
//
// A required input that is absent or null for a needed year yields
// NotApplicable("missing:<key>"); a non-finite result for the latest year
// yields NotApplicable("undefined:division"). Earlier years of point and
// change analyses are included only when they are complete and finite.
// Panics raised by the formula are not recovered here.
func (c *Computer) Compute(def catalog.Definition, periods []catalog.Period) models.ComputedAnalysis {
	n := len(periods)
	if n == 0 || n < def.RequiredYears() {
		return models.NotApplicable(def.ID, ReasonInsufficientYears)
	}

	if def.Scope == catalog.ScopeTrend {
		if key := firstMissing(def.Inputs, periods); key != "" {
			return models.NotApplicable(def.ID, ReasonMissingPrefix+key)
		}
		v := def.Formula(catalog.NewWindow(periods, def.Inputs))
		if !finite(v) {
			return models.NotApplicable(def.ID, ReasonUndefined)
		}
		return models.Numeric(def.ID, []models.Point{{Year: periods[n-1].Year, Value: v}})
	}

	span := 1
	if def.Scope == catalog.ScopeChange {
		span = 2
	}
	if key := firstMissing(def.Inputs, periods[n-span:]); key != "" {
		return models.NotApplicable(def.ID, ReasonMissingPrefix+key)
	}

	var series []models.Point
	for end := span; end <= n; end++ {
		win := periods[end-span : end]
		latest := end == n
		if !latest && firstMissing(def.Inputs, win) != "" {
			continue
		}
		v := def.Formula(catalog.NewWindow(win, def.Inputs))
		if !finite(v) {
			if latest {
				return models.NotApplicable(def.ID, ReasonUndefined)
			}
			continue
		}
		series = append(series, models.Point{Year: win[len(win)-1].Year, Value: v})
	}
	return models.Numeric(def.ID, series)
}

// firstMissing returns the first declared input absent or null in any of
// the periods, or "".
func firstMissing(inputs []string, periods []catalog.Period) string {
	for _, key := range inputs {
		for _, p := range periods {
			if _, ok := p.Items.Value(key); !ok {
				return key
			}
		}
	}
	return ""
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
