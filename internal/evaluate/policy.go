// Package evaluate scores computed analyses against their benchmarks.
package evaluate

import (
	"fmt"
	"math"

	"github.com/seenimoa/finscope/pkg/models"
)

// Policy holds the banding thresholds, in percent of favorable deviation
// from the benchmark average, and the tolerance within which a value is
// considered equal to the average.
type Policy struct {
	ExcellentAt    float64 `mapstructure:"excellent" json:"excellent"`
	VeryGoodAt     float64 `mapstructure:"very_good" json:"very_good"`
	GoodAt         float64 `mapstructure:"good" json:"good"`
	AcceptableAt   float64 `mapstructure:"acceptable" json:"acceptable"`
	EqualTolerance float64 `mapstructure:"equal_tolerance" json:"equal_tolerance"`
}

// DefaultPolicy returns bands of +25, +10, -10 and -25 percent with a
// one-percent equality tolerance.
func DefaultPolicy() Policy {
	return Policy{ExcellentAt: 25, VeryGoodAt: 10, GoodAt: -10, AcceptableAt: -25, EqualTolerance: 1}
}

// Validate checks that thresholds strictly decrease and the tolerance is
// non-negative.
func (p Policy) Validate() error {
	if !(p.ExcellentAt > p.VeryGoodAt && p.VeryGoodAt > p.GoodAt && p.GoodAt > p.AcceptableAt) {
		return fmt.Errorf("tier thresholds must strictly decrease: %v, %v, %v, %v",
			p.ExcellentAt, p.VeryGoodAt, p.GoodAt, p.AcceptableAt)
	}
	if p.EqualTolerance < 0 || math.IsNaN(p.EqualTolerance) {
		return fmt.Errorf("equal tolerance must be non-negative, got %v", p.EqualTolerance)
	}
	return nil
}

// Tier bands a favorable deviation. Bounds are inclusive on the lower side.
func (p Policy) Tier(favorable float64) models.Tier {
	switch {
	case favorable >= p.ExcellentAt:
		return models.TierExcellent
	case favorable >= p.VeryGoodAt:
		return models.TierVeryGood
	case favorable >= p.GoodAt:
		return models.TierGood
	case favorable >= p.AcceptableAt:
		return models.TierAcceptable
	default:
		return models.TierWeak
	}
}

// Compare positions a signed percentage difference relative to the
// tolerance band.
func (p Policy) Compare(diff float64) models.Comparison {
	switch {
	case math.Abs(diff) <= p.EqualTolerance:
		return models.Equal
	case diff > 0:
		return models.Higher
	default:
		return models.Lower
	}
}

// Favorable converts a signed difference into a favorable deviation for the
// given direction. Neutral metrics are judged by distance from the average.
func Favorable(dir models.Direction, diff float64) float64 {
	switch dir {
	case models.LowerIsBetter:
		return -diff
	case models.Neutral:
		return -math.Abs(diff)
	default:
		return diff
	}
}
