package catalog

import (
	"math"

	"github.com/seenimoa/finscope/pkg/models"
)

const daysInYear = 365

func keys(k ...string) []string { return k }

func point(cat models.Category, id, en, ar string, dir models.Direction, inputs []string, f Formula) Definition {
	return Definition{
		ID:        id,
		Category:  cat,
		Name:      models.Label{En: en, Ar: ar},
		Inputs:    inputs,
		Direction: dir,
		Scope:     ScopePoint,
		Formula:   f,
	}
}

func change(cat models.Category, id, en, ar string, dir models.Direction, inputs []string, f Formula) Definition {
	d := point(cat, id, en, ar, dir, inputs, f)
	d.Scope = ScopeChange
	return d
}

func trend(cat models.Category, id, en, ar string, dir models.Direction, minYears int, inputs []string, f Formula) Definition {
	d := point(cat, id, en, ar, dir, inputs, f)
	d.Scope = ScopeTrend
	d.MinYears = minYears
	return d
}

// --- formula helpers ---

func pct(a, b float64) float64 { return a / b * 100 }

func growth(cur, prev float64) float64 { return (cur - prev) / math.Abs(prev) * 100 }

func cagr(first, last, years float64) float64 {
	if first <= 0 || last <= 0 {
		return math.NaN()
	}
	return (math.Pow(last/first, 1/years) - 1) * 100
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// stddev is the population standard deviation.
func stddev(vals []float64) float64 {
	m := mean(vals)
	ss := 0.0
	for _, v := range vals {
		ss += (v - m) * (v - m)
	}
	return math.Sqrt(ss / float64(len(vals)))
}

// slope is the least-squares slope of vals against their index.
func slope(vals []float64) float64 {
	n := float64(len(vals))
	var sx, sy, sxy, sxx float64
	for i, v := range vals {
		x := float64(i)
		sx += x
		sy += v
		sxy += x * v
		sxx += x * x
	}
	return (n*sxy - sx*sy) / (n*sxx - sx*sx)
}

// yoy returns the year-over-year growth rates of vals in percent.
func yoy(vals []float64) []float64 {
	out := make([]float64, 0, len(vals)-1)
	for i := 1; i < len(vals); i++ {
		out = append(out, growth(vals[i], vals[i-1]))
	}
	return out
}

func totalDebt(w Window, i int) float64 {
	return w.At(i, models.KeyShortTermDebt) + w.At(i, models.KeyLongTermDebt)
}

func last(w Window) int { return w.Len() - 1 }
