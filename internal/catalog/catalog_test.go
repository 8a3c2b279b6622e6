package catalog

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/seenimoa/finscope/pkg/models"
)

// ── Default catalog ──

func TestDefaultCatalogSize(t *testing.T) {
	c := MustDefault()
	if c.Len() != 181 {
		t.Fatalf("Len: got %d, want 181", c.Len())
	}

	want := map[models.Category]int{
		models.CategoryClassical:  60,
		models.CategoryStructural: 50,
		models.CategoryCashFlow:   35,
		models.CategoryAdvanced:   36,
	}
	for cat, n := range want {
		if got := len(c.ByCategory(cat)); got != n {
			t.Errorf("ByCategory(%s): got %d, want %d", cat, got, n)
		}
	}
}

func TestDefaultCatalogDefinitionsWellFormed(t *testing.T) {
	prefixes := map[models.Category]string{
		models.CategoryClassical:  "ratio.",
		models.CategoryStructural: "structure.",
		models.CategoryCashFlow:   "cashflow.",
		models.CategoryAdvanced:   "advanced.",
	}
	for _, d := range MustDefault().List() {
		if !strings.HasPrefix(d.ID, prefixes[d.Category]) {
			t.Errorf("%s: id does not match category %s", d.ID, d.Category)
		}
		if d.Name.En == "" || d.Name.Ar == "" {
			t.Errorf("%s: missing bilingual name", d.ID)
		}
	}
}

func TestDefaultIsShared(t *testing.T) {
	a, b := MustDefault(), MustDefault()
	if a != b {
		t.Error("Default should return the same catalog instance")
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := MustDefault().Get("ratio.nope")
	if !errors.Is(err, ErrUnknownAnalysis) {
		t.Fatalf("expected ErrUnknownAnalysis, got %v", err)
	}
	var uerr *UnknownAnalysisError
	if !errors.As(err, &uerr) || uerr.ID != "ratio.nope" {
		t.Errorf("expected UnknownAnalysisError for ratio.nope, got %v", err)
	}
}

func TestGetKnown(t *testing.T) {
	d, err := MustDefault().Get("ratio.current")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if d.Direction != models.HigherIsBetter {
		t.Errorf("Direction: got %s, want %s", d.Direction, models.HigherIsBetter)
	}
	if d.Scope != ScopePoint {
		t.Errorf("Scope: got %s, want %s", d.Scope, ScopePoint)
	}
}

func TestListReturnsCopy(t *testing.T) {
	c := MustDefault()
	list := c.List()
	list[0].ID = "mutated"
	if c.List()[0].ID == "mutated" {
		t.Error("List must not expose the catalog's backing array")
	}
}

func TestAccessorsDoNotShareInputs(t *testing.T) {
	c := MustDefault()
	const id = "ratio.current"
	want, _ := c.Get(id)
	first := want.Inputs[0]

	mutate := func(defs []Definition) {
		for i := range defs {
			if defs[i].ID == id {
				defs[i].Inputs[0] = "mutated"
			}
		}
	}
	mutate(c.List())
	mutate(c.ByCategory(models.CategoryClassical))
	sel, err := c.Select([]string{id})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	mutate(sel)
	got, _ := c.Get(id)
	got.Inputs[0] = "mutated"

	again, _ := c.Get(id)
	if again.Inputs[0] != first {
		t.Errorf("Inputs[0]: got %q, want %q", again.Inputs[0], first)
	}
}

// ── Select ──

func TestSelectPreservesCatalogOrder(t *testing.T) {
	c := MustDefault()
	defs, err := c.Select([]string{"ratio.quick", "ratio.current", "ratio.quick"})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("len: got %d, want 2", len(defs))
	}
	if defs[0].ID != "ratio.current" || defs[1].ID != "ratio.quick" {
		t.Errorf("order: got %s, %s", defs[0].ID, defs[1].ID)
	}
}

func TestSelectUnknown(t *testing.T) {
	_, err := MustDefault().Select([]string{"ratio.current", "bogus"})
	if !errors.Is(err, ErrUnknownAnalysis) {
		t.Errorf("expected ErrUnknownAnalysis, got %v", err)
	}
}

func TestSelectEmptyReturnsAll(t *testing.T) {
	defs, err := MustDefault().Select(nil)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(defs) != 181 {
		t.Errorf("len: got %d, want 181", len(defs))
	}
}

// ── Construction validation ──

func TestNewRejectsInvalidDefinitions(t *testing.T) {
	f := func(w Window) float64 { return 1 }
	valid := Definition{ID: "x", Category: models.CategoryClassical, Inputs: []string{"a"}, Direction: models.Neutral, Scope: ScopePoint, Formula: f}

	tests := []struct {
		name string
		defs []Definition
	}{
		{"duplicate id", []Definition{valid, valid}},
		{"empty inputs", []Definition{{ID: "y", Category: models.CategoryClassical, Direction: models.Neutral, Scope: ScopePoint, Formula: f}}},
		{"nil formula", []Definition{{ID: "y", Category: models.CategoryClassical, Inputs: []string{"a"}, Direction: models.Neutral, Scope: ScopePoint}}},
		{"empty id", []Definition{{Category: models.CategoryClassical, Inputs: []string{"a"}, Direction: models.Neutral, Scope: ScopePoint, Formula: f}}},
		{"bad category", []Definition{{ID: "y", Category: "misc", Inputs: []string{"a"}, Direction: models.Neutral, Scope: ScopePoint, Formula: f}}},
		{"bad scope", []Definition{{ID: "y", Category: models.CategoryClassical, Inputs: []string{"a"}, Direction: models.Neutral, Formula: f}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.defs...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

// ── Formulas ──

func period(year int, items map[string]float64) Period {
	return Period{Year: year, Items: models.ItemsOf(items)}
}

func eval(t *testing.T, id string, periods ...Period) float64 {
	t.Helper()
	d, err := MustDefault().Get(id)
	if err != nil {
		t.Fatalf("Get(%s): %v", id, err)
	}
	return d.Formula(NewWindow(periods, d.Inputs))
}

func TestCurrentRatioFormula(t *testing.T) {
	got := eval(t, "ratio.current", period(2024, map[string]float64{
		models.KeyCurrentAssets: 150, models.KeyCurrentLiabilities: 100,
	}))
	if got != 1.5 {
		t.Errorf("current ratio: got %v, want 1.5", got)
	}
}

func TestQuickRatioFormula(t *testing.T) {
	got := eval(t, "ratio.quick", period(2024, map[string]float64{
		models.KeyCurrentAssets: 150, models.KeyInventory: 50, models.KeyCurrentLiabilities: 100,
	}))
	if got != 1.0 {
		t.Errorf("quick ratio: got %v, want 1.0", got)
	}
}

func TestCommonSizeFormula(t *testing.T) {
	got := eval(t, "structure.assets.cash", period(2024, map[string]float64{
		models.KeyCash: 25, models.KeyTotalAssets: 200,
	}))
	if got != 12.5 {
		t.Errorf("cash share: got %v, want 12.5", got)
	}
}

func TestYearOverYearFormula(t *testing.T) {
	got := eval(t, "structure.change.revenue",
		period(2023, map[string]float64{models.KeyRevenue: 100}),
		period(2024, map[string]float64{models.KeyRevenue: 120}),
	)
	if math.Abs(got-20) > 1e-9 {
		t.Errorf("revenue change: got %v, want 20", got)
	}
}

func TestRevenueCAGRFormula(t *testing.T) {
	got := eval(t, "advanced.revenue_cagr",
		period(2022, map[string]float64{models.KeyRevenue: 100}),
		period(2023, map[string]float64{models.KeyRevenue: 110}),
		period(2024, map[string]float64{models.KeyRevenue: 121}),
	)
	if math.Abs(got-10) > 1e-9 {
		t.Errorf("revenue CAGR: got %v, want 10", got)
	}
}

func TestPiotroskiBounds(t *testing.T) {
	base := map[string]float64{
		models.KeyNetIncome: 10, models.KeyTotalAssets: 100, models.KeyOperatingCashFlow: 15,
		models.KeyLongTermDebt: 20, models.KeyCurrentAssets: 40, models.KeyCurrentLiabilities: 20,
		models.KeySharesOutstanding: 10, models.KeyGrossProfit: 30, models.KeyRevenue: 100,
	}
	better := map[string]float64{
		models.KeyNetIncome: 15, models.KeyTotalAssets: 100, models.KeyOperatingCashFlow: 20,
		models.KeyLongTermDebt: 10, models.KeyCurrentAssets: 50, models.KeyCurrentLiabilities: 20,
		models.KeySharesOutstanding: 10, models.KeyGrossProfit: 40, models.KeyRevenue: 110,
	}
	got := eval(t, "advanced.piotroski_f", period(2023, base), period(2024, better))
	if got != 9 {
		t.Errorf("piotroski: got %v, want 9", got)
	}
}

func TestDivisionByZeroIsNonFinite(t *testing.T) {
	got := eval(t, "ratio.current", period(2024, map[string]float64{
		models.KeyCurrentAssets: 150, models.KeyCurrentLiabilities: 0,
	}))
	if !math.IsInf(got, 1) {
		t.Errorf("expected +Inf, got %v", got)
	}
}
