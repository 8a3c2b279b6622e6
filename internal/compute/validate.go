// Package compute validates normalized statements and evaluates analysis
// definitions against them.
package compute

import (
	"fmt"
	"sort"

	"github.com/seenimoa/finscope/internal/catalog"
	"github.com/seenimoa/finscope/pkg/models"
)

const stageValidating = "validating"

func invalid(format string, args ...any) error {
	return models.NewStructuralError(stageValidating, fmt.Sprintf(format, args...), nil)
}

// ValidateStatements checks the structural preconditions of a run: at least
// one statement, ascending years, no repeated (year, kind) pair, a line-item
// map on every statement and a single company. Economic plausibility is not
// checked here.
func ValidateStatements(stmts []models.FinancialStatement) error {
	if len(stmts) == 0 {
		return invalid("no financial statements")
	}

	type slot struct {
		year int
		kind models.StatementKind
	}
	seen := make(map[slot]bool, len(stmts))
	company := stmts[0].Company

	for i, s := range stmts {
		if !s.Kind.Valid() {
			return invalid("statement %d: unknown kind %q", i, s.Kind)
		}
		if s.Items == nil {
			return invalid("statement %d (%d %s): missing line items", i, s.FiscalYear, s.Kind)
		}
		if s.Company != company {
			return invalid("statement %d: company %q differs from %q", i, s.Company, company)
		}
		if i > 0 && s.FiscalYear < stmts[i-1].FiscalYear {
			return invalid("statements not sorted by year: %d follows %d", s.FiscalYear, stmts[i-1].FiscalYear)
		}
		key := slot{s.FiscalYear, s.Kind}
		if seen[key] {
			return invalid("duplicate %s statement for %d", s.Kind, s.FiscalYear)
		}
		seen[key] = true
	}
	return nil
}

// BuildPeriods merges validated statements into one period per fiscal year,
// in ascending order. When yearsCount is positive only the most recent
// yearsCount years are kept. A key reported by several statements of the
// same year keeps its first non-null value.
func BuildPeriods(stmts []models.FinancialStatement, yearsCount int) []catalog.Period {
	byYear := make(map[int]models.LineItems)
	var years []int
	for _, s := range stmts {
		items, ok := byYear[s.FiscalYear]
		if !ok {
			items = make(models.LineItems)
			byYear[s.FiscalYear] = items
			years = append(years, s.FiscalYear)
		}
		for k, v := range s.Items {
			if cur, exists := items[k]; exists && cur != nil {
				continue
			}
			items[k] = v
		}
	}
	sort.Ints(years)

	if yearsCount > 0 && len(years) > yearsCount {
		years = years[len(years)-yearsCount:]
	}

	periods := make([]catalog.Period, len(years))
	for i, y := range years {
		periods[i] = catalog.Period{Year: y, Items: byYear[y]}
	}
	return periods
}
