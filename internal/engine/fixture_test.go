package engine

import (
	"github.com/seenimoa/finscope/pkg/models"
)

var balanceBase = map[string]float64{
	models.KeyCash:                       120,
	models.KeyShortTermInvestments:       30,
	models.KeyAccountsReceivable:         180,
	models.KeyInventory:                  150,
	models.KeyPrepaidExpenses:            20,
	models.KeyOtherCurrentAssets:         10,
	models.KeyCurrentAssets:              510,
	models.KeyPPENet:                     600,
	models.KeyIntangibleAssets:           50,
	models.KeyGoodwill:                   40,
	models.KeyLongTermInvestments:        60,
	models.KeyOtherNoncurrentAssets:      20,
	models.KeyNoncurrentAssets:           770,
	models.KeyTotalAssets:                1280,
	models.KeyAccountsPayable:            110,
	models.KeyShortTermDebt:              60,
	models.KeyAccruedLiabilities:         30,
	models.KeyOtherCurrentLiabilities:    20,
	models.KeyCurrentLiabilities:         220,
	models.KeyLongTermDebt:               300,
	models.KeyOtherNoncurrentLiabilities: 40,
	models.KeyNoncurrentLiabilities:      340,
	models.KeyTotalLiabilities:           560,
	models.KeyShareCapital:               400,
	models.KeyRetainedEarnings:           320,
	models.KeyTotalEquity:                720,
}

var incomeBase = map[string]float64{
	models.KeyRevenue:           1500,
	models.KeyCostOfSales:       900,
	models.KeyGrossProfit:       600,
	models.KeySellingExpenses:   120,
	models.KeyAdminExpenses:     100,
	models.KeyOperatingExpenses: 220,
	models.KeyDepreciation:      60,
	models.KeyOperatingIncome:   320,
	models.KeyInterestExpense:   25,
	models.KeyOtherIncome:       5,
	models.KeyIncomeBeforeTax:   300,
	models.KeyIncomeTax:         60,
	models.KeyNetIncome:         240,
	models.KeySharesOutstanding: 100,
	models.KeySharePrice:        30,
}

var cashFlowBase = map[string]float64{
	models.KeyOperatingCashFlow:  310,
	models.KeyCapitalExpenditure: 90,
	models.KeyInvestingCashFlow:  -100,
	models.KeyFinancingCashFlow:  -120,
	models.KeyDividendsPaid:      80,
	models.KeyDebtRepayment:      50,
	models.KeyDebtIssued:         30,
	models.KeyNetChangeInCash:    90,
	models.KeyInterestPaid:       25,
	models.KeyTaxesPaid:          55,
}

func scaled(base map[string]float64, factor float64) models.LineItems {
	out := make(map[string]float64, len(base))
	for k, v := range base {
		out[k] = v * factor
	}
	// per-share inputs do not scale with the business
	if _, ok := base[models.KeySharesOutstanding]; ok {
		out[models.KeySharesOutstanding] = base[models.KeySharesOutstanding]
	}
	return models.ItemsOf(out)
}

// sampleStatements returns three complete years of statements for ACME,
// growing eight percent a year.
func sampleStatements() []models.FinancialStatement {
	var out []models.FinancialStatement
	for i, year := range []int{2022, 2023, 2024} {
		f := 1 + 0.08*float64(i)
		out = append(out,
			models.FinancialStatement{Company: "ACME", FiscalYear: year, Kind: models.BalanceSheet, Items: scaled(balanceBase, f)},
			models.FinancialStatement{Company: "ACME", FiscalYear: year, Kind: models.IncomeStatement, Items: scaled(incomeBase, f)},
			models.FinancialStatement{Company: "ACME", FiscalYear: year, Kind: models.CashFlow, Items: scaled(cashFlowBase, f)},
		)
	}
	return out
}

func currentRatioStatements(ca, cl float64, extra map[string]float64) []models.FinancialStatement {
	items := map[string]float64{models.KeyCurrentAssets: ca, models.KeyCurrentLiabilities: cl}
	for k, v := range extra {
		items[k] = v
	}
	return []models.FinancialStatement{{
		Company: "ACME", FiscalYear: 2024, Kind: models.BalanceSheet, Items: models.ItemsOf(items),
	}}
}
