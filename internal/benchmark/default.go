package benchmark

// defaultAverages are conservative cross-industry reference values. They
// carry no peer distribution, so evaluations against them have no rank.
var defaultAverages = map[string]float64{
	// Liquidity
	"ratio.current":                           1.5,
	"ratio.quick":                             1.0,
	"ratio.cash":                              0.5,
	"ratio.absolute_cash":                     0.3,
	"ratio.working_capital_to_assets":         0.15,
	"ratio.working_capital_to_current_assets": 0.3,
	"ratio.defensive_interval":                90,
	"ratio.cash_to_current_assets":            0.2,
	"ratio.inventory_to_working_capital":      0.8,

	// Activity
	"ratio.inventory_turnover":        6,
	"ratio.days_inventory":            60,
	"ratio.receivables_turnover":      8,
	"ratio.days_sales_outstanding":    45,
	"ratio.payables_turnover":         8,
	"ratio.days_payables_outstanding": 45,
	"ratio.cash_conversion_cycle":     60,
	"ratio.operating_cycle":           105,
	"ratio.asset_turnover":            1.0,
	"ratio.fixed_asset_turnover":      3.0,
	"ratio.current_asset_turnover":    2.0,
	"ratio.working_capital_turnover":  5,
	"ratio.equity_turnover":           2.0,
	"ratio.noncurrent_asset_turnover": 1.8,

	// Leverage
	"ratio.debt":                                     0.5,
	"ratio.debt_to_equity":                           1.0,
	"ratio.liabilities_to_equity":                    1.0,
	"ratio.equity":                                   0.5,
	"ratio.equity_multiplier":                        2.0,
	"ratio.long_term_debt_to_equity":                 0.5,
	"ratio.long_term_debt_to_capitalization":         0.3,
	"ratio.debt_to_capital":                          0.4,
	"ratio.interest_coverage":                        4,
	"ratio.ebitda_interest_coverage":                 6,
	"ratio.fixed_assets_to_equity":                   0.7,
	"ratio.current_liabilities_to_total_liabilities": 0.6,
	"ratio.net_debt_to_equity":                       0.4,
	"ratio.debt_to_ebitda":                           2.5,

	// Profitability
	"ratio.gross_margin":               30,
	"ratio.operating_margin":           10,
	"ratio.ebitda_margin":              15,
	"ratio.pretax_margin":              9,
	"ratio.net_margin":                 7,
	"ratio.return_on_assets":           5,
	"ratio.return_on_equity":           12,
	"ratio.return_on_capital_employed": 10,
	"ratio.return_on_invested_capital": 9,
	"ratio.effective_tax_rate":         20,
	"ratio.operating_expense_ratio":    20,
	"ratio.cost_of_sales_ratio":        70,
	"ratio.interest_burden":            0.85,
	"ratio.tax_burden":                 0.78,

	// Market
	"ratio.price_to_earnings": 15,
	"ratio.price_to_book":     1.8,
	"ratio.price_to_sales":    1.5,
	"ratio.earnings_yield":    6.5,
	"ratio.dividend_payout":   40,

	// Cash flow
	"cashflow.operating_cash_flow_ratio":         0.4,
	"cashflow.cash_flow_margin":                  10,
	"cashflow.free_cash_flow_margin":             5,
	"cashflow.earnings_quality":                  1.1,
	"cashflow.capex_to_operating_cash_flow":      0.5,
	"cashflow.capex_to_revenue":                  6,
	"cashflow.capex_to_depreciation":             1.2,
	"cashflow.cash_flow_to_debt":                 0.3,
	"cashflow.cash_return_on_assets":             7,
	"cashflow.cash_return_on_equity":             12,
	"cashflow.dividend_coverage":                 2.0,
	"cashflow.debt_service_coverage":             1.5,
	"cashflow.cash_interest_coverage":            5,
	"cashflow.reinvestment_ratio":                0.6,
	"cashflow.cash_flow_adequacy":                1.0,
	"cashflow.cash_tax_rate":                     18,
	"cashflow.net_change_in_cash_to_assets":      1,
	"cashflow.investing_to_operating":            0.6,
	"cashflow.financing_to_operating":            -0.3,
	"cashflow.free_cash_flow_to_net_income":      0.8,
	"cashflow.cash_flow_coverage_of_liabilities": 0.2,
	"cashflow.current_liability_coverage":        0.4,
	"cashflow.operating_cash_flow_to_ebitda":     0.8,
	"cashflow.dividend_payout_of_free_cash_flow": 50,
	"cashflow.free_cash_flow_yield":              5,
	"cashflow.price_to_cash_flow":                10,
	"cashflow.capex_to_total_assets":             5,
	"cashflow.cash_accumulation":                 0.1,
	"cashflow.operating_cash_flow_growth":        5,
	"cashflow.free_cash_flow_growth":             5,
	"cashflow.cash_to_debt":                      0.5,

	// Distress
	"advanced.altman_z":              2.9,
	"advanced.altman_z_double_prime": 2.6,
	"advanced.springate_s":           1.0,
	"advanced.zmijewski_x":           -2.0,
	"advanced.grover_g":              0.5,
	"advanced.taffler_z":             3.5,

	// Earnings manipulation
	"advanced.beneish_m":    -2.22,
	"advanced.beneish.dsri": 1.03,
	"advanced.beneish.gmi":  1.01,
	"advanced.beneish.aqi":  1.0,
	"advanced.beneish.sgi":  1.1,
	"advanced.beneish.depi": 1.0,
	"advanced.beneish.sgai": 1.05,
	"advanced.beneish.lvgi": 1.04,
	"advanced.beneish.tata": 0.02,

	// Quality, growth and leverage dynamics
	"advanced.piotroski_f":                  5,
	"advanced.sustainable_growth_rate":      6,
	"advanced.internal_growth_rate":         4,
	"advanced.degree_of_operating_leverage": 1.5,
	"advanced.degree_of_financial_leverage": 1.2,
	"advanced.degree_of_combined_leverage":  1.8,
	"advanced.sloan_accruals":               5,
	"advanced.balance_sheet_accruals":       3,
	"advanced.revenue_cagr":                 5,
	"advanced.net_income_cagr":              5,
	"advanced.total_assets_cagr":            5,
	"advanced.equity_cagr":                  5,
	"advanced.operating_cash_flow_cagr":     5,
	"advanced.revenue_volatility":           10,
	"advanced.net_margin_volatility":        2,
	"advanced.revenue_trend_slope":          4,
	"advanced.net_income_trend_slope":       4,
	"advanced.gross_margin_trend":           0.5,
	"advanced.earnings_consistency":         60,
	"advanced.average_roe":                  12,
	"advanced.average_cash_conversion":      1.1,
}

// Common-size shares in percent, keyed by statement line item.
var (
	assetShares = map[string]float64{
		"cash": 8, "short_term_investments": 3, "accounts_receivable": 15,
		"inventory": 15, "prepaid_expenses": 2, "other_current_assets": 3,
		"current_assets": 45, "ppe_net": 35, "intangible_assets": 5,
		"goodwill": 5, "long_term_investments": 5, "other_noncurrent_assets": 4,
		"noncurrent_assets": 55,
	}
	fundingShares = map[string]float64{
		"accounts_payable": 10, "short_term_debt": 8, "accrued_liabilities": 5,
		"other_current_liabilities": 4, "current_liabilities": 30, "long_term_debt": 15,
		"other_noncurrent_liabilities": 3, "noncurrent_liabilities": 20, "total_liabilities": 50,
		"share_capital": 20, "retained_earnings": 20, "total_equity": 50,
	}
	incomeShares = map[string]float64{
		"cost_of_sales": 70, "gross_profit": 30, "selling_expenses": 8,
		"admin_expenses": 7, "operating_expenses": 20, "depreciation": 4,
		"operating_income": 10, "interest_expense": 2, "other_income": 1,
		"income_before_tax": 9, "income_tax": 2, "net_income": 7,
	}
	// Year-over-year changes default to a flat nominal growth rate.
	changeItems = []string{
		"revenue", "gross_profit", "operating_income", "net_income", "total_assets",
		"total_equity", "total_liabilities", "current_assets", "current_liabilities",
		"inventory", "accounts_receivable", "operating_expenses", "ppe_net",
	}
)

const defaultGrowth = 5

// scaleDependent analyses are measured in currency units. No cross-industry
// figure is meaningful for them, so they are never defaulted.
var scaleDependent = map[string]bool{
	"ratio.working_capital":                  true,
	"ratio.earnings_per_share":               true,
	"ratio.book_value_per_share":             true,
	"ratio.dividend_per_share":               true,
	"cashflow.free_cash_flow":                true,
	"cashflow.free_cash_flow_to_equity":      true,
	"cashflow.free_cash_flow_per_share":      true,
	"cashflow.operating_cash_flow_per_share": true,
}

// ScaleDependent reports whether id is measured in currency units and so
// has no default benchmark.
func ScaleDependent(id string) bool { return scaleDependent[id] }

// DefaultTable returns the conservative default benchmark table used when
// no provider table matches.
func DefaultTable() *Set {
	entries := make(map[string]Entry, len(defaultAverages)+len(assetShares)+len(fundingShares)+len(incomeShares)+len(changeItems))
	for id, avg := range defaultAverages {
		entries[id] = Entry{Average: avg}
	}
	for prefix, shares := range map[string]map[string]float64{
		"structure.assets.":  assetShares,
		"structure.funding.": fundingShares,
		"structure.income.":  incomeShares,
	} {
		for item, share := range shares {
			entries[prefix+item] = Entry{Average: share}
		}
	}
	for _, item := range changeItems {
		entries["structure.change."+item] = Entry{Average: defaultGrowth}
	}
	return &Set{
		Key:           Key{Sector: AnyEntity, LegalEntity: AnyEntity, Level: GlobalLevel},
		Source:        StageDefault,
		LowConfidence: true,
		Entries:       entries,
	}
}
