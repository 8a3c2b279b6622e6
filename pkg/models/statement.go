package models

// StatementKind identifies which financial statement a set of line items belongs to.
type StatementKind string

const (
	BalanceSheet    StatementKind = "balance_sheet"
	IncomeStatement StatementKind = "income_statement"
	CashFlow        StatementKind = "cash_flow"
)

// Valid reports whether k is one of the known statement kinds.
func (k StatementKind) Valid() bool {
	switch k {
	case BalanceSheet, IncomeStatement, CashFlow:
		return true
	}
	return false
}

// LineItems maps a canonical line-item key to its reported amount.
// A nil value means the item exists in the source but was not reported.
type LineItems map[string]*float64

// Amount returns a pointer to v, for building LineItems literals.
func Amount(v float64) *float64 { return &v }

// ItemsOf converts a plain map into LineItems.
func ItemsOf(m map[string]float64) LineItems {
	items := make(LineItems, len(m))
	for k, v := range m {
		items[k] = Amount(v)
	}
	return items
}

// Value returns the reported amount for key and whether it is present and non-null.
func (li LineItems) Value(key string) (float64, bool) {
	v, ok := li[key]
	if !ok || v == nil {
		return 0, false
	}
	return *v, true
}

// FinancialStatement is one normalized statement for one fiscal year.
type FinancialStatement struct {
	Company    string        `json:"company"`
	FiscalYear int           `json:"fiscal_year"`
	Kind       StatementKind `json:"kind"`
	Items      LineItems     `json:"items"`
}

// Canonical line-item keys produced by the normalization collaborator.
const (
	// Balance sheet
	KeyCash                       = "cash"
	KeyShortTermInvestments       = "short_term_investments"
	KeyAccountsReceivable         = "accounts_receivable"
	KeyInventory                  = "inventory"
	KeyPrepaidExpenses            = "prepaid_expenses"
	KeyOtherCurrentAssets         = "other_current_assets"
	KeyCurrentAssets              = "current_assets"
	KeyPPENet                     = "ppe_net"
	KeyIntangibleAssets           = "intangible_assets"
	KeyGoodwill                   = "goodwill"
	KeyLongTermInvestments        = "long_term_investments"
	KeyOtherNoncurrentAssets      = "other_noncurrent_assets"
	KeyNoncurrentAssets           = "noncurrent_assets"
	KeyTotalAssets                = "total_assets"
	KeyAccountsPayable            = "accounts_payable"
	KeyShortTermDebt              = "short_term_debt"
	KeyAccruedLiabilities         = "accrued_liabilities"
	KeyOtherCurrentLiabilities    = "other_current_liabilities"
	KeyCurrentLiabilities         = "current_liabilities"
	KeyLongTermDebt               = "long_term_debt"
	KeyOtherNoncurrentLiabilities = "other_noncurrent_liabilities"
	KeyNoncurrentLiabilities      = "noncurrent_liabilities"
	KeyTotalLiabilities           = "total_liabilities"
	KeyShareCapital               = "share_capital"
	KeyRetainedEarnings           = "retained_earnings"
	KeyTotalEquity                = "total_equity"

	// Income statement
	KeyRevenue           = "revenue"
	KeyCostOfSales       = "cost_of_sales"
	KeyGrossProfit       = "gross_profit"
	KeySellingExpenses   = "selling_expenses"
	KeyAdminExpenses     = "admin_expenses"
	KeyOperatingExpenses = "operating_expenses"
	KeyDepreciation      = "depreciation"
	KeyOperatingIncome   = "operating_income"
	KeyInterestExpense   = "interest_expense"
	KeyOtherIncome       = "other_income"
	KeyIncomeBeforeTax   = "income_before_tax"
	KeyIncomeTax         = "income_tax"
	KeyNetIncome         = "net_income"
	KeySharesOutstanding = "shares_outstanding"
	KeySharePrice        = "share_price"

	// Cash flow
	KeyOperatingCashFlow  = "operating_cash_flow"
	KeyCapitalExpenditure = "capital_expenditure"
	KeyInvestingCashFlow  = "investing_cash_flow"
	KeyFinancingCashFlow  = "financing_cash_flow"
	KeyDividendsPaid      = "dividends_paid"
	KeyDebtRepayment      = "debt_repayment"
	KeyDebtIssued         = "debt_issued"
	KeyNetChangeInCash    = "net_change_in_cash"
	KeyInterestPaid       = "interest_paid"
	KeyTaxesPaid          = "taxes_paid"
)
