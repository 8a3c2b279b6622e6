package catalog

import "github.com/seenimoa/finscope/pkg/models"

// Short aliases of the canonical line-item keys used by the formulas.
const (
	kCash     = models.KeyCash
	kSTI      = models.KeyShortTermInvestments
	kAR       = models.KeyAccountsReceivable
	kInv      = models.KeyInventory
	kCA       = models.KeyCurrentAssets
	kPPE      = models.KeyPPENet
	kNCA      = models.KeyNoncurrentAssets
	kTA       = models.KeyTotalAssets
	kAP       = models.KeyAccountsPayable
	kSTD      = models.KeyShortTermDebt
	kCL       = models.KeyCurrentLiabilities
	kLTD      = models.KeyLongTermDebt
	kTL       = models.KeyTotalLiabilities
	kRE       = models.KeyRetainedEarnings
	kEquity   = models.KeyTotalEquity
	kRevenue  = models.KeyRevenue
	kCOS      = models.KeyCostOfSales
	kGP       = models.KeyGrossProfit
	kSelling  = models.KeySellingExpenses
	kAdmin    = models.KeyAdminExpenses
	kOpex     = models.KeyOperatingExpenses
	kDep      = models.KeyDepreciation
	kOI       = models.KeyOperatingIncome
	kInterest = models.KeyInterestExpense
	kIBT      = models.KeyIncomeBeforeTax
	kTax      = models.KeyIncomeTax
	kNI       = models.KeyNetIncome
	kShares   = models.KeySharesOutstanding
	kPrice    = models.KeySharePrice
	kOCF      = models.KeyOperatingCashFlow
	kCapex    = models.KeyCapitalExpenditure
	kICF      = models.KeyInvestingCashFlow
	kFinCF    = models.KeyFinancingCashFlow
	kDiv      = models.KeyDividendsPaid
	kRepay    = models.KeyDebtRepayment
	kIssued   = models.KeyDebtIssued
	kNetCash  = models.KeyNetChangeInCash
	kIntPaid  = models.KeyInterestPaid
	kTaxPaid  = models.KeyTaxesPaid
)
