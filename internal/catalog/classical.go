package catalog

import "github.com/seenimoa/finscope/pkg/models"

func ratio(id, en, ar string, dir models.Direction, inputs []string, f Formula) Definition {
	return point(models.CategoryClassical, "ratio."+id, en, ar, dir, inputs, f)
}

// classicalRatios covers liquidity, activity, leverage, profitability and
// market ratios.
func classicalRatios() []Definition {
	hb, lb, nt := models.HigherIsBetter, models.LowerIsBetter, models.Neutral

	return []Definition{
		// Liquidity
		ratio("current", "Current Ratio", "نسبة التداول", hb, keys(kCA, kCL),
			func(w Window) float64 { return w.Cur(kCA) / w.Cur(kCL) }),
		ratio("quick", "Quick Ratio", "نسبة السيولة السريعة", hb, keys(kCA, kInv, kCL),
			func(w Window) float64 { return (w.Cur(kCA) - w.Cur(kInv)) / w.Cur(kCL) }),
		ratio("cash", "Cash Ratio", "نسبة النقدية", hb, keys(kCash, kSTI, kCL),
			func(w Window) float64 { return (w.Cur(kCash) + w.Cur(kSTI)) / w.Cur(kCL) }),
		ratio("absolute_cash", "Absolute Cash Ratio", "نسبة النقدية المطلقة", hb, keys(kCash, kCL),
			func(w Window) float64 { return w.Cur(kCash) / w.Cur(kCL) }),
		ratio("working_capital", "Working Capital", "رأس المال العامل", hb, keys(kCA, kCL),
			func(w Window) float64 { return w.Cur(kCA) - w.Cur(kCL) }),
		ratio("working_capital_to_assets", "Working Capital to Total Assets", "رأس المال العامل إلى إجمالي الأصول", hb, keys(kCA, kCL, kTA),
			func(w Window) float64 { return (w.Cur(kCA) - w.Cur(kCL)) / w.Cur(kTA) }),
		ratio("working_capital_to_current_assets", "Working Capital to Current Assets", "رأس المال العامل إلى الأصول المتداولة", hb, keys(kCA, kCL),
			func(w Window) float64 { return (w.Cur(kCA) - w.Cur(kCL)) / w.Cur(kCA) }),
		ratio("defensive_interval", "Defensive Interval (days)", "فترة الحماية الدفاعية (أيام)", hb, keys(kCash, kSTI, kAR, kCOS, kOpex, kDep),
			func(w Window) float64 {
				daily := (w.Cur(kCOS) + w.Cur(kOpex) - w.Cur(kDep)) / daysInYear
				return (w.Cur(kCash) + w.Cur(kSTI) + w.Cur(kAR)) / daily
			}),
		ratio("cash_to_current_assets", "Cash to Current Assets", "النقدية إلى الأصول المتداولة", nt, keys(kCash, kCA),
			func(w Window) float64 { return w.Cur(kCash) / w.Cur(kCA) }),
		ratio("inventory_to_working_capital", "Inventory to Working Capital", "المخزون إلى رأس المال العامل", lb, keys(kInv, kCA, kCL),
			func(w Window) float64 { return w.Cur(kInv) / (w.Cur(kCA) - w.Cur(kCL)) }),

		// Activity
		ratio("inventory_turnover", "Inventory Turnover", "معدل دوران المخزون", hb, keys(kCOS, kInv),
			func(w Window) float64 { return w.Cur(kCOS) / w.Cur(kInv) }),
		ratio("days_inventory", "Days Inventory Outstanding", "متوسط فترة التخزين", lb, keys(kInv, kCOS),
			func(w Window) float64 { return daysInYear * w.Cur(kInv) / w.Cur(kCOS) }),
		ratio("receivables_turnover", "Receivables Turnover", "معدل دوران الذمم المدينة", hb, keys(kRevenue, kAR),
			func(w Window) float64 { return w.Cur(kRevenue) / w.Cur(kAR) }),
		ratio("days_sales_outstanding", "Days Sales Outstanding", "متوسط فترة التحصيل", lb, keys(kAR, kRevenue),
			func(w Window) float64 { return daysInYear * w.Cur(kAR) / w.Cur(kRevenue) }),
		ratio("payables_turnover", "Payables Turnover", "معدل دوران الذمم الدائنة", nt, keys(kCOS, kAP),
			func(w Window) float64 { return w.Cur(kCOS) / w.Cur(kAP) }),
		ratio("days_payables_outstanding", "Days Payables Outstanding", "متوسط فترة السداد", nt, keys(kAP, kCOS),
			func(w Window) float64 { return daysInYear * w.Cur(kAP) / w.Cur(kCOS) }),
		ratio("cash_conversion_cycle", "Cash Conversion Cycle (days)", "دورة التحويل النقدي (أيام)", lb, keys(kInv, kCOS, kAR, kRevenue, kAP),
			func(w Window) float64 {
				dio := daysInYear * w.Cur(kInv) / w.Cur(kCOS)
				dso := daysInYear * w.Cur(kAR) / w.Cur(kRevenue)
				dpo := daysInYear * w.Cur(kAP) / w.Cur(kCOS)
				return dio + dso - dpo
			}),
		ratio("operating_cycle", "Operating Cycle (days)", "الدورة التشغيلية (أيام)", lb, keys(kInv, kCOS, kAR, kRevenue),
			func(w Window) float64 {
				return daysInYear*w.Cur(kInv)/w.Cur(kCOS) + daysInYear*w.Cur(kAR)/w.Cur(kRevenue)
			}),
		ratio("asset_turnover", "Total Asset Turnover", "معدل دوران إجمالي الأصول", hb, keys(kRevenue, kTA),
			func(w Window) float64 { return w.Cur(kRevenue) / w.Cur(kTA) }),
		ratio("fixed_asset_turnover", "Fixed Asset Turnover", "معدل دوران الأصول الثابتة", hb, keys(kRevenue, kPPE),
			func(w Window) float64 { return w.Cur(kRevenue) / w.Cur(kPPE) }),
		ratio("current_asset_turnover", "Current Asset Turnover", "معدل دوران الأصول المتداولة", hb, keys(kRevenue, kCA),
			func(w Window) float64 { return w.Cur(kRevenue) / w.Cur(kCA) }),
		ratio("working_capital_turnover", "Working Capital Turnover", "معدل دوران رأس المال العامل", hb, keys(kRevenue, kCA, kCL),
			func(w Window) float64 { return w.Cur(kRevenue) / (w.Cur(kCA) - w.Cur(kCL)) }),
		ratio("equity_turnover", "Equity Turnover", "معدل دوران حقوق الملكية", hb, keys(kRevenue, kEquity),
			func(w Window) float64 { return w.Cur(kRevenue) / w.Cur(kEquity) }),
		ratio("noncurrent_asset_turnover", "Non-current Asset Turnover", "معدل دوران الأصول غير المتداولة", hb, keys(kRevenue, kNCA),
			func(w Window) float64 { return w.Cur(kRevenue) / w.Cur(kNCA) }),

		// Leverage and solvency
		ratio("debt", "Debt Ratio", "نسبة المديونية", lb, keys(kTL, kTA),
			func(w Window) float64 { return w.Cur(kTL) / w.Cur(kTA) }),
		ratio("debt_to_equity", "Debt to Equity", "الديون إلى حقوق الملكية", lb, keys(kSTD, kLTD, kEquity),
			func(w Window) float64 { return totalDebt(w, last(w)) / w.Cur(kEquity) }),
		ratio("liabilities_to_equity", "Liabilities to Equity", "الالتزامات إلى حقوق الملكية", lb, keys(kTL, kEquity),
			func(w Window) float64 { return w.Cur(kTL) / w.Cur(kEquity) }),
		ratio("equity", "Equity Ratio", "نسبة الملكية", hb, keys(kEquity, kTA),
			func(w Window) float64 { return w.Cur(kEquity) / w.Cur(kTA) }),
		ratio("equity_multiplier", "Equity Multiplier", "مضاعف حقوق الملكية", lb, keys(kTA, kEquity),
			func(w Window) float64 { return w.Cur(kTA) / w.Cur(kEquity) }),
		ratio("long_term_debt_to_equity", "Long-term Debt to Equity", "الديون طويلة الأجل إلى حقوق الملكية", lb, keys(kLTD, kEquity),
			func(w Window) float64 { return w.Cur(kLTD) / w.Cur(kEquity) }),
		ratio("long_term_debt_to_capitalization", "Long-term Debt to Capitalization", "الديون طويلة الأجل إلى الرسملة", lb, keys(kLTD, kEquity),
			func(w Window) float64 { return w.Cur(kLTD) / (w.Cur(kLTD) + w.Cur(kEquity)) }),
		ratio("debt_to_capital", "Debt to Capital", "الديون إلى رأس المال", lb, keys(kSTD, kLTD, kEquity),
			func(w Window) float64 {
				d := totalDebt(w, last(w))
				return d / (d + w.Cur(kEquity))
			}),
		ratio("interest_coverage", "Interest Coverage", "معدل تغطية الفوائد", hb, keys(kOI, kInterest),
			func(w Window) float64 { return w.Cur(kOI) / w.Cur(kInterest) }),
		ratio("ebitda_interest_coverage", "EBITDA Interest Coverage", "تغطية الفوائد بالأرباح قبل الاستهلاك", hb, keys(kOI, kDep, kInterest),
			func(w Window) float64 { return (w.Cur(kOI) + w.Cur(kDep)) / w.Cur(kInterest) }),
		ratio("fixed_assets_to_equity", "Fixed Assets to Equity", "الأصول الثابتة إلى حقوق الملكية", lb, keys(kPPE, kEquity),
			func(w Window) float64 { return w.Cur(kPPE) / w.Cur(kEquity) }),
		ratio("current_liabilities_to_total_liabilities", "Current to Total Liabilities", "الالتزامات المتداولة إلى إجمالي الالتزامات", nt, keys(kCL, kTL),
			func(w Window) float64 { return w.Cur(kCL) / w.Cur(kTL) }),
		ratio("net_debt_to_equity", "Net Debt to Equity", "صافي الديون إلى حقوق الملكية", lb, keys(kSTD, kLTD, kCash, kEquity),
			func(w Window) float64 { return (totalDebt(w, last(w)) - w.Cur(kCash)) / w.Cur(kEquity) }),
		ratio("debt_to_ebitda", "Debt to EBITDA", "الديون إلى الأرباح قبل الفوائد والضرائب والاستهلاك", lb, keys(kSTD, kLTD, kOI, kDep),
			func(w Window) float64 { return totalDebt(w, last(w)) / (w.Cur(kOI) + w.Cur(kDep)) }),

		// Profitability
		ratio("gross_margin", "Gross Profit Margin (%)", "هامش الربح الإجمالي (%)", hb, keys(kGP, kRevenue),
			func(w Window) float64 { return pct(w.Cur(kGP), w.Cur(kRevenue)) }),
		ratio("operating_margin", "Operating Profit Margin (%)", "هامش الربح التشغيلي (%)", hb, keys(kOI, kRevenue),
			func(w Window) float64 { return pct(w.Cur(kOI), w.Cur(kRevenue)) }),
		ratio("ebitda_margin", "EBITDA Margin (%)", "هامش الأرباح قبل الفوائد والضرائب والاستهلاك (%)", hb, keys(kOI, kDep, kRevenue),
			func(w Window) float64 { return pct(w.Cur(kOI)+w.Cur(kDep), w.Cur(kRevenue)) }),
		ratio("pretax_margin", "Pre-tax Margin (%)", "هامش الربح قبل الضريبة (%)", hb, keys(kIBT, kRevenue),
			func(w Window) float64 { return pct(w.Cur(kIBT), w.Cur(kRevenue)) }),
		ratio("net_margin", "Net Profit Margin (%)", "هامش صافي الربح (%)", hb, keys(kNI, kRevenue),
			func(w Window) float64 { return pct(w.Cur(kNI), w.Cur(kRevenue)) }),
		ratio("return_on_assets", "Return on Assets (%)", "العائد على الأصول (%)", hb, keys(kNI, kTA),
			func(w Window) float64 { return pct(w.Cur(kNI), w.Cur(kTA)) }),
		ratio("return_on_equity", "Return on Equity (%)", "العائد على حقوق الملكية (%)", hb, keys(kNI, kEquity),
			func(w Window) float64 { return pct(w.Cur(kNI), w.Cur(kEquity)) }),
		ratio("return_on_capital_employed", "Return on Capital Employed (%)", "العائد على رأس المال المستخدم (%)", hb, keys(kOI, kTA, kCL),
			func(w Window) float64 { return pct(w.Cur(kOI), w.Cur(kTA)-w.Cur(kCL)) }),
		ratio("return_on_invested_capital", "Return on Invested Capital (%)", "العائد على رأس المال المستثمر (%)", hb, keys(kOI, kTax, kIBT, kSTD, kLTD, kEquity),
			func(w Window) float64 {
				nopat := w.Cur(kOI) * (1 - w.Cur(kTax)/w.Cur(kIBT))
				return pct(nopat, totalDebt(w, last(w))+w.Cur(kEquity))
			}),
		ratio("effective_tax_rate", "Effective Tax Rate (%)", "معدل الضريبة الفعلي (%)", nt, keys(kTax, kIBT),
			func(w Window) float64 { return pct(w.Cur(kTax), w.Cur(kIBT)) }),
		ratio("operating_expense_ratio", "Operating Expense Ratio (%)", "نسبة المصروفات التشغيلية (%)", lb, keys(kOpex, kRevenue),
			func(w Window) float64 { return pct(w.Cur(kOpex), w.Cur(kRevenue)) }),
		ratio("cost_of_sales_ratio", "Cost of Sales Ratio (%)", "نسبة تكلفة المبيعات (%)", lb, keys(kCOS, kRevenue),
			func(w Window) float64 { return pct(w.Cur(kCOS), w.Cur(kRevenue)) }),
		ratio("interest_burden", "Interest Burden", "عبء الفوائد", hb, keys(kIBT, kOI),
			func(w Window) float64 { return w.Cur(kIBT) / w.Cur(kOI) }),
		ratio("tax_burden", "Tax Burden", "العبء الضريبي", hb, keys(kNI, kIBT),
			func(w Window) float64 { return w.Cur(kNI) / w.Cur(kIBT) }),

		// Market
		ratio("earnings_per_share", "Earnings per Share", "ربحية السهم", hb, keys(kNI, kShares),
			func(w Window) float64 { return w.Cur(kNI) / w.Cur(kShares) }),
		ratio("book_value_per_share", "Book Value per Share", "القيمة الدفترية للسهم", hb, keys(kEquity, kShares),
			func(w Window) float64 { return w.Cur(kEquity) / w.Cur(kShares) }),
		ratio("price_to_earnings", "Price to Earnings", "مكرر الربحية", lb, keys(kPrice, kNI, kShares),
			func(w Window) float64 { return w.Cur(kPrice) / (w.Cur(kNI) / w.Cur(kShares)) }),
		ratio("price_to_book", "Price to Book", "السعر إلى القيمة الدفترية", lb, keys(kPrice, kEquity, kShares),
			func(w Window) float64 { return w.Cur(kPrice) / (w.Cur(kEquity) / w.Cur(kShares)) }),
		ratio("price_to_sales", "Price to Sales", "السعر إلى المبيعات", lb, keys(kPrice, kShares, kRevenue),
			func(w Window) float64 { return w.Cur(kPrice) * w.Cur(kShares) / w.Cur(kRevenue) }),
		ratio("earnings_yield", "Earnings Yield (%)", "عائد الأرباح (%)", hb, keys(kNI, kPrice, kShares),
			func(w Window) float64 { return pct(w.Cur(kNI), w.Cur(kPrice)*w.Cur(kShares)) }),
		ratio("dividend_per_share", "Dividend per Share", "توزيعات السهم", hb, keys(kDiv, kShares),
			func(w Window) float64 { return w.Cur(kDiv) / w.Cur(kShares) }),
		ratio("dividend_payout", "Dividend Payout Ratio (%)", "نسبة توزيع الأرباح (%)", nt, keys(kDiv, kNI),
			func(w Window) float64 { return pct(w.Cur(kDiv), w.Cur(kNI)) }),
	}
}
