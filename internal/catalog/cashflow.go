package catalog

import "github.com/seenimoa/finscope/pkg/models"

func cf(id, en, ar string, dir models.Direction, inputs []string, f Formula) Definition {
	return point(models.CategoryCashFlow, "cashflow."+id, en, ar, dir, inputs, f)
}

func freeCashFlow(w Window) float64 { return w.Cur(kOCF) - w.Cur(kCapex) }

func cashFlowAnalyses() []Definition {
	hb, lb, nt := models.HigherIsBetter, models.LowerIsBetter, models.Neutral

	return []Definition{
		cf("operating_cash_flow_ratio", "Operating Cash Flow Ratio", "نسبة التدفق النقدي التشغيلي", hb, keys(kOCF, kCL),
			func(w Window) float64 { return w.Cur(kOCF) / w.Cur(kCL) }),
		cf("cash_flow_margin", "Operating Cash Flow Margin (%)", "هامش التدفق النقدي التشغيلي (%)", hb, keys(kOCF, kRevenue),
			func(w Window) float64 { return pct(w.Cur(kOCF), w.Cur(kRevenue)) }),
		cf("free_cash_flow", "Free Cash Flow", "التدفق النقدي الحر", hb, keys(kOCF, kCapex),
			freeCashFlow),
		cf("free_cash_flow_margin", "Free Cash Flow Margin (%)", "هامش التدفق النقدي الحر (%)", hb, keys(kOCF, kCapex, kRevenue),
			func(w Window) float64 { return pct(freeCashFlow(w), w.Cur(kRevenue)) }),
		cf("earnings_quality", "Operating Cash Flow to Net Income", "جودة الأرباح (التدفق التشغيلي إلى صافي الربح)", hb, keys(kOCF, kNI),
			func(w Window) float64 { return w.Cur(kOCF) / w.Cur(kNI) }),
		cf("capex_to_operating_cash_flow", "Capex to Operating Cash Flow", "الإنفاق الرأسمالي إلى التدفق التشغيلي", nt, keys(kCapex, kOCF),
			func(w Window) float64 { return w.Cur(kCapex) / w.Cur(kOCF) }),
		cf("capex_to_revenue", "Capex to Revenue (%)", "الإنفاق الرأسمالي إلى الإيرادات (%)", nt, keys(kCapex, kRevenue),
			func(w Window) float64 { return pct(w.Cur(kCapex), w.Cur(kRevenue)) }),
		cf("capex_to_depreciation", "Capex to Depreciation", "الإنفاق الرأسمالي إلى الاستهلاك", nt, keys(kCapex, kDep),
			func(w Window) float64 { return w.Cur(kCapex) / w.Cur(kDep) }),
		cf("cash_flow_to_debt", "Operating Cash Flow to Debt", "التدفق التشغيلي إلى الديون", hb, keys(kOCF, kSTD, kLTD),
			func(w Window) float64 { return w.Cur(kOCF) / totalDebt(w, last(w)) }),
		cf("cash_return_on_assets", "Cash Return on Assets (%)", "العائد النقدي على الأصول (%)", hb, keys(kOCF, kTA),
			func(w Window) float64 { return pct(w.Cur(kOCF), w.Cur(kTA)) }),
		cf("cash_return_on_equity", "Cash Return on Equity (%)", "العائد النقدي على حقوق الملكية (%)", hb, keys(kOCF, kEquity),
			func(w Window) float64 { return pct(w.Cur(kOCF), w.Cur(kEquity)) }),
		cf("dividend_coverage", "Cash Dividend Coverage", "تغطية التوزيعات النقدية", hb, keys(kOCF, kDiv),
			func(w Window) float64 { return w.Cur(kOCF) / w.Cur(kDiv) }),
		cf("debt_service_coverage", "Cash Debt Service Coverage", "تغطية خدمة الدين النقدية", hb, keys(kOCF, kIntPaid, kRepay),
			func(w Window) float64 { return w.Cur(kOCF) / (w.Cur(kIntPaid) + w.Cur(kRepay)) }),
		cf("cash_interest_coverage", "Cash Interest Coverage", "التغطية النقدية للفوائد", hb, keys(kOCF, kIntPaid, kTaxPaid),
			func(w Window) float64 { return (w.Cur(kOCF) + w.Cur(kIntPaid) + w.Cur(kTaxPaid)) / w.Cur(kIntPaid) }),
		cf("reinvestment_ratio", "Cash Reinvestment Ratio", "نسبة إعادة الاستثمار النقدي", nt, keys(kCapex, kOCF, kDiv),
			func(w Window) float64 { return w.Cur(kCapex) / (w.Cur(kOCF) - w.Cur(kDiv)) }),
		cf("cash_flow_adequacy", "Cash Flow Adequacy", "كفاية التدفقات النقدية", hb, keys(kOCF, kCapex, kRepay, kDiv),
			func(w Window) float64 { return w.Cur(kOCF) / (w.Cur(kCapex) + w.Cur(kRepay) + w.Cur(kDiv)) }),
		cf("free_cash_flow_to_equity", "Free Cash Flow to Equity", "التدفق النقدي الحر لحملة الأسهم", hb, keys(kOCF, kCapex, kRepay, kIssued),
			func(w Window) float64 { return freeCashFlow(w) - w.Cur(kRepay) + w.Cur(kIssued) }),
		cf("free_cash_flow_per_share", "Free Cash Flow per Share", "التدفق النقدي الحر للسهم", hb, keys(kOCF, kCapex, kShares),
			func(w Window) float64 { return freeCashFlow(w) / w.Cur(kShares) }),
		cf("operating_cash_flow_per_share", "Operating Cash Flow per Share", "التدفق النقدي التشغيلي للسهم", hb, keys(kOCF, kShares),
			func(w Window) float64 { return w.Cur(kOCF) / w.Cur(kShares) }),
		cf("cash_tax_rate", "Cash Tax Rate (%)", "معدل الضريبة النقدي (%)", nt, keys(kTaxPaid, kIBT),
			func(w Window) float64 { return pct(w.Cur(kTaxPaid), w.Cur(kIBT)) }),
		cf("net_change_in_cash_to_assets", "Net Change in Cash to Total Assets (%)", "صافي التغير في النقدية إلى إجمالي الأصول (%)", nt, keys(kNetCash, kTA),
			func(w Window) float64 { return pct(w.Cur(kNetCash), w.Cur(kTA)) }),
		cf("investing_to_operating", "Investing Outflow to Operating Cash Flow", "التدفق الاستثماري إلى التدفق التشغيلي", nt, keys(kICF, kOCF),
			func(w Window) float64 { return -w.Cur(kICF) / w.Cur(kOCF) }),
		cf("financing_to_operating", "Financing Cash Flow to Operating Cash Flow", "التدفق التمويلي إلى التدفق التشغيلي", nt, keys(kFinCF, kOCF),
			func(w Window) float64 { return w.Cur(kFinCF) / w.Cur(kOCF) }),
		cf("free_cash_flow_to_net_income", "Free Cash Flow to Net Income", "التدفق النقدي الحر إلى صافي الربح", hb, keys(kOCF, kCapex, kNI),
			func(w Window) float64 { return freeCashFlow(w) / w.Cur(kNI) }),
		cf("cash_flow_coverage_of_liabilities", "Operating Cash Flow to Total Liabilities", "التدفق التشغيلي إلى إجمالي الالتزامات", hb, keys(kOCF, kTL),
			func(w Window) float64 { return w.Cur(kOCF) / w.Cur(kTL) }),
		cf("current_liability_coverage", "Current Liability Coverage", "تغطية الالتزامات المتداولة", hb, keys(kOCF, kDiv, kCL),
			func(w Window) float64 { return (w.Cur(kOCF) - w.Cur(kDiv)) / w.Cur(kCL) }),
		cf("operating_cash_flow_to_ebitda", "Operating Cash Flow to EBITDA", "التدفق التشغيلي إلى الأرباح قبل الفوائد والضرائب والاستهلاك", hb, keys(kOCF, kOI, kDep),
			func(w Window) float64 { return w.Cur(kOCF) / (w.Cur(kOI) + w.Cur(kDep)) }),
		cf("dividend_payout_of_free_cash_flow", "Dividends to Free Cash Flow (%)", "التوزيعات إلى التدفق النقدي الحر (%)", lb, keys(kDiv, kOCF, kCapex),
			func(w Window) float64 { return pct(w.Cur(kDiv), freeCashFlow(w)) }),
		cf("free_cash_flow_yield", "Free Cash Flow Yield (%)", "عائد التدفق النقدي الحر (%)", hb, keys(kOCF, kCapex, kPrice, kShares),
			func(w Window) float64 { return pct(freeCashFlow(w), w.Cur(kPrice)*w.Cur(kShares)) }),
		cf("price_to_cash_flow", "Price to Operating Cash Flow", "السعر إلى التدفق النقدي التشغيلي", lb, keys(kPrice, kShares, kOCF),
			func(w Window) float64 { return w.Cur(kPrice) * w.Cur(kShares) / w.Cur(kOCF) }),
		cf("capex_to_total_assets", "Capex to Total Assets (%)", "الإنفاق الرأسمالي إلى إجمالي الأصول (%)", nt, keys(kCapex, kTA),
			func(w Window) float64 { return pct(w.Cur(kCapex), w.Cur(kTA)) }),
		cf("cash_accumulation", "Net Change in Cash to Operating Cash Flow", "صافي التغير في النقدية إلى التدفق التشغيلي", nt, keys(kNetCash, kOCF),
			func(w Window) float64 { return w.Cur(kNetCash) / w.Cur(kOCF) }),
		change(models.CategoryCashFlow, "cashflow.operating_cash_flow_growth", "Operating Cash Flow Growth (%)", "نمو التدفق النقدي التشغيلي (%)", hb, keys(kOCF),
			func(w Window) float64 { return growth(w.Cur(kOCF), w.Prev(kOCF)) }),
		change(models.CategoryCashFlow, "cashflow.free_cash_flow_growth", "Free Cash Flow Growth (%)", "نمو التدفق النقدي الحر (%)", hb, keys(kOCF, kCapex),
			func(w Window) float64 {
				return growth(w.Cur(kOCF)-w.Cur(kCapex), w.Prev(kOCF)-w.Prev(kCapex))
			}),
		cf("cash_to_debt", "Cash to Total Debt", "النقدية إلى إجمالي الديون", hb, keys(kCash, kSTD, kLTD),
			func(w Window) float64 { return w.Cur(kCash) / totalDebt(w, last(w)) }),
	}
}
