package catalog

import (
	"math"

	"github.com/seenimoa/finscope/pkg/models"
)

func adv(id, en, ar string, dir models.Direction, inputs []string, f Formula) Definition {
	return point(models.CategoryAdvanced, "advanced."+id, en, ar, dir, inputs, f)
}

func advChange(id, en, ar string, dir models.Direction, inputs []string, f Formula) Definition {
	return change(models.CategoryAdvanced, "advanced."+id, en, ar, dir, inputs, f)
}

func advTrend(id, en, ar string, dir models.Direction, minYears int, inputs []string, f Formula) Definition {
	return trend(models.CategoryAdvanced, "advanced."+id, en, ar, dir, minYears, inputs, f)
}

// Beneish M-score indices. Each compares the evaluated year (i) with the
// year before it (i-1).

func dsri(w Window) float64 {
	return (w.Cur(kAR) / w.Cur(kRevenue)) / (w.Prev(kAR) / w.Prev(kRevenue))
}

func gmi(w Window) float64 {
	gm := func(i int) float64 { return (w.At(i, kRevenue) - w.At(i, kCOS)) / w.At(i, kRevenue) }
	return gm(last(w)-1) / gm(last(w))
}

func aqi(w Window) float64 {
	soft := func(i int) float64 { return 1 - (w.At(i, kCA)+w.At(i, kPPE))/w.At(i, kTA) }
	return soft(last(w)) / soft(last(w)-1)
}

func sgi(w Window) float64 { return w.Cur(kRevenue) / w.Prev(kRevenue) }

func depi(w Window) float64 {
	rate := func(i int) float64 { return w.At(i, kDep) / (w.At(i, kDep) + w.At(i, kPPE)) }
	return rate(last(w)-1) / rate(last(w))
}

func sgai(w Window) float64 {
	sga := func(i int) float64 { return (w.At(i, kSelling) + w.At(i, kAdmin)) / w.At(i, kRevenue) }
	return sga(last(w)) / sga(last(w)-1)
}

func lvgi(w Window) float64 {
	lev := func(i int) float64 { return (w.At(i, kCL) + w.At(i, kLTD)) / w.At(i, kTA) }
	return lev(last(w)) / lev(last(w)-1)
}

func tata(w Window) float64 { return (w.Cur(kNI) - w.Cur(kOCF)) / w.Cur(kTA) }

var beneishInputs = keys(kAR, kRevenue, kCOS, kCA, kPPE, kTA, kDep, kSelling, kAdmin, kCL, kLTD, kNI, kOCF)

func beneishM(w Window) float64 {
	return -4.84 + 0.92*dsri(w) + 0.528*gmi(w) + 0.404*aqi(w) + 0.892*sgi(w) +
		0.115*depi(w) - 0.172*sgai(w) + 4.679*tata(w) - 0.327*lvgi(w)
}

// piotroski counts the nine Piotroski F-score signals for the evaluated year.
func piotroski(w Window) float64 {
	cur, prev := last(w), last(w)-1
	roa := func(i int) float64 { return w.At(i, kNI) / w.At(i, kTA) }
	leverage := func(i int) float64 { return w.At(i, kLTD) / w.At(i, kTA) }
	current := func(i int) float64 { return w.At(i, kCA) / w.At(i, kCL) }
	margin := func(i int) float64 { return w.At(i, kGP) / w.At(i, kRevenue) }
	turnover := func(i int) float64 { return w.At(i, kRevenue) / w.At(i, kTA) }

	signals := []bool{
		roa(cur) > 0,
		w.Cur(kOCF) > 0,
		roa(cur) > roa(prev),
		w.Cur(kOCF) > w.Cur(kNI),
		leverage(cur) < leverage(prev),
		current(cur) > current(prev),
		w.Cur(kShares) <= w.Prev(kShares),
		margin(cur) > margin(prev),
		turnover(cur) > turnover(prev),
	}
	score := 0.0
	for _, ok := range signals {
		if ok {
			score++
		}
	}
	return score
}

func retention(w Window) float64 { return 1 - w.Cur(kDiv)/w.Cur(kNI) }

func ratioSeries(w Window, num, den string, scale float64) []float64 {
	n, d := w.Series(num), w.Series(den)
	out := make([]float64, len(n))
	for i := range n {
		out[i] = n[i] / d[i] * scale
	}
	return out
}

func seriesCAGR(key string) Formula {
	return func(w Window) float64 {
		s := w.Series(key)
		return cagr(s[0], s[len(s)-1], w.Span())
	}
}

// advancedAnalyses covers distress models, earnings-quality scores, growth
// and leverage dynamics, and multi-year statistical diagnostics.
func advancedAnalyses() []Definition {
	hb, lb, nt := models.HigherIsBetter, models.LowerIsBetter, models.Neutral

	return []Definition{
		// Distress and bankruptcy models
		adv("altman_z", "Altman Z-Score", "نموذج ألتمان للتنبؤ بالتعثر", hb, keys(kCA, kCL, kTA, kRE, kOI, kPrice, kShares, kTL, kRevenue),
			func(w Window) float64 {
				ta := w.Cur(kTA)
				return 1.2*(w.Cur(kCA)-w.Cur(kCL))/ta + 1.4*w.Cur(kRE)/ta + 3.3*w.Cur(kOI)/ta +
					0.6*(w.Cur(kPrice)*w.Cur(kShares))/w.Cur(kTL) + 1.0*w.Cur(kRevenue)/ta
			}),
		adv("altman_z_double_prime", "Altman Z''-Score (non-manufacturing)", "نموذج ألتمان المعدل للشركات غير الصناعية", hb, keys(kCA, kCL, kTA, kRE, kOI, kEquity, kTL),
			func(w Window) float64 {
				ta := w.Cur(kTA)
				return 6.56*(w.Cur(kCA)-w.Cur(kCL))/ta + 3.26*w.Cur(kRE)/ta + 6.72*w.Cur(kOI)/ta + 1.05*w.Cur(kEquity)/w.Cur(kTL)
			}),
		adv("springate_s", "Springate S-Score", "نموذج سبرينجيت", hb, keys(kCA, kCL, kTA, kOI, kIBT, kRevenue),
			func(w Window) float64 {
				ta := w.Cur(kTA)
				return 1.03*(w.Cur(kCA)-w.Cur(kCL))/ta + 3.07*w.Cur(kOI)/ta + 0.66*w.Cur(kIBT)/w.Cur(kCL) + 0.4*w.Cur(kRevenue)/ta
			}),
		adv("zmijewski_x", "Zmijewski X-Score", "نموذج زميجيفسكي", lb, keys(kNI, kTA, kTL, kCA, kCL),
			func(w Window) float64 {
				ta := w.Cur(kTA)
				return -4.336 - 4.513*w.Cur(kNI)/ta + 5.679*w.Cur(kTL)/ta + 0.004*w.Cur(kCA)/w.Cur(kCL)
			}),
		adv("grover_g", "Grover G-Score", "نموذج جروفر", hb, keys(kCA, kCL, kTA, kOI, kNI),
			func(w Window) float64 {
				ta := w.Cur(kTA)
				return 1.650*(w.Cur(kCA)-w.Cur(kCL))/ta + 3.404*w.Cur(kOI)/ta - 0.016*w.Cur(kNI)/ta + 0.057
			}),
		adv("taffler_z", "Taffler Z-Score", "نموذج تافلر", hb, keys(kIBT, kCL, kCA, kTL, kTA, kInv, kCOS, kOpex, kDep),
			func(w Window) float64 {
				daily := (w.Cur(kCOS) + w.Cur(kOpex) - w.Cur(kDep)) / daysInYear
				noCredit := (w.Cur(kCA) - w.Cur(kInv) - w.Cur(kCL)) / daily
				return 3.20 + 12.18*w.Cur(kIBT)/w.Cur(kCL) + 2.50*w.Cur(kCA)/w.Cur(kTL) -
					10.68*w.Cur(kCL)/w.Cur(kTA) + 0.029*noCredit
			}),

		// Earnings manipulation (Beneish)
		advChange("beneish_m", "Beneish M-Score", "نموذج بينيش لاكتشاف التلاعب", lb, beneishInputs, beneishM),
		advChange("beneish.dsri", "Days Sales in Receivables Index", "مؤشر أيام المبيعات في الذمم المدينة", lb, keys(kAR, kRevenue), dsri),
		advChange("beneish.gmi", "Gross Margin Index", "مؤشر هامش الربح الإجمالي", lb, keys(kRevenue, kCOS), gmi),
		advChange("beneish.aqi", "Asset Quality Index", "مؤشر جودة الأصول", lb, keys(kCA, kPPE, kTA), aqi),
		advChange("beneish.sgi", "Sales Growth Index", "مؤشر نمو المبيعات", nt, keys(kRevenue), sgi),
		advChange("beneish.depi", "Depreciation Index", "مؤشر الاستهلاك", lb, keys(kDep, kPPE), depi),
		advChange("beneish.sgai", "SG&A Expense Index", "مؤشر المصروفات البيعية والإدارية", lb, keys(kSelling, kAdmin, kRevenue), sgai),
		advChange("beneish.lvgi", "Leverage Index", "مؤشر الرافعة المالية", lb, keys(kCL, kLTD, kTA), lvgi),
		adv("beneish.tata", "Total Accruals to Total Assets", "إجمالي المستحقات إلى إجمالي الأصول", lb, keys(kNI, kOCF, kTA), tata),

		// Quality and growth capacity
		advChange("piotroski_f", "Piotroski F-Score", "مؤشر بيوتروسكي", hb, keys(kNI, kTA, kOCF, kLTD, kCA, kCL, kShares, kGP, kRevenue), piotroski),
		adv("sustainable_growth_rate", "Sustainable Growth Rate (%)", "معدل النمو المستدام (%)", hb, keys(kNI, kEquity, kDiv),
			func(w Window) float64 { return pct(w.Cur(kNI), w.Cur(kEquity)) * retention(w) }),
		adv("internal_growth_rate", "Internal Growth Rate (%)", "معدل النمو الداخلي (%)", hb, keys(kNI, kTA, kDiv),
			func(w Window) float64 {
				rb := w.Cur(kNI) / w.Cur(kTA) * retention(w)
				return rb / (1 - rb) * 100
			}),

		// Leverage dynamics
		advChange("degree_of_operating_leverage", "Degree of Operating Leverage", "درجة الرافعة التشغيلية", nt, keys(kOI, kRevenue),
			func(w Window) float64 {
				return growth(w.Cur(kOI), w.Prev(kOI)) / growth(w.Cur(kRevenue), w.Prev(kRevenue))
			}),
		advChange("degree_of_financial_leverage", "Degree of Financial Leverage", "درجة الرافعة المالية", nt, keys(kNI, kOI),
			func(w Window) float64 {
				return growth(w.Cur(kNI), w.Prev(kNI)) / growth(w.Cur(kOI), w.Prev(kOI))
			}),
		advChange("degree_of_combined_leverage", "Degree of Combined Leverage", "درجة الرافعة المركبة", nt, keys(kNI, kRevenue),
			func(w Window) float64 {
				return growth(w.Cur(kNI), w.Prev(kNI)) / growth(w.Cur(kRevenue), w.Prev(kRevenue))
			}),

		// Accruals
		adv("sloan_accruals", "Sloan Accrual Ratio (%)", "نسبة المستحقات لسلون (%)", lb, keys(kNI, kOCF, kICF, kTA),
			func(w Window) float64 { return pct(w.Cur(kNI)-w.Cur(kOCF)-w.Cur(kICF), w.Cur(kTA)) }),
		advChange("balance_sheet_accruals", "Balance Sheet Accrual Ratio (%)", "نسبة مستحقات الميزانية (%)", lb, keys(kCA, kCash, kCL, kSTD, kDep, kTA),
			func(w Window) float64 {
				dCA := w.Cur(kCA) - w.Prev(kCA)
				dCash := w.Cur(kCash) - w.Prev(kCash)
				dCL := w.Cur(kCL) - w.Prev(kCL)
				dSTD := w.Cur(kSTD) - w.Prev(kSTD)
				avgTA := (w.Cur(kTA) + w.Prev(kTA)) / 2
				return pct((dCA-dCash)-(dCL-dSTD)-w.Cur(kDep), avgTA)
			}),

		// Multi-year growth
		advTrend("revenue_cagr", "Revenue CAGR (%)", "معدل النمو السنوي المركب للإيرادات (%)", hb, 2, keys(kRevenue), seriesCAGR(kRevenue)),
		advTrend("net_income_cagr", "Net Income CAGR (%)", "معدل النمو السنوي المركب لصافي الربح (%)", hb, 2, keys(kNI), seriesCAGR(kNI)),
		advTrend("total_assets_cagr", "Total Assets CAGR (%)", "معدل النمو السنوي المركب للأصول (%)", nt, 2, keys(kTA), seriesCAGR(kTA)),
		advTrend("equity_cagr", "Equity CAGR (%)", "معدل النمو السنوي المركب لحقوق الملكية (%)", hb, 2, keys(kEquity), seriesCAGR(kEquity)),
		advTrend("operating_cash_flow_cagr", "Operating Cash Flow CAGR (%)", "معدل النمو السنوي المركب للتدفق التشغيلي (%)", hb, 2, keys(kOCF), seriesCAGR(kOCF)),

		// Statistical diagnostics
		advTrend("revenue_volatility", "Revenue Growth Volatility", "تذبذب نمو الإيرادات", lb, 3, keys(kRevenue),
			func(w Window) float64 { return stddev(yoy(w.Series(kRevenue))) }),
		advTrend("net_margin_volatility", "Net Margin Volatility", "تذبذب هامش صافي الربح", lb, 3, keys(kNI, kRevenue),
			func(w Window) float64 { return stddev(ratioSeries(w, kNI, kRevenue, 100)) }),
		advTrend("revenue_trend_slope", "Revenue Trend Slope (% of mean)", "ميل اتجاه الإيرادات (% من المتوسط)", hb, 3, keys(kRevenue),
			func(w Window) float64 {
				s := w.Series(kRevenue)
				return slope(s) / math.Abs(mean(s)) * 100
			}),
		advTrend("net_income_trend_slope", "Net Income Trend Slope (% of mean)", "ميل اتجاه صافي الربح (% من المتوسط)", hb, 3, keys(kNI),
			func(w Window) float64 {
				s := w.Series(kNI)
				return slope(s) / math.Abs(mean(s)) * 100
			}),
		advTrend("gross_margin_trend", "Gross Margin Trend (pts)", "اتجاه هامش الربح الإجمالي (نقاط)", hb, 2, keys(kGP, kRevenue),
			func(w Window) float64 {
				m := ratioSeries(w, kGP, kRevenue, 100)
				return m[len(m)-1] - m[0]
			}),
		advTrend("earnings_consistency", "Earnings Growth Consistency (%)", "ثبات نمو الأرباح (%)", hb, 3, keys(kNI),
			func(w Window) float64 {
				s := w.Series(kNI)
				up := 0
				for i := 1; i < len(s); i++ {
					if s[i] > s[i-1] {
						up++
					}
				}
				return float64(up) / float64(len(s)-1) * 100
			}),
		advTrend("average_roe", "Average Return on Equity (%)", "متوسط العائد على حقوق الملكية (%)", hb, 2, keys(kNI, kEquity),
			func(w Window) float64 { return mean(ratioSeries(w, kNI, kEquity, 100)) }),
		advTrend("average_cash_conversion", "Average Operating Cash Flow to Net Income", "متوسط التدفق التشغيلي إلى صافي الربح", hb, 2, keys(kOCF, kNI),
			func(w Window) float64 { return mean(ratioSeries(w, kOCF, kNI, 1)) }),
	}
}
