package catalog

import "github.com/seenimoa/finscope/pkg/models"

type lineItem struct {
	key string
	en  string
	ar  string
	dir models.Direction
}

// structuralAnalyses covers vertical (common-size) analysis of the balance
// sheet and income statement, and horizontal year-over-year analysis.
func structuralAnalyses() []Definition {
	hb, lb, nt := models.HigherIsBetter, models.LowerIsBetter, models.Neutral

	assets := []lineItem{
		{kCash, "Cash", "النقدية", nt},
		{kSTI, "Short-term Investments", "الاستثمارات قصيرة الأجل", nt},
		{kAR, "Accounts Receivable", "الذمم المدينة", nt},
		{kInv, "Inventory", "المخزون", nt},
		{models.KeyPrepaidExpenses, "Prepaid Expenses", "المصروفات المدفوعة مقدماً", nt},
		{models.KeyOtherCurrentAssets, "Other Current Assets", "أصول متداولة أخرى", nt},
		{kCA, "Current Assets", "الأصول المتداولة", nt},
		{kPPE, "Property, Plant and Equipment", "الممتلكات والمصانع والمعدات", nt},
		{models.KeyIntangibleAssets, "Intangible Assets", "الأصول غير الملموسة", nt},
		{models.KeyGoodwill, "Goodwill", "الشهرة", nt},
		{models.KeyLongTermInvestments, "Long-term Investments", "الاستثمارات طويلة الأجل", nt},
		{models.KeyOtherNoncurrentAssets, "Other Non-current Assets", "أصول غير متداولة أخرى", nt},
		{kNCA, "Non-current Assets", "الأصول غير المتداولة", nt},
	}
	funding := []lineItem{
		{kAP, "Accounts Payable", "الذمم الدائنة", nt},
		{kSTD, "Short-term Debt", "الديون قصيرة الأجل", lb},
		{models.KeyAccruedLiabilities, "Accrued Liabilities", "المصروفات المستحقة", nt},
		{models.KeyOtherCurrentLiabilities, "Other Current Liabilities", "التزامات متداولة أخرى", nt},
		{kCL, "Current Liabilities", "الالتزامات المتداولة", lb},
		{kLTD, "Long-term Debt", "الديون طويلة الأجل", lb},
		{models.KeyOtherNoncurrentLiabilities, "Other Non-current Liabilities", "التزامات غير متداولة أخرى", nt},
		{models.KeyNoncurrentLiabilities, "Non-current Liabilities", "الالتزامات غير المتداولة", nt},
		{kTL, "Total Liabilities", "إجمالي الالتزامات", lb},
		{models.KeyShareCapital, "Share Capital", "رأس المال المدفوع", nt},
		{kRE, "Retained Earnings", "الأرباح المحتجزة", hb},
		{kEquity, "Total Equity", "إجمالي حقوق الملكية", hb},
	}
	income := []lineItem{
		{kCOS, "Cost of Sales", "تكلفة المبيعات", lb},
		{kGP, "Gross Profit", "مجمل الربح", hb},
		{kSelling, "Selling Expenses", "مصروفات البيع والتسويق", lb},
		{kAdmin, "Administrative Expenses", "المصروفات الإدارية", lb},
		{kOpex, "Operating Expenses", "المصروفات التشغيلية", lb},
		{kDep, "Depreciation", "الاستهلاك", nt},
		{kOI, "Operating Income", "الربح التشغيلي", hb},
		{kInterest, "Interest Expense", "مصروف الفوائد", lb},
		{models.KeyOtherIncome, "Other Income", "إيرادات أخرى", nt},
		{kIBT, "Income Before Tax", "الربح قبل الضريبة", hb},
		{kTax, "Income Tax", "ضريبة الدخل", nt},
		{kNI, "Net Income", "صافي الربح", hb},
	}
	horizontal := []lineItem{
		{kRevenue, "Revenue", "الإيرادات", hb},
		{kGP, "Gross Profit", "مجمل الربح", hb},
		{kOI, "Operating Income", "الربح التشغيلي", hb},
		{kNI, "Net Income", "صافي الربح", hb},
		{kTA, "Total Assets", "إجمالي الأصول", nt},
		{kEquity, "Total Equity", "إجمالي حقوق الملكية", hb},
		{kTL, "Total Liabilities", "إجمالي الالتزامات", lb},
		{kCA, "Current Assets", "الأصول المتداولة", nt},
		{kCL, "Current Liabilities", "الالتزامات المتداولة", lb},
		{kInv, "Inventory", "المخزون", nt},
		{kAR, "Accounts Receivable", "الذمم المدينة", nt},
		{kOpex, "Operating Expenses", "المصروفات التشغيلية", lb},
		{kPPE, "Property, Plant and Equipment", "الممتلكات والمصانع والمعدات", nt},
	}

	var defs []Definition
	for _, it := range assets {
		defs = append(defs, commonSize("structure.assets.", it, kTA, "of Total Assets", "من إجمالي الأصول"))
	}
	for _, it := range funding {
		defs = append(defs, commonSize("structure.funding.", it, kTA, "of Total Assets", "من إجمالي الأصول"))
	}
	for _, it := range income {
		defs = append(defs, commonSize("structure.income.", it, kRevenue, "of Revenue", "من الإيرادات"))
	}
	for _, it := range horizontal {
		defs = append(defs, yearOverYear(it))
	}
	return defs
}

func commonSize(prefix string, it lineItem, base, enSuffix, arSuffix string) Definition {
	key := it.key
	return point(models.CategoryStructural, prefix+key,
		it.en+" "+enSuffix+" (%)", it.ar+" "+arSuffix+" (%)",
		it.dir, keys(key, base),
		func(w Window) float64 { return pct(w.Cur(key), w.Cur(base)) })
}

func yearOverYear(it lineItem) Definition {
	key := it.key
	return change(models.CategoryStructural, "structure.change."+key,
		"Change in "+it.en+" (%)", "التغير في "+it.ar+" (%)",
		it.dir, keys(key),
		func(w Window) float64 { return growth(w.Cur(key), w.Prev(key)) })
}
