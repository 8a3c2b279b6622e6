package evaluate

import (
	"fmt"

	"github.com/seenimoa/finscope/pkg/models"
)

type templateKey struct {
	tier     models.Tier
	category models.Category
}

// recommendationTemplates hold one sentence per tier and category. %s is
// the analysis name in the matching language.
var recommendationTemplates = map[templateKey]models.Label{
	// Classical ratios
	{models.TierExcellent, models.CategoryClassical}: {
		En: "%s is well ahead of the industry; preserve the policies that sustain it.",
		Ar: "%s أعلى بكثير من متوسط القطاع؛ يُنصح بالمحافظة على السياسات الداعمة له.",
	},
	{models.TierVeryGood, models.CategoryClassical}: {
		En: "%s compares favorably with peers; keep monitoring it each period.",
		Ar: "%s أفضل من متوسط المنافسين؛ يُنصح بمتابعته في كل فترة.",
	},
	{models.TierGood, models.CategoryClassical}: {
		En: "%s is in line with the industry average.",
		Ar: "%s يتماشى مع متوسط القطاع.",
	},
	{models.TierAcceptable, models.CategoryClassical}: {
		En: "%s trails the industry; review the drivers behind it.",
		Ar: "%s أقل من متوسط القطاع؛ يُنصح بمراجعة العوامل المؤثرة فيه.",
	},
	{models.TierWeak, models.CategoryClassical}: {
		En: "%s is well below the industry; corrective action is recommended.",
		Ar: "%s أقل بكثير من متوسط القطاع؛ يُوصى باتخاذ إجراءات تصحيحية.",
	},

	// Structural analysis
	{models.TierExcellent, models.CategoryStructural}: {
		En: "The weight of %s in the statement structure is a clear advantage over peers.",
		Ar: "وزن %s في هيكل القوائم المالية ميزة واضحة مقارنة بالمنافسين.",
	},
	{models.TierVeryGood, models.CategoryStructural}: {
		En: "The weight of %s is healthier than the industry norm.",
		Ar: "وزن %s أفضل من المعتاد في القطاع.",
	},
	{models.TierGood, models.CategoryStructural}: {
		En: "The weight of %s matches the typical industry structure.",
		Ar: "وزن %s يطابق الهيكل المعتاد في القطاع.",
	},
	{models.TierAcceptable, models.CategoryStructural}: {
		En: "The weight of %s departs from the industry structure; reassess the mix.",
		Ar: "وزن %s يبتعد عن هيكل القطاع؛ يُنصح بإعادة تقييم التوزيع.",
	},
	{models.TierWeak, models.CategoryStructural}: {
		En: "The weight of %s is out of line with the industry; rebalance the structure.",
		Ar: "وزن %s غير متوافق مع القطاع؛ يُوصى بإعادة التوازن للهيكل.",
	},

	// Cash flow
	{models.TierExcellent, models.CategoryCashFlow}: {
		En: "%s shows strong cash generation relative to peers.",
		Ar: "%s يُظهر قدرة قوية على توليد النقد مقارنة بالمنافسين.",
	},
	{models.TierVeryGood, models.CategoryCashFlow}: {
		En: "%s indicates sound cash management.",
		Ar: "%s يشير إلى إدارة نقدية سليمة.",
	},
	{models.TierGood, models.CategoryCashFlow}: {
		En: "%s is consistent with industry cash flow patterns.",
		Ar: "%s متسق مع أنماط التدفقات النقدية في القطاع.",
	},
	{models.TierAcceptable, models.CategoryCashFlow}: {
		En: "%s points to pressure on cash; tighten working capital and spending.",
		Ar: "%s يشير إلى ضغط على النقدية؛ يُنصح بضبط رأس المال العامل والإنفاق.",
	},
	{models.TierWeak, models.CategoryCashFlow}: {
		En: "%s signals a cash shortfall; secure liquidity and revisit investment plans.",
		Ar: "%s ينذر بعجز نقدي؛ يُوصى بتأمين السيولة ومراجعة خطط الاستثمار.",
	},

	// Advanced analysis
	{models.TierExcellent, models.CategoryAdvanced}: {
		En: "%s places the company among the strongest in its industry.",
		Ar: "%s يضع الشركة بين الأقوى في قطاعها.",
	},
	{models.TierVeryGood, models.CategoryAdvanced}: {
		En: "%s is above the industry benchmark.",
		Ar: "%s أعلى من المعيار القطاعي.",
	},
	{models.TierGood, models.CategoryAdvanced}: {
		En: "%s is within the normal industry range.",
		Ar: "%s ضمن النطاق الطبيعي للقطاع.",
	},
	{models.TierAcceptable, models.CategoryAdvanced}: {
		En: "%s is a warning sign worth further investigation.",
		Ar: "%s مؤشر تحذيري يستحق مزيداً من الفحص.",
	},
	{models.TierWeak, models.CategoryAdvanced}: {
		En: "%s indicates elevated risk; a detailed review is recommended.",
		Ar: "%s يشير إلى مخاطر مرتفعة؛ يُوصى بمراجعة تفصيلية.",
	},
}

// Recommendation renders the template for tier and category with the
// analysis name substituted in each language.
func Recommendation(tier models.Tier, cat models.Category, name models.Label) models.Label {
	tpl, ok := recommendationTemplates[templateKey{tier, cat}]
	if !ok {
		return models.Label{}
	}
	return models.Label{
		En: fmt.Sprintf(tpl.En, name.En),
		Ar: fmt.Sprintf(tpl.Ar, name.Ar),
	}
}

// categoryTemplates summarize a whole category. %s is the category name.
var categoryTemplates = map[models.Tier]models.Label{
	models.TierExcellent: {
		En: "%s: overall performance is excellent against the industry.",
		Ar: "%s: الأداء العام ممتاز مقارنة بالقطاع.",
	},
	models.TierVeryGood: {
		En: "%s: overall performance is very good; build on the identified strengths.",
		Ar: "%s: الأداء العام جيد جداً؛ يُنصح بالبناء على نقاط القوة.",
	},
	models.TierGood: {
		En: "%s: overall performance is in line with the industry.",
		Ar: "%s: الأداء العام يتماشى مع القطاع.",
	},
	models.TierAcceptable: {
		En: "%s: overall performance is acceptable; address the listed weaknesses.",
		Ar: "%s: الأداء العام مقبول؛ يُنصح بمعالجة نقاط الضعف المذكورة.",
	},
	models.TierWeak: {
		En: "%s: overall performance is weak; a remediation plan is needed.",
		Ar: "%s: الأداء العام ضعيف؛ يلزم وضع خطة معالجة.",
	},
}

// CategoryRecommendation renders the category-level sentence for tier.
func CategoryRecommendation(tier models.Tier, cat models.Category) models.Label {
	tpl, ok := categoryTemplates[tier]
	if !ok {
		return models.Label{}
	}
	name := cat.Label()
	return models.Label{
		En: fmt.Sprintf(tpl.En, name.En),
		Ar: fmt.Sprintf(tpl.Ar, name.Ar),
	}
}
