package models

import "fmt"

// Language selects the presentation language of labels.
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

// Label is a bilingual display string.
type Label struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

// In returns the label text for lang, falling back to English.
func (l Label) In(lang Language) string {
	if lang == Arabic && l.Ar != "" {
		return l.Ar
	}
	return l.En
}

// Category groups analyses in the catalog.
type Category string

const (
	CategoryClassical  Category = "classical_ratio"
	CategoryStructural Category = "structural"
	CategoryCashFlow   Category = "cash_flow"
	CategoryAdvanced   Category = "advanced"
)

// Categories returns every category in report order.
func Categories() []Category {
	return []Category{CategoryClassical, CategoryStructural, CategoryCashFlow, CategoryAdvanced}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryClassical, CategoryStructural, CategoryCashFlow, CategoryAdvanced:
		return true
	}
	return false
}

// Label returns the bilingual category name.
func (c Category) Label() Label {
	switch c {
	case CategoryClassical:
		return Label{En: "Classical Financial Ratios", Ar: "النسب المالية الكلاسيكية"}
	case CategoryStructural:
		return Label{En: "Structural Analysis", Ar: "التحليل الهيكلي"}
	case CategoryCashFlow:
		return Label{En: "Cash Flow Analysis", Ar: "تحليل التدفقات النقدية"}
	case CategoryAdvanced:
		return Label{En: "Advanced Analysis", Ar: "التحليل المتقدم"}
	}
	return Label{En: string(c), Ar: string(c)}
}

// Direction states which way a metric is favorable.
type Direction string

const (
	HigherIsBetter Direction = "higher_is_better"
	LowerIsBetter  Direction = "lower_is_better"
	Neutral        Direction = "neutral"
)

// Tier is the discrete evaluation of a metric against its benchmark.
type Tier string

const (
	TierExcellent  Tier = "excellent"
	TierVeryGood   Tier = "very_good"
	TierGood       Tier = "good"
	TierAcceptable Tier = "acceptable"
	TierWeak       Tier = "weak"
)

// Tiers returns all tiers from best to worst.
func Tiers() []Tier {
	return []Tier{TierExcellent, TierVeryGood, TierGood, TierAcceptable, TierWeak}
}

// Rank orders tiers: 4 for excellent down to 0 for weak, -1 if unknown.
func (t Tier) Rank() int {
	switch t {
	case TierExcellent:
		return 4
	case TierVeryGood:
		return 3
	case TierGood:
		return 2
	case TierAcceptable:
		return 1
	case TierWeak:
		return 0
	}
	return -1
}

// Label returns the bilingual tier name.
func (t Tier) Label() Label {
	switch t {
	case TierExcellent:
		return Label{En: "Excellent", Ar: "ممتاز"}
	case TierVeryGood:
		return Label{En: "Very Good", Ar: "جيد جداً"}
	case TierGood:
		return Label{En: "Good", Ar: "جيد"}
	case TierAcceptable:
		return Label{En: "Acceptable", Ar: "مقبول"}
	case TierWeak:
		return Label{En: "Weak", Ar: "ضعيف"}
	}
	return Label{En: string(t), Ar: string(t)}
}

// Comparison is the position of a value relative to its benchmark.
type Comparison string

const (
	Higher Comparison = "higher"
	Equal  Comparison = "equal"
	Lower  Comparison = "lower"
)

// ResultKind tags the variant held by a ComputedAnalysis.
type ResultKind string

const (
	ResultNumeric       ResultKind = "numeric"
	ResultNotApplicable ResultKind = "not_applicable"
	ResultError         ResultKind = "error"
)

// Point is one year of a computed series.
type Point struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// ErrorKind classifies a per-analysis failure.
type ErrorKind string

const (
	ErrorComputation ErrorKind = "computation"
	ErrorPanic       ErrorKind = "panic"
)

// AnalysisError records a failure isolated to one analysis.
type AnalysisError struct {
	ID      string    `json:"id"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis %s: %s: %s", e.ID, e.Kind, e.Message)
}

// ComputedAnalysis is the outcome of evaluating one definition. Exactly one
// of Series, Reason or Error is populated, according to Kind.
type ComputedAnalysis struct {
	ID     string         `json:"id"`
	Kind   ResultKind     `json:"kind"`
	Series []Point        `json:"series,omitempty"`
	Reason string         `json:"reason,omitempty"`
	Error  *AnalysisError `json:"error,omitempty"`
}

// Numeric builds a numeric result. The series must be chronological and non-empty.
func Numeric(id string, series []Point) ComputedAnalysis {
	return ComputedAnalysis{ID: id, Kind: ResultNumeric, Series: series}
}

// NotApplicable builds a non-error non-result with the given reason.
func NotApplicable(id, reason string) ComputedAnalysis {
	return ComputedAnalysis{ID: id, Kind: ResultNotApplicable, Reason: reason}
}

// Failed builds an error result.
func Failed(id string, kind ErrorKind, msg string) ComputedAnalysis {
	return ComputedAnalysis{ID: id, Kind: ResultError, Error: &AnalysisError{ID: id, Kind: kind, Message: msg}}
}

// Latest returns the most recent point of a numeric result.
func (c ComputedAnalysis) Latest() (Point, bool) {
	if c.Kind != ResultNumeric || len(c.Series) == 0 {
		return Point{}, false
	}
	return c.Series[len(c.Series)-1], true
}

// EvaluationResult is a computed value scored against its benchmark.
type EvaluationResult struct {
	ID                string     `json:"id"`
	Category          Category   `json:"category"`
	Name              Label      `json:"name"`
	Year              int        `json:"year"`
	Value             float64    `json:"value"`
	Average           float64    `json:"average"`
	PercentDifference float64    `json:"percent_difference"`
	Comparison        Comparison `json:"comparison"`
	PeerRank          int        `json:"peer_rank,omitempty"`
	PeerTotal         int        `json:"peer_total,omitempty"`
	Tier              Tier       `json:"tier"`
	Recommendation    Label      `json:"recommendation"`
	LowConfidence     bool       `json:"low_confidence,omitempty"`
}
