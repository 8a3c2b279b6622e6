package models

import "time"

// OutcomeStatus is the terminal state of one analysis within a run.
type OutcomeStatus string

const (
	StatusSucceeded OutcomeStatus = "succeeded"
	StatusSkipped   OutcomeStatus = "skipped"
	StatusFailed    OutcomeStatus = "failed"
)

// AnalysisOutcome ties together everything a run produced for one analysis id.
type AnalysisOutcome struct {
	ID         string            `json:"id"`
	Category   Category          `json:"category"`
	Name       Label             `json:"name"`
	Status     OutcomeStatus     `json:"status"`
	Computed   ComputedAnalysis  `json:"computed"`
	Evaluation *EvaluationResult `json:"evaluation,omitempty"`
	SkipReason string            `json:"skip_reason,omitempty"`
	Error      *AnalysisError    `json:"error,omitempty"`
}

// CategoryCounts tallies outcomes for one category.
type CategoryCounts struct {
	Succeeded int `json:"succeeded"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// CategorySummary rolls up the evaluations of one category.
type CategorySummary struct {
	Category        Category       `json:"category"`
	Name            Label          `json:"name"`
	AnalysisIDs     []string       `json:"analysis_ids"`
	Performance     Tier           `json:"performance,omitempty"`
	Strengths       []string       `json:"strengths"`
	Weaknesses      []string       `json:"weaknesses"`
	Recommendations []Label        `json:"recommendations"`
	Counts          CategoryCounts `json:"counts"`
}

// ExecutiveSummary is the cross-category view of a run.
type ExecutiveSummary struct {
	Performance     Tier     `json:"performance,omitempty"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []Label  `json:"recommendations"`
}

// RunMeta describes a run and its accounting.
type RunMeta struct {
	RunID           string    `json:"run_id"`
	Company         string    `json:"company"`
	GeneratedAt     time.Time `json:"generated_at"`
	Sector          string    `json:"sector"`
	LegalEntity     string    `json:"legal_entity"`
	ComparisonLevel string    `json:"comparison_level"`
	Language        Language  `json:"language"`
	Years           []int     `json:"years"`
	BenchmarkKey    string    `json:"benchmark_key"`
	BenchmarkSource string    `json:"benchmark_source"`
	LowConfidence   bool      `json:"low_confidence"`
	Attempted       int       `json:"attempted"`
	Succeeded       int       `json:"succeeded"`
	Skipped         int       `json:"skipped"`
	Failed          int       `json:"failed"`
}

// AnalysisReport is the sole object handed to report, chart and persistence collaborators.
type AnalysisReport struct {
	Meta       RunMeta           `json:"meta"`
	Executive  ExecutiveSummary  `json:"executive_summary"`
	Categories []CategorySummary `json:"categories"`
	Outcomes   []AnalysisOutcome `json:"outcomes"`
}

// Outcome returns the outcome recorded for id.
func (r *AnalysisReport) Outcome(id string) (AnalysisOutcome, bool) {
	for _, o := range r.Outcomes {
		if o.ID == id {
			return o, true
		}
	}
	return AnalysisOutcome{}, false
}

// Evaluations returns every evaluation of the run in catalog order.
func (r *AnalysisReport) Evaluations() []EvaluationResult {
	var out []EvaluationResult
	for _, o := range r.Outcomes {
		if o.Evaluation != nil {
			out = append(out, *o.Evaluation)
		}
	}
	return out
}

// ChartPoint is the value/benchmark pair a chart needs for one analysis.
type ChartPoint struct {
	Value     float64 `json:"value"`
	Benchmark float64 `json:"benchmark"`
	Tier      Tier    `json:"tier"`
}

// ChartPoints maps each evaluated analysis id to its value and benchmark.
func (r *AnalysisReport) ChartPoints() map[string]ChartPoint {
	points := make(map[string]ChartPoint)
	for _, o := range r.Outcomes {
		if o.Evaluation == nil {
			continue
		}
		points[o.ID] = ChartPoint{
			Value:     o.Evaluation.Value,
			Benchmark: o.Evaluation.Average,
			Tier:      o.Evaluation.Tier,
		}
	}
	return points
}
