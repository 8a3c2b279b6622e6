// Package aggregate rolls per-analysis outcomes up into category summaries
// and an executive summary.
package aggregate

import (
	"sort"

	"github.com/seenimoa/finscope/internal/evaluate"
	"github.com/seenimoa/finscope/pkg/models"
)

// DefaultTopK is the number of strengths and weaknesses kept per category.
const DefaultTopK = 3

// Aggregate summarizes outcomes, which must be in catalog order and
// terminal. Categories without outcomes are omitted; the rest follow
// models.Categories order.
func Aggregate(outcomes []models.AnalysisOutcome, topK int) (models.ExecutiveSummary, []models.CategorySummary) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	byCat := make(map[models.Category][]models.AnalysisOutcome)
	for _, o := range outcomes {
		byCat[o.Category] = append(byCat[o.Category], o)
	}

	summaries := make([]models.CategorySummary, 0, len(models.Categories()))
	var all []models.EvaluationResult
	for _, cat := range models.Categories() {
		group := byCat[cat]
		if len(group) == 0 {
			continue
		}
		s := summarize(cat, group, topK)
		summaries = append(summaries, s)
		for _, o := range group {
			if o.Evaluation != nil {
				all = append(all, *o.Evaluation)
			}
		}
	}

	exec := models.ExecutiveSummary{
		Performance:     MajorityTier(all),
		Strengths:       []string{},
		Weaknesses:      []string{},
		Recommendations: []models.Label{},
	}
	seen := make(map[string]bool)
	seenRec := make(map[models.Label]bool)
	for _, s := range summaries {
		exec.Strengths = appendUnique(exec.Strengths, s.Strengths, seen)
		exec.Weaknesses = appendUnique(exec.Weaknesses, s.Weaknesses, seen)
		for _, r := range s.Recommendations {
			if !seenRec[r] {
				seenRec[r] = true
				exec.Recommendations = append(exec.Recommendations, r)
			}
		}
	}
	return exec, summaries
}

func summarize(cat models.Category, group []models.AnalysisOutcome, topK int) models.CategorySummary {
	s := models.CategorySummary{
		Category:        cat,
		Name:            cat.Label(),
		AnalysisIDs:     make([]string, 0, len(group)),
		Strengths:       []string{},
		Weaknesses:      []string{},
		Recommendations: []models.Label{},
	}

	var evals []models.EvaluationResult
	for _, o := range group {
		s.AnalysisIDs = append(s.AnalysisIDs, o.ID)
		switch o.Status {
		case models.StatusSucceeded:
			s.Counts.Succeeded++
		case models.StatusSkipped:
			s.Counts.Skipped++
		case models.StatusFailed:
			s.Counts.Failed++
		}
		if o.Evaluation != nil {
			evals = append(evals, *o.Evaluation)
		}
	}
	if len(evals) == 0 {
		return s
	}

	s.Performance = MajorityTier(evals)
	strengths := Strengths(evals, topK)
	weaknesses := Weaknesses(evals, topK)
	for _, e := range strengths {
		s.Strengths = append(s.Strengths, e.ID)
	}

	s.Recommendations = append(s.Recommendations, evaluate.CategoryRecommendation(s.Performance, cat))
	for _, e := range weaknesses {
		s.Weaknesses = append(s.Weaknesses, e.ID)
		s.Recommendations = append(s.Recommendations, e.Recommendation)
	}
	return s
}

// MajorityTier returns the most frequent tier. Ties resolve to the lower
// tier. It returns "" for no evaluations.
func MajorityTier(evals []models.EvaluationResult) models.Tier {
	counts := make(map[models.Tier]int)
	for _, e := range evals {
		counts[e.Tier]++
	}
	var best models.Tier
	bestCount := 0
	tiers := models.Tiers()
	for i := len(tiers) - 1; i >= 0; i-- {
		if c := counts[tiers[i]]; c > bestCount {
			best, bestCount = tiers[i], c
		}
	}
	return best
}

// Strengths returns up to k evaluations rated very good or better, best
// tier first and then by id.
func Strengths(evals []models.EvaluationResult, k int) []models.EvaluationResult {
	var out []models.EvaluationResult
	for _, e := range evals {
		if e.Tier.Rank() >= models.TierVeryGood.Rank() {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if ri, rj := out[i].Tier.Rank(), out[j].Tier.Rank(); ri != rj {
			return ri > rj
		}
		return out[i].ID < out[j].ID
	})
	return head(out, k)
}

// Weaknesses returns up to k evaluations rated acceptable or worse, worst
// tier first and then by id.
func Weaknesses(evals []models.EvaluationResult, k int) []models.EvaluationResult {
	var out []models.EvaluationResult
	for _, e := range evals {
		if e.Tier.Rank() >= 0 && e.Tier.Rank() <= models.TierAcceptable.Rank() {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if ri, rj := out[i].Tier.Rank(), out[j].Tier.Rank(); ri != rj {
			return ri < rj
		}
		return out[i].ID < out[j].ID
	})
	return head(out, k)
}

func head(evals []models.EvaluationResult, k int) []models.EvaluationResult {
	if len(evals) > k {
		return evals[:k]
	}
	return evals
}

func appendUnique(dst, src []string, seen map[string]bool) []string {
	for _, id := range src {
		if !seen[id] {
			seen[id] = true
			dst = append(dst, id)
		}
	}
	return dst
}
