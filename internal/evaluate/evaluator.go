package evaluate

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/seenimoa/finscope/internal/benchmark"
	"github.com/seenimoa/finscope/internal/catalog"
	"github.com/seenimoa/finscope/pkg/models"
)

// Skip reasons for analyses that computed but cannot be scored.
const (
	ReasonBenchmarkZero    = "benchmark:zero"
	ReasonBenchmarkMissing = "benchmark:missing"
	ReasonBenchmarkInvalid = "benchmark:invalid"
)

var hundred = decimal.NewFromInt(100)

// Evaluator scores numeric results. It is safe for concurrent use.
type Evaluator struct {
	policy Policy
}

// New creates an Evaluator with the given policy.
func New(policy Policy) *Evaluator {
	return &Evaluator{policy: policy}
}

// Policy returns the banding policy in use.
func (e *Evaluator) Policy() Policy { return e.policy }

// Evaluate scores the latest value of computed against its entry in set.
// When no evaluation can be produced it returns nil and the skip reason.
func (e *Evaluator) Evaluate(def catalog.Definition, computed models.ComputedAnalysis, set *benchmark.Set) (*models.EvaluationResult, string) {
	latest, ok := computed.Latest()
	if !ok {
		return nil, computed.Reason
	}
	entry, ok := set.Lookup(def.ID)
	if !ok {
		return nil, ReasonBenchmarkMissing
	}
	avg := entry.Average
	if math.IsNaN(avg) || math.IsInf(avg, 0) {
		return nil, ReasonBenchmarkInvalid
	}
	if avg == 0 {
		return nil, ReasonBenchmarkZero
	}

	diff := PercentDifference(latest.Value, avg)
	tier := e.policy.Tier(Favorable(def.Direction, diff))

	res := &models.EvaluationResult{
		ID:                def.ID,
		Category:          def.Category,
		Name:              def.Name,
		Year:              latest.Year,
		Value:             latest.Value,
		Average:           avg,
		PercentDifference: diff,
		Comparison:        e.policy.Compare(diff),
		Tier:              tier,
		Recommendation:    Recommendation(tier, def.Category, def.Name),
		LowConfidence:     set.LowConfidence || entry.Fallback,
	}
	if len(entry.Distribution) > 0 {
		res.PeerRank, res.PeerTotal = PeerRank(def.Direction, latest.Value, avg, entry.Distribution, entry.PeerCount)
	}
	return res, ""
}

// PercentDifference returns (value-average)/|average|*100 rounded half away
// from zero to two decimals. average must be non-zero.
func PercentDifference(value, average float64) float64 {
	v := decimal.NewFromFloat(value)
	a := decimal.NewFromFloat(average)
	d, _ := v.Sub(a).Mul(hundred).Div(a.Abs()).Round(2).Float64()
	return d
}

// PeerRank ranks value among the peer group, the company included: rank 1
// is best and the total is peers+1. Ties share the better rank. When
// peerCount exceeds len(dist), dist is read as evenly spaced points of a
// larger group and the rank is scaled onto peerCount.
func PeerRank(dir models.Direction, value, average float64, dist []float64, peerCount int) (rank, total int) {
	better := 0
	for _, peer := range dist {
		switch dir {
		case models.LowerIsBetter:
			if peer < value {
				better++
			}
		case models.Neutral:
			if math.Abs(peer-average) < math.Abs(value-average) {
				better++
			}
		default:
			if peer > value {
				better++
			}
		}
	}
	peers := max(peerCount, len(dist))
	if peers == len(dist) {
		return better + 1, peers + 1
	}
	scaled := int(math.Round(float64(better) * float64(peers) / float64(len(dist))))
	return scaled + 1, peers + 1
}
