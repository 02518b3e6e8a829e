package rules

import "github.com/tenderguard/go-tenderguard/pkg/models"

// CostOverrunRule flags contracts whose actual cost ran well past the
// estimate.
type CostOverrunRule struct {
	ThresholdPct float64 // inclusive, e.g. 15 means variance >= +15%
	Points       int
}

func NewCostOverrunRule(thresholdPct float64, points int) *CostOverrunRule {
	return &CostOverrunRule{ThresholdPct: thresholdPct, Points: points}
}

func (r *CostOverrunRule) Name() string {
	return "CostOverrun"
}

func (r *CostOverrunRule) Description() string {
	return "cost overrun ≥15%"
}

func (r *CostOverrunRule) Evaluate(rec *models.ContractRecord) (int, bool) {
	variance, ok := models.Float(rec.CostVariancePct)
	if !ok {
		return 0, false
	}
	if variance >= r.ThresholdPct {
		return r.Points, true
	}
	return 0, false
}

// AggressiveUnderbidRule flags contracts that came in far below estimate,
// a pattern associated with lowballing to win the award.
type AggressiveUnderbidRule struct {
	ThresholdPct float64 // inclusive, e.g. -15 means variance <= -15%
	Points       int
}

func NewAggressiveUnderbidRule(thresholdPct float64, points int) *AggressiveUnderbidRule {
	return &AggressiveUnderbidRule{ThresholdPct: thresholdPct, Points: points}
}

func (r *AggressiveUnderbidRule) Name() string {
	return "AggressiveUnderbid"
}

func (r *AggressiveUnderbidRule) Description() string {
	return "aggressive underbid"
}

func (r *AggressiveUnderbidRule) Evaluate(rec *models.ContractRecord) (int, bool) {
	variance, ok := models.Float(rec.CostVariancePct)
	if !ok {
		return 0, false
	}
	if variance <= r.ThresholdPct {
		return r.Points, true
	}
	return 0, false
}
