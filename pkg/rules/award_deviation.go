package rules

import "github.com/tenderguard/go-tenderguard/pkg/models"

// awardDeviationPct computes the award amount's percentage deviation from
// the estimate. Returns false when either field is absent or the estimate
// is zero (a zero denominator silently suppresses the rule, it is not an
// error).
func awardDeviationPct(rec *models.ContractRecord) (float64, bool) {
	amount, ok := models.Float(rec.ContractAmount)
	if !ok {
		return 0, false
	}
	estimate, ok := models.Float(rec.EstimatedCost)
	if !ok || estimate == 0 {
		return 0, false
	}
	return (amount - estimate) / estimate * 100, true
}

// AwardAboveEstimateRule flags awards priced well above the engineer's
// estimate.
type AwardAboveEstimateRule struct {
	ThresholdPct float64 // inclusive, e.g. 25 means >= +25%
	Points       int
}

func NewAwardAboveEstimateRule(thresholdPct float64, points int) *AwardAboveEstimateRule {
	return &AwardAboveEstimateRule{ThresholdPct: thresholdPct, Points: points}
}

func (r *AwardAboveEstimateRule) Name() string {
	return "AwardAboveEstimate"
}

func (r *AwardAboveEstimateRule) Description() string {
	return "award ≥25% above estimate"
}

func (r *AwardAboveEstimateRule) Evaluate(rec *models.ContractRecord) (int, bool) {
	pct, ok := awardDeviationPct(rec)
	if !ok {
		return 0, false
	}
	if pct >= r.ThresholdPct {
		return r.Points, true
	}
	return 0, false
}

// AwardBelowEstimateRule flags awards priced well below the estimate.
// Mutually exclusive with AwardAboveEstimateRule: only one side of the
// deviation can hold for a given record.
type AwardBelowEstimateRule struct {
	ThresholdPct float64 // inclusive, e.g. -20 means <= -20%
	Points       int
}

func NewAwardBelowEstimateRule(thresholdPct float64, points int) *AwardBelowEstimateRule {
	return &AwardBelowEstimateRule{ThresholdPct: thresholdPct, Points: points}
}

func (r *AwardBelowEstimateRule) Name() string {
	return "AwardBelowEstimate"
}

func (r *AwardBelowEstimateRule) Description() string {
	return "award ≥20% below estimate"
}

func (r *AwardBelowEstimateRule) Evaluate(rec *models.ContractRecord) (int, bool) {
	pct, ok := awardDeviationPct(rec)
	if !ok {
		return 0, false
	}
	if pct <= r.ThresholdPct {
		return r.Points, true
	}
	return 0, false
}
