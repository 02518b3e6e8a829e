package rules

import (
	"math"

	"github.com/tenderguard/go-tenderguard/pkg/models"
)

// LargePaymentGapRule flags contracts where the absolute gap between
// expected and recorded payment crosses a hard currency threshold.
type LargePaymentGapRule struct {
	Threshold float64 // inclusive absolute gap, in currency units
	Points    int
}

func NewLargePaymentGapRule(threshold float64, points int) *LargePaymentGapRule {
	return &LargePaymentGapRule{Threshold: threshold, Points: points}
}

func (r *LargePaymentGapRule) Name() string {
	return "LargePaymentGap"
}

func (r *LargePaymentGapRule) Description() string {
	return "large payment gap"
}

func (r *LargePaymentGapRule) Evaluate(rec *models.ContractRecord) (int, bool) {
	gap, ok := models.Float(rec.PaymentDiscrepancy)
	if !ok {
		return 0, false
	}
	if math.Abs(gap) >= r.Threshold {
		return r.Points, true
	}
	return 0, false
}

// ModeratePaymentGapRule flags the band below LargePaymentGapRule: an
// absolute gap in [Min, Max).
type ModeratePaymentGapRule struct {
	Min    float64 // inclusive lower bound
	Max    float64 // exclusive upper bound (the large-gap threshold)
	Points int
}

func NewModeratePaymentGapRule(min, max float64, points int) *ModeratePaymentGapRule {
	return &ModeratePaymentGapRule{Min: min, Max: max, Points: points}
}

func (r *ModeratePaymentGapRule) Name() string {
	return "ModeratePaymentGap"
}

func (r *ModeratePaymentGapRule) Description() string {
	return "moderate payment gap"
}

func (r *ModeratePaymentGapRule) Evaluate(rec *models.ContractRecord) (int, bool) {
	gap, ok := models.Float(rec.PaymentDiscrepancy)
	if !ok {
		return 0, false
	}
	abs := math.Abs(gap)
	if abs >= r.Min && abs < r.Max {
		return r.Points, true
	}
	return 0, false
}
