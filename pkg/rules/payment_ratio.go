package rules

import "github.com/tenderguard/go-tenderguard/pkg/models"

// overpaymentPct computes recorded payments as a percentage deviation from
// the contract amount. Returns false when either field is absent or the
// contract amount is zero.
func overpaymentPct(rec *models.ContractRecord) (float64, bool) {
	actual, ok := models.Float(rec.ActualPaymentMade)
	if !ok {
		return 0, false
	}
	amount, ok := models.Float(rec.ContractAmount)
	if !ok || amount == 0 {
		return 0, false
	}
	return (actual - amount) / amount * 100, true
}

// OverpaymentRule flags contracts where payments made exceed the contract
// amount by a margin.
type OverpaymentRule struct {
	ThresholdPct float64 // inclusive, e.g. 10 means >= +10%
	Points       int
}

func NewOverpaymentRule(thresholdPct float64, points int) *OverpaymentRule {
	return &OverpaymentRule{ThresholdPct: thresholdPct, Points: points}
}

func (r *OverpaymentRule) Name() string {
	return "Overpayment"
}

func (r *OverpaymentRule) Description() string {
	return "payments exceed contract ≥10%"
}

func (r *OverpaymentRule) Evaluate(rec *models.ContractRecord) (int, bool) {
	pct, ok := overpaymentPct(rec)
	if !ok {
		return 0, false
	}
	if pct >= r.ThresholdPct {
		return r.Points, true
	}
	return 0, false
}

// PaymentLagRule flags contracts where payments trail the contract amount
// by a margin. Mutually exclusive with OverpaymentRule.
type PaymentLagRule struct {
	ThresholdPct float64 // inclusive, e.g. -20 means <= -20%
	Points       int
}

func NewPaymentLagRule(thresholdPct float64, points int) *PaymentLagRule {
	return &PaymentLagRule{ThresholdPct: thresholdPct, Points: points}
}

func (r *PaymentLagRule) Name() string {
	return "PaymentLag"
}

func (r *PaymentLagRule) Description() string {
	return "payments lag ≥20%"
}

func (r *PaymentLagRule) Evaluate(rec *models.ContractRecord) (int, bool) {
	pct, ok := overpaymentPct(rec)
	if !ok {
		return 0, false
	}
	if pct <= r.ThresholdPct {
		return r.Points, true
	}
	return 0, false
}
