package rules

import "github.com/tenderguard/go-tenderguard/pkg/models"

// HighValueLimitedMethodRule flags high-value contracts awarded through a
// procurement method meant for small purchases (direct award, shopping,
// request for quotation).
type HighValueLimitedMethodRule struct {
	Methods   map[string]bool // normalized method names that trigger the check
	MinAmount float64         // inclusive contract amount threshold
	Points    int
}

// NewHighValueLimitedMethodRule builds the rule from a method list; names
// are matched against the record's normalized method.
func NewHighValueLimitedMethodRule(methods []string, minAmount float64, points int) *HighValueLimitedMethodRule {
	set := make(map[string]bool, len(methods))
	for _, m := range methods {
		set[m] = true
	}
	return &HighValueLimitedMethodRule{Methods: set, MinAmount: minAmount, Points: points}
}

func (r *HighValueLimitedMethodRule) Name() string {
	return "HighValueLimitedMethod"
}

func (r *HighValueLimitedMethodRule) Description() string {
	return "high-value via limited-competition method"
}

func (r *HighValueLimitedMethodRule) Evaluate(rec *models.ContractRecord) (int, bool) {
	if !r.Methods[rec.NormalizedMethod()] {
		return 0, false
	}
	amount, ok := models.Float(rec.ContractAmount)
	if !ok {
		return 0, false
	}
	if amount >= r.MinAmount {
		return r.Points, true
	}
	return 0, false
}

// ShortFormLongDurationRule flags long-running contracts procured through
// short-form methods intended for quick, small engagements.
type ShortFormLongDurationRule struct {
	Methods map[string]bool // normalized method names that trigger the check
	MinDays float64         // inclusive duration threshold
	Points  int
}

func NewShortFormLongDurationRule(methods []string, minDays float64, points int) *ShortFormLongDurationRule {
	set := make(map[string]bool, len(methods))
	for _, m := range methods {
		set[m] = true
	}
	return &ShortFormLongDurationRule{Methods: set, MinDays: minDays, Points: points}
}

func (r *ShortFormLongDurationRule) Name() string {
	return "ShortFormLongDuration"
}

func (r *ShortFormLongDurationRule) Description() string {
	return "short-form method for long contract"
}

func (r *ShortFormLongDurationRule) Evaluate(rec *models.ContractRecord) (int, bool) {
	duration, ok := models.Float(rec.ContractDurationDays)
	if !ok {
		return 0, false
	}
	if r.Methods[rec.NormalizedMethod()] && duration >= r.MinDays {
		return r.Points, true
	}
	return 0, false
}
