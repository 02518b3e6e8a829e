package models

import (
	"strconv"
	"strings"
)

// ContractRecord is a single procurement contract as produced by the dataset
// loader. Every scoring-relevant numeric field is optional: a nil pointer
// means the value was absent or unparseable in the source data, which is NOT
// the same thing as zero. Rules must skip absent fields, never treat them
// as 0.
//
// Boolean flags default to false when absent; string fields default to "".
// The engine never mutates a record, it only derives an assessment from it.
type ContractRecord struct {
	// Identity / display fields (not scored, carried through for reporting)
	ContractID          string
	ContractName        string
	Vendor              string
	PublicEntityName    string
	ProcurementCategory string
	ContractDate        string

	// Scored fields
	BidderCount            *float64
	CostVariancePct        *float64
	PaymentDiscrepancy     *float64
	ContractAmount         *float64
	EstimatedCost          *float64
	ActualPaymentMade      *float64
	PercentageOfCompletion *float64
	ContractDurationDays   *float64

	Status            string
	ProcurementMethod string

	IsRedFlagEntity         bool
	IsBlacklistedContractor bool
}

// Float reports the value behind an optional numeric field together with a
// presence flag. Rules call this instead of dereferencing pointers so that
// the absent-vs-zero distinction stays in one place.
func Float(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

// FloatPtr wraps a literal as an optional field value. Test and demo helper.
func FloatPtr(v float64) *float64 {
	return &v
}

// ParseNumeric converts raw text to an optional numeric field.
// Empty or unparseable text yields absent (nil), never zero.
func ParseNumeric(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseBool converts raw text to a flag value. The match is trimmed and
// case-insensitive: "true", "1", "yes" and "y" are true. Any other text is
// treated as numeric (non-zero means true) and everything else, including
// absence, is false.
func ParseBool(raw string) bool {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "true", "1", "yes", "y":
		return true
	case "":
		return false
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v != 0
	}
	return false
}

// ParseString trims raw text. Case normalization is left to whoever
// compares the value, so the stored field keeps its original casing.
func ParseString(raw string) string {
	return strings.TrimSpace(raw)
}

// NormalizedStatus returns the status lowered and trimmed for rule
// comparisons.
func (c *ContractRecord) NormalizedStatus() string {
	return strings.ToLower(strings.TrimSpace(c.Status))
}

// NormalizedMethod returns the procurement method lowered and trimmed for
// rule comparisons.
func (c *ContractRecord) NormalizedMethod() string {
	return strings.ToLower(strings.TrimSpace(c.ProcurementMethod))
}
