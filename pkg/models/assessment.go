package models

import "strings"

// NoRedFlags is the reason text attached to a record for which no rule
// fired. It is paired with a zero score and the Low level.
const NoRedFlags = "No apparent red flags"

// RiskLevel is the discrete tier derived from a risk score.
type RiskLevel string

const (
	LevelCritical RiskLevel = "Critical"
	LevelHigh     RiskLevel = "High"
	LevelMedium   RiskLevel = "Medium"
	LevelLow      RiskLevel = "Low"
)

// Levels lists all tiers from most to least severe.
var Levels = []RiskLevel{LevelCritical, LevelHigh, LevelMedium, LevelLow}

// LevelFromScore classifies a score into a tier. Thresholds are checked in
// descending order, first match wins: >=70 Critical, >=45 High, >=25 Medium,
// everything else Low.
func LevelFromScore(score float64) RiskLevel {
	switch {
	case score >= 70:
		return LevelCritical
	case score >= 45:
		return LevelHigh
	case score >= 25:
		return LevelMedium
	default:
		return LevelLow
	}
}

// Violation is a single rule that fired during an assessment.
// Each violation is self-explanatory and suitable for audit logs.
type Violation struct {
	RuleName string `json:"rule"`
	Points   int    `json:"points"`
	Reason   string `json:"reason"`
}

// RiskAssessment is the complete output of scoring one contract record.
//
// The engine does NOT make binary block/allow decisions. It returns the
// summed score, the tier it falls into and an itemized trail of the rules
// that contributed, so the consuming dashboard can explain every number it
// shows.
type RiskAssessment struct {
	// Score is the sum of the points of every fired rule. Never negative.
	Score float64 `json:"riskScore"`

	// Level is the tier derived from Score via LevelFromScore.
	Level RiskLevel `json:"riskLevel"`

	// Reasons holds one human-readable string per fired rule, in rule
	// evaluation order.
	Reasons []string `json:"-"`

	// TriggerCount is the number of rules that fired. It counts rules,
	// not points.
	TriggerCount int `json:"riskTriggerCount"`

	// Violations itemizes each fired rule with its contribution.
	Violations []Violation `json:"violations"`
}

// ReasonsText joins the reason trail with "; " in firing order, or returns
// the NoRedFlags sentinel when nothing fired.
func (a *RiskAssessment) ReasonsText() string {
	if len(a.Reasons) == 0 {
		return NoRedFlags
	}
	return strings.Join(a.Reasons, "; ")
}
