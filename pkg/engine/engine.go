package engine

import (
	"github.com/tenderguard/go-tenderguard/pkg/models"
	"github.com/tenderguard/go-tenderguard/pkg/rules"
)

// Engine is the procurement risk scoring engine.
//
// Architecture principles:
//   - Engine is rule-agnostic: it never inspects concrete rule types.
//   - Rules are evaluated in the order they were added; order affects only
//     the readability of the reason trail, never the score.
//   - Scoring is pure: the engine reads record fields and produces a fresh
//     assessment, it never mutates the input.
//   - Records are scored independently of one another, so a dataset pass
//     is embarrassingly parallel; the implementation keeps a simple
//     ordered loop since typical datasets are thousands of rows.
//
// Usage:
//
//	eng := engine.Default()
//	scored := eng.ScoreDataset(records)
type Engine struct {
	rules []rules.Rule
}

// New creates an engine with no rules installed. Use AddRule to compose a
// custom rule set, or Default for the standard one.
func New() *Engine {
	return &Engine{rules: make([]rules.Rule, 0)}
}

// AddRule appends a rule to the evaluation order.
func (e *Engine) AddRule(r rules.Rule) {
	e.rules = append(e.rules, r)
}

// Rules returns the installed rules in evaluation order.
func (e *Engine) Rules() []rules.Rule {
	return e.rules
}

// Default returns an engine loaded with the standard procurement fraud rule
// set. Thresholds and weights follow the reference scoring model.
func Default() *Engine {
	limitedMethods := []string{"direct", "shopping", "rfq"}
	shortFormMethods := []string{"shopping", "rfq"}

	e := New()
	e.AddRule(rules.NewLowBidderCountRule(2, 20))
	e.AddRule(rules.NewLimitedCompetitionRule(2, 4, 10))
	e.AddRule(rules.NewCostOverrunRule(15, 15))
	e.AddRule(rules.NewAggressiveUnderbidRule(-15, 10))
	e.AddRule(rules.NewLargePaymentGapRule(1_000_000, 20))
	e.AddRule(rules.NewModeratePaymentGapRule(500_000, 1_000_000, 12))
	e.AddRule(rules.NewAwardAboveEstimateRule(25, 10))
	e.AddRule(rules.NewAwardBelowEstimateRule(-20, 8))
	e.AddRule(rules.NewOverpaymentRule(10, 15))
	e.AddRule(rules.NewPaymentLagRule(-20, 8))
	e.AddRule(rules.NewClosedLowProgressRule(80, 15))
	e.AddRule(rules.NewStalledNearCompletionRule(95, 8))
	e.AddRule(rules.NewDelayedLowProgressRule(50, 10))
	e.AddRule(rules.NewRedFlagEntityRule(12))
	e.AddRule(rules.NewBlacklistedContractorRule(30))
	e.AddRule(rules.NewHighValueLimitedMethodRule(limitedMethods, 10_000_000, 12))
	e.AddRule(rules.NewShortFormLongDurationRule(shortFormMethods, 180, 6))
	return e
}

// Score evaluates every rule against one record and aggregates the result.
//
// Each fired rule contributes its points to the score and its description
// to the reason trail. The trigger count counts fired rules, not points.
// A record that fires nothing gets score 0, level Low and the sentinel
// reason text.
func (e *Engine) Score(rec *models.ContractRecord) models.RiskAssessment {
	assessment := models.RiskAssessment{
		Reasons:    make([]string, 0),
		Violations: make([]models.Violation, 0),
	}

	for _, rule := range e.rules {
		points, fired := rule.Evaluate(rec)
		if !fired {
			continue
		}
		assessment.Score += float64(points)
		assessment.Reasons = append(assessment.Reasons, rule.Description())
		assessment.Violations = append(assessment.Violations, models.Violation{
			RuleName: rule.Name(),
			Points:   points,
			Reason:   rule.Description(),
		})
	}

	assessment.Level = models.LevelFromScore(assessment.Score)
	assessment.TriggerCount = len(assessment.Reasons)
	return assessment
}

// ScoredContract pairs a contract record with its risk assessment. The
// original record is carried through untouched.
type ScoredContract struct {
	models.ContractRecord
	Assessment models.RiskAssessment
}

// ScoredDataset is the output of a dataset scoring pass: the input records
// in their original order, each augmented with an assessment.
type ScoredDataset struct {
	Contracts []ScoredContract
}

// DerivedColumns names the columns a scoring pass appends to a dataset.
// They are declared even for an empty dataset so downstream consumers can
// rely on their presence.
func DerivedColumns() []string {
	return []string{"riskScore", "riskLevel", "riskReasons", "riskTriggerCount"}
}

// ScoreDataset scores every record of a dataset.
//
// The output preserves row order exactly: no reordering, dropping or
// deduplication. An empty (or nil) input is a first-class case and returns
// a typed result with zero rows.
func (e *Engine) ScoreDataset(records []models.ContractRecord) ScoredDataset {
	if len(records) == 0 {
		return ScoredDataset{Contracts: make([]ScoredContract, 0)}
	}

	scored := make([]ScoredContract, 0, len(records))
	for i := range records {
		scored = append(scored, ScoredContract{
			ContractRecord: records[i],
			Assessment:     e.Score(&records[i]),
		})
	}
	return ScoredDataset{Contracts: scored}
}
