package rules

import "github.com/tenderguard/go-tenderguard/pkg/models"

// ClosedLowProgressRule flags contracts marked completed while physical
// progress is still low.
type ClosedLowProgressRule struct {
	MaxCompletionPct float64 // exclusive, e.g. 80 means progress < 80%
	Points           int
}

func NewClosedLowProgressRule(maxCompletionPct float64, points int) *ClosedLowProgressRule {
	return &ClosedLowProgressRule{MaxCompletionPct: maxCompletionPct, Points: points}
}

func (r *ClosedLowProgressRule) Name() string {
	return "ClosedLowProgress"
}

func (r *ClosedLowProgressRule) Description() string {
	return "closed with low progress"
}

func (r *ClosedLowProgressRule) Evaluate(rec *models.ContractRecord) (int, bool) {
	completion, ok := models.Float(rec.PercentageOfCompletion)
	if !ok {
		return 0, false
	}
	if rec.NormalizedStatus() == "completed" && completion < r.MaxCompletionPct {
		return r.Points, true
	}
	return 0, false
}

// StalledNearCompletionRule flags contracts sitting at near-full progress
// without being closed out.
type StalledNearCompletionRule struct {
	MinCompletionPct float64 // inclusive, e.g. 95 means progress >= 95%
	Points           int
}

func NewStalledNearCompletionRule(minCompletionPct float64, points int) *StalledNearCompletionRule {
	return &StalledNearCompletionRule{MinCompletionPct: minCompletionPct, Points: points}
}

func (r *StalledNearCompletionRule) Name() string {
	return "StalledNearCompletion"
}

func (r *StalledNearCompletionRule) Description() string {
	return "stalled near completion"
}

func (r *StalledNearCompletionRule) Evaluate(rec *models.ContractRecord) (int, bool) {
	completion, ok := models.Float(rec.PercentageOfCompletion)
	if !ok {
		return 0, false
	}
	status := rec.NormalizedStatus()
	if (status == "in-progress" || status == "delayed") && completion >= r.MinCompletionPct {
		return r.Points, true
	}
	return 0, false
}

// DelayedLowProgressRule flags delayed contracts that never got off the
// ground.
type DelayedLowProgressRule struct {
	MaxCompletionPct float64 // exclusive, e.g. 50 means progress < 50%
	Points           int
}

func NewDelayedLowProgressRule(maxCompletionPct float64, points int) *DelayedLowProgressRule {
	return &DelayedLowProgressRule{MaxCompletionPct: maxCompletionPct, Points: points}
}

func (r *DelayedLowProgressRule) Name() string {
	return "DelayedLowProgress"
}

func (r *DelayedLowProgressRule) Description() string {
	return "delayed with low progress"
}

func (r *DelayedLowProgressRule) Evaluate(rec *models.ContractRecord) (int, bool) {
	completion, ok := models.Float(rec.PercentageOfCompletion)
	if !ok {
		return 0, false
	}
	if rec.NormalizedStatus() == "delayed" && completion < r.MaxCompletionPct {
		return r.Points, true
	}
	return 0, false
}
