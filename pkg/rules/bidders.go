package rules

import "github.com/tenderguard/go-tenderguard/pkg/models"

// LowBidderCountRule flags contracts awarded with almost no competition.
type LowBidderCountRule struct {
	MaxBidders float64 // firing threshold, inclusive
	Points     int
}

// NewLowBidderCountRule fires when the bidder count is present and at most
// maxBidders.
func NewLowBidderCountRule(maxBidders float64, points int) *LowBidderCountRule {
	return &LowBidderCountRule{MaxBidders: maxBidders, Points: points}
}

func (r *LowBidderCountRule) Name() string {
	return "LowBidderCount"
}

func (r *LowBidderCountRule) Description() string {
	return "low bidder count"
}

func (r *LowBidderCountRule) Evaluate(rec *models.ContractRecord) (int, bool) {
	bidders, ok := models.Float(rec.BidderCount)
	if !ok {
		return 0, false
	}
	if bidders <= r.MaxBidders {
		return r.Points, true
	}
	return 0, false
}

// LimitedCompetitionRule flags contracts with a bidder count above the low
// threshold but still below a healthy field.
type LimitedCompetitionRule struct {
	MinBidders float64 // exclusive lower bound (the low-count band)
	MaxBidders float64 // inclusive upper bound
	Points     int
}

// NewLimitedCompetitionRule fires when the bidder count is present and in
// (minBidders, maxBidders].
func NewLimitedCompetitionRule(minBidders, maxBidders float64, points int) *LimitedCompetitionRule {
	return &LimitedCompetitionRule{MinBidders: minBidders, MaxBidders: maxBidders, Points: points}
}

func (r *LimitedCompetitionRule) Name() string {
	return "LimitedCompetition"
}

func (r *LimitedCompetitionRule) Description() string {
	return "limited competition"
}

func (r *LimitedCompetitionRule) Evaluate(rec *models.ContractRecord) (int, bool) {
	bidders, ok := models.Float(rec.BidderCount)
	if !ok {
		return 0, false
	}
	if bidders > r.MinBidders && bidders <= r.MaxBidders {
		return r.Points, true
	}
	return 0, false
}
