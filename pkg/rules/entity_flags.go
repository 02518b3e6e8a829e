package rules

import "github.com/tenderguard/go-tenderguard/pkg/models"

// RedFlagEntityRule fires when the awarding entity carries an external red
// flag marker.
type RedFlagEntityRule struct {
	Points int
}

func NewRedFlagEntityRule(points int) *RedFlagEntityRule {
	return &RedFlagEntityRule{Points: points}
}

func (r *RedFlagEntityRule) Name() string {
	return "RedFlagEntity"
}

func (r *RedFlagEntityRule) Description() string {
	return "red-flagged entity"
}

func (r *RedFlagEntityRule) Evaluate(rec *models.ContractRecord) (int, bool) {
	if rec.IsRedFlagEntity {
		return r.Points, true
	}
	return 0, false
}

// BlacklistedContractorRule fires when the contractor appears on a
// blacklist. The heaviest single indicator in the default set.
type BlacklistedContractorRule struct {
	Points int
}

func NewBlacklistedContractorRule(points int) *BlacklistedContractorRule {
	return &BlacklistedContractorRule{Points: points}
}

func (r *BlacklistedContractorRule) Name() string {
	return "BlacklistedContractor"
}

func (r *BlacklistedContractorRule) Description() string {
	return "blacklisted contractor"
}

func (r *BlacklistedContractorRule) Evaluate(rec *models.ContractRecord) (int, bool) {
	if rec.IsBlacklistedContractor {
		return r.Points, true
	}
	return 0, false
}
