package rules

import "github.com/tenderguard/go-tenderguard/pkg/models"

// Rule is a single fraud indicator evaluated against one contract record.
//
// Rules are pure functions of the record: no shared state, no I/O, no
// errors. Missing or unparseable field data means the rule simply does not
// apply. A rule contributes at most one (points, reason) pair per record;
// the engine sums contributions across all rules.
type Rule interface {
	// Name uniquely identifies the rule (e.g. "LowBidderCount").
	Name() string

	// Description is the human-readable reason recorded when the rule
	// fires. It becomes one entry of the record's reason trail.
	Description() string

	// Evaluate inspects the record and reports the points contributed
	// and whether the rule fired. A rule that does not apply returns
	// (0, false).
	Evaluate(rec *models.ContractRecord) (int, bool)
}
