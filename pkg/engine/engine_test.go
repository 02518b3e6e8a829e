package engine_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenderguard/go-tenderguard/pkg/engine"
	"github.com/tenderguard/go-tenderguard/pkg/models"
)

func fp(v float64) *float64 {
	return models.FloatPtr(v)
}

func TestScoreWorkedExampleHigh(t *testing.T) {
	guard := engine.Default()
	rec := models.ContractRecord{
		BidderCount:             fp(1),
		CostVariancePct:         fp(30),
		IsBlacklistedContractor: true,
	}

	a := guard.Score(&rec)

	assert.Equal(t, 65.0, a.Score)
	assert.Equal(t, models.LevelHigh, a.Level)
	assert.Equal(t, 3, a.TriggerCount)
	assert.Equal(t, "low bidder count; cost overrun ≥15%; blacklisted contractor", a.ReasonsText())
}

func TestScoreWorkedExampleMedium(t *testing.T) {
	guard := engine.Default()
	rec := models.ContractRecord{
		BidderCount:            fp(3),
		CostVariancePct:        fp(-20),
		Status:                 "delayed",
		PercentageOfCompletion: fp(40),
	}

	a := guard.Score(&rec)

	assert.Equal(t, 30.0, a.Score)
	assert.Equal(t, models.LevelMedium, a.Level)
	assert.Equal(t, 3, a.TriggerCount)
}

func TestScoreEmptyRecord(t *testing.T) {
	guard := engine.Default()
	rec := models.ContractRecord{}

	a := guard.Score(&rec)

	assert.Zero(t, a.Score)
	assert.Equal(t, models.LevelLow, a.Level)
	assert.Zero(t, a.TriggerCount)
	assert.Equal(t, models.NoRedFlags, a.ReasonsText())
	assert.Empty(t, a.Violations)
}

func TestScoreSumMatchesViolations(t *testing.T) {
	guard := engine.Default()
	rec := models.ContractRecord{
		BidderCount:            fp(2),
		CostVariancePct:        fp(18),
		PaymentDiscrepancy:     fp(-750_000),
		ContractAmount:         fp(13_000_000),
		EstimatedCost:          fp(10_000_000),
		ActualPaymentMade:      fp(15_000_000),
		PercentageOfCompletion: fp(96),
		Status:                 "in-progress",
		ProcurementMethod:      "direct",
		IsRedFlagEntity:        true,
	}

	a := guard.Score(&rec)

	var sum float64
	for _, v := range a.Violations {
		sum += float64(v.Points)
	}
	assert.Equal(t, sum, a.Score)
	assert.Equal(t, len(a.Violations), a.TriggerCount)
	assert.Len(t, a.Reasons, a.TriggerCount)
	assert.Equal(t, models.LevelFromScore(a.Score), a.Level)
}

func TestScoreDoesNotMutateRecord(t *testing.T) {
	guard := engine.Default()
	rec := models.ContractRecord{
		BidderCount:     fp(1),
		CostVariancePct: fp(30),
		Status:          "Delayed",
	}
	before := rec

	guard.Score(&rec)

	assert.Equal(t, before, rec)
}

func TestScoreIsIdempotent(t *testing.T) {
	guard := engine.Default()
	rec := models.ContractRecord{
		BidderCount:             fp(1),
		PaymentDiscrepancy:      fp(2_000_000),
		IsBlacklistedContractor: true,
	}

	first := guard.Score(&rec)
	second := guard.Score(&rec)

	assert.Equal(t, first, second)
}

func TestScoreDatasetPreservesOrder(t *testing.T) {
	guard := engine.Default()
	records := make([]models.ContractRecord, 0, 10)
	for i := 0; i < 10; i++ {
		records = append(records, models.ContractRecord{
			ContractID:  fmt.Sprintf("CT-%03d", i),
			BidderCount: fp(float64(i)),
		})
	}

	scored := guard.ScoreDataset(records)

	require.Len(t, scored.Contracts, len(records))
	for i := range records {
		assert.Equal(t, records[i].ContractID, scored.Contracts[i].ContractID)
	}
}

func TestScoreDatasetOrderIndependentPerRecord(t *testing.T) {
	guard := engine.Default()
	a := models.ContractRecord{ContractID: "A", BidderCount: fp(1)}
	b := models.ContractRecord{ContractID: "B", IsBlacklistedContractor: true}
	c := models.ContractRecord{ContractID: "C"}

	forward := guard.ScoreDataset([]models.ContractRecord{a, b, c})
	reversed := guard.ScoreDataset([]models.ContractRecord{c, b, a})

	require.Len(t, forward.Contracts, 3)
	require.Len(t, reversed.Contracts, 3)
	assert.Equal(t, forward.Contracts[0].Assessment, reversed.Contracts[2].Assessment)
	assert.Equal(t, forward.Contracts[1].Assessment, reversed.Contracts[1].Assessment)
	assert.Equal(t, forward.Contracts[2].Assessment, reversed.Contracts[0].Assessment)
}

func TestScoreDatasetEmpty(t *testing.T) {
	guard := engine.Default()

	scored := guard.ScoreDataset(nil)

	require.NotNil(t, scored.Contracts)
	assert.Empty(t, scored.Contracts)
	assert.Equal(t, []string{"riskScore", "riskLevel", "riskReasons", "riskTriggerCount"}, engine.DerivedColumns())
}

func TestDefaultRuleOrder(t *testing.T) {
	guard := engine.Default()
	names := make([]string, 0, len(guard.Rules()))
	for _, r := range guard.Rules() {
		names = append(names, r.Name())
	}

	assert.Equal(t, []string{
		"LowBidderCount",
		"LimitedCompetition",
		"CostOverrun",
		"AggressiveUnderbid",
		"LargePaymentGap",
		"ModeratePaymentGap",
		"AwardAboveEstimate",
		"AwardBelowEstimate",
		"Overpayment",
		"PaymentLag",
		"ClosedLowProgress",
		"StalledNearCompletion",
		"DelayedLowProgress",
		"RedFlagEntity",
		"BlacklistedContractor",
		"HighValueLimitedMethod",
		"ShortFormLongDuration",
	}, names)
}

func TestCustomRuleSet(t *testing.T) {
	guard := engine.New()
	assert.Empty(t, guard.Rules())

	rec := models.ContractRecord{BidderCount: fp(1), IsBlacklistedContractor: true}
	a := guard.Score(&rec)
	assert.Zero(t, a.Score)
	assert.Equal(t, models.LevelLow, a.Level)
}
