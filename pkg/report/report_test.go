package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenderguard/go-tenderguard/pkg/engine"
	"github.com/tenderguard/go-tenderguard/pkg/models"
	"github.com/tenderguard/go-tenderguard/pkg/report"
)

func fp(v float64) *float64 {
	return models.FloatPtr(v)
}

func scoredFixture() engine.ScoredDataset {
	guard := engine.Default()
	return guard.ScoreDataset([]models.ContractRecord{
		{
			ContractID:       "CT-001",
			Vendor:           "Alpha Builders",
			PublicEntityName: "Roads Department",
			ContractAmount:   fp(1_000_000),
			Status:           "completed",
			ContractDate:     "15/01/2024",
		},
		{
			ContractID:              "CT-002",
			Vendor:                  "Alpha Builders",
			PublicEntityName:        "Roads Department",
			ContractAmount:          fp(3_000_000),
			Status:                  "delayed",
			ContractDate:            "03/02/2024",
			BidderCount:             fp(1),
			IsBlacklistedContractor: true,
		},
		{
			ContractID:       "CT-003",
			Vendor:           "Beta JV",
			PublicEntityName: "Health Ministry",
			ContractAmount:   fp(2_000_000),
			Status:           "completed",
			ContractDate:     "20/02/2024",
		},
		{
			ContractID: "CT-004",
			Status:     "in-progress",
		},
	})
}

func TestSummarize(t *testing.T) {
	s := report.Summarize(scoredFixture())

	assert.Equal(t, 4, s.TotalContracts)
	assert.Equal(t, 6_000_000.0, s.TotalValue)
	assert.Equal(t, 2_000_000.0, s.AverageValue, "absent amounts excluded from the mean")
	assert.Equal(t, 2_000_000.0, s.MedianValue)
	assert.Equal(t, 50.0, s.CompletionRate)

	require.NotEmpty(t, s.StatusCounts)
	assert.Equal(t, report.CountBucket{Label: "completed", Count: 2}, s.StatusCounts[0])

	assert.Equal(t, 3, s.LevelCounts[models.LevelLow])
	assert.Equal(t, 1, s.LevelCounts[models.LevelHigh])
	assert.Equal(t, 0, s.LevelCounts[models.LevelCritical])

	require.NotEmpty(t, s.TopEntities)
	assert.Equal(t, report.ValueBucket{Label: "Roads Department", Total: 4_000_000}, s.TopEntities[0])
	require.NotEmpty(t, s.TopVendors)
	assert.Equal(t, report.ValueBucket{Label: "Alpha Builders", Total: 4_000_000}, s.TopVendors[0])

	require.Len(t, s.MonthlyTrend, 2)
	assert.Equal(t, report.TrendPoint{Month: "2024-01", Count: 1}, s.MonthlyTrend[0])
	assert.Equal(t, report.TrendPoint{Month: "2024-02", Count: 2}, s.MonthlyTrend[1])
}

func TestSummarizeEmpty(t *testing.T) {
	s := report.Summarize(engine.ScoredDataset{Contracts: []engine.ScoredContract{}})

	assert.Zero(t, s.TotalContracts)
	assert.Zero(t, s.TotalValue)
	assert.Zero(t, s.CompletionRate)
	assert.Equal(t, 0, s.LevelCounts[models.LevelLow])
}

func TestFilterByLevelAndScore(t *testing.T) {
	ds := scoredFixture()

	high := report.Filter{Levels: []models.RiskLevel{models.LevelHigh}}.Apply(ds)
	require.Len(t, high.Contracts, 1)
	assert.Equal(t, "CT-002", high.Contracts[0].ContractID)

	min := 1.0
	positive := report.Filter{MinScore: &min}.Apply(ds)
	require.Len(t, positive.Contracts, 1)
	assert.Equal(t, "CT-002", positive.Contracts[0].ContractID)

	max := 0.0
	clean := report.Filter{MaxScore: &max}.Apply(ds)
	assert.Len(t, clean.Contracts, 3)
}

func TestFilterByStatusKeepsOrder(t *testing.T) {
	ds := scoredFixture()

	completed := report.Filter{Statuses: []string{"Completed"}}.Apply(ds)
	require.Len(t, completed.Contracts, 2)
	assert.Equal(t, "CT-001", completed.Contracts[0].ContractID)
	assert.Equal(t, "CT-003", completed.Contracts[1].ContractID)
}

func TestFilterZeroValueMatchesAll(t *testing.T) {
	ds := scoredFixture()
	all := report.Filter{}.Apply(ds)
	assert.Len(t, all.Contracts, len(ds.Contracts))
}

func TestHighestRisk(t *testing.T) {
	ds := scoredFixture()

	top := report.HighestRisk(ds, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "CT-002", top[0].ContractID)
	assert.GreaterOrEqual(t, top[0].Assessment.Score, top[1].Assessment.Score)

	// the source dataset order must be untouched
	assert.Equal(t, "CT-001", ds.Contracts[0].ContractID)
}

func TestHighValueOutliers(t *testing.T) {
	ds := scoredFixture()

	out := report.HighValueOutliers(ds, 0.99)
	require.Len(t, out, 1)
	assert.Equal(t, "CT-002", out[0].ContractID)
}

func TestRepeatedVendors(t *testing.T) {
	ds := scoredFixture()

	repeated := report.RepeatedVendors(ds, 2)
	require.Len(t, repeated, 2)
	for _, c := range repeated {
		assert.Equal(t, "Alpha Builders", c.Vendor)
	}
}

func TestMissingIdentifiers(t *testing.T) {
	guard := engine.Default()
	ds := guard.ScoreDataset([]models.ContractRecord{
		{ContractID: "CT-001"},
		{ContractName: "unnamed award"},
	})

	missing := report.MissingIdentifiers(ds)
	require.Len(t, missing, 1)
	assert.Equal(t, "unnamed award", missing[0].ContractName)
}

func TestScoreHistogramCountsEveryContract(t *testing.T) {
	ds := scoredFixture()
	s := report.Summarize(ds)

	total := 0
	for _, bin := range s.ScoreHistogram {
		total += bin.Count
	}
	assert.Equal(t, len(ds.Contracts), total)
}
