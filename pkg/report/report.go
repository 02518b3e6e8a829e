// Package report computes portfolio-level views over a scored dataset.
//
// Everything here is downstream of the scoring engine: it reads scored
// contracts and produces the aggregates the dashboard renders. Nothing in
// this package feeds back into scoring.
package report

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/tenderguard/go-tenderguard/pkg/engine"
	"github.com/tenderguard/go-tenderguard/pkg/models"
)

// CountBucket is a labeled count (status distribution, category mix).
type CountBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ValueBucket is a labeled currency total (top entities, top vendors).
type ValueBucket struct {
	Label string  `json:"label"`
	Total float64 `json:"total"`
}

// HistogramBin is one band of the risk score distribution.
type HistogramBin struct {
	From  float64 `json:"from"` // inclusive
	To    float64 `json:"to"`   // exclusive
	Count int     `json:"count"`
}

// TrendPoint is a monthly contract count derived from contract dates.
type TrendPoint struct {
	Month string `json:"month"` // "2006-01"
	Count int    `json:"count"`
}

// Summary is the portfolio overview for a scored dataset.
type Summary struct {
	TotalContracts int     `json:"totalContracts"`
	TotalValue     float64 `json:"totalValue"`
	AverageValue   float64 `json:"averageValue"`
	MedianValue    float64 `json:"medianValue"`
	CompletionRate float64 `json:"completionRate"` // percent of contracts marked completed

	StatusCounts   []CountBucket            `json:"statusCounts"`
	CategoryCounts []CountBucket            `json:"categoryCounts"`
	LevelCounts    map[models.RiskLevel]int `json:"levelCounts"`
	TopEntities    []ValueBucket            `json:"topEntities"`
	TopVendors     []ValueBucket            `json:"topVendors"`
	ScoreHistogram []HistogramBin           `json:"scoreHistogram"`
	MonthlyTrend   []TrendPoint             `json:"monthlyTrend"`
}

const topN = 5

// Summarize computes the portfolio overview. Absent contract amounts are
// excluded from value aggregates rather than counted as zero.
func Summarize(ds engine.ScoredDataset) Summary {
	s := Summary{
		TotalContracts: len(ds.Contracts),
		LevelCounts:    make(map[models.RiskLevel]int, len(models.Levels)),
	}
	for _, level := range models.Levels {
		s.LevelCounts[level] = 0
	}

	amounts := make([]float64, 0, len(ds.Contracts))
	statusCounts := make(map[string]int)
	categoryCounts := make(map[string]int)
	entityTotals := make(map[string]float64)
	vendorTotals := make(map[string]float64)
	monthCounts := make(map[string]int)
	completed := 0

	for i := range ds.Contracts {
		c := &ds.Contracts[i]
		s.LevelCounts[c.Assessment.Level]++

		if amount, ok := models.Float(c.ContractAmount); ok {
			amounts = append(amounts, amount)
			s.TotalValue += amount
			if c.PublicEntityName != "" {
				entityTotals[c.PublicEntityName] += amount
			}
			if c.Vendor != "" {
				vendorTotals[c.Vendor] += amount
			}
		}

		status := c.NormalizedStatus()
		if status != "" {
			statusCounts[status]++
			if status == "completed" {
				completed++
			}
		}
		category := c.ProcurementCategory
		if category == "" {
			category = "Unknown"
		}
		categoryCounts[category]++

		if month, ok := contractMonth(c.ContractDate); ok {
			monthCounts[month]++
		}
	}

	if len(amounts) > 0 {
		s.AverageValue = s.TotalValue / float64(len(amounts))
		s.MedianValue = median(amounts)
	}
	if s.TotalContracts > 0 {
		s.CompletionRate = float64(completed) / float64(s.TotalContracts) * 100
	}

	s.StatusCounts = sortedCounts(statusCounts)
	s.CategoryCounts = sortedCounts(categoryCounts)
	s.TopEntities = topTotals(entityTotals, topN)
	s.TopVendors = topTotals(vendorTotals, topN)
	s.ScoreHistogram = histogram(ds)
	s.MonthlyTrend = trend(monthCounts)
	return s
}

// Filter narrows a scored dataset without reordering it. Zero-valued
// criteria are ignored.
type Filter struct {
	Statuses []string           // case-insensitive status match
	Levels   []models.RiskLevel // risk tier match
	MinScore *float64           // inclusive
	MaxScore *float64           // inclusive
}

// Apply returns the sub-dataset matching the filter, rows in their
// original order.
func (f Filter) Apply(ds engine.ScoredDataset) engine.ScoredDataset {
	statuses := make(map[string]bool, len(f.Statuses))
	for _, st := range f.Statuses {
		statuses[strings.ToLower(strings.TrimSpace(st))] = true
	}
	levels := make(map[models.RiskLevel]bool, len(f.Levels))
	for _, lvl := range f.Levels {
		levels[lvl] = true
	}

	out := engine.ScoredDataset{Contracts: make([]engine.ScoredContract, 0, len(ds.Contracts))}
	for _, c := range ds.Contracts {
		if len(statuses) > 0 && !statuses[c.NormalizedStatus()] {
			continue
		}
		if len(levels) > 0 && !levels[c.Assessment.Level] {
			continue
		}
		if f.MinScore != nil && c.Assessment.Score < *f.MinScore {
			continue
		}
		if f.MaxScore != nil && c.Assessment.Score > *f.MaxScore {
			continue
		}
		out.Contracts = append(out.Contracts, c)
	}
	return out
}

// HighestRisk returns up to n contracts sorted by score descending. The
// sort is stable so equal scores keep their dataset order.
func HighestRisk(ds engine.ScoredDataset, n int) []engine.ScoredContract {
	ranked := make([]engine.ScoredContract, len(ds.Contracts))
	copy(ranked, ds.Contracts)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Assessment.Score > ranked[j].Assessment.Score
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// HighValueOutliers returns contracts whose amount reaches the given
// quantile (e.g. 0.99) of all present contract amounts. Portfolio screen,
// not a per-record rule: the threshold depends on the whole dataset.
func HighValueOutliers(ds engine.ScoredDataset, q float64) []engine.ScoredContract {
	amounts := make([]float64, 0, len(ds.Contracts))
	for i := range ds.Contracts {
		if amount, ok := models.Float(ds.Contracts[i].ContractAmount); ok {
			amounts = append(amounts, amount)
		}
	}
	if len(amounts) == 0 {
		return nil
	}
	threshold := quantile(amounts, q)

	out := make([]engine.ScoredContract, 0)
	for _, c := range ds.Contracts {
		if amount, ok := models.Float(c.ContractAmount); ok && amount >= threshold {
			out = append(out, c)
		}
	}
	return out
}

// RepeatedVendors returns contracts awarded to vendors that appear at
// least minAwards times in the dataset.
func RepeatedVendors(ds engine.ScoredDataset, minAwards int) []engine.ScoredContract {
	counts := make(map[string]int)
	for i := range ds.Contracts {
		if v := ds.Contracts[i].Vendor; v != "" {
			counts[v]++
		}
	}

	out := make([]engine.ScoredContract, 0)
	for _, c := range ds.Contracts {
		if c.Vendor != "" && counts[c.Vendor] >= minAwards {
			out = append(out, c)
		}
	}
	return out
}

// MissingIdentifiers returns contracts lacking a contract identifier.
func MissingIdentifiers(ds engine.ScoredDataset) []engine.ScoredContract {
	out := make([]engine.ScoredContract, 0)
	for _, c := range ds.Contracts {
		if strings.TrimSpace(c.ContractID) == "" {
			out = append(out, c)
		}
	}
	return out
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// quantile returns the nearest-rank q-quantile of values.
func quantile(values []float64, q float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	rank := int(math.Ceil(q*float64(len(sorted)))) - 1
	if rank < 0 {
		rank = 0
	}
	if rank >= len(sorted) {
		rank = len(sorted) - 1
	}
	return sorted[rank]
}

func sortedCounts(counts map[string]int) []CountBucket {
	out := make([]CountBucket, 0, len(counts))
	for label, count := range counts {
		out = append(out, CountBucket{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func topTotals(totals map[string]float64, n int) []ValueBucket {
	out := make([]ValueBucket, 0, len(totals))
	for label, total := range totals {
		out = append(out, ValueBucket{Label: label, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Label < out[j].Label
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

const histogramBinWidth = 10

func histogram(ds engine.ScoredDataset) []HistogramBin {
	maxScore := 100.0
	for i := range ds.Contracts {
		if s := ds.Contracts[i].Assessment.Score; s > maxScore {
			maxScore = s
		}
	}

	bins := make([]HistogramBin, 0)
	for from := 0.0; from < maxScore; from += histogramBinWidth {
		bins = append(bins, HistogramBin{From: from, To: from + histogramBinWidth})
	}
	for i := range ds.Contracts {
		idx := int(ds.Contracts[i].Assessment.Score / histogramBinWidth)
		if idx >= len(bins) {
			idx = len(bins) - 1
		}
		bins[idx].Count++
	}
	return bins
}

// Contract date layouts seen in the source exports, day-first preferred.
var dateLayouts = []string{"02/01/2006", "2006-01-02", "02-01-2006"}

func contractMonth(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01"), true
		}
	}
	return "", false
}

func trend(monthCounts map[string]int) []TrendPoint {
	out := make([]TrendPoint, 0, len(monthCounts))
	for month, count := range monthCounts {
		out = append(out, TrendPoint{Month: month, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Month < out[j].Month
	})
	return out
}
