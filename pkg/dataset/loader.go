// Package dataset loads raw contract CSV files into typed records.
//
// The loader is the boundary where messy text becomes the typed, optional
// fields the scoring engine consumes. Per-field problems (blanks, junk
// numbers, placeholder tokens) degrade to absent values and never fail the
// load; only structural problems (unreadable CSV, missing header) are
// errors.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tenderguard/go-tenderguard/pkg/models"
)

// isNAToken reports whether a cell holds one of the placeholder tokens the
// upstream procurement portal exports instead of a blank.
func isNAToken(s string) bool {
	switch strings.TrimSpace(s) {
	case "", "--Select source of Fund --", "--Select Country--", "--Select Bidding Process --":
		return true
	}
	return false
}

// Column name candidates, supporting both the mock and the scraped schema.
var (
	idColumns     = []string{"contract_id", "contract_code"}
	nameColumns   = []string{"contract_name", "contractTitle"}
	vendorColumns = []string{"contractorName1", "contractorName2", "contractorName3", "contractorName", "vendor"}
	entityColumns = []string{"publicEntityName", "publicEntity", "pe_name"}
)

// Load reads contract records from CSV data. The first row must be a
// header; column order is free and unknown columns are ignored.
func Load(r io.Reader) ([]models.ContractRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("dataset: empty input, expected a header row")
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: reading header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(col)] = i
	}

	records := make([]models.ContractRecord, 0)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: reading row %d: %w", len(records)+2, err)
		}
		records = append(records, buildRecord(index, row))
	}
	return records, nil
}

// LoadFile reads contract records from a CSV file on disk.
func LoadFile(path string) ([]models.ContractRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func buildRecord(index map[string]int, row []string) models.ContractRecord {
	cell := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		value := row[i]
		if isNAToken(value) {
			return ""
		}
		return value
	}
	first := func(cols []string) string {
		for _, col := range cols {
			if v := models.ParseString(cell(col)); v != "" {
				return v
			}
		}
		return ""
	}

	return models.ContractRecord{
		ContractID:          first(idColumns),
		ContractName:        first(nameColumns),
		Vendor:              first(vendorColumns),
		PublicEntityName:    first(entityColumns),
		ProcurementCategory: models.ParseString(cell("procurement_category")),
		ContractDate:        models.ParseString(cell("contractDate")),

		BidderCount:            models.ParseNumeric(cell("bidder_count")),
		CostVariancePct:        models.ParseNumeric(cell("cost_variance_pct")),
		PaymentDiscrepancy:     models.ParseNumeric(cell("payment_discrepancy")),
		ContractAmount:         models.ParseNumeric(cell("contract_amount")),
		EstimatedCost:          models.ParseNumeric(cell("estimatedCost")),
		ActualPaymentMade:      models.ParseNumeric(cell("actual_payment_made")),
		PercentageOfCompletion: models.ParseNumeric(cell("percentageOfCompletion")),
		ContractDurationDays:   models.ParseNumeric(cell("contract_duration_days")),

		Status:            models.ParseString(cell("status")),
		ProcurementMethod: models.ParseString(cell("procurement_method")),

		IsRedFlagEntity:         models.ParseBool(cell("is_red_flag_entity")),
		IsBlacklistedContractor: models.ParseBool(cell("is_blacklisted_contractor")),
	}
}
