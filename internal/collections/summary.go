package collections

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// caseWorkbookName is the batch-level workbook placed at the archive root
const caseWorkbookName = "case-data.xlsx"

var caseWorkbookHeader = []string{
	"Case Title", "Defendant", "ID No", "Phone", "Contract No",
	"Unpaid Invoices", "Violations", "Claim Amount", "Claim Amount (words)",
}

// BuildCaseWorkbook renders one row of case data per successfully aggregated
// target, ready for court filing intake
func BuildCaseWorkbook(aggregates []*FinancialAggregate) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Cases"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	for col, title := range caseWorkbookHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, agg := range aggregates {
		values := []interface{}{
			"Debt collection case - " + agg.CustomerName,
			agg.CustomerName,
			agg.NationalID,
			agg.Phone,
			agg.ContractNumber,
			len(agg.Invoices),
			len(agg.Violations),
			agg.GrandTotal.StringFixed(3),
			agg.GrandTotalWords,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write case row: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
