package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const PayrollSheet = "Payroll"

var payrollColumns = []struct {
	Header string
	Width  float64
}{
	{"Employee No.", 14},
	{"First Name", 16},
	{"Last Name", 16},
	{"Position", 20},
	{"Department", 12},
	{"Department Name", 24},
	{"Month", 10},
	{"Gross Salary", 15},
	{"Total Deduction", 15},
	{"Net Salary", 15},
}

// PayrollWorkbook renders a monthly report as an xlsx file: a header row, one row per
// payroll line and a totals row.
func PayrollWorkbook(report *MonthlyReport) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", PayrollSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, fmt.Errorf("money style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: 4})
	if err != nil {
		return nil, fmt.Errorf("total style: %w", err)
	}

	for i, col := range payrollColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(PayrollSheet, cell, col.Header); err != nil {
			return nil, err
		}
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(PayrollSheet, name, name, col.Width); err != nil {
			return nil, err
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(payrollColumns))
	if err := f.SetCellStyle(PayrollSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, err
	}

	row := 2
	for _, r := range report.Rows {
		values := []interface{}{
			r.EmployeeNumber, r.FirstName, r.LastName, r.Position,
			r.DepartmentCode, r.DepartmentName, r.Month,
			r.GrossSalary.InexactFloat64(), r.TotalDeduction.InexactFloat64(), r.NetSalary.InexactFloat64(),
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(PayrollSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", row, err)
		}
		if err := f.SetCellStyle(PayrollSheet, fmt.Sprintf("H%d", row), fmt.Sprintf("J%d", row), moneyStyle); err != nil {
			return nil, err
		}
		row++
	}

	totals := []interface{}{
		"Total", "", "", "", "", "", report.Month,
		report.Totals.GrossSalary.InexactFloat64(),
		report.Totals.TotalDeduction.InexactFloat64(),
		report.Totals.NetSalary.InexactFloat64(),
	}
	cell, _ := excelize.CoordinatesToCellName(1, row)
	if err := f.SetSheetRow(PayrollSheet, cell, &totals); err != nil {
		return nil, fmt.Errorf("write totals: %w", err)
	}
	if err := f.SetCellStyle(PayrollSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("J%d", row), totalStyle); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

func PayrollFileName(month string) string {
	return fmt.Sprintf("payroll_%s.xlsx", month)
}
