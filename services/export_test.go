package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestPayrollWorkbook(t *testing.T) {
	salaries, employees, departments := fixtures()
	report, err := BuildMonthlyReport("2023-10", salaries, employees, departments)
	require.NoError(t, err)

	buf, err := PayrollWorkbook(report)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(PayrollSheet)
	require.NoError(t, err)
	// header + 2 lines + totals
	require.Len(t, rows, 4)
	assert.Equal(t, "Employee No.", rows[0][0])
	assert.Equal(t, "Net Salary", rows[0][9])
	assert.Equal(t, "E002", rows[1][0])
	assert.Equal(t, "E001", rows[2][0])
	assert.Equal(t, "Total", rows[3][0])

	net, err := f.GetCellValue(PayrollSheet, "J4", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "9500", net)
}

func TestPayrollWorkbookEmptyReport(t *testing.T) {
	report, err := BuildMonthlyReport("2030-01", nil, nil, nil)
	require.NoError(t, err)

	buf, err := PayrollWorkbook(report)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(PayrollSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Total", rows[1][0])
}

func TestPayrollFileName(t *testing.T) {
	assert.Equal(t, "payroll_2023-10.xlsx", PayrollFileName("2023-10"))
}
