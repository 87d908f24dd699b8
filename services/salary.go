package services

import (
	"fmt"
	"sort"
	"time"

	"payroll_management/models"
	"payroll_management/types"

	"github.com/shopspring/decimal"
)

const MonthLayout = "2006-01"

// Amounts are stored as decimal(14,2).
var maxAmount = decimal.New(1, 12)

func checkAmount(v decimal.Decimal) error {
	if v.IsNegative() {
		return types.ErrNegativeAmount
	}
	if !v.Equal(v.Round(2)) {
		return types.ErrAmountPrecision
	}
	if v.GreaterThanOrEqual(maxAmount) {
		return types.ErrAmountOutOfRange
	}
	return nil
}

// ComputeNet returns gross - deduction. Negative amounts, amounts that do not fit
// decimal(14,2) and deductions larger than the gross are rejected.
func ComputeNet(gross, deduction decimal.Decimal) (decimal.Decimal, error) {
	if err := checkAmount(gross); err != nil {
		return decimal.Zero, err
	}
	if err := checkAmount(deduction); err != nil {
		return decimal.Zero, err
	}
	if deduction.GreaterThan(gross) {
		return decimal.Zero, types.ErrDeductionExceedsGross
	}
	return gross.Sub(deduction), nil
}

// ApplyAmounts sets gross/deduction on s and recomputes its net.
func ApplyAmounts(s *models.Salary, gross, deduction decimal.Decimal) error {
	net, err := ComputeNet(gross, deduction)
	if err != nil {
		return err
	}
	s.GrossSalary = gross
	s.TotalDeduction = deduction
	s.NetSalary = net
	return nil
}

func ValidateMonth(month string) error {
	if month == "" {
		return types.ErrMissingMonth
	}
	if _, err := time.Parse(MonthLayout, month); err != nil {
		return fmt.Errorf("%w: %q", types.ErrInvalidMonth, month)
	}
	return nil
}

type PayrollRow struct {
	SalaryID       string          `json:"salaryId"`
	EmployeeNumber string          `json:"employeeNumber"`
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	Position       string          `json:"position"`
	DepartmentCode string          `json:"departmentCode"`
	DepartmentName string          `json:"departmentName"`
	Month          string          `json:"month"`
	GrossSalary    decimal.Decimal `json:"grossSalary"`
	TotalDeduction decimal.Decimal `json:"totalDeduction"`
	NetSalary      decimal.Decimal `json:"netSalary"`
}

type PayrollTotals struct {
	Records        int             `json:"records"`
	GrossSalary    decimal.Decimal `json:"grossSalary"`
	TotalDeduction decimal.Decimal `json:"totalDeduction"`
	NetSalary      decimal.Decimal `json:"netSalary"`
}

func (t *PayrollTotals) add(gross, deduction, net decimal.Decimal) {
	t.Records++
	t.GrossSalary = t.GrossSalary.Add(gross)
	t.TotalDeduction = t.TotalDeduction.Add(deduction)
	t.NetSalary = t.NetSalary.Add(net)
}

type MonthlyReport struct {
	Month  string        `json:"month"`
	Rows   []PayrollRow  `json:"rows"`
	Totals PayrollTotals `json:"totals"`
}

type DepartmentCost struct {
	DepartmentCode string          `json:"departmentCode"`
	DepartmentName string          `json:"departmentName"`
	EmployeeCount  int             `json:"employeeCount"`
	Records        int             `json:"records"`
	GrossSalary    decimal.Decimal `json:"grossSalary"`
	TotalDeduction decimal.Decimal `json:"totalDeduction"`
	NetSalary      decimal.Decimal `json:"netSalary"`
}

// BuildMonthlyReport keeps the salaries of month, joins their employee and department
// for display and totals them. Rows are ordered by department then employee number.
func BuildMonthlyReport(month string, salaries []models.Salary, employees []models.Employee, departments []models.Department) (*MonthlyReport, error) {
	if err := ValidateMonth(month); err != nil {
		return nil, err
	}

	empByNumber := make(map[string]models.Employee, len(employees))
	for _, e := range employees {
		empByNumber[e.EmployeeNumber] = e
	}
	deptByCode := make(map[string]models.Department, len(departments))
	for _, d := range departments {
		deptByCode[d.DepartmentCode] = d
	}

	report := &MonthlyReport{
		Month: month,
		Rows:  []PayrollRow{},
	}
	for _, s := range salaries {
		if s.Month != month {
			continue
		}
		row := PayrollRow{
			SalaryID:       s.ID,
			EmployeeNumber: s.EmployeeNumber,
			Month:          s.Month,
			GrossSalary:    s.GrossSalary,
			TotalDeduction: s.TotalDeduction,
			NetSalary:      s.NetSalary,
		}
		if e, ok := empByNumber[s.EmployeeNumber]; ok {
			row.FirstName = e.FirstName
			row.LastName = e.LastName
			row.Position = e.Position
			row.DepartmentCode = e.DepartmentCode
			row.DepartmentName = deptByCode[e.DepartmentCode].DepartmentName
		}
		report.Rows = append(report.Rows, row)
		report.Totals.add(s.GrossSalary, s.TotalDeduction, s.NetSalary)
	}

	sort.SliceStable(report.Rows, func(i, j int) bool {
		a, b := report.Rows[i], report.Rows[j]
		if a.DepartmentCode != b.DepartmentCode {
			return a.DepartmentCode < b.DepartmentCode
		}
		return a.EmployeeNumber < b.EmployeeNumber
	})
	return report, nil
}

// BuildDepartmentReport groups employees by department and sums their payroll cost.
// An empty month means every month on record.
func BuildDepartmentReport(month string, salaries []models.Salary, employees []models.Employee, departments []models.Department) []DepartmentCost {
	groups := make(map[string]*DepartmentCost, len(departments))
	for _, d := range departments {
		groups[d.DepartmentCode] = &DepartmentCost{
			DepartmentCode: d.DepartmentCode,
			DepartmentName: d.DepartmentName,
		}
	}

	deptOf := make(map[string]string, len(employees))
	for _, e := range employees {
		g, ok := groups[e.DepartmentCode]
		if !ok {
			g = &DepartmentCost{DepartmentCode: e.DepartmentCode}
			groups[e.DepartmentCode] = g
		}
		g.EmployeeCount++
		deptOf[e.EmployeeNumber] = e.DepartmentCode
	}

	for _, s := range salaries {
		if month != "" && s.Month != month {
			continue
		}
		code, ok := deptOf[s.EmployeeNumber]
		if !ok {
			continue
		}
		g := groups[code]
		g.Records++
		g.GrossSalary = g.GrossSalary.Add(s.GrossSalary)
		g.TotalDeduction = g.TotalDeduction.Add(s.TotalDeduction)
		g.NetSalary = g.NetSalary.Add(s.NetSalary)
	}

	result := make([]DepartmentCost, 0, len(groups))
	for _, g := range groups {
		result = append(result, *g)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DepartmentCode < result[j].DepartmentCode
	})
	return result
}
