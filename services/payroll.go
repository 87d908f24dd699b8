package services

import (
	"context"

	"payroll_management/repository"

	"github.com/shopspring/decimal"
)

// PayrollService fetches the rows a report needs and hands them to the pure
// report builders.
type PayrollService struct {
	Employees   repository.EmployeeRepository
	Departments repository.DepartmentRepository
	Salaries    repository.SalaryRepository
}

func NewPayrollService(store *repository.Store) *PayrollService {
	return &PayrollService{
		Employees:   store.Employees,
		Departments: store.Departments,
		Salaries:    store.Salaries,
	}
}

type DashboardStats struct {
	TotalEmployees   int64           `json:"totalEmployees"`
	TotalDepartments int64           `json:"totalDepartments"`
	SalaryRecords    int64           `json:"salaryRecords"`
	TotalNetSalary   decimal.Decimal `json:"totalNetSalary"`
}

func (p *PayrollService) MonthlyReport(ctx context.Context, month string) (*MonthlyReport, error) {
	if err := ValidateMonth(month); err != nil {
		return nil, err
	}
	salaries, err := p.Salaries.FindByMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	employees, err := p.Employees.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	departments, err := p.Departments.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return BuildMonthlyReport(month, salaries, employees, departments)
}

func (p *PayrollService) DepartmentReport(ctx context.Context, month string) ([]DepartmentCost, error) {
	if month != "" {
		if err := ValidateMonth(month); err != nil {
			return nil, err
		}
	}
	salaries, err := p.Salaries.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	employees, err := p.Employees.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	departments, err := p.Departments.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return BuildDepartmentReport(month, salaries, employees, departments), nil
}

func (p *PayrollService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	var err error

	if stats.TotalEmployees, err = p.Employees.Count(ctx); err != nil {
		return nil, err
	}
	departments, err := p.Departments.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalDepartments = int64(len(departments))

	salaries, err := p.Salaries.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	stats.SalaryRecords = int64(len(salaries))
	for _, s := range salaries {
		stats.TotalNetSalary = stats.TotalNetSalary.Add(s.NetSalary)
	}
	return &stats, nil
}
