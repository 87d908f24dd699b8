package types

import "errors"

const (
	ErrInvalidInput     = "Invalid input"
	ErrMissingFields    = "Missing required fields"
	ErrServerError      = "Server error"
	ErrUnauthorized     = "Not authenticated"
	ErrBadCredentials   = "Invalid credentials"
	ErrRouteNotFound    = "Route not found"
	ErrMonthRequired    = "Month parameter is required"
	ErrMonthFormat      = "Month must use the YYYY-MM format"
	ErrDateFormat       = "hiredDate must use the YYYY-MM-DD format"
	ErrDeptExists       = "Department code already exists"
	ErrDeptNotFound     = "Department not found"
	ErrDeptHasEmployees = "Cannot delete: Department has employees"
	ErrInvalidDept      = "Invalid department code"
	ErrEmpExists        = "Employee number already exists"
	ErrEmpNotFound      = "Employee not found"
	ErrEmpHasSalaries   = "Cannot delete: Employee has salary records"
	ErrInvalidEmp       = "Invalid employee number"
	ErrSalaryNotFound   = "Salary record not found"
	ErrSalaryExists     = "Salary record already exists for this employee and month"
	ErrAmountNegative   = "Salary amounts must not be negative"
	ErrDeductionTooHigh = "Total deduction cannot exceed gross salary"
	ErrAmountDecimals   = "Salary amounts allow at most 2 decimal places"
	ErrAmountTooLarge   = "Salary amounts must be less than 1000000000000"
	ErrBudgetNegative   = "Budget must not be negative"
	ErrLogoutFailed     = "Could not log out"
)

// Sentinel errors shared by the repository, service and handler layers.
var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("duplicate key")
	ErrReferenced = errors.New("record is still referenced")

	ErrMissingMonth          = errors.New("month is required")
	ErrInvalidMonth          = errors.New("month must be YYYY-MM")
	ErrNegativeAmount        = errors.New("amount must not be negative")
	ErrDeductionExceedsGross = errors.New("deduction must not exceed gross salary")
	ErrAmountPrecision       = errors.New("amount has more than 2 decimal places")
	ErrAmountOutOfRange      = errors.New("amount does not fit 12 integer digits")
)
