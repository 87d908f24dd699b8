package handlers

import (
	"errors"
	"strings"

	"payroll_management/models"
	"payroll_management/services"
	"payroll_management/types"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// Amounts are pointers so a missing field can be told apart from zero.
type SalaryRequest struct {
	EmployeeNumber string           `json:"employeeNumber"`
	GrossSalary    *decimal.Decimal `json:"grossSalary"`
	TotalDeduction *decimal.Decimal `json:"totalDeduction"`
	Month          string           `json:"month"`
}

type UpdateSalaryRequest struct {
	GrossSalary    *decimal.Decimal `json:"grossSalary"`
	TotalDeduction *decimal.Decimal `json:"totalDeduction"`
	Month          *string          `json:"month"`
}

func GetSalaries(c *fiber.Ctx) error {
	ctx := c.UserContext()
	month := strings.TrimSpace(c.Query("month"))

	var (
		salaries []models.Salary
		err      error
	)
	if month != "" {
		if err := services.ValidateMonth(month); err != nil {
			return badRequest(c, types.ErrMonthFormat)
		}
		salaries, err = Store.Salaries.FindByMonth(ctx, month)
	} else {
		salaries, err = Store.Salaries.FindAll(ctx)
	}
	if err != nil {
		return serverError(c, "Failed to list salaries", err)
	}
	return c.JSON(types.OK(types.MsgOK, salaries))
}

func GetSalary(c *fiber.Ctx) error {
	s, err := Store.Salaries.FindByID(c.UserContext(), c.Params("id"))
	if errors.Is(err, types.ErrNotFound) {
		return notFound(c, types.ErrSalaryNotFound)
	}
	if err != nil {
		return serverError(c, "Failed to load salary", err)
	}
	return c.JSON(types.OK(types.MsgOK, s))
}

func CreateSalary(c *fiber.Ctx) error {
	var req SalaryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, types.ErrInvalidInput)
	}
	req.EmployeeNumber = strings.TrimSpace(req.EmployeeNumber)
	req.Month = strings.TrimSpace(req.Month)
	if req.EmployeeNumber == "" || req.Month == "" || req.GrossSalary == nil || req.TotalDeduction == nil {
		return badRequest(c, types.ErrMissingFields)
	}
	if err := services.ValidateMonth(req.Month); err != nil {
		return badRequest(c, types.ErrMonthFormat)
	}

	s := models.Salary{
		EmployeeNumber: req.EmployeeNumber,
		Month:          req.Month,
	}
	if err := services.ApplyAmounts(&s, *req.GrossSalary, *req.TotalDeduction); err != nil {
		if msg, ok := amountMessage(err); ok {
			return badRequest(c, msg)
		}
		return serverError(c, "Failed to compute net salary", err)
	}

	ctx := c.UserContext()
	if _, err := Store.Employees.FindByNumber(ctx, req.EmployeeNumber); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return badRequest(c, types.ErrInvalidEmp)
		}
		return serverError(c, "Failed to look up employee", err)
	}

	_, err := Store.Salaries.FindByEmployeeMonth(ctx, req.EmployeeNumber, req.Month)
	if err == nil {
		return badRequest(c, types.ErrSalaryExists)
	}
	if !errors.Is(err, types.ErrNotFound) {
		return serverError(c, "Failed to look up salary", err)
	}

	if err := Store.Salaries.Create(ctx, &s); err != nil {
		switch {
		case errors.Is(err, types.ErrDuplicate):
			return badRequest(c, types.ErrSalaryExists)
		case errors.Is(err, types.ErrReferenced):
			return badRequest(c, types.ErrInvalidEmp)
		}
		return serverError(c, "Failed to create salary", err)
	}

	recordAudit(c, "salary", s.ID, "create", s.EmployeeNumber+" "+s.Month+" net "+s.NetSalary.StringFixed(2))
	return c.Status(201).JSON(types.OK("Salary record created", s))
}

// UpdateSalary changes amounts and/or month, recomputes the net and returns the
// stored record.
func UpdateSalary(c *fiber.Ctx) error {
	var req UpdateSalaryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, types.ErrInvalidInput)
	}

	ctx := c.UserContext()
	s, err := Store.Salaries.FindByID(ctx, c.Params("id"))
	if errors.Is(err, types.ErrNotFound) {
		return notFound(c, types.ErrSalaryNotFound)
	}
	if err != nil {
		return serverError(c, "Failed to load salary", err)
	}

	gross, deduction := s.GrossSalary, s.TotalDeduction
	if req.GrossSalary != nil {
		gross = *req.GrossSalary
	}
	if req.TotalDeduction != nil {
		deduction = *req.TotalDeduction
	}
	if err := services.ApplyAmounts(s, gross, deduction); err != nil {
		if msg, ok := amountMessage(err); ok {
			return badRequest(c, msg)
		}
		return serverError(c, "Failed to compute net salary", err)
	}

	if req.Month != nil {
		month := strings.TrimSpace(*req.Month)
		if err := services.ValidateMonth(month); err != nil {
			msg, _ := amountMessage(err)
			return badRequest(c, msg)
		}
		if month != s.Month {
			other, err := Store.Salaries.FindByEmployeeMonth(ctx, s.EmployeeNumber, month)
			if err == nil && other.ID != s.ID {
				return badRequest(c, types.ErrSalaryExists)
			}
			if err != nil && !errors.Is(err, types.ErrNotFound) {
				return serverError(c, "Failed to look up salary", err)
			}
		}
		s.Month = month
	}

	if err := Store.Salaries.Update(ctx, s); err != nil {
		switch {
		case errors.Is(err, types.ErrNotFound):
			return notFound(c, types.ErrSalaryNotFound)
		case errors.Is(err, types.ErrDuplicate):
			return badRequest(c, types.ErrSalaryExists)
		}
		return serverError(c, "Failed to update salary", err)
	}

	updated, err := Store.Salaries.FindByID(ctx, s.ID)
	if err != nil {
		return serverError(c, "Failed to reload salary", err)
	}

	recordAudit(c, "salary", s.ID, "update", s.EmployeeNumber+" "+s.Month+" net "+s.NetSalary.StringFixed(2))
	return c.JSON(types.OK("Salary record updated", updated))
}

func DeleteSalary(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := Store.Salaries.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return notFound(c, types.ErrSalaryNotFound)
		}
		return serverError(c, "Failed to delete salary", err)
	}

	recordAudit(c, "salary", id, "delete", "")
	return c.JSON(types.OK("Salary record deleted", nil))
}
