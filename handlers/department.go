package handlers

import (
	"errors"
	"fmt"
	"strings"

	"payroll_management/models"
	"payroll_management/types"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type DepartmentRequest struct {
	DepartmentCode string              `json:"departmentCode"`
	DepartmentName string              `json:"departmentName"`
	Budget         decimal.NullDecimal `json:"budget"`
}

func GetDepartments(c *fiber.Ctx) error {
	depts, err := Store.Departments.FindAll(c.UserContext())
	if err != nil {
		return serverError(c, "Failed to list departments", err)
	}
	return c.JSON(types.OK(types.MsgOK, depts))
}

func CreateDepartment(c *fiber.Ctx) error {
	var req DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, types.ErrInvalidInput)
	}
	req.DepartmentCode = strings.TrimSpace(req.DepartmentCode)
	req.DepartmentName = strings.TrimSpace(req.DepartmentName)
	if req.DepartmentCode == "" || req.DepartmentName == "" {
		return badRequest(c, types.ErrMissingFields)
	}
	if req.Budget.Valid && req.Budget.Decimal.IsNegative() {
		return badRequest(c, types.ErrBudgetNegative)
	}

	ctx := c.UserContext()
	_, err := Store.Departments.FindByCode(ctx, req.DepartmentCode)
	if err == nil {
		return badRequest(c, types.ErrDeptExists)
	}
	if !errors.Is(err, types.ErrNotFound) {
		return serverError(c, "Failed to look up department", err)
	}

	dept := models.Department{
		DepartmentCode: req.DepartmentCode,
		DepartmentName: req.DepartmentName,
		Budget:         req.Budget,
	}
	if err := Store.Departments.Create(ctx, &dept); err != nil {
		if errors.Is(err, types.ErrDuplicate) {
			return badRequest(c, types.ErrDeptExists)
		}
		return serverError(c, "Failed to create department", err)
	}

	recordAudit(c, "department", dept.DepartmentCode, "create", dept.DepartmentName)
	return c.Status(201).JSON(types.OK("Department created", dept))
}

// UpdateDepartment replaces the name and budget. An absent budget clears it.
func UpdateDepartment(c *fiber.Ctx) error {
	code := c.Params("code")

	var req DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, types.ErrInvalidInput)
	}
	req.DepartmentName = strings.TrimSpace(req.DepartmentName)
	if req.DepartmentName == "" {
		return badRequest(c, types.ErrMissingFields)
	}
	if req.Budget.Valid && req.Budget.Decimal.IsNegative() {
		return badRequest(c, types.ErrBudgetNegative)
	}

	ctx := c.UserContext()
	dept, err := Store.Departments.FindByCode(ctx, code)
	if errors.Is(err, types.ErrNotFound) {
		return notFound(c, types.ErrDeptNotFound)
	}
	if err != nil {
		return serverError(c, "Failed to look up department", err)
	}

	dept.DepartmentName = req.DepartmentName
	dept.Budget = req.Budget
	if err := Store.Departments.Update(ctx, dept); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return notFound(c, types.ErrDeptNotFound)
		}
		return serverError(c, "Failed to update department", err)
	}

	recordAudit(c, "department", code, "update", dept.DepartmentName)
	return c.JSON(types.OK("Department updated", dept))
}

func DeleteDepartment(c *fiber.Ctx) error {
	code := c.Params("code")
	ctx := c.UserContext()

	if _, err := Store.Departments.FindByCode(ctx, code); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return notFound(c, types.ErrDeptNotFound)
		}
		return serverError(c, "Failed to look up department", err)
	}

	n, err := Store.Employees.CountByDepartment(ctx, code)
	if err != nil {
		return serverError(c, "Failed to count employees", err)
	}
	if n > 0 {
		return badRequest(c, types.ErrDeptHasEmployees)
	}

	if err := Store.Departments.Delete(ctx, code); err != nil {
		switch {
		case errors.Is(err, types.ErrReferenced):
			return badRequest(c, types.ErrDeptHasEmployees)
		case errors.Is(err, types.ErrNotFound):
			return notFound(c, types.ErrDeptNotFound)
		}
		return serverError(c, "Failed to delete department", err)
	}

	recordAudit(c, "department", code, "delete", fmt.Sprintf("deleted department %s", code))
	return c.JSON(types.OK("Department deleted", nil))
}
