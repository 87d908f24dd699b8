package handlers

import (
	"errors"
	"strings"
	"time"

	"payroll_management/models"
	"payroll_management/types"

	"github.com/gofiber/fiber/v2"
)

const hiredDateLayout = "2006-01-02"

type AddEmployeeRequest struct {
	EmployeeNumber string `json:"employeeNumber"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Position       string `json:"position"`
	Address        string `json:"address"`
	Telephone      string `json:"telephone"`
	Gender         string `json:"gender"`
	HiredDate      string `json:"hiredDate"` // YYYY-MM-DD
	DepartmentCode string `json:"departmentCode"`
}

// UpdateEmployeeRequest only touches the fields that are present.
type UpdateEmployeeRequest struct {
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Position       *string `json:"position"`
	Address        *string `json:"address"`
	Telephone      *string `json:"telephone"`
	Gender         *string `json:"gender"`
	HiredDate      *string `json:"hiredDate"`
	DepartmentCode *string `json:"departmentCode"`
}

func validHiredDate(s string) bool {
	if s == "" {
		return true
	}
	_, err := time.Parse(hiredDateLayout, s)
	return err == nil
}

// departmentExists reports whether code names a department. A lookup failure
// other than not found is returned as err.
func departmentExists(c *fiber.Ctx, code string) (bool, error) {
	_, err := Store.Departments.FindByCode(c.UserContext(), code)
	if errors.Is(err, types.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func GetAllEmployees(c *fiber.Ctx) error {
	employees, err := Store.Employees.FindAll(c.UserContext())
	if err != nil {
		return serverError(c, "Failed to list employees", err)
	}
	return c.JSON(types.OK(types.MsgOK, employees))
}

func GetEmployee(c *fiber.Ctx) error {
	emp, err := Store.Employees.FindByNumber(c.UserContext(), c.Params("id"))
	if errors.Is(err, types.ErrNotFound) {
		return notFound(c, types.ErrEmpNotFound)
	}
	if err != nil {
		return serverError(c, "Failed to load employee", err)
	}
	return c.JSON(types.OK(types.MsgOK, emp))
}

func AddEmployee(c *fiber.Ctx) error {
	var req AddEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, types.ErrInvalidInput)
	}
	req.EmployeeNumber = strings.TrimSpace(req.EmployeeNumber)
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.DepartmentCode = strings.TrimSpace(req.DepartmentCode)
	if req.EmployeeNumber == "" || req.FirstName == "" || req.LastName == "" || req.DepartmentCode == "" {
		return badRequest(c, types.ErrMissingFields)
	}
	if !validHiredDate(req.HiredDate) {
		return badRequest(c, types.ErrDateFormat)
	}

	ok, err := departmentExists(c, req.DepartmentCode)
	if err != nil {
		return serverError(c, "Failed to look up department", err)
	}
	if !ok {
		return badRequest(c, types.ErrInvalidDept)
	}

	ctx := c.UserContext()
	_, err = Store.Employees.FindByNumber(ctx, req.EmployeeNumber)
	if err == nil {
		return badRequest(c, types.ErrEmpExists)
	}
	if !errors.Is(err, types.ErrNotFound) {
		return serverError(c, "Failed to look up employee", err)
	}

	emp := models.Employee{
		EmployeeNumber: req.EmployeeNumber,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Position:       req.Position,
		Address:        req.Address,
		Telephone:      req.Telephone,
		Gender:         req.Gender,
		HiredDate:      req.HiredDate,
		DepartmentCode: req.DepartmentCode,
	}
	if err := Store.Employees.Create(ctx, &emp); err != nil {
		switch {
		case errors.Is(err, types.ErrDuplicate):
			return badRequest(c, types.ErrEmpExists)
		case errors.Is(err, types.ErrReferenced):
			return badRequest(c, types.ErrInvalidDept)
		}
		return serverError(c, "Failed to create employee", err)
	}

	recordAudit(c, "employee", emp.EmployeeNumber, "create", emp.FullName())
	return c.Status(201).JSON(types.OK("Employee added", emp))
}

func UpdateEmployee(c *fiber.Ctx) error {
	var req UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, types.ErrInvalidInput)
	}

	ctx := c.UserContext()
	emp, err := Store.Employees.FindByNumber(ctx, c.Params("id"))
	if errors.Is(err, types.ErrNotFound) {
		return notFound(c, types.ErrEmpNotFound)
	}
	if err != nil {
		return serverError(c, "Failed to load employee", err)
	}

	if req.FirstName != nil {
		emp.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		emp.LastName = strings.TrimSpace(*req.LastName)
	}
	if emp.FirstName == "" || emp.LastName == "" {
		return badRequest(c, types.ErrMissingFields)
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.Address != nil {
		emp.Address = *req.Address
	}
	if req.Telephone != nil {
		emp.Telephone = *req.Telephone
	}
	if req.Gender != nil {
		emp.Gender = *req.Gender
	}
	if req.HiredDate != nil {
		if !validHiredDate(*req.HiredDate) {
			return badRequest(c, types.ErrDateFormat)
		}
		emp.HiredDate = *req.HiredDate
	}
	if req.DepartmentCode != nil {
		code := strings.TrimSpace(*req.DepartmentCode)
		ok, err := departmentExists(c, code)
		if err != nil {
			return serverError(c, "Failed to look up department", err)
		}
		if !ok {
			return badRequest(c, types.ErrInvalidDept)
		}
		emp.DepartmentCode = code
	}

	if err := Store.Employees.Update(ctx, emp); err != nil {
		switch {
		case errors.Is(err, types.ErrNotFound):
			return notFound(c, types.ErrEmpNotFound)
		case errors.Is(err, types.ErrReferenced):
			return badRequest(c, types.ErrInvalidDept)
		}
		return serverError(c, "Failed to update employee", err)
	}

	recordAudit(c, "employee", emp.EmployeeNumber, "update", emp.FullName())
	return c.JSON(types.OK("Employee updated", emp))
}

func DeleteEmployee(c *fiber.Ctx) error {
	number := c.Params("id")
	ctx := c.UserContext()

	if _, err := Store.Employees.FindByNumber(ctx, number); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return notFound(c, types.ErrEmpNotFound)
		}
		return serverError(c, "Failed to load employee", err)
	}

	n, err := Store.Salaries.CountByEmployee(ctx, number)
	if err != nil {
		return serverError(c, "Failed to count salary records", err)
	}
	if n > 0 {
		return badRequest(c, types.ErrEmpHasSalaries)
	}

	if err := Store.Employees.Delete(ctx, number); err != nil {
		switch {
		case errors.Is(err, types.ErrReferenced):
			return badRequest(c, types.ErrEmpHasSalaries)
		case errors.Is(err, types.ErrNotFound):
			return notFound(c, types.ErrEmpNotFound)
		}
		return serverError(c, "Failed to delete employee", err)
	}

	recordAudit(c, "employee", number, "delete", "")
	return c.JSON(types.OK("Employee deleted", nil))
}
