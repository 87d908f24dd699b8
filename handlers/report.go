package handlers

import (
	"errors"
	"fmt"
	"strings"

	"payroll_management/services"
	"payroll_management/types"

	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func reportError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, types.ErrMissingMonth):
		return badRequest(c, types.ErrMonthRequired)
	case errors.Is(err, types.ErrInvalidMonth):
		return badRequest(c, types.ErrMonthFormat)
	}
	return serverError(c, "Failed to build payroll report", err)
}

// GetPayrollReport returns every salary of ?month= with employee and
// department details, plus totals.
func GetPayrollReport(c *fiber.Ctx) error {
	report, err := Payroll.MonthlyReport(c.UserContext(), strings.TrimSpace(c.Query("month")))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(types.OK(types.MsgOK, report))
}

func ExportPayrollReport(c *fiber.Ctx) error {
	report, err := Payroll.MonthlyReport(c.UserContext(), strings.TrimSpace(c.Query("month")))
	if err != nil {
		return reportError(c, err)
	}

	buf, err := services.PayrollWorkbook(report)
	if err != nil {
		return serverError(c, "Failed to write payroll workbook", err)
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, services.PayrollFileName(report.Month)))
	return c.Send(buf.Bytes())
}

func GetDepartmentReport(c *fiber.Ctx) error {
	costs, err := Payroll.DepartmentReport(c.UserContext(), strings.TrimSpace(c.Query("month")))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(types.OK(types.MsgOK, costs))
}
