package handlers

import (
	"payroll_management/types"

	"github.com/gofiber/fiber/v2"
)

// Dashboard & Overview
func GetDashboard(c *fiber.Ctx) error {
	stats, err := Payroll.Dashboard(c.UserContext())
	if err != nil {
		return serverError(c, "Failed to load dashboard stats", err)
	}
	return c.JSON(types.OK(types.MsgOK, stats))
}

func GetAuditLog(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	entries, err := Store.Audit.Recent(c.UserContext(), limit)
	if err != nil {
		return serverError(c, "Failed to load audit log", err)
	}
	return c.JSON(types.OK(types.MsgOK, entries))
}
