package handlers

import (
	"errors"

	"payroll_management/middleware"
	"payroll_management/models"
	"payroll_management/repository"
	"payroll_management/services"
	"payroll_management/types"
	"payroll_management/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var (
	Store   *repository.Store
	Payroll *services.PayrollService
	Authn   *middleware.Auth
)

func InitHandlers(store *repository.Store, payroll *services.PayrollService, auth *middleware.Auth) {
	Store = store
	Payroll = payroll
	Authn = auth
}

func serverError(c *fiber.Ctx, msg string, err error) error {
	utils.Logger.Error(msg, zap.Error(err), zap.String("path", c.Path()))
	return c.Status(500).JSON(types.Fail(types.ErrServerError))
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(400).JSON(types.Fail(msg))
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(404).JSON(types.Fail(msg))
}

// amountMessage maps a salary validation error to its response message.
func amountMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, types.ErrNegativeAmount):
		return types.ErrAmountNegative, true
	case errors.Is(err, types.ErrDeductionExceedsGross):
		return types.ErrDeductionTooHigh, true
	case errors.Is(err, types.ErrAmountPrecision):
		return types.ErrAmountDecimals, true
	case errors.Is(err, types.ErrAmountOutOfRange):
		return types.ErrAmountTooLarge, true
	case errors.Is(err, types.ErrMissingMonth):
		return types.ErrMonthRequired, true
	case errors.Is(err, types.ErrInvalidMonth):
		return types.ErrMonthFormat, true
	}
	return "", false
}

// recordAudit stores who changed what. Failures are logged and never fail the request.
func recordAudit(c *fiber.Ctx, entity, key, action, details string) {
	entry := &models.AuditLog{
		Entity:    entity,
		EntityKey: key,
		Action:    action,
		Details:   details,
	}
	if id, ok := middleware.IdentityFrom(c.UserContext()); ok {
		entry.Username = id.Username
	}
	if err := Store.Audit.Record(c.UserContext(), entry); err != nil {
		utils.Logger.Warn("Failed to record audit entry",
			zap.Error(err),
			zap.String("entity", entity),
			zap.String("key", key),
		)
	}
}
