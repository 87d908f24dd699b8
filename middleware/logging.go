package middleware

import (
	"time"

	"payroll_management/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func RequestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if e, ok := err.(*fiber.Error); ok {
		status = e.Code
	}

	fields := []zap.Field{
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", status),
		zap.Duration("latency", time.Since(start)),
		zap.String("ip", c.IP()),
	}
	if id, ok := IdentityFrom(c.UserContext()); ok {
		fields = append(fields, zap.String("user", id.Username))
	}

	switch {
	case status >= fiber.StatusInternalServerError:
		utils.Logger.Error("request", fields...)
	case status >= fiber.StatusBadRequest:
		utils.Logger.Warn("request", fields...)
	default:
		utils.Logger.Info("request", fields...)
	}
	return err
}
