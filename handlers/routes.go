package handlers

import (
	"errors"

	"payroll_management/middleware"
	"payroll_management/types"
	"payroll_management/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// ErrorHandler renders errors that escape a handler with the API envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := types.ErrServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		msg = e.Message
	}
	if code == fiber.StatusNotFound {
		msg = types.ErrRouteNotFound
	}
	if code >= fiber.StatusInternalServerError {
		utils.Logger.Error("Unhandled error", zap.Error(err), zap.String("path", c.Path()))
		msg = types.ErrServerError
	}
	return c.Status(code).JSON(types.Fail(msg))
}

// NewApp builds the fiber app with middleware and every route registered.
// InitHandlers must be called first.
func NewApp(corsOrigin string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "payroll_management",
		ErrorHandler: ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger)
	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigin,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
	}))

	SetupRoutes(app)
	return app
}

func SetupRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(types.OK("ok", nil))
	})

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", Login)
	auth.Post("/logout", Logout)
	auth.Get("/check-auth", CheckAuth)

	// Everything below needs a session or bearer token. The check is attached per
	// route so unknown paths still fall through to the 404 handler.
	authed := Authn.RequireAuth

	api.Get("/departments", authed, GetDepartments)
	api.Post("/departments", authed, CreateDepartment)
	api.Put("/departments/:code", authed, UpdateDepartment)
	api.Delete("/departments/:code", authed, DeleteDepartment)

	api.Get("/employees", authed, GetAllEmployees)
	api.Post("/employees", authed, AddEmployee)
	api.Get("/employees/:id", authed, GetEmployee)
	api.Put("/employees/:id", authed, UpdateEmployee)
	api.Delete("/employees/:id", authed, DeleteEmployee)

	api.Get("/salaries", authed, GetSalaries)
	api.Post("/salaries", authed, CreateSalary)
	api.Get("/salaries/:id", authed, GetSalary)
	api.Put("/salaries/:id", authed, UpdateSalary)
	api.Delete("/salaries/:id", authed, DeleteSalary)

	api.Get("/reports/payroll", authed, GetPayrollReport)
	api.Get("/reports/payroll/export", authed, ExportPayrollReport)
	api.Get("/reports/departments", authed, GetDepartmentReport)

	api.Get("/dashboard", authed, GetDashboard)
	api.Get("/audit", authed, GetAuditLog)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).JSON(types.Fail(types.ErrRouteNotFound))
	})
}
