package handlers

import (
	"errors"
	"strings"

	"payroll_management/middleware"
	"payroll_management/types"
	"payroll_management/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks the credentials, opens a session and also hands back a bearer
// token for clients that do not keep cookies.
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, types.ErrInvalidInput)
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return badRequest(c, types.ErrMissingFields)
	}

	user, err := Store.Users.FindByUsername(c.UserContext(), req.Username)
	if errors.Is(err, types.ErrNotFound) {
		return c.Status(401).JSON(types.Fail(types.ErrBadCredentials))
	}
	if err != nil {
		return serverError(c, "Failed to load user", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		utils.Logger.Info("Rejected login", zap.String("username", req.Username))
		return c.Status(401).JSON(types.Fail(types.ErrBadCredentials))
	}

	id := middleware.Identity{UserID: user.ID, Username: user.Username}
	if err := Authn.StartSession(c, id); err != nil {
		return serverError(c, "Failed to start session", err)
	}
	token, err := Authn.IssueToken(id)
	if err != nil {
		return serverError(c, "Failed to sign token", err)
	}

	utils.Logger.Info("User logged in", zap.String("username", user.Username))
	return c.JSON(types.OK("Login successful", fiber.Map{
		"userId":   user.ID,
		"username": user.Username,
		"token":    token,
	}))
}

func Logout(c *fiber.Ctx) error {
	if err := Authn.EndSession(c); err != nil {
		utils.Logger.Error("Failed to destroy session", zap.Error(err))
		return c.Status(500).JSON(types.Fail(types.ErrLogoutFailed))
	}
	return c.JSON(types.OK("Logout successful", nil))
}

func CheckAuth(c *fiber.Ctx) error {
	id, ok := Authn.Resolve(c)
	if !ok {
		return c.Status(401).JSON(types.Fail(types.ErrUnauthorized))
	}
	return c.JSON(types.OK("Authenticated", id))
}
