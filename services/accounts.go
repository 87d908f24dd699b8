package services

import (
	"context"
	"errors"
	"fmt"

	"payroll_management/models"
	"payroll_management/repository"
	"payroll_management/types"

	"golang.org/x/crypto/bcrypt"
)

// SetPassword creates username with password, or resets the password when the
// user already exists. created reports which of the two happened.
func SetPassword(ctx context.Context, users repository.UserRepository, username, password string) (created bool, err error) {
	if username == "" || password == "" {
		return false, fmt.Errorf("%s: username and password", types.ErrMissingFields)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	_, err = users.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return false, users.UpdatePassword(ctx, username, string(hash))
	case errors.Is(err, types.ErrNotFound):
		return true, users.Create(ctx, &models.User{Username: username, PasswordHash: string(hash)})
	default:
		return false, err
	}
}
