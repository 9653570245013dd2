// Package seed creates the default coordinator account on first start.
package seed

import (
	"context"
	"errors"

	"github.com/appderecho/backend/internal/app/models"
	"github.com/appderecho/backend/internal/app/repositories"
	"github.com/appderecho/backend/internal/pkg/apperrors"
	"github.com/appderecho/backend/internal/pkg/auth"
	"github.com/appderecho/backend/internal/pkg/logger"
)

const (
	defaultCoordinatorEmail    = "coordinador@unicolmayor.edu.co"
	defaultCoordinatorPassword = "coordinador123"
)

// EnsureCoordinator creates the default coordinator account when no account
// with its email exists. The password must be changed after first login.
func EnsureCoordinator(ctx context.Context, users *repositories.UserRepository) error {
	_, err := users.FindByEmail(ctx, defaultCoordinatorEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	_, err = users.Create(ctx, &models.User{
		FirstName:     "Coordinador",
		LastName:      "Consultorio Jurídico",
		Email:         defaultCoordinatorEmail,
		PasswordHash:  auth.HashPassword(defaultCoordinatorPassword),
		RoleType:      models.RoleCoordinator,
		IsActive:      true,
		EmailVerified: true,
	})
	if err != nil {
		return err
	}

	logger.Info().
		Str("email", defaultCoordinatorEmail).
		Msg("Default coordinator account created")
	return nil
}
