package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/appderecho/backend/internal/app/models"
	"github.com/appderecho/backend/internal/pkg/apperrors"
	"github.com/appderecho/backend/internal/pkg/auth"
	"github.com/appderecho/backend/internal/pkg/logger"
)

// AuthService implements login, token refresh, profile management and
// password recovery.
type AuthService struct {
	users       UserStore
	resetTokens ResetTokenStore
	jwt         *auth.JWTService
	mailer      EmailSender
	debug       bool
}

// NewAuthService creates an auth service
func NewAuthService(users UserStore, resetTokens ResetTokenStore, jwt *auth.JWTService, mailer EmailSender, debug bool) *AuthService {
	return &AuthService{
		users:       users,
		resetTokens: resetTokens,
		jwt:         jwt,
		mailer:      mailer,
		debug:       debug,
	}
}

// Login authenticates a user and issues a token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, string, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, "", "", apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, "", "", apperrors.ErrAccountDisabled
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, "", "", apperrors.ErrInvalidCredentials
	}

	if err := s.users.TouchLastAccess(ctx, user.ID); err != nil {
		logger.Warn().Err(err).Int64("user_id", user.ID).Msg("Could not record last access")
	}

	access, refresh, err := s.jwt.GenerateTokenPair(user)
	if err != nil {
		return nil, "", "", fmt.Errorf("issuing tokens: %w", err)
	}
	return user, access, refresh, nil
}

// Refresh validates a refresh token and mints a fresh access token. The
// refresh token itself is not rotated.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwt.ValidateToken(refreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return "", err
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return "", apperrors.ErrTokenInvalid
	}
	if !user.IsActive {
		return "", apperrors.ErrAccountDisabled
	}

	access, err := s.jwt.GenerateAccessToken(user)
	if err != nil {
		return "", fmt.Errorf("issuing access token: %w", err)
	}
	return access, nil
}

// GetProfile returns the account of the given user.
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.users.FindByID(ctx, userID)
}

// UpdateProfile applies the provided profile changes and returns the updated
// account. Nil fields are left unchanged.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, firstName, lastName, phone, address *string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if firstName != nil {
		user.FirstName = *firstName
	}
	if lastName != nil {
		user.LastName = *lastName
	}
	if phone != nil {
		user.Phone = phone
	}
	if address != nil {
		user.Address = address
	}

	return s.users.UpdateProfile(ctx, user)
}

// ChangePassword verifies the current password and stores a new one. A
// non-empty suggestion is returned when the new password passes but is
// shorter than recommended.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) (string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if !auth.CheckPassword(currentPassword, user.PasswordHash) {
		return "", apperrors.ErrInvalidCredentials
	}
	suggestion, err := auth.ValidatePassword(newPassword)
	if err != nil {
		return "", err
	}
	return suggestion, s.users.UpdatePasswordHash(ctx, userID, auth.HashPassword(newPassword))
}

// ForgotPassword issues a six digit reset code for the account, superseding
// any previous unused code, and mails it. In debug mode the code is also
// returned to the caller.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (debugCode *string, err error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserNotFound
	}

	code, err := generateResetCode()
	if err != nil {
		return nil, fmt.Errorf("generating reset code: %w", err)
	}

	token := &models.PasswordResetToken{
		UserID:    user.ID,
		Email:     user.Email,
		Code:      code,
		ExpiresAt: time.Now().Add(models.ResetCodeTTL),
	}
	if _, err := s.resetTokens.Create(ctx, token); err != nil {
		return nil, err
	}

	if err := s.mailer.SendPasswordResetCode(user.Email, user.FullName(), code); err != nil {
		logger.Warn().Err(err).Str("email", user.Email).Msg("Could not send reset code email")
	}

	if s.debug {
		return &code, nil
	}
	return nil, nil
}

// ResetPassword consumes a reset code and stores the new password. A
// non-empty suggestion is returned when the new password passes but is
// shorter than recommended.
func (s *AuthService) ResetPassword(ctx context.Context, email, code, newPassword string) (string, error) {
	token, err := s.resetTokens.FindActive(ctx, normalizeEmail(email), code)
	if err != nil {
		return "", err
	}
	if token.IsExpired() {
		return "", apperrors.ErrResetCodeInvalid
	}
	suggestion, err := auth.ValidatePassword(newPassword)
	if err != nil {
		return "", err
	}

	if err := s.resetTokens.MarkUsed(ctx, token.ID, token.UserID); err != nil {
		return "", err
	}
	return suggestion, s.users.UpdatePasswordHash(ctx, token.UserID, auth.HashPassword(newPassword))
}

func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
