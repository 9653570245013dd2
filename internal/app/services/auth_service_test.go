package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appderecho/backend/internal/app/models"
	"github.com/appderecho/backend/internal/pkg/apperrors"
	"github.com/appderecho/backend/internal/pkg/auth"
)

func newAuthFixture(t *testing.T, debug bool) (*AuthService, *fakeUserStore, *fakeResetStore, *fakeMailer, *auth.JWTService) {
	t.Helper()
	users := newFakeUserStore()
	resets := newFakeResetStore()
	mailer := &fakeMailer{}
	jwtService := auth.NewJWTService(auth.Config{Secret: "test-secret"})
	svc := NewAuthService(users, resets, jwtService, mailer, debug)
	return svc, users, resets, mailer, jwtService
}

func seedUser(users *fakeUserStore, email, password string, active bool) *models.User {
	return users.add(&models.User{
		FirstName:    "Laura",
		LastName:     "Gómez",
		Email:        email,
		PasswordHash: auth.HashPassword(password),
		RoleType:     models.RoleStudent,
		IsActive:     active,
	})
}

func TestLogin(t *testing.T) {
	svc, users, _, _, jwtService := newAuthFixture(t, false)
	seedUser(users, "laura@u.edu.co", "abc12", true)

	user, access, refresh, err := svc.Login(context.Background(), "laura@u.edu.co", "abc12")
	require.NoError(t, err)
	assert.NotNil(t, user.LastAccessAt)

	claims, err := jwtService.ValidateToken(access, auth.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleStudent, claims.RoleType)

	_, err = jwtService.ValidateToken(refresh, auth.TokenTypeRefresh)
	require.NoError(t, err)
}

func TestLoginNormalizesEmail(t *testing.T) {
	svc, users, _, _, _ := newAuthFixture(t, false)
	seedUser(users, "laura@u.edu.co", "abc12", true)

	user, _, _, err := svc.Login(context.Background(), "  LAURA@U.EDU.CO ", "abc12")
	require.NoError(t, err)
	assert.Equal(t, "laura@u.edu.co", user.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, users, _, _, _ := newAuthFixture(t, false)
	seedUser(users, "laura@u.edu.co", "abc12", true)

	_, _, _, err := svc.Login(context.Background(), "laura@u.edu.co", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, _, _, err = svc.Login(context.Background(), "nadie@u.edu.co", "abc12")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, users, _, _, _ := newAuthFixture(t, false)
	seedUser(users, "laura@u.edu.co", "abc12", false)

	_, _, _, err := svc.Login(context.Background(), "laura@u.edu.co", "abc12")
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

func TestRefreshRequiresRefreshToken(t *testing.T) {
	svc, users, _, _, jwtService := newAuthFixture(t, false)
	user := seedUser(users, "laura@u.edu.co", "abc12", true)

	access, refresh, err := jwtService.GenerateTokenPair(user)
	require.NoError(t, err)

	// An access token must not pass as a refresh token.
	_, err = svc.Refresh(context.Background(), access)
	assert.ErrorIs(t, err, apperrors.ErrWrongTokenType)

	newAccess, err := svc.Refresh(context.Background(), refresh)
	require.NoError(t, err)
	claims, err := jwtService.ValidateToken(newAccess, auth.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestChangePassword(t *testing.T) {
	svc, users, _, _, _ := newAuthFixture(t, false)
	user := seedUser(users, "laura@u.edu.co", "abc12", true)

	_, err := svc.ChangePassword(context.Background(), user.ID, "wrong", "nueva123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.ChangePassword(context.Background(), user.ID, "abc12", "ab")
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)

	suggestion, err := svc.ChangePassword(context.Background(), user.ID, "abc12", "nueva123")
	require.NoError(t, err)
	assert.Empty(t, suggestion)
	_, _, _, err = svc.Login(context.Background(), "laura@u.edu.co", "nueva123")
	assert.NoError(t, err)
}

func TestChangePasswordShortButValidSuggests(t *testing.T) {
	svc, users, _, _, _ := newAuthFixture(t, false)
	user := seedUser(users, "laura@u.edu.co", "abc12", true)

	suggestion, err := svc.ChangePassword(context.Background(), user.ID, "abc12", "abcd")
	require.NoError(t, err)
	assert.Equal(t, "Se recomienda usar al menos 5 caracteres", suggestion)

	_, _, _, err = svc.Login(context.Background(), "laura@u.edu.co", "abcd")
	assert.NoError(t, err)
}

func TestForgotPasswordIssuesCode(t *testing.T) {
	svc, users, resets, mailer, _ := newAuthFixture(t, false)
	user := seedUser(users, "laura@u.edu.co", "abc12", true)

	debugCode, err := svc.ForgotPassword(context.Background(), "laura@u.edu.co")
	require.NoError(t, err)
	assert.Nil(t, debugCode, "code must not be echoed outside debug mode")

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "reset", mailer.sent[0].kind)
	assert.Regexp(t, `^\d{6}$`, mailer.sent[0].code)

	_, err = resets.FindActive(context.Background(), user.Email, mailer.sent[0].code)
	assert.NoError(t, err)
}

func TestForgotPasswordDebugEcho(t *testing.T) {
	svc, users, _, mailer, _ := newAuthFixture(t, true)
	seedUser(users, "laura@u.edu.co", "abc12", true)

	debugCode, err := svc.ForgotPassword(context.Background(), "laura@u.edu.co")
	require.NoError(t, err)
	require.NotNil(t, debugCode)
	assert.Equal(t, mailer.sent[0].code, *debugCode)
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	svc, _, _, _, _ := newAuthFixture(t, false)

	_, err := svc.ForgotPassword(context.Background(), "nadie@u.edu.co")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestForgotPasswordSupersedesPreviousCode(t *testing.T) {
	svc, users, resets, mailer, _ := newAuthFixture(t, false)
	user := seedUser(users, "laura@u.edu.co", "abc12", true)

	_, err := svc.ForgotPassword(context.Background(), user.Email)
	require.NoError(t, err)
	firstCode := mailer.sent[0].code

	_, err = svc.ForgotPassword(context.Background(), user.Email)
	require.NoError(t, err)
	secondCode := mailer.sent[1].code

	// Only the latest code stays redeemable.
	_, err = resets.FindActive(context.Background(), user.Email, firstCode)
	if firstCode != secondCode {
		assert.ErrorIs(t, err, apperrors.ErrResetCodeInvalid)
	}
	_, err = resets.FindActive(context.Background(), user.Email, secondCode)
	assert.NoError(t, err)
}

func TestResetPasswordSingleUse(t *testing.T) {
	svc, users, _, mailer, _ := newAuthFixture(t, false)
	user := seedUser(users, "laura@u.edu.co", "abc12", true)

	_, err := svc.ForgotPassword(context.Background(), user.Email)
	require.NoError(t, err)
	code := mailer.sent[0].code

	_, err = svc.ResetPassword(context.Background(), user.Email, code, "nueva123")
	require.NoError(t, err)

	_, _, _, err = svc.Login(context.Background(), user.Email, "nueva123")
	require.NoError(t, err)

	// Second redemption of the same code fails.
	_, err = svc.ResetPassword(context.Background(), user.Email, code, "otra456")
	assert.ErrorIs(t, err, apperrors.ErrResetCodeInvalid)
}

func TestResetPasswordWrongCode(t *testing.T) {
	svc, users, _, mailer, _ := newAuthFixture(t, false)
	user := seedUser(users, "laura@u.edu.co", "abc12", true)

	_, err := svc.ForgotPassword(context.Background(), user.Email)
	require.NoError(t, err)

	wrongCode := "000000"
	if mailer.sent[0].code == wrongCode {
		wrongCode = "000001"
	}
	_, err = svc.ResetPassword(context.Background(), user.Email, wrongCode, "nueva123")
	assert.ErrorIs(t, err, apperrors.ErrResetCodeInvalid)
}
