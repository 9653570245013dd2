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

func seedRosterEntry(t *testing.T, roster *fakeRosterStore) *models.PendingStudent {
	t.Helper()
	s, err := roster.Create(context.Background(), &models.PendingStudent{
		Code:       "DER1234ABCD",
		FirstName:  "Laura",
		LastName:   "Gómez",
		Email:      "laura.gomez@unicolmayor.edu.co",
		DocumentID: "100200300",
		Program:    models.DefaultProgram,
		Semester:   5,
		Status:     models.StatusPending,
		IsActive:   true,
	})
	require.NoError(t, err)
	return s
}

func newRegistrationFixture(t *testing.T) (*RegistrationService, *fakeRosterStore, *fakeUserStore, *fakeMailer, *auth.JWTService) {
	t.Helper()
	users := newFakeUserStore()
	roster := newFakeRosterStore(users)
	mailer := &fakeMailer{}
	jwtService := auth.NewJWTService(auth.Config{Secret: "test-secret"})
	svc := NewRegistrationService(roster, users, jwtService, mailer)
	return svc, roster, users, mailer, jwtService
}

func TestVerifyCode(t *testing.T) {
	svc, roster, _, _, _ := newRegistrationFixture(t)
	seedRosterEntry(t, roster)

	student, err := svc.VerifyCode(context.Background(), "der1234abcd")
	require.NoError(t, err)
	assert.Equal(t, "100200300", student.DocumentID)

	_, err = svc.VerifyCode(context.Background(), "DER0000XXXX")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestVerifyDocument(t *testing.T) {
	svc, roster, _, _, _ := newRegistrationFixture(t)
	seedRosterEntry(t, roster)

	student, err := svc.VerifyDocument(context.Background(), "  100200300  ")
	require.NoError(t, err)
	assert.Equal(t, "DER1234ABCD", student.Code)
}

func TestRegisterHappyPath(t *testing.T) {
	svc, roster, users, mailer, jwtService := newRegistrationFixture(t)
	entry := seedRosterEntry(t, roster)

	user, access, refresh, suggestion, err := svc.Register(context.Background(),
		entry.Code, "  Laura ", " Gómez Ruiz ", "abc12", nil)
	require.NoError(t, err)
	assert.Empty(t, suggestion)

	assert.Equal(t, "Laura", user.FirstName)
	assert.Equal(t, "Gómez Ruiz", user.LastName)
	assert.Equal(t, entry.Email, user.Email)
	assert.Equal(t, models.RoleStudent, user.RoleType)
	require.NotNil(t, user.StudentCode)
	assert.Equal(t, entry.Code, *user.StudentCode)
	assert.True(t, auth.CheckPassword("abc12", user.PasswordHash))

	// Roster entry flipped atomically with the account creation.
	updated, err := roster.FindByID(context.Background(), entry.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRegistered, updated.Status)

	// Immediately usable token pair.
	claims, err := jwtService.ValidateToken(access, auth.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	_, err = jwtService.ValidateToken(refresh, auth.TokenTypeRefresh)
	require.NoError(t, err)

	// Welcome email carries the student code.
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "welcome", mailer.sent[0].kind)
	assert.Equal(t, entry.Code, mailer.sent[0].code)

	_, err = users.FindByEmail(context.Background(), entry.Email)
	assert.NoError(t, err)
}

func TestRegisterCodeSingleUse(t *testing.T) {
	svc, roster, _, _, _ := newRegistrationFixture(t)
	entry := seedRosterEntry(t, roster)

	_, _, _, _, err := svc.Register(context.Background(), entry.Code, "Laura", "Gómez", "abc12", nil)
	require.NoError(t, err)

	_, _, _, _, err = svc.Register(context.Background(), entry.Code, "Otra", "Persona", "abc12", nil)
	assert.ErrorIs(t, err, apperrors.ErrCodeAlreadyUsed)

	_, err = svc.VerifyCode(context.Background(), entry.Code)
	assert.ErrorIs(t, err, apperrors.ErrCodeAlreadyUsed)
}

func TestRegisterWeakPassword(t *testing.T) {
	svc, roster, users, _, _ := newRegistrationFixture(t)
	entry := seedRosterEntry(t, roster)

	_, _, _, _, err := svc.Register(context.Background(), entry.Code, "Laura", "Gómez", "ab", nil)
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)

	// No partial state: roster still pending, no user created.
	updated, err := roster.FindByID(context.Background(), entry.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, updated.Status)
	_, err = users.FindByEmail(context.Background(), entry.Email)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestRegisterShortPasswordSuggests(t *testing.T) {
	svc, roster, _, _, _ := newRegistrationFixture(t)
	entry := seedRosterEntry(t, roster)

	user, _, _, suggestion, err := svc.Register(context.Background(), entry.Code, "Laura", "Gómez", "abc", nil)
	require.NoError(t, err)
	assert.Equal(t, "Se recomienda usar al menos 5 caracteres", suggestion)
	assert.True(t, auth.CheckPassword("abc", user.PasswordHash))
}

func TestRegisterUnknownCode(t *testing.T) {
	svc, _, _, _, _ := newRegistrationFixture(t)

	_, _, _, _, err := svc.Register(context.Background(), "DER9999ZZZZ", "A", "B", "abc12", nil)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
