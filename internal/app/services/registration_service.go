package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/appderecho/backend/internal/app/models"
	"github.com/appderecho/backend/internal/pkg/apperrors"
	"github.com/appderecho/backend/internal/pkg/auth"
	"github.com/appderecho/backend/internal/pkg/logger"
)

// RegistrationService turns roster entries into user accounts.
type RegistrationService struct {
	roster RosterStore
	users  UserStore
	jwt    *auth.JWTService
	mailer EmailSender
}

// NewRegistrationService creates a registration service
func NewRegistrationService(roster RosterStore, users UserStore, jwt *auth.JWTService, mailer EmailSender) *RegistrationService {
	return &RegistrationService{roster: roster, users: users, jwt: jwt, mailer: mailer}
}

// VerifyCode checks whether the student code belongs to an active roster
// entry that has not completed registration yet. Codes are matched uppercase.
func (s *RegistrationService) VerifyCode(ctx context.Context, code string) (*models.PendingStudent, error) {
	student, err := s.roster.FindByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, err
	}
	if student.Status == models.StatusRegistered {
		return nil, apperrors.ErrCodeAlreadyUsed
	}
	return student, nil
}

// VerifyDocument is the same check keyed on the national document number.
func (s *RegistrationService) VerifyDocument(ctx context.Context, documentID string) (*models.PendingStudent, error) {
	student, err := s.roster.FindByDocumentID(ctx, strings.TrimSpace(documentID))
	if err != nil {
		return nil, err
	}
	if student.Status == models.StatusRegistered {
		return nil, apperrors.ErrCodeAlreadyUsed
	}
	return student, nil
}

// Register completes the registration of a pre-registered student: the user
// account is created with the names supplied by the student and the roster
// metadata, the entry flips to registered, and a token pair is issued. The
// account creation and the status flip happen in one atomic step. A non-empty
// suggestion is returned when the password passes but is shorter than
// recommended.
func (s *RegistrationService) Register(ctx context.Context, code, firstName, lastName, password string, phone *string) (user *models.User, access, refresh, suggestion string, err error) {
	student, err := s.VerifyCode(ctx, code)
	if err != nil {
		return nil, "", "", "", err
	}

	suggestion, err = auth.ValidatePassword(password)
	if err != nil {
		return nil, "", "", "", err
	}

	if _, err := s.users.FindByEmail(ctx, student.Email); err == nil {
		return nil, "", "", "", apperrors.ErrEmailAlreadyExists
	}

	program := student.Program
	semester := student.Semester
	account := &models.User{
		FirstName:     strings.TrimSpace(firstName),
		LastName:      strings.TrimSpace(lastName),
		Email:         student.Email,
		PasswordHash:  auth.HashPassword(password),
		RoleType:      models.RoleStudent,
		StudentCode:   &student.Code,
		Program:       &program,
		Semester:      &semester,
		DocumentID:    &student.DocumentID,
		Phone:         phone,
		IsActive:      true,
		EmailVerified: true,
	}

	created, err := s.roster.CompleteRegistration(ctx, student.ID, account)
	if err != nil {
		return nil, "", "", "", err
	}

	access, refresh, err = s.jwt.GenerateTokenPair(created)
	if err != nil {
		return nil, "", "", "", fmt.Errorf("issuing tokens: %w", err)
	}

	if err := s.mailer.SendWelcome(created.Email, created.FullName(), student.Code); err != nil {
		logger.Warn().Err(err).Str("email", created.Email).Msg("Could not send welcome email")
	}

	logger.Info().
		Int64("user_id", created.ID).
		Str("codigo", student.Code).
		Msg("Student registration completed")

	return created, access, refresh, suggestion, nil
}
