// Package services implements the business rules on top of the persistence
// layer. Services depend on small store interfaces so tests can substitute
// in-memory fakes.
package services

import (
	"context"
	"strings"

	"github.com/appderecho/backend/internal/app/models"
)

// UserStore is the persistence surface the services need for user accounts.
type UserStore interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, userID int64, hash string) error
	TouchLastAccess(ctx context.Context, userID int64) error
}

// RosterStore is the persistence surface for the pre-registration roster.
type RosterStore interface {
	Create(ctx context.Context, s *models.PendingStudent) (*models.PendingStudent, error)
	FindByID(ctx context.Context, id int64) (*models.PendingStudent, error)
	FindByCode(ctx context.Context, code string) (*models.PendingStudent, error)
	FindByDocumentID(ctx context.Context, documentID string) (*models.PendingStudent, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	List(ctx context.Context) ([]*models.PendingStudent, error)
	Update(ctx context.Context, s *models.PendingStudent) (*models.PendingStudent, error)
	Delete(ctx context.Context, id int64) error
	CompleteRegistration(ctx context.Context, studentID int64, user *models.User) (*models.User, error)
}

// ResetTokenStore is the persistence surface for password reset codes.
type ResetTokenStore interface {
	Create(ctx context.Context, token *models.PasswordResetToken) (*models.PasswordResetToken, error)
	FindActive(ctx context.Context, email, code string) (*models.PasswordResetToken, error)
	MarkUsed(ctx context.Context, tokenID, userID int64) error
}

// IntakeStore is the persistence surface for intake records.
type IntakeStore interface {
	Create(ctx context.Context, rec *models.IntakeRecord) (*models.IntakeRecord, error)
	FindByID(ctx context.Context, id int64) (*models.IntakeRecord, error)
	ListAll(ctx context.Context) ([]*models.IntakeRecord, error)
	ListVisibleToStudent(ctx context.Context, userID int64) ([]*models.IntakeRecord, error)
	Update(ctx context.Context, rec *models.IntakeRecord) (*models.IntakeRecord, error)
	SetActive(ctx context.Context, id int64, active bool) error
}

// EmailSender sends the transactional mail the services produce. Failures are
// logged but never fail the triggering operation.
type EmailSender interface {
	SendPasswordResetCode(to, name, code string) error
	SendWelcome(to, name, studentCode string) error
}

// normalizeEmail lowercases and trims an address so lookups and unique
// constraints see one canonical form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
