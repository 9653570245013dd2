package services

import (
	"context"
	"time"

	"github.com/appderecho/backend/internal/app/models"
	"github.com/appderecho/backend/internal/pkg/apperrors"
	"github.com/appderecho/backend/internal/pkg/logger"
	"github.com/appderecho/backend/internal/pkg/pdf"
)

// IntakeService manages intake records and their rendered PDF forms.
type IntakeService struct {
	intake IntakeStore
	users  UserStore
	pdf    *pdf.Generator
}

// NewIntakeService creates an intake service
func NewIntakeService(intake IntakeStore, users UserStore, generator *pdf.Generator) *IntakeService {
	return &IntakeService{intake: intake, users: users, pdf: generator}
}

// Create stores a new intake record. For student creators the student name
// field is always the creator's own name, whatever the request said.
func (s *IntakeService) Create(ctx context.Context, rec *models.IntakeRecord, userID int64, role models.UserRole) (*models.IntakeRecord, error) {
	if role == models.RoleStudent {
		user, err := s.users.FindByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		rec.StudentName = user.FullName()
	}

	rec.IsActive = true
	rec.CreatedBy = userID

	created, err := s.intake.Create(ctx, rec)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("record_id", created.ID).
		Int64("created_by", userID).
		Msg("Intake record created")

	return created, nil
}

// List returns the records visible to the caller. Coordinators see
// everything, students see only their own active records.
func (s *IntakeService) List(ctx context.Context, userID int64, role models.UserRole) ([]*models.IntakeRecord, error) {
	if role == models.RoleCoordinator {
		return s.intake.ListAll(ctx)
	}
	return s.intake.ListVisibleToStudent(ctx, userID)
}

// Get returns one record, subject to the same visibility rules as List.
func (s *IntakeService) Get(ctx context.Context, id, userID int64, role models.UserRole) (*models.IntakeRecord, error) {
	rec, err := s.intake.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role != models.RoleCoordinator && (rec.CreatedBy != userID || !rec.IsActive) {
		return nil, apperrors.ErrIntakeRecordNotFound
	}
	return rec, nil
}

// Update applies a partial update to a record. Coordinator only.
func (s *IntakeService) Update(ctx context.Context, id int64, patch *models.IntakeRecordPatch, role models.UserRole) (*models.IntakeRecord, error) {
	if role != models.RoleCoordinator {
		return nil, apperrors.ErrPermissionDenied
	}
	existing, err := s.intake.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(existing)
	return s.intake.Update(ctx, existing)
}

// Deactivate soft-deletes a record. Coordinator only, idempotent.
func (s *IntakeService) Deactivate(ctx context.Context, id int64, role models.UserRole) error {
	if role != models.RoleCoordinator {
		return apperrors.ErrPermissionDenied
	}
	return s.intake.SetActive(ctx, id, false)
}

// Reactivate restores a soft-deleted record. Coordinator only, idempotent.
func (s *IntakeService) Reactivate(ctx context.Context, id int64, role models.UserRole) error {
	if role != models.RoleCoordinator {
		return apperrors.ErrPermissionDenied
	}
	return s.intake.SetActive(ctx, id, true)
}

// GeneratePDF renders the official form of an active record and returns the
// document bytes together with its download file name. Students may only
// export their own records.
func (s *IntakeService) GeneratePDF(ctx context.Context, id, userID int64, role models.UserRole) ([]byte, string, error) {
	rec, err := s.intake.FindByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if !rec.IsActive {
		return nil, "", apperrors.ErrIntakeRecordNotFound
	}
	if role != models.RoleCoordinator && rec.CreatedBy != userID {
		return nil, "", apperrors.ErrPermissionDenied
	}

	data, err := s.pdf.Generate(rec)
	if err != nil {
		return nil, "", err
	}
	return data, pdf.FileName(rec.ID, time.Now()), nil
}
