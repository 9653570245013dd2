package services

import (
	"context"

	"github.com/appderecho/backend/internal/app/models"
	"github.com/appderecho/backend/internal/pkg/apperrors"
)

// codeGenerationAttempts bounds the collision retry loop when minting
// student codes.
const codeGenerationAttempts = 10

// RosterService manages the roster of pre-registered students. Every
// operation is coordinator-only, enforced at the routing layer.
type RosterService struct {
	roster RosterStore
}

// NewRosterService creates a roster service
func NewRosterService(roster RosterStore) *RosterService {
	return &RosterService{roster: roster}
}

// Create pre-registers a student, minting a unique student code.
func (s *RosterService) Create(ctx context.Context, firstName, lastName, email, documentID string, semester int) (*models.PendingStudent, error) {
	code, err := s.mintCode(ctx)
	if err != nil {
		return nil, err
	}

	student := &models.PendingStudent{
		Code:       code,
		FirstName:  firstName,
		LastName:   lastName,
		Email:      normalizeEmail(email),
		DocumentID: documentID,
		Program:    models.DefaultProgram,
		Semester:   semester,
		Status:     models.StatusPending,
		IsActive:   true,
	}
	return s.roster.Create(ctx, student)
}

// mintCode generates student codes until one is unused. A concurrent insert
// can still win the race, which surfaces as a conflict from Create.
func (s *RosterService) mintCode(ctx context.Context) (string, error) {
	for i := 0; i < codeGenerationAttempts; i++ {
		code := models.GenerateStudentCode()
		exists, err := s.roster.ExistsByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", apperrors.ErrCodeGenerationBusy
}

// List returns every roster entry.
func (s *RosterService) List(ctx context.Context) ([]*models.PendingStudent, error) {
	return s.roster.List(ctx)
}

// Get returns one roster entry.
func (s *RosterService) Get(ctx context.Context, id int64) (*models.PendingStudent, error) {
	return s.roster.FindByID(ctx, id)
}

// Update applies the provided changes to a roster entry. When the student has
// already registered, the change propagates to the user account.
func (s *RosterService) Update(ctx context.Context, id int64, firstName, lastName, email, documentID *string, semester *int) (*models.PendingStudent, error) {
	student, err := s.roster.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if firstName != nil {
		student.FirstName = *firstName
	}
	if lastName != nil {
		student.LastName = *lastName
	}
	if email != nil {
		student.Email = normalizeEmail(*email)
	}
	if documentID != nil {
		student.DocumentID = *documentID
	}
	if semester != nil {
		student.Semester = *semester
	}

	return s.roster.Update(ctx, student)
}

// Delete removes a roster entry and the user account registered from it.
func (s *RosterService) Delete(ctx context.Context, id int64) error {
	return s.roster.Delete(ctx, id)
}
