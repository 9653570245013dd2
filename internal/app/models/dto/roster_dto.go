package dto

import (
	"time"

	"github.com/appderecho/backend/internal/app/models"
)

// CreatePendingStudentRequest pre-registers a student on the roster.
type CreatePendingStudentRequest struct {
	FirstName  string `json:"nombres" binding:"required"`
	LastName   string `json:"apellidos" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	DocumentID string `json:"documento_numero" binding:"required"`
	Semester   int    `json:"semestre" binding:"required,min=1,max=10"`
}

// UpdatePendingStudentRequest updates a roster entry. All fields optional.
type UpdatePendingStudentRequest struct {
	FirstName  *string `json:"nombres,omitempty"`
	LastName   *string `json:"apellidos,omitempty"`
	Email      *string `json:"email,omitempty" binding:"omitempty,email"`
	DocumentID *string `json:"documento_numero,omitempty"`
	Semester   *int    `json:"semestre,omitempty" binding:"omitempty,min=1,max=10"`
}

// PendingStudentResponse is the public shape of a roster entry.
type PendingStudentResponse struct {
	ID         int64                     `json:"id"`
	Code       string                    `json:"codigo"`
	FirstName  string                    `json:"nombres"`
	LastName   string                    `json:"apellidos"`
	Email      string                    `json:"email"`
	DocumentID string                    `json:"documento_numero"`
	Program    string                    `json:"programa"`
	Semester   int                       `json:"semestre"`
	Status     models.RegistrationStatus `json:"estado"`
	IsActive   bool                      `json:"activo"`
	CreatedAt  time.Time                 `json:"fecha_creacion"`
}

// PendingStudentListResponse wraps a roster listing with its total count.
type PendingStudentListResponse struct {
	Students []PendingStudentResponse `json:"estudiantes"`
	Total    int                      `json:"total"`
}

// MapPendingStudentToResponse converts a roster model into its API representation
func MapPendingStudentToResponse(s *models.PendingStudent) PendingStudentResponse {
	return PendingStudentResponse{
		ID:         s.ID,
		Code:       s.Code,
		FirstName:  s.FirstName,
		LastName:   s.LastName,
		Email:      s.Email,
		DocumentID: s.DocumentID,
		Program:    s.Program,
		Semester:   s.Semester,
		Status:     s.Status,
		IsActive:   s.IsActive,
		CreatedAt:  s.CreatedAt,
	}
}
