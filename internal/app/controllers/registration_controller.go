package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/appderecho/backend/internal/app/models"
	"github.com/appderecho/backend/internal/app/models/dto"
	"github.com/appderecho/backend/internal/app/services"
	"github.com/appderecho/backend/internal/middleware"
	"github.com/appderecho/backend/internal/pkg/apperrors"
)

// RegistrationController handles the public student registration workflow.
type RegistrationController struct {
	registration *services.RegistrationService
}

// NewRegistrationController creates a registration controller
func NewRegistrationController(registration *services.RegistrationService) *RegistrationController {
	return &RegistrationController{registration: registration}
}

// verifyResponse maps a lookup outcome to the valido/mensaje contract. Misses
// and already-used codes are not errors on this endpoint.
func verifyResponse(c *gin.Context, student *models.PendingStudent, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, dto.VerifyStudentResponse{
			Valid:   true,
			Student: dto.MapPendingStudentToSummary(student),
			Message: "Estudiante válido, puede continuar con el registro",
		})
	case errors.Is(err, apperrors.ErrCodeAlreadyUsed):
		c.JSON(http.StatusOK, dto.VerifyStudentResponse{
			Valid:   false,
			Message: "El estudiante ya completó su registro",
		})
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusOK, dto.VerifyStudentResponse{
			Valid:   false,
			Message: "Código de estudiante no válido. Contacta al coordinador.",
		})
	default:
		middleware.HandleAPIError(c, err)
	}
}

// VerifyCode checks a student code before registration.
// POST /api/auth/validar-codigo
func (ctrl *RegistrationController) VerifyCode(c *gin.Context) {
	var req dto.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	student, err := ctrl.registration.VerifyCode(c.Request.Context(), req.StudentCode)
	verifyResponse(c, student, err)
}

// VerifyDocument checks a national document number before registration.
// POST /api/auth/validar-datos-personales
func (ctrl *RegistrationController) VerifyDocument(c *gin.Context) {
	var req dto.VerifyDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	student, err := ctrl.registration.VerifyDocument(c.Request.Context(), req.DocumentNumber)
	verifyResponse(c, student, err)
}

// Register completes a student registration and logs the student in.
// POST /api/auth/registro-estudiante
func (ctrl *RegistrationController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	user, access, refresh, suggestion, err := ctrl.registration.Register(c.Request.Context(),
		req.StudentCode, req.FirstName, req.LastName, req.Password, req.Phone)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		User:         dto.MapUserToResponse(user),
		Suggestion:   suggestion,
	})
}
