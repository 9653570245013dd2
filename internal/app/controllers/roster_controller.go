package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/appderecho/backend/internal/app/models/dto"
	"github.com/appderecho/backend/internal/app/services"
	"github.com/appderecho/backend/internal/middleware"
	"github.com/appderecho/backend/internal/pkg/apperrors"
)

// RosterController handles the coordinator's pre-registration roster.
type RosterController struct {
	roster *services.RosterService
}

// NewRosterController creates a roster controller
func NewRosterController(roster *services.RosterService) *RosterController {
	return &RosterController{roster: roster}
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ErrValidationFailed
	}
	return id, nil
}

// Create pre-registers a student and mints their student code.
// POST /api/auth/coordinador/registrar-estudiante
func (ctrl *RosterController) Create(c *gin.Context) {
	var req dto.CreatePendingStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	student, err := ctrl.roster.Create(c.Request.Context(),
		req.FirstName, req.LastName, req.Email, req.DocumentID, req.Semester)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MapPendingStudentToResponse(student))
}

// List returns every roster entry.
// GET /api/auth/coordinador/estudiantes
func (ctrl *RosterController) List(c *gin.Context) {
	students, err := ctrl.roster.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	resp := dto.PendingStudentListResponse{
		Students: make([]dto.PendingStudentResponse, 0, len(students)),
		Total:    len(students),
	}
	for _, s := range students {
		resp.Students = append(resp.Students, dto.MapPendingStudentToResponse(s))
	}
	c.JSON(http.StatusOK, resp)
}

// Update edits a roster entry, propagating to the registered user if any.
// PUT /api/auth/coordinador/estudiante/:id
func (ctrl *RosterController) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdatePendingStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	student, err := ctrl.roster.Update(c.Request.Context(), id,
		req.FirstName, req.LastName, req.Email, req.DocumentID, req.Semester)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapPendingStudentToResponse(student))
}

// Delete removes a roster entry and its registered user account.
// DELETE /api/auth/coordinador/estudiante/:id
func (ctrl *RosterController) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.roster.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("Estudiante eliminado correctamente"))
}
