package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/appderecho/backend/internal/app/models"
	"github.com/appderecho/backend/internal/app/models/dto"
	"github.com/appderecho/backend/internal/app/services"
	"github.com/appderecho/backend/internal/middleware"
	"github.com/appderecho/backend/internal/pkg/apperrors"
)

// IntakeController handles intake records and their PDF export.
type IntakeController struct {
	intake *services.IntakeService
}

// NewIntakeController creates an intake controller
func NewIntakeController(intake *services.IntakeService) *IntakeController {
	return &IntakeController{intake: intake}
}

func caller(c *gin.Context) (int64, models.UserRole, bool) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return 0, "", false
	}
	role, ok := middleware.RoleFromContext(c)
	return userID, role, ok
}

// Create stores a new intake record.
// POST /api/control-operativo/
func (ctrl *IntakeController) Create(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.IntakeRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	rec, err := ctrl.intake.Create(c.Request.Context(), req.ToModel(), userID, role)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MapIntakeRecordToResponse(rec))
}

// List returns the records visible to the caller.
// GET /api/control-operativo/
func (ctrl *IntakeController) List(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrTokenInvalid)
		return
	}

	records, err := ctrl.intake.List(c.Request.Context(), userID, role)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	resp := dto.IntakeRecordListResponse{
		Records: make([]dto.IntakeRecordResponse, 0, len(records)),
		Total:   len(records),
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, dto.MapIntakeRecordToResponse(rec))
	}
	c.JSON(http.StatusOK, resp)
}

// Get returns one record, subject to visibility rules.
// GET /api/control-operativo/:id
func (ctrl *IntakeController) Get(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrTokenInvalid)
		return
	}
	id, err := pathID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	rec, err := ctrl.intake.Get(c.Request.Context(), id, userID, role)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapIntakeRecordToResponse(rec))
}

// Update applies a partial update to a record.
// PUT /api/control-operativo/:id
func (ctrl *IntakeController) Update(c *gin.Context) {
	_, role, ok := caller(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrTokenInvalid)
		return
	}
	id, err := pathID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateIntakeRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	rec, err := ctrl.intake.Update(c.Request.Context(), id, req.ToPatch(), role)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapIntakeRecordToResponse(rec))
}

// Delete logically deletes a record.
// DELETE /api/control-operativo/:id
func (ctrl *IntakeController) Delete(c *gin.Context) {
	_, role, ok := caller(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrTokenInvalid)
		return
	}
	id, err := pathID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.intake.Deactivate(c.Request.Context(), id, role); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("Control operativo desactivado"))
}

// Reactivate restores a logically deleted record.
// POST /api/control-operativo/:id/reactivar
func (ctrl *IntakeController) Reactivate(c *gin.Context) {
	_, role, ok := caller(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrTokenInvalid)
		return
	}
	id, err := pathID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.intake.Reactivate(c.Request.Context(), id, role); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("Control operativo reactivado"))
}

// ExportPDF streams the official form of a record.
// GET /api/control-operativo/:id/pdf
func (ctrl *IntakeController) ExportPDF(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrTokenInvalid)
		return
	}
	id, err := pathID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	data, filename, err := ctrl.intake.GeneratePDF(c.Request.Context(), id, userID, role)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
