// Package controllers contains the gin HTTP handlers.
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/appderecho/backend/internal/app/models/dto"
	"github.com/appderecho/backend/internal/app/services"
	"github.com/appderecho/backend/internal/middleware"
	"github.com/appderecho/backend/internal/pkg/apperrors"
)

// AuthController handles login, tokens, profile and password recovery.
type AuthController struct {
	auth *services.AuthService
}

// NewAuthController creates an auth controller
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Login authenticates a user and returns a token pair.
// POST /api/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	user, access, refresh, err := ctrl.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		User:         dto.MapUserToResponse(user),
	})
}

// Refresh exchanges a refresh token for a new access token.
// POST /api/auth/refresh
func (ctrl *AuthController) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	access, err := ctrl.auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RefreshResponse{
		AccessToken: access,
		TokenType:   "bearer",
	})
}

// Me returns the authenticated user's profile.
// GET /api/auth/me
func (ctrl *AuthController) Me(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrTokenInvalid)
		return
	}

	user, err := ctrl.auth.GetProfile(c.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}

// UpdateProfile updates the authenticated user's profile fields.
// PUT /api/auth/me
func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	user, err := ctrl.auth.UpdateProfile(c.Request.Context(), userID,
		req.FirstName, req.LastName, req.Phone, req.Address)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}

// ChangePassword replaces the authenticated user's password.
// POST /api/auth/change-password
func (ctrl *AuthController) ChangePassword(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	suggestion, err := ctrl.auth.ChangePassword(c.Request.Context(), userID,
		req.CurrentPassword, req.NewPassword)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{
		Message:    "Contraseña actualizada correctamente",
		Suggestion: suggestion,
	})
}

// ForgotPassword issues a password reset code.
// POST /api/auth/forgot-password
func (ctrl *AuthController) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	debugCode, err := ctrl.auth.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ForgotPasswordResponse{
		Message:   "Se envió un código de recuperación al correo registrado",
		DebugCode: debugCode,
	})
}

// ResetPassword consumes a reset code and sets a new password.
// POST /api/auth/reset-password
func (ctrl *AuthController) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	suggestion, err := ctrl.auth.ResetPassword(c.Request.Context(),
		req.Email, req.Code, req.NewPassword)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{
		Message:    "Contraseña restablecida correctamente",
		Suggestion: suggestion,
	})
}
