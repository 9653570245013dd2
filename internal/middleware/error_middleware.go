package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/appderecho/backend/internal/app/models/dto"
	"github.com/appderecho/backend/internal/pkg/apperrors"
	"github.com/appderecho/backend/internal/pkg/logger"
)

// HandleAPIError maps a domain error to its HTTP status and error envelope.
// Every handler funnels failures through here so the wire format stays
// uniform.
func HandleAPIError(c *gin.Context, err error) {
	status, resp := classify(err)

	if status >= http.StatusInternalServerError {
		logger.Error().
			Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request failed")
	}

	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		if custom.Message != "" {
			resp.Error.Message = custom.Message
		}
		if custom.Details != nil {
			resp.Error.Details = custom.Details
		}
	}

	c.JSON(status, resp)
}

func classify(err error) (int, dto.ErrorResponse) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeInvalidCredentials, "Credenciales inválidas")
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeTokenExpired, "El token ha expirado")
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrWrongTokenType):
		return http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeTokenInvalid, "Token inválido")
	case errors.Is(err, apperrors.ErrAccountDisabled):
		return http.StatusForbidden,
			dto.NewErrorResponse(dto.ErrorCodeAccountDisabled, "La cuenta está desactivada")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden,
			dto.NewErrorResponse(dto.ErrorCodeForbidden, "No tiene permisos para esta operación")

	case errors.Is(err, apperrors.ErrUserNotFound):
		return http.StatusNotFound,
			dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "Usuario no encontrado")
	case errors.Is(err, apperrors.ErrStudentNotFound):
		return http.StatusNotFound,
			dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "Estudiante no encontrado")
	case errors.Is(err, apperrors.ErrIntakeRecordNotFound):
		return http.StatusNotFound,
			dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "Control operativo no encontrado")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound,
			dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "Recurso no encontrado")

	case errors.Is(err, apperrors.ErrCodeAlreadyUsed):
		return http.StatusConflict,
			dto.NewErrorResponse(dto.ErrorCodeConflict, "El estudiante ya completó su registro")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return http.StatusConflict,
			dto.NewErrorResponse(dto.ErrorCodeConflict, "El email ya está registrado")
	case errors.Is(err, apperrors.ErrDocumentIDExists):
		return http.StatusConflict,
			dto.NewErrorResponse(dto.ErrorCodeConflict, "El número de documento ya está registrado")
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict,
			dto.NewErrorResponse(dto.ErrorCodeConflict, "Conflicto con el estado actual del recurso")

	case errors.Is(err, apperrors.ErrWeakPassword):
		return http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeWeakPassword, "La contraseña debe tener al menos 3 caracteres")
	case errors.Is(err, apperrors.ErrResetCodeInvalid):
		return http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Código de recuperación inválido o expirado")
	case errors.Is(err, apperrors.ErrResetCodeUsed):
		return http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "El código de recuperación ya fue utilizado")
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Datos de entrada inválidos")

	case errors.Is(err, apperrors.ErrCodeGenerationBusy):
		return http.StatusServiceUnavailable,
			dto.NewErrorResponse(dto.ErrorCodeInternalServer, "No fue posible generar un código único, intente de nuevo")
	}

	return http.StatusInternalServerError,
		dto.NewErrorResponse(dto.ErrorCodeInternalServer, "Error interno del servidor")
}

// HandleValidationError reports a request binding failure.
func HandleValidationError(c *gin.Context, err error) {
	resp := dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Datos de entrada inválidos").
		WithDetails(map[string]interface{}{"reason": err.Error()})
	c.JSON(http.StatusBadRequest, resp)
}
