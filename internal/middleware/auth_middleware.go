// Package middleware contains the gin middleware of the API.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/appderecho/backend/internal/app/models"
	"github.com/appderecho/backend/internal/pkg/apperrors"
	"github.com/appderecho/backend/internal/pkg/auth"
)

// Context keys set by JWTAuth.
const (
	ContextUserID   = "userID"
	ContextEmail    = "email"
	ContextRoleType = "roleType"
)

// AuthMiddleware validates bearer tokens and enforces roles.
type AuthMiddleware struct {
	jwt *auth.JWTService
}

// NewAuthMiddleware creates an auth middleware
func NewAuthMiddleware(jwt *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwt}
}

// JWTAuth requires a valid access token and stores the caller's identity in
// the request context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			HandleAPIError(c, apperrors.ErrTokenInvalid)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			HandleAPIError(c, apperrors.ErrTokenInvalid)
			c.Abort()
			return
		}

		claims, err := m.jwt.ValidateToken(parts[1], auth.TokenTypeAccess)
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRoleType, claims.RoleType)
		c.Next()
	}
}

// RoleRequired allows only callers holding one of the given roles. It must
// run after JWTAuth.
func (m *AuthMiddleware) RoleRequired(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := RoleFromContext(c)
		if !ok {
			HandleAPIError(c, apperrors.ErrTokenInvalid)
			c.Abort()
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		HandleAPIError(c, apperrors.ErrPermissionDenied)
		c.Abort()
	}
}

// UserIDFromContext returns the authenticated user id set by JWTAuth
func UserIDFromContext(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// RoleFromContext returns the authenticated user's role set by JWTAuth
func RoleFromContext(c *gin.Context) (models.UserRole, bool) {
	v, ok := c.Get(ContextRoleType)
	if !ok {
		return "", false
	}
	role, ok := v.(models.UserRole)
	return role, ok
}
