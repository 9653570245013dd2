package dto

import (
	"time"

	"github.com/appderecho/backend/internal/app/models"
)

// LoginRequest carries the credentials for /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest completes the registration of a pre-registered student.
type RegisterRequest struct {
	StudentCode string  `json:"codigo_estudiante" binding:"required"`
	FirstName   string  `json:"nombre" binding:"required"`
	LastName    string  `json:"apellidos" binding:"required"`
	Password    string  `json:"password" binding:"required"`
	Phone       *string `json:"telefono,omitempty"`
}

// VerifyCodeRequest looks up a pre-registered student by student code.
type VerifyCodeRequest struct {
	StudentCode string `json:"codigo_estudiante" binding:"required"`
}

// VerifyDocumentRequest looks up a pre-registered student by document number.
type VerifyDocumentRequest struct {
	DocumentNumber string `json:"documento_numero" binding:"required"`
}

// RefreshTokenRequest exchanges a refresh token for a new token pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ForgotPasswordRequest requests a password reset code for the given email.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest consumes a reset code and sets a new password.
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"codigo" binding:"required"`
	NewPassword string `json:"nueva_password" binding:"required"`
}

// ChangePasswordRequest changes the password of the authenticated user.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"password_actual" binding:"required"`
	NewPassword     string `json:"password_nueva" binding:"required"`
}

// UpdateProfileRequest updates the mutable fields of the caller's profile.
type UpdateProfileRequest struct {
	FirstName *string `json:"nombres,omitempty"`
	LastName  *string `json:"apellidos,omitempty"`
	Phone     *string `json:"celular,omitempty"`
	Address   *string `json:"direccion,omitempty"`
}

// UserResponse is the public representation of a user account.
type UserResponse struct {
	ID            int64           `json:"id"`
	FirstName     string          `json:"nombres"`
	LastName      string          `json:"apellidos"`
	Email         string          `json:"email"`
	RoleType      models.UserRole `json:"rol"`
	StudentCode   *string         `json:"codigo_estudiante,omitempty"`
	Program       *string         `json:"programa,omitempty"`
	Semester      *int            `json:"semestre,omitempty"`
	DocumentID    *string         `json:"documento_numero,omitempty"`
	Phone         *string         `json:"celular,omitempty"`
	Address       *string         `json:"direccion,omitempty"`
	IsActive      bool            `json:"activo"`
	EmailVerified bool            `json:"email_verificado"`
	LastAccessAt  *time.Time      `json:"ultimo_acceso,omitempty"`
	CreatedAt     time.Time       `json:"fecha_creacion"`
}

// TokenResponse carries a freshly issued token pair plus the authenticated user.
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	User         UserResponse `json:"user"`
	Suggestion   string       `json:"sugerencia,omitempty"`
}

// PendingStudentSummary is the descriptive projection of a roster entry
// returned by the pre-registration lookups.
type PendingStudentSummary struct {
	StudentCode string `json:"codigo_estudiante"`
	FirstName   string `json:"nombres"`
	LastName    string `json:"apellidos"`
	Email       string `json:"email"`
	Program     string `json:"programa"`
	Semester    int    `json:"semestre"`
}

// VerifyStudentResponse is the outcome of a roster lookup prior to
// registration. Misses never surface as errors, only as valido:false.
type VerifyStudentResponse struct {
	Valid   bool                   `json:"valido"`
	Student *PendingStudentSummary `json:"estudiante,omitempty"`
	Message string                 `json:"mensaje"`
}

// MapPendingStudentToSummary builds the lookup projection of a roster entry
func MapPendingStudentToSummary(s *models.PendingStudent) *PendingStudentSummary {
	return &PendingStudentSummary{
		StudentCode: s.Code,
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		Email:       s.Email,
		Program:     s.Program,
		Semester:    s.Semester,
	}
}

// RefreshResponse carries the access token minted from a refresh token.
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ForgotPasswordResponse acknowledges a reset request. DebugCode is populated
// only when the server runs in debug mode.
type ForgotPasswordResponse struct {
	Message   string  `json:"message"`
	DebugCode *string `json:"codigo_debug,omitempty"`
}

// MapUserToResponse converts a user model into its API representation
func MapUserToResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		RoleType:      u.RoleType,
		StudentCode:   u.StudentCode,
		Program:       u.Program,
		Semester:      u.Semester,
		DocumentID:    u.DocumentID,
		Phone:         u.Phone,
		Address:       u.Address,
		IsActive:      u.IsActive,
		EmailVerified: u.EmailVerified,
		LastAccessAt:  u.LastAccessAt,
		CreatedAt:     u.CreatedAt,
	}
}
