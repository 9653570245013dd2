package dto

// ErrorCode is a stable machine-readable error identifier.
type ErrorCode string

// Error codes
const (
	// Authentication error codes
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeTokenExpired       ErrorCode = "AUTH_002"
	ErrorCodeTokenInvalid       ErrorCode = "AUTH_003"
	ErrorCodeUnauthorized       ErrorCode = "AUTH_004"
	ErrorCodeForbidden          ErrorCode = "AUTH_005"
	ErrorCodeAccountDisabled    ErrorCode = "AUTH_006"

	// Resource error codes
	ErrorCodeResourceNotFound ErrorCode = "RES_001"
	ErrorCodeConflict         ErrorCode = "RES_002"

	// Validation error codes
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeWeakPassword     ErrorCode = "VAL_002"

	// Server error codes
	ErrorCodeInternalServer ErrorCode = "SRV_001"
)

// ErrorDetail contains the structured body of an error response.
type ErrorDetail struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse is the envelope every failed request resolves to.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// NewErrorResponse creates an ErrorResponse with the given code and message
func NewErrorResponse(code ErrorCode, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// WithDetails attaches extra context to the error body
func (r ErrorResponse) WithDetails(details map[string]interface{}) ErrorResponse {
	r.Error.Details = details
	return r
}
