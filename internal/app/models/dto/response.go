// Package dto contains the request and response shapes of the HTTP API.
package dto

// MessageResponse is the envelope for operations that only report an outcome.
// Sugerencia carries a non-binding recommendation when the operation accepted
// the input but has advice for the caller.
type MessageResponse struct {
	Message    string `json:"message"`
	Suggestion string `json:"sugerencia,omitempty"`
}

// NewMessageResponse creates a MessageResponse with the given message
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}
