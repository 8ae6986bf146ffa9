// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// WithCode returns an error envelope carrying a machine-readable code.
func WithCode(msg, code string) *APIError {
	return &APIError{Detail: msg, Code: code}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Detail string              `json:"detail"`
	Fields map[string][]string `json:"fields"`
}

func NewValidation(fields map[string][]string) *ValidationError {
	return &ValidationError{Detail: "Validation failed.", Fields: fields}
}

// Messages shared by handlers and middleware.
const (
	MsgNotFound         = "Not found."
	MsgInvalidPage      = "Invalid page."
	MsgNotAuthenticated = "Authentication credentials were not provided."
	MsgTokenInvalid     = "Token is invalid or expired"
	MsgBadCredentials   = "No active account found with the given credentials"
	MsgInternal         = "Internal server error"

	CodeTokenNotValid = "token_not_valid"
)
