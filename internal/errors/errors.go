package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when no matching row exists (or it is not visible).
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is returned for both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	// ErrAdminNotFound is returned by password reset when the email is unknown.
	ErrAdminNotFound = errors.New("Admin not found")
)

// ValidationError reports missing or malformed input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given client-facing message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// UploadRejectedError reports an upload refused before anything was persisted.
type UploadRejectedError struct {
	Field   string
	Message string
}

func (e *UploadRejectedError) Error() string {
	return e.Message
}

// ErrorResponse represents the admin error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognised is a
// store failure and gets a generic message; the cause is for server logs only.
func MapErrorToHTTP(err error) *HTTPError {
	var validationErr *ValidationError
	var uploadErr *UploadRejectedError

	switch {
	case errors.As(err, &validationErr):
		return NewHTTPError(http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &uploadErr):
		return NewHTTPError(http.StatusBadRequest, uploadErr.Message)
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error())
	case errors.Is(err, ErrAdminNotFound):
		return NewHTTPError(http.StatusNotFound, ErrAdminNotFound.Error())
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, "Not found")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}

// IsStoreError reports whether err maps to a 500.
func IsStoreError(err error) bool {
	return MapErrorToHTTP(err).StatusCode == http.StatusInternalServerError
}
