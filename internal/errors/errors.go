package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrAuthenticationRequired is returned when no valid session accompanies the request.
	ErrAuthenticationRequired = errors.New("you must be logged in to do that")
	// ErrInvalidCredentials is returned when the password does not match.
	ErrInvalidCredentials = errors.New("invalid password")
	// ErrAuthorizationDenied is returned when the caller lacks the required permissions.
	ErrAuthorizationDenied = errors.New("you don't have permissions to do that")
	// ErrUserNotFound is returned when no user exists for the given email.
	ErrUserNotFound = errors.New("no such user found for that email")
	// ErrTokenInvalidOrExpired is returned when a reset token is unknown, spent or past its window.
	ErrTokenInvalidOrExpired = errors.New("this token is either invalid or expired")
	// ErrPasswordMismatch is returned when password and confirmation differ.
	ErrPasswordMismatch = errors.New("your passwords don't match")
	// ErrNotFound is returned when an item or cart lookup misses.
	ErrNotFound = errors.New("record not found")
	// ErrUserAlreadyExists is returned when signing up with a taken email.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrAuthenticationRequired):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "AUTHENTICATION_REQUIRED")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrAuthorizationDenied):
		return NewHTTPError(http.StatusForbidden, err.Error(), "AUTHORIZATION_DENIED")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrTokenInvalidOrExpired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "TOKEN_INVALID_OR_EXPIRED")
	case errors.Is(err, ErrPasswordMismatch):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PASSWORD_MISMATCH")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_ALREADY_EXISTS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
