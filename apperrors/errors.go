package apperrors

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error represents an application error with an HTTP status code.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NotFound builds a 404 error for an absent entity.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message, nil)
}

// Unauthorized builds a 401 error for a missing or bad credential.
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message, nil)
}

// Forbidden builds a 403 error for an insufficient credential.
func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message, nil)
}

// Validation builds a 400 error for malformed input.
func Validation(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// Upstream builds a 502 error for a failed external call.
func Upstream(message string, err error) *Error {
	return New(http.StatusBadGateway, message, err)
}

// Internal wraps an unexpected failure.
func Internal(err error) *Error {
	return New(http.StatusInternalServerError, "Internal server error", err)
}

// Common error values
var (
	ErrBadRequest         = New(http.StatusBadRequest, "Bad request", nil)
	ErrUnauthorized       = New(http.StatusUnauthorized, "Unauthorized", nil)
	ErrForbidden          = New(http.StatusForbidden, "Forbidden", nil)
	ErrNotFound           = New(http.StatusNotFound, "Not found", nil)
	ErrInternalServer     = New(http.StatusInternalServerError, "Internal server error", nil)
	ErrInvalidCredentials = New(http.StatusUnauthorized, "Invalid email or password", nil)
	ErrInvalidToken       = New(http.StatusUnauthorized, "Invalid or expired token", nil)
)

// Respond converts an error to a JSON response at the handler boundary.
func Respond(c *gin.Context, err error) {
	appErr, ok := err.(*Error)
	if !ok {
		appErr = Internal(err)
	}
	c.JSON(appErr.Code, gin.H{"message": appErr.Message})
}
