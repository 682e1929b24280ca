// Package errors provides application-level error types and utilities.
// Every error a use case returns to a transport adapter is an *AppError whose
// Type lets callers tell a frozen record apart from a skipped lifecycle step.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation        ErrorType = "validation_error"
	ErrorTypeNotFound          ErrorType = "not_found"
	ErrorTypeConflict          ErrorType = "conflict"
	ErrorTypeInvalidTransition ErrorType = "invalid_transition"
	ErrorTypeStateLocked       ErrorType = "state_locked"
	ErrorTypeUnauthorized      ErrorType = "unauthorized"
	ErrorTypeForbidden         ErrorType = "forbidden"
	ErrorTypeInternal          ErrorType = "internal_error"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(t ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    t,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewConflictError creates a new conflict error, used by the referential guard
// and by optimistic locking failures.
func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, message, details)
}

// NewInvalidTransitionError reports a status jump that skips a lifecycle step,
// e.g. archiving a record that was never closed.
func NewInvalidTransitionError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInvalidTransition, http.StatusConflict, message, details)
}

// NewStateLockedError reports a mutation attempted on a closed or archived record
// outside the single closed -> archived transition.
func NewStateLockedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeStateLocked, http.StatusBadRequest, message, details)
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details)
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, http.StatusForbidden, message, details)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	return IsType(err, ErrorTypeConflict)
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

// IsInvalidTransitionError checks if the error is an invalid transition error
func IsInvalidTransitionError(err error) bool {
	return IsType(err, ErrorTypeInvalidTransition)
}

// IsStateLockedError checks if the error is a state locked error
func IsStateLockedError(err error) bool {
	return IsType(err, ErrorTypeStateLocked)
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// MySQL duplicate entry error
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// SQLite unique violation
	if strings.Contains(errStr, "UNIQUE constraint failed") {
		return true
	}
	return false
}
