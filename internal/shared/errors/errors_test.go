package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("bad"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("missing"), ErrorTypeNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("referenced"), ErrorTypeConflict, http.StatusConflict},
		{"invalid transition", NewInvalidTransitionError("skip"), ErrorTypeInvalidTransition, http.StatusConflict},
		{"state locked", NewStateLockedError("frozen"), ErrorTypeStateLocked, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestInvalidTransitionAndStateLockedAreDistinct(t *testing.T) {
	transition := NewInvalidTransitionError("cannot archive an open intervention")
	locked := NewStateLockedError("intervention is closed")

	assert.True(t, IsInvalidTransitionError(transition))
	assert.False(t, IsStateLockedError(transition))
	assert.True(t, IsStateLockedError(locked))
	assert.False(t, IsInvalidTransitionError(locked))
	assert.False(t, IsConflictError(transition))
}

func TestGetAppError_Wrapped(t *testing.T) {
	base := NewNotFoundError("intervention 7 not found")
	wrapped := fmt.Errorf("loading: %w", base)

	assert.True(t, IsNotFoundError(wrapped))
	assert.Same(t, base, GetAppError(wrapped))
	assert.Nil(t, GetAppError(fmt.Errorf("plain")))
}

func TestAppError_ErrorString(t *testing.T) {
	assert.Equal(t, "conflict: in use", NewConflictError("in use").Error())
	assert.Equal(t, "conflict: in use (2 interventions)", NewConflictError("in use", "2 interventions").Error())
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(fmt.Errorf("Error 1062: Duplicate entry 'x' for key 'name'")))
	assert.True(t, IsDuplicateError(fmt.Errorf("UNIQUE constraint failed: equipments.name")))
	assert.False(t, IsDuplicateError(fmt.Errorf("connection refused")))
	assert.False(t, IsDuplicateError(nil))
}
