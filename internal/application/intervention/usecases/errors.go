package usecases

import (
	"errors"

	"github.com/mif-gmao/gmao/internal/domain/intervention"
	apperrors "github.com/mif-gmao/gmao/internal/shared/errors"
)

// mapDomainError converts aggregate and repository failures into application
// errors. Errors that already carry a type pass through unchanged.
func mapDomainError(err error) error {
	if err == nil {
		return nil
	}
	if apperrors.IsAppError(err) {
		return err
	}
	switch {
	case errors.Is(err, intervention.ErrStateLocked):
		return apperrors.NewStateLockedError(err.Error())
	case errors.Is(err, intervention.ErrInvalidTransition):
		return apperrors.NewInvalidTransitionError(err.Error())
	case errors.Is(err, intervention.ErrConcurrentModification):
		return apperrors.NewConflictError("concurrent modification", err.Error())
	}
	return apperrors.NewInternalError("intervention operation failed", err.Error())
}

func outcomeOf(err error) string {
	if err == nil {
		return "accepted"
	}
	if appErr := apperrors.GetAppError(err); appErr != nil {
		return string(appErr.Type)
	}
	return "error"
}
