package usecases

import (
	"errors"

	"github.com/mif-gmao/gmao/internal/domain/planning"
	apperrors "github.com/mif-gmao/gmao/internal/shared/errors"
)

func mapDomainError(err error) error {
	if err == nil || apperrors.IsAppError(err) {
		return err
	}
	if errors.Is(err, planning.ErrConcurrentModification) {
		return apperrors.NewConflictError("concurrent modification", err.Error())
	}
	return apperrors.NewInternalError("planning operation failed", err.Error())
}
