package usecases

import (
	"context"
	"fmt"

	"github.com/mif-gmao/gmao/internal/domain/equipment"
	apperrors "github.com/mif-gmao/gmao/internal/shared/errors"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

type GetEquipmentUseCase struct {
	repo   equipment.Repository
	logger logger.Interface
}

func NewGetEquipmentUseCase(repo equipment.Repository, logger logger.Interface) *GetEquipmentUseCase {
	return &GetEquipmentUseCase{repo: repo, logger: logger}
}

func (uc *GetEquipmentUseCase) Execute(ctx context.Context, id uint) (*EquipmentDTO, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get equipment", "equipment_id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to get equipment")
	}
	if e == nil {
		return nil, apperrors.NewNotFoundError("equipment not found", fmt.Sprintf("id=%d", id))
	}
	return toEquipmentDTO(e), nil
}

type ListEquipmentUseCase struct {
	repo   equipment.Repository
	logger logger.Interface
}

func NewListEquipmentUseCase(repo equipment.Repository, logger logger.Interface) *ListEquipmentUseCase {
	return &ListEquipmentUseCase{repo: repo, logger: logger}
}

func (uc *ListEquipmentUseCase) Execute(ctx context.Context) ([]*EquipmentDTO, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list equipment", "error", err)
		return nil, apperrors.NewInternalError("failed to list equipment")
	}
	out := make([]*EquipmentDTO, 0, len(items))
	for _, e := range items {
		out = append(out, toEquipmentDTO(e))
	}
	return out, nil
}
