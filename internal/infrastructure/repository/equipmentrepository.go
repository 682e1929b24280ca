package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mif-gmao/gmao/internal/domain/equipment"
	"github.com/mif-gmao/gmao/internal/infrastructure/persistence/mappers"
	"github.com/mif-gmao/gmao/internal/infrastructure/persistence/models"
	"github.com/mif-gmao/gmao/internal/shared/db"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) Create(ctx context.Context, e *equipment.Equipment) error {
	model := mappers.EquipmentToModel(e)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create equipment: %w", err)
	}
	return e.SetID(model.ID)
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id uint) (*equipment.Equipment, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Where("id = ?", id))
}

func (r *EquipmentRepository) GetByIDForUpdate(ctx context.Context, id uint) (*equipment.Equipment, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Scopes(db.ForUpdate(ctx)).Where("id = ?", id))
}

func (r *EquipmentRepository) GetByName(ctx context.Context, name string) (*equipment.Equipment, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Where("name = ?", name))
}

func (r *EquipmentRepository) first(q *gorm.DB) (*equipment.Equipment, error) {
	var model models.EquipmentModel
	if err := q.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	return mappers.EquipmentToDomain(&model), nil
}

func (r *EquipmentRepository) List(ctx context.Context) ([]*equipment.Equipment, error) {
	var rows []models.EquipmentModel
	if err := db.GetTxFromContext(ctx, r.db).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	out := make([]*equipment.Equipment, 0, len(rows))
	for idx := range rows {
		out = append(out, mappers.EquipmentToDomain(&rows[idx]))
	}
	return out, nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.EquipmentModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete equipment %d: %w", id, err)
	}
	return nil
}
