package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mif-gmao/gmao/internal/domain/technician"
	"github.com/mif-gmao/gmao/internal/infrastructure/persistence/mappers"
	"github.com/mif-gmao/gmao/internal/infrastructure/persistence/models"
	"github.com/mif-gmao/gmao/internal/shared/db"
)

type TechnicianRepository struct {
	db *gorm.DB
}

func NewTechnicianRepository(db *gorm.DB) *TechnicianRepository {
	return &TechnicianRepository{db: db}
}

func (r *TechnicianRepository) Create(ctx context.Context, t *technician.Technician) error {
	model := mappers.TechnicianToModel(t)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create technician: %w", err)
	}
	return t.SetID(model.ID)
}

func (r *TechnicianRepository) GetByID(ctx context.Context, id uint) (*technician.Technician, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Where("id = ?", id))
}

func (r *TechnicianRepository) GetByIDForUpdate(ctx context.Context, id uint) (*technician.Technician, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Scopes(db.ForUpdate(ctx)).Where("id = ?", id))
}

func (r *TechnicianRepository) GetByUserID(ctx context.Context, userID uint) (*technician.Technician, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID))
}

func (r *TechnicianRepository) first(q *gorm.DB) (*technician.Technician, error) {
	var model models.TechnicianModel
	if err := q.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get technician: %w", err)
	}
	return mappers.TechnicianToDomain(&model), nil
}

func (r *TechnicianRepository) List(ctx context.Context) ([]*technician.Technician, error) {
	var rows []models.TechnicianModel
	if err := db.GetTxFromContext(ctx, r.db).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list technicians: %w", err)
	}
	out := make([]*technician.Technician, 0, len(rows))
	for idx := range rows {
		out = append(out, mappers.TechnicianToDomain(&rows[idx]))
	}
	return out, nil
}

func (r *TechnicianRepository) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.TechnicianModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete technician %d: %w", id, err)
	}
	return nil
}
