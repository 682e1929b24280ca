package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mif-gmao/gmao/internal/domain/planning"
	"github.com/mif-gmao/gmao/internal/infrastructure/persistence/mappers"
	"github.com/mif-gmao/gmao/internal/infrastructure/persistence/models"
	"github.com/mif-gmao/gmao/internal/shared/db"
)

type PlanningRepository struct {
	db     *gorm.DB
	mapper mappers.PlanningMapper
}

func NewPlanningRepository(db *gorm.DB) *PlanningRepository {
	return &PlanningRepository{
		db:     db,
		mapper: mappers.NewPlanningMapper(),
	}
}

func (r *PlanningRepository) Create(ctx context.Context, p *planning.Planning) error {
	model := r.mapper.ToModel(p)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create planning: %w", err)
	}
	return p.SetID(model.ID)
}

func (r *PlanningRepository) GetByID(ctx context.Context, id uint) (*planning.Planning, error) {
	return r.get(db.GetTxFromContext(ctx, r.db), id)
}

func (r *PlanningRepository) GetByIDForUpdate(ctx context.Context, id uint) (*planning.Planning, error) {
	return r.get(db.GetTxFromContext(ctx, r.db).Scopes(db.ForUpdate(ctx)), id)
}

func (r *PlanningRepository) get(q *gorm.DB, id uint) (*planning.Planning, error) {
	var model models.PlanningModel
	if err := q.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get planning %d: %w", id, err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *PlanningRepository) Update(ctx context.Context, p *planning.Planning, expectedVersion int) error {
	model := r.mapper.ToModel(p)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PlanningModel{}).
		Where("id = ? AND version = ?", model.ID, expectedVersion).
		Updates(map[string]any{
			"frequency":           model.Frequency,
			"next_due_date":       model.NextDueDate,
			"last_generated_date": model.LastGeneratedDate,
			"remarks":             model.Remarks,
			"version":             model.Version,
			"updated_at":          model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update planning %d: %w", model.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: planning %d expected version %d", planning.ErrConcurrentModification, model.ID, expectedVersion)
	}
	return nil
}

func (r *PlanningRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.PlanningModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete planning %d: %w", id, result.Error)
	}
	return nil
}

func (r *PlanningRepository) List(ctx context.Context, equipmentID *uint) ([]*planning.Planning, error) {
	q := db.GetTxFromContext(ctx, r.db).Order("next_due_date ASC, id ASC")
	if equipmentID != nil {
		q = q.Where("equipment_id = ?", *equipmentID)
	}
	return r.find(q)
}

// ListDue returns plannings whose next due date is at or before now, oldest first.
func (r *PlanningRepository) ListDue(ctx context.Context, now time.Time) ([]*planning.Planning, error) {
	q := db.GetTxFromContext(ctx, r.db).
		Where("next_due_date <= ?", now.UnixMilli()).
		Order("next_due_date ASC, id ASC")
	return r.find(q)
}

func (r *PlanningRepository) find(q *gorm.DB) ([]*planning.Planning, error) {
	var rows []models.PlanningModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list plannings: %w", err)
	}
	out := make([]*planning.Planning, 0, len(rows))
	for idx := range rows {
		p, err := r.mapper.ToDomain(&rows[idx])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
