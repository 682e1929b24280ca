package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mif-gmao/gmao/internal/domain/intervention"
	vo "github.com/mif-gmao/gmao/internal/domain/intervention/valueobjects"
	"github.com/mif-gmao/gmao/internal/infrastructure/persistence/mappers"
	"github.com/mif-gmao/gmao/internal/infrastructure/persistence/models"
	"github.com/mif-gmao/gmao/internal/shared/db"
	"github.com/mif-gmao/gmao/internal/shared/utils"
)

type InterventionRepository struct {
	db     *gorm.DB
	mapper mappers.InterventionMapper
}

func NewInterventionRepository(db *gorm.DB) *InterventionRepository {
	return &InterventionRepository{
		db:     db,
		mapper: mappers.NewInterventionMapper(),
	}
}

func (r *InterventionRepository) Create(ctx context.Context, i *intervention.Intervention) error {
	model := r.mapper.ToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create intervention: %w", err)
	}
	return i.SetID(model.ID)
}

func (r *InterventionRepository) GetByID(ctx context.Context, id uint) (*intervention.Intervention, error) {
	return r.get(ctx, db.GetTxFromContext(ctx, r.db), id)
}

func (r *InterventionRepository) GetByIDForUpdate(ctx context.Context, id uint) (*intervention.Intervention, error) {
	return r.get(ctx, db.GetTxFromContext(ctx, r.db).Scopes(db.ForUpdate(ctx)), id)
}

func (r *InterventionRepository) get(_ context.Context, q *gorm.DB, id uint) (*intervention.Intervention, error) {
	var model models.InterventionModel
	if err := q.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get intervention %d: %w", id, err)
	}
	return r.mapper.ToDomain(&model)
}

// Update applies the optimistic version check in the WHERE clause.
func (r *InterventionRepository) Update(ctx context.Context, i *intervention.Intervention, expectedVersion int) error {
	model := r.mapper.ToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.InterventionModel{}).
		Where("id = ? AND version = ?", model.ID, expectedVersion).
		Updates(map[string]any{
			"title":         model.Title,
			"description":   model.Description,
			"type":          model.Type,
			"status":        model.Status,
			"priority":      model.Priority,
			"urgent":        model.Urgent,
			"due_date":      model.DueDate,
			"closed_at":     model.ClosedAt,
			"technician_id": model.TechnicianID,
			"equipment_id":  model.EquipmentID,
			"version":       model.Version,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update intervention %d: %w", model.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: intervention %d expected version %d", intervention.ErrConcurrentModification, model.ID, expectedVersion)
	}
	return nil
}

func (r *InterventionRepository) List(ctx context.Context, filter intervention.Filter) ([]*intervention.Intervention, int64, error) {
	q := db.GetTxFromContext(ctx, r.db).Model(&models.InterventionModel{})

	if filter.Status != nil {
		q = q.Where("status = ?", filter.Status.String())
	}
	if filter.Type != nil {
		q = q.Where("type = ?", filter.Type.String())
	}
	if filter.Priority != nil {
		q = q.Where("priority = ?", filter.Priority.String())
	}
	if filter.Urgent != nil {
		q = q.Where("urgent = ?", *filter.Urgent)
	}
	if filter.TechnicianID != nil {
		q = q.Where("technician_id = ?", *filter.TechnicianID)
	}
	if filter.EquipmentID != nil {
		q = q.Where("equipment_id = ?", *filter.EquipmentID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count interventions: %w", err)
	}

	pagination := utils.ValidatePagination(filter.Page, filter.PageSize)
	page, size := pagination.Page, pagination.PageSize
	var rows []models.InterventionModel
	if err := q.Order("created_at DESC, id DESC").Offset((page - 1) * size).Limit(size).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list interventions: %w", err)
	}

	out := make([]*intervention.Intervention, 0, len(rows))
	for idx := range rows {
		i, err := r.mapper.ToDomain(&rows[idx])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, i)
	}
	return out, total, nil
}

// CountActiveByEquipment counts interventions on the equipment that are not archived.
func (r *InterventionRepository) CountActiveByEquipment(ctx context.Context, equipmentID uint) (int64, error) {
	return r.countActive(ctx, "equipment_id", equipmentID)
}

// CountActiveByTechnician counts interventions assigned to the technician that are not archived.
func (r *InterventionRepository) CountActiveByTechnician(ctx context.Context, technicianID uint) (int64, error) {
	return r.countActive(ctx, "technician_id", technicianID)
}

func (r *InterventionRepository) countActive(ctx context.Context, column string, id uint) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.InterventionModel{}).
		Where(column+" = ? AND status <> ?", id, vo.StatusArchived.String()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active interventions by %s: %w", column, err)
	}
	return count, nil
}

type HistoryRepository struct {
	db     *gorm.DB
	mapper mappers.InterventionMapper
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{
		db:     db,
		mapper: mappers.NewInterventionMapper(),
	}
}

func (r *HistoryRepository) Append(ctx context.Context, entry *intervention.HistoryEntry) error {
	model := r.mapper.HistoryToModel(entry)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}
	return entry.SetID(model.ID)
}

func (r *HistoryRepository) ListByIntervention(ctx context.Context, interventionID uint) ([]*intervention.HistoryEntry, error) {
	var rows []models.InterventionHistoryModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("intervention_id = ?", interventionID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list history for intervention %d: %w", interventionID, err)
	}

	out := make([]*intervention.HistoryEntry, 0, len(rows))
	for idx := range rows {
		out = append(out, r.mapper.HistoryToDomain(&rows[idx]))
	}
	return out, nil
}
