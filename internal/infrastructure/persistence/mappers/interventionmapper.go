package mappers

import (
	"fmt"

	"github.com/mif-gmao/gmao/internal/domain/intervention"
	vo "github.com/mif-gmao/gmao/internal/domain/intervention/valueobjects"
	"github.com/mif-gmao/gmao/internal/infrastructure/persistence/models"
)

// InterventionMapper converts between intervention aggregates and persistence models.
type InterventionMapper interface {
	ToModel(i *intervention.Intervention) *models.InterventionModel
	ToDomain(m *models.InterventionModel) (*intervention.Intervention, error)
	HistoryToModel(h *intervention.HistoryEntry) *models.InterventionHistoryModel
	HistoryToDomain(m *models.InterventionHistoryModel) *intervention.HistoryEntry
}

type InterventionMapperImpl struct{}

func NewInterventionMapper() InterventionMapper {
	return &InterventionMapperImpl{}
}

func (m *InterventionMapperImpl) ToModel(i *intervention.Intervention) *models.InterventionModel {
	return &models.InterventionModel{
		ID:           i.ID(),
		Title:        i.Title(),
		Description:  i.Description(),
		Type:         i.Type().String(),
		Status:       i.Status().String(),
		Priority:     i.Priority().String(),
		Urgent:       i.Urgent(),
		DueDate:      toMillisPtr(i.DueDate()),
		ClosedAt:     toMillisPtr(i.ClosedAt()),
		TechnicianID: i.TechnicianID(),
		EquipmentID:  i.EquipmentID(),
		Version:      i.Version(),
		CreatedAt:    toMillis(i.CreatedAt()),
		UpdatedAt:    toMillis(i.UpdatedAt()),
	}
}

func (m *InterventionMapperImpl) ToDomain(model *models.InterventionModel) (*intervention.Intervention, error) {
	i, err := intervention.ReconstructIntervention(
		model.ID,
		model.Title,
		model.Description,
		vo.InterventionType(model.Type),
		vo.Status(model.Status),
		vo.Priority(model.Priority),
		model.Urgent,
		fromMillisPtr(model.DueDate),
		fromMillisPtr(model.ClosedAt),
		model.TechnicianID,
		model.EquipmentID,
		model.Version,
		fromMillis(model.CreatedAt),
		fromMillis(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct intervention %d: %w", model.ID, err)
	}
	return i, nil
}

func (m *InterventionMapperImpl) HistoryToModel(h *intervention.HistoryEntry) *models.InterventionHistoryModel {
	return &models.InterventionHistoryModel{
		ID:             h.ID(),
		InterventionID: h.InterventionID(),
		Status:         h.Status().String(),
		Remark:         h.Remark(),
		PrincipalID:    h.PrincipalID(),
		CreatedAt:      toMillis(h.CreatedAt()),
	}
}

func (m *InterventionMapperImpl) HistoryToDomain(model *models.InterventionHistoryModel) *intervention.HistoryEntry {
	return intervention.ReconstructHistoryEntry(
		model.ID,
		model.InterventionID,
		vo.Status(model.Status),
		model.Remark,
		model.PrincipalID,
		fromMillis(model.CreatedAt),
	)
}
