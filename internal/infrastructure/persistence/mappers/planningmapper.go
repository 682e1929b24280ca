package mappers

import (
	"github.com/mif-gmao/gmao/internal/domain/planning"
	vo "github.com/mif-gmao/gmao/internal/domain/planning/valueobjects"
	"github.com/mif-gmao/gmao/internal/infrastructure/persistence/models"
)

type PlanningMapper interface {
	ToModel(p *planning.Planning) *models.PlanningModel
	ToDomain(m *models.PlanningModel) (*planning.Planning, error)
}

type PlanningMapperImpl struct{}

func NewPlanningMapper() PlanningMapper {
	return &PlanningMapperImpl{}
}

func (m *PlanningMapperImpl) ToModel(p *planning.Planning) *models.PlanningModel {
	return &models.PlanningModel{
		ID:                p.ID(),
		EquipmentID:       p.EquipmentID(),
		Frequency:         p.Frequency().String(),
		NextDueDate:       toMillis(p.NextDueDate()),
		LastGeneratedDate: toMillisPtr(p.LastGeneratedDate()),
		Remarks:           p.Remarks(),
		Version:           p.Version(),
		CreatedAt:         toMillis(p.CreatedAt()),
		UpdatedAt:         toMillis(p.UpdatedAt()),
	}
}

// ToDomain normalizes unrecognized stored frequencies to the fallback.
func (m *PlanningMapperImpl) ToDomain(model *models.PlanningModel) (*planning.Planning, error) {
	return planning.ReconstructPlanning(
		model.ID,
		model.EquipmentID,
		vo.NormalizeFrequency(model.Frequency),
		fromMillis(model.NextDueDate),
		fromMillisPtr(model.LastGeneratedDate),
		model.Remarks,
		model.Version,
		fromMillis(model.CreatedAt),
		fromMillis(model.UpdatedAt),
	)
}
