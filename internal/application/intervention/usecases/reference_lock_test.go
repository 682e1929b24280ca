package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mif-gmao/gmao/internal/domain/equipment"
	"github.com/mif-gmao/gmao/internal/domain/technician"
	"github.com/mif-gmao/gmao/internal/shared/db"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

// lockingEquipments records whether each locked read ran inside a transaction.
type lockingEquipments struct {
	equipment.Repository
	lockedInTx []bool
}

func (r *lockingEquipments) GetByIDForUpdate(ctx context.Context, id uint) (*equipment.Equipment, error) {
	r.lockedInTx = append(r.lockedInTx, db.InTransaction(ctx))
	return r.Repository.GetByIDForUpdate(ctx, id)
}

type lockingTechnicians struct {
	technician.Repository
	lockedInTx []bool
}

func (r *lockingTechnicians) GetByIDForUpdate(ctx context.Context, id uint) (*technician.Technician, error) {
	r.lockedInTx = append(r.lockedInTx, db.InTransaction(ctx))
	return r.Repository.GetByIDForUpdate(ctx, id)
}

func TestCreateIntervention_LocksReferencedRows(t *testing.T) {
	f := newFixture(t)
	eq := f.newEquipment(t, "Compresseur C1")
	tech := f.newTechnician(t, "lock@example.com")

	equipments := &lockingEquipments{Repository: f.equipments}
	technicians := &lockingTechnicians{Repository: f.technicians}
	uc := NewCreateInterventionUseCase(f.interventions, NewHistoryRecorder(f.history), equipments, technicians, f.txMgr, nil, logger.NewNopLogger())

	out, err := uc.Execute(context.Background(), CreateInterventionCommand{
		Title:        "Vibration anormale",
		Type:         "corrective",
		EquipmentID:  &eq,
		TechnicianID: &tech,
		CreatorID:    actorID,
	})
	require.NoError(t, err)
	require.NotNil(t, out.EquipmentID)
	assert.Equal(t, []bool{true}, equipments.lockedInTx)
	assert.Equal(t, []bool{true}, technicians.lockedInTx)
}

func TestAssignTechnician_LocksTechnicianRow(t *testing.T) {
	f := newFixture(t)
	created := f.newIntervention(t)
	tech := f.newTechnician(t, "assign-lock@example.com")

	technicians := &lockingTechnicians{Repository: f.technicians}
	uc := NewAssignTechnicianUseCase(f.interventions, technicians, f.txMgr, nil, logger.NewNopLogger())

	out, err := uc.Execute(context.Background(), AssignTechnicianCommand{
		InterventionID: created.ID,
		TechnicianID:   tech,
		PrincipalID:    actorID,
	})
	require.NoError(t, err)
	require.NotNil(t, out.TechnicianID)
	assert.Equal(t, tech, *out.TechnicianID)
	assert.Equal(t, []bool{true}, technicians.lockedInTx)
}
