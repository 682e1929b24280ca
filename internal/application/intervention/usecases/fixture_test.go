package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mif-gmao/gmao/internal/application/intervention/dto"
	"github.com/mif-gmao/gmao/internal/domain/equipment"
	"github.com/mif-gmao/gmao/internal/domain/technician"
	"github.com/mif-gmao/gmao/internal/domain/user"
	"github.com/mif-gmao/gmao/internal/infrastructure/repository"
	"github.com/mif-gmao/gmao/internal/shared/authorization"
	"github.com/mif-gmao/gmao/internal/shared/db"
	"github.com/mif-gmao/gmao/internal/shared/logger"
	"github.com/mif-gmao/gmao/internal/testutil"
)

const actorID uint = 7

type fixture struct {
	interventions *repository.InterventionRepository
	history       *repository.HistoryRepository
	equipments    *repository.EquipmentRepository
	technicians   *repository.TechnicianRepository
	users         *repository.UserRepository
	txMgr         *db.TransactionManager
	notifier      *recordingNotifier
	observer      *recordingObserver

	create       *CreateInterventionUseCase
	changeStatus *ChangeStatusUseCase
	addHistory   *AddHistoryUseCase
	assign       *AssignTechnicianUseCase
	get          *GetInterventionUseCase
	list         *ListInterventionsUseCase
	listHistory  *ListHistoryUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	conn := testutil.NewTestDB(t)
	log := logger.NewNopLogger()

	f := &fixture{
		interventions: repository.NewInterventionRepository(conn),
		history:       repository.NewHistoryRepository(conn),
		equipments:    repository.NewEquipmentRepository(conn),
		technicians:   repository.NewTechnicianRepository(conn),
		users:         repository.NewUserRepository(conn),
		txMgr:         db.NewTransactionManager(conn),
		notifier:      &recordingNotifier{},
		observer:      &recordingObserver{},
	}
	recorder := NewHistoryRecorder(f.history)
	f.create = NewCreateInterventionUseCase(f.interventions, recorder, f.equipments, f.technicians, f.txMgr, f.notifier, log)
	f.changeStatus = NewChangeStatusUseCase(f.interventions, recorder, f.txMgr, f.notifier, f.observer, log)
	f.addHistory = NewAddHistoryUseCase(f.interventions, recorder, f.txMgr, log)
	f.assign = NewAssignTechnicianUseCase(f.interventions, f.technicians, f.txMgr, f.notifier, log)
	f.get = NewGetInterventionUseCase(f.interventions, log)
	f.list = NewListInterventionsUseCase(f.interventions, log)
	f.listHistory = NewListHistoryUseCase(f.interventions, f.history, log)
	return f
}

func (f *fixture) newEquipment(t *testing.T, name string) uint {
	t.Helper()
	e, err := equipment.NewEquipment(name, "pompe", "Atelier A", nil, time.Now())
	require.NoError(t, err)
	require.NoError(t, f.equipments.Create(context.Background(), e))
	return e.ID()
}

func (f *fixture) newTechnician(t *testing.T, email string) uint {
	t.Helper()
	ctx := context.Background()
	u, err := user.NewUser(email, "Tech "+email, authorization.RoleTechnicien, time.Now())
	require.NoError(t, err)
	require.NoError(t, f.users.Create(ctx, u))
	tech, err := technician.NewTechnician(u.ID(), "maintenance", time.Now())
	require.NoError(t, err)
	require.NoError(t, f.technicians.Create(ctx, tech))
	return tech.ID()
}

func (f *fixture) newIntervention(t *testing.T) *dto.InterventionDTO {
	t.Helper()
	out, err := f.create.Execute(context.Background(), CreateInterventionCommand{
		Title:     "Fuite circuit hydraulique",
		Type:      "corrective",
		CreatorID: actorID,
	})
	require.NoError(t, err)
	return out
}

func (f *fixture) setStatus(t *testing.T, id uint, status string) *dto.InterventionDTO {
	t.Helper()
	out, err := f.changeStatus.Execute(context.Background(), ChangeStatusCommand{
		InterventionID: id,
		Status:         status,
		PrincipalID:    actorID,
	})
	require.NoError(t, err)
	return out
}

func (f *fixture) historyLen(t *testing.T, id uint) int {
	t.Helper()
	entries, err := f.history.ListByIntervention(context.Background(), id)
	require.NoError(t, err)
	return len(entries)
}
