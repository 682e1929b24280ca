package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mif-gmao/gmao/internal/domain/intervention"
	vo "github.com/mif-gmao/gmao/internal/domain/intervention/valueobjects"
	"github.com/mif-gmao/gmao/internal/domain/technician"
	"github.com/mif-gmao/gmao/internal/domain/user"
	"github.com/mif-gmao/gmao/internal/infrastructure/repository"
	"github.com/mif-gmao/gmao/internal/shared/authorization"
	"github.com/mif-gmao/gmao/internal/shared/db"
	apperrors "github.com/mif-gmao/gmao/internal/shared/errors"
	"github.com/mif-gmao/gmao/internal/shared/logger"
	"github.com/mif-gmao/gmao/internal/testutil"
)

func TestTechnicianLifecycle(t *testing.T) {
	conn := testutil.NewTestDB(t)
	ctx := context.Background()
	log := logger.NewNopLogger()
	users := repository.NewUserRepository(conn)
	techs := repository.NewTechnicianRepository(conn)
	interventions := repository.NewInterventionRepository(conn)

	create := NewCreateTechnicianUseCase(techs, users, log)
	list := NewListTechniciansUseCase(techs, log)
	del := NewDeleteTechnicianUseCase(techs, interventions, db.NewTransactionManager(conn), log)

	u, err := user.NewUser("dan@example.com", "Dan", authorization.RoleTechnicien, time.Now())
	require.NoError(t, err)
	require.NoError(t, users.Create(ctx, u))

	tech, err := create.Execute(ctx, CreateTechnicianCommand{UserID: u.ID(), Team: "mécanique"})
	require.NoError(t, err)
	assert.True(t, tech.Available)

	_, err = create.Execute(ctx, CreateTechnicianCommand{UserID: u.ID()})
	assert.True(t, apperrors.IsConflictError(err))
	_, err = create.Execute(ctx, CreateTechnicianCommand{UserID: 999})
	assert.True(t, apperrors.IsNotFoundError(err))

	techID := tech.ID
	i, err := intervention.NewIntervention(intervention.NewInterventionParams{
		Title:        "Capteur HS",
		Type:         vo.TypeCorrective,
		TechnicianID: &techID,
	}, time.Now())
	require.NoError(t, err)
	require.NoError(t, interventions.Create(ctx, i))

	assert.True(t, apperrors.IsConflictError(del.Execute(ctx, tech.ID)))

	for _, s := range []vo.Status{vo.StatusClosed, vo.StatusArchived} {
		version := i.Version()
		_, err := i.ChangeStatus(s, 1, time.Now())
		require.NoError(t, err)
		require.NoError(t, interventions.Update(ctx, i, version))
	}

	require.NoError(t, del.Execute(ctx, tech.ID))
	items, err := list.Execute(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.True(t, apperrors.IsNotFoundError(del.Execute(ctx, tech.ID)))
}

type lockingTechnicians struct {
	technician.Repository
	lockedInTx []bool
}

func (r *lockingTechnicians) GetByIDForUpdate(ctx context.Context, id uint) (*technician.Technician, error) {
	r.lockedInTx = append(r.lockedInTx, db.InTransaction(ctx))
	return r.Repository.GetByIDForUpdate(ctx, id)
}

func TestDeleteTechnician_LocksRowBeforeCounting(t *testing.T) {
	conn := testutil.NewTestDB(t)
	ctx := context.Background()
	log := logger.NewNopLogger()
	users := repository.NewUserRepository(conn)
	techs := &lockingTechnicians{Repository: repository.NewTechnicianRepository(conn)}
	del := NewDeleteTechnicianUseCase(techs, repository.NewInterventionRepository(conn), db.NewTransactionManager(conn), log)

	u, err := user.NewUser("lock@example.com", "Lou", authorization.RoleTechnicien, time.Now())
	require.NoError(t, err)
	require.NoError(t, users.Create(ctx, u))
	tech, err := technician.NewTechnician(u.ID(), "électricité", time.Now())
	require.NoError(t, err)
	require.NoError(t, techs.Create(ctx, tech))

	require.NoError(t, del.Execute(ctx, tech.ID()))
	assert.Equal(t, []bool{true}, techs.lockedInTx)
}
