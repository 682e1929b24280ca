package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mif-gmao/gmao/internal/domain/equipment"
	"github.com/mif-gmao/gmao/internal/domain/intervention"
	vo "github.com/mif-gmao/gmao/internal/domain/intervention/valueobjects"
	"github.com/mif-gmao/gmao/internal/infrastructure/repository"
	"github.com/mif-gmao/gmao/internal/shared/db"
	apperrors "github.com/mif-gmao/gmao/internal/shared/errors"
	"github.com/mif-gmao/gmao/internal/shared/logger"
	"github.com/mif-gmao/gmao/internal/testutil"
)

type fixture struct {
	interventions *repository.InterventionRepository
	create        *CreateEquipmentUseCase
	get           *GetEquipmentUseCase
	list          *ListEquipmentUseCase
	canDelete     *CanDeleteEquipmentUseCase
	delete        *DeleteEquipmentUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	conn := testutil.NewTestDB(t)
	log := logger.NewNopLogger()
	repo := repository.NewEquipmentRepository(conn)
	interventions := repository.NewInterventionRepository(conn)
	guard := NewCanDeleteEquipmentUseCase(repo, interventions, log)

	return &fixture{
		interventions: interventions,
		create:        NewCreateEquipmentUseCase(repo, log),
		get:           NewGetEquipmentUseCase(repo, log),
		list:          NewListEquipmentUseCase(repo, log),
		canDelete:     guard,
		delete:        NewDeleteEquipmentUseCase(repo, guard, db.NewTransactionManager(conn), log),
	}
}

// addIntervention stores an intervention on equipmentID in the given status.
func (f *fixture) addIntervention(t *testing.T, equipmentID uint, status vo.Status) {
	t.Helper()
	ctx := context.Background()
	initial := status
	if status == vo.StatusArchived {
		initial = vo.StatusClosed
	}
	i, err := intervention.NewIntervention(intervention.NewInterventionParams{
		Title:         "Révision",
		Type:          vo.TypePreventive,
		EquipmentID:   &equipmentID,
		InitialStatus: initial,
	}, time.Now())
	require.NoError(t, err)
	require.NoError(t, f.interventions.Create(ctx, i))

	if status == vo.StatusArchived {
		version := i.Version()
		_, err := i.ChangeStatus(vo.StatusArchived, 1, time.Now())
		require.NoError(t, err)
		require.NoError(t, f.interventions.Update(ctx, i, version))
	}
}

func TestCreateEquipment_DuplicateName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.create.Execute(ctx, CreateEquipmentCommand{Name: "Tour CN", Kind: "usinage"})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)

	_, err = f.create.Execute(ctx, CreateEquipmentCommand{Name: "  Tour CN "})
	assert.True(t, apperrors.IsConflictError(err))

	_, err = f.create.Execute(ctx, CreateEquipmentCommand{Name: ""})
	assert.True(t, apperrors.IsValidationError(err))

	items, err := f.list.Execute(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCanDeleteEquipment(t *testing.T) {
	tests := []struct {
		name      string
		statuses  []vo.Status
		wantOK    bool
		wantError func(error) bool
	}{
		{"no interventions", nil, true, nil},
		{"only archived", []vo.Status{vo.StatusArchived, vo.StatusArchived}, true, nil},
		{"open blocks", []vo.Status{vo.StatusOpen}, false, apperrors.IsConflictError},
		{"in progress blocks", []vo.Status{vo.StatusArchived, vo.StatusInProgress}, false, apperrors.IsConflictError},
		{"closed blocks", []vo.Status{vo.StatusClosed}, false, apperrors.IsConflictError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			eq, err := f.create.Execute(ctx, CreateEquipmentCommand{Name: "Robot R2"})
			require.NoError(t, err)
			for _, s := range tt.statuses {
				f.addIntervention(t, eq.ID, s)
			}

			ok, err := f.canDelete.Execute(ctx, eq.ID)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantError == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tt.wantError(err), "unexpected error: %v", err)
			}
		})
	}
}

func TestCanDeleteEquipment_NotFound(t *testing.T) {
	f := newFixture(t)

	ok, err := f.canDelete.Execute(context.Background(), 404)
	assert.False(t, ok)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestDeleteEquipment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	blocked, err := f.create.Execute(ctx, CreateEquipmentCommand{Name: "Bloqué"})
	require.NoError(t, err)
	free, err := f.create.Execute(ctx, CreateEquipmentCommand{Name: "Libre"})
	require.NoError(t, err)
	f.addIntervention(t, blocked.ID, vo.StatusOpen)
	f.addIntervention(t, free.ID, vo.StatusArchived)

	err = f.delete.Execute(ctx, blocked.ID)
	assert.True(t, apperrors.IsConflictError(err))
	_, err = f.get.Execute(ctx, blocked.ID)
	assert.NoError(t, err, "refused deletion must keep the equipment")

	require.NoError(t, f.delete.Execute(ctx, free.ID))
	_, err = f.get.Execute(ctx, free.ID)
	assert.True(t, apperrors.IsNotFoundError(err))

	assert.True(t, apperrors.IsNotFoundError(f.delete.Execute(ctx, free.ID)))
}

// lockingEquipments records whether each locked read ran inside a transaction.
type lockingEquipments struct {
	equipment.Repository
	lockedInTx []bool
}

func (r *lockingEquipments) GetByIDForUpdate(ctx context.Context, id uint) (*equipment.Equipment, error) {
	r.lockedInTx = append(r.lockedInTx, db.InTransaction(ctx))
	return r.Repository.GetByIDForUpdate(ctx, id)
}

func TestDeleteEquipment_LocksRowBeforeCounting(t *testing.T) {
	conn := testutil.NewTestDB(t)
	log := logger.NewNopLogger()
	repo := &lockingEquipments{Repository: repository.NewEquipmentRepository(conn)}
	interventions := repository.NewInterventionRepository(conn)
	del := NewDeleteEquipmentUseCase(repo, NewCanDeleteEquipmentUseCase(repo, interventions, log), db.NewTransactionManager(conn), log)

	e, err := equipment.NewEquipment("Tour T2", "tour", "Atelier B", nil, time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), e))

	require.NoError(t, del.Execute(context.Background(), e.ID()))
	assert.Equal(t, []bool{true}, repo.lockedInTx)

	gone, err := repo.GetByID(context.Background(), e.ID())
	require.NoError(t, err)
	assert.Nil(t, gone)
}
