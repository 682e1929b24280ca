package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mif-gmao/gmao/internal/domain/intervention"
	apperrors "github.com/mif-gmao/gmao/internal/shared/errors"
)

// ---------------------------------------------------------------------------
// AssignTechnician
// ---------------------------------------------------------------------------

func TestAssignTechnician(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	techID := f.newTechnician(t, "bob@example.com")
	created := f.newIntervention(t)

	out, err := f.assign.Execute(ctx, AssignTechnicianCommand{
		InterventionID: created.ID,
		TechnicianID:   techID,
		PrincipalID:    actorID,
	})
	require.NoError(t, err)
	require.NotNil(t, out.TechnicianID)
	assert.Equal(t, techID, *out.TechnicianID)

	events := f.notifier.Events()
	require.Len(t, events, 2)
	assert.Equal(t, intervention.EventAssigned, events[1].Kind)

	// Re-assigning the same technician changes nothing.
	_, err = f.assign.Execute(ctx, AssignTechnicianCommand{
		InterventionID: created.ID,
		TechnicianID:   techID,
		PrincipalID:    actorID,
	})
	require.NoError(t, err)
	assert.Len(t, f.notifier.Events(), 2)
}

func TestAssignTechnician_LockedWhenClosed(t *testing.T) {
	f := newFixture(t)
	techID := f.newTechnician(t, "carol@example.com")
	created := f.newIntervention(t)
	f.setStatus(t, created.ID, "closed")

	_, err := f.assign.Execute(context.Background(), AssignTechnicianCommand{
		InterventionID: created.ID,
		TechnicianID:   techID,
		PrincipalID:    actorID,
	})
	assert.True(t, apperrors.IsStateLockedError(err))
}

func TestAssignTechnician_UnknownTechnician(t *testing.T) {
	f := newFixture(t)
	created := f.newIntervention(t)

	_, err := f.assign.Execute(context.Background(), AssignTechnicianCommand{
		InterventionID: created.ID,
		TechnicianID:   42,
		PrincipalID:    actorID,
	})
	assert.True(t, apperrors.IsNotFoundError(err))
}

// ---------------------------------------------------------------------------
// History
// ---------------------------------------------------------------------------

func TestAddHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := f.newIntervention(t)

	entry, err := f.addHistory.Execute(ctx, AddHistoryCommand{
		InterventionID: created.ID,
		Status:         "ouverte",
		Remark:         "diagnostic en attente",
		PrincipalID:    actorID,
	})
	require.NoError(t, err)
	assert.Equal(t, "open", entry.Status)
	assert.Equal(t, "diagnostic en attente", entry.Remark)

	got, err := f.get.Execute(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Version, got.Version, "history append must not touch the intervention")

	entries, err := f.listHistory.Execute(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "diagnostic en attente", entries[1].Remark)
}

func TestAddHistory_Errors(t *testing.T) {
	f := newFixture(t)
	created := f.newIntervention(t)

	_, err := f.addHistory.Execute(context.Background(), AddHistoryCommand{
		InterventionID: 404, Status: "open", PrincipalID: actorID,
	})
	assert.True(t, apperrors.IsNotFoundError(err))

	_, err = f.addHistory.Execute(context.Background(), AddHistoryCommand{
		InterventionID: created.ID, Status: "terminée", PrincipalID: actorID,
	})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestListHistory_OrderedOldestFirst(t *testing.T) {
	f := newFixture(t)
	created := f.newIntervention(t)
	f.setStatus(t, created.ID, "in_progress")
	f.setStatus(t, created.ID, "closed")

	entries, err := f.listHistory.Execute(context.Background(), created.ID)
	require.NoError(t, err)

	var statuses []string
	for _, e := range entries {
		statuses = append(statuses, e.Status)
	}
	assert.Equal(t, []string{"open", "in_progress", "closed"}, statuses)
}

func TestListHistory_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.listHistory.Execute(context.Background(), 404)
	assert.True(t, apperrors.IsNotFoundError(err))
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

func TestListInterventions_Filters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := f.newIntervention(t)
	f.newIntervention(t)
	f.setStatus(t, first.ID, "in_progress")

	all, err := f.list.Execute(ctx, ListInterventionsQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, all.Total)
	assert.Equal(t, 1, all.Page)
	assert.Equal(t, 20, all.PageSize)

	inProgress, err := f.list.Execute(ctx, ListInterventionsQuery{Status: "en_cours"})
	require.NoError(t, err)
	require.Len(t, inProgress.Items, 1)
	assert.Equal(t, first.ID, inProgress.Items[0].ID)

	_, err = f.list.Execute(ctx, ListInterventionsQuery{Status: "bogus"})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestGetIntervention_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.get.Execute(context.Background(), 404)
	assert.True(t, apperrors.IsNotFoundError(err))
}
