package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mif-gmao/gmao/internal/domain/intervention"
	apperrors "github.com/mif-gmao/gmao/internal/shared/errors"
)

func TestCreateIntervention_Defaults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.create.Execute(ctx, CreateInterventionCommand{
		Title:     "Remplacement roulement",
		Type:      "Préventif",
		CreatorID: actorID,
	})
	require.NoError(t, err)

	assert.NotZero(t, out.ID)
	assert.Equal(t, "preventive", out.Type)
	assert.Equal(t, "open", out.Status)
	assert.Equal(t, "normal", out.Priority)
	assert.Nil(t, out.ClosedAt)

	entries, err := f.listHistory.Execute(ctx, out.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "open", entries[0].Status)
	assert.Equal(t, actorID, entries[0].PrincipalID)

	events := f.notifier.Events()
	require.Len(t, events, 1)
	assert.Equal(t, intervention.EventCreated, events[0].Kind)
	assert.Equal(t, out.ID, events[0].InterventionID)
}

func TestCreateIntervention_WithReferences(t *testing.T) {
	f := newFixture(t)
	eqID := f.newEquipment(t, "Compresseur C1")
	techID := f.newTechnician(t, "alice@example.com")

	out, err := f.create.Execute(context.Background(), CreateInterventionCommand{
		Title:        "Vidange",
		Type:         "preventive",
		Priority:     "haute",
		Urgent:       true,
		EquipmentID:  &eqID,
		TechnicianID: &techID,
		CreatorID:    actorID,
	})
	require.NoError(t, err)
	assert.Equal(t, "high", out.Priority)
	assert.True(t, out.Urgent)
	require.NotNil(t, out.EquipmentID)
	assert.Equal(t, eqID, *out.EquipmentID)
	require.NotNil(t, out.TechnicianID)
	assert.Equal(t, techID, *out.TechnicianID)
}

func TestCreateIntervention_InitialClosedSetsClosure(t *testing.T) {
	f := newFixture(t)

	out, err := f.create.Execute(context.Background(), CreateInterventionCommand{
		Title:         "Intervention rétroactive",
		Type:          "corrective",
		InitialStatus: "closed",
		CreatorID:     actorID,
	})
	require.NoError(t, err)
	assert.Equal(t, "closed", out.Status)
	assert.NotNil(t, out.ClosedAt)
}

func TestCreateIntervention_Errors(t *testing.T) {
	missing := uint(999)

	tests := []struct {
		name  string
		cmd   CreateInterventionCommand
		check func(error) bool
	}{
		{"missing title", CreateInterventionCommand{Type: "corrective", CreatorID: actorID}, apperrors.IsValidationError},
		{"unknown type", CreateInterventionCommand{Title: "x", Type: "curative", CreatorID: actorID}, apperrors.IsValidationError},
		{"unknown priority", CreateInterventionCommand{Title: "x", Type: "corrective", Priority: "critique", CreatorID: actorID}, apperrors.IsValidationError},
		{"archived initial status", CreateInterventionCommand{Title: "x", Type: "corrective", InitialStatus: "archived", CreatorID: actorID}, apperrors.IsInvalidTransitionError},
		{"missing creator", CreateInterventionCommand{Title: "x", Type: "corrective"}, apperrors.IsValidationError},
		{"unknown equipment", CreateInterventionCommand{Title: "x", Type: "corrective", EquipmentID: &missing, CreatorID: actorID}, apperrors.IsNotFoundError},
		{"unknown technician", CreateInterventionCommand{Title: "x", Type: "corrective", TechnicianID: &missing, CreatorID: actorID}, apperrors.IsNotFoundError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.create.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error kind: %v", err)
			assert.Empty(t, f.notifier.Events())
		})
	}
}
