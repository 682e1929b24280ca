package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mif-gmao/gmao/internal/domain/intervention"
	vo "github.com/mif-gmao/gmao/internal/domain/intervention/valueobjects"
	"github.com/mif-gmao/gmao/internal/infrastructure/persistence/models"
)

func TestInterventionMapper_PreservesClosure(t *testing.T) {
	m := NewInterventionMapper()
	now := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	eq := uint(3)

	i, err := intervention.NewIntervention(intervention.NewInterventionParams{
		Title:       "Vidange",
		Type:        vo.TypePreventive,
		EquipmentID: &eq,
	}, now)
	require.NoError(t, err)
	require.NoError(t, i.SetID(10))
	_, err = i.ChangeStatus(vo.StatusClosed, 1, now.Add(time.Hour))
	require.NoError(t, err)

	back, err := m.ToDomain(m.ToModel(i))
	require.NoError(t, err)

	assert.Equal(t, vo.StatusClosed, back.Status())
	require.NotNil(t, back.ClosedAt())
	assert.True(t, i.ClosedAt().Equal(*back.ClosedAt()))
	assert.Equal(t, eq, *back.EquipmentID())
	assert.Equal(t, i.Version(), back.Version())
}

func TestInterventionMapper_RejectsCorruptRow(t *testing.T) {
	m := NewInterventionMapper()
	_, err := m.ToDomain(&models.InterventionModel{
		ID: 1, Title: "x", Type: "corrective", Status: "archived", Priority: "normal",
	})
	assert.Error(t, err, "archived without closure timestamp must not load")
}
