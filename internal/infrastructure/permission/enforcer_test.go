package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mif-gmao/gmao/internal/shared/authorization"
	"github.com/mif-gmao/gmao/internal/shared/logger"
	"github.com/mif-gmao/gmao/internal/testutil"
)

func newSeededEnforcer(t *testing.T) *Enforcer {
	t.Helper()
	e, err := NewEnforcer(testutil.NewTestDB(t), logger.NewNopLogger())
	require.NoError(t, err)
	_, err = e.SeedCapabilities(authorization.DefaultCapabilities())
	require.NoError(t, err)
	return e
}

func TestEnforcer_DefaultGrants(t *testing.T) {
	e := newSeededEnforcer(t)

	tests := []struct {
		role  authorization.Role
		cap   authorization.Capability
		allow bool
	}{
		{authorization.RoleAdmin, authorization.CapEquipmentDelete, true},
		{authorization.RoleResponsable, authorization.CapPlanningGenerate, true},
		{authorization.RoleTechnicien, authorization.CapInterventionStatus, true},
		{authorization.RoleTechnicien, authorization.CapHistoryWrite, true},
		{authorization.RoleTechnicien, authorization.CapInterventionCreate, false},
		{authorization.RoleTechnicien, authorization.CapEquipmentDelete, false},
		{authorization.RoleClient, authorization.CapInterventionRead, true},
		{authorization.RoleClient, authorization.CapInterventionStatus, false},
		{authorization.Role("guest"), authorization.CapInterventionRead, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.cap), func(t *testing.T) {
			ok, err := e.Can(tt.role, tt.cap)
			require.NoError(t, err)
			assert.Equal(t, tt.allow, ok)
		})
	}
}

func TestEnforcer_MatchesStaticTable(t *testing.T) {
	e := newSeededEnforcer(t)
	static := authorization.NewStaticAuthorizer(authorization.DefaultCapabilities())

	caps := authorization.DefaultCapabilities()[authorization.RoleAdmin]
	for _, role := range authorization.AllRoles() {
		for _, c := range caps {
			want, _ := static.Can(role, c)
			got, err := e.Can(role, c)
			require.NoError(t, err)
			assert.Equal(t, want, got, "%s %s", role, c)
		}
	}
}

func TestEnforcer_SeedIsIdempotent(t *testing.T) {
	e := newSeededEnforcer(t)

	added, err := e.SeedCapabilities(authorization.DefaultCapabilities())
	require.NoError(t, err)
	assert.Zero(t, added)
}

func TestEnforcer_GrantRevoke(t *testing.T) {
	e := newSeededEnforcer(t)

	require.NoError(t, e.Grant(authorization.RoleTechnicien, authorization.CapNotificationRead))
	ok, err := e.Can(authorization.RoleTechnicien, authorization.CapNotificationRead)
	require.NoError(t, err)
	assert.True(t, ok)

	caps, err := e.CapabilitiesOf(authorization.RoleTechnicien)
	require.NoError(t, err)
	assert.Contains(t, caps, authorization.CapNotificationRead)

	require.NoError(t, e.Revoke(authorization.RoleTechnicien, authorization.CapNotificationRead))
	ok, err = e.Can(authorization.RoleTechnicien, authorization.CapNotificationRead)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, e.LoadPolicy())
	ok, err = e.Can(authorization.RoleTechnicien, authorization.CapInterventionStatus)
	require.NoError(t, err)
	assert.True(t, ok, "grants survive a reload from the store")
}
