package authorization

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers map[string]Principal

func (f fakeUsers) FindByEmail(_ context.Context, email string) (Principal, error) {
	if p, ok := f[email]; ok {
		return p, nil
	}
	return nil, errors.New("not found")
}

// disabledUsers knows only deactivated accounts.
type disabledUsers map[string]bool

func (d disabledUsers) FindByEmail(_ context.Context, email string) (Principal, error) {
	if d[email] {
		return nil, fmt.Errorf("user %q: %w", email, ErrPrincipalDisabled)
	}
	return nil, errors.New("not found")
}

// ----------------------------------------------------------------------------
// Roles and capabilities
// ----------------------------------------------------------------------------

func TestParseRole(t *testing.T) {
	r, ok := ParseRole(" Technicien ")
	assert.True(t, ok)
	assert.Equal(t, RoleTechnicien, r)

	_, ok = ParseRole("superuser")
	assert.False(t, ok)
}

func TestCapability_Split(t *testing.T) {
	assert.Equal(t, "intervention", CapInterventionStatus.Resource())
	assert.Equal(t, "status", CapInterventionStatus.Action())
}

func TestAllowed_SamePolicyForStructAndClaims(t *testing.T) {
	auth := NewStaticAuthorizer(DefaultCapabilities())

	principals := []Principal{
		User{UserID: 3, UserRole: RoleTechnicien},
		Claims{"user_id": float64(3), "role": "technicien"},
	}

	for _, p := range principals {
		ok, err := Allowed(auth, p, CapInterventionStatus)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = Allowed(auth, p, CapEquipmentDelete)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestAllowed_ClientReadOnly(t *testing.T) {
	auth := NewStaticAuthorizer(DefaultCapabilities())
	client := User{UserID: 9, UserRole: RoleClient}

	ok, _ := Allowed(auth, client, CapInterventionRead)
	assert.True(t, ok)
	ok, _ = Allowed(auth, client, CapInterventionCreate)
	assert.False(t, ok)
}

func TestAllowed_UnknownRoleOrNil(t *testing.T) {
	auth := NewStaticAuthorizer(DefaultCapabilities())

	ok, _ := Allowed(auth, Claims{"user_id": 1, "role": "root"}, CapInterventionRead)
	assert.False(t, ok)
	ok, _ = Allowed(auth, nil, CapInterventionRead)
	assert.False(t, ok)
}

// ----------------------------------------------------------------------------
// Principal resolution
// ----------------------------------------------------------------------------

func TestResolvePrincipal(t *testing.T) {
	users := fakeUsers{"resp@gmao.local": User{UserID: 12, UserRole: RoleResponsable}}

	tests := []struct {
		name    string
		claims  map[string]any
		wantID  uint
		wantVia string
		wantErr bool
	}{
		{"explicit user_id wins over sub", map[string]any{"user_id": float64(5), "sub": "7", "role": "admin"}, 5, "user_id", false},
		{"numeric string sub", map[string]any{"sub": "7", "role": "technicien"}, 7, "sub", false},
		{"numeric sub", map[string]any{"sub": float64(8)}, 8, "sub", false},
		{"email sub", map[string]any{"sub": "resp@gmao.local"}, 12, "email", false},
		{"unknown email", map[string]any{"sub": "ghost@gmao.local"}, 0, "", true},
		{"garbage sub", map[string]any{"sub": "not-an-id"}, 0, "", true},
		{"missing sub", map[string]any{"role": "admin"}, 0, "", true},
		{"zero user_id falls through", map[string]any{"user_id": float64(0), "sub": "4"}, 4, "sub", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ResolvePrincipal(context.Background(), tt.claims, users)
			if tt.wantErr {
				_, ok := res.(Unauthenticated)
				assert.True(t, ok, "expected Unauthenticated, got %#v", res)
				return
			}
			resolved, ok := res.(Resolved)
			require.True(t, ok, "expected Resolved, got %#v", res)
			assert.Equal(t, tt.wantID, resolved.Principal.ID())
			assert.Equal(t, tt.wantVia, resolved.Via)
		})
	}
}

func TestResolvePrincipal_RoleFromClaims(t *testing.T) {
	res := ResolvePrincipal(context.Background(), map[string]any{"sub": "3", "role": "Responsable"}, nil)
	resolved, ok := res.(Resolved)
	require.True(t, ok)
	assert.Equal(t, RoleResponsable, resolved.Principal.Role())
}

func TestResolvePrincipal_DisabledUserIsForbidden(t *testing.T) {
	users := disabledUsers{"old@gmao.local": true}

	res := ResolvePrincipal(context.Background(), map[string]any{"sub": "old@gmao.local", "role": "admin"}, users)
	forbidden, ok := res.(Forbidden)
	require.True(t, ok, "expected Forbidden, got %#v", res)
	assert.Equal(t, "user disabled", forbidden.Reason)

	res = ResolvePrincipal(context.Background(), map[string]any{"sub": "new@gmao.local"}, users)
	_, ok = res.(Unauthenticated)
	assert.True(t, ok, "unknown users stay unauthenticated")
}

func TestResolvePrincipal_EmailWithoutLookup(t *testing.T) {
	res := ResolvePrincipal(context.Background(), map[string]any{"sub": "a@b.c"}, nil)
	_, ok := res.(Unauthenticated)
	assert.True(t, ok)
}
