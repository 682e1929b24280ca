package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mif-gmao/gmao/internal/shared/authorization"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := NewJWTService("secret", "gmao")

	token, err := svc.Issue("42", authorization.RoleTechnicien, time.Hour)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims["sub"])
	assert.Equal(t, "technicien", claims["role"])

	res := authorization.ResolvePrincipal(context.Background(), claims, nil)
	resolved, ok := res.(authorization.Resolved)
	require.True(t, ok)
	assert.Equal(t, uint(42), resolved.Principal.ID())
	assert.Equal(t, authorization.RoleTechnicien, resolved.Principal.Role())
}

func TestJWTService_Verify_Rejects(t *testing.T) {
	svc := NewJWTService("secret", "gmao")

	expired, err := svc.Issue("1", authorization.RoleAdmin, -time.Minute)
	require.NoError(t, err)

	otherKey, err := NewJWTService("other", "gmao").Issue("1", authorization.RoleAdmin, time.Hour)
	require.NoError(t, err)

	otherIssuer, err := NewJWTService("secret", "elsewhere").Issue("1", authorization.RoleAdmin, time.Hour)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "1", "iss": "gmao"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"wrong key", otherKey},
		{"wrong issuer", otherIssuer},
		{"alg none", none},
		{"garbage", "not-a-token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
