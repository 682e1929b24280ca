package authorization

import (
	"context"
	"errors"
	"strings"
)

// ErrPrincipalDisabled is returned by a UserLookup for an account that exists
// but has been deactivated.
var ErrPrincipalDisabled = errors.New("principal disabled")

// UserLookup finds an account by email for subject claims that are not numeric.
type UserLookup interface {
	FindByEmail(ctx context.Context, email string) (Principal, error)
}

// Resolution is the outcome of ResolvePrincipal: Resolved, Unauthenticated or
// Forbidden.
type Resolution interface {
	resolution()
}

type Resolved struct {
	Principal Principal
	// Via names the claim that produced the identity: "user_id", "sub" or "email".
	Via string
}

type Unauthenticated struct {
	Reason string
}

// Forbidden means the identity is known but may not act.
type Forbidden struct {
	Reason string
}

func (Resolved) resolution()        {}
func (Unauthenticated) resolution() {}
func (Forbidden) resolution()       {}

// ResolvePrincipal derives the acting principal from token claims, in order:
// an explicit user_id claim, a numeric sub, an email sub looked up through users.
// The role claim is taken from the token unless the lookup supplies one.
func ResolvePrincipal(ctx context.Context, claims map[string]any, users UserLookup) Resolution {
	role, _ := ParseRole(stringClaim(claims, "role"))

	if id, ok := claimUint(claims["user_id"]); ok {
		return Resolved{Principal: User{UserID: id, UserRole: role}, Via: "user_id"}
	}

	if id, ok := claimUint(claims["sub"]); ok {
		return Resolved{Principal: User{UserID: id, UserRole: role}, Via: "sub"}
	}

	sub := strings.TrimSpace(stringClaim(claims, "sub"))
	if sub == "" {
		return Unauthenticated{Reason: "missing subject"}
	}

	if !strings.Contains(sub, "@") {
		return Unauthenticated{Reason: "subject is neither numeric nor an email"}
	}
	if users == nil {
		return Unauthenticated{Reason: "email subject without user lookup"}
	}

	p, err := users.FindByEmail(ctx, sub)
	if errors.Is(err, ErrPrincipalDisabled) {
		return Forbidden{Reason: "user disabled"}
	}
	if err != nil || p == nil {
		return Unauthenticated{Reason: "unknown user"}
	}
	if !p.Role().IsValid() && role.IsValid() {
		p = User{UserID: p.ID(), UserRole: role, Email: sub}
	}
	return Resolved{Principal: p, Via: "email"}
}

func stringClaim(claims map[string]any, key string) string {
	s, _ := claims[key].(string)
	return s
}
