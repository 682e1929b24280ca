package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mif-gmao/gmao/internal/shared/authorization"
	"github.com/mif-gmao/gmao/internal/shared/constants"
	"github.com/mif-gmao/gmao/internal/shared/logger"
	"github.com/mif-gmao/gmao/internal/shared/utils"
)

// TokenVerifier checks a bearer token and returns its raw claims.
type TokenVerifier interface {
	Verify(token string) (map[string]any, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	users    authorization.UserLookup
	logger   logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, users authorization.UserLookup, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		users:    users,
		logger:   logger,
	}
}

// RequireAuth resolves the acting principal from the bearer token and stores
// it in the context. Requests without a resolvable principal get 401, a
// deactivated account gets 403.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.verifier.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		switch res := authorization.ResolvePrincipal(c.Request.Context(), claims, m.users).(type) {
		case authorization.Resolved:
			c.Set(constants.ContextKeyPrincipal, res.Principal)
			c.Set(constants.ContextKeyUserID, res.Principal.ID())
			c.Next()
		case authorization.Unauthenticated:
			m.logger.Warnw("principal not resolved", "reason", res.Reason)
			utils.ErrorResponse(c, http.StatusUnauthorized, "unauthenticated")
			c.Abort()
		case authorization.Forbidden:
			m.logger.Warnw("principal refused", "reason", res.Reason)
			utils.ErrorResponse(c, http.StatusForbidden, "account disabled")
			c.Abort()
		}
	}
}

// GetPrincipal returns the principal stored by RequireAuth.
func GetPrincipal(c *gin.Context) (authorization.Principal, bool) {
	v, ok := c.Get(constants.ContextKeyPrincipal)
	if !ok {
		return nil, false
	}
	p, ok := v.(authorization.Principal)
	return p, ok
}
