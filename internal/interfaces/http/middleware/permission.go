package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mif-gmao/gmao/internal/shared/authorization"
	"github.com/mif-gmao/gmao/internal/shared/logger"
	"github.com/mif-gmao/gmao/internal/shared/utils"
)

type PermissionMiddleware struct {
	authorizer authorization.Authorizer
	logger     logger.Interface
}

func NewPermissionMiddleware(authorizer authorization.Authorizer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		authorizer: authorizer,
		logger:     logger,
	}
}

// RequireCapability must run after RequireAuth.
func (m *PermissionMiddleware) RequireCapability(capability authorization.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		allowed, err := authorization.Allowed(m.authorizer, principal, capability)
		if err != nil {
			m.logger.Errorw("permission check failed",
				"error", err,
				"user_id", principal.ID(),
				"capability", capability)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied",
				"user_id", principal.ID(),
				"role", principal.Role(),
				"capability", capability)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
