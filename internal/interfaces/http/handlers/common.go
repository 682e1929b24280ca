// Package handlers adapts HTTP requests to application use cases.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mif-gmao/gmao/internal/interfaces/http/middleware"
	"github.com/mif-gmao/gmao/internal/shared/errors"
)

func principalID(c *gin.Context) (uint, error) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return 0, errors.NewUnauthorizedError("user not authenticated")
	}
	return p.ID(), nil
}

func bindError(err error) error {
	return errors.NewValidationError("invalid request", err.Error())
}
