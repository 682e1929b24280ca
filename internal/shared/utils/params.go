package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mif-gmao/gmao/internal/shared/errors"
)

// ParseIDParam parses a positive numeric ID from a URL path parameter.
// entityName is used in error messages (e.g., "intervention").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}
	return uint(n), nil
}

// ParseOptionalUintQuery returns nil when the query parameter is absent.
func ParseOptionalUintQuery(c *gin.Context, key string) (*uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return nil, errors.NewValidationError("invalid " + key)
	}
	v := uint(n)
	return &v, nil
}
