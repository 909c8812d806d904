package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"fixwise/internal/shared/errors"
)

// ParseIDParam parses a numeric ID from a URL path parameter.
// entityName is used in error messages (e.g., "ticket", "bid").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}

	return uint(id), nil
}

// ParseQueryUint parses an optional unsigned integer query parameter.
// Returns nil when the parameter is absent.
func ParseQueryUint(c *gin.Context, key string) (*uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, errors.NewValidationError("invalid " + key + " parameter")
	}

	u := uint(v)
	return &u, nil
}
