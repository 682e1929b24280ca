package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mif-gmao/gmao/internal/shared/utils"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	version string
}

func NewHealthHandler(db Pinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// Check handles GET /health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	code := http.StatusOK
	if h.db != nil {
		if err := h.db.PingContext(ctx); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
	}

	utils.SuccessResponse(c, code, "", gin.H{
		"status":  status,
		"version": h.version,
	})
}
