// Package refresh exposes the queued single-official refresh endpoint. The
// actual work happens in cmd/worker; this module only enqueues.
package refresh

import (
	"net/http"
	"time"

	apphttp "civitas_backend/internal/http"
	"civitas_backend/internal/scheduler"
	"civitas_backend/platform/httpkit"
	"civitas_backend/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Module wires the refresh enqueue route.
type Module struct {
	enqueuer scheduler.RefreshEnqueuer
	log      *logger.Logger
}

// NewModule creates the refresh module. enqueuer may be nil when redis is
// not configured; the route then answers 503.
func NewModule(enqueuer scheduler.RefreshEnqueuer, log *logger.Logger) *Module {
	return &Module{enqueuer: enqueuer, log: log}
}

func (m *Module) Name() string {
	return "refresh"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/officials")
	group.POST("/:id/refresh", m.enqueueRefresh)
}

type refreshRequest struct {
	Year int `json:"year" binding:"omitempty,min=2000,max=2100"`
}

func (m *Module) enqueueRefresh(c *gin.Context) {
	if m.enqueuer == nil {
		httpkit.Error(c, http.StatusServiceUnavailable, "refresh queue not configured")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid official id")
		return
	}

	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		httpkit.Error(c, http.StatusBadRequest, "year must be a four-digit year")
		return
	}
	if req.Year == 0 {
		req.Year = time.Now().Year()
	}

	payload := scheduler.OfficialRefreshPayload{OfficialID: id.String(), Year: req.Year}
	if err := m.enqueuer.EnqueueOfficialRefresh(c.Request.Context(), payload); err != nil {
		m.log.Error("failed to enqueue refresh", "official_id", id.String(), "error", err)
		httpkit.Error(c, http.StatusInternalServerError, "failed to enqueue refresh")
		return
	}

	httpkit.Accepted(c, gin.H{"official_id": id.String(), "year": req.Year, "status": "queued"})
}

var _ apphttp.Module = (*Module)(nil)
