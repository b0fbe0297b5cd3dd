package staff

import (
	"net/http"

	"civitas_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler exposes the on-demand staff endpoint.
type Handler struct {
	svc *Service
}

// NewHandler creates the staff handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// GetStaff handles GET /api/v1/officials/:id/staff
func (h *Handler) GetStaff(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid official id")
		return
	}

	result, err := h.svc.GetStaff(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}
