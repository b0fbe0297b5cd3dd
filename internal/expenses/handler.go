package expenses

import (
	"net/http"
	"time"

	"civitas_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler exposes the on-demand expense endpoint.
type Handler struct {
	svc *Service
}

// NewHandler creates the expense handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type expensesQuery struct {
	Year int `form:"year" binding:"omitempty,min=2000,max=2100"`
}

// GetExpenses handles GET /api/v1/officials/:id/expenses?year=YYYY
func (h *Handler) GetExpenses(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid official id")
		return
	}

	var query expensesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "year must be a four-digit year")
		return
	}
	if query.Year == 0 {
		query.Year = time.Now().Year()
	}

	result, err := h.svc.GetExpenses(c.Request.Context(), id, query.Year)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}
