package staff

import (
	apphttp "civitas_backend/internal/http"
	"civitas_backend/platform/logger"
)

// Module wires the on-demand staff HTTP route.
type Module struct {
	handler *Handler
	service *Service
}

// NewModule creates the staff module.
func NewModule(reader OfficialReader, writer SummaryWriter, resolver Resolver, log *logger.Logger) *Module {
	svc := NewService(reader, writer, resolver, log)
	return &Module{handler: NewHandler(svc), service: svc}
}

func (m *Module) Name() string {
	return "staff"
}

// Service exposes the service for the batch updater wiring.
func (m *Module) Service() *Service {
	return m.service
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/officials")
	group.GET("/:id/staff", m.handler.GetStaff)
}

var _ apphttp.Module = (*Module)(nil)
