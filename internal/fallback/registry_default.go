package fallback

import (
	"civitas_backend/internal/sources/assembleia"
	"civitas_backend/internal/sources/camara"
	"civitas_backend/internal/sources/municipio"
	"civitas_backend/internal/sources/senado"
	"civitas_backend/internal/sources/transparencia"
	"civitas_backend/platform/config"
	"civitas_backend/platform/logger"
)

// NewDefaultRegistry constructs every production adapter and registers it
// under its name. Base URLs stay at their production defaults; tests build
// their own registries against httptest servers.
func NewDefaultRegistry(cfg config.SourcesConfig, log *logger.Logger) (*Registry, error) {
	timeout := cfg.GetSourceHTTPTimeout()

	reg := NewRegistry()
	reg.RegisterExpenses(camara.NewExpensesAdapter("", timeout, cfg.GetSourceExpenseMonth(), log))
	reg.RegisterExpenses(senado.NewMirrorAdapter("", timeout, log))
	reg.RegisterExpenses(senado.NewScrapeAdapter("", timeout, log))

	reg.RegisterStaff(camara.NewStaffAdapter("", timeout, log))
	reg.RegisterStaff(assembleia.NewStaffAdapter(log))
	reg.RegisterStaff(municipio.NewStaffAdapter(log))

	staticRef, err := transparencia.NewStaffAdapter(log)
	if err != nil {
		return nil, err
	}
	reg.RegisterStaff(staticRef)

	return reg, nil
}
