package services

import (
	"log/slog"

	portsrepo "github.com/fleetpulse/fleet_billing_app/internal/core/ports/repositories"
	portssvc "github.com/fleetpulse/fleet_billing_app/internal/core/ports/services"
	"github.com/fleetpulse/fleet_billing_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, sources []portsrepo.RateSource, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Rates = NewRateService(sources,
		WithRateCacheTTL(cfg.RateCacheTTL),
		WithRateLogger(logger),
	)
	container.Conversion = NewConversionService()
	container.Billing = NewBillingService(
		repos.NodeRepo,
		container.Rates,
		container.Conversion,
		cfg.RateSource,
	)
	container.Preference = NewPreferenceService(repos.PreferenceRepo, cfg.DefaultCurrency, logger)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.RateSvcFacade       = (*RateService)(nil)
	_ portssvc.ConversionSvc       = (*ConversionService)(nil)
	_ portssvc.BillingSvcFacade    = (*BillingService)(nil)
	_ portssvc.PreferenceSvcFacade = (*PreferenceService)(nil)
)
