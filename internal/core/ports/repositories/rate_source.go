package repositories

import (
	"context"

	"github.com/fleetpulse/fleet_billing_app/internal/core/domain"
)

// RateSource is an upstream exchange-rate provider. Implementations normalize
// the provider's payload into a RateTable with uppercased canonical codes.
type RateSource interface {
	// Name identifies the provider; it keys the rate cache.
	Name() string

	// FetchRates retrieves a fresh rate table from the provider.
	FetchRates(ctx context.Context) (*domain.RateTable, error)
}
