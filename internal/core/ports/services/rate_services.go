package services

import (
	"context"

	"github.com/fleetpulse/fleet_billing_app/internal/core/domain"
)

// RateReaderSvc defines read operations for exchange-rate tables.
type RateReaderSvc interface {
	// GetRates returns the rate table for a source, serving the cached table
	// when fresh and falling back to a stale table on fetch failure. It
	// returns apperrors.ErrRateUnavailable only when no table at all can be
	// served.
	GetRates(ctx context.Context, source string) (*domain.RateTable, error)
}

// RateCacheAdminSvc defines cache maintenance operations.
type RateCacheAdminSvc interface {
	// ClearCache drops the cached table for a source; an empty source drops
	// every entry.
	ClearCache(source string)
}

// RateSvcFacade combines all rate-service interfaces.
type RateSvcFacade interface {
	RateReaderSvc
	RateCacheAdminSvc
}
