package services

import (
	"context"
	"time"

	"github.com/fleetpulse/fleet_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BillingCalculatorSvc defines the pure per-node calculators. They take an
// explicit rate table so callers control the freshness/degradation policy.
type BillingCalculatorSvc interface {
	// RemainingValue computes the unused value of a node's current cycle as
	// of now, in the display currency, using whole-calendar-day amortization.
	RemainingValue(node domain.NodeRecord, displayCurrency string, table *domain.RateTable, now time.Time) decimal.Decimal

	// ProjectRenewals enumerates renewal events for all records falling
	// within [windowStart, windowEnd], converted to the display currency and
	// sorted by occurrence time ascending.
	ProjectRenewals(nodes []domain.NodeRecord, windowStart, windowEnd time.Time, displayCurrency string, table *domain.RateTable) domain.RenewalProjection
}

// BillingReaderSvc defines fleet-level read operations.
type BillingReaderSvc interface {
	// DescribeNodes returns the per-node computed billing view in the display
	// currency.
	DescribeNodes(ctx context.Context, displayCurrency string) ([]domain.NodeBilling, error)

	// Summarize aggregates the fleet into portfolio totals and ranked
	// breakdowns in the display currency. breakdownLimit truncates the ranked
	// lists; zero keeps them whole.
	Summarize(ctx context.Context, displayCurrency string, breakdownLimit int) (*domain.PortfolioSummary, error)

	// Renewals projects renewal events for the whole fleet over a window.
	Renewals(ctx context.Context, displayCurrency string, windowStart, windowEnd time.Time) (*domain.RenewalProjection, error)
}

// BillingSvcFacade combines all billing-service interfaces.
type BillingSvcFacade interface {
	BillingCalculatorSvc
	BillingReaderSvc
}
