package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RenewalEvent is one projected renewal occurrence inside a window. Events
// are ephemeral: produced during projection, never persisted.
type RenewalEvent struct {
	NodeID   string
	NodeName string
	OccursAt time.Time
	Amount   decimal.Decimal // already converted to the display currency
}

// RenewalProjection is the result of projecting renewals over a window.
type RenewalProjection struct {
	Total  decimal.Decimal
	Events []RenewalEvent
}

// NodeAmount is a ranked breakdown entry.
type NodeAmount struct {
	NodeID string
	Name   string
	Amount decimal.Decimal
}

// PortfolioSummary aggregates per-node billing figures across the fleet in a
// single display currency.
type PortfolioSummary struct {
	Currency CurrencyCode

	// MonthlyBurn is the steady-state burn rate: each price amortized over
	// its cycle and normalized to 30 days, independent of calendar position.
	MonthlyBurn decimal.Decimal

	// RemainingTotal is the sum of unused value across all nodes as of now.
	RemainingTotal decimal.Decimal

	// MonthlyRenewals and YearlyRenewals cover [now, end of month] and
	// [now, end of year] respectively.
	MonthlyRenewals RenewalProjection
	YearlyRenewals  RenewalProjection

	// MonthlyBreakdown ranks nodes by monthly burn; YearlyBreakdown ranks by
	// summed renewal amounts within the current year.
	MonthlyBreakdown []NodeAmount
	YearlyBreakdown  []NodeAmount

	// Converted is false when no rate table was obtainable and figures fall
	// back to original-currency amounts.
	Converted bool
}
