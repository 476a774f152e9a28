package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NodeRecord is one server in the monitored fleet together with its billing
// terms. Records are read-only input to the calculators; everything derived
// from them is recomputed from the current snapshot.
type NodeRecord struct {
	NodeID           string
	Name             string
	Group            string
	Region           string
	Price            Price
	Currency         string // raw identifier as reported: code, symbol or localized name
	BillingCycleDays int    // negative means a one-time charge with no recurring cycle
	ExpiresAt        *time.Time
	CreatedAt        time.Time
	LastUpdatedAt    time.Time
}

// NodeBilling is the per-node computed billing view served to the dashboard.
type NodeBilling struct {
	Node           NodeRecord
	PriceLabel     string // e.g. "$12.00/month" or "免费"
	CycleLabel     string
	RemainingValue decimal.Decimal
	MonthlyBurn    decimal.Decimal
}
