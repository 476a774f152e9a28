package services

import (
	"github.com/fleetpulse/fleet_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConversionSvc converts amounts between currencies via a base-rate table.
// All methods are pure and never fail: unresolvable currencies or missing
// rates degrade to identity.
type ConversionSvc interface {
	// Convert converts amount from one currency identifier to another using
	// the given table. A nil table, equal resolved codes or a missing rate
	// all return the amount unchanged.
	Convert(amount decimal.Decimal, from, to string, table *domain.RateTable) decimal.Decimal
}
