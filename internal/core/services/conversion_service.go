package services

import (
	"github.com/fleetpulse/fleet_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConversionService converts amounts between currencies via a common base
// rate. It holds no state; every failure mode degrades to identity so that
// monetary displays fall back to original-currency figures rather than
// erroring.
type ConversionService struct{}

// NewConversionService creates a new ConversionService.
func NewConversionService() *ConversionService {
	return &ConversionService{}
}

// Convert converts amount between two currency identifiers using the given
// table. Equal resolved codes short-circuit before any rate lookup, avoiding
// a floating-point round trip. A nil table or a missing rate on either side
// returns the amount unchanged.
func (s *ConversionService) Convert(amount decimal.Decimal, from, to string, table *domain.RateTable) decimal.Decimal {
	fromCode := domain.ResolveCurrency(from)
	toCode := domain.ResolveCurrency(to)
	if fromCode == toCode {
		return amount
	}
	fromRate, ok := table.RateFor(fromCode)
	if !ok {
		return amount
	}
	toRate, ok := table.RateFor(toCode)
	if !ok {
		return amount
	}
	// Rates are units of currency per one unit of base.
	return amount.Div(fromRate).Mul(toRate)
}
