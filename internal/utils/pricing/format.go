// Package pricing renders prices and billing cycles into display strings.
package pricing

import (
	"github.com/fleetpulse/fleet_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FreeLabel marks an explicitly free node. The product ships with a Chinese
// default locale, so the marker is the literal the dashboard renders.
const FreeLabel = "免费"

// NotApplicableLabel marks billing data too incomplete to format.
const NotApplicableLabel = "N/A"

// Options controls price rendering.
type Options struct {
	ShowSymbol bool
	Precision  int32
}

// DefaultOptions renders with a currency symbol and two decimal places.
func DefaultOptions() Options {
	return Options{ShowSymbol: true, Precision: 2}
}

// FormatPrice renders a price/billing-cycle pair, e.g. "$12.00/month".
// Free prices render the free marker, inapplicable prices render empty, a
// missing currency or zero cycle renders "N/A", and a negative cycle (the
// one-time-charge sentinel) renders the bare amount.
func FormatPrice(price domain.Price, currency string, cycleDays int, opts Options) string {
	if price.IsFree() {
		return FreeLabel
	}
	amount, ok := price.Amount()
	if !ok {
		return ""
	}
	if currency == "" || cycleDays == 0 {
		return NotApplicableLabel
	}
	if cycleDays < 0 {
		return prefix(currency, opts) + amount.StringFixed(2)
	}
	cycle := domain.ClassifyCycle(cycleDays)
	return prefix(currency, opts) + amount.StringFixed(2) + "/" + cycle.Label
}

// FormatCurrency renders a bare amount: the free marker for free prices, a
// literal "0" for inapplicable ones, otherwise fixed-point at the configured
// precision with an optional symbol prefix.
func FormatCurrency(price domain.Price, currency string, opts Options) string {
	if price.IsFree() {
		return FreeLabel
	}
	amount, ok := price.Amount()
	if !ok {
		return "0"
	}
	return prefix(currency, opts) + amount.StringFixed(opts.Precision)
}

// FormatAmount renders an already-computed decimal in a display currency.
func FormatAmount(amount decimal.Decimal, currency string, opts Options) string {
	return prefix(currency, opts) + amount.StringFixed(opts.Precision)
}

func prefix(currency string, opts Options) string {
	if !opts.ShowSymbol {
		return ""
	}
	return domain.SymbolFor(domain.ResolveCurrency(currency))
}
