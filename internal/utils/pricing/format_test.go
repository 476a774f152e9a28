package pricing_test

import (
	"testing"

	"github.com/fleetpulse/fleet_billing_app/internal/core/domain"
	"github.com/fleetpulse/fleet_billing_app/internal/utils/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	opts := pricing.DefaultOptions()

	tests := []struct {
		name      string
		price     domain.Price
		currency  string
		cycleDays int
		want      string
	}{
		{
			name:      "monthly USD price",
			price:     domain.PriceOf(decimal.NewFromInt(12)),
			currency:  "USD",
			cycleDays: 30,
			want:      "$12.00/month",
		},
		{
			name:      "quarterly price with tolerance band",
			price:     domain.PriceOf(decimal.NewFromInt(30)),
			currency:  "EUR",
			cycleDays: 91,
			want:      "€30.00/quarter",
		},
		{
			name:      "odd cycle falls back to literal days",
			price:     domain.PriceOf(decimal.NewFromInt(5)),
			currency:  "USD",
			cycleDays: 14,
			want:      "$5.00/14 days",
		},
		{
			name:      "free node renders the free marker regardless of cycle",
			price:     domain.FreePrice(),
			currency:  "USD",
			cycleDays: 30,
			want:      "免费",
		},
		{
			name:      "inapplicable price renders empty",
			price:     domain.NoPrice(),
			currency:  "USD",
			cycleDays: 30,
			want:      "",
		},
		{
			name:      "missing currency renders N/A",
			price:     domain.PriceOf(decimal.NewFromInt(12)),
			currency:  "",
			cycleDays: 30,
			want:      "N/A",
		},
		{
			name:      "zero cycle renders N/A",
			price:     domain.PriceOf(decimal.NewFromInt(12)),
			currency:  "USD",
			cycleDays: 0,
			want:      "N/A",
		},
		{
			name:      "negative cycle is a one-time charge",
			price:     domain.PriceOf(decimal.NewFromInt(99)),
			currency:  "USD",
			cycleDays: -1,
			want:      "$99.00",
		},
		{
			name:      "symbol resolution goes through aliases",
			price:     domain.PriceOf(decimal.NewFromInt(50)),
			currency:  "人民币",
			cycleDays: 365,
			want:      "¥50.00/year",
		},
		{
			name:      "unknown currency uses its code as prefix",
			price:     domain.PriceOf(decimal.NewFromInt(7)),
			currency:  "XYZ",
			cycleDays: 30,
			want:      "XYZ7.00/month",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.FormatPrice(tt.price, tt.currency, tt.cycleDays, opts)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatPrice_NoSymbol(t *testing.T) {
	opts := pricing.Options{ShowSymbol: false, Precision: 2}
	got := pricing.FormatPrice(domain.PriceOf(decimal.NewFromInt(12)), "USD", 30, opts)
	assert.Equal(t, "12.00/month", got)
}

func TestFormatCurrency(t *testing.T) {
	opts := pricing.DefaultOptions()
	assert.Equal(t, "免费", pricing.FormatCurrency(domain.FreePrice(), "USD", opts))
	assert.Equal(t, "0", pricing.FormatCurrency(domain.NoPrice(), "USD", opts))
	assert.Equal(t, "$42.50", pricing.FormatCurrency(domain.PriceOf(decimal.NewFromFloat(42.5)), "USD", opts))
}

func TestFormatAmount(t *testing.T) {
	opts := pricing.Options{ShowSymbol: true, Precision: 1}
	assert.Equal(t, "¥10.5", pricing.FormatAmount(decimal.NewFromFloat(10.5), "CNY", opts))
}
