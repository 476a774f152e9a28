package dto

import (
	"time"

	"github.com/fleetpulse/fleet_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateTableResponse defines the structure for API responses containing a rate table snapshot.
type RateTableResponse struct {
	Base      string             `json:"base"`
	AsOf      time.Time          `json:"asOf"`
	Rates     map[string]float64 `json:"rates"`
	FetchedAt time.Time          `json:"fetchedAt"`
}

// ToRateTableResponse converts a domain.RateTable to RateTableResponse DTO
func ToRateTableResponse(table *domain.RateTable) RateTableResponse {
	rates := make(map[string]float64, len(table.Rates))
	for code, rate := range table.Rates {
		rates[string(code)] = rate
	}
	return RateTableResponse{
		Base:      string(table.Base),
		AsOf:      table.AsOf,
		Rates:     rates,
		FetchedAt: table.FetchedAt,
	}
}

// ConvertRequest defines the query parameters for a currency conversion.
// Amount is a pointer so that required checks presence rather than rejecting
// a legitimate zero amount.
type ConvertRequest struct {
	From   string           `form:"from" binding:"required,currencyid"`
	To     string           `form:"to" binding:"required,currencyid"`
	Amount *decimal.Decimal `form:"amount" binding:"required"`
}

// ConvertResponse defines the structure for conversion results.
type ConvertResponse struct {
	From      string          `json:"from"`
	To        string          `json:"to"`
	Amount    decimal.Decimal `json:"amount"`
	Converted decimal.Decimal `json:"converted"`
}
