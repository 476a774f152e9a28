package dto

import (
	"time"

	"github.com/fleetpulse/fleet_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RenewalEventResponse is one projected renewal occurrence.
type RenewalEventResponse struct {
	NodeID   string          `json:"nodeID"`
	NodeName string          `json:"nodeName"`
	OccursAt time.Time       `json:"occursAt"`
	Amount   decimal.Decimal `json:"amount"`
}

// RenewalProjectionResponse defines the structure for renewal projection results.
type RenewalProjectionResponse struct {
	Currency string                 `json:"currency"`
	Total    decimal.Decimal        `json:"total"`
	Events   []RenewalEventResponse `json:"events"`
}

// NodeAmountResponse is one ranked breakdown entry.
type NodeAmountResponse struct {
	NodeID string          `json:"nodeID"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// PortfolioSummaryResponse defines the structure for portfolio summary results.
type PortfolioSummaryResponse struct {
	Currency         string               `json:"currency"`
	MonthlyBurn      decimal.Decimal      `json:"monthlyBurn"`
	RemainingTotal   decimal.Decimal      `json:"remainingTotal"`
	MonthlyRenewals  decimal.Decimal      `json:"monthlyRenewals"`
	YearlyRenewals   decimal.Decimal      `json:"yearlyRenewals"`
	MonthlyBreakdown []NodeAmountResponse `json:"monthlyBreakdown"`
	YearlyBreakdown  []NodeAmountResponse `json:"yearlyBreakdown"`
	Converted        bool                 `json:"converted"`
}

// ToRenewalProjectionResponse converts a domain.RenewalProjection to RenewalProjectionResponse DTO
func ToRenewalProjectionResponse(proj *domain.RenewalProjection, currency string) RenewalProjectionResponse {
	events := make([]RenewalEventResponse, len(proj.Events))
	for i, ev := range proj.Events {
		events[i] = RenewalEventResponse{
			NodeID:   ev.NodeID,
			NodeName: ev.NodeName,
			OccursAt: ev.OccursAt,
			Amount:   ev.Amount,
		}
	}
	return RenewalProjectionResponse{
		Currency: currency,
		Total:    proj.Total,
		Events:   events,
	}
}

// ToPortfolioSummaryResponse converts a domain.PortfolioSummary to PortfolioSummaryResponse DTO
func ToPortfolioSummaryResponse(summary *domain.PortfolioSummary) PortfolioSummaryResponse {
	return PortfolioSummaryResponse{
		Currency:         string(summary.Currency),
		MonthlyBurn:      summary.MonthlyBurn,
		RemainingTotal:   summary.RemainingTotal,
		MonthlyRenewals:  summary.MonthlyRenewals.Total,
		YearlyRenewals:   summary.YearlyRenewals.Total,
		MonthlyBreakdown: toNodeAmountResponses(summary.MonthlyBreakdown),
		YearlyBreakdown:  toNodeAmountResponses(summary.YearlyBreakdown),
		Converted:        summary.Converted,
	}
}

func toNodeAmountResponses(entries []domain.NodeAmount) []NodeAmountResponse {
	responses := make([]NodeAmountResponse, len(entries))
	for i, entry := range entries {
		responses[i] = NodeAmountResponse{
			NodeID: entry.NodeID,
			Name:   entry.Name,
			Amount: entry.Amount,
		}
	}
	return responses
}
