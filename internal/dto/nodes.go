package dto

import (
	"time"

	"github.com/fleetpulse/fleet_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NodeBillingResponse defines the per-node billing view served to the dashboard.
type NodeBillingResponse struct {
	NodeID           string          `json:"nodeID"`
	Name             string          `json:"name"`
	Group            string          `json:"group,omitempty"`
	Region           string          `json:"region,omitempty"`
	PriceLabel       string          `json:"priceLabel"`
	CycleLabel       string          `json:"cycleLabel,omitempty"`
	Currency         string          `json:"currency,omitempty"`
	BillingCycleDays int             `json:"billingCycleDays"`
	ExpiresAt        *time.Time      `json:"expiresAt,omitempty"`
	RemainingValue   decimal.Decimal `json:"remainingValue"`
	MonthlyBurn      decimal.Decimal `json:"monthlyBurn"`
}

// ToNodeBillingResponse converts a domain.NodeBilling to NodeBillingResponse DTO
func ToNodeBillingResponse(billing domain.NodeBilling) NodeBillingResponse {
	return NodeBillingResponse{
		NodeID:           billing.Node.NodeID,
		Name:             billing.Node.Name,
		Group:            billing.Node.Group,
		Region:           billing.Node.Region,
		PriceLabel:       billing.PriceLabel,
		CycleLabel:       billing.CycleLabel,
		Currency:         billing.Node.Currency,
		BillingCycleDays: billing.Node.BillingCycleDays,
		ExpiresAt:        billing.Node.ExpiresAt,
		RemainingValue:   billing.RemainingValue,
		MonthlyBurn:      billing.MonthlyBurn,
	}
}

// ToListNodeBillingResponse converts a slice of domain.NodeBilling to a slice of NodeBillingResponse DTOs.
func ToListNodeBillingResponse(billings []domain.NodeBilling) []NodeBillingResponse {
	responses := make([]NodeBillingResponse, len(billings))
	for i, billing := range billings {
		responses[i] = ToNodeBillingResponse(billing)
	}
	return responses
}
