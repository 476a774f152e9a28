package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/fleetpulse/fleet_billing_app/internal/core/domain"
	portsrepo "github.com/fleetpulse/fleet_billing_app/internal/core/ports/repositories"
	portssvc "github.com/fleetpulse/fleet_billing_app/internal/core/ports/services"
	"github.com/fleetpulse/fleet_billing_app/internal/utils/pricing"
	"github.com/shopspring/decimal"
)

// amortizationDays normalizes per-cycle prices into a steady-state monthly
// burn rate, independent of calendar position.
var amortizationDays = decimal.NewFromInt(30)

// BillingService computes remaining value, renewal projections and portfolio
// aggregates over the fleet snapshot. All calculators are pure; the only
// side effect is reading the node snapshot and the cached rate table.
type BillingService struct {
	nodeRepo  portsrepo.NodeReader
	rates     portssvc.RateReaderSvc
	converter portssvc.ConversionSvc
	source    string
	now       func() time.Time
}

// BillingServiceOption customizes a BillingService.
type BillingServiceOption func(*BillingService)

// WithBillingClock injects the clock used as "now" for calendar math.
func WithBillingClock(now func() time.Time) BillingServiceOption {
	return func(s *BillingService) { s.now = now }
}

// NewBillingService creates a BillingService. source selects which upstream
// rate table conversions use.
func NewBillingService(nodeRepo portsrepo.NodeReader, rates portssvc.RateReaderSvc, converter portssvc.ConversionSvc, source string, opts ...BillingServiceOption) *BillingService {
	s := &BillingService{
		nodeRepo:  nodeRepo,
		rates:     rates,
		converter: converter,
		source:    source,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RemainingValue computes the unused value of the node's current cycle as of
// now. Both now and the expiry are truncated to calendar dates before
// differencing: remaining value is measured in whole calendar days. The raw
// cycle length is the divisor (not the canonical band length), and conversion
// happens before amortization so rounding occurs once at the end.
func (s *BillingService) RemainingValue(node domain.NodeRecord, displayCurrency string, table *domain.RateTable, now time.Time) decimal.Decimal {
	amount, ok := node.Price.Amount()
	if !ok || node.ExpiresAt == nil || node.BillingCycleDays <= 0 {
		return decimal.Zero
	}
	days := domain.DateOf(now).DaysUntil(domain.DateOf(*node.ExpiresAt))
	if days <= 0 {
		return decimal.Zero
	}
	converted := s.converter.Convert(amount, node.Currency, displayCurrency, table)
	daily := converted.Div(decimal.NewFromInt(int64(node.BillingCycleDays)))
	return daily.Mul(decimal.NewFromInt(int64(days)))
}

// ProjectRenewals enumerates every renewal occurrence falling inside
// [windowStart, windowEnd]. The expiry acts as the renewal anchor; anchors
// before the window are advanced forward by whole cycle multiples. Records
// with no amount, no expiry or a non-positive cycle are silently skipped.
func (s *BillingService) ProjectRenewals(nodes []domain.NodeRecord, windowStart, windowEnd time.Time, displayCurrency string, table *domain.RateTable) domain.RenewalProjection {
	proj := domain.RenewalProjection{Total: decimal.Zero}
	for _, node := range nodes {
		amount, ok := node.Price.Amount()
		if !ok || node.ExpiresAt == nil || node.BillingCycleDays <= 0 {
			continue
		}
		period := time.Duration(node.BillingCycleDays) * 24 * time.Hour
		anchor := *node.ExpiresAt
		if anchor.Before(windowStart) {
			k := int64(windowStart.Sub(anchor)/period) + 1
			anchor = anchor.Add(time.Duration(k) * period)
		}
		converted := s.converter.Convert(amount, node.Currency, displayCurrency, table)
		for !anchor.After(windowEnd) {
			proj.Events = append(proj.Events, domain.RenewalEvent{
				NodeID:   node.NodeID,
				NodeName: node.Name,
				OccursAt: anchor,
				Amount:   converted,
			})
			proj.Total = proj.Total.Add(converted)
			anchor = anchor.Add(period)
		}
	}
	sort.Slice(proj.Events, func(i, j int) bool {
		if !proj.Events[i].OccursAt.Equal(proj.Events[j].OccursAt) {
			return proj.Events[i].OccursAt.Before(proj.Events[j].OccursAt)
		}
		return proj.Events[i].NodeID < proj.Events[j].NodeID
	})
	return proj
}

// DescribeNodes returns the computed billing view for every node. Price
// labels stay in the node's own currency; remaining value and monthly burn
// are converted to the display currency.
func (s *BillingService) DescribeNodes(ctx context.Context, displayCurrency string) ([]domain.NodeBilling, error) {
	nodes, err := s.nodeRepo.ListNodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes for billing view: %w", err)
	}
	table := s.currentTable(ctx)
	now := s.now()
	opts := pricing.DefaultOptions()

	views := make([]domain.NodeBilling, 0, len(nodes))
	for _, node := range nodes {
		views = append(views, domain.NodeBilling{
			Node:           node,
			PriceLabel:     pricing.FormatPrice(node.Price, node.Currency, node.BillingCycleDays, opts),
			CycleLabel:     cycleLabel(node.BillingCycleDays),
			RemainingValue: s.RemainingValue(node, displayCurrency, table, now),
			MonthlyBurn:    s.monthlyBurn(node, displayCurrency, table),
		})
	}
	return views, nil
}

// Summarize aggregates the fleet into portfolio totals and ranked breakdowns.
// Conversion is applied per record before summation.
func (s *BillingService) Summarize(ctx context.Context, displayCurrency string, breakdownLimit int) (*domain.PortfolioSummary, error) {
	nodes, err := s.nodeRepo.ListNodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes for summary: %w", err)
	}
	table := s.currentTable(ctx)
	now := s.now()

	summary := &domain.PortfolioSummary{
		Currency:       domain.ResolveCurrency(displayCurrency),
		MonthlyBurn:    decimal.Zero,
		RemainingTotal: decimal.Zero,
		Converted:      table != nil,
	}

	var monthlyBreakdown []domain.NodeAmount
	for _, node := range nodes {
		burn := s.monthlyBurn(node, displayCurrency, table)
		if burn.IsPositive() {
			summary.MonthlyBurn = summary.MonthlyBurn.Add(burn)
			monthlyBreakdown = append(monthlyBreakdown, domain.NodeAmount{
				NodeID: node.NodeID,
				Name:   node.Name,
				Amount: burn,
			})
		}
		summary.RemainingTotal = summary.RemainingTotal.Add(s.RemainingValue(node, displayCurrency, table, now))
	}

	summary.MonthlyRenewals = s.ProjectRenewals(nodes, now, domain.EndOfMonth(now), displayCurrency, table)
	summary.YearlyRenewals = s.ProjectRenewals(nodes, now, domain.EndOfYear(now), displayCurrency, table)

	summary.MonthlyBreakdown = rankDescending(monthlyBreakdown, breakdownLimit)
	summary.YearlyBreakdown = rankDescending(mergeByNode(summary.YearlyRenewals.Events), breakdownLimit)
	return summary, nil
}

// Renewals projects renewal events for the whole fleet over a window.
func (s *BillingService) Renewals(ctx context.Context, displayCurrency string, windowStart, windowEnd time.Time) (*domain.RenewalProjection, error) {
	nodes, err := s.nodeRepo.ListNodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes for renewal projection: %w", err)
	}
	table := s.currentTable(ctx)
	proj := s.ProjectRenewals(nodes, windowStart, windowEnd, displayCurrency, table)
	return &proj, nil
}

// monthlyBurn amortizes a node's price over its cycle and normalizes to 30
// days, converted to the display currency.
func (s *BillingService) monthlyBurn(node domain.NodeRecord, displayCurrency string, table *domain.RateTable) decimal.Decimal {
	amount, ok := node.Price.Amount()
	if !ok || node.BillingCycleDays <= 0 {
		return decimal.Zero
	}
	converted := s.converter.Convert(amount, node.Currency, displayCurrency, table)
	return converted.Div(decimal.NewFromInt(int64(node.BillingCycleDays))).Mul(amortizationDays)
}

// currentTable fetches the configured rate table, degrading to nil so that
// conversion falls back to identity.
func (s *BillingService) currentTable(ctx context.Context) *domain.RateTable {
	table, err := s.rates.GetRates(ctx, s.source)
	if err != nil {
		return nil
	}
	return table
}

func cycleLabel(cycleDays int) string {
	if cycleDays < 0 {
		return "one-time"
	}
	if cycleDays == 0 {
		return ""
	}
	return domain.ClassifyCycle(cycleDays).Label
}

// mergeByNode collapses multiple renewal events for the same node into one
// summed entry before ranking.
func mergeByNode(events []domain.RenewalEvent) []domain.NodeAmount {
	totals := make(map[string]domain.NodeAmount)
	for _, ev := range events {
		entry, ok := totals[ev.NodeID]
		if !ok {
			entry = domain.NodeAmount{NodeID: ev.NodeID, Name: ev.NodeName, Amount: decimal.Zero}
		}
		entry.Amount = entry.Amount.Add(ev.Amount)
		totals[ev.NodeID] = entry
	}
	merged := make([]domain.NodeAmount, 0, len(totals))
	for _, entry := range totals {
		merged = append(merged, entry)
	}
	return merged
}

// rankDescending sorts breakdown entries by amount descending (name ascending
// on ties) and truncates to limit when positive.
func rankDescending(entries []domain.NodeAmount, limit int) []domain.NodeAmount {
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Amount.Equal(entries[j].Amount) {
			return entries[i].Amount.GreaterThan(entries[j].Amount)
		}
		return entries[i].Name < entries[j].Name
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
