package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fleetpulse/fleet_billing_app/internal/apperrors"
	"github.com/fleetpulse/fleet_billing_app/internal/core/domain"
	"github.com/fleetpulse/fleet_billing_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock NodeRepository ---
type MockNodeRepository struct {
	mock.Mock
}

func (m *MockNodeRepository) ListNodes(ctx context.Context) ([]domain.NodeRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NodeRecord), args.Error(1)
}

func (m *MockNodeRepository) FindNodeByID(ctx context.Context, nodeID string) (*domain.NodeRecord, error) {
	args := m.Called(ctx, nodeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NodeRecord), args.Error(1)
}

// stubRateReader serves a fixed table (or error) without caching.
type stubRateReader struct {
	table *domain.RateTable
	err   error
}

func (s *stubRateReader) GetRates(ctx context.Context, source string) (*domain.RateTable, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.table, nil
}

// --- Test Suite ---
type BillingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockNodeRepository
	rates    *stubRateReader
	service  *services.BillingService
	now      time.Time
	table    *domain.RateTable
}

func (suite *BillingServiceTestSuite) SetupTest() {
	suite.now = time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	suite.table = &domain.RateTable{
		Base:  "USD",
		AsOf:  suite.now,
		Rates: map[domain.CurrencyCode]float64{"EUR": 0.9, "CNY": 7.2},
	}
	suite.mockRepo = new(MockNodeRepository)
	suite.rates = &stubRateReader{table: suite.table}
	suite.service = services.NewBillingService(
		suite.mockRepo,
		suite.rates,
		services.NewConversionService(),
		"er-api",
		services.WithBillingClock(func() time.Time { return suite.now }),
	)
}

func (suite *BillingServiceTestSuite) nodeExpiring(id string, price float64, currency string, cycleDays int, expiresAt time.Time) domain.NodeRecord {
	return domain.NodeRecord{
		NodeID:           id,
		Name:             "node-" + id,
		Price:            domain.PriceFromRaw(price),
		Currency:         currency,
		BillingCycleDays: cycleDays,
		ExpiresAt:        &expiresAt,
	}
}

// --- Remaining value ---

func (suite *BillingServiceTestSuite) TestRemainingValue_HalfwayThroughCycle() {
	// 120 USD over a 30 day cycle with 15 whole days left.
	node := suite.nodeExpiring("a", 120, "USD", 30, suite.now.AddDate(0, 0, 15))

	got := suite.service.RemainingValue(node, "USD", suite.table, suite.now)
	suite.True(decimal.NewFromInt(60).Equal(got), "got %s", got)
}

func (suite *BillingServiceTestSuite) TestRemainingValue_ConvertsBeforeAmortizing() {
	node := suite.nodeExpiring("a", 120, "USD", 30, suite.now.AddDate(0, 0, 15))

	// 120 USD -> 864 CNY, then 864/30*15 = 432.
	got := suite.service.RemainingValue(node, "CNY", suite.table, suite.now)
	suite.True(decimal.NewFromInt(432).Equal(got), "got %s", got)
}

func (suite *BillingServiceTestSuite) TestRemainingValue_WholeCalendarDays() {
	// Expiry tomorrow at 01:00 still counts as one full day relative to today.
	expiry := time.Date(2026, 8, 16, 1, 0, 0, 0, time.UTC)
	node := suite.nodeExpiring("a", 30, "USD", 30, expiry)

	got := suite.service.RemainingValue(node, "USD", suite.table, suite.now)
	suite.True(decimal.NewFromInt(1).Equal(got), "got %s", got)
}

func (suite *BillingServiceTestSuite) TestRemainingValue_ZeroCases() {
	// Expired.
	expired := suite.nodeExpiring("a", 120, "USD", 30, suite.now.AddDate(0, 0, -1))
	suite.True(suite.service.RemainingValue(expired, "USD", suite.table, suite.now).IsZero())

	// Expiring today.
	today := suite.nodeExpiring("b", 120, "USD", 30, suite.now)
	suite.True(suite.service.RemainingValue(today, "USD", suite.table, suite.now).IsZero())

	// Free node.
	free := suite.nodeExpiring("c", -1, "USD", 30, suite.now.AddDate(0, 0, 15))
	suite.True(suite.service.RemainingValue(free, "USD", suite.table, suite.now).IsZero())

	// No expiry.
	noExpiry := domain.NodeRecord{NodeID: "d", Price: domain.PriceFromRaw(120), Currency: "USD", BillingCycleDays: 30}
	suite.True(suite.service.RemainingValue(noExpiry, "USD", suite.table, suite.now).IsZero())

	// One-time charge (negative cycle).
	oneTime := suite.nodeExpiring("e", 120, "USD", -1, suite.now.AddDate(0, 0, 15))
	suite.True(suite.service.RemainingValue(oneTime, "USD", suite.table, suite.now).IsZero())
}

func (suite *BillingServiceTestSuite) TestRemainingValue_RawCycleIsTheDivisor() {
	// A 31 day cycle divides by 31, not by the canonical 30 of the month band.
	node := suite.nodeExpiring("a", 31, "USD", 31, suite.now.AddDate(0, 0, 10))

	got := suite.service.RemainingValue(node, "USD", suite.table, suite.now)
	suite.True(decimal.NewFromInt(10).Equal(got), "got %s", got)
}

func (suite *BillingServiceTestSuite) TestRemainingValue_NonIncreasingOverTime() {
	node := suite.nodeExpiring("a", 120, "USD", 30, suite.now.AddDate(0, 0, 15))

	prev := suite.service.RemainingValue(node, "USD", suite.table, suite.now)
	for day := 1; day <= 20; day++ {
		cur := suite.service.RemainingValue(node, "USD", suite.table, suite.now.AddDate(0, 0, day))
		suite.True(cur.LessThanOrEqual(prev), "day %d: %s > %s", day, cur, prev)
		prev = cur
	}
	suite.True(prev.IsZero())
}

// --- Renewal projection ---

func (suite *BillingServiceTestSuite) TestProjectRenewals_CountsOccurrencesInWindow() {
	// Weekly cycle expiring in 2 days; 30 day window holds 5 occurrences
	// (days 2, 9, 16, 23, 30).
	node := suite.nodeExpiring("a", 7, "USD", 7, suite.now.AddDate(0, 0, 2))

	proj := suite.service.ProjectRenewals([]domain.NodeRecord{node}, suite.now, suite.now.AddDate(0, 0, 30), "USD", suite.table)
	suite.Len(proj.Events, 5)
	suite.True(decimal.NewFromInt(35).Equal(proj.Total), "got %s", proj.Total)
}

func (suite *BillingServiceTestSuite) TestProjectRenewals_AdvancesPastAnchors() {
	// Expiry long past: the anchor advances by whole cycles into the window.
	node := suite.nodeExpiring("a", 30, "USD", 30, suite.now.AddDate(0, 0, -100))

	windowEnd := suite.now.AddDate(0, 0, 30)
	proj := suite.service.ProjectRenewals([]domain.NodeRecord{node}, suite.now, windowEnd, "USD", suite.table)

	suite.Require().NotEmpty(proj.Events)
	for _, ev := range proj.Events {
		suite.False(ev.OccursAt.Before(suite.now), "event before window start")
		suite.False(ev.OccursAt.After(windowEnd), "event after window end")
	}
}

func (suite *BillingServiceTestSuite) TestProjectRenewals_AnchorBeyondWindow() {
	node := suite.nodeExpiring("a", 120, "USD", 365, suite.now.AddDate(0, 6, 0))

	proj := suite.service.ProjectRenewals([]domain.NodeRecord{node}, suite.now, suite.now.AddDate(0, 0, 30), "USD", suite.table)
	suite.Empty(proj.Events)
	suite.True(proj.Total.IsZero())
}

func (suite *BillingServiceTestSuite) TestProjectRenewals_SkipsUnbillableRecords() {
	free := suite.nodeExpiring("a", -1, "USD", 30, suite.now.AddDate(0, 0, 5))
	oneTime := suite.nodeExpiring("b", 50, "USD", -1, suite.now.AddDate(0, 0, 5))
	noExpiry := domain.NodeRecord{NodeID: "c", Price: domain.PriceFromRaw(50), Currency: "USD", BillingCycleDays: 30}

	proj := suite.service.ProjectRenewals([]domain.NodeRecord{free, oneTime, noExpiry}, suite.now, suite.now.AddDate(0, 0, 30), "USD", suite.table)
	suite.Empty(proj.Events)
}

func (suite *BillingServiceTestSuite) TestProjectRenewals_SortedByOccurrence() {
	a := suite.nodeExpiring("a", 10, "USD", 30, suite.now.AddDate(0, 0, 20))
	b := suite.nodeExpiring("b", 10, "USD", 30, suite.now.AddDate(0, 0, 5))

	proj := suite.service.ProjectRenewals([]domain.NodeRecord{a, b}, suite.now, suite.now.AddDate(0, 0, 25), "USD", suite.table)
	suite.Require().Len(proj.Events, 2)
	suite.Equal("b", proj.Events[0].NodeID)
	suite.Equal("a", proj.Events[1].NodeID)
}

// --- Fleet views ---

func (suite *BillingServiceTestSuite) TestDescribeNodes() {
	ctx := context.Background()
	nodes := []domain.NodeRecord{
		suite.nodeExpiring("a", 12, "USD", 30, suite.now.AddDate(0, 0, 15)),
		suite.nodeExpiring("b", -1, "USD", 30, suite.now.AddDate(0, 0, 15)),
	}
	suite.mockRepo.On("ListNodes", ctx).Return(nodes, nil).Once()

	views, err := suite.service.DescribeNodes(ctx, "USD")
	suite.Require().NoError(err)
	suite.Require().Len(views, 2)

	suite.Equal("$12.00/month", views[0].PriceLabel)
	suite.Equal("month", views[0].CycleLabel)
	suite.True(decimal.NewFromInt(6).Equal(views[0].RemainingValue), "got %s", views[0].RemainingValue)
	suite.True(decimal.NewFromInt(12).Equal(views[0].MonthlyBurn), "got %s", views[0].MonthlyBurn)

	suite.Equal("免费", views[1].PriceLabel)
	suite.True(views[1].RemainingValue.IsZero())
	suite.True(views[1].MonthlyBurn.IsZero())

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BillingServiceTestSuite) TestSummarize() {
	ctx := context.Background()
	nodes := []domain.NodeRecord{
		suite.nodeExpiring("a", 30, "USD", 30, suite.now.AddDate(0, 0, 10)),
		suite.nodeExpiring("b", 90, "USD", 90, suite.now.AddDate(0, 0, 45)),
	}
	suite.mockRepo.On("ListNodes", ctx).Return(nodes, nil).Once()

	summary, err := suite.service.Summarize(ctx, "USD", 10)
	suite.Require().NoError(err)

	// Monthly burn: 30/30*30 + 90/90*30 = 60.
	suite.True(decimal.NewFromInt(60).Equal(summary.MonthlyBurn), "got %s", summary.MonthlyBurn)

	// Remaining: 30/30*10 + 90/90*45 = 55.
	suite.True(decimal.NewFromInt(55).Equal(summary.RemainingTotal), "got %s", summary.RemainingTotal)

	suite.True(summary.Converted)
	suite.Equal(domain.CurrencyCode("USD"), summary.Currency)
	suite.Len(summary.MonthlyBreakdown, 2)

	// Equal burns rank by name ascending.
	suite.Equal("node-a", summary.MonthlyBreakdown[0].Name)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BillingServiceTestSuite) TestSummarize_BreakdownLimitTruncates() {
	ctx := context.Background()
	nodes := []domain.NodeRecord{
		suite.nodeExpiring("a", 10, "USD", 30, suite.now.AddDate(0, 0, 10)),
		suite.nodeExpiring("b", 20, "USD", 30, suite.now.AddDate(0, 0, 10)),
		suite.nodeExpiring("c", 30, "USD", 30, suite.now.AddDate(0, 0, 10)),
	}
	suite.mockRepo.On("ListNodes", ctx).Return(nodes, nil).Once()

	summary, err := suite.service.Summarize(ctx, "USD", 2)
	suite.Require().NoError(err)

	suite.Require().Len(summary.MonthlyBreakdown, 2)
	suite.Equal("node-c", summary.MonthlyBreakdown[0].Name)
	suite.Equal("node-b", summary.MonthlyBreakdown[1].Name)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BillingServiceTestSuite) TestSummarize_UnconvertedWhenRatesUnavailable() {
	ctx := context.Background()
	suite.rates.err = apperrors.ErrRateUnavailable

	nodes := []domain.NodeRecord{
		suite.nodeExpiring("a", 72, "CNY", 30, suite.now.AddDate(0, 0, 15)),
	}
	suite.mockRepo.On("ListNodes", ctx).Return(nodes, nil).Once()

	summary, err := suite.service.Summarize(ctx, "USD", 10)
	suite.Require().NoError(err)

	// Conversion degraded to identity: the CNY amount flows through unscaled.
	suite.False(summary.Converted)
	suite.True(decimal.NewFromInt(72).Equal(summary.MonthlyBurn), "got %s", summary.MonthlyBurn)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BillingServiceTestSuite) TestSummarize_YearlyBreakdownMergesPerNode() {
	ctx := context.Background()
	// Monthly node renews several times before year end; its yearly breakdown
	// entry is the sum of those events.
	nodes := []domain.NodeRecord{
		suite.nodeExpiring("a", 30, "USD", 30, suite.now.AddDate(0, 0, 10)),
	}
	suite.mockRepo.On("ListNodes", ctx).Return(nodes, nil).Once()

	summary, err := suite.service.Summarize(ctx, "USD", 10)
	suite.Require().NoError(err)

	suite.Require().Len(summary.YearlyBreakdown, 1)
	suite.Equal("a", summary.YearlyBreakdown[0].NodeID)
	suite.True(summary.YearlyBreakdown[0].Amount.Equal(summary.YearlyRenewals.Total))
	suite.True(len(summary.YearlyRenewals.Events) > 1)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BillingServiceTestSuite) TestRenewals_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("ListNodes", ctx).Return(nil, assert.AnError).Once()

	proj, err := suite.service.Renewals(ctx, "USD", suite.now, suite.now.AddDate(0, 1, 0))
	suite.Require().Error(err)
	suite.Nil(proj)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestBillingService(t *testing.T) {
	suite.Run(t, new(BillingServiceTestSuite))
}
