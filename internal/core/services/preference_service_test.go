package services_test

import (
	"context"
	"testing"

	"github.com/fleetpulse/fleet_billing_app/internal/apperrors"
	"github.com/fleetpulse/fleet_billing_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PreferenceRepository ---
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) GetDisplayCurrency(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockPreferenceRepository) SetDisplayCurrency(ctx context.Context, identifier string) error {
	args := m.Called(ctx, identifier)
	return args.Error(0)
}

// --- Test Suite ---
type PreferenceServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPreferenceRepository
	service  *services.PreferenceService
}

func (suite *PreferenceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPreferenceRepository)
	suite.service = services.NewPreferenceService(suite.mockRepo, "CNY", nil)
}

// --- Test Cases ---

func (suite *PreferenceServiceTestSuite) TestGetDisplayCurrency_Stored() {
	ctx := context.Background()
	suite.mockRepo.On("GetDisplayCurrency", ctx).Return("USD", nil).Once()

	suite.Equal("USD", suite.service.GetDisplayCurrency(ctx))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PreferenceServiceTestSuite) TestGetDisplayCurrency_StoredAliasIsResolved() {
	ctx := context.Background()
	suite.mockRepo.On("GetDisplayCurrency", ctx).Return("美元", nil).Once()

	suite.Equal("USD", suite.service.GetDisplayCurrency(ctx))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PreferenceServiceTestSuite) TestGetDisplayCurrency_DefaultWhenUnset() {
	ctx := context.Background()
	suite.mockRepo.On("GetDisplayCurrency", ctx).Return("", apperrors.ErrNotFound).Once()

	suite.Equal("CNY", suite.service.GetDisplayCurrency(ctx))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PreferenceServiceTestSuite) TestGetDisplayCurrency_DefaultOnStoreError() {
	ctx := context.Background()
	suite.mockRepo.On("GetDisplayCurrency", ctx).Return("", assert.AnError).Once()

	// Store failures never surface; the default carries the dashboard.
	suite.Equal("CNY", suite.service.GetDisplayCurrency(ctx))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PreferenceServiceTestSuite) TestSetDisplayCurrency_ResolvesBeforeStoring() {
	ctx := context.Background()
	suite.mockRepo.On("SetDisplayCurrency", ctx, "EUR").Return(nil).Once()

	err := suite.service.SetDisplayCurrency(ctx, "€")
	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PreferenceServiceTestSuite) TestSetDisplayCurrency_EmptyIsValidationError() {
	ctx := context.Background()

	err := suite.service.SetDisplayCurrency(ctx, "   ")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PreferenceServiceTestSuite) TestSetDisplayCurrency_StoreError() {
	ctx := context.Background()
	suite.mockRepo.On("SetDisplayCurrency", ctx, "USD").Return(assert.AnError).Once()

	err := suite.service.SetDisplayCurrency(ctx, "usd")
	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestPreferenceService(t *testing.T) {
	suite.Run(t, new(PreferenceServiceTestSuite))
}
