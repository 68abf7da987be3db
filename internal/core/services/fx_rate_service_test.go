package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ckeeling/splitledger/internal/apperrors"
	"github.com/ckeeling/splitledger/internal/core/domain"
	portssvc "github.com/ckeeling/splitledger/internal/core/ports/services"
	"github.com/ckeeling/splitledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock FxRateRepository ---
type MockFxRateRepository struct {
	mock.Mock
}

func (m *MockFxRateRepository) FindRate(ctx context.Context, date time.Time, baseCode, quoteCode string) (*domain.FxRate, error) {
	args := m.Called(ctx, date, baseCode, quoteCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FxRate), args.Error(1)
}

func (m *MockFxRateRepository) UpsertRate(ctx context.Context, rate domain.FxRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// --- Mock Provider ---
type MockFxRateProvider struct {
	mock.Mock
}

func (m *MockFxRateProvider) FetchRate(ctx context.Context, date time.Time, baseCode, quoteCode string) (decimal.Decimal, error) {
	args := m.Called(ctx, date, baseCode, quoteCode)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockFxRateProvider) Name() string {
	args := m.Called()
	return args.String(0)
}

// --- Test Suite ---
type FxRateServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockFxRateRepository
	mockProvider *MockFxRateProvider
	service      portssvc.FxRateSvcFacade
	day          time.Time
}

func (suite *FxRateServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockFxRateRepository)
	suite.mockProvider = new(MockFxRateProvider)
	suite.service = services.NewFxRateService(suite.mockRepo, suite.mockProvider)
	suite.day = time.Date(2025, 5, 6, 0, 0, 0, 0, time.UTC)
}

func (suite *FxRateServiceTestSuite) TestGetRate_CacheHit() {
	ctx := context.Background()
	cached := &domain.FxRate{Rate: decimal.RequireFromString("25.38")}
	suite.mockRepo.On("FindRate", ctx, suite.day, "CAD", "THB").Return(cached, nil).Once()

	quote, err := suite.service.GetRate(ctx, suite.day, "CAD", "THB")

	suite.Require().NoError(err)
	suite.Equal(domain.RateSourceCache, quote.Source)
	suite.True(quote.Rate.Equal(decimal.RequireFromString("25.38")))
	suite.Empty(quote.Note)
	suite.mockProvider.AssertNotCalled(suite.T(), "FetchRate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FxRateServiceTestSuite) TestGetRate_LiveFetchAndCache() {
	ctx := context.Background()
	fetched := decimal.RequireFromString("23.65")
	suite.mockRepo.On("FindRate", ctx, suite.day, "CAD", "THB").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockProvider.On("FetchRate", ctx, suite.day, "CAD", "THB").Return(fetched, nil).Once()
	suite.mockProvider.On("Name").Return("frankfurter").Once()
	suite.mockRepo.On("UpsertRate", ctx, mock.MatchedBy(func(r domain.FxRate) bool {
		return r.BaseCode == "CAD" && r.QuoteCode == "THB" && r.Rate.Equal(fetched) && r.Date.Equal(suite.day)
	})).Return(nil).Once()

	quote, err := suite.service.GetRate(ctx, suite.day, "CAD", "THB")

	suite.Require().NoError(err)
	suite.Equal("live-frankfurter", quote.Source)
	suite.True(quote.Rate.Equal(fetched))
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockProvider.AssertExpectations(suite.T())
}

func (suite *FxRateServiceTestSuite) TestGetRate_ProviderFailureServesFallback() {
	ctx := context.Background()
	suite.mockRepo.On("FindRate", ctx, suite.day, "CAD", "THB").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockProvider.On("FetchRate", ctx, suite.day, "CAD", "THB").
		Return(decimal.Zero, errors.New("upstream timeout")).Once()

	quote, err := suite.service.GetRate(ctx, suite.day, "CAD", "THB")

	suite.Require().NoError(err)
	suite.Equal(domain.RateSourceFallback, quote.Source)
	suite.True(quote.Rate.Equal(decimal.NewFromInt(1)))
	suite.Contains(quote.Note, "fx upstream error")
	suite.Contains(quote.Note, "upstream timeout")
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertRate", mock.Anything, mock.Anything)
}

func (suite *FxRateServiceTestSuite) TestGetRate_SecondLookupServedFromCache() {
	ctx := context.Background()
	fetched := decimal.RequireFromString("23.65")

	suite.mockRepo.On("FindRate", ctx, suite.day, "CAD", "THB").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockProvider.On("FetchRate", ctx, suite.day, "CAD", "THB").Return(fetched, nil).Once()
	suite.mockProvider.On("Name").Return("frankfurter").Once()
	suite.mockRepo.On("UpsertRate", ctx, mock.AnythingOfType("domain.FxRate")).Return(nil).Once()

	first, err := suite.service.GetRate(ctx, suite.day, "CAD", "THB")
	suite.Require().NoError(err)
	suite.Equal("live-frankfurter", first.Source)

	// The cached row now satisfies the same lookup without a provider call.
	suite.mockRepo.On("FindRate", ctx, suite.day, "CAD", "THB").
		Return(&domain.FxRate{Rate: fetched}, nil).Once()

	second, err := suite.service.GetRate(ctx, suite.day, "CAD", "THB")
	suite.Require().NoError(err)
	suite.Equal(domain.RateSourceCache, second.Source)
	suite.True(second.Rate.Equal(first.Rate))
	suite.mockProvider.AssertNumberOfCalls(suite.T(), "FetchRate", 1)
}

func (suite *FxRateServiceTestSuite) TestGetRate_SameCurrencyIsIdentity() {
	ctx := context.Background()

	quote, err := suite.service.GetRate(ctx, suite.day, "CAD", "cad")

	suite.Require().NoError(err)
	suite.True(quote.Rate.Equal(decimal.NewFromInt(1)))
	suite.Equal(domain.RateSourceCache, quote.Source)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindRate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FxRateServiceTestSuite) TestGetRate_InvalidCode() {
	ctx := context.Background()

	_, err := suite.service.GetRate(ctx, suite.day, "CADX", "THB")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestFxRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FxRateServiceTestSuite))
}
