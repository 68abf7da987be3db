package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ckeeling/splitledger/internal/apperrors"
	"github.com/ckeeling/splitledger/internal/core/domain"
	"github.com/ckeeling/splitledger/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RecentCurrencyRepository ---
type MockRecentCurrencyRepository struct {
	mock.Mock
}

func (m *MockRecentCurrencyRepository) UpsertRecentCurrency(ctx context.Context, userID, code string, usedAt time.Time) error {
	args := m.Called(ctx, userID, code, usedAt)
	return args.Error(0)
}

func (m *MockRecentCurrencyRepository) ListRecentCurrencies(ctx context.Context, userID string, limit int) ([]domain.RecentCurrency, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecentCurrency), args.Error(1)
}

// --- Test Suite ---
type RecentCurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockRecentCurrencyRepository
	service  *services.RecentCurrencyService
}

func (suite *RecentCurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRecentCurrencyRepository)
	suite.service = services.NewRecentCurrencyService(suite.mockRepo, 5)
}

func (suite *RecentCurrencyServiceTestSuite) TestRecordCurrencyUse_NormalizesCode() {
	ctx := context.Background()
	suite.mockRepo.On("UpsertRecentCurrency", ctx, "user-1", "THB", mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.RecordCurrencyUse(ctx, "user-1", " thb ")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecentCurrencyServiceTestSuite) TestRecordCurrencyUse_RejectsBadCode() {
	ctx := context.Background()

	err := suite.service.RecordCurrencyUse(ctx, "user-1", "THBX")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertRecentCurrency", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RecentCurrencyServiceTestSuite) TestListRecentCurrencies_MostRecentFirst() {
	ctx := context.Background()
	rows := []domain.RecentCurrency{
		{Code: "THB"},
		{Code: "CAD"},
		{Code: "USD"},
	}
	suite.mockRepo.On("ListRecentCurrencies", ctx, "user-1", 5).Return(rows, nil).Once()

	codes, err := suite.service.ListRecentCurrencies(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Equal([]string{"THB", "CAD", "USD"}, codes)
}

func TestRecentCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecentCurrencyServiceTestSuite))
}
