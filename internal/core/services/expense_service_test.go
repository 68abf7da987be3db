package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ckeeling/splitledger/internal/apperrors"
	"github.com/ckeeling/splitledger/internal/core/domain"
	portssvc "github.com/ckeeling/splitledger/internal/core/ports/services"
	"github.com/ckeeling/splitledger/internal/core/services"
	"github.com/ckeeling/splitledger/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ExpenseRepository (full facade) ---
type MockExpenseRepository struct {
	MockExpenseReader
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

// --- Mock FxRateSvcFacade ---
type MockFxRateSvc struct {
	mock.Mock
}

func (m *MockFxRateSvc) GetRate(ctx context.Context, date time.Time, baseCode, quoteCode string) (*domain.FxRateQuote, error) {
	args := m.Called(ctx, date, baseCode, quoteCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FxRateQuote), args.Error(1)
}

// --- Mock RecentCurrencySvcFacade ---
type MockRecentCurrencySvc struct {
	mock.Mock
}

func (m *MockRecentCurrencySvc) RecordCurrencyUse(ctx context.Context, userID, code string) error {
	args := m.Called(ctx, userID, code)
	return args.Error(0)
}

func (m *MockRecentCurrencySvc) ListRecentCurrencies(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// --- Test Suite ---
type ExpenseServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockExpenseRepository
	mockFx     *MockFxRateSvc
	mockRecent *MockRecentCurrencySvc
	service    portssvc.ExpenseSvcFacade
	creatorID  string
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockExpenseRepository)
	suite.mockFx = new(MockFxRateSvc)
	suite.mockRecent = new(MockRecentCurrencySvc)
	suite.service = services.NewExpenseService(suite.mockRepo, suite.mockFx, suite.mockRecent, "CAD")
	suite.creatorID = uuid.NewString()
}

func (suite *ExpenseServiceTestSuite) stubReadBack() {
	suite.mockRepo.On("FindExpenseByID", mock.Anything, mock.AnythingOfType("string")).
		Return(&domain.ExpenseWithPayer{}, nil).Once()
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_ExplicitFxSkipsRateLookup() {
	ctx := context.Background()
	fx := decimal.RequireFromString("0.0394")
	req := dto.CreateExpenseRequest{
		Date:        "2025-05-06",
		Description: "Hotel night",
		Category:    "lodging",
		Currency:    "thb",
		FxToCad:     &fx,
		Amount:      decimal.RequireFromString("1000"),
		PaidBy:      "person-chris",
	}

	suite.mockRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.CurrencyCode == "THB" &&
			e.FxToCAD.Equal(fx) &&
			e.WeightHousehold == 1 && e.WeightBev == 1 &&
			e.CreatedBy == suite.creatorID
	})).Return(nil).Once()
	suite.mockRecent.On("RecordCurrencyUse", ctx, suite.creatorID, "THB").Return(nil).Once()
	suite.stubReadBack()

	_, err := suite.service.CreateExpense(ctx, req, suite.creatorID)

	suite.Require().NoError(err)
	suite.mockFx.AssertNotCalled(suite.T(), "GetRate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_DerivesInvertedRate() {
	ctx := context.Background()
	date := time.Date(2025, 5, 6, 0, 0, 0, 0, time.UTC)
	req := dto.CreateExpenseRequest{
		Date:        "2025-05-06",
		Description: "Street food",
		Category:    "food",
		Currency:    "THB",
		Amount:      decimal.RequireFromString("250"),
		PaidBy:      "person-chris",
	}

	// CAD->THB is 25.38, so one THB is 1/25.38 CAD.
	suite.mockFx.On("GetRate", ctx, date, "CAD", "THB").Return(&domain.FxRateQuote{
		Rate:   decimal.RequireFromString("25.38"),
		Source: domain.RateSourceCache,
	}, nil).Once()
	expectedFx := decimal.NewFromInt(1).Div(decimal.RequireFromString("25.38")).Round(8)
	suite.mockRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.FxToCAD.Equal(expectedFx)
	})).Return(nil).Once()
	suite.mockRecent.On("RecordCurrencyUse", ctx, suite.creatorID, "THB").Return(nil).Once()
	suite.stubReadBack()

	_, err := suite.service.CreateExpense(ctx, req, suite.creatorID)

	suite.Require().NoError(err)
	suite.mockFx.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_ReferenceCurrencyIsUnity() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Date:        "2025-05-06",
		Description: "Airport parking",
		Category:    "transport",
		Currency:    "CAD",
		Amount:      decimal.RequireFromString("42.50"),
		PaidBy:      "person-chris",
	}

	suite.mockRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.FxToCAD.Equal(decimal.NewFromInt(1))
	})).Return(nil).Once()
	suite.mockRecent.On("RecordCurrencyUse", ctx, suite.creatorID, "CAD").Return(nil).Once()
	suite.stubReadBack()

	_, err := suite.service.CreateExpense(ctx, req, suite.creatorID)

	suite.Require().NoError(err)
	suite.mockFx.AssertNotCalled(suite.T(), "GetRate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_TrackerFailureDoesNotFailWrite() {
	ctx := context.Background()
	fx := decimal.NewFromInt(1)
	req := dto.CreateExpenseRequest{
		Date:        "2025-05-06",
		Description: "Groceries",
		Category:    "food",
		Currency:    "CAD",
		FxToCad:     &fx,
		Amount:      decimal.RequireFromString("80"),
		PaidBy:      "person-tressa",
	}

	suite.mockRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()
	suite.mockRecent.On("RecordCurrencyUse", ctx, suite.creatorID, "CAD").
		Return(apperrors.ErrConflict).Once()
	suite.stubReadBack()

	_, err := suite.service.CreateExpense(ctx, req, suite.creatorID)

	suite.Require().NoError(err)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Date:        "2025-05-06",
		Description: "Nothing",
		Category:    "other",
		Currency:    "CAD",
		Amount:      decimal.Zero,
		PaidBy:      "person-chris",
	}

	_, err := suite.service.CreateExpense(ctx, req, suite.creatorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_KeepsStoredFx() {
	ctx := context.Background()
	existing := &domain.ExpenseWithPayer{
		Expense: domain.Expense{
			ExpenseID:       "exp-1",
			Date:            time.Date(2025, 5, 6, 0, 0, 0, 0, time.UTC),
			Description:     "Hotel night",
			Category:        domain.CategoryLodging,
			CurrencyCode:    "THB",
			FxToCAD:         decimal.RequireFromString("0.0394"),
			Amount:          decimal.RequireFromString("1000"),
			PaidByPersonID:  "person-chris",
			WeightHousehold: 1,
			WeightBev:       1,
		},
	}
	newAmount := decimal.RequireFromString("1200")
	req := dto.UpdateExpenseRequest{Amount: &newAmount}

	suite.mockRepo.On("FindExpenseByID", ctx, "exp-1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Amount.Equal(newAmount) && e.FxToCAD.Equal(decimal.RequireFromString("0.0394"))
	})).Return(nil).Once()
	suite.mockRepo.On("FindExpenseByID", ctx, "exp-1").Return(existing, nil).Once()

	_, err := suite.service.UpdateExpense(ctx, "exp-1", req, suite.creatorID)

	suite.Require().NoError(err)
	suite.mockFx.AssertNotCalled(suite.T(), "GetRate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
