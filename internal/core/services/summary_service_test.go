package services_test

import (
	"context"
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

// --- Mock ExpenseRepository (reader side) ---
type MockExpenseReader struct {
	mock.Mock
}

func (m *MockExpenseReader) FindExpenseByID(ctx context.Context, expenseID string) (*domain.ExpenseWithPayer, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseWithPayer), args.Error(1)
}

func (m *MockExpenseReader) ListExpenses(ctx context.Context, limit int, nextToken string) ([]domain.ExpenseWithPayer, string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.ExpenseWithPayer), args.String(1), args.Error(2)
}

func (m *MockExpenseReader) ListAllExpenses(ctx context.Context) ([]domain.ExpenseWithPayer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseWithPayer), args.Error(1)
}

// --- Mock SettlementRepository (reader side) ---
type MockSettlementReader struct {
	mock.Mock
}

func (m *MockSettlementReader) FindSettlementByID(ctx context.Context, settlementID string) (*domain.Settlement, error) {
	args := m.Called(ctx, settlementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settlement), args.Error(1)
}

func (m *MockSettlementReader) ListSettlements(ctx context.Context) ([]domain.Settlement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Settlement), args.Error(1)
}

// --- Mock PartyRepository (reader side) ---
type MockPartyReader struct {
	mock.Mock
}

func (m *MockPartyReader) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyReader) FindPartyBySlug(ctx context.Context, slug string) (*domain.Party, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyReader) FindHouseholdParty(ctx context.Context) (*domain.Party, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyReader) ListParties(ctx context.Context) ([]domain.Party, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

// --- Test Suite ---
type SummaryServiceTestSuite struct {
	suite.Suite
	mockExpenses    *MockExpenseReader
	mockSettlements *MockSettlementReader
	mockParties     *MockPartyReader
	service         portssvc.SummarySvcFacade

	household   domain.Party
	counterpart domain.Party
	chris       domain.Person
	bev         domain.Person
}

func (suite *SummaryServiceTestSuite) SetupTest() {
	suite.mockExpenses = new(MockExpenseReader)
	suite.mockSettlements = new(MockSettlementReader)
	suite.mockParties = new(MockPartyReader)
	suite.service = services.NewSummaryService(suite.mockExpenses, suite.mockSettlements, suite.mockParties, "bev")

	suite.household = domain.Party{PartyID: "party-hh", Name: "Household", Slug: "household", IsHousehold: true}
	suite.counterpart = domain.Party{PartyID: "party-bev", Name: "Bev", Slug: "bev"}
	suite.chris = domain.Person{PersonID: "person-chris", Name: "Chris", PartyID: "party-hh"}
	suite.bev = domain.Person{PersonID: "person-bev", Name: "Bev", PartyID: "party-bev"}
}

func (suite *SummaryServiceTestSuite) bothParties() []domain.Party {
	return []domain.Party{suite.household, suite.counterpart}
}

func (suite *SummaryServiceTestSuite) expense(amount, fx string, payer domain.Person, payerParty domain.Party, wHousehold, wBev int64) domain.ExpenseWithPayer {
	return domain.ExpenseWithPayer{
		Expense: domain.Expense{
			Date:            time.Date(2025, 5, 6, 0, 0, 0, 0, time.UTC),
			CurrencyCode:    "THB",
			Amount:          decimal.RequireFromString(amount),
			FxToCAD:         decimal.RequireFromString(fx),
			PaidByPersonID:  payer.PersonID,
			WeightHousehold: wHousehold,
			WeightBev:       wBev,
		},
		Payer:      payer,
		PayerParty: payerParty,
	}
}

func (suite *SummaryServiceTestSuite) TestGetSummary_EmptyLedgerIsAllZeros() {
	ctx := context.Background()
	suite.mockParties.On("ListParties", mock.Anything).Return(suite.bothParties(), nil).Once()
	suite.mockExpenses.On("ListAllExpenses", mock.Anything).Return([]domain.ExpenseWithPayer{}, nil).Once()
	suite.mockSettlements.On("ListSettlements", mock.Anything).Return([]domain.Settlement{}, nil).Once()

	summary, err := suite.service.GetSummary(ctx)

	suite.Require().NoError(err)
	suite.True(summary.BevOwesFromExpenses.IsZero())
	suite.True(summary.HouseholdOwesFromExpenses.IsZero())
	suite.True(summary.SettlementsBevToHousehold.IsZero())
	suite.True(summary.SettlementsHouseholdToBev.IsZero())
	suite.True(summary.Net.IsZero())
}

func (suite *SummaryServiceTestSuite) TestGetSummary_TwoSidedExpenses() {
	ctx := context.Background()
	expenses := []domain.ExpenseWithPayer{
		// 1000 THB at 0.0394 = 39.40 CAD, even split: Bev owes 19.70.
		suite.expense("1000", "0.0394", suite.chris, suite.household, 1, 1),
		// 500 THB at 0.04 = 20.00 CAD paid by Bev: household owes 10.00.
		suite.expense("500", "0.04", suite.bev, suite.counterpart, 1, 1),
	}
	suite.mockParties.On("ListParties", mock.Anything).Return(suite.bothParties(), nil).Once()
	suite.mockExpenses.On("ListAllExpenses", mock.Anything).Return(expenses, nil).Once()
	suite.mockSettlements.On("ListSettlements", mock.Anything).Return([]domain.Settlement{}, nil).Once()

	summary, err := suite.service.GetSummary(ctx)

	suite.Require().NoError(err)
	suite.Equal("19.70", summary.BevOwesFromExpenses.StringFixed(2))
	suite.Equal("10.00", summary.HouseholdOwesFromExpenses.StringFixed(2))
	suite.Equal("9.70", summary.Net.StringFixed(2))
}

func (suite *SummaryServiceTestSuite) TestGetSummary_SettlementsReduceNet() {
	ctx := context.Background()
	expenses := []domain.ExpenseWithPayer{
		suite.expense("1000", "0.0394", suite.chris, suite.household, 1, 1),
	}
	settlements := []domain.Settlement{
		{FromPartyID: "party-bev", ToPartyID: "party-hh", AmountCAD: decimal.RequireFromString("15.00")},
		{FromPartyID: "party-hh", ToPartyID: "party-bev", AmountCAD: decimal.RequireFromString("2.50")},
	}
	suite.mockParties.On("ListParties", mock.Anything).Return(suite.bothParties(), nil).Once()
	suite.mockExpenses.On("ListAllExpenses", mock.Anything).Return(expenses, nil).Once()
	suite.mockSettlements.On("ListSettlements", mock.Anything).Return(settlements, nil).Once()

	summary, err := suite.service.GetSummary(ctx)

	suite.Require().NoError(err)
	suite.Equal("19.70", summary.BevOwesFromExpenses.StringFixed(2))
	suite.Equal("15.00", summary.SettlementsBevToHousehold.StringFixed(2))
	suite.Equal("2.50", summary.SettlementsHouseholdToBev.StringFixed(2))
	// 19.70 - 15.00 + 2.50
	suite.Equal("7.20", summary.Net.StringFixed(2))
}

func (suite *SummaryServiceTestSuite) TestGetSummary_WeightedSplit() {
	ctx := context.Background()
	expenses := []domain.ExpenseWithPayer{
		// 30.00 CAD split 2:1, Bev's share is 10.00.
		suite.expense("30", "1", suite.chris, suite.household, 2, 1),
	}
	suite.mockParties.On("ListParties", mock.Anything).Return(suite.bothParties(), nil).Once()
	suite.mockExpenses.On("ListAllExpenses", mock.Anything).Return(expenses, nil).Once()
	suite.mockSettlements.On("ListSettlements", mock.Anything).Return([]domain.Settlement{}, nil).Once()

	summary, err := suite.service.GetSummary(ctx)

	suite.Require().NoError(err)
	suite.Equal("10.00", summary.BevOwesFromExpenses.StringFixed(2))
	suite.Equal("10.00", summary.Net.StringFixed(2))
}

func (suite *SummaryServiceTestSuite) TestGetSummary_NotBootstrapped() {
	ctx := context.Background()
	// Only the household exists, no counterpart yet.
	suite.mockParties.On("ListParties", mock.Anything).Return([]domain.Party{suite.household}, nil).Once()

	_, err := suite.service.GetSummary(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotBootstrapped)
	suite.mockExpenses.AssertNotCalled(suite.T(), "ListAllExpenses", mock.Anything)
}

func (suite *SummaryServiceTestSuite) TestGetSummary_NoHousehold() {
	ctx := context.Background()
	suite.mockParties.On("ListParties", mock.Anything).Return([]domain.Party{suite.counterpart}, nil).Once()

	_, err := suite.service.GetSummary(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotBootstrapped)
}

func TestSummaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}
