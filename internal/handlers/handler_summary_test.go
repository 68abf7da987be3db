package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ckeeling/splitledger/internal/apperrors"
	"github.com/ckeeling/splitledger/internal/core/domain"
	portssvc "github.com/ckeeling/splitledger/internal/core/ports/services"
	"github.com/ckeeling/splitledger/internal/dto"
	"github.com/ckeeling/splitledger/internal/handlers"
	"github.com/ckeeling/splitledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SummaryService ---
type MockSummaryService struct {
	mock.Mock
}

func (m *MockSummaryService) GetSummary(ctx context.Context) (*domain.BalanceSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSummary), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.SummarySvcFacade = (*MockSummaryService)(nil)

// --- Test Suite ---
type SummaryHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockSummaryService *MockSummaryService
	jwtSecret          string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *SummaryHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "splitledger-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *SummaryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockSummaryService = new(MockSummaryService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterSummaryRoutes(v1, suite.mockSummaryService)
}

// --- Test Cases ---

func (suite *SummaryHandlerTestSuite) TestGetSummary_Success() {
	expected := &domain.BalanceSummary{
		BevOwesFromExpenses:       decimal.RequireFromString("19.70"),
		HouseholdOwesFromExpenses: decimal.RequireFromString("10.00"),
		SettlementsBevToHousehold: decimal.RequireFromString("2.50"),
		SettlementsHouseholdToBev: decimal.Zero,
		Net:                       decimal.RequireFromString("7.20"),
	}
	suite.mockSummaryService.On("GetSummary", mock.Anything).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/summary", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.SummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("19.70", resp.BevOwesFromExpenses)
	suite.Equal("10.00", resp.HouseholdOwesFromExpenses)
	suite.Equal("2.50", resp.SettlementsBevToHousehold)
	suite.Equal("0.00", resp.SettlementsHouseholdToBev)
	suite.Equal("7.20", resp.Net)
	suite.mockSummaryService.AssertExpectations(suite.T())
}

func (suite *SummaryHandlerTestSuite) TestGetSummary_NotBootstrapped() {
	suite.mockSummaryService.On("GetSummary", mock.Anything).Return(nil, apperrors.ErrNotBootstrapped).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/summary", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSummaryService.AssertExpectations(suite.T())
}

func (suite *SummaryHandlerTestSuite) TestGetSummary_Unauthenticated() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/summary", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockSummaryService.AssertNotCalled(suite.T(), "GetSummary")
}

func TestSummaryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SummaryHandlerTestSuite))
}
