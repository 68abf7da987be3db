package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

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

// --- Mock FxRateService ---
type MockFxRateService struct {
	mock.Mock
}

func (m *MockFxRateService) GetRate(ctx context.Context, date time.Time, baseCode, quoteCode string) (*domain.FxRateQuote, error) {
	args := m.Called(ctx, date, baseCode, quoteCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FxRateQuote), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.FxRateSvcFacade = (*MockFxRateService)(nil)

// --- Test Suite ---
type FxRateHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockFxRateService *MockFxRateService
	jwtSecret         string
}

func (suite *FxRateHandlerTestSuite) generateTestToken(userID string) string {
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

func (suite *FxRateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockFxRateService = new(MockFxRateService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterFxRateRoutes(v1, suite.mockFxRateService, "CAD", "THB")
}

func (suite *FxRateHandlerTestSuite) doGet(url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *FxRateHandlerTestSuite) TestGetFxRate_ExplicitTriple() {
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	quote := &domain.FxRateQuote{
		Date:   date,
		Base:   "CAD",
		Quote:  "THB",
		Rate:   decimal.RequireFromString("25.38"),
		Source: domain.RateSourceCache,
	}
	suite.mockFxRateService.On("GetRate", mock.Anything, date, "CAD", "THB").Return(quote, nil).Once()

	w := suite.doGet("/api/v1/fx-rate?date=2025-03-14&base=CAD&quote=THB")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.FxRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2025-03-14", resp.Date)
	suite.Equal("cache", resp.Source)
	suite.True(resp.Rate.Equal(decimal.RequireFromString("25.38")))
	suite.mockFxRateService.AssertExpectations(suite.T())
}

func (suite *FxRateHandlerTestSuite) TestGetFxRate_DefaultsApplied() {
	quote := &domain.FxRateQuote{
		Base:   "CAD",
		Quote:  "THB",
		Rate:   decimal.NewFromInt(1),
		Source: domain.RateSourceFallback,
		Note:   "fx upstream error: timeout",
	}
	suite.mockFxRateService.On("GetRate", mock.Anything, mock.AnythingOfType("time.Time"), "CAD", "THB").Return(quote, nil).Once()

	w := suite.doGet("/api/v1/fx-rate")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.FxRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("fallback", resp.Source)
	suite.Contains(resp.Note, "fx upstream error")
	suite.mockFxRateService.AssertExpectations(suite.T())
}

func (suite *FxRateHandlerTestSuite) TestGetFxRate_MalformedDate() {
	w := suite.doGet("/api/v1/fx-rate?date=14-03-2025")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockFxRateService.AssertNotCalled(suite.T(), "GetRate")
}

func (suite *FxRateHandlerTestSuite) TestGetFxRate_BadCurrencyCode() {
	w := suite.doGet("/api/v1/fx-rate?quote=THBX")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockFxRateService.AssertNotCalled(suite.T(), "GetRate")
}

func TestFxRateHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FxRateHandlerTestSuite))
}
