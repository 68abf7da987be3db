package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ckeeling/splitledger/internal/apperrors"
	"github.com/ckeeling/splitledger/internal/core/domain"
	portsrepo "github.com/ckeeling/splitledger/internal/core/ports/repositories"
	portssvc "github.com/ckeeling/splitledger/internal/core/ports/services"
	"github.com/ckeeling/splitledger/internal/dto"
	"github.com/ckeeling/splitledger/internal/middleware"
	"github.com/ckeeling/splitledger/internal/platform/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseService provides business logic for expenses. The rate to the
// reference currency is captured once at creation and never recomputed.
type ExpenseService struct {
	expenseRepo       portsrepo.ExpenseRepositoryFacade
	fxRateService     portssvc.FxRateSvcFacade
	recentCurrencies  portssvc.RecentCurrencySvcFacade
	referenceCurrency string
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	fxRateService portssvc.FxRateSvcFacade,
	recentCurrencies portssvc.RecentCurrencySvcFacade,
	referenceCurrency string,
) *ExpenseService {
	return &ExpenseService{
		expenseRepo:       expenseRepo,
		fxRateService:     fxRateService,
		recentCurrencies:  recentCurrencies,
		referenceCurrency: strings.ToUpper(referenceCurrency),
	}
}

var _ portssvc.ExpenseSvcFacade = (*ExpenseService)(nil)

// GetExpenseByID retrieves a specific expense with its payer.
func (s *ExpenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.ExpenseWithPayer, error) {
	return s.expenseRepo.FindExpenseByID(ctx, expenseID)
}

// ListExpenses retrieves a page of expenses ordered by date descending.
func (s *ExpenseService) ListExpenses(ctx context.Context, limit int, nextToken string) ([]domain.ExpenseWithPayer, string, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.expenseRepo.ListExpenses(ctx, limit, nextToken)
}

// CreateExpense persists a new expense. When the request omits fxToCad, the
// rate is derived from the cache for the expense date; the rate cache serves
// a fallback of 1 on provider outages, so expense entry is never blocked.
func (s *ExpenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.ExpenseWithPayer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	date, err := time.Parse(dto.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	currency := strings.ToUpper(req.Currency)
	fxToCad, err := s.resolveFxToCad(ctx, date, currency, req.FxToCad)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:       uuid.NewString(),
		Date:            date,
		Description:     strings.TrimSpace(req.Description),
		Category:        domain.ExpenseCategory(req.Category),
		CurrencyCode:    currency,
		FxToCAD:         fxToCad,
		Amount:          req.Amount.Round(2),
		PaidByPersonID:  req.PaidBy,
		WeightHousehold: weightOrDefault(req.WeightHousehold),
		WeightBev:       weightOrDefault(req.WeightBev),
		Notes:           req.Notes,
		CreatedByUserID: &creatorUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	metrics.ExpensesCreated.Inc()

	// Best effort; a tracker failure must not fail the expense write.
	if err := s.recentCurrencies.RecordCurrencyUse(ctx, creatorUserID, currency); err != nil {
		logger.Warn("Failed to record currency use", "currency", currency, "error", err)
	}

	return s.expenseRepo.FindExpenseByID(ctx, expense.ExpenseID)
}

// UpdateExpense updates an existing expense. The stored fx_to_cad stays
// fixed even when the date or currency changes; historical valuations do
// not drift under edits.
func (s *ExpenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterUserID string) (*domain.ExpenseWithPayer, error) {
	existing, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	expense := existing.Expense

	if req.Date != nil {
		date, err := time.Parse(dto.DateFormat, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, *req.Date)
		}
		expense.Date = date
	}
	if req.Description != nil {
		expense.Description = strings.TrimSpace(*req.Description)
	}
	if req.Category != nil {
		expense.Category = domain.ExpenseCategory(*req.Category)
	}
	if req.Currency != nil {
		expense.CurrencyCode = strings.ToUpper(*req.Currency)
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		expense.Amount = req.Amount.Round(2)
	}
	if req.PaidBy != nil {
		expense.PaidByPersonID = *req.PaidBy
	}
	if req.WeightHousehold != nil {
		expense.WeightHousehold = *req.WeightHousehold
	}
	if req.WeightBev != nil {
		expense.WeightBev = *req.WeightBev
	}
	if req.Notes != nil {
		expense.Notes = *req.Notes
	}
	expense.LastUpdatedAt = time.Now()
	expense.LastUpdatedBy = updaterUserID

	if err := s.expenseRepo.UpdateExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense %s: %w", expenseID, err)
	}
	return s.expenseRepo.FindExpenseByID(ctx, expenseID)
}

// DeleteExpense removes an expense.
func (s *ExpenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	return s.expenseRepo.DeleteExpense(ctx, expenseID)
}

// resolveFxToCad fixes the conversion rate for a new expense: an explicit
// positive rate from the caller wins, the reference currency is always 1,
// and otherwise the rate cache supplies reference->currency, inverted.
func (s *ExpenseService) resolveFxToCad(ctx context.Context, date time.Time, currency string, explicit *decimal.Decimal) (decimal.Decimal, error) {
	if explicit != nil {
		if explicit.LessThanOrEqual(decimal.Zero) {
			return decimal.Zero, fmt.Errorf("%w: fxToCad must be positive", apperrors.ErrValidation)
		}
		return explicit.Round(8), nil
	}
	if currency == s.referenceCurrency {
		return decimal.NewFromInt(1), nil
	}

	quote, err := s.fxRateService.GetRate(ctx, date, s.referenceCurrency, currency)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to derive rate for %s: %w", currency, err)
	}
	if quote.Rate.LessThanOrEqual(decimal.Zero) {
		return decimal.NewFromInt(1), nil
	}
	return decimal.NewFromInt(1).Div(quote.Rate).Round(8), nil
}

func weightOrDefault(w *int64) int64 {
	if w == nil {
		return 1
	}
	return *w
}
