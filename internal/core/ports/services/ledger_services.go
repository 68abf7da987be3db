package services

import (
	"context"

	"github.com/ckeeling/splitledger/internal/core/domain"
	"github.com/ckeeling/splitledger/internal/dto"
)

// ExpenseReaderSvc defines read operations for expense data
type ExpenseReaderSvc interface {
	// GetExpenseByID retrieves a specific expense with its payer.
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.ExpenseWithPayer, error)

	// ListExpenses retrieves a page of expenses ordered by date descending.
	ListExpenses(ctx context.Context, limit int, nextToken string) ([]domain.ExpenseWithPayer, string, error)
}

// ExpenseWriterSvc defines write operations for expense data
type ExpenseWriterSvc interface {
	// CreateExpense persists a new expense, capturing fx_to_cad at creation
	// time (from the request, or derived from the rate cache when omitted).
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.ExpenseWithPayer, error)

	// UpdateExpense updates an existing expense without re-fetching FX.
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterUserID string) (*domain.ExpenseWithPayer, error)

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}

// SettlementReaderSvc defines read operations for settlement data
type SettlementReaderSvc interface {
	// GetSettlementByID retrieves a specific settlement by its ID.
	GetSettlementByID(ctx context.Context, settlementID string) (*domain.Settlement, error)

	// ListSettlements retrieves all settlements ordered by date descending.
	ListSettlements(ctx context.Context) ([]domain.Settlement, error)
}

// SettlementWriterSvc defines write operations for settlement data
type SettlementWriterSvc interface {
	// CreateSettlement persists a new cross-party settlement.
	CreateSettlement(ctx context.Context, req dto.CreateSettlementRequest, creatorUserID string) (*domain.Settlement, error)

	// UpdateSettlement updates an existing settlement.
	UpdateSettlement(ctx context.Context, settlementID string, req dto.UpdateSettlementRequest, updaterUserID string) (*domain.Settlement, error)

	// DeleteSettlement removes a settlement.
	DeleteSettlement(ctx context.Context, settlementID string) error
}

// SettlementSvcFacade combines all settlement-related service interfaces
type SettlementSvcFacade interface {
	SettlementReaderSvc
	SettlementWriterSvc
}

// SummarySvcFacade computes the net balance between the two parties.
type SummarySvcFacade interface {
	// GetSummary recomputes the full balance breakdown from persisted data.
	// Returns apperrors.ErrNotBootstrapped while the two-party precondition
	// is unmet.
	GetSummary(ctx context.Context) (*domain.BalanceSummary, error)
}
