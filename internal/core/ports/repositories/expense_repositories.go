package repositories

import (
	"context"

	"github.com/ckeeling/splitledger/internal/core/domain"
)

// ExpenseReader defines read operations for expense data. Reads return the
// expense joined with its payer and the payer's party so callers can derive
// party attribution without extra lookups.
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense by its ID.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.ExpenseWithPayer, error)

	// ListExpenses retrieves a page of expenses ordered by date descending,
	// using an opaque keyset token. An empty token starts from the newest
	// entry; the returned token is empty when no further pages exist.
	ListExpenses(ctx context.Context, limit int, nextToken string) ([]domain.ExpenseWithPayer, string, error)

	// ListAllExpenses retrieves every expense, for the balance aggregation.
	ListAllExpenses(ctx context.Context) ([]domain.ExpenseWithPayer, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpense persists a new expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpense updates an existing expense. The stored fx_to_cad is
	// immutable and is not touched by updates.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
