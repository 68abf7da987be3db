package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/ckeeling/splitledger/internal/apperrors"
	"github.com/ckeeling/splitledger/internal/core/domain"
	portsrepo "github.com/ckeeling/splitledger/internal/core/ports/repositories"
	"github.com/ckeeling/splitledger/internal/models"
	"github.com/ckeeling/splitledger/internal/utils/mapping"
	"github.com/ckeeling/splitledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExpenseRepository implements the expense repository ports using pgxpool.
type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(db *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

// Every read joins the payer and the payer's party; party attribution is
// always derived through the payer, never stored on the expense row.
const expenseJoinedSelect = `SELECT
		e.expense_id, e.expense_date, e.description, e.category, e.currency_code,
		e.fx_to_cad, e.amount, e.paid_by, e.weight_household, e.weight_bev,
		e.notes, e.created_by_user_id,
		e.created_at, e.created_by, e.last_updated_at, e.last_updated_by,
		p.person_id, p.name, p.party_id,
		p.created_at, p.created_by, p.last_updated_at, p.last_updated_by,
		pa.party_id, pa.name, pa.slug, pa.is_household,
		pa.created_at, pa.created_by, pa.last_updated_at, pa.last_updated_by
	FROM expenses e
	JOIN people p ON p.person_id = e.paid_by
	JOIN parties pa ON pa.party_id = p.party_id`

func scanExpenseWithPayer(row pgx.Row) (*domain.ExpenseWithPayer, error) {
	var me models.Expense
	var mp models.Person
	var mpa models.Party
	err := row.Scan(
		&me.ExpenseID, &me.Date, &me.Description, &me.Category, &me.CurrencyCode,
		&me.FxToCAD, &me.Amount, &me.PaidByPersonID, &me.WeightHousehold, &me.WeightBev,
		&me.Notes, &me.CreatedByUserID,
		&me.CreatedAt, &me.CreatedBy, &me.LastUpdatedAt, &me.LastUpdatedBy,
		&mp.PersonID, &mp.Name, &mp.PartyID,
		&mp.CreatedAt, &mp.CreatedBy, &mp.LastUpdatedAt, &mp.LastUpdatedBy,
		&mpa.PartyID, &mpa.Name, &mpa.Slug, &mpa.IsHousehold,
		&mpa.CreatedAt, &mpa.CreatedBy, &mpa.LastUpdatedAt, &mpa.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &domain.ExpenseWithPayer{
		Expense:    mapping.ToDomainExpense(me),
		Payer:      mapping.ToDomainPerson(mp),
		PayerParty: mapping.ToDomainParty(mpa),
	}, nil
}

// FindExpenseByID retrieves a specific expense by its ID.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.ExpenseWithPayer, error) {
	sql := expenseJoinedSelect + ` WHERE e.expense_id = $1`
	e, err := scanExpenseWithPayer(r.Pool.QueryRow(ctx, sql, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}
	return e, nil
}

// ListExpenses retrieves a page of expenses ordered by date descending then
// creation time descending, using a keyset token over that same pair.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, limit int, nextToken string) ([]domain.ExpenseWithPayer, string, error) {
	sql := expenseJoinedSelect
	args := []interface{}{}

	if nextToken != "" {
		entryDate, createdAt, err := pagination.DecodeToken(nextToken)
		if err != nil {
			return nil, "", apperrors.NewValidationError("invalid pagination token")
		}
		sql += ` WHERE (e.expense_date, e.created_at) < ($1, $2)`
		args = append(args, entryDate, createdAt)
	}

	// Fetch one extra row to know whether a further page exists.
	sql += fmt.Sprintf(` ORDER BY e.expense_date DESC, e.created_at DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []domain.ExpenseWithPayer
	for rows.Next() {
		e, err := scanExpenseWithPayer(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("error iterating expense rows: %w", err)
	}

	var newToken string
	if len(expenses) > limit {
		expenses = expenses[:limit]
		last := expenses[limit-1]
		newToken = pagination.EncodeToken(last.Date, last.CreatedAt)
	}
	return expenses, newToken, nil
}

// ListAllExpenses retrieves every expense, for the balance aggregation.
func (r *PgxExpenseRepository) ListAllExpenses(ctx context.Context) ([]domain.ExpenseWithPayer, error) {
	sql := expenseJoinedSelect + ` ORDER BY e.expense_date, e.created_at`
	rows, err := r.Pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to list all expenses: %w", err)
	}
	defer rows.Close()

	var expenses []domain.ExpenseWithPayer
	for rows.Next() {
		e, err := scanExpenseWithPayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return expenses, nil
}

// SaveExpense persists a new expense.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	sql := `INSERT INTO expenses (
			expense_id, expense_date, description, category, currency_code,
			fx_to_cad, amount, paid_by, weight_household, weight_bev,
			notes, created_by_user_id,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.Pool.Exec(ctx, sql,
		m.ExpenseID, m.Date, m.Description, m.Category, m.CurrencyCode,
		m.FxToCAD, m.Amount, m.PaidByPersonID, m.WeightHousehold, m.WeightBev,
		m.Notes, m.CreatedByUserID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // payer does not exist
			return apperrors.ErrConflict
		}
		return fmt.Errorf("failed to save expense: %w", err)
	}
	return nil
}

// UpdateExpense updates an existing expense. fx_to_cad is fixed at creation
// and never written here.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	sql := `UPDATE expenses SET
			expense_date = $1, description = $2, category = $3, currency_code = $4,
			amount = $5, paid_by = $6, weight_household = $7, weight_bev = $8,
			notes = $9, last_updated_at = $10, last_updated_by = $11
		WHERE expense_id = $12`
	tag, err := r.Pool.Exec(ctx, sql,
		m.Date, m.Description, m.Category, m.CurrencyCode,
		m.Amount, m.PaidByPersonID, m.WeightHousehold, m.WeightBev,
		m.Notes, m.LastUpdatedAt, m.LastUpdatedBy, m.ExpenseID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("failed to update expense %s: %w", m.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteExpense removes an expense.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
