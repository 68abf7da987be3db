package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ckeeling/splitledger/internal/apperrors"
	"github.com/ckeeling/splitledger/internal/core/domain"
	portsrepo "github.com/ckeeling/splitledger/internal/core/ports/repositories"
	"github.com/ckeeling/splitledger/internal/models"
	"github.com/ckeeling/splitledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxRecentCurrencyRepository implements the MRU currency tracker storage
// using pgxpool.
type PgxRecentCurrencyRepository struct {
	BaseRepository
}

func newPgxRecentCurrencyRepository(db *pgxpool.Pool) portsrepo.RecentCurrencyRepositoryFacade {
	return &PgxRecentCurrencyRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.RecentCurrencyRepositoryFacade = (*PgxRecentCurrencyRepository)(nil)

// UpsertRecentCurrency records a use of the code by the user. Re-using an
// already tracked code only refreshes its timestamp; the (user, code) pair
// stays unique.
func (r *PgxRecentCurrencyRepository) UpsertRecentCurrency(ctx context.Context, userID, code string, usedAt time.Time) error {
	sql := `INSERT INTO user_recent_currencies (user_id, code, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, code)
		DO UPDATE SET updated_at = EXCLUDED.updated_at`
	_, err := r.Pool.Exec(ctx, sql, userID, strings.ToUpper(code), usedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // user does not exist
			return apperrors.ErrConflict
		}
		return fmt.Errorf("failed to record currency use for user %s: %w", userID, err)
	}
	return nil
}

// ListRecentCurrencies retrieves up to limit codes for the user, most recent
// first, ties broken by insertion id descending.
func (r *PgxRecentCurrencyRepository) ListRecentCurrencies(ctx context.Context, userID string, limit int) ([]domain.RecentCurrency, error) {
	sql := `SELECT id, user_id, code, updated_at
		FROM user_recent_currencies
		WHERE user_id = $1
		ORDER BY updated_at DESC, id DESC
		LIMIT $2`
	rows, err := r.Pool.Query(ctx, sql, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent currencies for user %s: %w", userID, err)
	}
	defer rows.Close()

	var ms []models.RecentCurrency
	for rows.Next() {
		var m models.RecentCurrency
		if err := rows.Scan(&m.ID, &m.UserID, &m.Code, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent currency row: %w", err)
		}
		m.Code = strings.TrimSpace(m.Code)
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recent currency rows: %w", err)
	}
	return mapping.ToDomainRecentCurrencySlice(ms), nil
}
