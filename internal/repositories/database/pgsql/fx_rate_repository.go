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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxFxRateRepository implements the fx rate cache ports using pgxpool.
type PgxFxRateRepository struct {
	BaseRepository
}

func newPgxFxRateRepository(db *pgxpool.Pool) portsrepo.FxRateRepositoryFacade {
	return &PgxFxRateRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.FxRateRepositoryFacade = (*PgxFxRateRepository)(nil)

// FindRate retrieves the cached rate for the exact (date, base, quote) triple.
func (r *PgxFxRateRepository) FindRate(ctx context.Context, date time.Time, baseCode, quoteCode string) (*domain.FxRate, error) {
	sql := `SELECT fx_rate_id, rate_date, base_code, quote_code, rate, created_at, last_updated_at
		FROM fx_rates
		WHERE rate_date = $1 AND base_code = $2 AND quote_code = $3`

	var m models.FxRate
	err := r.Pool.QueryRow(ctx, sql, date, strings.ToUpper(baseCode), strings.ToUpper(quoteCode)).Scan(
		&m.FxRateID, &m.Date, &m.BaseCode, &m.QuoteCode, &m.Rate, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rate %s/%s on %s: %w",
			baseCode, quoteCode, date.Format("2006-01-02"), err)
	}
	// CHAR(3) columns come back space padded on some drivers.
	m.BaseCode = strings.TrimSpace(m.BaseCode)
	m.QuoteCode = strings.TrimSpace(m.QuoteCode)
	d := mapping.ToDomainFxRate(m)
	return &d, nil
}

// UpsertRate atomically inserts or updates the rate for its triple. The
// unique index on (rate_date, base_code, quote_code) makes concurrent
// upserts for the same triple converge on a single row.
func (r *PgxFxRateRepository) UpsertRate(ctx context.Context, rate domain.FxRate) error {
	m := mapping.ToModelFxRate(rate)
	m.BaseCode = strings.ToUpper(m.BaseCode)
	m.QuoteCode = strings.ToUpper(m.QuoteCode)

	sql := `INSERT INTO fx_rates (fx_rate_id, rate_date, base_code, quote_code, rate, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (rate_date, base_code, quote_code)
		DO UPDATE SET rate = EXCLUDED.rate, last_updated_at = EXCLUDED.last_updated_at`
	_, err := r.Pool.Exec(ctx, sql,
		m.FxRateID, m.Date, m.BaseCode, m.QuoteCode, m.Rate, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert rate %s/%s on %s: %w",
			m.BaseCode, m.QuoteCode, m.Date.Format("2006-01-02"), err)
	}
	return nil
}
