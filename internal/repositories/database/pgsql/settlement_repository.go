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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSettlementRepository implements the settlement repository ports using pgxpool.
type PgxSettlementRepository struct {
	BaseRepository
}

func newPgxSettlementRepository(db *pgxpool.Pool) portsrepo.SettlementRepositoryFacade {
	return &PgxSettlementRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.SettlementRepositoryFacade = (*PgxSettlementRepository)(nil)

const settlementColumns = `settlement_id, settlement_date, from_party_id, to_party_id, amount_cad, notes,
	created_by_user_id, created_at, created_by, last_updated_at, last_updated_by`

func scanSettlement(row pgx.Row) (*models.Settlement, error) {
	var m models.Settlement
	err := row.Scan(
		&m.SettlementID, &m.Date, &m.FromPartyID, &m.ToPartyID, &m.AmountCAD, &m.Notes,
		&m.CreatedByUserID, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindSettlementByID retrieves a specific settlement by its ID.
func (r *PgxSettlementRepository) FindSettlementByID(ctx context.Context, settlementID string) (*domain.Settlement, error) {
	sql := fmt.Sprintf(`SELECT %s FROM settlements WHERE settlement_id = $1`, settlementColumns)
	m, err := scanSettlement(r.Pool.QueryRow(ctx, sql, settlementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find settlement %s: %w", settlementID, err)
	}
	d := mapping.ToDomainSettlement(*m)
	return &d, nil
}

// ListSettlements retrieves all settlements ordered by date descending.
func (r *PgxSettlementRepository) ListSettlements(ctx context.Context) ([]domain.Settlement, error) {
	sql := fmt.Sprintf(`SELECT %s FROM settlements ORDER BY settlement_date DESC, created_at DESC`, settlementColumns)
	rows, err := r.Pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var ms []models.Settlement
	for rows.Next() {
		m, err := scanSettlement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating settlement rows: %w", err)
	}
	return mapping.ToDomainSettlementSlice(ms), nil
}

// SaveSettlement persists a new settlement.
func (r *PgxSettlementRepository) SaveSettlement(ctx context.Context, settlement domain.Settlement) error {
	m := mapping.ToModelSettlement(settlement)
	sql := `INSERT INTO settlements (
			settlement_id, settlement_date, from_party_id, to_party_id, amount_cad, notes,
			created_by_user_id, created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.Pool.Exec(ctx, sql,
		m.SettlementID, m.Date, m.FromPartyID, m.ToPartyID, m.AmountCAD, m.Notes,
		m.CreatedByUserID, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23503": // party does not exist
				return apperrors.ErrConflict
			case "23514": // check_violation, from and to parties equal
				return apperrors.NewValidationError("from and to parties cannot be the same")
			}
		}
		return fmt.Errorf("failed to save settlement: %w", err)
	}
	return nil
}

// UpdateSettlement updates an existing settlement.
func (r *PgxSettlementRepository) UpdateSettlement(ctx context.Context, settlement domain.Settlement) error {
	m := mapping.ToModelSettlement(settlement)
	sql := `UPDATE settlements SET
			settlement_date = $1, from_party_id = $2, to_party_id = $3,
			amount_cad = $4, notes = $5, last_updated_at = $6, last_updated_by = $7
		WHERE settlement_id = $8`
	tag, err := r.Pool.Exec(ctx, sql,
		m.Date, m.FromPartyID, m.ToPartyID,
		m.AmountCAD, m.Notes, m.LastUpdatedAt, m.LastUpdatedBy, m.SettlementID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23503":
				return apperrors.ErrConflict
			case "23514":
				return apperrors.NewValidationError("from and to parties cannot be the same")
			}
		}
		return fmt.Errorf("failed to update settlement %s: %w", m.SettlementID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteSettlement removes a settlement.
func (r *PgxSettlementRepository) DeleteSettlement(ctx context.Context, settlementID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM settlements WHERE settlement_id = $1`, settlementID)
	if err != nil {
		return fmt.Errorf("failed to delete settlement %s: %w", settlementID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
