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

// PgxPartyRepository implements the party repository ports using pgxpool.
type PgxPartyRepository struct {
	BaseRepository
}

func newPgxPartyRepository(db *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

const partyColumns = `party_id, name, slug, is_household, created_at, created_by, last_updated_at, last_updated_by`

func scanParty(row pgx.Row) (*models.Party, error) {
	var m models.Party
	err := row.Scan(
		&m.PartyID, &m.Name, &m.Slug, &m.IsHousehold,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindPartyByID retrieves a specific party by its ID.
func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	sql := fmt.Sprintf(`SELECT %s FROM parties WHERE party_id = $1`, partyColumns)
	m, err := scanParty(r.Pool.QueryRow(ctx, sql, partyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find party %s: %w", partyID, err)
	}
	d := mapping.ToDomainParty(*m)
	return &d, nil
}

// FindPartyBySlug retrieves a party by its stable slug.
func (r *PgxPartyRepository) FindPartyBySlug(ctx context.Context, slug string) (*domain.Party, error) {
	sql := fmt.Sprintf(`SELECT %s FROM parties WHERE slug = $1`, partyColumns)
	m, err := scanParty(r.Pool.QueryRow(ctx, sql, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find party by slug %s: %w", slug, err)
	}
	d := mapping.ToDomainParty(*m)
	return &d, nil
}

// FindHouseholdParty retrieves the single party flagged is_household.
func (r *PgxPartyRepository) FindHouseholdParty(ctx context.Context) (*domain.Party, error) {
	sql := fmt.Sprintf(`SELECT %s FROM parties WHERE is_household ORDER BY created_at LIMIT 1`, partyColumns)
	m, err := scanParty(r.Pool.QueryRow(ctx, sql))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find household party: %w", err)
	}
	d := mapping.ToDomainParty(*m)
	return &d, nil
}

// ListParties retrieves all parties, household first.
func (r *PgxPartyRepository) ListParties(ctx context.Context) ([]domain.Party, error) {
	sql := fmt.Sprintf(`SELECT %s FROM parties ORDER BY is_household DESC, name`, partyColumns)
	rows, err := r.Pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	defer rows.Close()

	var ms []models.Party
	for rows.Next() {
		m, err := scanParty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan party row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating party rows: %w", err)
	}
	return mapping.ToDomainPartySlice(ms), nil
}

// SaveParty persists a new party.
func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	sql := `INSERT INTO parties (party_id, name, slug, is_household, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.Pool.Exec(ctx, sql,
		m.PartyID, m.Name, m.Slug, m.IsHousehold,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save party: %w", err)
	}
	return nil
}

// UpdateParty updates an existing party.
func (r *PgxPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	sql := `UPDATE parties SET name = $1, slug = $2, last_updated_at = $3, last_updated_by = $4
		WHERE party_id = $5`
	tag, err := r.Pool.Exec(ctx, sql, m.Name, m.Slug, m.LastUpdatedAt, m.LastUpdatedBy, m.PartyID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update party %s: %w", m.PartyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteParty removes a party. People and settlements reference parties with
// RESTRICT, so the delete surfaces a conflict while references remain.
func (r *PgxPartyRepository) DeleteParty(ctx context.Context, partyID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM parties WHERE party_id = $1`, partyID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.ErrConflict
		}
		return fmt.Errorf("failed to delete party %s: %w", partyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
