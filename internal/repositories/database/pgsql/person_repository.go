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

// PgxPersonRepository implements the person repository ports using pgxpool.
type PgxPersonRepository struct {
	BaseRepository
}

func newPgxPersonRepository(db *pgxpool.Pool) portsrepo.PersonRepositoryFacade {
	return &PgxPersonRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.PersonRepositoryFacade = (*PgxPersonRepository)(nil)

const personColumns = `person_id, name, party_id, created_at, created_by, last_updated_at, last_updated_by`

func scanPerson(row pgx.Row) (*models.Person, error) {
	var m models.Person
	err := row.Scan(
		&m.PersonID, &m.Name, &m.PartyID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindPersonByID retrieves a specific person by their ID.
func (r *PgxPersonRepository) FindPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	sql := fmt.Sprintf(`SELECT %s FROM people WHERE person_id = $1`, personColumns)
	m, err := scanPerson(r.Pool.QueryRow(ctx, sql, personID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find person %s: %w", personID, err)
	}
	d := mapping.ToDomainPerson(*m)
	return &d, nil
}

// ListPersons retrieves all people ordered by name.
func (r *PgxPersonRepository) ListPersons(ctx context.Context) ([]domain.Person, error) {
	sql := fmt.Sprintf(`SELECT %s FROM people ORDER BY name`, personColumns)
	rows, err := r.Pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	var ms []models.Person
	for rows.Next() {
		m, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating person rows: %w", err)
	}
	return mapping.ToDomainPersonSlice(ms), nil
}

// SavePerson persists a new person.
func (r *PgxPersonRepository) SavePerson(ctx context.Context, person domain.Person) error {
	m := mapping.ToModelPerson(person)
	sql := `INSERT INTO people (person_id, name, party_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.Pool.Exec(ctx, sql,
		m.PersonID, m.Name, m.PartyID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation on (party_id, name)
				return apperrors.ErrDuplicate
			case "23503": // foreign_key_violation, party does not exist
				return apperrors.ErrConflict
			}
		}
		return fmt.Errorf("failed to save person: %w", err)
	}
	return nil
}

// UpdatePerson updates an existing person.
func (r *PgxPersonRepository) UpdatePerson(ctx context.Context, person domain.Person) error {
	m := mapping.ToModelPerson(person)
	sql := `UPDATE people SET name = $1, party_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE person_id = $5`
	tag, err := r.Pool.Exec(ctx, sql, m.Name, m.PartyID, m.LastUpdatedAt, m.LastUpdatedBy, m.PersonID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return apperrors.ErrDuplicate
			case "23503":
				return apperrors.ErrConflict
			}
		}
		return fmt.Errorf("failed to update person %s: %w", m.PersonID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePerson removes a person. Expenses reference payers with RESTRICT, so
// the delete surfaces a conflict while any expense names them.
func (r *PgxPersonRepository) DeletePerson(ctx context.Context, personID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM people WHERE person_id = $1`, personID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("failed to delete person %s: %w", personID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
