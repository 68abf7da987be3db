package repositories

import (
	"context"

	"github.com/ckeeling/splitledger/internal/core/domain"
)

// PersonReader defines read operations for person data
type PersonReader interface {
	// FindPersonByID retrieves a specific person by their ID.
	FindPersonByID(ctx context.Context, personID string) (*domain.Person, error)

	// ListPersons retrieves all people ordered by name.
	ListPersons(ctx context.Context) ([]domain.Person, error)
}

// PersonWriter defines write operations for person data
type PersonWriter interface {
	// SavePerson persists a new person.
	SavePerson(ctx context.Context, person domain.Person) error

	// UpdatePerson updates an existing person.
	UpdatePerson(ctx context.Context, person domain.Person) error

	// DeletePerson removes a person. Fails with a conflict error while an
	// expense still references them.
	DeletePerson(ctx context.Context, personID string) error
}

// PersonRepositoryFacade combines all person-related repository interfaces
type PersonRepositoryFacade interface {
	PersonReader
	PersonWriter
}
