package services

import (
	"context"

	"github.com/ckeeling/splitledger/internal/core/domain"
	"github.com/ckeeling/splitledger/internal/dto"
)

// PartyReaderSvc defines read operations for party data
type PartyReaderSvc interface {
	// GetPartyByID retrieves a specific party by its ID.
	GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// ListParties retrieves all parties, household first.
	ListParties(ctx context.Context) ([]domain.Party, error)
}

// PartyWriterSvc defines write operations for party data
type PartyWriterSvc interface {
	// CreateParty persists a new party.
	CreateParty(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error)

	// UpdateParty updates an existing party's details.
	UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, updaterUserID string) (*domain.Party, error)

	// DeleteParty removes a party.
	DeleteParty(ctx context.Context, partyID string) error
}

// PartySvcFacade combines all party-related service interfaces
type PartySvcFacade interface {
	PartyReaderSvc
	PartyWriterSvc
}

// PersonReaderSvc defines read operations for person data
type PersonReaderSvc interface {
	// GetPersonByID retrieves a specific person by their ID.
	GetPersonByID(ctx context.Context, personID string) (*domain.Person, error)

	// ListPersons retrieves all people ordered by name.
	ListPersons(ctx context.Context) ([]domain.Person, error)
}

// PersonWriterSvc defines write operations for person data
type PersonWriterSvc interface {
	// CreatePerson persists a new person under an existing party.
	CreatePerson(ctx context.Context, req dto.CreatePersonRequest, creatorUserID string) (*domain.Person, error)

	// UpdatePerson updates an existing person's details.
	UpdatePerson(ctx context.Context, personID string, req dto.UpdatePersonRequest, updaterUserID string) (*domain.Person, error)

	// DeletePerson removes a person. Rejected while an expense references them.
	DeletePerson(ctx context.Context, personID string) error
}

// PersonSvcFacade combines all person-related service interfaces
type PersonSvcFacade interface {
	PersonReaderSvc
	PersonWriterSvc
}
