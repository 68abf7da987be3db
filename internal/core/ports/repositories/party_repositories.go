package repositories

import (
	"context"

	"github.com/ckeeling/splitledger/internal/core/domain"
)

// PartyReader defines read operations for party data
type PartyReader interface {
	// FindPartyByID retrieves a specific party by its ID.
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// FindPartyBySlug retrieves a party by its stable slug.
	FindPartyBySlug(ctx context.Context, slug string) (*domain.Party, error)

	// FindHouseholdParty retrieves the single party flagged is_household.
	FindHouseholdParty(ctx context.Context) (*domain.Party, error)

	// ListParties retrieves all parties, household first.
	ListParties(ctx context.Context) ([]domain.Party, error)
}

// PartyWriter defines write operations for party data
type PartyWriter interface {
	// SaveParty persists a new party.
	SaveParty(ctx context.Context, party domain.Party) error

	// UpdateParty updates an existing party.
	UpdateParty(ctx context.Context, party domain.Party) error

	// DeleteParty removes a party. Fails with a conflict error while people
	// or settlements still reference it.
	DeleteParty(ctx context.Context, partyID string) error
}

// PartyRepositoryFacade combines all party-related repository interfaces
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
}
