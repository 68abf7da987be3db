package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ckeeling/splitledger/internal/core/domain"
	portsrepo "github.com/ckeeling/splitledger/internal/core/ports/repositories"
	portssvc "github.com/ckeeling/splitledger/internal/core/ports/services"
	"github.com/ckeeling/splitledger/internal/dto"
	"github.com/ckeeling/splitledger/internal/middleware"
	"github.com/google/uuid"
)

// PersonService provides business logic for people.
type PersonService struct {
	personRepo portsrepo.PersonRepositoryFacade
	partyRepo  portsrepo.PartyReader
}

// NewPersonService creates a new PersonService.
func NewPersonService(personRepo portsrepo.PersonRepositoryFacade, partyRepo portsrepo.PartyReader) *PersonService {
	return &PersonService{personRepo: personRepo, partyRepo: partyRepo}
}

var _ portssvc.PersonSvcFacade = (*PersonService)(nil)

// GetPersonByID retrieves a specific person by their ID.
func (s *PersonService) GetPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	return s.personRepo.FindPersonByID(ctx, personID)
}

// ListPersons retrieves all people ordered by name.
func (s *PersonService) ListPersons(ctx context.Context) ([]domain.Person, error) {
	return s.personRepo.ListPersons(ctx)
}

// CreatePerson handles the creation of a new person under an existing party.
func (s *PersonService) CreatePerson(ctx context.Context, req dto.CreatePersonRequest, creatorUserID string) (*domain.Person, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Verify the party exists before inserting.
	if _, err := s.partyRepo.FindPartyByID(ctx, req.PartyID); err != nil {
		return nil, fmt.Errorf("failed to resolve party %s for new person: %w", req.PartyID, err)
	}

	now := time.Now()
	person := domain.Person{
		PersonID: uuid.NewString(),
		Name:     strings.TrimSpace(req.Name),
		PartyID:  req.PartyID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.personRepo.SavePerson(ctx, person); err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	logger.Info("Person created", "person_id", person.PersonID, "party_id", person.PartyID)
	return &person, nil
}

// UpdatePerson updates an existing person's details.
func (s *PersonService) UpdatePerson(ctx context.Context, personID string, req dto.UpdatePersonRequest, updaterUserID string) (*domain.Person, error) {
	person, err := s.personRepo.FindPersonByID(ctx, personID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		person.Name = strings.TrimSpace(*req.Name)
	}
	if req.PartyID != nil && *req.PartyID != person.PartyID {
		if _, err := s.partyRepo.FindPartyByID(ctx, *req.PartyID); err != nil {
			return nil, fmt.Errorf("failed to resolve new party %s: %w", *req.PartyID, err)
		}
		person.PartyID = *req.PartyID
	}
	person.LastUpdatedAt = time.Now()
	person.LastUpdatedBy = updaterUserID

	if err := s.personRepo.UpdatePerson(ctx, *person); err != nil {
		return nil, fmt.Errorf("failed to update person %s: %w", personID, err)
	}
	return person, nil
}

// DeletePerson removes a person. The repository rejects the delete while an
// expense still references them.
func (s *PersonService) DeletePerson(ctx context.Context, personID string) error {
	return s.personRepo.DeletePerson(ctx, personID)
}
