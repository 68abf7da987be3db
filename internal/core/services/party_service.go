package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ckeeling/splitledger/internal/apperrors"
	"github.com/ckeeling/splitledger/internal/core/domain"
	portsrepo "github.com/ckeeling/splitledger/internal/core/ports/repositories"
	portssvc "github.com/ckeeling/splitledger/internal/core/ports/services"
	"github.com/ckeeling/splitledger/internal/dto"
	"github.com/ckeeling/splitledger/internal/middleware"
	"github.com/google/uuid"
)

// PartyService provides business logic for parties.
type PartyService struct {
	partyRepo portsrepo.PartyRepositoryFacade
}

// NewPartyService creates a new PartyService.
func NewPartyService(partyRepo portsrepo.PartyRepositoryFacade) *PartyService {
	return &PartyService{partyRepo: partyRepo}
}

var _ portssvc.PartySvcFacade = (*PartyService)(nil)

// GetPartyByID retrieves a specific party by its ID.
func (s *PartyService) GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	return s.partyRepo.FindPartyByID(ctx, partyID)
}

// ListParties retrieves all parties, household first.
func (s *PartyService) ListParties(ctx context.Context) ([]domain.Party, error) {
	return s.partyRepo.ListParties(ctx)
}

// CreateParty handles the creation of a new party. A second household party
// is rejected; the balance computation depends on there being exactly one.
func (s *PartyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.IsHousehold {
		existing, err := s.partyRepo.FindHouseholdParty(ctx)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check for existing household party: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: a household party already exists", apperrors.ErrValidation)
		}
	}

	now := time.Now()
	party := domain.Party{
		PartyID:     uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Slug:        strings.ToLower(strings.TrimSpace(req.Slug)),
		IsHousehold: req.IsHousehold,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		return nil, fmt.Errorf("failed to create party: %w", err)
	}

	logger.Info("Party created", "party_id", party.PartyID, "slug", party.Slug)
	return &party, nil
}

// UpdateParty updates an existing party's details. The is_household flag is
// fixed at creation; flipping it would silently invert every balance.
func (s *PartyService) UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, updaterUserID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	if req.IsHousehold != nil && *req.IsHousehold != party.IsHousehold {
		return nil, fmt.Errorf("%w: the household flag cannot be changed", apperrors.ErrValidation)
	}
	if req.Name != nil {
		party.Name = strings.TrimSpace(*req.Name)
	}
	if req.Slug != nil {
		party.Slug = strings.ToLower(strings.TrimSpace(*req.Slug))
	}
	party.LastUpdatedAt = time.Now()
	party.LastUpdatedBy = updaterUserID

	if err := s.partyRepo.UpdateParty(ctx, *party); err != nil {
		return nil, fmt.Errorf("failed to update party %s: %w", partyID, err)
	}
	return party, nil
}

// DeleteParty removes a party. The repository rejects the delete while
// people or settlements still reference it.
func (s *PartyService) DeleteParty(ctx context.Context, partyID string) error {
	return s.partyRepo.DeleteParty(ctx, partyID)
}
