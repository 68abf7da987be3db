package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ckeeling/splitledger/internal/apperrors"
	"github.com/ckeeling/splitledger/internal/core/domain"
	portsrepo "github.com/ckeeling/splitledger/internal/core/ports/repositories"
	portssvc "github.com/ckeeling/splitledger/internal/core/ports/services"
	"github.com/ckeeling/splitledger/internal/dto"
	"github.com/ckeeling/splitledger/internal/platform/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SettlementService provides business logic for settlements between the two
// parties. Settlements are always recorded in the reference currency.
type SettlementService struct {
	settlementRepo portsrepo.SettlementRepositoryFacade
	partyRepo      portsrepo.PartyReader
	personRepo     portsrepo.PersonReader
}

// NewSettlementService creates a new SettlementService.
func NewSettlementService(
	settlementRepo portsrepo.SettlementRepositoryFacade,
	partyRepo portsrepo.PartyReader,
	personRepo portsrepo.PersonReader,
) *SettlementService {
	return &SettlementService{
		settlementRepo: settlementRepo,
		partyRepo:      partyRepo,
		personRepo:     personRepo,
	}
}

var _ portssvc.SettlementSvcFacade = (*SettlementService)(nil)

// GetSettlementByID retrieves a specific settlement by its ID.
func (s *SettlementService) GetSettlementByID(ctx context.Context, settlementID string) (*domain.Settlement, error) {
	return s.settlementRepo.FindSettlementByID(ctx, settlementID)
}

// ListSettlements retrieves all settlements ordered by date descending.
func (s *SettlementService) ListSettlements(ctx context.Context) ([]domain.Settlement, error) {
	return s.settlementRepo.ListSettlements(ctx)
}

// CreateSettlement persists a new cross-party settlement. Callers may name
// either party IDs directly or person IDs, which resolve to the owning party.
func (s *SettlementService) CreateSettlement(ctx context.Context, req dto.CreateSettlementRequest, creatorUserID string) (*domain.Settlement, error) {
	date, err := time.Parse(dto.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}
	if req.AmountCad.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amountCad must be positive", apperrors.ErrValidation)
	}

	fromPartyID, err := s.resolveParty(ctx, req.FromPartyID, req.FromPersonID, "from")
	if err != nil {
		return nil, err
	}
	toPartyID, err := s.resolveParty(ctx, req.ToPartyID, req.ToPersonID, "to")
	if err != nil {
		return nil, err
	}
	if fromPartyID == toPartyID {
		return nil, fmt.Errorf("%w: from and to parties cannot be the same", apperrors.ErrValidation)
	}

	now := time.Now()
	settlement := domain.Settlement{
		SettlementID:    uuid.NewString(),
		Date:            date,
		FromPartyID:     fromPartyID,
		ToPartyID:       toPartyID,
		AmountCAD:       req.AmountCad.Round(2),
		Notes:           strings.TrimSpace(req.Notes),
		CreatedByUserID: &creatorUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.settlementRepo.SaveSettlement(ctx, settlement); err != nil {
		return nil, fmt.Errorf("failed to create settlement: %w", err)
	}
	metrics.SettlementsCreated.Inc()
	return &settlement, nil
}

// UpdateSettlement updates an existing settlement.
func (s *SettlementService) UpdateSettlement(ctx context.Context, settlementID string, req dto.UpdateSettlementRequest, updaterUserID string) (*domain.Settlement, error) {
	settlement, err := s.settlementRepo.FindSettlementByID(ctx, settlementID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := time.Parse(dto.DateFormat, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, *req.Date)
		}
		settlement.Date = date
	}
	if req.FromPartyID != nil {
		settlement.FromPartyID = *req.FromPartyID
	}
	if req.ToPartyID != nil {
		settlement.ToPartyID = *req.ToPartyID
	}
	if settlement.FromPartyID == settlement.ToPartyID {
		return nil, fmt.Errorf("%w: from and to parties cannot be the same", apperrors.ErrValidation)
	}
	if req.AmountCad != nil {
		if req.AmountCad.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: amountCad must be positive", apperrors.ErrValidation)
		}
		settlement.AmountCAD = req.AmountCad.Round(2)
	}
	if req.Notes != nil {
		settlement.Notes = strings.TrimSpace(*req.Notes)
	}
	settlement.LastUpdatedAt = time.Now()
	settlement.LastUpdatedBy = updaterUserID

	if err := s.settlementRepo.UpdateSettlement(ctx, *settlement); err != nil {
		return nil, fmt.Errorf("failed to update settlement %s: %w", settlementID, err)
	}
	return settlement, nil
}

// DeleteSettlement removes a settlement.
func (s *SettlementService) DeleteSettlement(ctx context.Context, settlementID string) error {
	return s.settlementRepo.DeleteSettlement(ctx, settlementID)
}

// resolveParty turns either a party ID or a person ID into a verified party ID.
func (s *SettlementService) resolveParty(ctx context.Context, partyID, personID, side string) (string, error) {
	switch {
	case partyID != "":
		party, err := s.partyRepo.FindPartyByID(ctx, partyID)
		if err != nil {
			return "", fmt.Errorf("failed to resolve %s party %s: %w", side, partyID, err)
		}
		return party.PartyID, nil
	case personID != "":
		person, err := s.personRepo.FindPersonByID(ctx, personID)
		if err != nil {
			return "", fmt.Errorf("failed to resolve %s person %s: %w", side, personID, err)
		}
		return person.PartyID, nil
	default:
		return "", fmt.Errorf("%w: %s party or person is required", apperrors.ErrValidation, side)
	}
}
