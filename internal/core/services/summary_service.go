package services

import (
	"context"
	"fmt"

	"github.com/ckeeling/splitledger/internal/apperrors"
	"github.com/ckeeling/splitledger/internal/core/domain"
	portsrepo "github.com/ckeeling/splitledger/internal/core/ports/repositories"
	portssvc "github.com/ckeeling/splitledger/internal/core/ports/services"
	"github.com/ckeeling/splitledger/internal/utils/money"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// SummaryService recomputes the whole-ledger balance between the household
// and its counterpart from persisted data on every call. Nothing is cached;
// the summary can never drift from the underlying rows.
type SummaryService struct {
	expenseRepo     portsrepo.ExpenseReader
	settlementRepo  portsrepo.SettlementReader
	partyRepo       portsrepo.PartyReader
	counterpartSlug string
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(
	expenseRepo portsrepo.ExpenseReader,
	settlementRepo portsrepo.SettlementReader,
	partyRepo portsrepo.PartyReader,
	counterpartSlug string,
) *SummaryService {
	return &SummaryService{
		expenseRepo:     expenseRepo,
		settlementRepo:  settlementRepo,
		partyRepo:       partyRepo,
		counterpartSlug: counterpartSlug,
	}
}

var _ portssvc.SummarySvcFacade = (*SummaryService)(nil)

// GetSummary computes the full balance breakdown. Expense shares are rounded
// per expense before summing, so the summary always matches the per-expense
// figures shown to users.
func (s *SummaryService) GetSummary(ctx context.Context) (*domain.BalanceSummary, error) {
	household, counterpart, err := s.resolveParties(ctx)
	if err != nil {
		return nil, err
	}

	var expenses []domain.ExpenseWithPayer
	var settlements []domain.Settlement

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = s.expenseRepo.ListAllExpenses(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		settlements, err = s.settlementRepo.ListSettlements(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load ledger for summary: %w", err)
	}

	summary := &domain.BalanceSummary{
		BevOwesFromExpenses:       decimal.Zero,
		HouseholdOwesFromExpenses: decimal.Zero,
		SettlementsBevToHousehold: decimal.Zero,
		SettlementsHouseholdToBev: decimal.Zero,
	}

	for i := range expenses {
		e := &expenses[i]
		amountCad := money.AmountCAD(e.Amount, e.FxToCAD)
		householdShare, bevShare := money.SplitShares(amountCad, e.WeightHousehold, e.WeightBev)

		switch e.PayerParty.PartyID {
		case household.PartyID:
			summary.BevOwesFromExpenses = summary.BevOwesFromExpenses.Add(bevShare)
		case counterpart.PartyID:
			summary.HouseholdOwesFromExpenses = summary.HouseholdOwesFromExpenses.Add(householdShare)
		}
	}

	for i := range settlements {
		st := &settlements[i]
		switch {
		case st.FromPartyID == counterpart.PartyID && st.ToPartyID == household.PartyID:
			summary.SettlementsBevToHousehold = summary.SettlementsBevToHousehold.Add(st.AmountCAD)
		case st.FromPartyID == household.PartyID && st.ToPartyID == counterpart.PartyID:
			summary.SettlementsHouseholdToBev = summary.SettlementsHouseholdToBev.Add(st.AmountCAD)
		}
	}

	summary.Net = summary.BevOwesFromExpenses.
		Sub(summary.HouseholdOwesFromExpenses).
		Sub(summary.SettlementsBevToHousehold).
		Add(summary.SettlementsHouseholdToBev)

	return summary, nil
}

// resolveParties locates the household and its counterpart. The counterpart
// is the party with the configured slug when present, otherwise the sole
// non-household party. Anything else means the deployment is not
// bootstrapped yet.
func (s *SummaryService) resolveParties(ctx context.Context) (household, counterpart *domain.Party, err error) {
	parties, err := s.partyRepo.ListParties(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list parties: %w", err)
	}

	var others []*domain.Party
	for i := range parties {
		p := &parties[i]
		if p.IsHousehold {
			if household != nil {
				return nil, nil, fmt.Errorf("%w: multiple household parties", apperrors.ErrNotBootstrapped)
			}
			household = p
		} else {
			others = append(others, p)
		}
	}
	if household == nil {
		return nil, nil, fmt.Errorf("%w: no household party", apperrors.ErrNotBootstrapped)
	}

	for _, p := range others {
		if p.Slug == s.counterpartSlug {
			return household, p, nil
		}
	}
	if len(others) == 1 {
		return household, others[0], nil
	}
	return nil, nil, fmt.Errorf("%w: counterpart party not identifiable", apperrors.ErrNotBootstrapped)
}
