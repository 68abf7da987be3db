package pgsql

import (
	portsrepo "github.com/ckeeling/splitledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PartyRepo:          newPgxPartyRepository(dbPool),
		PersonRepo:         newPgxPersonRepository(dbPool),
		ExpenseRepo:        newPgxExpenseRepository(dbPool),
		SettlementRepo:     newPgxSettlementRepository(dbPool),
		FxRateRepo:         newPgxFxRateRepository(dbPool),
		RecentCurrencyRepo: newPgxRecentCurrencyRepository(dbPool),
		UserRepo:           newPgxUserRepository(dbPool),
	}
}
