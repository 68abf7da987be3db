package services

import (
	portsrepo "github.com/ckeeling/splitledger/internal/core/ports/repositories"
	portssvc "github.com/ckeeling/splitledger/internal/core/ports/services"
	"github.com/ckeeling/splitledger/internal/platform/config"
)

// NewServiceContainer wires every service against the repository provider
// and returns the container handed to the HTTP layer.
func NewServiceContainer(repos portsrepo.RepositoryProvider, provider portssvc.FxRateProvider, cfg *config.Config) *portssvc.ServiceContainer {
	userService := NewUserService(repos.UserRepo)
	fxRateService := NewFxRateService(repos.FxRateRepo, provider)
	recentCurrencyService := NewRecentCurrencyService(repos.RecentCurrencyRepo, cfg.RecentCurrencyMax)

	return &portssvc.ServiceContainer{
		Party:          NewPartyService(repos.PartyRepo),
		Person:         NewPersonService(repos.PersonRepo, repos.PartyRepo),
		Expense:        NewExpenseService(repos.ExpenseRepo, fxRateService, recentCurrencyService, cfg.ReferenceCurrency),
		Settlement:     NewSettlementService(repos.SettlementRepo, repos.PartyRepo, repos.PersonRepo),
		FxRate:         fxRateService,
		Summary:        NewSummaryService(repos.ExpenseRepo, repos.SettlementRepo, repos.PartyRepo, cfg.CounterpartSlug),
		RecentCurrency: recentCurrencyService,
		User:           userService,
		Token:          NewTokenService(cfg, userService),
		GoogleOAuth:    NewGoogleOAuthService(cfg),
	}
}
