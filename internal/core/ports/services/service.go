package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Party          PartySvcFacade
	Person         PersonSvcFacade
	Expense        ExpenseSvcFacade
	Settlement     SettlementSvcFacade
	FxRate         FxRateSvcFacade
	Summary        SummarySvcFacade
	RecentCurrency RecentCurrencySvcFacade
	User           UserSvcFacade
	Token          TokenSvcFacade
	GoogleOAuth    GoogleOAuthSvcFacade
}
