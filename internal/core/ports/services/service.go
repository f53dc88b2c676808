package services

// ServiceContainer bundles all service facades for injection into the
// handler layer.
type ServiceContainer struct {
	User        UserSvcFacade
	Ledger      LedgerSvcFacade
	Reporting   ReportingSvcFacade
	Advice      AdviceSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
}
