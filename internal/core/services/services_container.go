package services

import (
	portsrepo "github.com/smartfin/smartfinance_backend/internal/core/ports/repositories"
	portssvc "github.com/smartfin/smartfinance_backend/internal/core/ports/services"
	"github.com/smartfin/smartfinance_backend/internal/platform/config"
)

// NewServiceContainer wires all services from the repository provider and the
// external collaborators.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, prices portssvc.PriceLookupSvc, advice portssvc.AdviceGenerator) *portssvc.ServiceContainer {
	ledger := NewLedgerService(repos.FinancialDataRepo, repos.UserRepo,
		WithPriceLookup(prices),
		WithDefaultCurrency(cfg.DefaultCurrency),
		WithRefreshConcurrency(cfg.PriceRefreshConcurrency),
	)

	return &portssvc.ServiceContainer{
		User:        NewUserService(repos.UserRepo),
		Ledger:      ledger,
		Reporting:   NewReportingService(ledger),
		Advice:      NewAdviceService(ledger, advice),
		GoogleOAuth: NewGoogleOAuthService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL),
	}
}
