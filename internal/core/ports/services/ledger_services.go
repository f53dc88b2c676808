package services

import (
	"context"

	"github.com/smartfin/smartfinance_backend/internal/core/domain"
	"github.com/smartfin/smartfinance_backend/internal/dto"
)

// LedgerReaderSvc is the read side of the ledger: fetch the full aggregate
// snapshot, seeding a default document for first-time users.
type LedgerReaderSvc interface {
	GetFinancialData(ctx context.Context, userID string) (*domain.FinancialData, error)
}

// LedgerSvcFacade is the full mutation contract over the aggregate root.
// Every mutation loads the document, applies a pure update producing a new
// snapshot, persists it wholesale, and returns the updated snapshot. A failed
// save never rolls back the returned snapshot; it is flagged dirty instead.
type LedgerSvcFacade interface {
	LedgerReaderSvc

	AddAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.FinancialData, error)
	// UpdateAccount is a no-op when no account matches the ID.
	UpdateAccount(ctx context.Context, userID, accountID string, req dto.UpdateAccountRequest) (*domain.FinancialData, error)
	// DeleteAccount removes only the account; transactions referencing it
	// remain and are displayed with a placeholder label.
	DeleteAccount(ctx context.Context, userID, accountID string) (*domain.FinancialData, error)

	AddTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.FinancialData, error)
	DeleteTransaction(ctx context.Context, userID, transactionID string) (*domain.FinancialData, error)

	AddStock(ctx context.Context, userID string, req dto.CreateStockRequest) (*domain.FinancialData, error)
	DeleteStock(ctx context.Context, userID, stockID string) (*domain.FinancialData, error)
	// RefreshStockPrice replaces one holding's price from the lookup
	// collaborator; on lookup failure the holding is left unchanged.
	RefreshStockPrice(ctx context.Context, userID, stockID string) (*domain.FinancialData, error)
	// RefreshAllPrices fans out one lookup per holding under a bounded
	// concurrency cap and writes a single merged snapshot; failed lookups
	// keep the prior price and are reported explicitly.
	RefreshAllPrices(ctx context.Context, userID string) (*domain.FinancialData, *domain.RefreshReport, error)
}

// PriceLookupSvc is the market price collaborator, best effort, one call per
// symbol.
type PriceLookupSvc interface {
	LookupPrice(ctx context.Context, symbol string) (*domain.PriceQuote, error)
}
